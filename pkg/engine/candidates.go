package engine

import (
	"github.com/limaJavier/evotimetable/pkg/model"
	"github.com/samber/lo"
)

// candidatePools narrows a snapshot's entities down to the subsets that
// satisfy the feasibility oracle for one (course, section, session-type)
// requirement. Random Construction and mutation both sample uniformly from
// these pools rather than from the whole snapshot.
type candidatePools struct {
	oracle   feasibilityOracle
	snapshot model.Snapshot
}

func newCandidatePools(snapshot model.Snapshot, oracle feasibilityOracle) candidatePools {
	return candidatePools{oracle: oracle, snapshot: snapshot}
}

// ActiveSlots returns every active time slot in the snapshot.
func (p candidatePools) ActiveSlots() []model.TimeSlot {
	return lo.Filter(p.snapshot.TimeSlots, func(slot model.TimeSlot, _ int) bool {
		return slot.Active
	})
}

// QualifiedFaculty returns every active faculty member qualified to teach
// course.
func (p candidatePools) QualifiedFaculty(course model.Course) []model.Faculty {
	return lo.Filter(p.snapshot.Faculty, func(faculty model.Faculty, _ int) bool {
		return p.oracle.FacultyQualified(faculty, course)
	})
}

// SuitableRooms returns every active room suitable for a session of
// sessionType for course/section.
func (p candidatePools) SuitableRooms(course model.Course, sessionType model.SessionType, section model.Section) []model.Room {
	return lo.Filter(p.snapshot.Rooms, func(room model.Room, _ int) bool {
		return p.oracle.RoomSuitable(room, course, sessionType, section)
	})
}

// AvailableFaculty narrows candidates further to those free at the given
// slot's day/start/end window.
func (p candidatePools) AvailableFaculty(candidates []model.Faculty, slot model.TimeSlot) []model.Faculty {
	return lo.Filter(candidates, func(faculty model.Faculty, _ int) bool {
		return p.oracle.FacultyAvailable(faculty, slot.Day, slot.Start, slot.End)
	})
}
