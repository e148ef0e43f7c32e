package engine

import "github.com/limaJavier/evotimetable/pkg/model"

// feasibilityOracle bundles the three pure predicates of spec.md §4.1.
// Each predicate takes only the entity values of a candidate assignment
// (room, course, section, faculty, day/time window); none of them mutate
// state or retain the chromosome being constructed.
type feasibilityOracle interface {
	// RoomSuitable reports whether room may host a session of sessionType
	// for course/section.
	RoomSuitable(room model.Room, course model.Course, sessionType model.SessionType, section model.Section) bool

	// FacultyQualified reports whether faculty may teach course.
	FacultyQualified(faculty model.Faculty, course model.Course) bool

	// FacultyAvailable reports whether faculty has an availability window
	// on day that fully contains [start, end].
	FacultyAvailable(faculty model.Faculty, day, start, end string) bool
}

func newFeasibilityOracle() feasibilityOracle {
	return &standardOracle{}
}

type standardOracle struct{}

func (*standardOracle) RoomSuitable(room model.Room, course model.Course, sessionType model.SessionType, section model.Section) bool {
	if !room.Active || room.Capacity < section.Strength {
		return false
	}

	switch sessionType {
	case model.SessionLab:
		if room.Type != model.RoomLab {
			return false
		}
		if !course.LabRoomReq.HasFacilities(room) {
			return false
		}
		if course.LabSubtype != "" && course.LabSubtype != "general" && course.LabSubtype != room.LabSubtype {
			return false
		}
		return true
	case model.SessionTheory:
		if room.Type != model.RoomClassroom && room.Type != model.RoomSeminarHall {
			return false
		}
		return course.TheoryRoomReq.HasFacilities(room)
	default:
		return false
	}
}

func (*standardOracle) FacultyQualified(faculty model.Faculty, course model.Course) bool {
	return faculty.Active && faculty.Qualified(course.Code)
}

func (*standardOracle) FacultyAvailable(faculty model.Faculty, day, start, end string) bool {
	return faculty.Active && faculty.AvailableAt(day, start, end)
}
