package model

// Snapshot is the immutable bundle of input data for one engine run: the
// five input collections spec.md's run() operation consumes. It is
// read-only for the duration of a run; no engine component mutates it.
type Snapshot struct {
	Courses     []Course
	Faculty     []Faculty
	Rooms       []Room
	TimeSlots   []TimeSlot
	Constraints []Constraint
}

// Index builds the stable-handle lookup arena described in spec.md §9
// ("Cyclic references in the source data... replace with an
// arena-of-entities plus stable integer handles"): read-only maps from the
// natural string identifiers to the entities themselves, so every
// downstream lookup is O(1) instead of a linear scan over the snapshot's
// slices.
func (s Snapshot) Index() SnapshotIndex {
	courseByCode := make(map[string]Course, len(s.Courses))
	for _, course := range s.Courses {
		courseByCode[course.Code] = course
	}

	facultyByID := make(map[string]Faculty, len(s.Faculty))
	for _, faculty := range s.Faculty {
		facultyByID[faculty.ID] = faculty
	}

	roomByID := make(map[string]Room, len(s.Rooms))
	for _, room := range s.Rooms {
		roomByID[room.ID] = room
	}

	slotByID := make(map[string]TimeSlot, len(s.TimeSlots))
	for _, slot := range s.TimeSlots {
		slotByID[slot.ID] = slot
	}

	return SnapshotIndex{
		CourseByCode: courseByCode,
		FacultyByID:  facultyByID,
		RoomByID:     roomByID,
		SlotByID:     slotByID,
	}
}

// SnapshotIndex is the O(1) lookup arena produced by Snapshot.Index.
type SnapshotIndex struct {
	CourseByCode map[string]Course
	FacultyByID  map[string]Faculty
	RoomByID     map[string]Room
	SlotByID     map[string]TimeSlot
}

// SectionOf returns the named section of courseCode, if present.
func (idx SnapshotIndex) SectionOf(courseCode, sectionName string) (Section, bool) {
	course, ok := idx.CourseByCode[courseCode]
	if !ok {
		return Section{}, false
	}
	for _, section := range course.Sections {
		if section.Name == sectionName {
			return section, true
		}
	}
	return Section{}, false
}
