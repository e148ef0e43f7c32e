package model

// Gene is one class assignment: who teaches what to which section, when,
// and where.
type Gene struct {
	CourseCode       string
	SectionName      string
	SessionType      SessionType
	SessionIndex     int
	TimeSlotID       string
	FacultyID        string
	RoomID           string
	DurationHours    int
	ConsecutiveSlots int
}
