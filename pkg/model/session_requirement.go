package model

// SessionType distinguishes theory sessions from lab sessions within a Gene
// or a SessionRequirement.
type SessionType string

const (
	SessionTheory SessionType = "theory"
	SessionLab    SessionType = "lab"
)

// SessionRequirement is derived, not stored: one (course, section) demands a
// multiset of these, computed from the course's theory/lab specs.
type SessionRequirement struct {
	CourseCode         string
	Section            string
	SessionType        SessionType
	Index              int // position within the (course, section, type) multiset
	Duration           int // hours
	ConsecutiveSlots   int
	RequiresContinuity bool
}

// ceilDiv computes ceil(a/b) for positive integers.
func ceilDiv(a, b int) int {
	if b <= 0 {
		return 0
	}
	return (a + b - 1) / b
}

// DeriveSessionRequirements computes the multiset of sessions a section of
// course must be assigned, per spec: ceil(weeklyHours/sessionDuration)
// sessions of sessionDuration each, for theory and for lab independently.
func DeriveSessionRequirements(course Course, section Section) []SessionRequirement {
	requirements := make([]SessionRequirement, 0, 4)

	if course.HasTheory() && course.TheorySpec.SessionDuration > 0 {
		count := ceilDiv(course.TheorySpec.WeeklyHours, course.TheorySpec.SessionDuration)
		for i := 0; i < count; i++ {
			requirements = append(requirements, SessionRequirement{
				CourseCode:       course.Code,
				Section:          section.Name,
				SessionType:      SessionTheory,
				Index:            i,
				Duration:         course.TheorySpec.SessionDuration,
				ConsecutiveSlots: 1,
			})
		}
	}

	if course.HasLab() && course.LabSpec.SessionDuration > 0 {
		count := ceilDiv(course.LabSpec.WeeklyHours, course.LabSpec.SessionDuration)
		for i := 0; i < count; i++ {
			requirements = append(requirements, SessionRequirement{
				CourseCode:         course.Code,
				Section:            section.Name,
				SessionType:        SessionLab,
				Index:              i,
				Duration:           course.LabSpec.SessionDuration,
				ConsecutiveSlots:   course.LabSpec.SessionDuration,
				RequiresContinuity: course.LabSpec.ContinuityRequired,
			})
		}
	}

	return requirements
}
