package model

// TimeRange is an availability window expressed as "HH:MM" strings,
// compared lexicographically per spec.
type TimeRange struct {
	Start string
	End   string
}

// Contains reports whether the range fully contains [start, end].
func (tr TimeRange) Contains(start, end string) bool {
	return tr.Start <= start && end <= tr.End
}

// Faculty is identified by ID. Availability maps a day name to an ordered
// list of windows during which the faculty member may teach.
type Faculty struct {
	ID                  string
	Department          string
	Qualifications      []string // course codes this faculty may teach
	Availability        map[string][]TimeRange
	MinHours            int
	MaxHours            int
	PreferredSlots      []string // time-slot IDs
	AvoidSlots          []string // time-slot IDs
	MaxConsecutiveHours int
	Active              bool
}

// Qualified reports whether the faculty may teach courseCode.
func (f Faculty) Qualified(courseCode string) bool {
	for _, code := range f.Qualifications {
		if code == courseCode {
			return true
		}
	}
	return false
}

// AvailableAt reports whether some availability window on day fully
// contains [start, end].
func (f Faculty) AvailableAt(day, start, end string) bool {
	for _, window := range f.Availability[day] {
		if window.Contains(start, end) {
			return true
		}
	}
	return false
}
