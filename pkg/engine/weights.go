package engine

// Violation category names used as keys into Config.Weights and into
// a Chromosome's per-category Breakdown. Names match spec.md §4.3's table,
// snake_cased.
const (
	ViolationFacultyDoubleBooking   = "faculty_double_booking"
	ViolationRoomDoubleBooking      = "room_double_booking"
	ViolationSectionDoubleBooking   = "section_double_booking"
	ViolationFacultyUnavailable     = "faculty_unavailable"
	ViolationLabContinuityBroken    = "lab_continuity_broken"
	ViolationRoomCapacityExceeded   = "room_capacity_exceeded"
	ViolationWorkloadOverMax        = "workload_over_max"
	ViolationWorkloadUnderMin       = "workload_under_min"
	ViolationStudentGap             = "student_gap"
	ViolationFacultyGap             = "faculty_gap"
	ViolationWorkloadImbalance      = "workload_imbalance"
	ViolationExcessiveConsecutive   = "excessive_consecutive_hours"
	ViolationPreferenceMismatch     = "preference_mismatch"
	ViolationUnbalancedDaily        = "unbalanced_daily_distribution"
	ViolationMissingSession         = "missing_session"
	ViolationUnknownReference       = "unknown_reference"
)

// defaultWeights is the penalty-per-violation table from spec.md §4.3.
// ViolationMissingSession and ViolationUnknownReference are not in the
// published table — spec.md §4.2/§4.3 only says missing genes and unknown
// references "count as" a hard violation without naming a weight, so both
// default to the same magnitude as the other structural hard violations
// (faculty/room/section double-booking): 1000.
func defaultWeights() map[string]float64 {
	return map[string]float64{
		ViolationFacultyDoubleBooking: 1000,
		ViolationRoomDoubleBooking:    1000,
		ViolationSectionDoubleBooking: 1000,
		ViolationFacultyUnavailable:   900,
		ViolationLabContinuityBroken:  800,
		ViolationRoomCapacityExceeded: 800,
		ViolationWorkloadOverMax:      100,
		ViolationWorkloadUnderMin:     80,
		ViolationStudentGap:           50,
		ViolationFacultyGap:           40,
		ViolationWorkloadImbalance:    60,
		ViolationExcessiveConsecutive: 50,
		ViolationPreferenceMismatch:   30,
		ViolationUnbalancedDaily:      40,
		ViolationMissingSession:       1000,
		ViolationUnknownReference:     1000,
	}
}

func hardCategories() map[string]bool {
	return map[string]bool{
		ViolationFacultyDoubleBooking: true,
		ViolationRoomDoubleBooking:    true,
		ViolationSectionDoubleBooking: true,
		ViolationFacultyUnavailable:   true,
		ViolationLabContinuityBroken:  true,
		ViolationRoomCapacityExceeded: true,
		ViolationMissingSession:       true,
		ViolationUnknownReference:     true,
	}
}
