package engine

import "github.com/limaJavier/evotimetable/pkg/model"

// trivialFeasibleSnapshot builds spec.md §8 scenario 1: one theory course,
// one section, one qualified faculty, one suitable room, ten slots across
// Mon/Tue.
func trivialFeasibleSnapshot() model.Snapshot {
	return model.Snapshot{
		Courses: []model.Course{
			{
				Code: "CS101",
				Type: model.CourseTheory,
				TheorySpec: model.SessionSpec{
					WeeklyHours:     2,
					SessionDuration: 1,
				},
				Sections: []model.Section{{Name: "A", Strength: 30}},
			},
		},
		Faculty: []model.Faculty{
			{
				ID:             "F1",
				Qualifications: []string{"CS101"},
				Availability: map[string][]model.TimeRange{
					"Mon": {{Start: "09:00", End: "17:00"}},
					"Tue": {{Start: "09:00", End: "17:00"}},
					"Wed": {{Start: "09:00", End: "17:00"}},
					"Thu": {{Start: "09:00", End: "17:00"}},
					"Fri": {{Start: "09:00", End: "17:00"}},
				},
				MaxHours: 40,
				Active:   true,
			},
		},
		Rooms: []model.Room{
			{ID: "R1", Type: model.RoomClassroom, Capacity: 40, Active: true},
		},
		TimeSlots: buildWeekSlots(),
	}
}

func buildWeekSlots() []model.TimeSlot {
	slots := make([]model.TimeSlot, 0, 10)
	hours := []string{"09:00", "10:00", "11:00", "12:00", "13:00"}
	for _, day := range []string{"Mon", "Tue"} {
		for i, start := range hours {
			end := "10:00"
			switch start {
			case "09:00":
				end = "10:00"
			case "10:00":
				end = "11:00"
			case "11:00":
				end = "12:00"
			case "12:00":
				end = "13:00"
			case "13:00":
				end = "14:00"
			}
			slots = append(slots, model.TimeSlot{
				ID:         day + "-" + string(rune('1'+i)),
				Day:        day,
				SlotNumber: i + 1,
				Start:      start,
				End:        end,
				Type:       model.SlotRegular,
				Active:     true,
			})
		}
	}
	return slots
}

// forcedDoubleBookingSnapshot builds spec.md §8 scenario 2: two courses
// competing for the single available slot/faculty/room combination.
func forcedDoubleBookingSnapshot() model.Snapshot {
	return model.Snapshot{
		Courses: []model.Course{
			{
				Code:       "CS101",
				Type:       model.CourseTheory,
				TheorySpec: model.SessionSpec{WeeklyHours: 1, SessionDuration: 1},
				Sections:   []model.Section{{Name: "A", Strength: 20}},
			},
			{
				Code:       "CS102",
				Type:       model.CourseTheory,
				TheorySpec: model.SessionSpec{WeeklyHours: 1, SessionDuration: 1},
				Sections:   []model.Section{{Name: "A", Strength: 20}},
			},
		},
		Faculty: []model.Faculty{
			{
				ID:             "F1",
				Qualifications: []string{"CS101", "CS102"},
				Availability: map[string][]model.TimeRange{
					"Mon": {{Start: "09:00", End: "10:00"}},
				},
				MaxHours: 10,
				Active:   true,
			},
		},
		Rooms: []model.Room{
			{ID: "R1", Type: model.RoomClassroom, Capacity: 40, Active: true},
		},
		TimeSlots: []model.TimeSlot{
			{ID: "Mon-1", Day: "Mon", SlotNumber: 1, Start: "09:00", End: "10:00", Type: model.SlotRegular, Active: true},
		},
	}
}

// capacityShortfallSnapshot builds spec.md §8 scenario 3.
func capacityShortfallSnapshot() model.Snapshot {
	snapshot := trivialFeasibleSnapshot()
	snapshot.Courses[0].Sections[0].Strength = 60
	snapshot.Rooms[0].Capacity = 30
	return snapshot
}

// labContinuitySnapshot builds spec.md §8 scenario 4: a 3h lab requiring
// continuity against six Monday slots.
func labContinuitySnapshot() model.Snapshot {
	slots := make([]model.TimeSlot, 0, 6)
	for i := 1; i <= 6; i++ {
		slots = append(slots, model.TimeSlot{
			ID:         "Mon-" + string(rune('0'+i)),
			Day:        "Mon",
			SlotNumber: i,
			Start:      "09:00",
			End:        "10:00",
			Type:       model.SlotRegular,
			Active:     true,
		})
	}

	return model.Snapshot{
		Courses: []model.Course{
			{
				Code: "CS201",
				Type: model.CourseLab,
				LabSpec: model.SessionSpec{
					WeeklyHours:        3,
					SessionDuration:    3,
					ContinuityRequired: true,
				},
				LabSubtype: "general",
				Sections:   []model.Section{{Name: "A", Strength: 20}},
			},
		},
		Faculty: []model.Faculty{
			{
				ID:             "F1",
				Qualifications: []string{"CS201"},
				Availability: map[string][]model.TimeRange{
					"Mon": {{Start: "09:00", End: "15:00"}},
				},
				MaxHours: 10,
				Active:   true,
			},
		},
		Rooms: []model.Room{
			{ID: "LAB1", Type: model.RoomLab, LabSubtype: "general", Capacity: 30, Active: true},
		},
		TimeSlots: slots,
	}
}
