package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSnapshotIndex_Lookups(t *testing.T) {
	snapshot := Snapshot{
		Courses: []Course{{Code: "CS101", Sections: []Section{{Name: "A", Strength: 30}}}},
		Faculty: []Faculty{{ID: "F1"}},
		Rooms:   []Room{{ID: "R1", Capacity: 40}},
		TimeSlots: []TimeSlot{
			{ID: "Mon-1", Day: "Mon", SlotNumber: 1},
		},
	}

	idx := snapshot.Index()

	assert.Equal(t, "CS101", idx.CourseByCode["CS101"].Code)
	assert.Equal(t, "F1", idx.FacultyByID["F1"].ID)
	assert.Equal(t, 40, idx.RoomByID["R1"].Capacity)
	assert.Equal(t, 1, idx.SlotByID["Mon-1"].SlotNumber)

	section, ok := idx.SectionOf("CS101", "A")
	assert.True(t, ok)
	assert.Equal(t, 30, section.Strength)

	_, ok = idx.SectionOf("CS101", "B")
	assert.False(t, ok)
}

func TestSnapshot_ValidateRejectsEmptyCourses(t *testing.T) {
	err := Snapshot{}.Validate()
	assert.ErrorIs(t, err, ErrInputInfeasible)
}
