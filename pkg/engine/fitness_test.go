package engine

import (
	"testing"

	"github.com/limaJavier/evotimetable/pkg/model"
	"github.com/stretchr/testify/assert"
)

func TestEvaluate_TrivialFeasibleScoresPerfect(t *testing.T) {
	snapshot := trivialFeasibleSnapshot()
	chromosome := model.Chromosome{
		Genes: []model.Gene{
			{CourseCode: "CS101", SectionName: "A", SessionType: model.SessionTheory, SessionIndex: 0, TimeSlotID: "Mon-1", FacultyID: "F1", RoomID: "R1", DurationHours: 1, ConsecutiveSlots: 1},
			{CourseCode: "CS101", SectionName: "A", SessionType: model.SessionTheory, SessionIndex: 1, TimeSlotID: "Tue-1", FacultyID: "F1", RoomID: "R1", DurationHours: 1, ConsecutiveSlots: 1},
		},
	}

	scored := Evaluate(snapshot, chromosome, defaultWeights())

	assert.Equal(t, 1000.0, scored.Fitness)
	assert.Equal(t, 0, scored.HardViolations)
}

func TestEvaluate_DoubleBookingDropsFitness(t *testing.T) {
	snapshot := forcedDoubleBookingSnapshot()
	chromosome := model.Chromosome{
		Genes: []model.Gene{
			{CourseCode: "CS101", SectionName: "A", SessionType: model.SessionTheory, SessionIndex: 0, TimeSlotID: "Mon-1", FacultyID: "F1", RoomID: "R1", DurationHours: 1, ConsecutiveSlots: 1},
			{CourseCode: "CS102", SectionName: "A", SessionType: model.SessionTheory, SessionIndex: 0, TimeSlotID: "Mon-1", FacultyID: "F1", RoomID: "R1", DurationHours: 1, ConsecutiveSlots: 1},
		},
	}

	scored := Evaluate(snapshot, chromosome, defaultWeights())

	assert.Equal(t, 0.0, scored.Fitness)
	assert.Greater(t, scored.HardViolations, 0)
}

func TestEvaluate_RoomCapacityExceeded(t *testing.T) {
	snapshot := capacityShortfallSnapshot()
	chromosome := model.Chromosome{
		Genes: []model.Gene{
			{CourseCode: "CS101", SectionName: "A", SessionType: model.SessionTheory, SessionIndex: 0, TimeSlotID: "Mon-1", FacultyID: "F1", RoomID: "R1", DurationHours: 1, ConsecutiveSlots: 1},
			{CourseCode: "CS101", SectionName: "A", SessionType: model.SessionTheory, SessionIndex: 1, TimeSlotID: "Tue-1", FacultyID: "F1", RoomID: "R1", DurationHours: 1, ConsecutiveSlots: 1},
		},
	}

	scored := Evaluate(snapshot, chromosome, defaultWeights())

	assert.Equal(t, 2, scored.Breakdown[ViolationRoomCapacityExceeded])
	assert.Equal(t, 0.0, scored.Fitness) // 1000 - 2*800 = -600, floored at 0
}

func TestEvaluate_LabContinuityFeasible(t *testing.T) {
	snapshot := labContinuitySnapshot()
	chromosome := model.Chromosome{
		Genes: []model.Gene{
			{CourseCode: "CS201", SectionName: "A", SessionType: model.SessionLab, SessionIndex: 0, TimeSlotID: "Mon-1", FacultyID: "F1", RoomID: "LAB1", DurationHours: 3, ConsecutiveSlots: 3},
		},
	}
	// Fill in the neighbor genes a construction/driver run would also place
	// at slot+1 and slot+2 for continuity to hold; Evaluate only looks at
	// whether they exist in the gene bag sharing faculty/room/section/day.
	genes := append(chromosome.Genes,
		model.Gene{CourseCode: "CS201", SectionName: "A", SessionType: model.SessionLab, SessionIndex: 0, TimeSlotID: "Mon-2", FacultyID: "F1", RoomID: "LAB1", DurationHours: 0, ConsecutiveSlots: 0},
		model.Gene{CourseCode: "CS201", SectionName: "A", SessionType: model.SessionLab, SessionIndex: 0, TimeSlotID: "Mon-3", FacultyID: "F1", RoomID: "LAB1", DurationHours: 0, ConsecutiveSlots: 0},
	)
	chromosome.Genes = genes

	scored := Evaluate(snapshot, chromosome, defaultWeights())

	assert.Equal(t, 0, scored.Breakdown[ViolationLabContinuityBroken])
}

func TestEvaluate_LabContinuityBrokenAtEndOfDay(t *testing.T) {
	snapshot := labContinuitySnapshot()
	chromosome := model.Chromosome{
		Genes: []model.Gene{
			// Last slot of the day: neighbors at +1 and +2 don't exist.
			{CourseCode: "CS201", SectionName: "A", SessionType: model.SessionLab, SessionIndex: 0, TimeSlotID: "Mon-6", FacultyID: "F1", RoomID: "LAB1", DurationHours: 3, ConsecutiveSlots: 3},
		},
	}

	scored := Evaluate(snapshot, chromosome, defaultWeights())

	assert.Equal(t, 2, scored.Breakdown[ViolationLabContinuityBroken])
}

func TestEvaluate_MissingSessionCountedAsHard(t *testing.T) {
	snapshot := trivialFeasibleSnapshot()
	chromosome := model.Chromosome{} // no genes at all

	scored := Evaluate(snapshot, chromosome, defaultWeights())

	assert.Equal(t, 2, scored.Breakdown[ViolationMissingSession])
	assert.GreaterOrEqual(t, scored.HardViolations, 2)
}

func TestEvaluate_FitnessFormulaRoundTrips(t *testing.T) {
	snapshot := capacityShortfallSnapshot()
	chromosome := model.Chromosome{
		Genes: []model.Gene{
			{CourseCode: "CS101", SectionName: "A", SessionType: model.SessionTheory, SessionIndex: 0, TimeSlotID: "Mon-1", FacultyID: "F1", RoomID: "R1", DurationHours: 1, ConsecutiveSlots: 1},
		},
	}

	scored := Evaluate(snapshot, chromosome, defaultWeights())

	penalty := 0.0
	weights := defaultWeights()
	for category, count := range scored.Breakdown {
		penalty += float64(count) * weights[category]
	}
	expected := 1000.0 - penalty
	if expected < 0 {
		expected = 0
	}
	assert.Equal(t, expected, scored.Fitness)
}
