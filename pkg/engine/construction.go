package engine

import (
	"math/rand/v2"

	"github.com/limaJavier/evotimetable/pkg/model"
)

// buildChromosome performs one Random Construction pass (spec.md §4.2): for
// every (course, section, session-requirement) it uniformly samples a time
// slot, a qualified faculty member, and a suitable room. When either
// candidate set is empty for a requirement, no gene is emitted for it — the
// engine surfaces the gap as a structural infeasibility later, in the
// fitness evaluator's hard-violation count, rather than aborting
// construction or attempting a repair.
func buildChromosome(snapshot model.Snapshot, pools candidatePools, rng *rand.Rand) model.Chromosome {
	genes := make([]model.Gene, 0)

	for _, course := range snapshot.Courses {
		qualifiedTheory := pools.QualifiedFaculty(course)
		slots := pools.ActiveSlots()

		for _, section := range course.Sections {
			for _, requirement := range model.DeriveSessionRequirements(course, section) {
				gene, ok := sampleGene(course, section, requirement, qualifiedTheory, slots, pools, rng)
				if !ok {
					continue
				}
				genes = append(genes, gene)
			}
		}
	}

	return model.Chromosome{Genes: genes}
}

func sampleGene(
	course model.Course,
	section model.Section,
	requirement model.SessionRequirement,
	qualifiedFaculty []model.Faculty,
	slots []model.TimeSlot,
	pools candidatePools,
	rng *rand.Rand,
) (model.Gene, bool) {
	if len(slots) == 0 || len(qualifiedFaculty) == 0 {
		return model.Gene{}, false
	}

	rooms := pools.SuitableRooms(course, requirement.SessionType, section)
	if len(rooms) == 0 {
		return model.Gene{}, false
	}

	slot := slots[rng.IntN(len(slots))]
	faculty := qualifiedFaculty[rng.IntN(len(qualifiedFaculty))]
	room := rooms[rng.IntN(len(rooms))]

	return model.Gene{
		CourseCode:       course.Code,
		SectionName:      section.Name,
		SessionType:      requirement.SessionType,
		SessionIndex:     requirement.Index,
		TimeSlotID:       slot.ID,
		FacultyID:        faculty.ID,
		RoomID:           room.ID,
		DurationHours:    requirement.Duration,
		ConsecutiveSlots: requirement.ConsecutiveSlots,
	}, true
}
