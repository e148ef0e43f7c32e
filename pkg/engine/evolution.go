package engine

import (
	"math/rand/v2"
	"slices"

	"github.com/limaJavier/evotimetable/pkg/model"
)

// evolve builds the next generation per spec.md §4.5 step 7: elitism,
// then tournament selection + crossover + mutation until the population is
// refilled. Offspring are always fresh Chromosome values (Clone or
// keyedCrossover's own allocation) — no shared backing array with a parent
// ever gets mutated.
func evolve(snapshot model.Snapshot, pools candidatePools, population []model.Chromosome, config Config, rng *rand.Rand) []model.Chromosome {
	ranked := make([]model.Chromosome, len(population))
	copy(ranked, population)
	slices.SortFunc(ranked, func(a, b model.Chromosome) int {
		switch {
		case a.Fitness > b.Fitness:
			return -1
		case a.Fitness < b.Fitness:
			return 1
		default:
			return 0
		}
	})

	next := make([]model.Chromosome, 0, len(population))
	for i := 0; i < config.ElitismCount && i < len(ranked); i++ {
		next = append(next, ranked[i].Clone())
	}

	for len(next) < config.PopulationSize {
		parent1 := tournamentSelect(ranked, config.TournamentSize, rng)
		parent2 := tournamentSelect(ranked, config.TournamentSize, rng)

		var offspring model.Chromosome
		if rng.Float64() < config.CrossoverRate {
			offspring = keyedCrossover(snapshot, parent1, parent2, rng)
		} else {
			offspring = parent1.Clone()
		}

		if rng.Float64() < config.MutationRate {
			offspring = mutate(snapshot, pools, offspring, rng)
		}

		next = append(next, offspring)
	}

	return next
}

// tournamentSelect samples tournamentSize members uniformly with
// replacement and returns the fittest; ties are broken by encounter order
// (spec.md §4.5 "Tournament selection").
func tournamentSelect(ranked []model.Chromosome, tournamentSize int, rng *rand.Rand) model.Chromosome {
	best := ranked[rng.IntN(len(ranked))]
	for i := 1; i < tournamentSize; i++ {
		candidate := ranked[rng.IntN(len(ranked))]
		if candidate.Fitness > best.Fitness {
			best = candidate
		}
	}
	return best
}

// keyedCrossover recombines two parents gene-by-gene, keyed on
// (course, section, session-type, session-index) rather than by gene
// position. spec.md §9's design notes flag plain positional single-point
// crossover as a source of infeasibility pressure for a bag-of-genes
// chromosome with no positional identity, and recommend this keyed scheme
// instead; DESIGN.md records the decision.
func keyedCrossover(snapshot model.Snapshot, parent1, parent2 model.Chromosome, rng *rand.Rand) model.Chromosome {
	byKey1 := indexGenesByKey(parent1.Genes)
	byKey2 := indexGenesByKey(parent2.Genes)

	seen := make(map[string]bool, len(byKey1)+len(byKey2))
	genes := make([]model.Gene, 0, len(byKey1))

	inherit := func(key string) {
		if seen[key] {
			return
		}
		seen[key] = true
		gene1, has1 := byKey1[key]
		gene2, has2 := byKey2[key]
		switch {
		case has1 && has2:
			if rng.Float64() < 0.5 {
				genes = append(genes, gene1)
			} else {
				genes = append(genes, gene2)
			}
		case has1:
			genes = append(genes, gene1)
		case has2:
			genes = append(genes, gene2)
		}
	}

	for _, course := range snapshot.Courses {
		for _, section := range course.Sections {
			for _, requirement := range model.DeriveSessionRequirements(course, section) {
				inherit(sessionKey(requirement.CourseCode, requirement.Section, requirement.SessionType, requirement.Index))
			}
		}
	}

	return model.Chromosome{Genes: genes}
}

func indexGenesByKey(genes []model.Gene) map[string]model.Gene {
	byKey := make(map[string]model.Gene, len(genes))
	for _, gene := range genes {
		byKey[sessionKey(gene.CourseCode, gene.SectionName, gene.SessionType, gene.SessionIndex)] = gene
	}
	return byKey
}

// mutate applies one of three equally-likely mutations to a uniformly
// chosen gene (spec.md §4.5 step 7): time, faculty, or room. The offspring
// is a fresh Chromosome; the parent's gene slice is never written through.
func mutate(snapshot model.Snapshot, pools candidatePools, chromosome model.Chromosome, rng *rand.Rand) model.Chromosome {
	if len(chromosome.Genes) == 0 {
		return chromosome
	}

	mutated := chromosome.Clone()
	geneIndex := rng.IntN(len(mutated.Genes))
	gene := mutated.Genes[geneIndex]

	idx := snapshot.Index()
	course, ok := idx.CourseByCode[gene.CourseCode]
	if !ok {
		return mutated
	}
	section, ok := idx.SectionOf(gene.CourseCode, gene.SectionName)
	if !ok {
		return mutated
	}

	switch rng.IntN(3) {
	case 0: // time mutation
		slots := pools.ActiveSlots()
		if len(slots) > 0 {
			gene.TimeSlotID = slots[rng.IntN(len(slots))].ID
		}
	case 1: // faculty mutation
		qualified := pools.QualifiedFaculty(course)
		if len(qualified) > 0 {
			gene.FacultyID = qualified[rng.IntN(len(qualified))].ID
		}
	case 2: // room mutation
		rooms := pools.SuitableRooms(course, gene.SessionType, section)
		if len(rooms) > 0 {
			gene.RoomID = rooms[rng.IntN(len(rooms))].ID
		}
	}

	mutated.Genes[geneIndex] = gene
	return mutated
}
