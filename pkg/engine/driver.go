package engine

import (
	"context"
	"math/rand/v2"
	"runtime"
	"sync"
	"time"

	"github.com/limaJavier/evotimetable/pkg/model"
)

// HistoryRecord is one per-generation entry of the convergence trace
// carried in Result (spec.md §4.5 step 4).
type HistoryRecord struct {
	Generation         int
	BestFitness        float64
	MeanFitness        float64
	BestHardViolations int
	BestSoftViolations int
}

// Outcome labels why a run terminated.
type Outcome string

const (
	OutcomeSuccess   Outcome = "success"
	OutcomeExhausted Outcome = "exhausted"
	OutcomeCancelled Outcome = "cancelled"
)

// Result is the immutable output of one Run, spec.md §6.
type Result struct {
	Genes          []model.Gene
	Fitness        float64
	HardViolations int
	SoftViolations int
	Breakdown      map[string]int
	History        []HistoryRecord
	Duration       time.Duration
	Outcome        Outcome
	Cancelled      bool
}

// successThreshold is the fitness floor the termination check in
// spec.md §4.5 step 6 requires alongside zero hard violations.
const successThreshold = 950.0

// Run executes one evolutionary search (spec.md §4.5/§6). ctx's
// cancellation is the cooperative cancel token checked at each generation
// boundary; sink may be nil.
func Run(ctx context.Context, snapshot model.Snapshot, config Config, sink ProgressSink) (Result, error) {
	if err := config.Validate(); err != nil {
		return Result{}, err
	}
	if err := snapshot.Validate(); err != nil {
		return Result{}, err
	}

	started := nowFunc()
	oracle := newFeasibilityOracle()
	pools := newCandidatePools(snapshot, oracle)
	rng := newRand(config.Seed)

	population := initializePopulation(snapshot, pools, config, rng)

	var best model.Chromosome
	haveBest := false
	history := make([]HistoryRecord, 0, config.MaxGenerations)
	outcome := OutcomeExhausted
	cancelled := false

	for generation := 1; ; generation++ {
		evaluatePopulation(snapshot, population, config.Weights)

		generationBest := fittest(population)
		if !haveBest || generationBest.Fitness > best.Fitness {
			best = generationBest.Clone()
			haveBest = true
		}

		mean := meanFitness(population)
		history = append(history, HistoryRecord{
			Generation:         generation,
			BestFitness:        best.Fitness,
			MeanFitness:        mean,
			BestHardViolations: best.HardViolations,
			BestSoftViolations: best.SoftViolations,
		})

		if sink != nil && generation%10 == 0 {
			progress := Progress{
				Generation:         generation,
				MaxGenerations:     config.MaxGenerations,
				PercentComplete:    100 * float64(generation) / float64(config.MaxGenerations),
				BestFitness:        best.Fitness,
				MeanFitness:        mean,
				BestHardViolations: best.HardViolations,
			}
			if err := sink.Notify(ctx, progress); err != nil {
				outcome = OutcomeCancelled
				cancelled = true
				break
			}
		}

		if err := ctx.Err(); err != nil {
			outcome = OutcomeCancelled
			cancelled = true
			break
		}
		if best.HardViolations == 0 && best.Fitness > successThreshold {
			outcome = OutcomeSuccess
			break
		}
		if generation >= config.MaxGenerations {
			outcome = OutcomeExhausted
			break
		}

		population = evolve(snapshot, pools, population, config, rng)
	}

	return Result{
		Genes:          best.Genes,
		Fitness:        best.Fitness,
		HardViolations: best.HardViolations,
		SoftViolations: best.SoftViolations,
		Breakdown:      best.Breakdown,
		History:        history,
		Duration:       sinceFunc(started),
		Outcome:        outcome,
		Cancelled:      cancelled,
	}, nil
}

// nowFunc/sinceFunc are indirected so tests can stub wall-clock timing if
// ever needed; production always uses time.Now/time.Since.
var nowFunc = time.Now
var sinceFunc = time.Since

func initializePopulation(snapshot model.Snapshot, pools candidatePools, config Config, rng *rand.Rand) []model.Chromosome {
	population := make([]model.Chromosome, config.PopulationSize)
	for i := range population {
		population[i] = buildChromosome(snapshot, pools, rng)
	}
	return population
}

// evaluatePopulation scores every chromosome in place. Distinct
// chromosomes share no mutable state, so evaluation runs across a bounded
// worker pool (spec.md §5): the snapshot is read-only and referenced, never
// copied, by every worker.
func evaluatePopulation(snapshot model.Snapshot, population []model.Chromosome, weights map[string]float64) {
	workers := runtime.GOMAXPROCS(0)
	if workers > len(population) {
		workers = len(population)
	}
	if workers < 1 {
		workers = 1
	}

	jobs := make(chan int, len(population))
	for i := range population {
		jobs <- i
	}
	close(jobs)

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				population[i] = Evaluate(snapshot, population[i], weights)
			}
		}()
	}
	wg.Wait()
}

func fittest(population []model.Chromosome) model.Chromosome {
	best := population[0]
	for _, chromosome := range population[1:] {
		if chromosome.Fitness > best.Fitness {
			best = chromosome
		}
	}
	return best
}

func meanFitness(population []model.Chromosome) float64 {
	total := 0.0
	for _, chromosome := range population {
		total += chromosome.Fitness
	}
	return total / float64(len(population))
}
