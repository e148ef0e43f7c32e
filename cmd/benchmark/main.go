package main

import (
	"context"
	"encoding/csv"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/limaJavier/evotimetable/pkg/engine"
	"github.com/limaJavier/evotimetable/pkg/model"
)

// runConfig is one point in the benchmark matrix: a seed/population/mutation
// combination run against a single input snapshot.
type runConfig struct {
	Seed           int64
	PopulationSize int
	MutationRate   float64
}

func defaultMatrix() []runConfig {
	matrix := make([]runConfig, 0, len(seeds)*len(populations)*len(mutationRates))
	for _, seed := range seeds {
		for _, population := range populations {
			for _, mutationRate := range mutationRates {
				matrix = append(matrix, runConfig{Seed: seed, PopulationSize: population, MutationRate: mutationRate})
			}
		}
	}
	return matrix
}

var (
	seeds         = []int64{1, 2, 3}
	populations   = []int{50, 100, 200}
	mutationRates = []float64{0.05, 0.1, 0.2}
)

func main() {
	filePathPtr := flag.String("file", "", "Path to the input snapshot file to benchmark against")
	generationsPtr := flag.Int("generations", 200, "Maximum generations per run")
	outPathPtr := flag.String("out", "benchmark_results.csv", "Path to the CSV file the results are written to")
	flag.Parse()

	if *filePathPtr == "" {
		log.Fatal("an input file must be specified")
	}

	snapshot, err := model.SnapshotFromJSON(*filePathPtr)
	if err != nil {
		log.Fatalf("cannot parse input file: %v", err)
	}

	results := make([]benchmarkResult, 0, len(defaultMatrix()))
	for _, run := range defaultMatrix() {
		config := engine.DefaultConfig()
		config.Seed = &run.Seed
		config.PopulationSize = run.PopulationSize
		config.MutationRate = run.MutationRate
		config.MaxGenerations = *generationsPtr

		fmt.Printf("benchmarking seed=%d population=%d mutation-rate=%.2f\n", run.Seed, run.PopulationSize, run.MutationRate)

		started := time.Now()
		result, err := engine.Run(context.Background(), snapshot, config, nil)
		if err != nil {
			log.Fatalf("run failed for %+v: %v", run, err)
		}

		results = append(results, benchmarkResult{
			Config:         run,
			Generations:    len(result.History),
			FinalFitness:   result.Fitness,
			HardViolations: result.HardViolations,
			SoftViolations: result.SoftViolations,
			Outcome:        result.Outcome,
			WallClock:      time.Since(started),
		})
	}

	if err := writeCSV(*outPathPtr, results); err != nil {
		log.Fatalf("cannot write results csv: %v", err)
	}
}

type benchmarkResult struct {
	Config         runConfig
	Generations    int
	FinalFitness   float64
	HardViolations int
	SoftViolations int
	Outcome        engine.Outcome
	WallClock      time.Duration
}

func writeCSV(outPath string, results []benchmarkResult) error {
	file, err := os.Create(outPath)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	defer writer.Flush()

	header := []string{"seed", "population-size", "mutation-rate", "generations", "final-fitness", "hard-violations", "soft-violations", "outcome", "wall-clock-seconds"}
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, r := range results {
		record := []string{
			fmt.Sprintf("%d", r.Config.Seed),
			fmt.Sprintf("%d", r.Config.PopulationSize),
			fmt.Sprintf("%.2f", r.Config.MutationRate),
			fmt.Sprintf("%d", r.Generations),
			fmt.Sprintf("%.2f", r.FinalFitness),
			fmt.Sprintf("%d", r.HardViolations),
			fmt.Sprintf("%d", r.SoftViolations),
			string(r.Outcome),
			fmt.Sprintf("%.3f", r.WallClock.Seconds()),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}
	return nil
}
