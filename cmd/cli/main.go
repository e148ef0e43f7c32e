package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"path"
	"slices"

	"github.com/limaJavier/evotimetable/pkg/engine"
	"github.com/limaJavier/evotimetable/pkg/model"
	"github.com/samber/lo"
)

func main() {
	execDir := findConfigDir()

	filePathPtr := flag.String("file", "", "Path to the input snapshot file")
	outFilePtr := flag.String("out", "", "Path to the file where the result will be written; if empty, it'll be written to Standard Output")
	configPathPtr := flag.String("config", "", "Path to a JSON file of engine config overrides; defaults to config.json next to the executable if present")
	seedPtr := flag.Int64("seed", 0, "RNG seed; if 0, a random seed is used")
	populationPtr := flag.Int("population", 0, "Population size override (0 keeps the configured default)")
	generationsPtr := flag.Int("generations", 0, "Maximum generations override (0 keeps the configured default)")
	progressPtr := flag.Bool("progress", false, "Print progress to Standard Error every 10 generations")
	verbosePtr := flag.Bool("verbose", false, "Print the fitness breakdown alongside the result")
	flag.Parse()

	if *filePathPtr == "" {
		log.Fatal("an input file must be specified")
	}

	snapshot, err := model.SnapshotFromJSON(*filePathPtr)
	if err != nil {
		log.Fatalf("cannot parse input file: %v", err)
	}

	config := loadConfig(*configPathPtr, execDir)
	if *seedPtr != 0 {
		seed := *seedPtr
		config.Seed = &seed
	}
	if *populationPtr > 0 {
		config.PopulationSize = *populationPtr
	}
	if *generationsPtr > 0 {
		config.MaxGenerations = *generationsPtr
	}

	var sink engine.ProgressSink
	if *progressPtr {
		sink = engine.ProgressFunc(func(_ context.Context, p engine.Progress) error {
			fmt.Fprintf(os.Stderr, "generation %d/%d (%.1f%%): best=%.1f mean=%.1f hard=%d\n",
				p.Generation, p.MaxGenerations, p.PercentComplete, p.BestFitness, p.MeanFitness, p.BestHardViolations)
			return nil
		})
	}

	result, err := engine.Run(context.Background(), snapshot, config, sink)
	if err != nil {
		log.Fatalf("an error occurred while running the scheduler: %v", err)
	}

	if result.HardViolations > 0 {
		fmt.Fprintf(os.Stderr, "no fully feasible timetable was found; %d hard violation(s) remain\n", result.HardViolations)
	}

	output := map[string]any{
		"genes":           result.Genes,
		"fitness":         result.Fitness,
		"hard_violations": result.HardViolations,
		"soft_violations": result.SoftViolations,
		"outcome":         result.Outcome,
		"duration_ms":     result.Duration.Milliseconds(),
	}
	if *verbosePtr {
		output["breakdown"] = result.Breakdown
		output["history"] = result.History
	}

	resultJSON, err := json.Marshal(output)
	if err != nil {
		log.Fatalf("an error occurred while building output json: %v", err)
	}

	if *outFilePtr == "" {
		fmt.Println(string(resultJSON))
	} else if err := os.WriteFile(*outFilePtr, resultJSON, 0666); err != nil {
		log.Fatalf("an error occurred while writing to the output file: %v", err)
	}

	switch result.Outcome {
	case engine.OutcomeSuccess:
		os.Exit(10)
	case engine.OutcomeExhausted:
		os.Exit(15)
	default:
		os.Exit(20)
	}
}

func loadConfig(explicitPath, execDir string) engine.Config {
	configPath := explicitPath
	if configPath == "" {
		candidate := path.Join(execDir, "config.json")
		if _, err := os.Stat(candidate); err == nil {
			configPath = candidate
		}
	}
	if configPath == "" {
		return engine.DefaultConfig()
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		log.Fatalf("cannot read config file: %v", err)
	}

	var overrides map[string]any
	if err := json.Unmarshal(data, &overrides); err != nil {
		log.Fatalf("cannot parse config file: %v", err)
	}

	config, err := engine.DecodeConfig(overrides)
	if err != nil {
		log.Fatalf("invalid config file: %v", err)
	}
	return config
}

func findConfigDir() string {
	execPath, err := os.Executable()
	if err != nil {
		log.Fatalf("cannot determine executable path: %v", err)
	}
	execDir := path.Dir(execPath)

	files, err := os.ReadDir(execDir)
	if err != nil {
		return execDir
	}
	fileNames := lo.Map(files, func(file os.DirEntry, _ int) string { return file.Name() })
	if !slices.Contains(fileNames, "config.json") {
		return execDir
	}
	return execDir
}
