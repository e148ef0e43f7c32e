package engine

import (
	"context"
	"testing"

	"github.com/limaJavier/evotimetable/pkg/model"
	"github.com/stretchr/testify/assert"
)

func smallConfig(seed int64) Config {
	config := DefaultConfig()
	config.PopulationSize = 12
	config.MaxGenerations = 15
	config.ElitismCount = 2
	config.TournamentSize = 3
	config.Seed = &seed
	return config
}

func TestRun_BestFitnessNeverRegressesAcrossHistory(t *testing.T) {
	snapshot := trivialFeasibleSnapshot()
	config := smallConfig(7)

	result, err := Run(context.Background(), snapshot, config, nil)
	assert.NoError(t, err)

	for i := 1; i < len(result.History); i++ {
		assert.GreaterOrEqual(t, result.History[i].BestFitness, result.History[i-1].BestFitness)
	}
}

func TestRun_FixedSeedIsDeterministic(t *testing.T) {
	snapshot := forcedDoubleBookingSnapshot()
	config := smallConfig(99)

	first, err := Run(context.Background(), snapshot, config, nil)
	assert.NoError(t, err)

	second, err := Run(context.Background(), snapshot, config, nil)
	assert.NoError(t, err)

	assert.Equal(t, first.Fitness, second.Fitness)
	assert.Equal(t, first.HardViolations, second.HardViolations)
	assert.Equal(t, first.Genes, second.Genes)
	assert.Equal(t, first.History, second.History)
}

func TestRun_RejectsEmptyCourseList(t *testing.T) {
	snapshot := model.Snapshot{}
	config := smallConfig(1)

	_, err := Run(context.Background(), snapshot, config, nil)
	assert.ErrorIs(t, err, model.ErrInputInfeasible)
}

func TestRun_RejectsInvalidConfigBeforeRunning(t *testing.T) {
	snapshot := trivialFeasibleSnapshot()
	config := smallConfig(1)
	config.PopulationSize = 0

	_, err := Run(context.Background(), snapshot, config, nil)
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestRun_ReachesSuccessOnTrivialSnapshot(t *testing.T) {
	snapshot := trivialFeasibleSnapshot()
	config := smallConfig(3)

	result, err := Run(context.Background(), snapshot, config, nil)
	assert.NoError(t, err)

	assert.Equal(t, OutcomeSuccess, result.Outcome)
	assert.Equal(t, 0, result.HardViolations)
	assert.False(t, result.Cancelled)
}

func TestRun_CancelledContextStopsEarly(t *testing.T) {
	snapshot := trivialFeasibleSnapshot()
	config := smallConfig(5)
	config.MaxGenerations = 10000

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := Run(ctx, snapshot, config, nil)
	assert.NoError(t, err)
	assert.True(t, result.Cancelled)
	assert.Equal(t, OutcomeCancelled, result.Outcome)
}

func TestRun_ProgressSinkErrorCancelsRun(t *testing.T) {
	// The sink is first notified at generation 10, so the run must not be
	// able to terminate with success before then: the forced double-booking
	// scenario never reaches zero hard violations.
	snapshot := forcedDoubleBookingSnapshot()
	config := smallConfig(11)
	config.MaxGenerations = 1000

	sink := ProgressFunc(func(ctx context.Context, progress Progress) error {
		return context.Canceled
	})

	result, err := Run(context.Background(), snapshot, config, sink)
	assert.NoError(t, err)
	assert.True(t, result.Cancelled)
	assert.Equal(t, OutcomeCancelled, result.Outcome)
	assert.LessOrEqual(t, len(result.History), 20)
}
