package intervals

import (
	"testing"
	"time"

	"roundtimer/internal/core/cue"
	"roundtimer/internal/core/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const step = 100 * time.Millisecond

type segment struct {
	phase    model.Phase
	duration time.Duration
}

type runResult struct {
	segments []segment
	events   []cue.Event
	maxRound int
}

func runToEnd(t *testing.T, machine *Machine) runResult {
	t.Helper()
	var result runResult
	for i := 0; machine.State().Running; i++ {
		require.Less(t, i, 100000, "session did not finish")
		before := machine.State()
		if len(result.segments) == 0 || result.segments[len(result.segments)-1].phase != before.Phase {
			result.segments = append(result.segments, segment{phase: before.Phase})
		}
		result.segments[len(result.segments)-1].duration += step
		result.events = append(result.events, machine.Advance(step)...)
		if round := machine.State().Round; round > result.maxRound {
			result.maxRound = round
		}
	}
	return result
}

func countKind(events []cue.Event, kind cue.Kind) int {
	count := 0
	for _, event := range events {
		if event.Kind == kind {
			count++
		}
	}
	return count
}

func standardConfig() model.IntervalConfig {
	return model.IntervalConfig{
		Rounds:  3,
		Prepare: model.DefaultPrepare,
		Work:    30 * time.Second,
		Rest:    30 * time.Second,
	}
}

func TestMachineStartsInPrepare(t *testing.T) {
	machine := NewMachine(cue.DefaultPolicy())
	assert.Equal(t, model.PhaseIdle, machine.State().Phase)

	require.NoError(t, machine.Start(standardConfig()))
	state := machine.State()
	assert.Equal(t, model.PhasePrepare, state.Phase)
	assert.Equal(t, 1, state.Round)
	assert.Equal(t, 3, state.TotalRounds)
	assert.Equal(t, 10*time.Second, state.Remaining)
	assert.Equal(t, 10, state.RemainingSeconds())
	assert.True(t, state.Running)
}

func TestMachineStandardSequence(t *testing.T) {
	machine := NewMachine(cue.DefaultPolicy())
	require.NoError(t, machine.Start(standardConfig()))

	result := runToEnd(t, machine)

	assert.Equal(t, []segment{
		{model.PhasePrepare, 10 * time.Second},
		{model.PhaseWork, 30 * time.Second},
		{model.PhaseRest, 30 * time.Second},
		{model.PhaseWork, 30 * time.Second},
		{model.PhaseRest, 30 * time.Second},
		{model.PhaseWork, 30 * time.Second},
		{model.PhaseRest, 30 * time.Second},
	}, result.segments)

	assert.Equal(t, 2, countKind(result.events, cue.RoundBoundary))
	assert.Equal(t, 1, countKind(result.events, cue.SessionEnd))
	assert.Equal(t, 4, countKind(result.events, cue.PhaseChange))
	assert.Equal(t, 21, countKind(result.events, cue.ShortTick))
	assert.Equal(t, cue.SessionEnd, result.events[len(result.events)-1].Kind)
	assert.Equal(t, 3, result.maxRound)

	final := machine.State()
	assert.Equal(t, model.PhaseIdle, final.Phase)
	assert.False(t, final.Running)
}

func TestMachineRoundBoundaries(t *testing.T) {
	for rounds := 1; rounds <= 5; rounds++ {
		machine := NewMachine(cue.DefaultPolicy())
		config := standardConfig()
		config.Rounds = rounds
		config.Work = 2 * time.Second
		config.Rest = time.Second
		require.NoError(t, machine.Start(config))

		result := runToEnd(t, machine)

		var announced []int
		for _, event := range result.events {
			if event.Kind == cue.RoundBoundary {
				announced = append(announced, event.Round)
				assert.Equal(t, model.PhaseWork, event.Phase)
			}
		}
		assert.Len(t, announced, rounds-1)
		for index, round := range announced {
			assert.Equal(t, index+2, round)
		}
		assert.LessOrEqual(t, result.maxRound, rounds)
	}
}

func TestMachineNoShortTicksForShortWork(t *testing.T) {
	for seconds := 0; seconds <= 5; seconds++ {
		machine := NewMachine(cue.DefaultPolicy())
		config := standardConfig()
		config.Work = time.Duration(seconds) * time.Second
		require.NoError(t, machine.Start(config))

		result := runToEnd(t, machine)
		for _, event := range result.events {
			if event.Kind == cue.ShortTick {
				assert.NotEqual(t, model.PhaseWork, event.Phase, "work %ds", seconds)
			}
		}
	}
}

func TestMachineShortTicksAtLastSeconds(t *testing.T) {
	machine := NewMachine(cue.DefaultPolicy())
	require.NoError(t, machine.Start(standardConfig()))

	var remaining []time.Duration
	for machine.State().Phase == model.PhasePrepare {
		for _, event := range machine.Advance(step) {
			if event.Kind == cue.ShortTick {
				remaining = append(remaining, machine.State().Remaining)
			}
		}
	}
	assert.Equal(t, []time.Duration{3 * time.Second, 2 * time.Second, time.Second}, remaining)
}

func TestMachineShortTicksPerPhaseAtDividingIntervals(t *testing.T) {
	for _, interval := range []time.Duration{100 * time.Millisecond, 50 * time.Millisecond, 20 * time.Millisecond} {
		t.Run(interval.String(), func(t *testing.T) {
			machine := NewMachine(cue.DefaultPolicy())
			require.NoError(t, machine.Start(model.IntervalConfig{
				Rounds:  1,
				Prepare: model.DefaultPrepare,
				Work:    30 * time.Second,
				Rest:    30 * time.Second,
			}))

			ticks := make(map[model.Phase]int)
			for i := 0; machine.State().Running; i++ {
				require.Less(t, i, 100000, "session did not finish")
				phase := machine.State().Phase
				for _, event := range machine.Advance(interval) {
					if event.Kind == cue.ShortTick {
						ticks[phase]++
					}
				}
			}
			assert.Equal(t, map[model.Phase]int{
				model.PhasePrepare: 3,
				model.PhaseWork:    3,
				model.PhaseRest:    3,
			}, ticks)
		})
	}
}

func TestMachineStop(t *testing.T) {
	machine := NewMachine(cue.DefaultPolicy())
	require.NoError(t, machine.Start(standardConfig()))
	for i := 0; i < 150; i++ {
		machine.Advance(step)
	}
	require.Equal(t, model.PhaseWork, machine.State().Phase)

	assert.True(t, machine.Stop())
	once := machine.State()
	assert.False(t, machine.Stop())
	assert.Equal(t, once, machine.State())
	assert.False(t, once.Running)
	assert.Equal(t, model.PhaseIdle, once.Phase)
	assert.Nil(t, machine.Advance(step))
}

func TestMachineRejectsInvalidConfig(t *testing.T) {
	machine := NewMachine(cue.DefaultPolicy())

	config := standardConfig()
	config.Rounds = 0
	assert.ErrorIs(t, machine.Start(config), ErrNoRounds)

	config = standardConfig()
	config.Rest = -time.Second
	assert.ErrorIs(t, machine.Start(config), model.ErrNegativeDuration)

	config = standardConfig()
	config.Rounds = -1
	assert.Error(t, machine.Start(config))
	assert.False(t, machine.State().Running)
}

func TestMachineZeroLengthPhases(t *testing.T) {
	machine := NewMachine(cue.DefaultPolicy())
	require.NoError(t, machine.Start(model.IntervalConfig{Rounds: 2}))

	result := runToEnd(t, machine)
	kinds := make([]cue.Kind, 0, len(result.events))
	for _, event := range result.events {
		kinds = append(kinds, event.Kind)
	}
	assert.Equal(t, []cue.Kind{
		cue.PhaseChange,
		cue.PhaseChange,
		cue.RoundBoundary,
		cue.PhaseChange,
		cue.SessionEnd,
	}, kinds)
}

func TestMachineRestartResetsSession(t *testing.T) {
	machine := NewMachine(cue.DefaultPolicy())
	require.NoError(t, machine.Start(standardConfig()))
	for i := 0; i < 800; i++ {
		machine.Advance(step)
	}
	require.Greater(t, machine.State().Round, 1)

	require.NoError(t, machine.Start(standardConfig()))
	assert.Equal(t, 1, machine.State().Round)
	assert.Equal(t, model.PhasePrepare, machine.State().Phase)
}
