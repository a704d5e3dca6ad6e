package util

import (
	"fmt"
	"math"
	"strings"
	"time"
)

type TimerState struct {
	name         string
	lastDuration float64

	totalDuration  float64
	executionCount int64

	minDuration float64
	maxDuration float64
}

func (t *TimerState) Count() int64 {
	return t.executionCount
}

func (t *TimerState) Last() float64 {
	return t.lastDuration
}

func (t *TimerState) averageDuration() float64 {
	if t.executionCount == 0 {
		return 0
	}
	return t.totalDuration / float64(t.executionCount)
}

func (t *TimerState) String() string {
	return fmt.Sprintf("%s x%d last: %.2fms, avg: %.2fms, min: %.2fms, max: %.2fms", t.name, t.executionCount, t.lastDuration, t.averageDuration(), t.minDuration, t.maxDuration)
}

// Timer accumulates millisecond durations per name, in first use order.
type Timer struct {
	states     map[string]*TimerState
	timerNames []string
}

func NewTimer() *Timer {
	return &Timer{
		states: make(map[string]*TimerState),
	}
}

func (t *Timer) GetState(name string) *TimerState {
	return t.states[name]
}

func (t *Timer) String() string {
	lines := make([]string, 0, len(t.timerNames))
	for _, name := range t.timerNames {
		lines = append(lines, t.states[name].String())
	}
	return strings.Join(lines, "\n")
}

// Start begins a measurement; calling the returned func stops it and returns the duration in ms.
func (t *Timer) Start(name string) func() float64 {
	state, ok := t.states[name]
	if !ok {
		t.timerNames = append(t.timerNames, name)
		state = &TimerState{
			name:        name,
			minDuration: math.MaxFloat64,
			maxDuration: 0,
		}
		t.states[name] = state
	}
	start := time.Now()
	return func() float64 {
		durationInMS := float64(time.Since(start).Microseconds()) / 1000.0
		state.lastDuration = durationInMS
		state.totalDuration += durationInMS
		state.executionCount++
		if durationInMS < state.minDuration {
			state.minDuration = durationInMS
		}
		if durationInMS > state.maxDuration {
			state.maxDuration = durationInMS
		}
		return durationInMS
	}
}

func (t *Timer) Measure(name string, f func()) float64 {
	stop := t.Start(name)
	f()
	return stop()
}
