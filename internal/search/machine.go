package search

import (
	"context"
	"fmt"
	"time"
)

// Machine walks Idle -> Initializing -> ... -> Done. Done is terminal.
type Machine struct {
	stage Stage
}

func NewMachine() *Machine {
	return &Machine{stage: StageIdle}
}

func (m *Machine) Stage() Stage { return m.stage }

func (m *Machine) Done() bool { return m.stage == StageDone }

// Advance moves to the next stage and returns it. It is a no-op once Done.
func (m *Machine) Advance() Stage {
	if m.stage < StageDone {
		m.stage++
	}
	return m.stage
}

// Ticker paces the machine between stages.
type Ticker interface {
	Wait(ctx context.Context, d time.Duration) error
}

// TimerTicker sleeps for the stage dwell multiplied by Scale. A zero Scale
// does not sleep.
type TimerTicker struct {
	Scale float64
}

func (t TimerTicker) Wait(ctx context.Context, d time.Duration) error {
	d = time.Duration(float64(d) * t.Scale)
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// InstantTicker never waits. Used by tests and the CLI --fast flag.
type InstantTicker struct{}

func (InstantTicker) Wait(ctx context.Context, _ time.Duration) error {
	return ctx.Err()
}

// StageFunc is called on entering each stage. A non-nil error stops the run.
type StageFunc func(ctx context.Context, stage Stage) error

// Run drives m from its current stage to Done. onEnter runs as soon as a
// stage is entered, then the ticker holds the stage for its dwell time.
func Run(ctx context.Context, m *Machine, ticker Ticker, onEnter StageFunc) error {
	for !m.Done() {
		stage := m.Advance()

		if onEnter != nil {
			if err := onEnter(ctx, stage); err != nil {
				return fmt.Errorf("stage %s: %w", stage, err)
			}
		}

		if err := ticker.Wait(ctx, stage.Dwell()); err != nil {
			return fmt.Errorf("stage %s: %w", stage, err)
		}
	}
	return nil
}
