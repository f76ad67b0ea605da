// Package pipeline orchestrates scenario validation, simulation, and roll-ups.
package pipeline

import (
	"context"
	"fmt"
	"math"

	"github.com/theirongolddev/growthsim/internal/model"
	"github.com/theirongolddev/growthsim/internal/sim"

	"golang.org/x/sync/errgroup"
)

// Request describes one comparison session: scenario A and an optional B.
type Request struct {
	A model.ScenarioInput
	B *model.ScenarioInput
}

// Labelled returns the request's scenarios paired with their labels, in order.
func (r Request) Labelled() []LabelledInput {
	out := []LabelledInput{{Label: model.LabelA, Input: r.A}}
	if r.B != nil {
		out = append(out, LabelledInput{Label: model.LabelB, Input: *r.B})
	}
	return out
}

// LabelledInput is a scenario with its display label.
type LabelledInput struct {
	Label string
	Input model.ScenarioInput
}

// Result holds the runs produced for a Request, in label order.
type Result struct {
	Runs []model.Run
}

// A returns the scenario A run.
func (r Result) A() model.Run {
	return r.Runs[0]
}

// B returns the scenario B run, if comparison mode was on.
func (r Result) B() (model.Run, bool) {
	if len(r.Runs) < 2 {
		return model.Run{}, false
	}
	return r.Runs[1], true
}

// Compare returns B minus A when both scenarios ran.
func (r Result) Compare() (model.SummaryDelta, bool) {
	b, ok := r.B()
	if !ok {
		return model.SummaryDelta{}, false
	}
	return Delta(r.A().Summary, b.Summary), true
}

// RunOne validates and simulates a single labelled scenario.
func RunOne(label string, in model.ScenarioInput) (model.Run, error) {
	if err := in.Validate(); err != nil {
		return model.Run{}, fmt.Errorf("scenario %s: %w", label, err)
	}
	ledger := sim.Simulate(in)
	if final := ledger.Last().Balance; math.IsInf(final, 0) || math.IsNaN(final) {
		return model.Run{}, fmt.Errorf("scenario %s: %w: balance overflows after %d months",
			label, model.ErrInvalidScenarioInput, len(ledger))
	}
	return model.Run{
		Label:   label,
		Input:   in,
		Ledger:  ledger,
		Summary: sim.Summarize(ledger),
	}, nil
}

// Run validates every scenario up front, then simulates them independently.
// No run observes another's ledger; each gets its own backing array.
func Run(ctx context.Context, req Request) (*Result, error) {
	inputs := req.Labelled()
	for _, li := range inputs {
		if err := li.Input.Validate(); err != nil {
			return nil, fmt.Errorf("scenario %s: %w", li.Label, err)
		}
	}

	runs := make([]model.Run, len(inputs))
	g, ctx := errgroup.WithContext(ctx)
	for i, li := range inputs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			run, err := RunOne(li.Label, li.Input)
			if err != nil {
				return err
			}
			runs[i] = run
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &Result{Runs: runs}, nil
}
