package workload

import (
	"context"
	"fmt"

	"github.com/npillmayer/treap"
	"github.com/npillmayer/treap/prio"
)

// Experiment is a named series of measurements.
type Experiment struct {
	ID   int
	Name string
	run  func(ctx context.Context, r *Runner) error
}

var (
	insertionSizes = []int{100_000, 200_000, 500_000, 800_000, 1_000_000}
	mixRates       = []float64{0.001, 0.005, 0.01, 0.05, 0.1}
)

const mixSize = 1_000_000

// Experiments lists all experiments in execution order.
func Experiments() []Experiment {
	return []Experiment{
		{ID: 0, Name: "treap depth", run: runDepths},
		{ID: 1, Name: "insertions", run: runInsertions},
		{ID: 2, Name: "deletion mix", run: runDeletionMix},
		{ID: 3, Name: "search mix", run: runSearchMix},
		{ID: 4, Name: "mixed workload", run: runMixed},
	}
}

// runDepths inserts the elements (i,i) for i = 1…n into fresh treaps and
// reports the average node depth of each.
func runDepths(ctx context.Context, r *Runner) error {
	var total float64
	for trial := range r.cfg.Trials {
		if err := ctx.Err(); err != nil {
			return err
		}
		seed := uint64(0)
		if r.cfg.Seed != 0 {
			seed = r.cfg.Seed + uint64(trial)
		}
		t, err := treap.NewWithConfig(treap.Config{Seed: seed})
		if err != nil {
			return err
		}
		for i := 1; i <= r.cfg.DepthSize; i++ {
			t.Insert(treap.Element{ID: treap.ID(i), Key: treap.Key(i)})
		}
		depth := t.AverageDepth()
		total += depth
		r.publish(Report{
			Experiment: 0,
			Label:      fmt.Sprintf("trial %d, %d elements", trial+1, r.cfg.DepthSize),
			Contender:  "treap",
			Depth:      depth,
		})
	}
	r.publish(Report{
		Experiment: 0,
		Label:      fmt.Sprintf("mean of %d trials", r.cfg.Trials),
		Contender:  "treap",
		Depth:      total / float64(r.cfg.Trials),
	})
	return nil
}

func runInsertions(ctx context.Context, r *Runner) error {
	g := r.generator(1)
	for _, n := range insertionSizes {
		n = r.scaled(n)
		if err := r.race(ctx, 1, fmt.Sprintf("%d insertions", n), g.Insertions(n)); err != nil {
			return err
		}
	}
	return nil
}

func runDeletionMix(ctx context.Context, r *Runner) error {
	g := r.generator(2)
	n := r.scaled(mixSize)
	for _, p := range mixRates {
		label := fmt.Sprintf("%d ops, %g%% deletions", n, p*100)
		if err := r.race(ctx, 2, label, g.Mix(n, p, 0)); err != nil {
			return err
		}
	}
	return nil
}

func runSearchMix(ctx context.Context, r *Runner) error {
	g := r.generator(3)
	n := r.scaled(mixSize)
	for _, p := range mixRates {
		label := fmt.Sprintf("%d ops, %g%% searches", n, p*100)
		if err := r.race(ctx, 3, label, g.Mix(n, 0, p)); err != nil {
			return err
		}
	}
	return nil
}

func runMixed(ctx context.Context, r *Runner) error {
	g := r.generator(4)
	for _, n := range insertionSizes {
		n = r.scaled(n)
		label := fmt.Sprintf("%d ops, 5%% deletions, 5%% searches", n)
		if err := r.race(ctx, 4, label, g.Mix(n, 0.05, 0.05)); err != nil {
			return err
		}
	}
	return nil
}

func (r *Runner) generator(experiment int) *Generator {
	if r.cfg.Seed == 0 {
		return NewGenerator(prio.Default())
	}
	return NewGenerator(prio.NewSource(r.cfg.Seed + uint64(experiment)<<32))
}

func (r *Runner) scaled(n int) int {
	return max(1, int(float64(n)*r.cfg.Scale))
}
