package workload

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/guiguan/caster"
)

var (
	// ErrInvalidConfig signals an invalid runner configuration.
	ErrInvalidConfig = errors.New("workload: invalid configuration")
	// ErrUnknownExperiment signals a request for an experiment which does not exist.
	ErrUnknownExperiment = errors.New("workload: unknown experiment")
	// ErrRunnerDone signals that a runner has already been run.
	ErrRunnerDone = errors.New("workload: runner already ran")
)

// Config configures a runner.
type Config struct {
	// Seed makes runs reproducible. 0 selects random seeds.
	Seed uint64
	// Scale multiplies the sizes of all timed experiments. 0 means 1.
	Scale float64
	// Trials is the number of treaps built by the depth experiment. 0 means 100.
	Trials int
	// DepthSize is the element count of treaps in the depth experiment. 0 means 1024.
	DepthSize int
	// Reference adds a B-tree as a third contender.
	Reference bool
}

func (cfg Config) normalized() Config {
	if cfg.Scale == 0 {
		cfg.Scale = 1
	}
	if cfg.Trials == 0 {
		cfg.Trials = 100
	}
	if cfg.DepthSize == 0 {
		cfg.DepthSize = 1024
	}
	return cfg
}

func (cfg Config) validate() error {
	if cfg.Scale < 0 {
		return fmt.Errorf("%w: negative scale %g", ErrInvalidConfig, cfg.Scale)
	}
	if cfg.Trials < 0 {
		return fmt.Errorf("%w: negative trial count %d", ErrInvalidConfig, cfg.Trials)
	}
	if cfg.DepthSize < 0 {
		return fmt.Errorf("%w: negative depth experiment size %d", ErrInvalidConfig, cfg.DepthSize)
	}
	return nil
}

// Report is a single measurement.
type Report struct {
	Experiment int
	Label      string
	Contender  string
	Elapsed    time.Duration
	Tally      Tally
	Depth      float64 // average node depth, depth experiment only
}

func (rep Report) String() string {
	if rep.Experiment == 0 {
		return fmt.Sprintf("[%d] %s: %s average depth %.2f", rep.Experiment, rep.Label, rep.Contender, rep.Depth)
	}
	return fmt.Sprintf("[%d] %s: %s took %v", rep.Experiment, rep.Label, rep.Contender, rep.Elapsed)
}

// Runner executes experiments sequentially and broadcasts a Report for
// every measurement. A runner runs once; the broadcast ends when Run
// returns.
type Runner struct {
	cfg        Config
	contenders []Contender
	cast       *caster.Caster
	reports    []Report
	done       bool
}

// NewRunner creates a runner with validated configuration.
func NewRunner(cfg Config) (*Runner, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	cfg = cfg.normalized()
	return &Runner{
		cfg:        cfg,
		contenders: Contenders(cfg.Seed, cfg.Reference),
		cast:       caster.New(context.Background()),
	}, nil
}

// Config returns the effective configuration.
func (r *Runner) Config() Config {
	return r.cfg
}

// Reports returns all reports published so far, in order.
func (r *Runner) Reports() []Report {
	return r.reports
}

// Subscribe returns a channel receiving every Report published after the
// call. The channel is closed when the run ends or ctx is done. Subscribers
// must drain their channel, as publishing waits for delivery. Delivery is
// best effort around the end of a run; Reports holds the complete record.
func (r *Runner) Subscribe(ctx context.Context) (<-chan interface{}, bool) {
	return r.cast.Sub(ctx, 16)
}

// Run executes the experiments with the given IDs, or all experiments if
// none are given. Run stops at the first error, including cancellation
// of ctx.
func (r *Runner) Run(ctx context.Context, ids ...int) error {
	if r.done {
		return ErrRunnerDone
	}
	r.done = true
	defer r.cast.Close()
	selected, err := selectExperiments(ids)
	if err != nil {
		return err
	}
	for _, exp := range selected {
		if err := ctx.Err(); err != nil {
			return err
		}
		T().Infof("workload: experiment %d (%s)", exp.ID, exp.Name)
		start := time.Now()
		if err := exp.run(ctx, r); err != nil {
			return fmt.Errorf("experiment %d: %w", exp.ID, err)
		}
		T().Infof("workload: experiment %d took %v", exp.ID, time.Since(start))
	}
	return nil
}

func selectExperiments(ids []int) ([]Experiment, error) {
	all := Experiments()
	if len(ids) == 0 {
		return all, nil
	}
	selected := make([]Experiment, 0, len(ids))
	for _, id := range ids {
		if id < 0 || id >= len(all) {
			return nil, fmt.Errorf("%w: %d", ErrUnknownExperiment, id)
		}
		selected = append(selected, all[id])
	}
	return selected, nil
}

// race applies the same actions to a fresh instance of every contender and
// publishes the time each one took.
func (r *Runner) race(ctx context.Context, experiment int, label string, actions []Action) error {
	for _, c := range r.contenders {
		if err := ctx.Err(); err != nil {
			return err
		}
		set := c.New()
		start := time.Now()
		tally := Apply(set, actions)
		r.publish(Report{
			Experiment: experiment,
			Label:      label,
			Contender:  c.Name,
			Elapsed:    time.Since(start),
			Tally:      tally,
		})
	}
	return nil
}

func (r *Runner) publish(rep Report) {
	T().Debugf("workload: %v", rep)
	r.reports = append(r.reports, rep)
	r.cast.Pub(rep)
}
