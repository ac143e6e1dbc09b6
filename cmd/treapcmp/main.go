/*
Command treapcmp times a treap against a dynamic array.

It runs a series of experiments with synthetic workloads and prints the time
each structure took:

	0  average node depth of treaps built from sorted input
	1  insertions only
	2  insertions mixed with deletions of live keys
	3  insertions mixed with searches
	4  insertions mixed with deletions and searches

Usage:

	treapcmp [-e N]... [--seed S] [--scale F] [--reference] [--dot FILE]

# BSD License

Copyright (c) Norbert Pillmayer <norbert@pillmayer.com>

Please refer to the License file for details.
*/
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/fatih/color"
	"github.com/jessevdk/go-flags"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"golang.org/x/term"

	"github.com/npillmayer/treap"
	"github.com/npillmayer/treap/prio"
	"github.com/npillmayer/treap/workload"
)

type options struct {
	Experiments []int   `short:"e" long:"experiment" description:"experiment to run; repeat for more (default: all)"`
	Seed        uint64  `short:"s" long:"seed" description:"seed for reproducible runs (0 = random)"`
	Scale       float64 `long:"scale" default:"1" description:"factor applied to all workload sizes"`
	Trials      int     `long:"trials" default:"100" description:"number of treaps built by the depth experiment"`
	DepthSize   int     `long:"depth-size" default:"1024" description:"elements per treap in the depth experiment"`
	Reference   bool    `short:"r" long:"reference" description:"add a B-tree as reference contender"`
	NoColor     bool    `long:"no-color" description:"disable coloured output"`
	Trace       string  `long:"trace" default:"error" choice:"error" choice:"info" choice:"debug" description:"trace level"`
	Dot         string  `long:"dot" description:"write a small sample treap in Graphviz DOT format to this file"`
	DotSize     int     `long:"dot-size" default:"24" description:"element count of the DOT sample treap"`
}

func main() {
	var opts options
	if _, err := flags.Parse(&opts); err != nil {
		var flagsErr *flags.Error
		if errors.As(err, &flagsErr) && flagsErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(2)
	}
	setupTracing(opts.Trace)
	color.NoColor = opts.NoColor || !term.IsTerminal(int(os.Stdout.Fd()))
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	if err := run(ctx, opts); err != nil {
		color.New(color.FgRed, color.Bold).Fprintf(os.Stderr, "treapcmp: %v\n", err)
		os.Exit(1)
	}
}

func setupTracing(level string) {
	gtrace.CoreTracer = gologadapter.New()
	switch level {
	case "debug":
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	case "info":
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	default:
		gtrace.CoreTracer.SetTraceLevel(tracing.LevelError)
	}
}

func run(ctx context.Context, opts options) error {
	if opts.Dot != "" {
		if err := writeDot(opts.Dot, opts.DotSize, opts.Seed); err != nil {
			return err
		}
	}
	runner, err := workload.NewRunner(workload.Config{
		Seed:      opts.Seed,
		Scale:     opts.Scale,
		Trials:    opts.Trials,
		DepthSize: opts.DepthSize,
		Reference: opts.Reference,
	})
	if err != nil {
		return err
	}
	ch, ok := runner.Subscribe(ctx)
	if !ok {
		return errors.New("cannot subscribe to experiment reports")
	}
	out := newPrinter(os.Stdout, lineWidth())
	printed := make(chan struct{})
	go func() {
		defer close(printed)
		for msg := range ch {
			out.live(msg.(workload.Report))
		}
	}()
	err = runner.Run(ctx, opts.Experiments...)
	<-printed
	out.summary(runner.Reports())
	return err
}

func writeDot(path string, n int, seed uint64) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	t, err := treap.NewWithConfig(treap.Config{Seed: seed})
	if err != nil {
		return err
	}
	g := workload.NewGenerator(prio.NewSource(seed))
	if seed == 0 {
		g = workload.NewGenerator(nil)
	}
	for range n {
		t.Insert(g.Element())
	}
	if err := t.Check(); err != nil {
		return fmt.Errorf("sample treap: %w", err)
	}
	treap.Treap2Dot(t, f)
	return f.Close()
}

// lineWidth reads the terminal's width if stdout is a terminal.
func lineWidth() int {
	if term.IsTerminal(int(os.Stdout.Fd())) {
		if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 40 {
			return w
		}
	}
	return 80
}
