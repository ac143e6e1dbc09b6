package main

import (
	"fmt"
	"io"
	"time"

	"github.com/fatih/color"

	"github.com/npillmayer/treap/workload"
)

type printer struct {
	w       io.Writer
	width   int
	palette map[string]*color.Color
	header  *color.Color
	lastExp int
}

func newPrinter(w io.Writer, width int) *printer {
	return &printer{
		w:     w,
		width: width,
		palette: map[string]*color.Color{
			"treap":         color.New(color.FgGreen),
			"dynamic array": color.New(color.FgYellow),
			"btree":         color.New(color.FgCyan),
		},
		header:  color.New(color.Bold, color.Underline),
		lastExp: -1,
	}
}

func (p *printer) contender(name string) string {
	if c, ok := p.palette[name]; ok {
		return c.Sprint(name)
	}
	return name
}

// live prints a report as soon as it arrives.
func (p *printer) live(rep workload.Report) {
	if rep.Experiment != p.lastExp {
		p.lastExp = rep.Experiment
		p.header.Fprintf(p.w, "Experiment %d\n", rep.Experiment)
	}
	label := p.truncate(rep.Label, p.width-40)
	if rep.Experiment == 0 {
		fmt.Fprintf(p.w, "  %-*s %s average depth %.2f\n", p.width-40, label, p.contender(rep.Contender), rep.Depth)
		return
	}
	fmt.Fprintf(p.w, "  %-*s %s took %v\n", p.width-40, label, p.contender(rep.Contender), rep.Elapsed.Round(time.Microsecond))
}

// summary prints, per timed measurement, how many times slower each
// contender was than the treap.
func (p *printer) summary(reports []workload.Report) {
	var treapTime time.Duration
	headerDone := false
	for _, rep := range reports {
		if rep.Experiment == 0 {
			continue
		}
		if !headerDone {
			p.header.Fprintf(p.w, "\nRelative to treap\n")
			headerDone = true
		}
		if rep.Contender == "treap" {
			treapTime = rep.Elapsed
			continue
		}
		ratio := 0.0
		if treapTime > 0 {
			ratio = float64(rep.Elapsed) / float64(treapTime)
		}
		fmt.Fprintf(p.w, "  [%d] %-*s %s %8.2fx\n", rep.Experiment, p.width-46,
			p.truncate(rep.Label, p.width-46), p.contender(rep.Contender), ratio)
	}
}

func (p *printer) truncate(s string, n int) string {
	if n < 4 || len(s) <= n {
		return s
	}
	return s[:n-1] + "…"
}
