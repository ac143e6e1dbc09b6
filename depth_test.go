package treap

import (
	"bytes"
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestDepthOf(t *testing.T) {
	tr := newSeededTreap(t, 1)
	tr.root = mk(10, 1)
	tr.root.left = mk(5, 2)
	tr.root.left.right = mk(7, 3)
	tr.root.right = mk(20, 4)
	tr.size = 4
	mustCheck(t, tr)
	for k, want := range map[Key]int{10: 0, 5: 1, 20: 1, 7: 2} {
		if d, ok := tr.DepthOf(k); !ok || d != want {
			t.Errorf("DepthOf(%d) = %d/%v, want %d", k, d, ok, want)
		}
	}
	if _, ok := tr.DepthOf(6); ok {
		t.Errorf("DepthOf(6) should report absence")
	}
	depths := tr.Depths()
	want := []int{0, 1, 2, 1} // pre-order
	if len(depths) != len(want) {
		t.Fatalf("expected %d depths, got %v", len(want), depths)
	}
	for i := range want {
		if depths[i] != want[i] {
			t.Fatalf("expected depths %v, got %v", want, depths)
		}
	}
	if tr.Height() != 3 {
		t.Errorf("expected height 3, got %d", tr.Height())
	}
}

// Average node depth of a random binary search tree with n nodes is
// about 2 ln n; for n = 1024 this is in the low teens.
func TestAverageDepthIsLogarithmic(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treap")
	defer teardown()
	//
	const n, trials = 1024, 100
	var total float64
	for trial := range trials {
		tr := newSeededTreap(t, uint64(trial+1))
		for i := 1; i <= n; i++ {
			tr.Insert(Element{ID: ID(i), Key: Key(i)}) // sorted input, worst case for plain BSTs
		}
		if tr.Height() >= n/4 {
			t.Fatalf("trial %d degenerated to height %d", trial, tr.Height())
		}
		total += tr.AverageDepth()
	}
	avg := total / trials
	t.Logf("average depth over %d trials: %.2f", trials, avg)
	if avg < 8 || avg > 20 {
		t.Fatalf("average depth %.2f outside of [8, 20]", avg)
	}
}

func TestAverageDepthStaysLogarithmicAfterDeletes(t *testing.T) {
	tr := newSeededTreap(t, 8)
	for i := 1; i <= 4096; i++ {
		tr.Insert(Element{ID: ID(i), Key: Key(i)})
	}
	for k := Key(1); k <= 4096; k += 4 {
		tr.Delete(k)
	}
	mustCheck(t, tr)
	if avg := tr.AverageDepth(); avg > 25 {
		t.Fatalf("average depth %.2f too large after deletions", avg)
	}
}

func TestTreap2Dot(t *testing.T) {
	tr := newSeededTreap(t, 4)
	for i := 1; i <= 5; i++ {
		tr.Insert(Element{ID: ID(i), Key: Key(10 * i)})
	}
	var buf bytes.Buffer
	Treap2Dot(tr, &buf)
	out := buf.String()
	if !strings.HasPrefix(out, "strict digraph {") || !strings.HasSuffix(out, "}\n") {
		t.Fatalf("not a DOT graph:\n%s", out)
	}
	if strings.Count(out, "prio ") != 5 {
		t.Errorf("expected 5 labelled nodes:\n%s", out)
	}
	buf.Reset()
	Treap2Dot(New(), &buf)
	if buf.String() != "strict digraph {\n\tnode [fontname=Arial,fontsize=12];\n}\n" {
		t.Errorf("unexpected DOT for empty treap: %q", buf.String())
	}
}
