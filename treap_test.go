package treap

import (
	"errors"
	"slices"
	"testing"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/treap/prio"
)

func newSeededTreap(t *testing.T, seed uint64) *Treap {
	t.Helper()
	tr, err := NewWithConfig(Config{Seed: seed})
	if err != nil {
		t.Fatalf("NewWithConfig failed: %v", err)
	}
	return tr
}

func mustCheck(t *testing.T, tr *Treap) {
	t.Helper()
	if err := tr.Check(); err != nil {
		t.Fatalf("invariant check failed: %v", err)
	}
}

func TestNewWithConfigRejectsAmbiguousSource(t *testing.T) {
	_, err := NewWithConfig(Config{Priorities: prio.NewSource(1), Seed: 2})
	if !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestEmptyTreap(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treap")
	defer teardown()
	//
	tr := New()
	mustCheck(t, tr)
	if !tr.IsEmpty() || tr.Len() != 0 || tr.Height() != 0 {
		t.Fatalf("unexpected empty treap state len=%d height=%d", tr.Len(), tr.Height())
	}
	if _, ok := tr.Search(1); ok {
		t.Errorf("search on empty treap found something")
	}
	tr.Delete(1)
	mustCheck(t, tr)
	if len(tr.Depths()) != 0 {
		t.Errorf("expected no depths for empty treap")
	}
}

func TestScenarioThreeElements(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	tr := newSeededTreap(t, 11)
	tr.Insert(Element{ID: 1, Key: 5})
	tr.Insert(Element{ID: 2, Key: 3})
	tr.Insert(Element{ID: 3, Key: 8})
	mustCheck(t, tr)
	if x, ok := tr.Search(3); !ok || x != (Element{ID: 2, Key: 3}) {
		t.Errorf("expected search(3) = (2,3), got %v/%v", x, ok)
	}
	if _, ok := tr.Search(99); ok {
		t.Errorf("expected search(99) to find nothing")
	}
	tr.Delete(3)
	if _, ok := tr.Search(3); ok {
		t.Errorf("expected key 3 to be gone after delete")
	}
	mustCheck(t, tr)
	before := tr.Depths()
	tr.Delete(3)
	mustCheck(t, tr)
	if !slices.Equal(before, tr.Depths()) || tr.Len() != 2 {
		t.Errorf("second delete of key 3 changed the treap")
	}
	for _, k := range []Key{5, 8} {
		if _, ok := tr.Search(k); !ok {
			t.Errorf("key %d lost", k)
		}
	}
}

func TestRoundTrip(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treap")
	defer teardown()
	//
	tr := newSeededTreap(t, 5)
	src := prio.NewSource(5)
	seen := make(map[Key]bool)
	for id := ID(1); id <= 500; id++ {
		k := prio.Key(src)
		if seen[k] {
			continue
		}
		seen[k] = true
		tr.Insert(Element{ID: id, Key: k})
		if x, ok := tr.Search(k); !ok || x != (Element{ID: id, Key: k}) {
			t.Fatalf("inserted element (%d,%d) not found, got %v", id, k, x)
		}
		tr.Delete(k)
		if _, ok := tr.Search(k); ok {
			t.Fatalf("deleted key %d still present", k)
		}
		tr.Insert(Element{ID: id, Key: k})
	}
	mustCheck(t, tr)
	if tr.Len() != len(seen) {
		t.Fatalf("expected %d elements, have %d", len(seen), tr.Len())
	}
}

func TestDeleteAbsentKeepsShape(t *testing.T) {
	tr := newSeededTreap(t, 3)
	for i := range 64 {
		tr.Insert(Element{ID: ID(i + 1), Key: Key(2 * i)})
	}
	depths := tr.Depths()
	for _, k := range []Key{1, 3, 77, 1000} {
		tr.Delete(k)
		mustCheck(t, tr)
		if !slices.Equal(depths, tr.Depths()) {
			t.Fatalf("delete of absent key %d changed the shape", k)
		}
	}
	if tr.Len() != 64 {
		t.Fatalf("expected 64 elements, have %d", tr.Len())
	}
}

func TestSizeConservation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "treap")
	defer teardown()
	//
	const n, d = 300, 120
	tr := newSeededTreap(t, 17)
	src := prio.NewSource(17)
	seen := make(map[Key]bool)
	var keys []Key
	for len(keys) < n {
		k := Key(prio.Below(src, 5000))
		if seen[k] {
			continue
		}
		seen[k] = true
		keys = append(keys, k)
		tr.Insert(Element{ID: ID(len(keys)), Key: k})
		mustCheck(t, tr)
	}
	for _, k := range keys[:d] {
		tr.Delete(k)
		mustCheck(t, tr)
	}
	found := 0
	for k := Key(0); k < 5000; k++ {
		if _, ok := tr.Search(k); ok {
			found++
		}
	}
	if found != n-d || tr.Len() != n-d {
		t.Fatalf("expected %d elements, scan found %d, Len=%d", n-d, found, tr.Len())
	}
}

func TestDuplicateKeys(t *testing.T) {
	tr := newSeededTreap(t, 23)
	for id := ID(1); id <= 10; id++ {
		tr.Insert(Element{ID: id, Key: 42})
		tr.Insert(Element{ID: 100 + id, Key: Key(id)})
	}
	mustCheck(t, tr)
	ids := make(map[ID]bool)
	for range 10 {
		x, ok := tr.Search(42)
		if !ok || x.Key != 42 {
			t.Fatalf("expected to find key 42, got %v/%v", x, ok)
		}
		if ids[x.ID] {
			t.Fatalf("element %v found again after its deletion", x)
		}
		ids[x.ID] = true
		tr.Delete(42)
		mustCheck(t, tr)
	}
	if _, ok := tr.Search(42); ok {
		t.Errorf("all elements with key 42 should be gone")
	}
	if tr.Len() != 10 {
		t.Errorf("expected 10 remaining elements, have %d", tr.Len())
	}
}

func TestSameSeedSameShape(t *testing.T) {
	a, b := newSeededTreap(t, 99), newSeededTreap(t, 99)
	for i := range 200 {
		x := Element{ID: ID(i), Key: Key((i * 7919) % 1000)}
		a.Insert(x)
		b.Insert(x)
	}
	if !slices.Equal(a.Depths(), b.Depths()) {
		t.Fatalf("treaps with equal seeds differ in shape")
	}
}
