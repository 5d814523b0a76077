package push_test

import (
	"slices"
	"testing"

	"conveyor/push"
)

func TestForEach(t *testing.T) {
	var got []int
	push.ForEach(push.Of(1, 2, 3), func(v int) {
		got = append(got, v)
	})
	if !slices.Equal(got, []int{1, 2, 3}) {
		t.Errorf("visited %v", got)
	}
}

func TestCount(t *testing.T) {
	t.Run("Empty", func(t *testing.T) {
		if got := push.Count(push.Empty[int]()); got != 0 {
			t.Errorf("Count = %d, want 0", got)
		}
	})

	t.Run("AnalyticMatchesTraversal", func(t *testing.T) {
		// Each pipeline is built twice: once as-is (analytic path for
		// length-known chains) and once behind a do-nothing filter,
		// which forces the traversal fallback. Both must agree.
		base := func() push.Producer[int] { return push.FromSlice([]int{1, 2, 3, 4, 5}) }
		pipelines := []struct {
			name  string
			build func(push.Producer[int]) push.Producer[int]
		}{
			{"Plain", func(p push.Producer[int]) push.Producer[int] { return p }},
			{"Map", func(p push.Producer[int]) push.Producer[int] {
				return push.Map(p, func(v int) int { return v * 2 })
			}},
			{"Take", func(p push.Producer[int]) push.Producer[int] { return push.Take(p, 3) }},
			{"TakeBeyond", func(p push.Producer[int]) push.Producer[int] { return push.Take(p, 99) }},
			{"Skip", func(p push.Producer[int]) push.Producer[int] { return push.Skip(p, 2) }},
			{"SkipPastEnd", func(p push.Producer[int]) push.Producer[int] { return push.Skip(p, 9) }},
			{"StepBy", func(p push.Producer[int]) push.Producer[int] { return push.StepBy(p, 2) }},
			{"Enumerate", func(p push.Producer[int]) push.Producer[int] {
				return push.Map(push.Enumerate(p), func(kv push.Pair[int, int]) int { return kv.V2 })
			}},
			{"Chain", func(p push.Producer[int]) push.Producer[int] { return push.Chain(p, push.Of(9, 9)) }},
			{"TakeSkipStack", func(p push.Producer[int]) push.Producer[int] {
				return push.Take(push.Skip(p, 1), 2)
			}},
		}
		for _, tc := range pipelines {
			t.Run(tc.name, func(t *testing.T) {
				analytic := push.Count(tc.build(base()))
				traversed := push.Count(push.Filter(tc.build(base()), func(int) bool { return true }))
				if analytic != traversed {
					t.Errorf("analytic count %d != traversed count %d", analytic, traversed)
				}
			})
		}
	})

	t.Run("FilteredFallsBack", func(t *testing.T) {
		got := push.Count(push.Filter(push.Of(1, 2, 3, 4), func(v int) bool { return v%2 == 0 }))
		if got != 2 {
			t.Errorf("Count = %d, want 2", got)
		}
	})
}

func TestFirst(t *testing.T) {
	src, pushed, _ := newCountingSource()
	got, ok := push.First[int](src)
	if !ok || got != 1 {
		t.Fatalf("First = (%d, %v), want (1, true)", got, ok)
	}
	if *pushed != 1 {
		t.Errorf("source pushed %d elements, want 1", *pushed)
	}

	if _, ok := push.First(push.Empty[int]()); ok {
		t.Error("First on empty reported a value")
	}
}

func TestNth(t *testing.T) {
	t.Run("Basics", func(t *testing.T) {
		if got, ok := push.Nth(push.Of(7), 0); !ok || got != 7 {
			t.Errorf("Nth(0) = (%d, %v), want (7, true)", got, ok)
		}
		if _, ok := push.Nth(push.Of(7), 1); ok {
			t.Error("Nth(1) on a single element reported a value")
		}
		if _, ok := push.Nth(push.Of(7), -1); ok {
			t.Error("Nth(-1) reported a value")
		}
	})

	t.Run("NeverVisitsPastK", func(t *testing.T) {
		// Force the generic traversal path with a user source.
		src, pushed, exhausted := newCountingSource()
		got, ok := push.Nth[int](src, 2)
		if !ok || got != 3 {
			t.Fatalf("Nth(2) = (%d, %v), want (3, true)", got, ok)
		}
		if *pushed != 3 {
			t.Errorf("source pushed %d elements, want 3", *pushed)
		}
		if *exhausted {
			t.Error("source drained past index k")
		}
	})

	t.Run("EqualsLastOfTakeKPlusOne", func(t *testing.T) {
		in := []int{4, 8, 15, 16, 23, 42}
		for k := 0; k < len(in); k++ {
			// The adapter stack hides the slice source, so both sides
			// run the generic algorithms.
			viaNth, okNth := push.Nth(push.Map(push.FromSlice(in), func(v int) int { return v }), k)
			viaTake, okTake := push.Last(push.Take(push.Map(push.FromSlice(in), func(v int) int { return v }), k+1))
			if okNth != okTake || viaNth != viaTake {
				t.Errorf("k=%d: Nth=(%d,%v), Last(Take(k+1))=(%d,%v)", k, viaNth, okNth, viaTake, okTake)
			}
		}
	})

	t.Run("SliceFastPathAgrees", func(t *testing.T) {
		in := []int{9, 8, 7}
		for k := -1; k < 5; k++ {
			fast, okFast := push.Nth(push.FromSlice(in), k)
			slow, okSlow := push.Nth(push.Inspect(push.FromSlice(in), func(int) {}), k)
			if okFast != okSlow || fast != slow {
				t.Errorf("k=%d: fast=(%d,%v), generic=(%d,%v)", k, fast, okFast, slow, okSlow)
			}
		}
	})
}

func TestLast(t *testing.T) {
	if got, ok := push.Last(push.Of(1, 2, 3)); !ok || got != 3 {
		t.Errorf("Last = (%d, %v), want (3, true)", got, ok)
	}
	if _, ok := push.Last(push.Empty[int]()); ok {
		t.Error("Last on empty reported a value")
	}

	// Generic path agrees with the slice fast path.
	if got, ok := push.Last(push.Filter(push.Of(1, 2, 3), func(int) bool { return true })); !ok || got != 3 {
		t.Errorf("generic Last = (%d, %v), want (3, true)", got, ok)
	}
}

func TestFindAnyAll(t *testing.T) {
	even := func(v int) bool { return v%2 == 0 }

	t.Run("Find", func(t *testing.T) {
		src, pushed, _ := newCountingSource()
		got, ok := push.Find[int](src, even)
		if !ok || got != 2 {
			t.Fatalf("Find = (%d, %v), want (2, true)", got, ok)
		}
		if *pushed != 2 {
			t.Errorf("source pushed %d elements, want 2", *pushed)
		}
		if _, ok := push.Find(push.Of(1, 3), even); ok {
			t.Error("Find reported a match with none present")
		}
	})

	t.Run("Any", func(t *testing.T) {
		src, pushed, _ := newCountingSource()
		if !push.Any[int](src, even) {
			t.Error("Any = false, want true")
		}
		if *pushed != 2 {
			t.Errorf("Any visited %d elements, want 2", *pushed)
		}
		if push.Any(push.Empty[int](), even) {
			t.Error("Any on empty = true")
		}
	})

	t.Run("All", func(t *testing.T) {
		src, pushed, _ := newCountingSource()
		if push.All[int](src, even) {
			t.Error("All = true, want false")
		}
		if *pushed != 1 {
			t.Errorf("All visited %d elements, want 1 (first miss decides)", *pushed)
		}
		if !push.All(push.Empty[int](), even) {
			t.Error("All on empty = false")
		}
	})
}

func TestPosition(t *testing.T) {
	if got, ok := push.Position(push.Of("a", "b", "c"), func(s string) bool { return s == "b" }); !ok || got != 1 {
		t.Errorf("Position = (%d, %v), want (1, true)", got, ok)
	}
	if _, ok := push.Position(push.Of("a"), func(s string) bool { return false }); ok {
		t.Error("Position reported a match with none present")
	}
}

func TestFold(t *testing.T) {
	got := push.Fold(push.Of("b", "c", "d"), "a", func(acc, v string) string { return acc + v })
	if got != "abcd" {
		t.Errorf("Fold = %q, want %q", got, "abcd")
	}
}

func TestTryFold(t *testing.T) {
	src, pushed, _ := newCountingSource()
	res := push.TryFold[int, int](src, 0, func(acc, v int) push.StepResult[int] {
		if acc+v > 5 {
			return push.Stop(acc)
		}
		return push.Continue(acc + v)
	})
	if !res.Stopped() || res.Value() != 3 {
		t.Errorf("TryFold = (%d, stopped=%v), want (3, true)", res.Value(), res.Stopped())
	}
	if *pushed != 3 {
		t.Errorf("visited %d elements, want 3", *pushed)
	}
}

func TestMinMaxByKey(t *testing.T) {
	// Tie-breaking is asymmetric on purpose: min keeps the first
	// equal-keyed element, max keeps the last.
	elems := []push.Pair[int, int]{{0, 3}, {1, 5}, {2, 5}, {3, 2}}
	key := func(kv push.Pair[int, int]) int { return kv.V2 }

	t.Run("Min", func(t *testing.T) {
		got, ok := push.MinByKey(push.FromSlice(elems), key)
		if !ok || got != (push.Pair[int, int]{3, 2}) {
			t.Errorf("MinByKey = (%v, %v), want ({3 2}, true)", got, ok)
		}
	})

	t.Run("MaxKeepsLastTie", func(t *testing.T) {
		got, ok := push.MaxByKey(push.FromSlice(elems), key)
		if !ok || got != (push.Pair[int, int]{2, 5}) {
			t.Errorf("MaxByKey = (%v, %v), want ({2 5}, true)", got, ok)
		}
	})

	t.Run("MinKeepsFirstTie", func(t *testing.T) {
		ties := []push.Pair[int, int]{{0, 5}, {1, 5}}
		got, _ := push.MinByKey(push.FromSlice(ties), key)
		if got != (push.Pair[int, int]{0, 5}) {
			t.Errorf("MinByKey kept %v, want the first tie {0 5}", got)
		}
	})

	t.Run("Empty", func(t *testing.T) {
		if _, ok := push.MinByKey(push.Empty[push.Pair[int, int]](), key); ok {
			t.Error("MinByKey on empty reported a value")
		}
		if _, ok := push.MaxByKey(push.Empty[push.Pair[int, int]](), key); ok {
			t.Error("MaxByKey on empty reported a value")
		}
	})
}

func TestMinMaxFunc(t *testing.T) {
	compareLen := func(a, b string) int { return len(a) - len(b) }

	got, ok := push.MinFunc(push.Of("bb", "a", "c", "ddd"), compareLen)
	if !ok || got != "a" {
		t.Errorf("MinFunc = (%q, %v), want (a, true)", got, ok)
	}

	// Equal lengths: min keeps the first, max the last.
	gotMin, _ := push.MinFunc(push.Of("x", "y"), compareLen)
	if gotMin != "x" {
		t.Errorf("MinFunc tie kept %q, want x", gotMin)
	}
	gotMax, _ := push.MaxFunc(push.Of("x", "y"), compareLen)
	if gotMax != "y" {
		t.Errorf("MaxFunc tie kept %q, want y", gotMax)
	}
}
