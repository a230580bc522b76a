package builder

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/ventflow/core"
)

// TestOptions_Defaults verifies identity IDs, zero rates and unit costs.
func TestOptions_Defaults(t *testing.T) {
	cfg := newBuilderConfig()
	if got := cfg.idFn(7); got != core.NodeID(7) {
		t.Errorf("default idFn(7)=%v", got)
	}
	if got := cfg.rateFn(cfg.rng, 3); got != 0 {
		t.Errorf("default rate=%d, want 0", got)
	}
	if got := cfg.costFn(cfg.rng); got != 1 {
		t.Errorf("default cost=%d, want 1", got)
	}
}

func TestOptions_Override(t *testing.T) {
	offset := func(i int) core.NodeID { return core.NodeID(100 + i) }
	cfg := newBuilderConfig(WithIDScheme(offset), WithCostFn(func(*rand.Rand) int64 { return 3 }))
	if got := cfg.idFn(1); got != 101 {
		t.Errorf("idFn(1)=%v, want 101", got)
	}
	if got := cfg.costFn(cfg.rng); got != 3 {
		t.Errorf("cost=%d, want 3", got)
	}
}

// TestOptions_Seed verifies WithSeed reproducibility and WithRand sharing.
func TestOptions_Seed(t *testing.T) {
	a := newBuilderConfig(WithSeed(7))
	b := newBuilderConfig(WithSeed(7))
	if a.rng.Int63() != b.rng.Int63() {
		t.Error("same seed produced different streams")
	}
	r := rand.New(rand.NewSource(9))
	c := newBuilderConfig(WithRand(r))
	if c.rng != r {
		t.Error("WithRand did not install the given RNG")
	}
}

func TestOptions_PanicOnNil(t *testing.T) {
	for name, fn := range map[string]func(){
		"WithIDScheme": func() { WithIDScheme(nil) },
		"WithRand":     func() { WithRand(nil) },
		"WithRateFn":   func() { WithRateFn(nil) },
		"WithCostFn":   func() { WithCostFn(nil) },
		"UniformRate":  func() { UniformRate(5, 1) },
		"SparseRate":   func() { SparseRate(2, 1) },
	} {
		func() {
			defer func() {
				if recover() == nil {
					t.Errorf("%s: expected panic", name)
				}
			}()
			fn()
		}()
	}
}

func TestRateFns(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for i := 0; i < 100; i++ {
		if r := UniformRate(2, 5)(rng, i); r < 2 || r > 5 {
			t.Fatalf("UniformRate out of range: %d", r)
		}
		if r := SparseRate(0.3, 10)(rng, i); r < 0 || r > 10 {
			t.Fatalf("SparseRate out of range: %d", r)
		}
	}
	if r := SparseRate(0, 10)(rng, 0); r != 0 {
		t.Errorf("SparseRate index 0 = %d, want 0", r)
	}
	if r := ConstantRate(4)(rng, 9); r != 4 {
		t.Errorf("ConstantRate=%d", r)
	}
}
