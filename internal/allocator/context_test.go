package allocator

import "testing"

func TestDefaultConfigUsesFirstFitAndOSMapper(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.FitStrategy != FitFirstFit {
		t.Errorf("DefaultConfig().FitStrategy = %v, want FitFirstFit", cfg.FitStrategy)
	}

	if cfg.Mapper == nil {
		t.Error("DefaultConfig().Mapper must not be nil")
	}
}

func TestNewContextAppliesOptionsOverDefaults(t *testing.T) {
	m := newMockMapper()
	ctx := NewContext(WithMapper(m), WithFitStrategy(FitBestFit))

	if ctx.mapper != m {
		t.Error("WithMapper should override DefaultConfig's Mapper")
	}

	if ctx.fitStrategy != FitBestFit {
		t.Error("WithFitStrategy should override DefaultConfig's FitStrategy")
	}
}

func TestNewContextInitializesEveryPoolsClass(t *testing.T) {
	ctx, _ := newTestContext(t)

	for i, want := range []SizeClass{ClassSmall, ClassMedium, ClassLarge} {
		if got := ctx.pools[i].class; got != want {
			t.Errorf("pools[%d].class = %v, want %v", i, got, want)
		}
	}
}

func TestPoolForReturnsDistinctPoolsPerClass(t *testing.T) {
	ctx, _ := newTestContext(t)

	small := ctx.poolFor(ClassSmall)
	medium := ctx.poolFor(ClassMedium)

	if small == medium {
		t.Fatal("poolFor must return a distinct pool per size class")
	}

	if small.class != ClassSmall || medium.class != ClassMedium {
		t.Fatal("poolFor returned a pool tagged with the wrong class")
	}
}

// A fresh Context has no live allocations and therefore nothing to
// coalesce or unmap yet; its stats are the zero value.
func TestNewContextStartsAtZeroStats(t *testing.T) {
	ctx, _ := newTestContext(t)

	if got := ctx.Stats(); got != (Stats{}) {
		t.Fatalf("fresh Context stats = %+v, want zero value", got)
	}
}
