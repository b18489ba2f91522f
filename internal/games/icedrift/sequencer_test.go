package icedrift

import (
	"math/rand"
	"testing"

	"github.com/nordvik/icedrift/internal/config"
	"github.com/nordvik/icedrift/internal/engine"
)

func TestFirstDrawRange(t *testing.T) {
	rules := config.DefaultGameConfig().Odds.Multiplier

	for seed := int64(0); seed < 100; seed++ {
		rng := rand.New(rand.NewSource(seed))
		first, st := PlanNext(NewSequencerState(), rules, rng)

		if first < rules.FirstMin || first > rules.FirstMax {
			t.Fatalf("seed %d: first draw %v outside [%v, %v]", seed, first, rules.FirstMin, rules.FirstMax)
		}
		if first != engine.Round2(first) {
			t.Fatalf("seed %d: first draw %v not rounded to 2 decimals", seed, first)
		}
		if st.NextIndex != 2 || st.LastPlanned != first {
			t.Fatalf("seed %d: state after first draw = %+v", seed, st)
		}
	}
}

func TestEarlyRegimeClimbsToCap(t *testing.T) {
	rules := config.DefaultGameConfig().Odds.Multiplier

	for seed := int64(0); seed < 100; seed++ {
		rng := rand.New(rand.NewSource(seed))
		st := NewSequencerState()
		prev := 0.0

		for i := 1; i <= rules.EarlyCount; i++ {
			var v float64
			v, st = PlanNext(st, rules, rng)

			if v > rules.EarlyCap {
				t.Fatalf("seed %d draw %d: %v exceeds cap %v", seed, i, v, rules.EarlyCap)
			}
			if i > 1 && v < prev {
				t.Fatalf("seed %d draw %d: %v dropped below previous %v", seed, i, v, prev)
			}
			if i > 1 && v == prev && v != rules.EarlyCap {
				t.Fatalf("seed %d draw %d: stalled at %v below the cap", seed, i, v)
			}
			prev = v
		}
	}
}

func TestEarlyRegimePinsAtCap(t *testing.T) {
	rules := config.DefaultGameConfig().Odds.Multiplier
	rng := rand.New(rand.NewSource(1))

	st := SequencerState{NextIndex: 3, LastPlanned: rules.EarlyCap}
	v, next := PlanNext(st, rules, rng)

	if v != rules.EarlyCap {
		t.Errorf("draw from the cap = %v, want %v", v, rules.EarlyCap)
	}
	if next.LastPlanned != rules.EarlyCap {
		t.Errorf("LastPlanned = %v, want %v", next.LastPlanned, rules.EarlyCap)
	}
}

func TestLateRegimeIncrements(t *testing.T) {
	rules := config.DefaultGameConfig().Odds.Multiplier

	for seed := int64(0); seed < 100; seed++ {
		rng := rand.New(rand.NewSource(seed))
		st := SequencerState{NextIndex: rules.EarlyCount + 1, LastPlanned: rules.EarlyCap}

		prev := st.LastPlanned
		for i := 0; i < 10; i++ {
			var v float64
			v, st = PlanNext(st, rules, rng)

			inc := v - prev
			// Allow for 2-decimal rounding at the boundaries
			if inc < rules.LateIncrementMin-0.005 || inc > rules.LateIncrementMax+0.005 {
				t.Fatalf("seed %d: late increment %v outside [%v, %v]", seed, inc, rules.LateIncrementMin, rules.LateIncrementMax)
			}
			prev = v
		}
	}
}

func TestSequencerDeterministic(t *testing.T) {
	rules := config.DefaultGameConfig().Odds.Multiplier

	run := func() []float64 {
		rng := rand.New(rand.NewSource(42))
		st := NewSequencerState()
		var out []float64
		for i := 0; i < 20; i++ {
			var v float64
			v, st = PlanNext(st, rules, rng)
			out = append(out, v)
		}
		return out
	}

	a, b := run(), run()
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("draw %d differs: %v vs %v", i, a[i], b[i])
		}
	}
}