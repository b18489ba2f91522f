package icedrift

import (
	"math"
	"testing"

	"github.com/nordvik/icedrift/internal/config"
	"github.com/nordvik/icedrift/internal/engine"
)

func testGeometry() engine.Geometry {
	return engine.Geometry{ShipLeft: 8, ShipRight: 13, LaneWidth: 80}
}

func newTestField(cfg config.GameConfig) *Field {
	f := NewField(cfg)
	f.BeginRound(testGeometry())
	return f
}

// arrivalTime advances the field in fixed ticks until the obstacle's hitbox
// reaches the ship's right edge, returning the elapsed simulated time.
func arrivalTime(t *testing.T, f *Field, id int64, ship engine.Span) float64 {
	t.Helper()
	const dt = 1.0 / 30.0

	elapsed := 0.0
	for elapsed < 60 {
		for _, ob := range f.Obstacles() {
			if ob.ID == id && f.HitboxSpan(ob).Overlaps(ship) {
				return elapsed
			}
		}
		f.Advance(dt)
		elapsed += dt
	}
	t.Fatalf("obstacle %d never reached the ship", id)
	return 0
}

func TestSpawnArrivalMatchesCadence(t *testing.T) {
	cfg := config.DefaultGameConfig()
	ship := engine.NewSpan(8, 13)

	for k := 1; k <= 3; k++ {
		f := newTestField(cfg)
		f.Spawn(k, 1.5, false, 0)

		got := arrivalTime(t, f, 1, ship)
		want := float64(k) * cfg.Timing.HitInterval
		if math.Abs(got-want) > 2.0/30.0 {
			t.Errorf("k=%d: arrival at %.3fs, want %.3fs", k, got, want)
		}
	}
}

func TestPaceScaleDoesNotAffectArrival(t *testing.T) {
	ship := engine.NewSpan(8, 13)

	times := make([]float64, 0, 2)
	for _, pace := range []float64{0.5, 1.0} {
		cfg := config.DefaultGameConfig()
		cfg.Field.PaceScale = pace

		f := newTestField(cfg)
		f.Spawn(2, 1.5, false, 0)
		times = append(times, arrivalTime(t, f, 1, ship))
	}

	if math.Abs(times[0]-times[1]) > 2.0/30.0 {
		t.Errorf("arrival times differ across pace scales: %.3fs vs %.3fs", times[0], times[1])
	}
}

func TestMidRoundSpawnKeepsCadence(t *testing.T) {
	cfg := config.DefaultGameConfig()
	ship := engine.NewSpan(8, 13)
	f := newTestField(cfg)

	// Scroll for a while before spawning; the formula must compensate.
	const dt = 1.0 / 30.0
	for i := 0; i < 37; i++ {
		f.Advance(dt)
	}

	f.Spawn(1, 1.5, false, 0)
	got := arrivalTime(t, f, 1, ship)
	if math.Abs(got-cfg.Timing.HitInterval) > 2.0/30.0 {
		t.Errorf("mid-round spawn arrived at %.3fs, want %.3fs", got, cfg.Timing.HitInterval)
	}
}

func TestIdleCountTracksStatus(t *testing.T) {
	f := newTestField(config.DefaultGameConfig())

	f.Spawn(1, 1.2, false, 0)
	f.Spawn(2, 1.4, true, 0)
	if got := f.IdleCount(); got != 2 {
		t.Fatalf("IdleCount = %d, want 2", got)
	}

	f.MarkResolving(1, 0.5)
	if got := f.IdleCount(); got != 1 {
		t.Errorf("IdleCount after resolve = %d, want 1", got)
	}

	// Resolving an already resolving obstacle is a no-op
	f.MarkResolving(1, 0.9)
	if f.Obstacles()[0].ResolvedAt != 0.5 {
		t.Errorf("ResolvedAt changed on double resolve: %v", f.Obstacles()[0].ResolvedAt)
	}
}

func TestGraceWindow(t *testing.T) {
	cfg := config.DefaultGameConfig()
	f := newTestField(cfg)
	f.Spawn(1, 1.2, false, 10.0)

	ob := f.Obstacles()[0]
	if !f.InGrace(ob, 10.0) {
		t.Error("obstacle should be in grace immediately after spawn")
	}
	if !f.InGrace(ob, 10.0+cfg.Timing.GraceWindow-0.01) {
		t.Error("obstacle should still be in grace just before the window ends")
	}
	if f.InGrace(ob, 10.0+cfg.Timing.GraceWindow) {
		t.Error("obstacle should leave grace once the window elapses")
	}
}

func TestCullOffscreen(t *testing.T) {
	cfg := config.DefaultGameConfig()
	f := newTestField(cfg)
	f.Spawn(1, 1.2, false, 0)

	// Push the world far enough that the obstacle is past the cull margin
	f.Advance(60)
	f.Cull(60)

	if len(f.Obstacles()) != 0 {
		t.Errorf("off-screen obstacle survived cull: %d remain", len(f.Obstacles()))
	}
}

func TestCullSettleDelay(t *testing.T) {
	cfg := config.DefaultGameConfig()
	f := newTestField(cfg)
	f.Spawn(1, 1.2, false, 0)
	f.MarkResolving(1, 1.0)

	f.Cull(1.0 + cfg.Timing.SettleDelay - 0.01)
	if len(f.Obstacles()) != 1 {
		t.Fatal("resolving obstacle culled before its settle delay elapsed")
	}

	f.Cull(1.0 + cfg.Timing.SettleDelay)
	if len(f.Obstacles()) != 0 {
		t.Error("settled obstacle survived cull")
	}
}

func TestCullSettledIgnoresIdle(t *testing.T) {
	cfg := config.DefaultGameConfig()
	f := newTestField(cfg)
	f.Spawn(1, 1.2, false, 0)
	f.Spawn(2, 1.4, false, 0)
	f.MarkResolving(1, 0)

	f.CullSettled(cfg.Timing.SettleDelay + 1)
	if len(f.Obstacles()) != 1 {
		t.Fatalf("got %d obstacles, want 1", len(f.Obstacles()))
	}
	if f.Obstacles()[0].ID != 2 {
		t.Errorf("wrong obstacle culled: kept %d", f.Obstacles()[0].ID)
	}
}

func TestRemoveIdempotent(t *testing.T) {
	f := newTestField(config.DefaultGameConfig())
	f.Spawn(1, 1.2, false, 0)

	f.Remove(1)
	f.Remove(1) // Already gone; must not panic or disturb others
	if len(f.Obstacles()) != 0 {
		t.Errorf("got %d obstacles, want 0", len(f.Obstacles()))
	}
}

func TestCadenceClock(t *testing.T) {
	cfg := config.DefaultGameConfig()
	f := newTestField(cfg)

	if !f.CadenceDue() {
		// sinceSpawn starts at 0; nothing spawned yet
		f.Advance(cfg.Timing.HitInterval)
	}
	if !f.CadenceDue() {
		t.Fatal("cadence should be due after a full hit interval")
	}

	f.Spawn(1, 1.2, false, 0)
	if f.CadenceDue() {
		t.Error("spawn should reset the cadence clock")
	}

	f.Advance(cfg.Timing.HitInterval)
	if !f.CadenceDue() {
		t.Error("cadence should be due again after another interval")
	}
}

func TestBeginRoundResetsField(t *testing.T) {
	f := newTestField(config.DefaultGameConfig())
	f.Spawn(1, 1.2, false, 0)
	f.Advance(3)

	f.BeginRound(testGeometry())
	if len(f.Obstacles()) != 0 {
		t.Error("BeginRound should clear the obstacle set")
	}
	if f.Scroll() != 0 {
		t.Errorf("Scroll after BeginRound = %v, want 0", f.Scroll())
	}
	if f.Speed() <= 0 {
		t.Errorf("Speed after BeginRound = %v, want > 0", f.Speed())
	}
}
