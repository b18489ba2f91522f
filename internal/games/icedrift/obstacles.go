package icedrift

import (
	"github.com/nordvik/icedrift/internal/config"
	"github.com/nordvik/icedrift/internal/engine"
)

// ObstacleStatus tracks an obstacle's lifecycle.
type ObstacleStatus int

const (
	// StatusIdle marks an obstacle that has not been contacted yet.
	StatusIdle ObstacleStatus = iota
	// StatusResolving marks a contacted obstacle waiting out its settle
	// delay before removal.
	StatusResolving
)

// Obstacle is a single floe drifting toward the ship. Hazard floes are
// visually indistinguishable from safe ones; the flag carries no observable
// signal until contact resolves.
type Obstacle struct {
	ID         int64
	WorldX     float64 // Left edge in world space
	Width      float64
	Height     float64
	Multiplier float64 // Planned multiplier granted on a safe contact
	Hazard     bool
	Status     ObstacleStatus
	SpawnedAt  float64 // Simulated seconds at spawn, for the grace window
	ResolvedAt float64 // Simulated seconds at resolution, for settle removal
}

// Field owns the obstacle set and the world scroll. Timing is defined in
// world space: an obstacle spawned for contact k intervals ahead collides
// exactly k*HitInterval seconds later at constant speed, regardless of the
// wall-clock-to-pixel ratio.
type Field struct {
	cfg        config.GameConfig
	geom       engine.Geometry
	obstacles  []Obstacle
	scroll     float64
	speed      float64
	nextID     int64
	sinceSpawn float64 // Accumulated time since the last spawn, for the cadence path
}

// NewField creates an empty field.
func NewField(cfg config.GameConfig) *Field {
	return &Field{
		cfg:       cfg,
		obstacles: make([]Obstacle, 0, 8),
	}
}

// BeginRound resets the field for a fresh round: scroll back to zero, the
// obstacle set cleared (which also cancels any pending settle removals from
// a stale round), and speed recalibrated from the measured geometry.
func (f *Field) BeginRound(geom engine.Geometry) {
	f.geom = geom
	f.obstacles = f.obstacles[:0]
	f.scroll = 0
	f.sinceSpawn = 0
	f.calibrateSpeed()
}

// calibrateSpeed computes the world scroll speed for the round. The open
// water between the ship and the right lane edge must fit the farther of
// the two initial obstacles, which arrives after two hit intervals, so the
// base speed is that distance spread over 2*HitInterval. PaceScale then
// slows the visual pace; spawn positions use the same speed, so arrival
// times are unaffected.
func (f *Field) calibrateSpeed() {
	base := (f.geom.LaneWidth - f.geom.ShipRight) / (2 * f.cfg.Timing.HitInterval)
	f.speed = base * f.cfg.Field.PaceScale
}

// Speed returns the calibrated world scroll speed for the current round.
func (f *Field) Speed() float64 {
	return f.speed
}

// Scroll returns the current world scroll offset.
func (f *Field) Scroll() float64 {
	return f.scroll
}

// Advance moves the world by one simulation step.
func (f *Field) Advance(dt float64) {
	f.scroll += f.speed * dt
	f.sinceSpawn += dt
}

// ScreenX converts an obstacle's world position to its lane position.
func (f *Field) ScreenX(ob Obstacle) float64 {
	return ob.WorldX - f.scroll
}

// Spawn creates an obstacle that will contact the ship k hit intervals from
// now. The position is derived so that after the scroll advances by
// speed*k*HitInterval, the obstacle's hitbox left edge reaches the ship's
// right edge; this single formula guarantees cadence-correct arrivals no
// matter when the spawn happens. Spawning restarts the cadence clock.
func (f *Field) Spawn(k int, multiplier float64, hazard bool, now float64) {
	worldX := f.geom.ShipRight - f.cfg.Hitbox.ObstacleLeftInset + f.scroll +
		f.speed*float64(k)*f.cfg.Timing.HitInterval

	f.nextID++
	f.obstacles = append(f.obstacles, Obstacle{
		ID:         f.nextID,
		WorldX:     worldX,
		Width:      f.cfg.Field.ObstacleWidth,
		Height:     f.cfg.Field.ObstacleHeight,
		Multiplier: multiplier,
		Hazard:     hazard,
		Status:     StatusIdle,
		SpawnedAt:  now,
	})
	f.sinceSpawn = 0
}

// CadenceDue reports whether a full hit interval has elapsed since the last
// spawn, making the cadence spawn path eligible.
func (f *Field) CadenceDue() bool {
	return f.sinceSpawn >= f.cfg.Timing.HitInterval
}

// IdleCount returns the number of obstacles still awaiting contact.
// Invariant: never exceeds the configured MaxIdle.
func (f *Field) IdleCount() int {
	n := 0
	for _, ob := range f.obstacles {
		if ob.Status == StatusIdle {
			n++
		}
	}
	return n
}

// Obstacles returns the live obstacle slice. Callers must not retain it
// across ticks.
func (f *Field) Obstacles() []Obstacle {
	return f.obstacles
}

// HitboxSpan returns the obstacle's contact span on the lane axis, with the
// configured edge insets applied.
func (f *Field) HitboxSpan(ob Obstacle) engine.Span {
	left := f.ScreenX(ob)
	return engine.NewSpan(
		left+f.cfg.Hitbox.ObstacleLeftInset,
		left+ob.Width-f.cfg.Hitbox.ObstacleRightInset,
	)
}

// InGrace reports whether the obstacle is still contact-immune. The grace
// window prevents spurious same-tick collisions when geometry briefly
// overlaps at creation.
func (f *Field) InGrace(ob Obstacle, now float64) bool {
	return now-ob.SpawnedAt < f.cfg.Timing.GraceWindow
}

// MarkResolving transitions an obstacle to Resolving, starting its settle
// delay. No-op if the obstacle is already resolving or was removed.
func (f *Field) MarkResolving(id int64, now float64) {
	for i := range f.obstacles {
		if f.obstacles[i].ID == id && f.obstacles[i].Status == StatusIdle {
			f.obstacles[i].Status = StatusResolving
			f.obstacles[i].ResolvedAt = now
			return
		}
	}
}

// Remove deletes an obstacle by identity. Idempotent: removing an id that
// was already culled is a no-op, which makes late settle removals harmless.
func (f *Field) Remove(id int64) {
	kept := f.obstacles[:0]
	for _, ob := range f.obstacles {
		if ob.ID != id {
			kept = append(kept, ob)
		}
	}
	f.obstacles = kept
}

// Cull removes obstacles whose trailing edge passed the off-screen margin
// and resolving obstacles whose settle delay elapsed.
func (f *Field) Cull(now float64) {
	kept := f.obstacles[:0]
	for _, ob := range f.obstacles {
		if f.ScreenX(ob)+ob.Width < -f.cfg.Field.CullMargin {
			continue
		}
		if ob.Status == StatusResolving && now-ob.ResolvedAt >= f.cfg.Timing.SettleDelay {
			continue
		}
		kept = append(kept, ob)
	}
	f.obstacles = kept
}

// CullSettled removes only settled resolving obstacles. Used outside the
// Running phase, where the world no longer scrolls but leftover settle
// timers from a finished round should still fire naturally.
func (f *Field) CullSettled(now float64) {
	kept := f.obstacles[:0]
	for _, ob := range f.obstacles {
		if ob.Status == StatusResolving && now-ob.ResolvedAt >= f.cfg.Timing.SettleDelay {
			continue
		}
		kept = append(kept, ob)
	}
	f.obstacles = kept
}
