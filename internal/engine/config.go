package engine

// RuntimeConfig contains configuration passed to the game at initialization.
// The platform layer fills it from CLI flags and the persisted wallet.
type RuntimeConfig struct {
	ScreenW         int     // Screen width in characters
	ScreenH         int     // Screen height in characters
	TickRate        int     // Target ticks per second (default 30)
	Seed            int64   // RNG seed; 0 means time-based in the platform layer
	StartingBalance float64 // Wallet balance at session start
}

// DefaultRuntimeConfig returns a RuntimeConfig with sensible defaults.
func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:         80,
		ScreenH:         24,
		TickRate:        30,
		Seed:            0,
		StartingBalance: 1000,
	}
}

// Geometry is the one-time readiness payload supplied by the renderer.
// The engine cannot calibrate scroll speed or spawn positions until the
// ship position and lane width have been measured.
type Geometry struct {
	ShipLeft  float64 // Left edge of the ship hull on the lane axis
	ShipRight float64 // Right edge of the ship hull
	LaneWidth float64 // Total width of the visible lane
}

// Valid reports whether the geometry can calibrate a round. A lane that
// does not extend past the ship leaves no room to spawn obstacles.
func (g Geometry) Valid() bool {
	return g.ShipLeft >= 0 && g.ShipRight > g.ShipLeft && g.LaneWidth > g.ShipRight
}
