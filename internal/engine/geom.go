// Package engine provides fundamental types and utilities for the icedrift
// round engine. It contains no external dependencies (especially no Bubble
// Tea) to keep the simulation logic pure and testable.
package engine

import "math"

// Span represents a closed interval on the lane axis. The collision model is
// one-dimensional: the ship sits at a fixed horizontal position and obstacles
// approach from the right, so contact only depends on horizontal extents.
type Span struct {
	Left, Right float64
}

// NewSpan creates a span from its left and right edges.
func NewSpan(left, right float64) Span {
	return Span{Left: left, Right: right}
}

// Width returns the horizontal extent of the span.
func (s Span) Width() float64 {
	return s.Right - s.Left
}

// Pad expands the span by p on both sides. Negative p shrinks it.
func (s Span) Pad(p float64) Span {
	return Span{Left: s.Left - p, Right: s.Right + p}
}

// Overlaps returns true if the two spans share at least one point.
func (s Span) Overlaps(other Span) bool {
	return s.Left <= other.Right && s.Right >= other.Left
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Clamp restricts an integer value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Round2 rounds a value to two decimal places. Multipliers and money amounts
// are rounded at generation time so stored and displayed values are identical.
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
