package engine

import "testing"

func TestSpanOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Span
		want bool
	}{
		{"separate", NewSpan(0, 5), NewSpan(6, 10), false},
		{"touching edges", NewSpan(0, 5), NewSpan(5, 10), true},
		{"overlapping", NewSpan(0, 6), NewSpan(4, 10), true},
		{"contained", NewSpan(0, 10), NewSpan(3, 5), true},
		{"reversed order", NewSpan(6, 10), NewSpan(0, 5), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Overlaps(tt.b); got != tt.want {
				t.Errorf("Overlaps(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
			// Overlap is symmetric
			if got := tt.b.Overlaps(tt.a); got != tt.want {
				t.Errorf("Overlaps(%v, %v) = %v, want %v", tt.b, tt.a, got, tt.want)
			}
		})
	}
}

func TestSpanPad(t *testing.T) {
	a := NewSpan(10, 20)
	b := NewSpan(21, 30)

	if a.Overlaps(b) {
		t.Fatal("spans should not overlap before padding")
	}
	if !a.Pad(1).Overlaps(b) {
		t.Error("padded span should reach the neighbor")
	}
	if got := a.Pad(2).Width(); got != 14 {
		t.Errorf("Pad(2).Width() = %v, want 14", got)
	}
	if got := a.Pad(-2).Width(); got != 6 {
		t.Errorf("Pad(-2).Width() = %v, want 6", got)
	}
}

func TestRound2(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{1.2349, 1.23},
		{1.235, 1.24},
		{2.0999999, 2.10},
		{10 * 1.2, 12.00},
	}

	for _, tt := range tests {
		if got := Round2(tt.in); got != tt.want {
			t.Errorf("Round2(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestGeometryValid(t *testing.T) {
	good := Geometry{ShipLeft: 8, ShipRight: 13, LaneWidth: 80}
	if !good.Valid() {
		t.Error("expected valid geometry")
	}

	bad := []Geometry{
		{ShipLeft: -1, ShipRight: 13, LaneWidth: 80},
		{ShipLeft: 8, ShipRight: 8, LaneWidth: 80},
		{ShipLeft: 8, ShipRight: 13, LaneWidth: 13},
		{},
	}
	for _, g := range bad {
		if g.Valid() {
			t.Errorf("expected invalid geometry: %+v", g)
		}
	}
}

func TestClampF(t *testing.T) {
	if got := ClampF(0.06, 0, 0.05); got != 0.05 {
		t.Errorf("ClampF above max = %v, want 0.05", got)
	}
	if got := ClampF(-1, 0, 0.05); got != 0 {
		t.Errorf("ClampF below min = %v, want 0", got)
	}
	if got := ClampF(0.03, 0, 0.05); got != 0.03 {
		t.Errorf("ClampF in range = %v, want 0.03", got)
	}
}
