package physics

import "testing"

func TestRectOverlaps(t *testing.T) {
	alien := Rect{X: 100, Y: 100, W: 40, H: 40}

	tests := []struct {
		name   string
		bullet Rect
		want   bool
	}{
		{"inside", Rect{X: 118, Y: 120, W: 4, H: 16}, true},
		{"crossing bottom edge", Rect{X: 118, Y: 130, W: 4, H: 16}, true},
		{"crossing left edge", Rect{X: 98, Y: 110, W: 4, H: 16}, true},
		{"touching right edge", Rect{X: 140, Y: 110, W: 4, H: 16}, false},
		{"touching top edge", Rect{X: 118, Y: 84, W: 4, H: 16}, false},
		{"above", Rect{X: 118, Y: 40, W: 4, H: 16}, false},
		{"left of", Rect{X: 50, Y: 110, W: 4, H: 16}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.bullet.Overlaps(alien); got != tt.want {
				t.Fatalf("bullet.Overlaps(alien) = %v, want %v", got, tt.want)
			}
			if got := alien.Overlaps(tt.bullet); got != tt.want {
				t.Fatalf("alien.Overlaps(bullet) = %v, want %v (not symmetric)", got, tt.want)
			}
		})
	}
}

func TestRectCenter(t *testing.T) {
	cx, cy := Rect{X: 10, Y: 20, W: 40, H: 30}.Center()
	if cx != 30 || cy != 35 {
		t.Fatalf("Center() = (%v, %v), want (30, 35)", cx, cy)
	}
}

func TestClamp(t *testing.T) {
	if got := Clamp(-3, 0, 760); got != 0 {
		t.Fatalf("Clamp(-3) = %v, want 0", got)
	}
	if got := Clamp(800, 0, 760); got != 760 {
		t.Fatalf("Clamp(800) = %v, want 760", got)
	}
	if got := Clamp(400, 0, 760); got != 400 {
		t.Fatalf("Clamp(400) = %v, want 400", got)
	}
	if got := Clamp(5, 0, -10); got != 0 {
		t.Fatalf("Clamp with inverted range = %v, want 0", got)
	}
}
