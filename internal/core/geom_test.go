package core

import "testing"

func TestPointAdd(t *testing.T) {
	tests := []struct {
		name     string
		p, d     Point
		expected Point
	}{
		{"right", Point{2, 2}, Point{1, 0}, Point{3, 2}},
		{"left", Point{2, 2}, Point{-1, 0}, Point{1, 2}},
		{"up", Point{2, 2}, Point{0, -1}, Point{2, 1}},
		{"down from origin", Point{0, 0}, Point{0, 1}, Point{0, 1}},
		{"off grid", Point{0, 0}, Point{-1, 0}, Point{-1, 0}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.p.Add(tc.d); got != tc.expected {
				t.Errorf("%v.Add(%v) = %v, expected %v", tc.p, tc.d, got, tc.expected)
			}
		})
	}
}

func TestPointLess(t *testing.T) {
	if !(Point{5, 0}).Less(Point{0, 1}) {
		t.Error("row 0 should sort before row 1")
	}
	if !(Point{1, 3}).Less(Point{2, 3}) {
		t.Error("same row should sort by X")
	}
	if (Point{2, 3}).Less(Point{2, 3}) {
		t.Error("a point is not less than itself")
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside top", 15, 5, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

func TestCenteredRect(t *testing.T) {
	r := CenteredRect(20, 10, 6, 4)
	if r.X != 7 || r.Y != 3 {
		t.Errorf("CenteredRect origin = (%d, %d), expected (7, 3)", r.X, r.Y)
	}

	// Larger than the outer area is clamped to the origin
	r = CenteredRect(4, 4, 10, 10)
	if r.X != 0 || r.Y != 0 {
		t.Errorf("oversized CenteredRect origin = (%d, %d), expected (0, 0)", r.X, r.Y)
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		if got := Clamp(tc.val, tc.min, tc.max); got != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, got, tc.expected)
		}
	}
}

func TestIntentString(t *testing.T) {
	if IntentRotate.String() != "Rotate" {
		t.Errorf("IntentRotate.String() = %q", IntentRotate.String())
	}
	if Intent(99).String() != "Unknown" {
		t.Errorf("unknown intent should stringify as Unknown, got %q", Intent(99).String())
	}
	if !IntentQuit.IsPlatform() || IntentStep.IsPlatform() {
		t.Error("IsPlatform classification is wrong")
	}
}
