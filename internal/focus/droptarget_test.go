package focus

import "testing"

func TestResolveDropIndex(t *testing.T) {
	tests := []struct {
		name      string
		pointerY  float64
		rowHeight float64
		listLen   int
		want      int
	}{
		{"top of first row", 0, 50, 3, 0},
		{"middle of second row", 75, 50, 3, 1},
		{"boundary lands on next row", 100, 50, 3, 2},
		{"past the end clamps to length", 1000, 50, 3, 3},
		{"negative pointer clamps to zero", -120, 50, 3, 0},
		{"empty list always resolves to zero", 500, 50, 0, 0},
		{"fractional offsets floor", 49.9, 50, 3, 0},
		{"zero row height", 100, 0, 3, 0},
		{"negative list length", 100, 50, -2, 0},
		{"unit row height", 4, 1, 10, 4},
		{"quotient beyond int range clamps to length", 1e300, 1, 3, 3},
		{"huge negative quotient clamps to zero", -1e300, 1, 3, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ResolveDropIndex(tt.pointerY, tt.rowHeight, tt.listLen)
			if got != tt.want {
				t.Errorf("ResolveDropIndex(%v, %v, %d) = %d, want %d",
					tt.pointerY, tt.rowHeight, tt.listLen, got, tt.want)
			}
		})
	}
}
