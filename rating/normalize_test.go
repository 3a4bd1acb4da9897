package rating_test

import (
	"testing"

	"frag-rating/rating"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name            string
		value, min, max float64
		want            int
	}{
		{"midpoint", 0.5, 0.35, 0.65, 50},
		{"at min", 0.35, 0.35, 0.65, 0},
		{"below min", 0.2, 0.35, 0.65, 0},
		{"at max", 0.65, 0.35, 0.65, 100},
		{"above max", 0.9, 0.35, 0.65, 100},
		{"kpr midpoint", 0.75, 0.5, 1.0, 50},
		{"adr midpoint", 90, 60, 120, 50},
		{"three fifths", 0.8, 0.5, 1.0, 60},
		{"rounds to nearest", 73, 60, 120, 22},
		{"degenerate domain", 5, 10, 10, 0},
		{"inverted domain", 5, 10, 3, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := rating.Normalize(tt.value, tt.min, tt.max); got != tt.want {
				t.Errorf("Normalize(%v, %v, %v) = %d, want %d", tt.value, tt.min, tt.max, got, tt.want)
			}
		})
	}
}
