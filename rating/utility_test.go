package rating_test

import (
	"testing"

	"frag-rating/rating"
)

func TestComputeUtilityScore(t *testing.T) {
	tests := []struct {
		name                         string
		blinded, utilDamage, flashes int
		wantScore                    int
		wantAvailable                bool
	}{
		{"no data at all", 0, 0, 0, 0, false},
		{"targets met", 10, 200, 15, 100, true},
		{"half effort", 5, 100, 9, 53, true},
		{"blinds only", 2, 0, 0, 8, true},
		{"over targets clamp", 20, 500, 30, 100, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := rating.ComputeUtilityScore(tt.blinded, tt.utilDamage, tt.flashes)
			score, ok := got.Value()
			if ok != tt.wantAvailable {
				t.Fatalf("ComputeUtilityScore(%d, %d, %d) available = %v, want %v",
					tt.blinded, tt.utilDamage, tt.flashes, ok, tt.wantAvailable)
			}
			if ok && score != tt.wantScore {
				t.Errorf("ComputeUtilityScore(%d, %d, %d) = %d, want %d",
					tt.blinded, tt.utilDamage, tt.flashes, score, tt.wantScore)
			}
		})
	}
}
