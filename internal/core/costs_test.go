package core

import "testing"

func TestProjectCosts(t *testing.T) {
	cases := []struct {
		score int
		want  CostProjection
	}{
		// score 0: multiplier 1.0
		{0, CostProjection{Year1: 3000, Year3: 3450, Year5: 4050}},
		// score 15: multiplier 1.15; 3450 x 1.15 = 3967.5 rounds up
		{15, CostProjection{Year1: 3450, Year3: 3968, Year5: 4658}},
		// score 50: multiplier 1.5
		{50, CostProjection{Year1: 4500, Year3: 5175, Year5: 6075}},
		// score 100: multiplier 2.0
		{100, CostProjection{Year1: 6000, Year3: 6900, Year5: 8100}},
	}
	for _, tc := range cases {
		if got := ProjectCosts(tc.score); got != tc.want {
			t.Errorf("ProjectCosts(%d) = %+v, want %+v", tc.score, got, tc.want)
		}
	}
}

func TestProjectCosts_MonotoneInRisk(t *testing.T) {
	var prev CostProjection
	for score := 0; score <= 100; score += 10 {
		got := ProjectCosts(score)
		if score > 0 && (got.Year1 <= prev.Year1 || got.Year3 <= prev.Year3 || got.Year5 <= prev.Year5) {
			t.Errorf("score %d: projection %+v not strictly above %+v", score, got, prev)
		}
		if got.Year1 > got.Year3 || got.Year3 > got.Year5 {
			t.Errorf("score %d: horizons out of order: %+v", score, got)
		}
		prev = got
	}
}
