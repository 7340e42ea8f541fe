package gesture

import (
	"testing"
)

func TestPlanAxis(t *testing.T) {
	cases := []struct {
		name        string
		distance    int
		extent      int
		wantFull    int
		wantPartial int
	}{
		// 1400/800 = 1.75 actions: one extra full swipe, 600px remain.
		{"full plus partial", 1400, 800, 1, 600},
		{"partial only", 600, 800, 0, 600},
		{"exact multiple", 1600, 800, 2, 0},
		{"zero distance", 0, 800, 0, 0},
		{"below threshold remainder", 840, 800, 1, 40},
		// Negative distance floors toward more negative, remainder
		// stays non-negative.
		{"negative distance", -300, 800, -1, 500},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			p := planAxis(tc.distance, tc.extent)
			if p.Full != tc.wantFull {
				t.Errorf("full = %d, want %d", p.Full, tc.wantFull)
			}
			if p.Partial != tc.wantPartial {
				t.Errorf("partial = %d, want %d", p.Partial, tc.wantPartial)
			}
			if p.Partial < 0 {
				t.Errorf("partial = %d, must be non-negative", p.Partial)
			}
		})
	}
}

func TestPlanAxisMonotonic(t *testing.T) {
	const extent = 864

	prev := planAxis(0, extent)
	for distance := 1; distance <= 5*extent; distance++ {
		p := planAxis(distance, extent)
		if p.Full < prev.Full {
			t.Fatalf("full swipe count decreased: distance %d gives %d, distance %d gave %d",
				distance, p.Full, distance-1, prev.Full)
		}
		prev = p
	}
}

func TestPlanAxisUndershoots(t *testing.T) {
	// Flooring must never plan past the target: the planned travel is
	// at most the distance itself.
	const extent = 800
	for _, distance := range []int{1, 50, 799, 800, 801, 1399, 1400, 4000} {
		p := planAxis(distance, extent)
		if p.Total > 1 {
			if travel := p.Full*extent + p.Partial; travel > distance {
				t.Errorf("distance %d: planned travel %d overshoots", distance, travel)
			}
		} else if p.Partial > distance {
			t.Errorf("distance %d: partial %d overshoots", distance, p.Partial)
		}
	}
}
