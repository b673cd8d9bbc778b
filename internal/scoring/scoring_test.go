package scoring

import (
	"testing"
	"time"
)

func TestPoints(t *testing.T) {
	cases := []struct {
		name        string
		attempt     int
		firstSolver bool
		elapsed     time.Duration
		total       int
		timeBonus   int
	}{
		{"first attempt, fastest, quick", 1, true, 3 * time.Second, 8, 2},
		{"second attempt, medium speed", 2, false, 7 * time.Second, 3, 1},
		{"third attempt, slow", 3, false, 12 * time.Second, 1, 0},
		{"first attempt, not fastest, slow", 1, false, 30 * time.Second, 3, 0},
		{"second attempt, fastest, quick", 2, true, 4 * time.Second, 7, 2},
		{"third attempt, fastest, boundary five seconds", 3, true, 5 * time.Second, 5, 1},
		{"boundary ten seconds yields no bonus", 1, false, 10 * time.Second, 3, 0},
	}

	for _, tc := range cases {
		total, timeBonus := Points(tc.attempt, tc.firstSolver, tc.elapsed)
		if total != tc.total || timeBonus != tc.timeBonus {
			t.Errorf("%s: got total=%d bonus=%d, want total=%d bonus=%d",
				tc.name, total, timeBonus, tc.total, tc.timeBonus)
		}
	}
}
