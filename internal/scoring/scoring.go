// Package scoring holds the pure point policy for answered questions.
package scoring

import "time"

const (
	// FirstSolverBonus goes to whichever correct answer the session
	// accepts first for a question.
	FirstSolverBonus = 3

	fastThreshold = 5 * time.Second
	slowThreshold = 10 * time.Second
)

// basePoints by attempt number: 3 on the first try, 2 on the second,
// 1 on the third. Callers never score a fourth attempt.
func basePoints(attempt int) int {
	switch attempt {
	case 1:
		return 3
	case 2:
		return 2
	case 3:
		return 1
	default:
		return 0
	}
}

// TimeBonus rewards server-side measured speed: +2 under five seconds,
// +1 under ten.
func TimeBonus(elapsed time.Duration) int {
	switch {
	case elapsed < fastThreshold:
		return 2
	case elapsed < slowThreshold:
		return 1
	default:
		return 0
	}
}

// Points computes the total award for an accepted correct answer and
// returns the time-bonus component separately for the result payload.
func Points(attempt int, firstSolver bool, elapsed time.Duration) (total, timeBonus int) {
	timeBonus = TimeBonus(elapsed)
	total = basePoints(attempt) + timeBonus
	if firstSolver {
		total += FirstSolverBonus
	}
	return total, timeBonus
}
