package progress

import "fmt"

// DefaultDailyGoal is the number of completed activities that counts as a
// full day when no goal is configured.
const DefaultDailyGoal = 5

// Percentage returns 100*completed/goal. It is intentionally not clamped:
// overshooting the goal reads as more than 100%. A goal of zero or less
// returns 0 rather than dividing by zero.
func Percentage(completed, goal int) int {
	if goal <= 0 {
		return 0
	}
	return 100 * completed / goal
}

// Remaining returns how many activities are still needed to hit the goal,
// never negative.
func Remaining(completed, goal int) int {
	if r := goal - completed; r > 0 {
		return r
	}
	return 0
}

// Message returns the encouragement line shown under the daily goal bar.
func Message(completed, goal int) string {
	if completed >= goal {
		return "You've reached your daily goal! 🎉"
	}
	n := Remaining(completed, goal)
	if n == 1 {
		return "1 more activity to reach your daily goal"
	}
	return fmt.Sprintf("%d more activities to reach your daily goal", n)
}
