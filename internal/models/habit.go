package models

// Habit is a daily practice with a running streak counter. The streak counts
// net completions, not consecutive calendar days; the day rollover resets
// Completed but never touches Streak.
type Habit struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Completed bool   `json:"completed"`
	Streak    int    `json:"streak"`
	Timestamp string `json:"timestamp"` // YYYY-MM-DD format
}
