package models

// FoodEntry is a single logged meal or snack. Entries are day-scoped and the
// collection is cleared when a new day is started.
type FoodEntry struct {
	ID        string  `json:"id"`
	Name      string  `json:"name"`
	Calories  float64 `json:"calories"`
	Protein   float64 `json:"protein,omitempty"`
	Time      string  `json:"time"`      // HH:MM display time
	Timestamp string  `json:"timestamp"` // YYYY-MM-DD format
}
