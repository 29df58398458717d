package models

// Project groups todos and controls how they are activated. Ordered projects
// promote tasks in creation sequence; unordered projects leave promotion to
// the user. Both cap concurrent active tasks at one. The Ordered flag is
// fixed at creation.
type Project struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Active      bool   `json:"active"`
	Timestamp   string `json:"timestamp"` // YYYY-MM-DD format
	Ordered     bool   `json:"ordered"`
}
