package models

// Todo is a single task. Todos live in a pool: dormant until activated,
// either by hand or by the owning project's activation policy.
type Todo struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
	Timestamp string `json:"timestamp"` // YYYY-MM-DD format
	ProjectID string `json:"project_id,omitempty"`
	Notes     string `json:"notes,omitempty"`
	Active    bool   `json:"active"`
}

// Eligible reports whether the todo is a candidate for activation.
func (t Todo) Eligible() bool {
	return !t.Completed && !t.Active
}
