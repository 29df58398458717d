package tracker

// DaySummary is the dashboard header: today's task, habit, and nutrition
// counts.
type DaySummary struct {
	Date            string
	TodosTotal      int
	TodosCompleted  int
	HabitsTotal     int
	HabitsCompleted int
	FoodEntries     int
	Calories        float64
	Protein         float64
}

// Summary computes the current day's totals.
func (s *Service) Summary() (DaySummary, error) {
	summary := DaySummary{Date: s.CurrentDate()}

	todos, err := s.store.GetAllTodos()
	if err != nil {
		return DaySummary{}, err
	}
	for _, t := range todos {
		if t.Timestamp != summary.Date {
			continue
		}
		summary.TodosTotal++
		if t.Completed {
			summary.TodosCompleted++
		}
	}

	habits, err := s.store.GetAllHabits()
	if err != nil {
		return DaySummary{}, err
	}
	summary.HabitsTotal = len(habits)
	for _, h := range habits {
		if h.Timestamp == summary.Date && h.Completed {
			summary.HabitsCompleted++
		}
	}

	entries, err := s.store.GetAllFoodEntries()
	if err != nil {
		return DaySummary{}, err
	}
	for _, e := range entries {
		if e.Timestamp != summary.Date {
			continue
		}
		summary.FoodEntries++
		summary.Calories += e.Calories
		summary.Protein += e.Protein
	}

	return summary, nil
}
