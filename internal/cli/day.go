package cli

import "fmt"

type DayStatusCmd struct{}

func (c *DayStatusCmd) Run(ctx *Context) error {
	summary, err := ctx.Tracker.Summary()
	if err != nil {
		return err
	}

	fmt.Printf("Today: %s\n\n", summary.Date)
	fmt.Printf("  Todos:   %d/%d completed\n", summary.TodosCompleted, summary.TodosTotal)
	fmt.Printf("  Habits:  %d/%d completed\n", summary.HabitsCompleted, summary.HabitsTotal)
	fmt.Printf("  Food:    %d entries, %.0f kcal, %.0fg protein\n",
		summary.FoodEntries, summary.Calories, summary.Protein)

	if ctx.Transition != nil {
		fmt.Println()
		fmt.Printf("Pending day transition from %s.\n", ctx.Transition.PreviousDate)
		fmt.Println("Run 'daykeep day start-new' or 'daykeep day keep' to resolve it.")
	}
	return nil
}

type DayStartNewCmd struct{}

func (c *DayStartNewCmd) Run(ctx *Context) error {
	ctx.PerformAutomaticBackup()

	if err := ctx.Tracker.StartNewDay(); err != nil {
		return err
	}
	fmt.Printf("Started a new day: %s\n", ctx.Tracker.CurrentDate())
	fmt.Println("Incomplete todos carried over, habits reset, food log cleared.")
	return nil
}

type DayKeepCmd struct{}

func (c *DayKeepCmd) Run(ctx *Context) error {
	if err := ctx.Tracker.KeepPreviousDay(); err != nil {
		return err
	}
	fmt.Println("Keeping the previous day's items as they are.")
	return nil
}
