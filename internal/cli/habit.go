package cli

import "fmt"

type HabitAddCmd struct {
	Name string `arg:"" help:"Habit name."`
}

func (c *HabitAddCmd) Run(ctx *Context) error {
	habit, err := ctx.Tracker.AddHabit(c.Name)
	if err != nil {
		return err
	}
	fmt.Printf("Added habit: %s (ID: %s)\n", habit.Name, habit.ID)
	return nil
}

type HabitListCmd struct{}

func (c *HabitListCmd) Run(ctx *Context) error {
	ctx.NoticePendingTransition()

	habits, err := ctx.Tracker.Habits()
	if err != nil {
		return err
	}
	if len(habits) == 0 {
		fmt.Println("No habits found")
		return nil
	}

	today := ctx.Tracker.CurrentDate()
	fmt.Println("Habits:")
	for _, h := range habits {
		done := h.Completed && h.Timestamp == today
		fmt.Printf("  %s %s (streak: %d)\n", CheckMark(done), h.Name, h.Streak)
		fmt.Printf("      ID: %s\n", h.ID)
	}
	return nil
}

type HabitToggleCmd struct {
	ID string `arg:"" help:"Habit ID to toggle."`
}

func (c *HabitToggleCmd) Run(ctx *Context) error {
	habit, err := ctx.Tracker.ToggleHabit(c.ID)
	if err != nil {
		return err
	}
	if habit.Completed {
		fmt.Printf("Done today: %s (streak: %d)\n", habit.Name, habit.Streak)
	} else {
		fmt.Printf("Unmarked: %s (streak: %d)\n", habit.Name, habit.Streak)
	}
	return nil
}

type HabitEditCmd struct {
	ID   string `arg:"" help:"Habit ID to rename."`
	Name string `arg:"" help:"New habit name."`
}

func (c *HabitEditCmd) Run(ctx *Context) error {
	if err := ctx.Tracker.RenameHabit(c.ID, c.Name); err != nil {
		return err
	}
	fmt.Println("Habit updated")
	return nil
}

type HabitDeleteCmd struct {
	ID string `arg:"" help:"Habit ID to delete."`
}

func (c *HabitDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Tracker.DeleteHabit(c.ID); err != nil {
		return err
	}
	fmt.Println("Habit deleted")
	return nil
}
