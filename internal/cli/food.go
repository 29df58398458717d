package cli

import "fmt"

type FoodAddCmd struct {
	Name     string  `arg:"" help:"Food name."`
	Calories float64 `arg:"" help:"Calories (kcal)."`
	Protein  float64 `short:"p" help:"Protein in grams." default:"0"`
}

func (c *FoodAddCmd) Run(ctx *Context) error {
	entry, err := ctx.Tracker.AddFoodEntry(c.Name, c.Calories, c.Protein)
	if err != nil {
		return err
	}
	fmt.Printf("Logged: %s (%.0f kcal, %.0fg protein) at %s\n",
		entry.Name, entry.Calories, entry.Protein, entry.Time)
	return nil
}

type FoodListCmd struct{}

func (c *FoodListCmd) Run(ctx *Context) error {
	ctx.NoticePendingTransition()

	entries, err := ctx.Tracker.FoodEntriesForToday()
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("No food logged today")
		return nil
	}

	var calories, protein float64
	fmt.Println("Today's food:")
	for _, e := range entries {
		fmt.Printf("  %s  %-30s %6.0f kcal  %5.0fg protein\n", e.Time, e.Name, e.Calories, e.Protein)
		fmt.Printf("        ID: %s\n", e.ID)
		calories += e.Calories
		protein += e.Protein
	}
	fmt.Printf("\nTotal: %.0f kcal, %.0fg protein\n", calories, protein)
	return nil
}

type FoodEditCmd struct {
	ID       string  `arg:"" help:"Food entry ID to edit."`
	Name     string  `arg:"" help:"New food name."`
	Calories float64 `arg:"" help:"New calorie count."`
	Protein  float64 `short:"p" help:"New protein in grams." default:"0"`
}

func (c *FoodEditCmd) Run(ctx *Context) error {
	if err := ctx.Tracker.UpdateFoodEntry(c.ID, c.Name, c.Calories, c.Protein); err != nil {
		return err
	}
	fmt.Println("Food entry updated")
	return nil
}

type FoodDeleteCmd struct {
	ID string `arg:"" help:"Food entry ID to delete."`
}

func (c *FoodDeleteCmd) Run(ctx *Context) error {
	if err := ctx.Tracker.DeleteFoodEntry(c.ID); err != nil {
		return err
	}
	fmt.Println("Food entry deleted")
	return nil
}
