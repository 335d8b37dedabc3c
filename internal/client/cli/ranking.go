package cli

import (
	"context"
	"fmt"
)

// rankingView prints the best scores per user for one exam category.
func (a *App) rankingView(ctx context.Context) error {
	categoryID, err := a.promptInt("Enter category id")
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	entries, err := a.ranking.ByCategory(ctx, categoryID)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	if len(entries) == 0 {
		printlnFn("No results for this category yet.")
		return nil
	}

	printlnFn("Ranking:")
	for i, e := range entries {
		printlnFn(fmt.Sprintf("  %2d. %-20s %.1f", i+1, e.Username, e.BestScore))
	}
	return nil
}
