package cli

import (
	"context"
	"fmt"
)

func (a *App) categoriesView(ctx context.Context) error {
	items, err := a.catalog.Categories(ctx)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	if len(items) == 0 {
		printlnFn("No categories yet.")
		return nil
	}

	printlnFn("Exam categories:")
	for _, c := range items {
		line := fmt.Sprintf("  [%d] %s", c.ID, c.Name)
		if c.Description != "" {
			line += " - " + c.Description
		}
		printlnFn(line)
	}
	printlnFn("Use 'generate' to build an exam or 'ranking' to see best scores.")
	return nil
}

func (a *App) subjectsView(ctx context.Context) error {
	items, err := a.catalog.Subjects(ctx)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	if len(items) == 0 {
		printlnFn("No subjects yet.")
		return nil
	}

	printlnFn("Subjects:")
	for _, s := range items {
		line := fmt.Sprintf("  [%d] %s", s.ID, s.Name)
		if s.Description != "" {
			line += " - " + s.Description
		}
		printlnFn(line)
	}
	return nil
}
