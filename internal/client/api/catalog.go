package api

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/examtrainer/internal/client/models"
)

// Catalog groups the read-only reference endpoints.
type Catalog struct {
	c *Client
}

// Categories lists all exam categories.
func (c *Catalog) Categories(ctx context.Context) ([]models.Category, error) {
	var items []models.Category
	if err := c.c.Do(ctx, http.MethodGet, "/exam-categories", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Subjects lists all subjects.
func (c *Catalog) Subjects(ctx context.Context) ([]models.Subject, error) {
	var items []models.Subject
	if err := c.c.Do(ctx, http.MethodGet, "/subjects", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}
