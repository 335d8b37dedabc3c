package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/examtrainer/internal/client/models"
)

// Ranking groups the ranking endpoints.
type Ranking struct {
	c *Client
}

// ByCategory lists the best scores per user for one exam category.
func (r *Ranking) ByCategory(ctx context.Context, categoryID int64) ([]models.RankingEntry, error) {
	var items []models.RankingEntry
	path := fmt.Sprintf("/users/ranking/%d", categoryID)
	if err := r.c.Do(ctx, http.MethodGet, path, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}
