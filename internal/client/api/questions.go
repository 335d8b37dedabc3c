package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/examtrainer/internal/client/models"
)

// Questions groups the question browsing, submission and moderation
// endpoints. Pending and UpdateStatus require the admin role server-side.
type Questions struct {
	c *Client
}

// ListApproved lists the approved questions for a category/subject pair.
func (q *Questions) ListApproved(ctx context.Context, categoryID, subjectID int64) ([]models.Question, error) {
	var items []models.Question
	path := fmt.Sprintf("/questions/%d/%d", categoryID, subjectID)
	if err := q.c.Do(ctx, http.MethodGet, path, nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Recommend submits a candidate question for admin review.
func (q *Questions) Recommend(ctx context.Context, req models.RecommendQuestionRequest) error {
	return q.c.Do(ctx, http.MethodPost, "/questions/recommend", req, nil)
}

// Pending lists questions awaiting moderation.
func (q *Questions) Pending(ctx context.Context) ([]models.Question, error) {
	var items []models.Question
	if err := q.c.Do(ctx, http.MethodGet, "/admin/questions/pending", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// UpdateStatus approves or rejects a pending question.
func (q *Questions) UpdateStatus(ctx context.Context, id int64, status models.QuestionStatus) error {
	path := fmt.Sprintf("/admin/questions/%d/status", id)
	body := struct {
		Status models.QuestionStatus `json:"status"`
	}{Status: status}
	return q.c.Do(ctx, http.MethodPatch, path, body, nil)
}
