package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/dmitrijs2005/examtrainer/internal/client/models"
)

// Exams groups the exam lifecycle endpoints.
type Exams struct {
	c *Client
}

// Generate asks the server to build a new exam.
func (e *Exams) Generate(ctx context.Context, req models.GenerateExamRequest) (*models.Exam, error) {
	var exam models.Exam
	if err := e.c.Do(ctx, http.MethodPost, "/exams/generate", req, &exam); err != nil {
		return nil, err
	}
	return &exam, nil
}

// Submit sends the answers of a taken exam and returns the scored result.
func (e *Exams) Submit(ctx context.Context, req models.SubmitExamRequest) (*models.Exam, error) {
	var exam models.Exam
	if err := e.c.Do(ctx, http.MethodPost, "/exams/submit", req, &exam); err != nil {
		return nil, err
	}
	return &exam, nil
}

// Get fetches a single exam by id.
func (e *Exams) Get(ctx context.Context, id int64) (*models.Exam, error) {
	var exam models.Exam
	if err := e.c.Do(ctx, http.MethodGet, fmt.Sprintf("/exams/%d", id), nil, &exam); err != nil {
		return nil, err
	}
	return &exam, nil
}

// History lists the current user's past exams.
func (e *Exams) History(ctx context.Context) ([]models.Exam, error) {
	var items []models.Exam
	if err := e.c.Do(ctx, http.MethodGet, "/exams/history/me", nil, &items); err != nil {
		return nil, err
	}
	return items, nil
}
