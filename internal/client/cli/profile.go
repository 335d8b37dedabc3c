package cli

import (
	"context"
	"fmt"
)

// profileView prints the current identity and its practice statistics.
func (a *App) profileView(ctx context.Context) error {
	user, ok := a.session.Identity()
	if !ok {
		return nil
	}

	printlnFn("Profile:")
	printlnFn("  username: " + user.Username)
	printlnFn("  email:    " + user.Email)
	printlnFn("  role:     " + string(user.Role))
	if !user.CreatedAt.IsZero() {
		printlnFn("  member since: " + user.CreatedAt.Format("2006-01-02"))
	}
	printlnFn(fmt.Sprintf("  exams taken: %d, avg score %.1f", user.ExamsTaken, user.AvgScore))
	printlnFn(fmt.Sprintf("  correct answers: %d, study hours %.1f", user.CorrectAnswers, user.StudyHours))
	return nil
}
