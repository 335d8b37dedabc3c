package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/examtrainer/internal/client/models"
)

// pendingQuestionsView walks the moderation queue: each pending question is
// shown and can be approved, rejected, or skipped.
func (a *App) pendingQuestionsView(ctx context.Context) error {
	items, err := a.questions.Pending(ctx)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	if len(items) == 0 {
		printlnFn("No questions waiting for review.")
		return nil
	}

	printlnFn(fmt.Sprintf("%d question(s) waiting for review.", len(items)))

	for i := range items {
		q := &items[i]
		printlnFn(fmt.Sprintf("\n[%d] %s", q.ID, q.QuestionText))
		for _, letter := range []string{"A", "B", "C", "D"} {
			marker := " "
			if q.CorrectOption == letter {
				marker = "*"
			}
			printlnFn(fmt.Sprintf("  %s %s) %s", marker, letter, q.Option(letter)))
		}
		printlnFn(fmt.Sprintf("  category: %s, subject: %s, by: %s", q.CategoryName, q.SubjectName, q.UserName))

		verdict, err := a.promptText("approve / reject / skip")
		if err != nil {
			return err
		}

		var status models.QuestionStatus
		switch strings.ToLower(verdict) {
		case "approve", "a":
			status = models.QuestionApproved
		case "reject", "r":
			status = models.QuestionRejected
		default:
			continue
		}

		if err := a.questions.UpdateStatus(ctx, q.ID, status); err != nil {
			printlnFn(err.Error())
			continue
		}
		printlnFn(fmt.Sprintf("Question %d %s.", q.ID, status))
	}
	return nil
}
