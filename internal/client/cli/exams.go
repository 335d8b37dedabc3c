package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/examtrainer/internal/client/models"
)

const defaultExamLimit = 10

// generateExamView builds a new exam and flows straight into taking it.
func (a *App) generateExamView(ctx context.Context) error {
	if err := a.categoriesView(ctx); err != nil {
		return err
	}

	categoryID, err := a.promptInt("Category id")
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	subjectID, err := a.promptOptionalInt("Subject id")
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	limitText, err := a.promptTextDefault("Number of questions", fmt.Sprintf("%d", defaultExamLimit))
	if err != nil {
		return err
	}
	var limit int
	if _, err := fmt.Sscanf(limitText, "%d", &limit); err != nil || limit <= 0 {
		printlnFn("Expected a positive number of questions.")
		return fmt.Errorf("invalid limit %q", limitText)
	}

	exam, err := a.exams.Generate(ctx, models.GenerateExamRequest{
		ExamCategoryID: categoryID,
		SubjectID:      subjectID,
		Limit:          limit,
	})
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	printlnFn(fmt.Sprintf("Exam #%d generated with %d questions.", exam.ID, len(exam.Questions)))
	return a.takeExam(ctx, exam)
}

// takeExam asks every question in turn and submits the answers. An empty
// answer skips the question (sent as null).
func (a *App) takeExam(ctx context.Context, exam *models.Exam) error {
	answers := make([]models.ExamAnswer, 0, len(exam.Questions))

	for i := range exam.Questions {
		q := &exam.Questions[i]
		printlnFn(fmt.Sprintf("\nQuestion %d/%d: %s", i+1, len(exam.Questions), q.QuestionText))
		for _, letter := range []string{"A", "B", "C", "D"} {
			printlnFn(fmt.Sprintf("   %s) %s", letter, q.Option(letter)))
		}

		var letter string
		for {
			l, err := a.promptOption("Your answer (A-D, empty to skip)")
			if err == nil {
				letter = l
				break
			}
			// Re-prompt only on bad letters; a dead reader ends the exam.
			if !errors.Is(err, errInvalidInput) {
				return err
			}
			printlnFn(err.Error())
		}

		answer := models.ExamAnswer{QuestionID: q.ID}
		if letter != "" {
			answer.SelectedOption = &letter
		}
		answers = append(answers, answer)
	}

	result, err := a.exams.Submit(ctx, models.SubmitExamRequest{ExamID: exam.ID, Answers: answers})
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	a.renderExamResult(result)
	return nil
}

// resultView fetches one past exam by id and renders it.
func (a *App) resultView(ctx context.Context) error {
	id, err := a.promptInt("Enter exam id")
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	exam, err := a.exams.Get(ctx, id)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	a.renderExamResult(exam)
	return nil
}

// historyView lists the user's past exams.
func (a *App) historyView(ctx context.Context) error {
	items, err := a.exams.History(ctx)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	if len(items) == 0 {
		printlnFn("No exams taken yet. Try 'generate'.")
		return nil
	}

	printlnFn("Your exams:")
	for _, e := range items {
		printlnFn(fmt.Sprintf("  [%d] score %.1f  taken %s", e.ID, e.Score, e.TakenAt.Format("2006-01-02 15:04")))
	}
	printlnFn("Use 'result' to inspect one of them.")
	return nil
}

func (a *App) renderExamResult(exam *models.Exam) {
	correct := 0
	for i := range exam.Questions {
		if exam.Questions[i].IsCorrect {
			correct++
		}
	}

	printlnFn(fmt.Sprintf("\nExam #%d: score %.1f (%d/%d correct)", exam.ID, exam.Score, correct, len(exam.Questions)))

	for i := range exam.Questions {
		q := &exam.Questions[i]
		mark := "✗"
		if q.IsCorrect {
			mark = "✓"
		}
		printlnFn(fmt.Sprintf("%s %d. %s", mark, i+1, q.QuestionText))
		if q.SelectedOption == "" {
			printlnFn("   skipped")
		} else {
			printlnFn(fmt.Sprintf("   your answer: %s) %s", q.SelectedOption, q.Option(q.SelectedOption)))
		}
		if !q.IsCorrect && q.CorrectOption != "" {
			printlnFn(fmt.Sprintf("   correct:     %s) %s", q.CorrectOption, q.Option(q.CorrectOption)))
		}
	}
}
