package cli

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/examtrainer/internal/client/models"
)

// questionsView browses the approved questions of one category/subject pair.
func (a *App) questionsView(ctx context.Context) error {
	categoryID, err := a.promptInt("Enter category id")
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	subjectID, err := a.promptInt("Enter subject id")
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	items, err := a.questions.ListApproved(ctx, categoryID, subjectID)
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	if len(items) == 0 {
		printlnFn("No approved questions for this selection.")
		return nil
	}

	for i := range items {
		q := &items[i]
		printlnFn(fmt.Sprintf("%d. %s", i+1, q.QuestionText))
		for _, letter := range []string{"A", "B", "C", "D"} {
			printlnFn(fmt.Sprintf("   %s) %s", letter, q.Option(letter)))
		}
	}
	return nil
}

// recommendView submits a candidate question for admin review.
func (a *App) recommendView(ctx context.Context) error {
	text, err := a.promptText("Question text")
	if err != nil {
		return err
	}

	options := make([]string, 0, 4)
	for _, letter := range []string{"A", "B", "C", "D"} {
		opt, err := a.promptText("Option " + letter)
		if err != nil {
			return err
		}
		options = append(options, opt)
	}

	correct, err := a.promptOption("Correct option (A-D)")
	if err != nil || correct == "" {
		printlnFn("A correct option is required.")
		return err
	}

	categoryID, err := a.promptInt("Category id")
	if err != nil {
		printlnFn(err.Error())
		return err
	}
	subjectID, err := a.promptInt("Subject id")
	if err != nil {
		printlnFn(err.Error())
		return err
	}

	req := models.RecommendQuestionRequest{
		QuestionText:   text,
		OptionA:        options[0],
		OptionB:        options[1],
		OptionC:        options[2],
		OptionD:        options[3],
		CorrectOption:  correct,
		ExamCategoryID: categoryID,
		SubjectID:      subjectID,
	}
	if err := a.questions.Recommend(ctx, req); err != nil {
		printlnFn(err.Error())
		return err
	}

	printlnFn("Thank you! Your question is waiting for review.")
	return nil
}
