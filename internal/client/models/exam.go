package models

import "time"

// Exam is a generated exam attempt. Before submission the questions carry
// no answers; after submission each question records the selected option
// and whether it was correct, and Score holds the final result.
type Exam struct {
	ID        int64          `json:"id"`
	Score     float64        `json:"score"`
	TakenAt   time.Time      `json:"takenAt"`
	Questions []ExamQuestion `json:"questions"`
}

// ExamQuestion is a question inside an exam attempt.
type ExamQuestion struct {
	ID             int64  `json:"id"`
	QuestionText   string `json:"questionText"`
	OptionA        string `json:"optionA"`
	OptionB        string `json:"optionB"`
	OptionC        string `json:"optionC"`
	OptionD        string `json:"optionD"`
	CorrectOption  string `json:"correctOption,omitempty"`
	SelectedOption string `json:"selectedOption,omitempty"`
	IsCorrect      Flag   `json:"isCorrect"`
}

// Option returns the text of the option with the given letter (A-D).
func (q *ExamQuestion) Option(letter string) string {
	switch letter {
	case "A":
		return q.OptionA
	case "B":
		return q.OptionB
	case "C":
		return q.OptionC
	case "D":
		return q.OptionD
	}
	return ""
}

// GenerateExamRequest is the payload for generating a new exam.
// A nil SubjectID requests questions from all subjects and is sent as an
// explicit JSON null.
type GenerateExamRequest struct {
	ExamCategoryID int64  `json:"examCategoryId"`
	SubjectID      *int64 `json:"subjectId"`
	Limit          int    `json:"limit"`
}

// ExamAnswer is one answer inside an exam submission. A nil SelectedOption
// marks the question as skipped.
type ExamAnswer struct {
	QuestionID     int64   `json:"questionId"`
	SelectedOption *string `json:"selectedOption"`
}

// SubmitExamRequest is the payload for submitting a taken exam.
type SubmitExamRequest struct {
	ExamID  int64        `json:"examId"`
	Answers []ExamAnswer `json:"answers"`
}
