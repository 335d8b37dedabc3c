package models

import "time"

// QuestionStatus is the moderation state of a candidate question.
type QuestionStatus string

const (
	QuestionPending  QuestionStatus = "pending"
	QuestionApproved QuestionStatus = "approved"
	QuestionRejected QuestionStatus = "rejected"
)

// Question is a multiple-choice question as returned by the server.
type Question struct {
	ID            int64          `json:"id"`
	QuestionText  string         `json:"questionText"`
	OptionA       string         `json:"optionA"`
	OptionB       string         `json:"optionB"`
	OptionC       string         `json:"optionC"`
	OptionD       string         `json:"optionD"`
	CorrectOption string         `json:"correctOption,omitempty"`
	Status        QuestionStatus `json:"status,omitempty"`
	CategoryName  string         `json:"categoryName,omitempty"`
	SubjectName   string         `json:"subjectName,omitempty"`
	UserName      string         `json:"userName,omitempty"`
	CreatedAt     time.Time      `json:"createdAt"`
}

// Option returns the text of the option with the given letter (A-D).
func (q *Question) Option(letter string) string {
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

// RecommendQuestionRequest is the payload for submitting a candidate
// question for admin review.
type RecommendQuestionRequest struct {
	QuestionText   string `json:"questionText"`
	OptionA        string `json:"optionA"`
	OptionB        string `json:"optionB"`
	OptionC        string `json:"optionC"`
	OptionD        string `json:"optionD"`
	CorrectOption  string `json:"correctOption"`
	ExamCategoryID int64  `json:"idExamCategory"`
	SubjectID      int64  `json:"idSubject"`
}
