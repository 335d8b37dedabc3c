package models

import "time"

// Role is the access level assigned to an account by the server.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

// User is the resolved profile of the authenticated account, including the
// practice statistics the server derives from exam history.
type User struct {
	ID             int64     `json:"id"`
	Username       string    `json:"username"`
	Email          string    `json:"email"`
	Role           Role      `json:"role"`
	CreatedAt      time.Time `json:"createdAt"`
	ExamsTaken     int       `json:"examsTaken"`
	AvgScore       float64   `json:"avgScore"`
	CorrectAnswers int       `json:"correctAnswers"`
	StudyHours     float64   `json:"studyHours"`
}

// IsAdmin reports whether the user may access moderation views.
func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}
