// Package guard decides whether a navigation target may render, based on
// the current session state and the role the target requires. It is a pure
// function of its inputs and keeps no state of its own.
package guard

import "github.com/dmitrijs2005/examtrainer/internal/client/models"

// Decision is the outcome of evaluating a navigation attempt.
type Decision int

const (
	// DecisionLoading means identity resolution is still running; render a
	// neutral placeholder and nothing else.
	DecisionLoading Decision = iota
	// DecisionLogin means there is no identity; send the user to the login
	// entry point.
	DecisionLogin
	// DecisionHome means the identity lacks the required role; silently
	// fall back to the default landing view, never an error.
	DecisionHome
	// DecisionAllow means the target may render.
	DecisionAllow
)

func (d Decision) String() string {
	switch d {
	case DecisionLoading:
		return "loading"
	case DecisionLogin:
		return "login"
	case DecisionHome:
		return "home"
	case DecisionAllow:
		return "allow"
	}
	return "unknown"
}

// Evaluate gates a view that requires the given role. An empty required
// role admits any authenticated user. The checks are ordered: an unfinished
// bootstrap always wins, then missing identity, then role mismatch.
func Evaluate(identity *models.User, resolving bool, required models.Role) Decision {
	if resolving {
		return DecisionLoading
	}
	if identity == nil {
		return DecisionLogin
	}
	if required != "" && identity.Role != required {
		return DecisionHome
	}
	return DecisionAllow
}
