package guard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrijs2005/examtrainer/internal/client/models"
)

func TestEvaluate(t *testing.T) {
	user := &models.User{ID: 1, Role: models.RoleUser}
	admin := &models.User{ID: 2, Role: models.RoleAdmin}

	tests := []struct {
		name      string
		identity  *models.User
		resolving bool
		required  models.Role
		want      Decision
	}{
		{"resolving hides everything", nil, true, "", DecisionLoading},
		{"resolving wins even with identity", admin, true, models.RoleAdmin, DecisionLoading},
		{"anonymous goes to login", nil, false, "", DecisionLogin},
		{"anonymous on admin view goes to login", nil, false, models.RoleAdmin, DecisionLogin},
		{"user on open view", user, false, "", DecisionAllow},
		{"user on user view", user, false, models.RoleUser, DecisionAllow},
		{"user on admin view falls back home", user, false, models.RoleAdmin, DecisionHome},
		{"admin on admin view", admin, false, models.RoleAdmin, DecisionAllow},
		{"admin on user view falls back home", admin, false, models.RoleUser, DecisionHome},
		{"admin on open view", admin, false, "", DecisionAllow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Evaluate(tt.identity, tt.resolving, tt.required)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDecisionString(t *testing.T) {
	assert.Equal(t, "loading", DecisionLoading.String())
	assert.Equal(t, "login", DecisionLogin.String())
	assert.Equal(t, "home", DecisionHome.String())
	assert.Equal(t, "allow", DecisionAllow.String())
	assert.Equal(t, "unknown", Decision(42).String())
}
