package cli

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/examtrainer/internal/client/models"
)

func TestLoginView_Success(t *testing.T) {
	lines := captureOutput(t)
	stubInputs(t, "bob@example.org")
	stubPassword(t, "secret")

	sess := &fakeSession{onLogin: &models.User{ID: 1, Username: "bob"}}
	auth := &fakeAuth{token: "tok-1"}
	local := newFakeLocal()
	app := newTestApp(sess, auth, nil, local)

	require.NoError(t, app.loginView(context.Background()))

	require.NotNil(t, auth.seenLogin)
	assert.Equal(t, "bob@example.org", auth.seenLogin.Email)
	assert.Equal(t, "secret", auth.seenLogin.Password)
	assert.Equal(t, "tok-1", sess.seenToken)
	assert.Equal(t, []byte("bob@example.org"), local.values[lastEmailKey])
	assert.Contains(t, *lines, "Logged in as bob")
}

func TestLoginView_EmailPrefill(t *testing.T) {
	captureOutput(t)
	stubInputs(t, "") // accept the remembered email
	stubPassword(t, "secret")

	sess := &fakeSession{onLogin: &models.User{ID: 1, Username: "bob"}}
	auth := &fakeAuth{token: "tok-1"}
	local := newFakeLocal()
	local.values[lastEmailKey] = []byte("saved@example.org")
	app := newTestApp(sess, auth, nil, local)

	require.NoError(t, app.loginView(context.Background()))

	require.NotNil(t, auth.seenLogin)
	assert.Equal(t, "saved@example.org", auth.seenLogin.Email)
}

func TestLoginView_BadCredentials(t *testing.T) {
	lines := captureOutput(t)
	stubInputs(t, "bob@example.org")
	stubPassword(t, "wrong")

	sess := &fakeSession{}
	auth := &fakeAuth{loginErr: errors.New("Invalid credentials")}
	app := newTestApp(sess, auth, nil, nil)

	require.Error(t, app.loginView(context.Background()))

	assert.Empty(t, sess.seenToken, "no session attempt without a token")
	assert.Contains(t, *lines, "Invalid credentials")
}

func TestLoginView_SessionRejectsToken(t *testing.T) {
	captureOutput(t)
	stubInputs(t, "bob@example.org")
	stubPassword(t, "secret")

	sess := &fakeSession{loginErr: errors.New("invalid token")}
	auth := &fakeAuth{token: "tok-1"}
	local := newFakeLocal()
	app := newTestApp(sess, auth, nil, local)

	require.Error(t, app.loginView(context.Background()))
	assert.NotContains(t, local.values, lastEmailKey, "email is only remembered after a full login")
}

func TestRegisterView(t *testing.T) {
	lines := captureOutput(t)
	stubInputs(t, "bob", "bob@example.org")
	stubPassword(t, "secret")

	sess := &fakeSession{}
	auth := &fakeAuth{}
	app := newTestApp(sess, auth, nil, nil)

	require.NoError(t, app.registerView(context.Background()))

	require.NotNil(t, auth.seenRegister)
	assert.Equal(t, "bob", auth.seenRegister.Username)
	assert.Equal(t, "bob@example.org", auth.seenRegister.Email)
	assert.Equal(t, "secret", auth.seenRegister.Password)
	_, loggedIn := sess.Identity()
	assert.False(t, loggedIn, "registration does not establish a session")
	assert.Contains(t, *lines, "Account created. Use 'login' to sign in.")
}

func TestRegisterView_ServerError(t *testing.T) {
	lines := captureOutput(t)
	stubInputs(t, "bob", "bob@example.org")
	stubPassword(t, "secret")

	auth := &fakeAuth{registerErr: errors.New("Email already registered")}
	app := newTestApp(nil, auth, nil, nil)

	require.Error(t, app.registerView(context.Background()))
	assert.Contains(t, *lines, "Email already registered")
}

func TestLogoutView(t *testing.T) {
	lines := captureOutput(t)

	sess := &fakeSession{identity: &models.User{ID: 1}}
	app := newTestApp(sess, nil, nil, nil)

	require.NoError(t, app.logoutView(context.Background()))

	assert.True(t, sess.loggedOut)
	_, loggedIn := sess.Identity()
	assert.False(t, loggedIn)
	assert.Contains(t, *lines, "Logged out.")
}
