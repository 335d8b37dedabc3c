package cli

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/dmitrijs2005/examtrainer/internal/client/models"
	"github.com/dmitrijs2005/examtrainer/internal/logging"
)

// captureOutput redirects printlnFn into a slice for assertions.
func captureOutput(t *testing.T) *[]string {
	t.Helper()

	old := printlnFn
	var lines []string
	printlnFn = func(a ...any) (int, error) {
		lines = append(lines, strings.TrimRight(fmt.Sprintln(a...), "\n"))
		return 0, nil
	}
	t.Cleanup(func() { printlnFn = old })
	return &lines
}

// stubInputs replaces the interactive text seam with a fixed answer queue.
func stubInputs(t *testing.T, answers ...string) {
	t.Helper()

	old := getSimpleText
	getSimpleText = func(_ *bufio.Reader, _ string, _ io.Writer) (string, error) {
		if len(answers) == 0 {
			return "", io.EOF
		}
		answer := answers[0]
		answers = answers[1:]
		return answer, nil
	}
	t.Cleanup(func() { getSimpleText = old })
}

// stubPassword replaces the password seam with a fixed value.
func stubPassword(t *testing.T, password string) {
	t.Helper()

	old := getPassword
	getPassword = func(io.Writer) ([]byte, error) {
		return []byte(password), nil
	}
	t.Cleanup(func() { getPassword = old })
}

type fakeSession struct {
	identity  *models.User
	resolving bool

	onLogin   *models.User // identity established by a successful Login
	loginErr  error
	seenToken string
	loggedOut bool
}

func (f *fakeSession) Bootstrap(context.Context) error { return nil }

func (f *fakeSession) Login(_ context.Context, token string) error {
	f.seenToken = token
	if f.loginErr != nil {
		return f.loginErr
	}
	f.identity = f.onLogin
	return nil
}

func (f *fakeSession) Logout(context.Context) error {
	f.identity = nil
	f.loggedOut = true
	return nil
}

func (f *fakeSession) Identity() (*models.User, bool) {
	return f.identity, f.identity != nil
}

func (f *fakeSession) Resolving() bool { return f.resolving }

type fakeAuth struct {
	token       string
	loginErr    error
	registerErr error

	seenLogin    *models.LoginRequest
	seenRegister *models.RegisterRequest
}

func (f *fakeAuth) Register(_ context.Context, req models.RegisterRequest) error {
	f.seenRegister = &req
	return f.registerErr
}

func (f *fakeAuth) Login(_ context.Context, req models.LoginRequest) (string, error) {
	f.seenLogin = &req
	if f.loginErr != nil {
		return "", f.loginErr
	}
	return f.token, nil
}

type fakeCatalog struct {
	categories []models.Category
	subjects   []models.Subject
	calls      int
}

func (f *fakeCatalog) Categories(context.Context) ([]models.Category, error) {
	f.calls++
	return f.categories, nil
}

func (f *fakeCatalog) Subjects(context.Context) ([]models.Subject, error) {
	return f.subjects, nil
}

type fakeLocal struct {
	values map[string][]byte
}

func newFakeLocal() *fakeLocal {
	return &fakeLocal{values: map[string][]byte{}}
}

func (f *fakeLocal) Get(_ context.Context, key string) ([]byte, error) {
	return f.values[key], nil
}

func (f *fakeLocal) Set(_ context.Context, key string, value []byte) error {
	f.values[key] = append([]byte(nil), value...)
	return nil
}

func (f *fakeLocal) Delete(_ context.Context, key string) error {
	delete(f.values, key)
	return nil
}

// newTestApp builds an App around fakes; pass nil for pieces a test does
// not exercise.
func newTestApp(sess *fakeSession, auth *fakeAuth, catalog *fakeCatalog, local *fakeLocal) *App {
	if sess == nil {
		sess = &fakeSession{}
	}
	if local == nil {
		local = newFakeLocal()
	}
	return &App{
		logger:  logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		session: sess,
		local:   local,
		auth:    auth,
		catalog: catalog,
		reader:  bufio.NewReader(bytes.NewReader(nil)),
	}
}
