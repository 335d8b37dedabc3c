package cli

import (
	"bufio"
	"context"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/examtrainer/internal/client/guard"
	"github.com/dmitrijs2005/examtrainer/internal/client/models"
)

// printlnFn is a test seam for user-facing output. In tests, replace it with a stub.
var printlnFn = fmt.Println

// route binds a REPL command to a view and the access it requires. Public
// routes (login, register) bypass the guard entirely; everything else is
// evaluated against the session state first.
type route struct {
	view   func(ctx context.Context) error
	role   models.Role // "" admits any authenticated user
	public bool
}

func (a *App) routes() map[string]route {
	return map[string]route{
		"register":   {view: a.registerView, public: true},
		"login":      {view: a.loginView, public: true},
		"categories": {view: a.categoriesView},
		"subjects":   {view: a.subjectsView},
		"questions":  {view: a.questionsView},
		"recommend":  {view: a.recommendView},
		"generate":   {view: a.generateExamView},
		"result":     {view: a.resultView},
		"history":    {view: a.historyView},
		"ranking":    {view: a.rankingView},
		"profile":    {view: a.profileView},
		"pending":    {view: a.pendingQuestionsView, role: models.RoleAdmin},
		"logout":     {view: a.logoutView},
	}
}

// dispatch runs one route through the guard. A command issued while signed
// out lands on the login view; an admin command issued by a regular user
// silently falls back to the default landing view (categories).
func (a *App) dispatch(ctx context.Context, r route) error {
	if r.public {
		return r.view(ctx)
	}

	identity, _ := a.session.Identity()
	switch guard.Evaluate(identity, a.session.Resolving(), r.role) {
	case guard.DecisionLoading:
		printlnFn("Loading...")
		return nil
	case guard.DecisionLogin:
		printlnFn("Please sign in first.")
		return a.loginView(ctx)
	case guard.DecisionHome:
		return a.categoriesView(ctx)
	default:
		return r.view(ctx)
	}
}

// replApp is the minimal surface the REPL needs to operate. The real App
// type satisfies this interface; tests can provide a lightweight stub.
type replApp interface {
	routes() map[string]route
	dispatch(ctx context.Context, r route) error
	isLoggedIn() bool
	isAdmin() bool
}

func (a *App) isLoggedIn() bool {
	_, ok := a.session.Identity()
	return ok
}

func (a *App) isAdmin() bool {
	user, _ := a.session.Identity()
	return user.IsAdmin()
}

// runREPL starts a simple read-eval-print loop.
//
// It reads a line from the provided scanner, parses the first token as the
// command, and dispatches through the app's route table. Unknown commands
// are reported back to the user. The loop exits on scanner EOF or when the
// user types "exit" or "quit".
//
// Any errors returned by views are ignored here; views report their own
// errors. This keeps the REPL loop resilient and focused on I/O.
func runREPL(ctx context.Context, a replApp, statusFn func() string, scanner *bufio.Scanner) {
	routes := a.routes()

	for {
		printlnFn(fmt.Sprintf("et> %s ", statusFn()))
		if !scanner.Scan() {
			return
		}
		line := scanner.Text()
		parts := strings.Fields(line)
		if len(parts) == 0 {
			continue
		}
		cmd := parts[0]

		switch cmd {
		case "help":
			printHelp(a)

		case "exit", "quit":
			printlnFn("Bye!")
			return

		default:
			r, ok := routes[cmd]
			if !ok {
				printlnFn("Unknown command:", cmd)
				continue
			}
			_ = a.dispatch(ctx, r)
		}
	}
}

func printHelp(a replApp) {
	if !a.isLoggedIn() {
		printlnFn("Available commands: register, login, exit")
		return
	}
	cmds := "categories, subjects, questions, recommend, generate, result, history, ranking, profile, logout, exit"
	if a.isAdmin() {
		cmds = "pending, " + cmds
	}
	printlnFn("Available commands: " + cmds)
}
