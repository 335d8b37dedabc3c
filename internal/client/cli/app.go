package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/dmitrijs2005/examtrainer/internal/client/api"
	"github.com/dmitrijs2005/examtrainer/internal/client/config"
	"github.com/dmitrijs2005/examtrainer/internal/client/localdb"
	"github.com/dmitrijs2005/examtrainer/internal/client/models"
	"github.com/dmitrijs2005/examtrainer/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/examtrainer/internal/client/session"
	"github.com/dmitrijs2005/examtrainer/internal/logging"
)

// lastEmailKey is the metadata key the last successfully used login email is
// remembered under, as a prompt prefill.
const lastEmailKey = "email"

// sessionStore is the slice of session.Store the views depend on.
type sessionStore interface {
	Bootstrap(ctx context.Context) error
	Login(ctx context.Context, token string) error
	Logout(ctx context.Context) error
	Identity() (*models.User, bool)
	Resolving() bool
}

// authAPI, catalogAPI, questionsAPI, examsAPI and rankingAPI are the narrow
// facade surfaces the views consume; the api package types satisfy them.
type authAPI interface {
	Register(ctx context.Context, req models.RegisterRequest) error
	Login(ctx context.Context, req models.LoginRequest) (string, error)
}

type catalogAPI interface {
	Categories(ctx context.Context) ([]models.Category, error)
	Subjects(ctx context.Context) ([]models.Subject, error)
}

type questionsAPI interface {
	ListApproved(ctx context.Context, categoryID, subjectID int64) ([]models.Question, error)
	Recommend(ctx context.Context, req models.RecommendQuestionRequest) error
	Pending(ctx context.Context) ([]models.Question, error)
	UpdateStatus(ctx context.Context, id int64, status models.QuestionStatus) error
}

type examsAPI interface {
	Generate(ctx context.Context, req models.GenerateExamRequest) (*models.Exam, error)
	Submit(ctx context.Context, req models.SubmitExamRequest) (*models.Exam, error)
	Get(ctx context.Context, id int64) (*models.Exam, error)
	History(ctx context.Context) ([]models.Exam, error)
}

type rankingAPI interface {
	ByCategory(ctx context.Context, categoryID int64) ([]models.RankingEntry, error)
}

// App is the interactive examtrainer client: configuration, local storage,
// API facades, session store and the REPL that ties them together.
type App struct {
	config  *config.Config
	logger  logging.Logger
	session sessionStore
	local   metadata.Repository

	auth      authAPI
	catalog   catalogAPI
	questions questionsAPI
	exams     examsAPI
	ranking   rankingAPI

	reader *bufio.Reader
	db     *sql.DB
}

// NewApp wires the full client: local database, token store, API facades
// and session store.
func NewApp(ctx context.Context, cfg *config.Config, logger logging.Logger) (*App, error) {
	db, err := localdb.Open(ctx, cfg.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("open local database: %w", err)
	}

	repo := metadata.NewSQLiteRepository(db)
	tokens := session.NewTokenStore(repo)

	remote := api.New(cfg.APIBaseURL, tokens, api.WithTimeout(cfg.RequestTimeout))
	sess := session.NewStore(tokens, remote.Auth, logger)

	return &App{
		config:    cfg,
		logger:    logger,
		session:   sess,
		local:     repo,
		auth:      remote.Auth,
		catalog:   remote.Catalog,
		questions: remote.Questions,
		exams:     remote.Exams,
		ranking:   remote.Ranking,
		reader:    bufio.NewReader(os.Stdin),
		db:        db,
	}, nil
}

// Run restores the previous session and starts the REPL. Bootstrap must
// finish before the first command is dispatched; it is the only await the
// route guard depends on.
func (a *App) Run(ctx context.Context) error {
	defer a.Close()

	if err := a.session.Bootstrap(ctx); err != nil {
		return fmt.Errorf("restore session: %w", err)
	}
	if user, ok := a.session.Identity(); ok {
		a.logger.Info(ctx, "session restored", "user", user.Email, "role", user.Role)
	}

	printlnFn("examtrainer CLI (type 'help' for commands)")
	runREPL(ctx, a, a.getStatus, bufio.NewScanner(os.Stdin))
	return nil
}

// Close releases the local database handle.
func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

func (a *App) getStatus() string {
	user, ok := a.session.Identity()
	if !ok {
		return ""
	}
	s := user.Email
	if user.IsAdmin() {
		s += " admin"
	}
	return fmt.Sprintf("(%s)", s)
}
