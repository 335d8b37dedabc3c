// Package session owns "who is logged in": the persisted credential token
// and the identity resolved from it. All mutation funnels through
// Bootstrap, Login and Logout; everything else only reads.
//
// The store is single-writer by contract: it is driven from the UI loop and
// takes no locks. The one ordering rule consumers must respect is that
// route decisions are only trustworthy once Bootstrap has returned, i.e.
// once Resolving reports false.
package session

import (
	"context"

	"github.com/dmitrijs2005/examtrainer/internal/client/models"
	"github.com/dmitrijs2005/examtrainer/internal/logging"
)

// WhoAmI resolves the identity behind the current credential token.
// Satisfied by api.Auth.
type WhoAmI interface {
	Me(ctx context.Context) (*models.User, error)
}

// Store is the authoritative holder of the current session.
type Store struct {
	tokens *TokenStore
	auth   WhoAmI
	logger logging.Logger

	identity     *models.User
	resolving    bool
	bootstrapped bool
}

// NewStore builds a Store. The store starts in the resolving state and
// stays there until Bootstrap completes.
func NewStore(tokens *TokenStore, auth WhoAmI, logger logging.Logger) *Store {
	return &Store{tokens: tokens, auth: auth, logger: logger, resolving: true}
}

// Bootstrap restores the session persisted by a previous run. With no
// stored token it finishes immediately without touching the network. With
// one, it asks the server who the token belongs to; a rejected token is
// discarded rather than reported, since "token no longer valid" is not a
// user-actionable error. Runs once; later calls are no-ops.
func (s *Store) Bootstrap(ctx context.Context) error {
	if s.bootstrapped {
		return nil
	}
	s.bootstrapped = true
	defer func() { s.resolving = false }()

	if err := s.tokens.Load(ctx); err != nil {
		return err
	}
	if s.tokens.Token() == "" {
		return nil
	}

	user, err := s.auth.Me(ctx)
	if err != nil {
		s.logger.Warn(ctx, "stored token no longer valid, clearing it", "error", err)
		return s.tokens.Clear(ctx)
	}

	s.identity = user
	return nil
}

// Login persists the token, then resolves the identity behind it. If the
// identity cannot be resolved the freshly persisted token is useless, so it
// is cleared again before the error is propagated.
func (s *Store) Login(ctx context.Context, token string) error {
	if err := s.tokens.Save(ctx, token); err != nil {
		return err
	}

	user, err := s.auth.Me(ctx)
	if err != nil {
		if clearErr := s.tokens.Clear(ctx); clearErr != nil {
			s.logger.Error(ctx, "failed to clear rejected token", "error", clearErr)
		}
		return err
	}

	s.identity = user
	return nil
}

// Logout clears the persisted token and the identity. No network call.
func (s *Store) Logout(ctx context.Context) error {
	s.identity = nil
	return s.tokens.Clear(ctx)
}

// Identity returns the resolved user, if any.
func (s *Store) Identity() (*models.User, bool) {
	return s.identity, s.identity != nil
}

// Resolving reports whether the bootstrap identity resolution is still in
// progress. Until it returns false, absence of an identity means "unknown",
// not "signed out".
func (s *Store) Resolving() bool {
	return s.resolving
}
