package session

import (
	"context"

	"github.com/dmitrijs2005/examtrainer/internal/client/repositories/metadata"
)

// tokenKey is the fixed key the credential token is persisted under.
const tokenKey = "token"

// TokenStore holds the credential token: the current value in memory for
// synchronous reads by the API client, plus a persisted copy in the local
// metadata repository so the session survives restarts.
//
// Writes update memory together with the persistence call, so a read that
// follows Clear or Save never observes a stale token. Like the rest of the
// session layer it is meant for single-goroutine use from the UI loop.
type TokenStore struct {
	repo    metadata.Repository
	current string
}

func NewTokenStore(repo metadata.Repository) *TokenStore {
	return &TokenStore{repo: repo}
}

// Load reads the persisted token into memory. An absent key loads as an
// empty token.
func (s *TokenStore) Load(ctx context.Context) error {
	value, err := s.repo.Get(ctx, tokenKey)
	if err != nil {
		return err
	}
	s.current = string(value)
	return nil
}

// Token returns the current token; empty means "not authenticated".
// Implements api.TokenSource.
func (s *TokenStore) Token() string {
	return s.current
}

// Save persists the token and makes it the current one.
func (s *TokenStore) Save(ctx context.Context, token string) error {
	if err := s.repo.Set(ctx, tokenKey, []byte(token)); err != nil {
		return err
	}
	s.current = token
	return nil
}

// Clear drops the token from memory first, then from the repository, so no
// request issued afterwards can pick it up even if the delete fails.
func (s *TokenStore) Clear(ctx context.Context) error {
	s.current = ""
	return s.repo.Delete(ctx, tokenKey)
}
