package metadata

import (
	"context"
)

// Repository is a small key/value store for client-local state, such as the
// persisted credential token.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
}
