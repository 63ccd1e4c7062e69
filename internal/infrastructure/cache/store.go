package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/johnquangdev/lecture-quiz/pkg/config"
)

// Store is a byte-valued key-value store with per-key expiration
type Store interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, value []byte, expiration time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// NewQuestionStore builds the question cache selected by CACHE_BACKEND.
// It returns nil for "none".
func NewQuestionStore(ctx context.Context, cfg *config.Config) (Store, error) {
	switch cfg.Cache.Backend {
	case "none", "":
		return nil, nil
	case "memory":
		return NewMemoryStore(0), nil
	case "redis":
		rs, err := NewRedisStore(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return rs, nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q", cfg.Cache.Backend)
	}
}
