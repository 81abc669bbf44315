package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Bourichi-Taha/Everlasting-client/internal/model"
	"github.com/gomodule/redigo/redis"
	"go.uber.org/zap"
)

const sessionPrefix = "session:"

// RefreshTokenRepository maps refresh tokens to user IDs. Expiry is left to
// Redis.
type RefreshTokenRepository struct {
	pool   *redis.Pool
	ttl    time.Duration
	logger *zap.SugaredLogger
}

func NewRefreshTokenRepository(pool *redis.Pool, ttl time.Duration, logger *zap.SugaredLogger) *RefreshTokenRepository {
	return &RefreshTokenRepository{pool: pool, ttl: ttl, logger: logger}
}

func (r *RefreshTokenRepository) Add(ctx context.Context, session string, id int64) error {
	conn, err := r.pool.GetContext(ctx)
	if err != nil {
		return fmt.Errorf("get conn: %w", err)
	}
	defer conn.Close()

	reply, err := conn.Do("SET", sessionPrefix+session, id, "PX", r.ttl.Milliseconds(), "NX")
	if err != nil {
		return fmt.Errorf("SET: %w", err)
	}
	if reply == nil {
		return model.ErrAlreadyExists
	}

	return nil
}

func (r *RefreshTokenRepository) Get(ctx context.Context, session string) (int64, error) {
	conn, err := r.pool.GetContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("get conn: %w", err)
	}
	defer conn.Close()

	id, err := redis.Int64(conn.Do("GET", sessionPrefix+session))
	if err != nil {
		if errors.Is(err, redis.ErrNil) {
			return 0, model.ErrNoRecord
		}
		return 0, fmt.Errorf("GET: %w", err)
	}

	return id, nil
}

// Refresh moves the session to a new token. The old token stops working.
func (r *RefreshTokenRepository) Refresh(ctx context.Context, old, new string) error {
	id, err := r.Get(ctx, old)
	if err != nil {
		return err
	}

	if err := r.Add(ctx, new, id); err != nil {
		return err
	}

	if err := r.Delete(ctx, old); err != nil && !errors.Is(err, model.ErrNoRecord) {
		r.logger.Errorw("failed to delete rotated session", "err", err)
	}

	return nil
}

func (r *RefreshTokenRepository) Delete(ctx context.Context, session string) error {
	conn, err := r.pool.GetContext(ctx)
	if err != nil {
		return fmt.Errorf("get conn: %w", err)
	}
	defer conn.Close()

	n, err := redis.Int(conn.Do("DEL", sessionPrefix+session))
	if err != nil {
		return fmt.Errorf("DEL: %w", err)
	}
	if n == 0 {
		return model.ErrNoRecord
	}

	return nil
}
