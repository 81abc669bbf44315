package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/Bourichi-Taha/Everlasting-client/internal/model"
	"github.com/gomodule/redigo/redis"
)

const (
	eventsKey     = "events:all"
	generationKey = "events:gen"
)

// EventsCache keeps the full event list as one JSON value. Every Invalidate
// bumps a generation counter; a list loaded from the database is stored only
// if the generation read before loading it is still current.
type EventsCache struct {
	pool *redis.Pool
	ttl  time.Duration
}

func NewEventsCache(pool *redis.Pool, ttl time.Duration) *EventsCache {
	return &EventsCache{pool: pool, ttl: ttl}
}

func (c *EventsCache) GetEvents(ctx context.Context) ([]*model.Event, error) {
	conn, err := c.pool.GetContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("get conn: %w", err)
	}
	defer conn.Close()

	data, err := redis.Bytes(conn.Do("GET", eventsKey))
	if err != nil {
		if errors.Is(err, redis.ErrNil) {
			return nil, model.ErrNoRecord
		}
		return nil, fmt.Errorf("GET: %w", err)
	}

	var events []*model.Event
	if err := json.Unmarshal(data, &events); err != nil {
		return nil, fmt.Errorf("decode events: %w", err)
	}

	return events, nil
}

// Generation returns the current invalidation counter. Read it before loading
// the list that will be passed to SetEvents.
func (c *EventsCache) Generation(ctx context.Context) (int64, error) {
	conn, err := c.pool.GetContext(ctx)
	if err != nil {
		return 0, fmt.Errorf("get conn: %w", err)
	}
	defer conn.Close()

	gen, err := redis.Int64(conn.Do("GET", generationKey))
	if err != nil && !errors.Is(err, redis.ErrNil) {
		return 0, fmt.Errorf("GET: %w", err)
	}

	return gen, nil
}

// SetEvents stores events loaded at generation gen. It reports false and
// stores nothing when the cache was invalidated in the meantime.
func (c *EventsCache) SetEvents(ctx context.Context, gen int64, events []*model.Event) (bool, error) {
	data, err := json.Marshal(events)
	if err != nil {
		return false, fmt.Errorf("encode events: %w", err)
	}

	conn, err := c.pool.GetContext(ctx)
	if err != nil {
		return false, fmt.Errorf("get conn: %w", err)
	}
	defer conn.Close()

	if _, err := conn.Do("WATCH", generationKey); err != nil {
		return false, fmt.Errorf("WATCH: %w", err)
	}

	current, err := redis.Int64(conn.Do("GET", generationKey))
	if err != nil && !errors.Is(err, redis.ErrNil) {
		return false, fmt.Errorf("GET: %w", err)
	}
	if current != gen {
		return false, nil
	}

	if err := conn.Send("MULTI"); err != nil {
		return false, fmt.Errorf("MULTI: %w", err)
	}
	if err := conn.Send("SET", eventsKey, data, "PX", c.ttl.Milliseconds()); err != nil {
		return false, fmt.Errorf("SET: %w", err)
	}

	// EXEC replies nil when the watched generation changed after WATCH.
	reply, err := conn.Do("EXEC")
	if err != nil {
		return false, fmt.Errorf("EXEC: %w", err)
	}

	return reply != nil, nil
}

func (c *EventsCache) Invalidate(ctx context.Context) error {
	conn, err := c.pool.GetContext(ctx)
	if err != nil {
		return fmt.Errorf("get conn: %w", err)
	}
	defer conn.Close()

	if _, err := conn.Do("INCR", generationKey); err != nil {
		return fmt.Errorf("INCR: %w", err)
	}
	if _, err := conn.Do("DEL", eventsKey); err != nil {
		return fmt.Errorf("DEL: %w", err)
	}

	return nil
}
