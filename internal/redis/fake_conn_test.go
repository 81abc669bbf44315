package redis

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/gomodule/redigo/redis"
)

// memStore is the shared state behind memConn. beforeExec, when set, runs
// once right before the next EXEC is applied.
type memStore struct {
	mu         sync.Mutex
	data       map[string][]byte
	versions   map[string]int
	beforeExec func()
}

// memConn is an in-memory redis.Conn covering the commands used here.
type memConn struct {
	store   *memStore
	watched map[string]int
	multi   bool
	queued  [][]interface{}
}

func newMemPool() (*redis.Pool, *memStore) {
	store := &memStore{
		data:     map[string][]byte{},
		versions: map[string]int{},
	}
	return &redis.Pool{
		Dial: func() (redis.Conn, error) {
			return &memConn{store: store}, nil
		},
	}, store
}

func (c *memConn) Close() error { return nil }
func (c *memConn) Err() error   { return nil }
func (c *memConn) Flush() error { return nil }

func (c *memConn) Send(cmd string, args ...interface{}) error {
	switch strings.ToUpper(cmd) {
	case "MULTI":
		c.multi = true
	case "DISCARD":
		c.multi = false
		c.queued = nil
	case "UNWATCH":
		c.watched = nil
	default:
		if !c.multi {
			return errors.New("send outside MULTI not supported")
		}
		c.queued = append(c.queued, append([]interface{}{cmd}, args...))
	}
	return nil
}

func (c *memConn) Receive() (interface{}, error) {
	return nil, errors.New("not supported")
}

func (c *memConn) Do(cmd string, args ...interface{}) (interface{}, error) {
	switch strings.ToUpper(cmd) {
	case "":
		return nil, nil
	case "WATCH":
		c.store.mu.Lock()
		defer c.store.mu.Unlock()
		if c.watched == nil {
			c.watched = map[string]int{}
		}
		for _, a := range args {
			key := fmt.Sprint(a)
			c.watched[key] = c.store.versions[key]
		}
		return "OK", nil
	case "UNWATCH":
		c.watched = nil
		return "OK", nil
	case "EXEC":
		return c.exec()
	}

	c.store.mu.Lock()
	defer c.store.mu.Unlock()
	return c.store.apply(cmd, args)
}

func (c *memConn) exec() (interface{}, error) {
	if hook := c.store.beforeExec; hook != nil {
		c.store.beforeExec = nil
		hook()
	}

	c.store.mu.Lock()
	defer c.store.mu.Unlock()

	queued, watched := c.queued, c.watched
	c.queued, c.watched, c.multi = nil, nil, false

	for key, version := range watched {
		if c.store.versions[key] != version {
			return nil, nil
		}
	}

	replies := make([]interface{}, 0, len(queued))
	for _, q := range queued {
		reply, err := c.store.apply(fmt.Sprint(q[0]), q[1:])
		if err != nil {
			return nil, err
		}
		replies = append(replies, reply)
	}
	return replies, nil
}

// apply runs one command. The caller holds s.mu.
func (s *memStore) apply(cmd string, args []interface{}) (interface{}, error) {
	switch strings.ToUpper(cmd) {
	case "GET":
		v, ok := s.data[fmt.Sprint(args[0])]
		if !ok {
			return nil, nil
		}
		return v, nil
	case "SET":
		key := fmt.Sprint(args[0])
		for _, a := range args[2:] {
			if a == "NX" {
				if _, ok := s.data[key]; ok {
					return nil, nil
				}
			}
		}
		switch v := args[1].(type) {
		case []byte:
			s.data[key] = v
		default:
			s.data[key] = []byte(fmt.Sprint(v))
		}
		s.versions[key]++
		return "OK", nil
	case "DEL":
		key := fmt.Sprint(args[0])
		if _, ok := s.data[key]; !ok {
			return int64(0), nil
		}
		delete(s.data, key)
		s.versions[key]++
		return int64(1), nil
	case "INCR":
		key := fmt.Sprint(args[0])
		var n int64
		if v, ok := s.data[key]; ok {
			parsed, err := strconv.ParseInt(string(v), 10, 64)
			if err != nil {
				return nil, errors.New("ERR value is not an integer")
			}
			n = parsed
		}
		n++
		s.data[key] = []byte(strconv.FormatInt(n, 10))
		s.versions[key]++
		return n, nil
	default:
		return nil, fmt.Errorf("unknown command %s", cmd)
	}
}
