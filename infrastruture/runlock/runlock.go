// Package runlock ensures at most one quizmaster search runs at a time
// across every repmazed instance sharing a Redis deployment, grounded on
// the redsync-backed queue lock in the teacher's matcher_maker package.
package runlock

import (
	"errors"
	"time"

	"github.com/go-redsync/redsync/v4"
	"github.com/go-redsync/redsync/v4/redis/goredis/v9"
	"github.com/redis/go-redis/v9"
)

const (
	lockKey     = "repmaze:runlock"
	lockTTL     = 30 * time.Second
	extendEvery = 10 * time.Second
)

// ErrAlreadyRunning is returned when a search is already holding the lock.
var ErrAlreadyRunning = errors.New("a search is already running")

// Lock is a distributed mutex serializing quizmaster searches.
type Lock struct {
	rs *redsync.Redsync
}

// New builds a Lock backed by client.
func New(client *redis.Client) *Lock {
	pool := goredis.NewPool(client)
	return &Lock{rs: redsync.New(pool)}
}

// Held is an acquired lock; call Release when the search finishes.
type Held struct {
	mutex *redsync.Mutex
	stop  chan struct{}
}

// Acquire takes the run lock, failing immediately with ErrAlreadyRunning if
// another instance already holds it. A background goroutine extends the
// lock's TTL periodically until Release is called, so a long search is not
// preempted by its own lock expiring.
func (l *Lock) Acquire() (*Held, error) {
	mutex := l.rs.NewMutex(lockKey, redsync.WithExpiry(lockTTL), redsync.WithTries(1))
	if err := mutex.Lock(); err != nil {
		return nil, ErrAlreadyRunning
	}

	h := &Held{mutex: mutex, stop: make(chan struct{})}
	go h.extendLoop()
	return h, nil
}

func (h *Held) extendLoop() {
	ticker := time.NewTicker(extendEvery)
	defer ticker.Stop()
	for {
		select {
		case <-h.stop:
			return
		case <-ticker.C:
			h.mutex.Extend()
		}
	}
}

// Release gives up the lock.
func (h *Held) Release() error {
	close(h.stop)
	ok, err := h.mutex.Unlock()
	if err != nil {
		return err
	}
	if !ok {
		return errors.New("run lock was already released or expired")
	}
	return nil
}
