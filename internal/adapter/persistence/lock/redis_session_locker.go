package lock

import (
	"context"
	"errors"
	"log"
	"sync"
	"sync/atomic"
	"time"

	"restock_service/internal/usecase/interfaces"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	sessionLockKeyPrefix  = "restock:session-lock:"
	DefaultSessionLockTTL = 10 * time.Second
)

// releaseLockScript deletes the key only while it still holds our token, so
// a lock that expired and was re-acquired by another writer is left alone.
var releaseLockScript = redis.NewScript(`
if redis.call('GET', KEYS[1]) == ARGV[1] then
	return redis.call('DEL', KEYS[1])
end
return 0
`)

// extendLockScript pushes the expiry of a lock we still own. It returns 0
// when the key is gone or belongs to someone else.
var extendLockScript = redis.NewScript(`
if redis.call('GET', KEYS[1]) == ARGV[1] then
	return redis.call('PEXPIRE', KEYS[1], ARGV[2])
end
return 0
`)

// RedisSessionLocker implements a per-session write lock with SET NX + TTL.
// A held lock is extended every ttl/3 until it is released, so the TTL only
// bounds how long a crashed holder blocks the session.
type RedisSessionLocker struct {
	client *redis.Client
	ttl    time.Duration
}

var _ interfaces.ISessionLocker = (*RedisSessionLocker)(nil)

func NewRedisSessionLocker(client *redis.Client, ttl time.Duration) *RedisSessionLocker {
	if ttl <= 0 {
		ttl = DefaultSessionLockTTL
	}
	return &RedisSessionLocker{client: client, ttl: ttl}
}

func (l *RedisSessionLocker) Acquire(ctx context.Context, sessionID string) (interfaces.ISessionLease, error) {
	key := sessionLockKeyPrefix + sessionID
	token := uuid.NewString()

	ok, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, interfaces.ErrLockHeld
	}

	lease := &redisSessionLease{
		client: l.client,
		key:    key,
		token:  token,
		ttl:    l.ttl,
		stop:   make(chan struct{}),
		done:   make(chan struct{}),
	}
	go lease.keepAlive()
	return lease, nil
}

type redisSessionLease struct {
	client *redis.Client
	key    string
	token  string
	ttl    time.Duration

	stop     chan struct{}
	done     chan struct{}
	stopOnce sync.Once
	lost     atomic.Bool
}

func (l *redisSessionLease) keepAlive() {
	defer close(l.done)

	interval := l.ttl / 3
	if interval <= 0 {
		interval = l.ttl
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-l.stop:
			return
		case <-ticker.C:
			ctx, cancel := context.WithTimeout(context.Background(), interval)
			err := l.extend(ctx)
			cancel()
			if errors.Is(err, interfaces.ErrLockLost) {
				log.Printf("[lock] lease lost key=%s", l.key)
				return
			}
			if err != nil {
				log.Printf("[lock] extend failed key=%s err=%v", l.key, err)
			}
		}
	}
}

func (l *redisSessionLease) extend(ctx context.Context) error {
	n, err := extendLockScript.Run(ctx, l.client, []string{l.key}, l.token, l.ttl.Milliseconds()).Int()
	if err != nil {
		return err
	}
	if n == 0 {
		l.lost.Store(true)
		return interfaces.ErrLockLost
	}
	return nil
}

// Check confirms the lock is still ours and pushes its expiry.
func (l *redisSessionLease) Check(ctx context.Context) error {
	if l.lost.Load() {
		return interfaces.ErrLockLost
	}
	return l.extend(ctx)
}

func (l *redisSessionLease) Release(ctx context.Context) error {
	l.stopOnce.Do(func() { close(l.stop) })
	<-l.done
	return releaseLockScript.Run(ctx, l.client, []string{l.key}, l.token).Err()
}
