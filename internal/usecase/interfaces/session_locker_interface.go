package interfaces

import (
	"context"
	"errors"
)

var (
	// ErrLockHeld is returned by Acquire when another writer holds the session.
	ErrLockHeld = errors.New("session lock held")
	// ErrLockLost is returned by ISessionLease.Check once the lease expired or
	// was taken over by another writer.
	ErrLockLost = errors.New("session lock lost")
)

// ISessionLocker serializes writes to a single session across instances.
type ISessionLocker interface {
	Acquire(ctx context.Context, sessionID string) (ISessionLease, error)
}

// ISessionLease is a held session lock. Implementations keep it alive until
// Release is called.
type ISessionLease interface {
	Check(ctx context.Context) error
	Release(ctx context.Context) error
}
