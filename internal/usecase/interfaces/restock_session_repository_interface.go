package interfaces

import (
	"context"
	"errors"
	"restock_service/internal/domain/entities"
	"time"
)

// ErrStaleSession is returned by Update when the stored session changed since
// the caller loaded it.
var ErrStaleSession = errors.New("stale restock session")

// IRestockSessionRepository abstracts persistence for restock sessions.
//
// Not-found reads return a zero Session (ID() == "") and a nil error.
// The repository is the authority for ids: Create ignores the placeholder id
// of the given session and returns it with the assigned one.
// Update only writes while the stored updated_at equals expectedUpdatedAt
// (nil for a session that was never updated).

type IRestockSessionRepository interface {
	Create(ctx context.Context, s entities.Session) (entities.Session, error)
	GetByID(ctx context.Context, id string) (entities.Session, error)
	ListByUserID(ctx context.Context, userID string) ([]entities.Session, error)
	Update(ctx context.Context, s entities.Session, expectedUpdatedAt *time.Time) (entities.Session, error)
	Delete(ctx context.Context, id string) (bool, error)
}
