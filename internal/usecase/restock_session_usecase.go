package usecase

import (
	"context"
	"errors"
	"log"
	"restock_service/internal/domain/entities"
	"restock_service/internal/usecase/interfaces"
	"slices"
	"strings"
	"time"
)

var (
	ErrSessionNotFound         = errors.New("restock session not found")
	ErrInvalidSessionID        = errors.New("invalid session id")
	ErrInvalidUserID           = errors.New("invalid user_id")
	ErrInvalidProductID        = errors.New("invalid product_id")
	ErrSessionNotEditable      = errors.New("restock session is not editable")
	ErrSessionBusy             = errors.New("restock session is busy")
	ErrSessionConflict         = errors.New("restock session was modified concurrently")
	ErrEmailSenderNotSet       = errors.New("email sender not configured")
	ErrSessionRepositoryNotSet = errors.New("session repository not configured")
)

// IRestockSessionUseCase exposes the restock session flows of the app:
// start a session, fill it with items, generate one email per supplier and
// send them.

type IRestockSessionUseCase interface {
	StartSession(ctx context.Context, userID, name string) (entities.Session, error)
	GetSession(ctx context.Context, id string) (entities.Session, error)
	ListSessions(ctx context.Context, userID string) ([]entities.Session, error)
	AddItem(ctx context.Context, id string, item entities.SessionItem) (entities.Session, error)
	UpdateItem(ctx context.Context, id, productID string, patch entities.ItemPatch) (entities.Session, error)
	RemoveItem(ctx context.Context, id, productID string) (entities.Session, error)
	RenameSession(ctx context.Context, id, name string) (entities.Session, error)
	GenerateEmails(ctx context.Context, id string) (entities.Session, []entities.SupplierEmail, error)
	SendEmails(ctx context.Context, id string) (entities.Session, []entities.SupplierEmail, error)
	DeleteSession(ctx context.Context, id string) error
}

type RestockSessionUseCase struct {
	repo      interfaces.IRestockSessionRepository
	sender    interfaces.IEmailSender
	locker    interfaces.ISessionLocker
	storeName string
}

var _ IRestockSessionUseCase = (*RestockSessionUseCase)(nil)

// NewRestockSessionUseCase wires the use case. sender and locker may be nil:
// without a sender SendEmails fails, without a locker writes run unlocked.
func NewRestockSessionUseCase(
	repo interfaces.IRestockSessionRepository,
	sender interfaces.IEmailSender,
	locker interfaces.ISessionLocker,
	storeName string,
) *RestockSessionUseCase {
	return &RestockSessionUseCase{repo: repo, sender: sender, locker: locker, storeName: storeName}
}

func (u *RestockSessionUseCase) StartSession(ctx context.Context, userID, name string) (entities.Session, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return entities.Session{}, ErrInvalidUserID
	}
	if u.repo == nil {
		return entities.Session{}, ErrSessionRepositoryNotSet
	}

	s, err := entities.NewSession(entities.PlaceholderSessionID, userID, name, time.Now().UTC())
	if err != nil {
		return entities.Session{}, err
	}

	created, err := u.repo.Create(ctx, s)
	if err != nil {
		log.Printf("[session][usecase] create failed user_id=%s err=%v", userID, err)
		return entities.Session{}, err
	}
	log.Printf("[session][usecase] session started id=%s user_id=%s", created.ID(), userID)
	return created, nil
}

func (u *RestockSessionUseCase) GetSession(ctx context.Context, id string) (entities.Session, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Session{}, ErrInvalidSessionID
	}
	return u.load(ctx, id)
}

// ListSessions returns the user's sessions, newest first.
func (u *RestockSessionUseCase) ListSessions(ctx context.Context, userID string) ([]entities.Session, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidUserID
	}
	if u.repo == nil {
		return nil, ErrSessionRepositoryNotSet
	}

	sessions, err := u.repo.ListByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	slices.SortStableFunc(sessions, func(a, b entities.Session) int {
		return b.CreatedAt().Compare(a.CreatedAt())
	})
	return sessions, nil
}

func (u *RestockSessionUseCase) AddItem(ctx context.Context, id string, item entities.SessionItem) (entities.Session, error) {
	item = normalizeItem(item)
	if item.ProductID == "" {
		return entities.Session{}, ErrInvalidProductID
	}

	return u.mutate(ctx, id, "add-item", func(s entities.Session, _ func() error) (entities.Session, error) {
		if !s.CanAddItems() {
			return entities.Session{}, ErrSessionNotEditable
		}
		return s.AddItem(item)
	})
}

func (u *RestockSessionUseCase) UpdateItem(ctx context.Context, id, productID string, patch entities.ItemPatch) (entities.Session, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return entities.Session{}, ErrInvalidProductID
	}

	return u.mutate(ctx, id, "update-item", func(s entities.Session, _ func() error) (entities.Session, error) {
		if !s.CanAddItems() {
			return entities.Session{}, ErrSessionNotEditable
		}
		return s.UpdateItem(productID, patch)
	})
}

func (u *RestockSessionUseCase) RemoveItem(ctx context.Context, id, productID string) (entities.Session, error) {
	productID = strings.TrimSpace(productID)
	if productID == "" {
		return entities.Session{}, ErrInvalidProductID
	}

	return u.mutate(ctx, id, "remove-item", func(s entities.Session, _ func() error) (entities.Session, error) {
		if !s.CanAddItems() {
			return entities.Session{}, ErrSessionNotEditable
		}
		return s.RemoveItem(productID), nil
	})
}

func (u *RestockSessionUseCase) RenameSession(ctx context.Context, id, name string) (entities.Session, error) {
	return u.mutate(ctx, id, "rename", func(s entities.Session, _ func() error) (entities.Session, error) {
		return s.SetName(name)
	})
}

// GenerateEmails moves a draft to email_generated and returns the composed
// supplier emails. Nothing is persisted if composing fails.
func (u *RestockSessionUseCase) GenerateEmails(ctx context.Context, id string) (entities.Session, []entities.SupplierEmail, error) {
	var emails []entities.SupplierEmail
	updated, err := u.mutate(ctx, id, "generate-emails", func(s entities.Session, _ func() error) (entities.Session, error) {
		next, err := s.GenerateEmails()
		if err != nil {
			return entities.Session{}, err
		}
		emails, err = ComposeSupplierEmails(next, u.storeName)
		if err != nil {
			return entities.Session{}, err
		}
		return next, nil
	})
	if err != nil {
		return entities.Session{}, nil, err
	}
	return updated, emails, nil
}

// SendEmails delivers every supplier email of an email_generated session and
// then marks it sent. When a send fails the session stays email_generated, so
// a retry sends all emails again. The session lock is checked before every
// send; once it is lost no further email goes out.
func (u *RestockSessionUseCase) SendEmails(ctx context.Context, id string) (entities.Session, []entities.SupplierEmail, error) {
	var emails []entities.SupplierEmail
	updated, err := u.mutate(ctx, id, "send-emails", func(s entities.Session, held func() error) (entities.Session, error) {
		sent, err := s.MarkAsSent()
		if err != nil {
			return entities.Session{}, err
		}
		if u.sender == nil {
			return entities.Session{}, ErrEmailSenderNotSet
		}

		emails, err = ComposeSupplierEmails(s, u.storeName)
		if err != nil {
			return entities.Session{}, err
		}
		for i := range emails {
			if err := held(); err != nil {
				log.Printf("[session][usecase] send aborted id=%s supplier_id=%s err=%v", s.ID(), emails[i].SupplierID, err)
				return entities.Session{}, err
			}
			msgID, err := u.sender.Send(ctx, emails[i])
			if err != nil {
				log.Printf("[session][usecase] send failed id=%s supplier_id=%s err=%v", s.ID(), emails[i].SupplierID, err)
				return entities.Session{}, err
			}
			emails[i].MessageID = msgID
			log.Printf("[session][usecase] email sent id=%s supplier_id=%s message_id=%s", s.ID(), emails[i].SupplierID, msgID)
		}
		return sent, nil
	})
	if err != nil {
		return entities.Session{}, nil, err
	}
	return updated, emails, nil
}

func (u *RestockSessionUseCase) DeleteSession(ctx context.Context, id string) error {
	id = strings.TrimSpace(id)
	if id == "" {
		return ErrInvalidSessionID
	}
	if u.repo == nil {
		return ErrSessionRepositoryNotSet
	}

	_, release, err := u.lock(ctx, id)
	if err != nil {
		return err
	}
	defer release()

	found, err := u.repo.Delete(ctx, id)
	if err != nil {
		log.Printf("[session][usecase] delete failed id=%s err=%v", id, err)
		return err
	}
	if !found {
		return ErrSessionNotFound
	}
	log.Printf("[session][usecase] session deleted id=%s", id)
	return nil
}

// mutate loads the session under its write lock, applies fn and persists the
// result. fn gets held to confirm the lock before side effects. The write is
// conditional on the updated_at that was loaded.
func (u *RestockSessionUseCase) mutate(
	ctx context.Context,
	id string,
	op string,
	fn func(s entities.Session, held func() error) (entities.Session, error),
) (entities.Session, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Session{}, ErrInvalidSessionID
	}

	held, release, err := u.lock(ctx, id)
	if err != nil {
		return entities.Session{}, err
	}
	defer release()

	current, err := u.load(ctx, id)
	if err != nil {
		return entities.Session{}, err
	}

	next, err := fn(current, held)
	if err != nil {
		log.Printf("[session][usecase] %s rejected id=%s status=%s err=%v", op, id, current.Status(), err)
		return entities.Session{}, err
	}
	if err := held(); err != nil {
		log.Printf("[session][usecase] %s lock lost id=%s err=%v", op, id, err)
		return entities.Session{}, err
	}

	updated, err := u.repo.Update(ctx, next, current.UpdatedAt())
	if errors.Is(err, interfaces.ErrStaleSession) {
		log.Printf("[session][usecase] %s conflict id=%s", op, id)
		return entities.Session{}, ErrSessionConflict
	}
	if err != nil {
		log.Printf("[session][usecase] %s persist failed id=%s err=%v", op, id, err)
		return entities.Session{}, err
	}
	if updated.ID() == "" {
		return entities.Session{}, ErrSessionNotFound
	}
	log.Printf("[session][usecase] %s success id=%s status=%s items=%d", op, id, updated.Status(), len(updated.Items()))
	return updated, nil
}

func (u *RestockSessionUseCase) load(ctx context.Context, id string) (entities.Session, error) {
	if u.repo == nil {
		return entities.Session{}, ErrSessionRepositoryNotSet
	}
	s, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Session{}, err
	}
	if s.ID() == "" {
		return entities.Session{}, ErrSessionNotFound
	}
	return s, nil
}

// lock acquires the session lock. held reports ErrSessionConflict once the
// lease is gone. Without a locker both returned funcs are no-ops.
func (u *RestockSessionUseCase) lock(ctx context.Context, id string) (held func() error, release func(), err error) {
	if u.locker == nil {
		return func() error { return nil }, func() {}, nil
	}

	lease, err := u.locker.Acquire(ctx, id)
	if err != nil {
		if errors.Is(err, interfaces.ErrLockHeld) {
			return nil, nil, ErrSessionBusy
		}
		log.Printf("[session][usecase] lock failed id=%s err=%v", id, err)
		return nil, nil, err
	}

	held = func() error {
		err := lease.Check(ctx)
		if errors.Is(err, interfaces.ErrLockLost) {
			return ErrSessionConflict
		}
		return err
	}
	release = func() {
		if err := lease.Release(context.WithoutCancel(ctx)); err != nil {
			log.Printf("[session][usecase] unlock failed id=%s err=%v", id, err)
		}
	}
	return held, release, nil
}

func normalizeItem(it entities.SessionItem) entities.SessionItem {
	it.ProductID = strings.TrimSpace(it.ProductID)
	it.ProductName = strings.TrimSpace(it.ProductName)
	it.SupplierID = strings.TrimSpace(it.SupplierID)
	it.SupplierName = strings.TrimSpace(it.SupplierName)
	it.SupplierEmail = strings.TrimSpace(it.SupplierEmail)
	it.Notes = strings.TrimSpace(it.Notes)
	return it
}
