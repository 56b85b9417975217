package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"restock_service/internal/domain/entities"
	"restock_service/internal/usecase/interfaces"
	mock_interfaces "restock_service/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func sessionFixture(t *testing.T, id string, status entities.SessionStatus, items ...entities.SessionItem) entities.Session {
	t.Helper()
	if items == nil {
		items = []entities.SessionItem{}
	}
	s, err := entities.SessionFromRawValue(entities.SessionRaw{
		ID:        id,
		UserID:    "user-1",
		Name:      "Weekly",
		Status:    status,
		Items:     items,
		CreatedAt: time.Date(2026, 2, 1, 9, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("fixture: %v", err)
	}
	return s
}

func itemFixture(productID, supplierID string, qty int) entities.SessionItem {
	return entities.SessionItem{
		ProductID:     productID,
		ProductName:   "Product " + productID,
		SupplierID:    supplierID,
		SupplierName:  "Supplier " + supplierID,
		SupplierEmail: supplierID + "@example.com",
		Quantity:      qty,
	}
}

// echoUpdate makes the repository return whatever it was asked to persist.
func echoUpdate(_ context.Context, s entities.Session, _ *time.Time) (entities.Session, error) {
	return s, nil
}

func TestRestockSessionUseCase_StartSession(t *testing.T) {
	t.Run("invalid user id", func(t *testing.T) {
		uc := NewRestockSessionUseCase(nil, nil, nil, "")
		_, err := uc.StartSession(context.Background(), "  ", "Weekly")
		if !errors.Is(err, ErrInvalidUserID) {
			t.Fatalf("expected ErrInvalidUserID, got %v", err)
		}
	})

	t.Run("repository not set", func(t *testing.T) {
		uc := NewRestockSessionUseCase(nil, nil, nil, "")
		_, err := uc.StartSession(context.Background(), "user-1", "Weekly")
		if !errors.Is(err, ErrSessionRepositoryNotSet) {
			t.Fatalf("expected ErrSessionRepositoryNotSet, got %v", err)
		}
	})

	t.Run("name too long", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIRestockSessionRepository(ctrl)
		uc := NewRestockSessionUseCase(repo, nil, nil, "")

		long := make([]byte, entities.MaxSessionNameLength+1)
		for i := range long {
			long[i] = 'x'
		}
		_, err := uc.StartSession(context.Background(), "user-1", string(long))
		var vErr *entities.ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
	})

	t.Run("repo create error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIRestockSessionRepository(ctrl)
		uc := NewRestockSessionUseCase(repo, nil, nil, "")

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Session{}, errors.New("db"))

		_, err := uc.StartSession(context.Background(), "user-1", "Weekly")
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIRestockSessionRepository(ctrl)
		uc := NewRestockSessionUseCase(repo, nil, nil, "")

		repo.EXPECT().Create(gomock.Any(), gomock.AssignableToTypeOf(entities.Session{})).DoAndReturn(
			func(_ context.Context, s entities.Session) (entities.Session, error) {
				if s.IsPersisted() || s.UserID() != "user-1" || s.Name() != "Weekly" || !s.IsDraft() {
					t.Fatalf("unexpected session: %+v", s.ToRawValue())
				}
				return s.WithID("sess-1")
			},
		)

		got, err := uc.StartSession(context.Background(), " user-1 ", "Weekly")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID() != "sess-1" {
			t.Fatalf("expected assigned id, got %q", got.ID())
		}
	})
}

func TestRestockSessionUseCase_GetSession(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewRestockSessionUseCase(nil, nil, nil, "")
		_, err := uc.GetSession(context.Background(), " ")
		if !errors.Is(err, ErrInvalidSessionID) {
			t.Fatalf("expected ErrInvalidSessionID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIRestockSessionRepository(ctrl)
		uc := NewRestockSessionUseCase(repo, nil, nil, "")

		repo.EXPECT().GetByID(gomock.Any(), "sess-1").Return(entities.Session{}, nil)

		_, err := uc.GetSession(context.Background(), "sess-1")
		if !errors.Is(err, ErrSessionNotFound) {
			t.Fatalf("expected ErrSessionNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIRestockSessionRepository(ctrl)
		uc := NewRestockSessionUseCase(repo, nil, nil, "")

		repo.EXPECT().GetByID(gomock.Any(), "sess-1").Return(sessionFixture(t, "sess-1", entities.SessionStatusDraft), nil)

		got, err := uc.GetSession(context.Background(), " sess-1 ")
		if err != nil || got.ID() != "sess-1" {
			t.Fatalf("unexpected result: %q %v", got.ID(), err)
		}
	})
}

func TestRestockSessionUseCase_ListSessions(t *testing.T) {
	t.Run("invalid user id", func(t *testing.T) {
		uc := NewRestockSessionUseCase(nil, nil, nil, "")
		_, err := uc.ListSessions(context.Background(), "")
		if !errors.Is(err, ErrInvalidUserID) {
			t.Fatalf("expected ErrInvalidUserID, got %v", err)
		}
	})

	t.Run("newest first", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIRestockSessionRepository(ctrl)
		uc := NewRestockSessionUseCase(repo, nil, nil, "")

		build := func(id string, createdAt time.Time) entities.Session {
			s, err := entities.SessionFromRawValue(entities.SessionRaw{
				ID:        id,
				UserID:    "user-1",
				Status:    entities.SessionStatusDraft,
				CreatedAt: createdAt,
			})
			if err != nil {
				t.Fatalf("fixture: %v", err)
			}
			return s
		}
		base := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
		repo.EXPECT().ListByUserID(gomock.Any(), "user-1").Return([]entities.Session{
			build("old", base),
			build("new", base.Add(48*time.Hour)),
			build("mid", base.Add(24*time.Hour)),
		}, nil)

		got, err := uc.ListSessions(context.Background(), "user-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(got) != 3 || got[0].ID() != "new" || got[1].ID() != "mid" || got[2].ID() != "old" {
			t.Fatalf("unexpected order: %v %v %v", got[0].ID(), got[1].ID(), got[2].ID())
		}
	})
}

func TestRestockSessionUseCase_AddItem(t *testing.T) {
	t.Run("invalid product id", func(t *testing.T) {
		uc := NewRestockSessionUseCase(nil, nil, nil, "")
		_, err := uc.AddItem(context.Background(), "sess-1", entities.SessionItem{ProductID: "  ", Quantity: 1})
		if !errors.Is(err, ErrInvalidProductID) {
			t.Fatalf("expected ErrInvalidProductID, got %v", err)
		}
	})

	t.Run("invalid session id", func(t *testing.T) {
		uc := NewRestockSessionUseCase(nil, nil, nil, "")
		_, err := uc.AddItem(context.Background(), "", itemFixture("p1", "s1", 1))
		if !errors.Is(err, ErrInvalidSessionID) {
			t.Fatalf("expected ErrInvalidSessionID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIRestockSessionRepository(ctrl)
		uc := NewRestockSessionUseCase(repo, nil, nil, "")

		repo.EXPECT().GetByID(gomock.Any(), "sess-1").Return(entities.Session{}, nil)

		_, err := uc.AddItem(context.Background(), "sess-1", itemFixture("p1", "s1", 1))
		if !errors.Is(err, ErrSessionNotFound) {
			t.Fatalf("expected ErrSessionNotFound, got %v", err)
		}
	})

	t.Run("not editable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIRestockSessionRepository(ctrl)
		uc := NewRestockSessionUseCase(repo, nil, nil, "")

		repo.EXPECT().GetByID(gomock.Any(), "sess-1").Return(sessionFixture(t, "sess-1", entities.SessionStatusEmailGenerated, itemFixture("p1", "s1", 1)), nil)

		_, err := uc.AddItem(context.Background(), "sess-1", itemFixture("p2", "s1", 1))
		if !errors.Is(err, ErrSessionNotEditable) {
			t.Fatalf("expected ErrSessionNotEditable, got %v", err)
		}
	})

	t.Run("duplicate passes through", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIRestockSessionRepository(ctrl)
		uc := NewRestockSessionUseCase(repo, nil, nil, "")

		repo.EXPECT().GetByID(gomock.Any(), "sess-1").Return(sessionFixture(t, "sess-1", entities.SessionStatusDraft, itemFixture("p1", "s1", 1)), nil)

		_, err := uc.AddItem(context.Background(), "sess-1", itemFixture("p1", "s1", 3))
		var dErr *entities.DuplicateItemError
		if !errors.As(err, &dErr) {
			t.Fatalf("expected DuplicateItemError, got %v", err)
		}
	})

	t.Run("update returns zero session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIRestockSessionRepository(ctrl)
		uc := NewRestockSessionUseCase(repo, nil, nil, "")

		repo.EXPECT().GetByID(gomock.Any(), "sess-1").Return(sessionFixture(t, "sess-1", entities.SessionStatusDraft), nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(entities.Session{}, nil)

		_, err := uc.AddItem(context.Background(), "sess-1", itemFixture("p1", "s1", 1))
		if !errors.Is(err, ErrSessionNotFound) {
			t.Fatalf("expected ErrSessionNotFound, got %v", err)
		}
	})

	t.Run("success trims item", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIRestockSessionRepository(ctrl)
		uc := NewRestockSessionUseCase(repo, nil, nil, "")

		repo.EXPECT().GetByID(gomock.Any(), "sess-1").Return(sessionFixture(t, "sess-1", entities.SessionStatusDraft), nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(echoUpdate)

		item := itemFixture(" p1 ", "s1", 4)
		item.Notes = "  fragile "
		got, err := uc.AddItem(context.Background(), "sess-1", item)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		it, ok := got.FindItemByProductID("p1")
		if !ok || it.Quantity != 4 || it.Notes != "fragile" {
			t.Fatalf("unexpected item: %+v", it)
		}
		if got.UpdatedAt() == nil {
			t.Fatalf("expected updatedAt to be stamped")
		}
	})
}

func TestRestockSessionUseCase_UpdateAndRemoveItem(t *testing.T) {
	t.Run("update invalid product id", func(t *testing.T) {
		uc := NewRestockSessionUseCase(nil, nil, nil, "")
		_, err := uc.UpdateItem(context.Background(), "sess-1", " ", entities.ItemPatch{})
		if !errors.Is(err, ErrInvalidProductID) {
			t.Fatalf("expected ErrInvalidProductID, got %v", err)
		}
	})

	t.Run("update invalid quantity", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIRestockSessionRepository(ctrl)
		uc := NewRestockSessionUseCase(repo, nil, nil, "")

		repo.EXPECT().GetByID(gomock.Any(), "sess-1").Return(sessionFixture(t, "sess-1", entities.SessionStatusDraft, itemFixture("p1", "s1", 1)), nil)

		zero := 0
		_, err := uc.UpdateItem(context.Background(), "sess-1", "p1", entities.ItemPatch{Quantity: &zero})
		var qErr *entities.InvalidQuantityError
		if !errors.As(err, &qErr) {
			t.Fatalf("expected InvalidQuantityError, got %v", err)
		}
	})

	t.Run("update success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIRestockSessionRepository(ctrl)
		uc := NewRestockSessionUseCase(repo, nil, nil, "")

		repo.EXPECT().GetByID(gomock.Any(), "sess-1").Return(sessionFixture(t, "sess-1", entities.SessionStatusDraft, itemFixture("p1", "s1", 1)), nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(echoUpdate)

		qty := 6
		got, err := uc.UpdateItem(context.Background(), "sess-1", "p1", entities.ItemPatch{Quantity: &qty})
		if err != nil || got.TotalQuantity() != 6 {
			t.Fatalf("unexpected result: %d %v", got.TotalQuantity(), err)
		}
	})

	t.Run("remove on sent session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIRestockSessionRepository(ctrl)
		uc := NewRestockSessionUseCase(repo, nil, nil, "")

		repo.EXPECT().GetByID(gomock.Any(), "sess-1").Return(sessionFixture(t, "sess-1", entities.SessionStatusSent, itemFixture("p1", "s1", 1)), nil)

		_, err := uc.RemoveItem(context.Background(), "sess-1", "p1")
		if !errors.Is(err, ErrSessionNotEditable) {
			t.Fatalf("expected ErrSessionNotEditable, got %v", err)
		}
	})

	t.Run("remove success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIRestockSessionRepository(ctrl)
		uc := NewRestockSessionUseCase(repo, nil, nil, "")

		repo.EXPECT().GetByID(gomock.Any(), "sess-1").Return(sessionFixture(t, "sess-1", entities.SessionStatusDraft, itemFixture("p1", "s1", 1), itemFixture("p2", "s1", 2)), nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(echoUpdate)

		got, err := uc.RemoveItem(context.Background(), "sess-1", "p1")
		if err != nil || got.HasItem("p1") || !got.HasItem("p2") {
			t.Fatalf("unexpected result: %+v %v", got.Items(), err)
		}
	})
}

func TestRestockSessionUseCase_RenameSession(t *testing.T) {
	t.Run("rename on sent session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIRestockSessionRepository(ctrl)
		uc := NewRestockSessionUseCase(repo, nil, nil, "")

		repo.EXPECT().GetByID(gomock.Any(), "sess-1").Return(sessionFixture(t, "sess-1", entities.SessionStatusSent, itemFixture("p1", "s1", 1)), nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(echoUpdate)

		got, err := uc.RenameSession(context.Background(), "sess-1", "Archive")
		if err != nil || got.Name() != "Archive" {
			t.Fatalf("unexpected result: %q %v", got.Name(), err)
		}
	})

	t.Run("empty name", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIRestockSessionRepository(ctrl)
		uc := NewRestockSessionUseCase(repo, nil, nil, "")

		repo.EXPECT().GetByID(gomock.Any(), "sess-1").Return(sessionFixture(t, "sess-1", entities.SessionStatusDraft), nil)

		_, err := uc.RenameSession(context.Background(), "sess-1", "  ")
		var vErr *entities.ValidationError
		if !errors.As(err, &vErr) {
			t.Fatalf("expected ValidationError, got %v", err)
		}
	})
}

func TestRestockSessionUseCase_GenerateEmails(t *testing.T) {
	t.Run("empty session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIRestockSessionRepository(ctrl)
		uc := NewRestockSessionUseCase(repo, nil, nil, "")

		repo.EXPECT().GetByID(gomock.Any(), "sess-1").Return(sessionFixture(t, "sess-1", entities.SessionStatusDraft), nil)

		_, _, err := uc.GenerateEmails(context.Background(), "sess-1")
		var eErr *entities.EmptySessionError
		if !errors.As(err, &eErr) {
			t.Fatalf("expected EmptySessionError, got %v", err)
		}
	})

	t.Run("missing supplier email is not persisted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIRestockSessionRepository(ctrl)
		uc := NewRestockSessionUseCase(repo, nil, nil, "")

		item := itemFixture("p1", "s1", 1)
		item.SupplierEmail = ""
		repo.EXPECT().GetByID(gomock.Any(), "sess-1").Return(sessionFixture(t, "sess-1", entities.SessionStatusDraft, item), nil)

		_, _, err := uc.GenerateEmails(context.Background(), "sess-1")
		if !errors.Is(err, ErrSupplierEmailMissing) {
			t.Fatalf("expected ErrSupplierEmailMissing, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIRestockSessionRepository(ctrl)
		uc := NewRestockSessionUseCase(repo, nil, nil, "Corner Shop")

		repo.EXPECT().GetByID(gomock.Any(), "sess-1").Return(sessionFixture(t, "sess-1", entities.SessionStatusDraft,
			itemFixture("p1", "s1", 1), itemFixture("p2", "s2", 2), itemFixture("p3", "s1", 3)), nil)
		repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, s entities.Session, _ *time.Time) (entities.Session, error) {
				if s.Status() != entities.SessionStatusEmailGenerated {
					t.Fatalf("expected email_generated to be persisted, got %s", s.Status())
				}
				return s, nil
			},
		)

		got, emails, err := uc.GenerateEmails(context.Background(), "sess-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status() != entities.SessionStatusEmailGenerated {
			t.Fatalf("unexpected status: %s", got.Status())
		}
		if len(emails) != 2 || emails[0].SupplierID != "s1" || len(emails[0].Items) != 2 || emails[1].SupplierID != "s2" {
			t.Fatalf("unexpected emails: %+v", emails)
		}
	})
}

func TestRestockSessionUseCase_SendEmails(t *testing.T) {
	generated := func(t *testing.T) entities.Session {
		return sessionFixture(t, "sess-1", entities.SessionStatusEmailGenerated, itemFixture("p1", "s1", 1), itemFixture("p2", "s2", 2))
	}

	t.Run("draft session", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIRestockSessionRepository(ctrl)
		sender := mock_interfaces.NewMockIEmailSender(ctrl)
		uc := NewRestockSessionUseCase(repo, sender, nil, "")

		repo.EXPECT().GetByID(gomock.Any(), "sess-1").Return(sessionFixture(t, "sess-1", entities.SessionStatusDraft, itemFixture("p1", "s1", 1)), nil)

		_, _, err := uc.SendEmails(context.Background(), "sess-1")
		var tErr *entities.InvalidStateTransitionError
		if !errors.As(err, &tErr) {
			t.Fatalf("expected InvalidStateTransitionError, got %v", err)
		}
	})

	t.Run("sender not set", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIRestockSessionRepository(ctrl)
		uc := NewRestockSessionUseCase(repo, nil, nil, "")

		repo.EXPECT().GetByID(gomock.Any(), "sess-1").Return(generated(t), nil)

		_, _, err := uc.SendEmails(context.Background(), "sess-1")
		if !errors.Is(err, ErrEmailSenderNotSet) {
			t.Fatalf("expected ErrEmailSenderNotSet, got %v", err)
		}
	})

	t.Run("send failure keeps session email_generated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIRestockSessionRepository(ctrl)
		sender := mock_interfaces.NewMockIEmailSender(ctrl)
		uc := NewRestockSessionUseCase(repo, sender, nil, "")

		repo.EXPECT().GetByID(gomock.Any(), "sess-1").Return(generated(t), nil)
		gomock.InOrder(
			sender.EXPECT().Send(gomock.Any(), gomock.Any()).Return("msg-1", nil),
			sender.EXPECT().Send(gomock.Any(), gomock.Any()).Return("", errors.New("ses throttled")),
		)

		_, _, err := uc.SendEmails(context.Background(), "sess-1")
		if err == nil || err.Error() != "ses throttled" {
			t.Fatalf("expected send error, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIRestockSessionRepository(ctrl)
		sender := mock_interfaces.NewMockIEmailSender(ctrl)
		uc := NewRestockSessionUseCase(repo, sender, nil, "")

		repo.EXPECT().GetByID(gomock.Any(), "sess-1").Return(generated(t), nil)
		sender.EXPECT().Send(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, e entities.SupplierEmail) (string, error) {
				return "msg-" + e.SupplierID, nil
			},
		).Times(2)
		repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(echoUpdate)

		got, emails, err := uc.SendEmails(context.Background(), "sess-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.IsSent() {
			t.Fatalf("expected sent, got %s", got.Status())
		}
		if len(emails) != 2 || emails[0].MessageID != "msg-s1" || emails[1].MessageID != "msg-s2" {
			t.Fatalf("unexpected emails: %+v", emails)
		}
	})
}

func TestRestockSessionUseCase_DeleteSession(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		uc := NewRestockSessionUseCase(nil, nil, nil, "")
		if err := uc.DeleteSession(context.Background(), ""); !errors.Is(err, ErrInvalidSessionID) {
			t.Fatalf("expected ErrInvalidSessionID, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIRestockSessionRepository(ctrl)
		uc := NewRestockSessionUseCase(repo, nil, nil, "")

		repo.EXPECT().Delete(gomock.Any(), "sess-1").Return(false, nil)

		if err := uc.DeleteSession(context.Background(), "sess-1"); !errors.Is(err, ErrSessionNotFound) {
			t.Fatalf("expected ErrSessionNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIRestockSessionRepository(ctrl)
		uc := NewRestockSessionUseCase(repo, nil, nil, "")

		repo.EXPECT().Delete(gomock.Any(), "sess-1").Return(true, nil)

		if err := uc.DeleteSession(context.Background(), "sess-1"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestRestockSessionUseCase_Locking(t *testing.T) {
	t.Run("busy", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIRestockSessionRepository(ctrl)
		locker := mock_interfaces.NewMockISessionLocker(ctrl)
		uc := NewRestockSessionUseCase(repo, nil, locker, "")

		locker.EXPECT().Acquire(gomock.Any(), "sess-1").Return(nil, interfaces.ErrLockHeld)

		_, err := uc.RenameSession(context.Background(), "sess-1", "Other")
		if !errors.Is(err, ErrSessionBusy) {
			t.Fatalf("expected ErrSessionBusy, got %v", err)
		}
	})

	t.Run("locker error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIRestockSessionRepository(ctrl)
		locker := mock_interfaces.NewMockISessionLocker(ctrl)
		uc := NewRestockSessionUseCase(repo, nil, locker, "")

		locker.EXPECT().Acquire(gomock.Any(), "sess-1").Return(nil, errors.New("redis down"))

		if err := uc.DeleteSession(context.Background(), "sess-1"); err == nil || err.Error() != "redis down" {
			t.Fatalf("expected redis error, got %v", err)
		}
	})

	t.Run("released after write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIRestockSessionRepository(ctrl)
		locker := mock_interfaces.NewMockISessionLocker(ctrl)
		lease := mock_interfaces.NewMockISessionLease(ctrl)
		uc := NewRestockSessionUseCase(repo, nil, locker, "")

		locker.EXPECT().Acquire(gomock.Any(), "sess-1").Return(lease, nil)
		repo.EXPECT().GetByID(gomock.Any(), "sess-1").Return(sessionFixture(t, "sess-1", entities.SessionStatusDraft), nil)
		gomock.InOrder(
			lease.EXPECT().Check(gomock.Any()).Return(nil),
			repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(echoUpdate),
			lease.EXPECT().Release(gomock.Any()).Return(nil),
		)

		if _, err := uc.RenameSession(context.Background(), "sess-1", "Other"); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("released after rejected write", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIRestockSessionRepository(ctrl)
		locker := mock_interfaces.NewMockISessionLocker(ctrl)
		lease := mock_interfaces.NewMockISessionLease(ctrl)
		uc := NewRestockSessionUseCase(repo, nil, locker, "")

		locker.EXPECT().Acquire(gomock.Any(), "sess-1").Return(lease, nil)
		repo.EXPECT().GetByID(gomock.Any(), "sess-1").Return(sessionFixture(t, "sess-1", entities.SessionStatusDraft), nil)
		lease.EXPECT().Release(gomock.Any()).Return(errors.New("already expired"))

		_, _, err := uc.GenerateEmails(context.Background(), "sess-1")
		var eErr *entities.EmptySessionError
		if !errors.As(err, &eErr) {
			t.Fatalf("expected EmptySessionError, got %v", err)
		}
	})

	t.Run("expired lease is not persisted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIRestockSessionRepository(ctrl)
		locker := mock_interfaces.NewMockISessionLocker(ctrl)
		lease := mock_interfaces.NewMockISessionLease(ctrl)
		uc := NewRestockSessionUseCase(repo, nil, locker, "")

		locker.EXPECT().Acquire(gomock.Any(), "sess-1").Return(lease, nil)
		repo.EXPECT().GetByID(gomock.Any(), "sess-1").Return(sessionFixture(t, "sess-1", entities.SessionStatusDraft), nil)
		lease.EXPECT().Check(gomock.Any()).Return(interfaces.ErrLockLost)
		lease.EXPECT().Release(gomock.Any()).Return(nil)

		_, err := uc.RenameSession(context.Background(), "sess-1", "Other")
		if !errors.Is(err, ErrSessionConflict) {
			t.Fatalf("expected ErrSessionConflict, got %v", err)
		}
	})

	t.Run("lease check error is returned", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIRestockSessionRepository(ctrl)
		locker := mock_interfaces.NewMockISessionLocker(ctrl)
		lease := mock_interfaces.NewMockISessionLease(ctrl)
		uc := NewRestockSessionUseCase(repo, nil, locker, "")

		locker.EXPECT().Acquire(gomock.Any(), "sess-1").Return(lease, nil)
		repo.EXPECT().GetByID(gomock.Any(), "sess-1").Return(sessionFixture(t, "sess-1", entities.SessionStatusDraft), nil)
		lease.EXPECT().Check(gomock.Any()).Return(errors.New("redis down"))
		lease.EXPECT().Release(gomock.Any()).Return(nil)

		_, err := uc.RenameSession(context.Background(), "sess-1", "Other")
		if err == nil || err.Error() != "redis down" {
			t.Fatalf("expected redis error, got %v", err)
		}
	})
}

func TestRestockSessionUseCase_ConcurrentSend(t *testing.T) {
	generated := func(t *testing.T) entities.Session {
		return sessionFixture(t, "sess-1", entities.SessionStatusEmailGenerated, itemFixture("p1", "s1", 1), itemFixture("p2", "s2", 2))
	}

	t.Run("expired lease sends nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIRestockSessionRepository(ctrl)
		sender := mock_interfaces.NewMockIEmailSender(ctrl)
		locker := mock_interfaces.NewMockISessionLocker(ctrl)
		lease := mock_interfaces.NewMockISessionLease(ctrl)
		uc := NewRestockSessionUseCase(repo, sender, locker, "")

		locker.EXPECT().Acquire(gomock.Any(), "sess-1").Return(lease, nil)
		repo.EXPECT().GetByID(gomock.Any(), "sess-1").Return(generated(t), nil)
		lease.EXPECT().Check(gomock.Any()).Return(interfaces.ErrLockLost)
		lease.EXPECT().Release(gomock.Any()).Return(nil)

		_, emails, err := uc.SendEmails(context.Background(), "sess-1")
		if !errors.Is(err, ErrSessionConflict) {
			t.Fatalf("expected ErrSessionConflict, got %v", err)
		}
		if emails != nil {
			t.Fatalf("expected no emails, got %+v", emails)
		}
	})

	t.Run("lease lost mid-send stops remaining emails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIRestockSessionRepository(ctrl)
		sender := mock_interfaces.NewMockIEmailSender(ctrl)
		locker := mock_interfaces.NewMockISessionLocker(ctrl)
		lease := mock_interfaces.NewMockISessionLease(ctrl)
		uc := NewRestockSessionUseCase(repo, sender, locker, "")

		locker.EXPECT().Acquire(gomock.Any(), "sess-1").Return(lease, nil)
		repo.EXPECT().GetByID(gomock.Any(), "sess-1").Return(generated(t), nil)
		gomock.InOrder(
			lease.EXPECT().Check(gomock.Any()).Return(nil),
			sender.EXPECT().Send(gomock.Any(), gomock.Any()).Return("msg-1", nil),
			lease.EXPECT().Check(gomock.Any()).Return(interfaces.ErrLockLost),
			lease.EXPECT().Release(gomock.Any()).Return(nil),
		)

		if _, _, err := uc.SendEmails(context.Background(), "sess-1"); !errors.Is(err, ErrSessionConflict) {
			t.Fatalf("expected ErrSessionConflict, got %v", err)
		}
	})

	t.Run("lease held for every send", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIRestockSessionRepository(ctrl)
		sender := mock_interfaces.NewMockIEmailSender(ctrl)
		locker := mock_interfaces.NewMockISessionLocker(ctrl)
		lease := mock_interfaces.NewMockISessionLease(ctrl)
		uc := NewRestockSessionUseCase(repo, sender, locker, "")

		locker.EXPECT().Acquire(gomock.Any(), "sess-1").Return(lease, nil)
		repo.EXPECT().GetByID(gomock.Any(), "sess-1").Return(generated(t), nil)
		lease.EXPECT().Check(gomock.Any()).Return(nil).Times(3)
		sender.EXPECT().Send(gomock.Any(), gomock.Any()).Return("msg", nil).Times(2)
		repo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(echoUpdate)
		lease.EXPECT().Release(gomock.Any()).Return(nil)

		got, _, err := uc.SendEmails(context.Background(), "sess-1")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !got.IsSent() {
			t.Fatalf("expected sent, got %s", got.Status())
		}
	})

	t.Run("second writer after lease expiry gets a conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIRestockSessionRepository(ctrl)
		sender := mock_interfaces.NewMockIEmailSender(ctrl)
		uc := NewRestockSessionUseCase(repo, sender, nil, "")

		loaded := generated(t)
		repo.EXPECT().GetByID(gomock.Any(), "sess-1").Return(loaded, nil)
		sender.EXPECT().Send(gomock.Any(), gomock.Any()).Return("msg", nil).Times(2)
		repo.EXPECT().Update(gomock.Any(), gomock.Any(), loaded.UpdatedAt()).Return(entities.Session{}, interfaces.ErrStaleSession)

		_, emails, err := uc.SendEmails(context.Background(), "sess-1")
		if !errors.Is(err, ErrSessionConflict) {
			t.Fatalf("expected ErrSessionConflict, got %v", err)
		}
		if emails != nil {
			t.Fatalf("expected no emails on conflict, got %+v", emails)
		}
	})
}

func TestRestockSessionUseCase_OptimisticUpdate(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock_interfaces.NewMockIRestockSessionRepository(ctrl)
	uc := NewRestockSessionUseCase(repo, nil, nil, "")

	stamp := time.Date(2026, 2, 3, 10, 0, 0, 0, time.UTC)
	raw := sessionFixture(t, "sess-1", entities.SessionStatusDraft).ToRawValue()
	raw.UpdatedAt = &stamp
	loaded, err := entities.SessionFromRawValue(raw)
	if err != nil {
		t.Fatalf("fixture: %v", err)
	}

	repo.EXPECT().GetByID(gomock.Any(), "sess-1").Return(loaded, nil)
	repo.EXPECT().Update(gomock.Any(), gomock.Any(), &stamp).DoAndReturn(echoUpdate)

	got, err := uc.RenameSession(context.Background(), "sess-1", "Other")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.UpdatedAt().After(stamp) {
		t.Fatalf("expected updated_at to move past %v, got %v", stamp, got.UpdatedAt())
	}
}
