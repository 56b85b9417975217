package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"restock_service/internal/domain/entities"
	"restock_service/internal/usecase/interfaces"

	"github.com/google/uuid"
)

const restockSessionsSchema = `
CREATE TABLE IF NOT EXISTS restock_sessions (
	id         VARCHAR(36)  NOT NULL PRIMARY KEY,
	user_id    VARCHAR(128) NOT NULL,
	name       VARCHAR(255) NOT NULL DEFAULT '',
	status     VARCHAR(32)  NOT NULL,
	created_at DATETIME(6)  NOT NULL,
	updated_at DATETIME(6)  NULL,
	INDEX idx_restock_sessions_user_id (user_id)
)`

const restockSessionItemsSchema = `
CREATE TABLE IF NOT EXISTS restock_session_items (
	session_id     VARCHAR(36)  NOT NULL,
	position       INT          NOT NULL,
	product_id     VARCHAR(128) NOT NULL,
	product_name   VARCHAR(255) NOT NULL,
	supplier_id    VARCHAR(128) NOT NULL,
	supplier_name  VARCHAR(255) NOT NULL,
	supplier_email VARCHAR(320) NOT NULL,
	quantity       INT          NOT NULL,
	notes          TEXT         NULL,
	PRIMARY KEY (session_id, product_id),
	CONSTRAINT fk_restock_session_items_session
		FOREIGN KEY (session_id) REFERENCES restock_sessions (id) ON DELETE CASCADE
)`

// RestockSessionMySQLRepository persists restock sessions in two tables,
// restock_sessions and restock_session_items. Writes replace the item rows
// of a session inside the same transaction as the session row.
//
// The DSN must set parseTime=true. DATETIME(6) keeps microseconds, so stamps
// read back are truncated to that precision.
type RestockSessionMySQLRepository struct {
	db *sql.DB
}

var _ interfaces.IRestockSessionRepository = (*RestockSessionMySQLRepository)(nil)

func NewRestockSessionMySQLRepository(db *sql.DB) *RestockSessionMySQLRepository {
	return &RestockSessionMySQLRepository{db: db}
}

// EnsureSchema creates the tables when they do not exist.
func (m *RestockSessionMySQLRepository) EnsureSchema(ctx context.Context) error {
	for _, stmt := range []string{restockSessionsSchema, restockSessionItemsSchema} {
		if _, err := m.db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}

func (m *RestockSessionMySQLRepository) Create(ctx context.Context, s entities.Session) (entities.Session, error) {
	s, err := s.WithID(uuid.NewString())
	if err != nil {
		return entities.Session{}, err
	}
	raw := s.ToRawValue()

	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return entities.Session{}, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO restock_sessions (id, user_id, name, status, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		raw.ID, raw.UserID, raw.Name, string(raw.Status), raw.CreatedAt.UTC(), nullTime(raw.UpdatedAt),
	)
	if err != nil {
		return entities.Session{}, fmt.Errorf("insert session: %w", err)
	}
	if err := insertSessionItems(ctx, tx, raw.ID, raw.Items); err != nil {
		return entities.Session{}, err
	}

	if err := tx.Commit(); err != nil {
		return entities.Session{}, fmt.Errorf("commit: %w", err)
	}
	return s, nil
}

func (m *RestockSessionMySQLRepository) GetByID(ctx context.Context, id string) (entities.Session, error) {
	raw, err := scanSessionRow(m.db.QueryRowContext(ctx, `
		SELECT id, user_id, name, status, created_at, updated_at
		FROM restock_sessions WHERE id = ?`, id,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Session{}, nil
	}
	if err != nil {
		return entities.Session{}, fmt.Errorf("query session: %w", err)
	}

	rows, err := m.db.QueryContext(ctx, `
		SELECT session_id, product_id, product_name, supplier_id, supplier_name, supplier_email, quantity, notes
		FROM restock_session_items WHERE session_id = ? ORDER BY position`, id,
	)
	if err != nil {
		return entities.Session{}, fmt.Errorf("query session items: %w", err)
	}
	items, err := scanSessionItems(rows)
	if err != nil {
		return entities.Session{}, err
	}

	raw.Items = items[id]
	if raw.Items == nil {
		raw.Items = []entities.SessionItem{}
	}
	return entities.SessionFromRawValue(raw)
}

func (m *RestockSessionMySQLRepository) ListByUserID(ctx context.Context, userID string) ([]entities.Session, error) {
	rows, err := m.db.QueryContext(ctx, `
		SELECT id, user_id, name, status, created_at, updated_at
		FROM restock_sessions WHERE user_id = ? ORDER BY created_at DESC`, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer rows.Close()

	var raws []entities.SessionRaw
	for rows.Next() {
		raw, err := scanSessionRow(rows)
		if err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		raws = append(raws, raw)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate sessions: %w", err)
	}

	itemRows, err := m.db.QueryContext(ctx, `
		SELECT i.session_id, i.product_id, i.product_name, i.supplier_id, i.supplier_name, i.supplier_email, i.quantity, i.notes
		FROM restock_session_items i
		JOIN restock_sessions s ON s.id = i.session_id
		WHERE s.user_id = ? ORDER BY i.session_id, i.position`, userID,
	)
	if err != nil {
		return nil, fmt.Errorf("query session items: %w", err)
	}
	items, err := scanSessionItems(itemRows)
	if err != nil {
		return nil, err
	}

	sessions := make([]entities.Session, 0, len(raws))
	for _, raw := range raws {
		raw.Items = items[raw.ID]
		if raw.Items == nil {
			raw.Items = []entities.SessionItem{}
		}
		s, err := entities.SessionFromRawValue(raw)
		if err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}
	return sessions, nil
}

// Update replaces the session row and all of its item rows. A session that
// no longer exists yields a zero Session and no error. The write only goes
// through while the stored updated_at still equals expectedUpdatedAt,
// otherwise interfaces.ErrStaleSession is returned.
func (m *RestockSessionMySQLRepository) Update(ctx context.Context, s entities.Session, expectedUpdatedAt *time.Time) (entities.Session, error) {
	if !s.IsPersisted() {
		return entities.Session{}, ErrSessionNotPersisted
	}
	raw := s.ToRawValue()

	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return entities.Session{}, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	var stored sql.NullTime
	err = tx.QueryRowContext(ctx, `SELECT updated_at FROM restock_sessions WHERE id = ? FOR UPDATE`, raw.ID).Scan(&stored)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Session{}, nil
	}
	if err != nil {
		return entities.Session{}, fmt.Errorf("lock session: %w", err)
	}
	if !sameStamp(stored, expectedUpdatedAt) {
		return entities.Session{}, interfaces.ErrStaleSession
	}

	_, err = tx.ExecContext(ctx, `
		UPDATE restock_sessions SET name = ?, status = ?, updated_at = ?
		WHERE id = ?`,
		raw.Name, string(raw.Status), nullTime(raw.UpdatedAt), raw.ID,
	)
	if err != nil {
		return entities.Session{}, fmt.Errorf("update session: %w", err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM restock_session_items WHERE session_id = ?`, raw.ID); err != nil {
		return entities.Session{}, fmt.Errorf("delete session items: %w", err)
	}
	if err := insertSessionItems(ctx, tx, raw.ID, raw.Items); err != nil {
		return entities.Session{}, err
	}

	if err := tx.Commit(); err != nil {
		return entities.Session{}, fmt.Errorf("commit: %w", err)
	}
	return s, nil
}

func (m *RestockSessionMySQLRepository) Delete(ctx context.Context, id string) (bool, error) {
	result, err := m.db.ExecContext(ctx, `DELETE FROM restock_sessions WHERE id = ?`, id)
	if err != nil {
		return false, fmt.Errorf("delete session: %w", err)
	}

	return deletedAny(result)
}

func deletedAny(result sql.Result) (bool, error) {
	rows, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected: %w", err)
	}
	return rows > 0, nil
}

// sameStamp compares a stored updated_at with the one the caller loaded.
// DATETIME(6) keeps microseconds, so expected is truncated the same way.
func sameStamp(stored sql.NullTime, expected *time.Time) bool {
	if !stored.Valid || expected == nil {
		return !stored.Valid && expected == nil
	}
	return stored.Time.Equal(expected.Truncate(time.Microsecond))
}

func insertSessionItems(ctx context.Context, tx *sql.Tx, sessionID string, items []entities.SessionItem) error {
	for i, it := range items {
		_, err := tx.ExecContext(ctx, `
			INSERT INTO restock_session_items
				(session_id, position, product_id, product_name, supplier_id, supplier_name, supplier_email, quantity, notes)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			sessionID, i, it.ProductID, it.ProductName, it.SupplierID, it.SupplierName, it.SupplierEmail, it.Quantity, nullString(it.Notes),
		)
		if err != nil {
			return fmt.Errorf("insert session item %s: %w", it.ProductID, err)
		}
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSessionRow(row rowScanner) (entities.SessionRaw, error) {
	var (
		raw       entities.SessionRaw
		status    string
		updatedAt sql.NullTime
	)
	if err := row.Scan(&raw.ID, &raw.UserID, &raw.Name, &status, &raw.CreatedAt, &updatedAt); err != nil {
		return entities.SessionRaw{}, err
	}
	raw.Status = entities.SessionStatus(status)
	raw.CreatedAt = raw.CreatedAt.UTC()
	if updatedAt.Valid {
		t := updatedAt.Time.UTC()
		raw.UpdatedAt = &t
	}
	return raw, nil
}

// scanSessionItems drains rows and groups the items by session id.
func scanSessionItems(rows *sql.Rows) (map[string][]entities.SessionItem, error) {
	defer rows.Close()

	out := make(map[string][]entities.SessionItem)
	for rows.Next() {
		var (
			sessionID string
			it        entities.SessionItem
			notes     sql.NullString
		)
		if err := rows.Scan(&sessionID, &it.ProductID, &it.ProductName, &it.SupplierID, &it.SupplierName, &it.SupplierEmail, &it.Quantity, &notes); err != nil {
			return nil, fmt.Errorf("scan session item: %w", err)
		}
		it.Notes = notes.String
		out[sessionID] = append(out[sessionID], it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate session items: %w", err)
	}
	return out, nil
}

func nullTime(t *time.Time) sql.NullTime {
	if t == nil {
		return sql.NullTime{}
	}
	return sql.NullTime{Time: t.UTC(), Valid: true}
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
