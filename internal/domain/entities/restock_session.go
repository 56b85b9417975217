package entities

import (
	"strings"
	"time"
	"unicode/utf8"
)

// SessionStatus represents the lifecycle of a restock session.
//
//	draft --(GenerateEmails, needs items)--> email_generated --(MarkAsSent)--> sent
//
// sent is terminal.
type SessionStatus string

const (
	SessionStatusDraft          SessionStatus = "draft"
	SessionStatusEmailGenerated SessionStatus = "email_generated"
	SessionStatusSent           SessionStatus = "sent"
)

// MaxSessionNameLength is counted in characters, not bytes.
const MaxSessionNameLength = 255

// PlaceholderSessionID is used for sessions that have not been persisted yet.
const PlaceholderSessionID = "pending"

const defaultSessionNamePrefix = "Restock Session "

func (s SessionStatus) Valid() bool {
	switch s {
	case SessionStatusDraft, SessionStatusEmailGenerated, SessionStatusSent:
		return true
	}
	return false
}

// SessionItem is one line of a restock session.
//
// Product and supplier fields are copies taken when the item was added, so
// renaming a product or supplier elsewhere does not rewrite history.
type SessionItem struct {
	ProductID     string `json:"product_id"`
	ProductName   string `json:"product_name"`
	SupplierID    string `json:"supplier_id"`
	SupplierName  string `json:"supplier_name"`
	SupplierEmail string `json:"supplier_email"`
	Quantity      int    `json:"quantity"`
	Notes         string `json:"notes,omitempty"`
}

// ItemPatch is a partial update for a SessionItem. Nil fields are left untouched.
type ItemPatch struct {
	ProductName   *string
	SupplierID    *string
	SupplierName  *string
	SupplierEmail *string
	Quantity      *int
	Notes         *string
}

// Supplier is the deduplicated supplier view of a session's items.
type Supplier struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// SessionRaw is the storage shape of a Session.
type SessionRaw struct {
	ID        string        `json:"id"`
	UserID    string        `json:"user_id"`
	Name      string        `json:"name,omitempty"`
	Status    SessionStatus `json:"status"`
	Items     []SessionItem `json:"items"`
	CreatedAt time.Time     `json:"created_at"`
	UpdatedAt *time.Time    `json:"updated_at,omitempty"`
}

// Session is an immutable restock session. Every mutating method returns a
// new Session and leaves the receiver as it was.
type Session struct {
	id        string
	userID    string
	name      string
	status    SessionStatus
	items     []SessionItem
	createdAt time.Time
	updatedAt *time.Time
}

var timeNow = func() time.Time { return time.Now().UTC() }

// NewSession creates an empty draft session. An empty name is replaced by
// "Restock Session <date>", a zero createdAt by the current time.
func NewSession(id, userID, name string, createdAt time.Time) (Session, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return Session{}, newValidationError("user_id", "user id is required")
	}
	if createdAt.IsZero() {
		createdAt = timeNow()
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = defaultSessionNamePrefix + createdAt.Format("2006-01-02")
	}
	if utf8.RuneCountInString(name) > MaxSessionNameLength {
		return Session{}, newValidationError("name", "name must be at most 255 characters")
	}
	if strings.TrimSpace(id) == "" {
		id = PlaceholderSessionID
	}

	return Session{
		id:        id,
		userID:    userID,
		name:      name,
		status:    SessionStatusDraft,
		items:     []SessionItem{},
		createdAt: createdAt,
	}, nil
}

// SessionFromRawValue rebuilds a session read from storage, checking the
// same invariants the mutating methods maintain.
func SessionFromRawValue(raw SessionRaw) (Session, error) {
	if strings.TrimSpace(raw.ID) == "" {
		return Session{}, newValidationError("id", "session id is required")
	}
	if strings.TrimSpace(raw.UserID) == "" {
		return Session{}, newValidationError("user_id", "user id is required")
	}
	if raw.Name != "" && strings.TrimSpace(raw.Name) == "" {
		return Session{}, newValidationError("name", "name cannot be blank")
	}
	if utf8.RuneCountInString(raw.Name) > MaxSessionNameLength {
		return Session{}, newValidationError("name", "name must be at most 255 characters")
	}
	if !raw.Status.Valid() {
		return Session{}, newValidationError("status", "unknown session status "+string(raw.Status))
	}

	seen := make(map[string]struct{}, len(raw.Items))
	for _, it := range raw.Items {
		if strings.TrimSpace(it.ProductID) == "" {
			return Session{}, newValidationError("product_id", "product id is required")
		}
		if it.Quantity <= 0 {
			return Session{}, &InvalidQuantityError{Quantity: it.Quantity}
		}
		if _, ok := seen[it.ProductID]; ok {
			return Session{}, &DuplicateItemError{ProductID: it.ProductID}
		}
		seen[it.ProductID] = struct{}{}
	}

	return Session{
		id:        raw.ID,
		userID:    raw.UserID,
		name:      raw.Name,
		status:    raw.Status,
		items:     cloneItems(raw.Items),
		createdAt: raw.CreatedAt,
		updatedAt: cloneTime(raw.UpdatedAt),
	}, nil
}

// ToRawValue returns the storage shape. SessionFromRawValue(v).ToRawValue() equals v.
func (s Session) ToRawValue() SessionRaw {
	return SessionRaw{
		ID:        s.id,
		UserID:    s.userID,
		Name:      s.name,
		Status:    s.status,
		Items:     cloneItems(s.items),
		CreatedAt: s.createdAt,
		UpdatedAt: cloneTime(s.updatedAt),
	}
}

func (s Session) ID() string { return s.id }
func (s Session) UserID() string { return s.userID }
func (s Session) Name() string { return s.name }
func (s Session) Status() SessionStatus { return s.status }
func (s Session) Items() []SessionItem { return cloneItems(s.items) }
func (s Session) CreatedAt() time.Time { return s.createdAt }
func (s Session) UpdatedAt() *time.Time { return cloneTime(s.updatedAt) }
func (s Session) IsPersisted() bool { return s.id != "" && s.id != PlaceholderSessionID }
func (s Session) IsEmpty() bool { return len(s.items) == 0 }
func (s Session) IsDraft() bool { return s.status == SessionStatusDraft }
func (s Session) IsSent() bool { return s.status == SessionStatusSent }
func (s Session) CanAddItems() bool { return s.status == SessionStatusDraft }
func (s Session) CanMarkSent() bool { return s.status == SessionStatusEmailGenerated }
func (s Session) CanGenerateEmails() bool { return s.status == SessionStatusDraft && len(s.items) > 0 }

// WithID swaps in the identifier assigned by the persistence layer.
func (s Session) WithID(id string) (Session, error) {
	if strings.TrimSpace(id) == "" {
		return Session{}, newValidationError("id", "session id is required")
	}
	s.id = id
	s.items = cloneItems(s.items)
	return s, nil
}

func (s Session) AddItem(item SessionItem) (Session, error) {
	if strings.TrimSpace(item.ProductID) == "" {
		return Session{}, newValidationError("product_id", "product id is required")
	}
	if s.HasItem(item.ProductID) {
		return Session{}, &DuplicateItemError{ProductID: item.ProductID}
	}
	if item.Quantity <= 0 {
		return Session{}, &InvalidQuantityError{Quantity: item.Quantity}
	}

	items := make([]SessionItem, 0, len(s.items)+1)
	items = append(items, s.items...)
	s.items = append(items, item)
	return s.touch(), nil
}

// RemoveItem drops the item for productID. Removing an absent product is not
// an error; the returned session is still stamped.
func (s Session) RemoveItem(productID string) Session {
	items := make([]SessionItem, 0, len(s.items))
	for _, it := range s.items {
		if it.ProductID != productID {
			items = append(items, it)
		}
	}
	s.items = items
	return s.touch()
}

// UpdateItem applies patch to the item for productID. An absent product
// leaves the items unchanged but still stamps the session.
func (s Session) UpdateItem(productID string, patch ItemPatch) (Session, error) {
	if patch.Quantity != nil && *patch.Quantity <= 0 {
		return Session{}, &InvalidQuantityError{Quantity: *patch.Quantity}
	}

	items := cloneItems(s.items)
	for i := range items {
		if items[i].ProductID == productID {
			items[i] = patch.apply(items[i])
			break
		}
	}
	s.items = items
	return s.touch(), nil
}

func (s Session) SetName(name string) (Session, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return Session{}, newValidationError("name", "name cannot be empty")
	}
	if utf8.RuneCountInString(name) > MaxSessionNameLength {
		return Session{}, newValidationError("name", "name must be at most 255 characters")
	}
	s.name = name
	s.items = cloneItems(s.items)
	return s.touch(), nil
}

func (s Session) GenerateEmails() (Session, error) {
	if s.status != SessionStatusDraft {
		return Session{}, &InvalidStateTransitionError{
			From:    s.status,
			To:      SessionStatusEmailGenerated,
			Message: "emails can only be generated from draft",
		}
	}
	if len(s.items) == 0 {
		return Session{}, &EmptySessionError{SessionID: s.id}
	}
	s.status = SessionStatusEmailGenerated
	s.items = cloneItems(s.items)
	return s.touch(), nil
}

func (s Session) MarkAsSent() (Session, error) {
	if s.status != SessionStatusEmailGenerated {
		return Session{}, &InvalidStateTransitionError{
			From:    s.status,
			To:      SessionStatusSent,
			Message: "session can only be marked as sent after emails are generated",
		}
	}
	s.status = SessionStatusSent
	s.items = cloneItems(s.items)
	return s.touch(), nil
}

func (s Session) HasItem(productID string) bool {
	_, ok := s.FindItemByProductID(productID)
	return ok
}

func (s Session) FindItemByProductID(productID string) (SessionItem, bool) {
	for _, it := range s.items {
		if it.ProductID == productID {
			return it, true
		}
	}
	return SessionItem{}, false
}

func (s Session) TotalQuantity() int {
	total := 0
	for _, it := range s.items {
		total += it.Quantity
	}
	return total
}

func (s Session) UniqueSupplierCount() int {
	return len(s.UniqueSuppliers())
}

// UniqueSuppliers lists suppliers in first-seen order. Name and email come
// from the first item that references the supplier.
func (s Session) UniqueSuppliers() []Supplier {
	seen := make(map[string]struct{}, len(s.items))
	out := make([]Supplier, 0, len(s.items))
	for _, it := range s.items {
		if _, ok := seen[it.SupplierID]; ok {
			continue
		}
		seen[it.SupplierID] = struct{}{}
		out = append(out, Supplier{ID: it.SupplierID, Name: it.SupplierName, Email: it.SupplierEmail})
	}
	return out
}

func (s Session) ItemsForSupplier(supplierID string) []SessionItem {
	out := make([]SessionItem, 0)
	for _, it := range s.items {
		if it.SupplierID == supplierID {
			out = append(out, it)
		}
	}
	return out
}

// touch stamps updatedAt. Stamps strictly advance even when the clock has
// not moved since the previous one.
func (s Session) touch() Session {
	now := timeNow()
	if s.updatedAt != nil && !now.After(*s.updatedAt) {
		now = s.updatedAt.Add(time.Nanosecond)
	}
	s.updatedAt = &now
	return s
}

func (p ItemPatch) apply(it SessionItem) SessionItem {
	if p.ProductName != nil {
		it.ProductName = *p.ProductName
	}
	if p.SupplierID != nil {
		it.SupplierID = *p.SupplierID
	}
	if p.SupplierName != nil {
		it.SupplierName = *p.SupplierName
	}
	if p.SupplierEmail != nil {
		it.SupplierEmail = *p.SupplierEmail
	}
	if p.Quantity != nil {
		it.Quantity = *p.Quantity
	}
	if p.Notes != nil {
		it.Notes = *p.Notes
	}
	return it
}

func cloneItems(items []SessionItem) []SessionItem {
	if items == nil {
		return nil
	}
	out := make([]SessionItem, len(items))
	copy(out, items)
	return out
}

func cloneTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	v := *t
	return &v
}
