package response

import (
	"restock_service/internal/domain/entities"
	"time"
)

type SessionItemResponse struct {
	ProductID     string `json:"product_id"`
	ProductName   string `json:"product_name"`
	SupplierID    string `json:"supplier_id"`
	SupplierName  string `json:"supplier_name"`
	SupplierEmail string `json:"supplier_email"`
	Quantity      int    `json:"quantity"`
	Notes         string `json:"notes,omitempty"`
}

type SessionResponse struct {
	ID                string                `json:"id"`
	SessionID         string                `json:"session_id"`
	UserID            string                `json:"user_id"`
	Name              string                `json:"name"`
	Status            string                `json:"status"`
	Items             []SessionItemResponse `json:"items"`
	TotalQuantity     int                   `json:"total_quantity"`
	SupplierCount     int                   `json:"supplier_count"`
	CanAddItems       bool                  `json:"can_add_items"`
	CanGenerateEmails bool                  `json:"can_generate_emails"`
	CanMarkSent       bool                  `json:"can_mark_sent"`
	CreatedAt         time.Time             `json:"created_at"`
	UpdatedAt         *time.Time            `json:"updated_at,omitempty"`
}

type SupplierEmailResponse struct {
	SupplierID   string                `json:"supplier_id"`
	SupplierName string                `json:"supplier_name"`
	To           string                `json:"to"`
	Subject      string                `json:"subject"`
	Body         string                `json:"body"`
	Items        []SessionItemResponse `json:"items"`
	MessageID    string                `json:"message_id,omitempty"`
}

type SessionEmailsResponse struct {
	Session SessionResponse         `json:"session"`
	Emails  []SupplierEmailResponse `json:"emails"`
}

func FromSession(s entities.Session) SessionResponse {
	return SessionResponse{
		ID:                s.ID(),
		SessionID:         s.ID(),
		UserID:            s.UserID(),
		Name:              s.Name(),
		Status:            string(s.Status()),
		Items:             fromItems(s.Items()),
		TotalQuantity:     s.TotalQuantity(),
		SupplierCount:     s.UniqueSupplierCount(),
		CanAddItems:       s.CanAddItems(),
		CanGenerateEmails: s.CanGenerateEmails(),
		CanMarkSent:       s.CanMarkSent(),
		CreatedAt:         s.CreatedAt(),
		UpdatedAt:         s.UpdatedAt(),
	}
}

func FromSessions(sessions []entities.Session) []SessionResponse {
	out := make([]SessionResponse, 0, len(sessions))
	for _, s := range sessions {
		out = append(out, FromSession(s))
	}
	return out
}

func FromSessionEmails(s entities.Session, emails []entities.SupplierEmail) SessionEmailsResponse {
	out := SessionEmailsResponse{
		Session: FromSession(s),
		Emails:  make([]SupplierEmailResponse, 0, len(emails)),
	}
	for _, e := range emails {
		out.Emails = append(out.Emails, SupplierEmailResponse{
			SupplierID:   e.SupplierID,
			SupplierName: e.SupplierName,
			To:           e.To,
			Subject:      e.Subject,
			Body:         e.Body,
			Items:        fromItems(e.Items),
			MessageID:    e.MessageID,
		})
	}
	return out
}

func fromItems(items []entities.SessionItem) []SessionItemResponse {
	out := make([]SessionItemResponse, 0, len(items))
	for _, it := range items {
		out = append(out, SessionItemResponse(it))
	}
	return out
}
