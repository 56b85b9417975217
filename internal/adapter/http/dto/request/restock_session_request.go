package request

import (
	"strings"

	"restock_service/internal/domain/entities"
)

type CreateSessionRequest struct {
	UserID string `json:"user_id" binding:"required"`
	Name   string `json:"name" binding:"max=255"`
}

type RenameSessionRequest struct {
	Name string `json:"name" binding:"required,max=255"`
}

// AddItemRequest carries the product and supplier details as they are at the
// time the item is added; the session keeps this copy.
type AddItemRequest struct {
	ProductID     string `json:"product_id" binding:"required"`
	ProductName   string `json:"product_name" binding:"required"`
	SupplierID    string `json:"supplier_id" binding:"required"`
	SupplierName  string `json:"supplier_name"`
	SupplierEmail string `json:"supplier_email" binding:"omitempty,email"`
	Quantity      int    `json:"quantity"`
	Notes         string `json:"notes"`
}

func (r AddItemRequest) ToSessionItem() entities.SessionItem {
	return entities.SessionItem{
		ProductID:     strings.TrimSpace(r.ProductID),
		ProductName:   strings.TrimSpace(r.ProductName),
		SupplierID:    strings.TrimSpace(r.SupplierID),
		SupplierName:  strings.TrimSpace(r.SupplierName),
		SupplierEmail: strings.TrimSpace(r.SupplierEmail),
		Quantity:      r.Quantity,
		Notes:         strings.TrimSpace(r.Notes),
	}
}

// UpdateItemRequest is a partial update; omitted fields stay as they are.
type UpdateItemRequest struct {
	ProductName   *string `json:"product_name"`
	SupplierID    *string `json:"supplier_id"`
	SupplierName  *string `json:"supplier_name"`
	SupplierEmail *string `json:"supplier_email" binding:"omitempty,email"`
	Quantity      *int    `json:"quantity"`
	Notes         *string `json:"notes"`
}

func (r UpdateItemRequest) ToItemPatch() entities.ItemPatch {
	return entities.ItemPatch{
		ProductName:   trimmedPtr(r.ProductName),
		SupplierID:    trimmedPtr(r.SupplierID),
		SupplierName:  trimmedPtr(r.SupplierName),
		SupplierEmail: trimmedPtr(r.SupplierEmail),
		Quantity:      r.Quantity,
		Notes:         trimmedPtr(r.Notes),
	}
}

func (r UpdateItemRequest) IsEmpty() bool {
	return r.ProductName == nil && r.SupplierID == nil && r.SupplierName == nil &&
		r.SupplierEmail == nil && r.Quantity == nil && r.Notes == nil
}

func trimmedPtr(s *string) *string {
	if s == nil {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}
