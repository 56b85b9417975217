package interfaces

import (
	"context"
	"restock_service/internal/domain/entities"
)

// IEmailSender delivers supplier emails (e.g. Amazon SES).
type IEmailSender interface {
	Send(ctx context.Context, email entities.SupplierEmail) (messageID string, err error)
}
