package paymentRepo

import (
	"context"

	"legalassist/models"
)

// TransactionRepository records consultation payments.
type TransactionRepository interface {
	Create(ctx context.Context, tx *models.Transaction) error
	GetByID(ctx context.Context, id string) (*models.Transaction, error)
	ListByUser(ctx context.Context, userID string) ([]models.Transaction, error)
	UpdateStatus(ctx context.Context, id, status string) error
}
