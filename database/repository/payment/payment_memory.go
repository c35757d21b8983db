package paymentRepo

import (
	"context"
	"fmt"
	"sync"

	"legalassist/models"
)

type MemoryTransactionRepo struct {
	mu  sync.RWMutex
	txs []models.Transaction
}

func NewMemoryTransactionRepo() *MemoryTransactionRepo {
	return &MemoryTransactionRepo{}
}

func (r *MemoryTransactionRepo) Create(_ context.Context, tx *models.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.txs = append(r.txs, *tx)
	return nil
}

func (r *MemoryTransactionRepo) GetByID(_ context.Context, id string) (*models.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, tx := range r.txs {
		if tx.ID == id {
			found := tx
			return &found, nil
		}
	}
	return nil, nil
}

// ListByUser returns newest first.
func (r *MemoryTransactionRepo) ListByUser(_ context.Context, userID string) ([]models.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Transaction, 0)
	for i := len(r.txs) - 1; i >= 0; i-- {
		if r.txs[i].UserID == userID {
			out = append(out, r.txs[i])
		}
	}
	return out, nil
}

func (r *MemoryTransactionRepo) UpdateStatus(_ context.Context, id, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.txs {
		if r.txs[i].ID == id {
			r.txs[i].Status = status
			return nil
		}
	}
	return fmt.Errorf("transaction with id %s not found", id)
}
