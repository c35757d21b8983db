package messageRepo

import (
	"context"
	"sync"

	"legalassist/models"
)

type MemoryMessageRepo struct {
	mu   sync.RWMutex
	msgs []models.Message
}

func NewMemoryMessageRepo() *MemoryMessageRepo {
	return &MemoryMessageRepo{}
}

func (r *MemoryMessageRepo) Create(_ context.Context, msg *models.Message) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.msgs = append(r.msgs, *msg)
	return nil
}

func (r *MemoryMessageRepo) GetByID(_ context.Context, id string) (*models.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, m := range r.msgs {
		if m.ID == id {
			found := m
			return &found, nil
		}
	}
	return nil, nil
}

// ListConversation relies on append order matching creation order.
func (r *MemoryMessageRepo) ListConversation(_ context.Context, a, b string) ([]models.Message, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Message, 0)
	for _, m := range r.msgs {
		if (m.SenderID == a && m.ReceiverID == b) || (m.SenderID == b && m.ReceiverID == a) {
			out = append(out, m)
		}
	}
	return out, nil
}

func (r *MemoryMessageRepo) MarkRead(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := range r.msgs {
		if r.msgs[i].ID == id {
			r.msgs[i].IsRead = true
		}
	}
	return nil
}

func (r *MemoryMessageRepo) CountUnread(_ context.Context, receiverID string) (int64, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var n int64
	for _, m := range r.msgs {
		if m.ReceiverID == receiverID && !m.IsRead {
			n++
		}
	}
	return n, nil
}
