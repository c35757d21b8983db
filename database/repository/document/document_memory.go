package documentRepo

import (
	"context"
	"sort"
	"sync"

	"legalassist/models"
)

type MemoryDocumentRepo struct {
	mu   sync.RWMutex
	docs map[string]models.Document
}

func NewMemoryDocumentRepo() *MemoryDocumentRepo {
	return &MemoryDocumentRepo{docs: make(map[string]models.Document)}
}

func (r *MemoryDocumentRepo) Create(_ context.Context, doc *models.Document) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.docs[doc.ID] = *doc
	return nil
}

func (r *MemoryDocumentRepo) GetByID(_ context.Context, id string) (*models.Document, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	doc, ok := r.docs[id]
	if !ok {
		return nil, nil
	}
	return &doc, nil
}

func (r *MemoryDocumentRepo) filter(keep func(models.Document) bool) []models.Document {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Document, 0)
	for _, d := range r.docs {
		if keep(d) {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (r *MemoryDocumentRepo) ListByUser(_ context.Context, userID string) ([]models.Document, error) {
	return r.filter(func(d models.Document) bool { return d.UserID == userID }), nil
}

func (r *MemoryDocumentRepo) ListSharedWith(_ context.Context, userID string) ([]models.Document, error) {
	return r.filter(func(d models.Document) bool {
		if !d.IsShared {
			return false
		}
		for _, id := range d.SharedWith {
			if id == userID {
				return true
			}
		}
		return false
	}), nil
}

func (r *MemoryDocumentRepo) Share(_ context.Context, id string, userIDs []string) (*models.Document, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, ok := r.docs[id]
	if !ok {
		return nil, nil
	}
	doc.IsShared = true
	seen := make(map[string]bool, len(doc.SharedWith))
	for _, u := range doc.SharedWith {
		seen[u] = true
	}
	for _, u := range userIDs {
		if !seen[u] {
			doc.SharedWith = append(doc.SharedWith, u)
			seen[u] = true
		}
	}
	r.docs[id] = doc
	return &doc, nil
}

func (r *MemoryDocumentRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.docs, id)
	return nil
}
