package contentRepo

import (
	"context"
	"sort"
	"sync"

	"legalassist/models"
)

type MemoryContentRepo struct {
	mu        sync.RWMutex
	resources []models.LegalResource
	news      []models.LegalNews
}

func NewMemoryContentRepo() *MemoryContentRepo {
	return &MemoryContentRepo{}
}

func (r *MemoryContentRepo) ListResources(_ context.Context, category string) ([]models.LegalResource, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.LegalResource, 0)
	for _, res := range r.resources {
		if category == "" || res.Category == category {
			out = append(out, res)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (r *MemoryContentRepo) GetResource(_ context.Context, id string) (*models.LegalResource, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, res := range r.resources {
		if res.ID == id {
			found := res
			return &found, nil
		}
	}
	return nil, nil
}

func (r *MemoryContentRepo) CreateResource(_ context.Context, res *models.LegalResource) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.resources = append(r.resources, *res)
	return nil
}

func (r *MemoryContentRepo) ResourceTitleExists(_ context.Context, title string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, res := range r.resources {
		if res.Title == title {
			return true, nil
		}
	}
	return false, nil
}

func (r *MemoryContentRepo) ListNews(_ context.Context, category string) ([]models.LegalNews, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.LegalNews, 0)
	for _, n := range r.news {
		if category == "" || n.Category == category {
			out = append(out, n)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].PublicationDate.After(out[j].PublicationDate) })
	return out, nil
}

func (r *MemoryContentRepo) GetNews(_ context.Context, id string) (*models.LegalNews, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, n := range r.news {
		if n.ID == id {
			found := n
			return &found, nil
		}
	}
	return nil, nil
}

func (r *MemoryContentRepo) CreateNews(_ context.Context, news *models.LegalNews) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.news = append(r.news, *news)
	return nil
}

func (r *MemoryContentRepo) NewsTitleExists(_ context.Context, title string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, n := range r.news {
		if n.Title == title {
			return true, nil
		}
	}
	return false, nil
}
