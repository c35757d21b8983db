package content

import (
	"context"
	"testing"
	"time"

	contentRepo "legalassist/database/repository/content"
	"legalassist/models"
	"legalassist/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentService(t *testing.T) {
	repo := contentRepo.NewMemoryContentRepo()
	ctx := context.Background()
	now := time.Now()
	require.NoError(t, repo.CreateResource(ctx, &models.LegalResource{ID: "r1", Title: "Contracts", Category: "Contract Law", CreatedAt: now}))
	require.NoError(t, repo.CreateResource(ctx, &models.LegalResource{ID: "r2", Title: "Divorce", Category: "Family Law", CreatedAt: now.Add(time.Minute)}))
	require.NoError(t, repo.CreateNews(ctx, &models.LegalNews{ID: "n1", Title: "Ruling", Category: "Constitutional Law", PublicationDate: now}))

	svc := &DefaultContentService{Repo: repo}

	all, err := svc.ListResources(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	family, err := svc.ListResources(ctx, "Family Law")
	require.NoError(t, err)
	require.Len(t, family, 1)
	assert.Equal(t, "r2", family[0].ID)

	res, err := svc.GetResource(ctx, "r1")
	require.NoError(t, err)
	assert.Equal(t, "Contracts", res.Title)

	_, err = svc.GetResource(ctx, "missing")
	assert.ErrorIs(t, err, utils.ErrNotFound)

	news, err := svc.ListNews(ctx, "Constitutional Law")
	require.NoError(t, err)
	assert.Len(t, news, 1)

	_, err = svc.GetNews(ctx, "missing")
	assert.ErrorIs(t, err, utils.ErrNotFound)
}
