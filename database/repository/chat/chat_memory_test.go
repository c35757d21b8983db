package chatRepo

import (
	"context"
	"testing"
	"time"

	"legalassist/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryTurnStoreOrdersByCreation(t *testing.T) {
	store := NewMemoryTurnStore()
	ctx := context.Background()
	base := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)

	require.NoError(t, store.AppendTurn(ctx, &models.ChatTurn{ID: "late", SessionID: "s1", CreatedAt: base.Add(time.Second)}))
	require.NoError(t, store.AppendTurn(ctx, &models.ChatTurn{ID: "early", SessionID: "s1", CreatedAt: base}))
	require.NoError(t, store.AppendTurn(ctx, &models.ChatTurn{ID: "tie-user", SessionID: "s1", CreatedAt: base.Add(2 * time.Second)}))
	require.NoError(t, store.AppendTurn(ctx, &models.ChatTurn{ID: "tie-ai", SessionID: "s1", IsFromAI: true, CreatedAt: base.Add(2 * time.Second)}))
	require.NoError(t, store.AppendTurn(ctx, &models.ChatTurn{ID: "other", SessionID: "s2", CreatedAt: base}))

	turns, err := store.ListTurns(ctx, "s1")
	require.NoError(t, err)
	ids := make([]string, 0, len(turns))
	for _, turn := range turns {
		ids = append(ids, turn.ID)
	}
	assert.Equal(t, []string{"early", "late", "tie-user", "tie-ai"}, ids)

	empty, err := store.ListTurns(ctx, "missing")
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}
