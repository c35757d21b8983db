package chatRepo

import (
	"testing"
	"time"

	"legalassist/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRedisTurnEncodingRoundTrip(t *testing.T) {
	base := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	in := []models.ChatTurn{
		{ID: "t1", SessionID: "s1", Content: "Is a verbal lease binding?", CreatedAt: base},
		{ID: "t2", SessionID: "s1", Content: "Often, yes.", IsFromAI: true, CreatedAt: base.Add(time.Second)},
	}

	raw := make([]string, 0, len(in))
	for i := range in {
		b, err := encodeTurn(&in[i])
		require.NoError(t, err)
		raw = append(raw, string(b))
	}
	assert.NotContains(t, raw[0], "userId")

	out, err := decodeTurns("s1", raw)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "t1", out[0].ID)
	assert.Equal(t, models.RoleUser, out[0].Role())
	assert.Equal(t, models.RoleAssistant, out[1].Role())
	assert.True(t, in[1].CreatedAt.Equal(out[1].CreatedAt))
	assert.Equal(t, in[1].Content, out[1].Content)

	empty, err := decodeTurns("s1", nil)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
}

func TestRedisTurnDecodingRejectsCorruptEntries(t *testing.T) {
	_, err := decodeTurns("s1", []string{`{"id":"t1"}`, `not json`})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "session s1")
}
