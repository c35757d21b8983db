package chatRepo

import (
	"context"
	"sort"
	"sync"

	"legalassist/models"
)

// MemoryTurnStore implements TurnStore in process memory.
type MemoryTurnStore struct {
	mu       sync.RWMutex
	sessions map[string][]models.ChatTurn
}

func NewMemoryTurnStore() *MemoryTurnStore {
	return &MemoryTurnStore{sessions: make(map[string][]models.ChatTurn)}
}

func (s *MemoryTurnStore) AppendTurn(_ context.Context, turn *models.ChatTurn) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sessions[turn.SessionID] = append(s.sessions[turn.SessionID], *turn)
	return nil
}

func (s *MemoryTurnStore) ListTurns(_ context.Context, sessionID string) ([]models.ChatTurn, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	turns := make([]models.ChatTurn, len(s.sessions[sessionID]))
	copy(turns, s.sessions[sessionID])
	sort.SliceStable(turns, func(i, j int) bool {
		return turns[i].CreatedAt.Before(turns[j].CreatedAt)
	})
	return turns, nil
}
