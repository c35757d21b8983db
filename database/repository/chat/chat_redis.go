package chatRepo

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"legalassist/models"
	"legalassist/utils"

	"github.com/go-redis/redis/v8"
)

// RedisTurnStore keeps anonymous sessions in a Redis list that expires after
// ttl of inactivity.
type RedisTurnStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisTurnStore(client *redis.Client, ttl time.Duration) *RedisTurnStore {
	return &RedisTurnStore{client: client, ttl: ttl}
}

func (s *RedisTurnStore) AppendTurn(ctx context.Context, turn *models.ChatTurn) error {
	b, err := encodeTurn(turn)
	if err != nil {
		return err
	}

	key := utils.ChatTurnsPrefix + turn.SessionID
	pipe := s.client.TxPipeline()
	pipe.RPush(ctx, key, b)
	pipe.Expire(ctx, key, s.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to append turn to session %s: %w", turn.SessionID, err)
	}
	return nil
}

func (s *RedisTurnStore) ListTurns(ctx context.Context, sessionID string) ([]models.ChatTurn, error) {
	raw, err := s.client.LRange(ctx, utils.ChatTurnsPrefix+sessionID, 0, -1).Result()
	if err == redis.Nil {
		return []models.ChatTurn{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session %s: %w", sessionID, err)
	}

	return decodeTurns(sessionID, raw)
}

func encodeTurn(turn *models.ChatTurn) ([]byte, error) {
	b, err := json.Marshal(turn)
	if err != nil {
		return nil, fmt.Errorf("failed to encode turn: %w", err)
	}
	return b, nil
}

// decodeTurns keeps list order, which is append order.
func decodeTurns(sessionID string, raw []string) ([]models.ChatTurn, error) {
	turns := make([]models.ChatTurn, 0, len(raw))
	for _, item := range raw {
		var t models.ChatTurn
		if err := json.Unmarshal([]byte(item), &t); err != nil {
			return nil, fmt.Errorf("failed to decode turn in session %s: %w", sessionID, err)
		}
		turns = append(turns, t)
	}
	return turns, nil
}
