package chatRepo

import (
	"context"

	"legalassist/models"
)

// TurnStore persists consultation turns. ListTurns returns a session's turns
// ordered by CreatedAt, ties broken by append order; unknown sessions yield an
// empty slice.
type TurnStore interface {
	AppendTurn(ctx context.Context, turn *models.ChatTurn) error
	ListTurns(ctx context.Context, sessionID string) ([]models.ChatTurn, error)
}
