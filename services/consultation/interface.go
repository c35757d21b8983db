package consultation

import (
	"context"
	"time"

	chatRepo "legalassist/database/repository/chat"
	"legalassist/models"
	"legalassist/services/intelligence"
)

// DefaultTimeout bounds a single generation call.
const DefaultTimeout = 30 * time.Second

type ConsultationService interface {
	// SubmitMessage threads message into its session and returns the reply.
	// userID is empty for anonymous callers.
	SubmitMessage(ctx context.Context, userID string, req models.ChatRequest) (*models.ChatResponse, error)
	// GetSessionHistory returns userID's stored turns for a session, oldest first.
	GetSessionHistory(ctx context.Context, userID, sessionID string) ([]models.ChatTurn, error)
	AnalyzeDocument(ctx context.Context, text string) (*models.DocumentAnalysis, error)
	RecommendLawyers(ctx context.Context, issue string) (*models.LawyerRecommendation, error)
}

// DefaultConsultationService is the production implementation.
type DefaultConsultationService struct {
	// Turns is written only for authenticated callers.
	Turns chatRepo.TurnStore
	// ScratchTurns holds anonymous sessions. Nil disables anonymous history.
	ScratchTurns chatRepo.TurnStore
	Generator    intelligence.Generator
	Timeout      time.Duration

	// Overridable for tests.
	Now          func() time.Time
	NewSessionID func() string
}
