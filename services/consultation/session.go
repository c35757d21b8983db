package consultation

import (
	"context"
	"sort"
	"strings"
	"time"

	chatRepo "legalassist/database/repository/chat"
	"legalassist/models"
	"legalassist/services/intelligence"
	"legalassist/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

func (s *DefaultConsultationService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *DefaultConsultationService) newSessionID() string {
	if s.NewSessionID != nil {
		return s.NewSessionID()
	}
	return uuid.New().String()
}

func (s *DefaultConsultationService) timeout() time.Duration {
	if s.Timeout > 0 {
		return s.Timeout
	}
	return DefaultTimeout
}

func (s *DefaultConsultationService) storeFor(userID string) chatRepo.TurnStore {
	if userID != "" {
		return s.Turns
	}
	return s.ScratchTurns
}

// loadTurns merges a session's durable and anonymous turns by creation time.
// Signed-in callers only see the durable turns they own.
func (s *DefaultConsultationService) loadTurns(ctx context.Context, userID, sessionID string) ([]models.ChatTurn, error) {
	durable, err := s.Turns.ListTurns(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	turns := make([]models.ChatTurn, 0, len(durable))
	for _, t := range durable {
		if userID == "" || t.UserID == userID {
			turns = append(turns, t)
		}
	}
	if s.ScratchTurns == nil {
		return turns, nil
	}

	scratch, err := s.ScratchTurns.ListTurns(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if len(scratch) == 0 {
		return turns, nil
	}
	turns = append(turns, scratch...)
	sort.SliceStable(turns, func(i, j int) bool {
		return turns[i].CreatedAt.Before(turns[j].CreatedAt)
	})
	return turns, nil
}

func toHistory(turns []models.ChatTurn) []models.ChatMessage {
	history := make([]models.ChatMessage, 0, len(turns))
	for _, t := range turns {
		history = append(history, models.ChatMessage{Role: t.Role(), Content: t.Content})
	}
	return history
}

// SubmitMessage validates, loads history, generates and then appends the user
// and assistant turns. Generation problems become a canned reply; only
// validation and storage failures are returned as errors. The generation call
// and both writes run detached from ctx cancellation.
func (s *DefaultConsultationService) SubmitMessage(ctx context.Context, userID string, req models.ChatRequest) (*models.ChatResponse, error) {
	if strings.TrimSpace(req.Message) == "" {
		return nil, utils.ValidationError("Message is required")
	}
	submittedAt := s.now()
	work := context.WithoutCancel(ctx)

	sessionID := req.SessionID
	var history []models.ChatMessage
	if sessionID == "" {
		sessionID = s.newSessionID()
	} else {
		turns, err := s.loadTurns(work, userID, sessionID)
		if err != nil {
			utils.GetLogger().Error("SubmitMessage: failed to load history", zap.String("sessionId", sessionID), zap.Error(err))
			return nil, utils.PersistenceError("Failed to load conversation", err)
		}
		history = toHistory(turns)
	}

	reply := s.complete(work, "chat", intelligence.GenerationRequest{
		SystemInstruction: SystemInstruction,
		History:           history,
		Message:           req.Message,
	})
	if reply.failed() {
		reply.text = FailureReply
		if reply.reason == reasonEmpty {
			reply.text = EmptyReply
		}
	}

	if store := s.storeFor(userID); store != nil {
		if err := s.appendExchange(work, store, userID, sessionID, req.Message, reply.text, submittedAt); err != nil {
			utils.GetLogger().Error("SubmitMessage: failed to store turns", zap.String("sessionId", sessionID), zap.Error(err))
			return nil, utils.PersistenceError("Failed to save conversation", err)
		}
	}

	return &models.ChatResponse{Response: reply.text, SessionID: sessionID}, nil
}

// appendExchange writes the user turn, then the assistant turn stamped no
// earlier than the user turn.
func (s *DefaultConsultationService) appendExchange(ctx context.Context, store chatRepo.TurnStore, userID, sessionID, message, reply string, submittedAt time.Time) error {
	userTurn := &models.ChatTurn{
		ID:        uuid.New().String(),
		SessionID: sessionID,
		UserID:    userID,
		Content:   message,
		CreatedAt: submittedAt,
	}
	if err := store.AppendTurn(ctx, userTurn); err != nil {
		return err
	}

	repliedAt := s.now()
	if repliedAt.Before(submittedAt) {
		repliedAt = submittedAt
	}
	return store.AppendTurn(ctx, &models.ChatTurn{
		ID:        uuid.New().String(),
		SessionID: sessionID,
		UserID:    userID,
		Content:   reply,
		IsFromAI:  true,
		CreatedAt: repliedAt,
	})
}

func (s *DefaultConsultationService) GetSessionHistory(ctx context.Context, userID, sessionID string) ([]models.ChatTurn, error) {
	if sessionID == "" {
		return nil, utils.ValidationError("Session ID is required")
	}
	turns, err := s.Turns.ListTurns(ctx, sessionID)
	if err != nil {
		utils.GetLogger().Error("GetSessionHistory: failed to load turns", zap.String("sessionId", sessionID), zap.Error(err))
		return nil, utils.PersistenceError("Failed to load conversation", err)
	}

	owned := make([]models.ChatTurn, 0, len(turns))
	for _, t := range turns {
		if t.UserID == userID {
			owned = append(owned, t)
		}
	}
	return owned, nil
}
