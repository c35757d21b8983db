package message

import (
	"context"
	"strings"
	"time"

	messageRepo "legalassist/database/repository/message"
	userRepo "legalassist/database/repository/user"
	"legalassist/models"
	"legalassist/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type SendMessageRequest struct {
	ReceiverID string `json:"receiverId"`
	Content    string `json:"content"`
}

type MessageService interface {
	Send(ctx context.Context, senderID string, req SendMessageRequest) (*models.Message, error)
	Conversation(ctx context.Context, userID, otherID string) ([]models.Message, error)
	MarkRead(ctx context.Context, userID, messageID string) error
	UnreadCount(ctx context.Context, userID string) (int64, error)
}

type DefaultMessageService struct {
	Repo  messageRepo.MessageRepository
	Users userRepo.UserRepository
}

func (s *DefaultMessageService) Send(ctx context.Context, senderID string, req SendMessageRequest) (*models.Message, error) {
	if strings.TrimSpace(req.Content) == "" || req.ReceiverID == "" {
		return nil, utils.ValidationError("receiverId and content are required")
	}
	if req.ReceiverID == senderID {
		return nil, utils.ValidationError("cannot send a message to yourself")
	}

	receiver, err := s.Users.GetByID(ctx, req.ReceiverID)
	if err != nil {
		utils.GetLogger().Error("SendMessage: receiver lookup failed", zap.Error(err))
		return nil, utils.PersistenceError("Failed to send message", err)
	}
	if receiver == nil {
		return nil, utils.NotFoundError("Receiver not found")
	}

	msg := &models.Message{
		ID:         uuid.New().String(),
		SenderID:   senderID,
		ReceiverID: req.ReceiverID,
		Content:    req.Content,
		CreatedAt:  time.Now(),
	}
	if err := s.Repo.Create(ctx, msg); err != nil {
		utils.GetLogger().Error("SendMessage: failed to save", zap.Error(err))
		return nil, utils.PersistenceError("Failed to send message", err)
	}
	return msg, nil
}

func (s *DefaultMessageService) Conversation(ctx context.Context, userID, otherID string) ([]models.Message, error) {
	msgs, err := s.Repo.ListConversation(ctx, userID, otherID)
	if err != nil {
		utils.GetLogger().Error("Conversation: failed", zap.Error(err))
		return nil, utils.PersistenceError("Failed to fetch messages", err)
	}
	return msgs, nil
}

// MarkRead is allowed only for the receiver.
func (s *DefaultMessageService) MarkRead(ctx context.Context, userID, messageID string) error {
	msg, err := s.Repo.GetByID(ctx, messageID)
	if err != nil {
		utils.GetLogger().Error("MarkRead: lookup failed", zap.Error(err))
		return utils.PersistenceError("Failed to update message", err)
	}
	if msg == nil {
		return utils.NotFoundError("Message not found")
	}
	if msg.ReceiverID != userID {
		return utils.ForbiddenError("Only the receiver can mark a message as read")
	}
	if msg.IsRead {
		return nil
	}
	if err := s.Repo.MarkRead(ctx, messageID); err != nil {
		utils.GetLogger().Error("MarkRead: failed", zap.Error(err))
		return utils.PersistenceError("Failed to update message", err)
	}
	return nil
}

func (s *DefaultMessageService) UnreadCount(ctx context.Context, userID string) (int64, error) {
	n, err := s.Repo.CountUnread(ctx, userID)
	if err != nil {
		utils.GetLogger().Error("UnreadCount: failed", zap.Error(err))
		return 0, utils.PersistenceError("Failed to count messages", err)
	}
	return n, nil
}
