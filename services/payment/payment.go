package payment

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"time"

	paymentRepo "legalassist/database/repository/payment"
	userRepo "legalassist/database/repository/user"
	"legalassist/models"
	"legalassist/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	Currency        = "usd"
	MaxSessionHours = 24
)

type PaymentService interface {
	CreateConsultationPayment(ctx context.Context, userID string, req models.ConsultationPaymentRequest) (*models.ConsultationPayment, error)
	ListTransactions(ctx context.Context, userID string) ([]models.Transaction, error)
	ConfirmPayment(ctx context.Context, userID, transactionID string) (*models.Transaction, error)
}

type DefaultPaymentService struct {
	Repo    paymentRepo.TransactionRepository
	Users   userRepo.UserRepository
	Gateway PaymentGateway
}

// ConsultationAmount returns the charge in cents for hours at hourlyRate dollars.
func ConsultationAmount(hourlyRate int, hours float64) int64 {
	return int64(math.Round(float64(hourlyRate) * hours * 100))
}

func (s *DefaultPaymentService) CreateConsultationPayment(ctx context.Context, userID string, req models.ConsultationPaymentRequest) (*models.ConsultationPayment, error) {
	if req.LawyerID == "" {
		return nil, utils.ValidationError("lawyerId is required")
	}
	if req.Hours <= 0 || req.Hours > MaxSessionHours {
		return nil, utils.ValidationError("hours must be greater than 0 and at most 24")
	}

	lawyer, err := s.Users.GetLawyerByID(ctx, req.LawyerID)
	if err != nil {
		utils.GetLogger().Error("CreateConsultationPayment: lawyer lookup failed", zap.Error(err))
		return nil, utils.PersistenceError("Failed to fetch lawyer", err)
	}
	if lawyer == nil || lawyer.LawyerProfile == nil {
		return nil, utils.NotFoundError("Lawyer not found")
	}
	amount := ConsultationAmount(lawyer.LawyerProfile.HourlyRate, req.Hours)
	if amount <= 0 {
		return nil, utils.ValidationError("Lawyer has no billable rate")
	}

	tx := &models.Transaction{
		ID:            uuid.New().String(),
		UserID:        userID,
		LawyerID:      lawyer.ID,
		Amount:        amount,
		Currency:      Currency,
		Status:        models.TransactionPending,
		PaymentMethod: "card",
		Description:   fmt.Sprintf("%s hour consultation with %s", strconv.FormatFloat(req.Hours, 'f', -1, 64), lawyer.FullName()),
		CreatedAt:     time.Now(),
	}

	intent, err := s.Gateway.CreateIntent(ctx, amount, Currency, map[string]string{
		"transactionId": tx.ID,
		"userId":        userID,
		"lawyerId":      lawyer.ID,
	})
	if err != nil {
		utils.GetLogger().Error("CreateConsultationPayment: gateway failed", zap.String("transactionID", tx.ID), zap.Error(err))
		return nil, utils.ExternalError("Payment provider unavailable", err)
	}
	tx.ProviderRef = intent.ID

	if err := s.Repo.Create(ctx, tx); err != nil {
		utils.GetLogger().Error("CreateConsultationPayment: failed to save", zap.Error(err))
		return nil, utils.PersistenceError("Failed to record transaction", err)
	}
	utils.GetLogger().Info("Consultation payment created",
		zap.String("transactionID", tx.ID), zap.String("lawyerID", lawyer.ID), zap.Int64("amount", amount))

	return &models.ConsultationPayment{Transaction: tx, ClientSecret: intent.ClientSecret}, nil
}

func (s *DefaultPaymentService) ListTransactions(ctx context.Context, userID string) ([]models.Transaction, error) {
	txs, err := s.Repo.ListByUser(ctx, userID)
	if err != nil {
		utils.GetLogger().Error("ListTransactions: failed", zap.String("userID", userID), zap.Error(err))
		return nil, utils.PersistenceError("Failed to fetch transactions", err)
	}
	return txs, nil
}

// ConfirmPayment refreshes a pending transaction from the provider.
func (s *DefaultPaymentService) ConfirmPayment(ctx context.Context, userID, transactionID string) (*models.Transaction, error) {
	tx, err := s.Repo.GetByID(ctx, transactionID)
	if err != nil {
		return nil, utils.PersistenceError("Failed to fetch transaction", err)
	}
	if tx == nil {
		return nil, utils.NotFoundError("Transaction not found")
	}
	if tx.UserID != userID {
		return nil, utils.ForbiddenError("Not authorized to access this transaction")
	}
	if tx.Status != models.TransactionPending || tx.ProviderRef == "" {
		return tx, nil
	}

	intent, err := s.Gateway.GetIntent(ctx, tx.ProviderRef)
	if err != nil {
		utils.GetLogger().Error("ConfirmPayment: gateway failed", zap.String("transactionID", tx.ID), zap.Error(err))
		return nil, utils.ExternalError("Payment provider unavailable", err)
	}
	status := transactionStatus(intent.Status)
	if status == tx.Status {
		return tx, nil
	}
	if err := s.Repo.UpdateStatus(ctx, tx.ID, status); err != nil {
		return nil, utils.PersistenceError("Failed to update transaction", err)
	}
	tx.Status = status
	return tx, nil
}
