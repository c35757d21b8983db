package payment

import (
	"context"
	"errors"
	"testing"

	paymentRepo "legalassist/database/repository/payment"
	userRepo "legalassist/database/repository/user"
	"legalassist/models"
	"legalassist/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGateway struct {
	created  []int64
	metadata map[string]string
	status   string
	err      error
}

func (g *fakeGateway) CreateIntent(_ context.Context, amount int64, currency string, metadata map[string]string) (*Intent, error) {
	if g.err != nil {
		return nil, g.err
	}
	g.created = append(g.created, amount)
	g.metadata = metadata
	return &Intent{ID: "pi_123", ClientSecret: "pi_123_secret", Status: "requires_payment_method"}, nil
}

func (g *fakeGateway) GetIntent(_ context.Context, id string) (*Intent, error) {
	if g.err != nil {
		return nil, g.err
	}
	return &Intent{ID: id, Status: g.status}, nil
}

func newTestService(t *testing.T) (*DefaultPaymentService, *fakeGateway) {
	t.Helper()
	users := userRepo.NewMemoryUserRepo()
	lawyer := models.User{
		ID: "lawyer-1", Email: "l@example.com", Username: "l", FirstName: "Ada", LastName: "Stone",
		UserType:      models.UserTypeLawyer,
		LawyerProfile: &models.LawyerProfile{Specialization: "Tax Law", HourlyRate: 250},
	}
	require.NoError(t, users.Create(context.Background(), &lawyer))
	gw := &fakeGateway{}
	return &DefaultPaymentService{Repo: paymentRepo.NewMemoryTransactionRepo(), Users: users, Gateway: gw}, gw
}

func TestConsultationAmount(t *testing.T) {
	assert.Equal(t, int64(25000), ConsultationAmount(250, 1))
	assert.Equal(t, int64(37500), ConsultationAmount(250, 1.5))
	assert.Equal(t, int64(4167), ConsultationAmount(250, 1.0/6.0))
}

func TestCreateConsultationPayment(t *testing.T) {
	svc, gw := newTestService(t)
	ctx := context.Background()

	out, err := svc.CreateConsultationPayment(ctx, "client-1", models.ConsultationPaymentRequest{LawyerID: "lawyer-1", Hours: 2})
	require.NoError(t, err)
	assert.Equal(t, "pi_123_secret", out.ClientSecret)
	assert.Equal(t, int64(50000), out.Transaction.Amount)
	assert.Equal(t, "usd", out.Transaction.Currency)
	assert.Equal(t, models.TransactionPending, out.Transaction.Status)
	assert.Equal(t, "pi_123", out.Transaction.ProviderRef)
	assert.Equal(t, "2 hour consultation with Ada Stone", out.Transaction.Description)
	assert.Equal(t, []int64{50000}, gw.created)
	assert.Equal(t, out.Transaction.ID, gw.metadata["transactionId"])

	txs, err := svc.ListTransactions(ctx, "client-1")
	require.NoError(t, err)
	assert.Len(t, txs, 1)
}

func TestCreateConsultationPaymentErrors(t *testing.T) {
	svc, gw := newTestService(t)
	ctx := context.Background()

	for _, hours := range []float64{0, -1, 24.5} {
		_, err := svc.CreateConsultationPayment(ctx, "client-1", models.ConsultationPaymentRequest{LawyerID: "lawyer-1", Hours: hours})
		assert.ErrorIs(t, err, utils.ErrValidation, "hours=%v", hours)
	}

	_, err := svc.CreateConsultationPayment(ctx, "client-1", models.ConsultationPaymentRequest{LawyerID: "nobody", Hours: 1})
	assert.ErrorIs(t, err, utils.ErrNotFound)

	gw.err = errors.New("stripe down")
	_, err = svc.CreateConsultationPayment(ctx, "client-1", models.ConsultationPaymentRequest{LawyerID: "lawyer-1", Hours: 1})
	assert.ErrorIs(t, err, utils.ErrExternal)

	txs, err := svc.ListTransactions(ctx, "client-1")
	require.NoError(t, err)
	assert.Empty(t, txs)

	svc.Gateway = UnconfiguredGateway{}
	_, err = svc.CreateConsultationPayment(ctx, "client-1", models.ConsultationPaymentRequest{LawyerID: "lawyer-1", Hours: 1})
	assert.Equal(t, 502, utils.StatusFor(err))
}

func TestConfirmPayment(t *testing.T) {
	svc, gw := newTestService(t)
	ctx := context.Background()
	out, err := svc.CreateConsultationPayment(ctx, "client-1", models.ConsultationPaymentRequest{LawyerID: "lawyer-1", Hours: 1})
	require.NoError(t, err)
	id := out.Transaction.ID

	_, err = svc.ConfirmPayment(ctx, "someone-else", id)
	assert.ErrorIs(t, err, utils.ErrForbidden)
	_, err = svc.ConfirmPayment(ctx, "client-1", "missing")
	assert.ErrorIs(t, err, utils.ErrNotFound)

	gw.status = "processing"
	tx, err := svc.ConfirmPayment(ctx, "client-1", id)
	require.NoError(t, err)
	assert.Equal(t, models.TransactionPending, tx.Status)

	gw.status = "succeeded"
	tx, err = svc.ConfirmPayment(ctx, "client-1", id)
	require.NoError(t, err)
	assert.Equal(t, models.TransactionCompleted, tx.Status)

	gw.status = "canceled"
	tx, err = svc.ConfirmPayment(ctx, "client-1", id)
	require.NoError(t, err)
	assert.Equal(t, models.TransactionCompleted, tx.Status, "settled transactions are not refreshed")
}

func TestTransactionStatus(t *testing.T) {
	assert.Equal(t, models.TransactionCompleted, transactionStatus("succeeded"))
	assert.Equal(t, models.TransactionFailed, transactionStatus("canceled"))
	assert.Equal(t, models.TransactionFailed, transactionStatus("requires_payment_method"))
	assert.Equal(t, models.TransactionPending, transactionStatus("requires_action"))
}
