package models

import "time"

const (
	TransactionPending   = "pending"
	TransactionCompleted = "completed"
	TransactionFailed    = "failed"
)

// Transaction records a consultation payment. Amount is in cents.
type Transaction struct {
	ID            string    `bson:"id" json:"id"`
	UserID        string    `bson:"userId" json:"userId"`
	LawyerID      string    `bson:"lawyerId" json:"lawyerId"`
	Amount        int64     `bson:"amount" json:"amount"`
	Currency      string    `bson:"currency" json:"currency"`
	Status        string    `bson:"status" json:"status"`
	PaymentMethod string    `bson:"paymentMethod" json:"paymentMethod"`
	ProviderRef   string    `bson:"providerRef,omitempty" json:"providerRef,omitempty"`
	Description   string    `bson:"description,omitempty" json:"description,omitempty"`
	CreatedAt     time.Time `bson:"createdAt" json:"createdAt"`
}

type ConsultationPaymentRequest struct {
	LawyerID string  `json:"lawyerId"`
	Hours    float64 `json:"hours"`
}

type ConsultationPayment struct {
	Transaction  *Transaction `json:"transaction"`
	ClientSecret string       `json:"clientSecret,omitempty"`
}
