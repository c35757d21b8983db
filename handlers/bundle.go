package handlers

import (
	tokenRepo "legalassist/database/repository/token"
	userRepoPkg "legalassist/database/repository/user"

	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	UserRepo userRepoPkg.UserRepository
	Tokens   tokenRepo.RevocationStore

	// Auth and profile endpoints
	RegisterHandler            gin.HandlerFunc
	LoginHandler               gin.HandlerFunc
	LogoutHandler              gin.HandlerFunc
	MeHandler                  gin.HandlerFunc
	CreateLawyerProfileHandler gin.HandlerFunc
	CreateClientProfileHandler gin.HandlerFunc

	// Lawyer directory
	SearchLawyersHandler    gin.HandlerFunc
	GetLawyerHandler        gin.HandlerFunc
	ExperienceLevelsHandler gin.HandlerFunc

	// AI endpoints
	ChatHandler                 gin.HandlerFunc
	ChatHistoryHandler          gin.HandlerFunc
	LawyerRecommendationHandler gin.HandlerFunc
	AnalyzeDocumentHandler      gin.HandlerFunc

	// Documents
	CreateDocumentHandler  gin.HandlerFunc
	UploadDocumentHandler  gin.HandlerFunc
	ListDocumentsHandler   gin.HandlerFunc
	SharedDocumentsHandler gin.HandlerFunc
	ShareDocumentHandler   gin.HandlerFunc
	DeleteDocumentHandler  gin.HandlerFunc

	// Messages
	SendMessageHandler  gin.HandlerFunc
	ConversationHandler gin.HandlerFunc
	MarkReadHandler     gin.HandlerFunc
	UnreadCountHandler  gin.HandlerFunc

	// Resources, news and policies
	ListResourcesHandler gin.HandlerFunc
	GetResourceHandler   gin.HandlerFunc
	ListNewsHandler      gin.HandlerFunc
	GetNewsHandler       gin.HandlerFunc
	PoliciesHandler      gin.HandlerFunc

	// Payments
	CreatePaymentHandler  gin.HandlerFunc
	ListPaymentsHandler   gin.HandlerFunc
	ConfirmPaymentHandler gin.HandlerFunc
}

// Services are the dependencies NewHandlerBundle wires into handlers.
type Services struct {
	UserRepo  userRepoPkg.UserRepository
	Tokens    tokenRepo.RevocationStore
	Users     *UserHandler
	Lawyers   *LawyerHandler
	AI        *AIHandler
	Documents *DocumentHandler
	Messages  *MessageHandler
	Content   *ContentHandler
	Payments  *PaymentHandler
}

func NewHandlerBundle(s Services) *HandlerBundle {
	return &HandlerBundle{
		UserRepo: s.UserRepo,
		Tokens:   s.Tokens,

		RegisterHandler:            s.Users.RegisterHandler,
		LoginHandler:               s.Users.LoginHandler,
		LogoutHandler:              s.Users.LogoutHandler,
		MeHandler:                  s.Users.MeHandler,
		CreateLawyerProfileHandler: s.Users.CreateLawyerProfileHandler,
		CreateClientProfileHandler: s.Users.CreateClientProfileHandler,

		SearchLawyersHandler:    s.Lawyers.SearchLawyersHandler,
		GetLawyerHandler:        s.Lawyers.GetLawyerHandler,
		ExperienceLevelsHandler: s.Lawyers.ExperienceLevelsHandler,

		ChatHandler:                 s.AI.ChatHandler,
		ChatHistoryHandler:          s.AI.ChatHistoryHandler,
		LawyerRecommendationHandler: s.AI.LawyerRecommendationHandler,
		AnalyzeDocumentHandler:      s.AI.AnalyzeDocumentHandler,

		CreateDocumentHandler:  s.Documents.CreateDocumentHandler,
		UploadDocumentHandler:  s.Documents.UploadDocumentHandler,
		ListDocumentsHandler:   s.Documents.ListDocumentsHandler,
		SharedDocumentsHandler: s.Documents.SharedDocumentsHandler,
		ShareDocumentHandler:   s.Documents.ShareDocumentHandler,
		DeleteDocumentHandler:  s.Documents.DeleteDocumentHandler,

		SendMessageHandler:  s.Messages.SendMessageHandler,
		ConversationHandler: s.Messages.ConversationHandler,
		MarkReadHandler:     s.Messages.MarkReadHandler,
		UnreadCountHandler:  s.Messages.UnreadCountHandler,

		ListResourcesHandler: s.Content.ListResourcesHandler,
		GetResourceHandler:   s.Content.GetResourceHandler,
		ListNewsHandler:      s.Content.ListNewsHandler,
		GetNewsHandler:       s.Content.GetNewsHandler,
		PoliciesHandler:      s.Content.PoliciesHandler,

		CreatePaymentHandler:  s.Payments.CreatePaymentHandler,
		ListPaymentsHandler:   s.Payments.ListPaymentsHandler,
		ConfirmPaymentHandler: s.Payments.ConfirmPaymentHandler,
	}
}
