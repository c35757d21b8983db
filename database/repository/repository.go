package repository

import (
	"legalassist/config"
	"legalassist/database"
	chatRepo "legalassist/database/repository/chat"
	contentRepo "legalassist/database/repository/content"
	documentRepo "legalassist/database/repository/document"
	messageRepo "legalassist/database/repository/message"
	paymentRepo "legalassist/database/repository/payment"
	tokenRepo "legalassist/database/repository/token"
	userRepo "legalassist/database/repository/user"
	"legalassist/utils"

	"github.com/go-redis/redis/v8"
	"go.mongodb.org/mongo-driver/mongo"
)

// Repositories bundles every data-access dependency of the services.
type Repositories struct {
	Users userRepo.UserRepository
	// Turns holds authenticated consultation sessions.
	Turns chatRepo.TurnStore
	// ScratchTurns holds anonymous sessions and expires them.
	ScratchTurns chatRepo.TurnStore
	Documents    documentRepo.DocumentRepository
	Messages     messageRepo.MessageRepository
	Content      contentRepo.ContentRepository
	Transactions paymentRepo.TransactionRepository
	Tokens       tokenRepo.RevocationStore

	// Set only for the mongo driver; used by health checks.
	Mongo        *mongo.Client
	RedisClients []*redis.Client
}

// NewMongoRepositories wires MongoDB for durable data and Redis for expiring data.
func NewMongoRepositories(db *mongo.Database, cache, auth *redis.Client) *Repositories {
	return &Repositories{
		Users:        userRepo.NewMongoUserRepo(db),
		Turns:        chatRepo.NewMongoTurnStore(db),
		ScratchTurns: chatRepo.NewRedisTurnStore(cache, config.AppConfig.ChatSessionTTL),
		Documents:    documentRepo.NewMongoDocumentRepo(db),
		Messages:     messageRepo.NewMongoMessageRepo(db),
		Content:      contentRepo.NewMongoContentRepo(db),
		Transactions: paymentRepo.NewMongoTransactionRepo(db),
		Tokens:       tokenRepo.NewRedisRevocationStore(auth),
		Mongo:        db.Client(),
		RedisClients: []*redis.Client{cache, auth},
	}
}

// NewMemoryRepositories keeps everything in process memory.
func NewMemoryRepositories() *Repositories {
	return &Repositories{
		Users:        userRepo.NewMemoryUserRepo(),
		Turns:        chatRepo.NewMemoryTurnStore(),
		ScratchTurns: chatRepo.NewMemoryTurnStore(),
		Documents:    documentRepo.NewMemoryDocumentRepo(),
		Messages:     messageRepo.NewMemoryMessageRepo(),
		Content:      contentRepo.NewMemoryContentRepo(),
		Transactions: paymentRepo.NewMemoryTransactionRepo(),
		Tokens:       tokenRepo.NewMemoryRevocationStore(),
	}
}

// FromConfig selects the storage driver named by STORAGE_DRIVER.
func FromConfig() *Repositories {
	if config.UsesMemoryStorage() {
		utils.GetLogger().Warn("Using in-memory storage; data will not survive a restart")
		return NewMemoryRepositories()
	}
	return NewMongoRepositories(database.Database(), utils.GetCacheClient(), utils.GetAuthCacheClient())
}
