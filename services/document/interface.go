package document

import (
	"context"
	"io"

	documentRepo "legalassist/database/repository/document"
	userRepo "legalassist/database/repository/user"
	"legalassist/models"
	"legalassist/services/storage"
)

// CreateDocumentRequest registers metadata for a file hosted elsewhere.
type CreateDocumentRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	FileURL     string `json:"fileUrl"`
	FileType    string `json:"fileType"`
	FileSize    int64  `json:"fileSize"`
}

// Upload is a file streamed through the API into object storage.
type Upload struct {
	Title       string
	Description string
	Filename    string
	ContentType string
	Size        int64
	Body        io.Reader
}

type DocumentService interface {
	Create(ctx context.Context, userID string, req CreateDocumentRequest) (*models.Document, error)
	Upload(ctx context.Context, userID string, up Upload) (*models.Document, error)
	ListMine(ctx context.Context, userID string) ([]models.Document, error)
	ListSharedWithMe(ctx context.Context, userID string) ([]models.Document, error)
	Share(ctx context.Context, userID, documentID string, with []string) (*models.Document, error)
	Delete(ctx context.Context, userID, documentID string) error
}

type DefaultDocumentService struct {
	Repo    documentRepo.DocumentRepository
	Users   userRepo.UserRepository
	Storage storage.StorageService
}
