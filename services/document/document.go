package document

import (
	"context"
	"errors"
	"path"
	"strings"
	"time"

	"legalassist/models"
	"legalassist/services/storage"
	"legalassist/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// MaxUploadSize caps files accepted by Upload.
const MaxUploadSize = 10 << 20

func (s *DefaultDocumentService) Create(ctx context.Context, userID string, req CreateDocumentRequest) (*models.Document, error) {
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" || req.FileURL == "" {
		return nil, utils.ValidationError("title and fileUrl are required")
	}
	if req.FileSize < 0 {
		return nil, utils.ValidationError("fileSize cannot be negative")
	}

	doc := &models.Document{
		ID:          uuid.New().String(),
		UserID:      userID,
		Title:       req.Title,
		Description: req.Description,
		FileURL:     req.FileURL,
		FileType:    req.FileType,
		FileSize:    req.FileSize,
		CreatedAt:   time.Now(),
	}
	if err := s.Repo.Create(ctx, doc); err != nil {
		utils.GetLogger().Error("CreateDocument: failed to save", zap.Error(err))
		return nil, utils.PersistenceError("Failed to save document", err)
	}
	return doc, nil
}

// Upload streams the file to object storage, then records it.
func (s *DefaultDocumentService) Upload(ctx context.Context, userID string, up Upload) (*models.Document, error) {
	if up.Body == nil || up.Filename == "" {
		return nil, utils.ValidationError("file is required")
	}
	if up.Size > MaxUploadSize {
		return nil, utils.ValidationError("file exceeds the 10MB limit")
	}
	title := strings.TrimSpace(up.Title)
	if title == "" {
		title = up.Filename
	}

	obj, err := s.Storage.Upload(ctx, up.Body, "documents/"+userID, up.Filename)
	if err != nil {
		utils.GetLogger().Error("UploadDocument: storage upload failed", zap.String("userID", userID), zap.Error(err))
		if errors.Is(err, storage.ErrNotConfigured) {
			return nil, utils.ExternalError("File uploads are not available", err)
		}
		return nil, utils.ExternalError("Failed to upload file", err)
	}

	fileType := up.ContentType
	if fileType == "" {
		fileType = strings.TrimPrefix(path.Ext(up.Filename), ".")
	}
	size := obj.Size
	if size == 0 {
		size = up.Size
	}

	doc := &models.Document{
		ID:          uuid.New().String(),
		UserID:      userID,
		Title:       title,
		Description: up.Description,
		FileURL:     obj.URL,
		FileType:    fileType,
		FileSize:    size,
		StorageID:   obj.ID,
		CreatedAt:   time.Now(),
	}
	if err := s.Repo.Create(ctx, doc); err != nil {
		utils.GetLogger().Error("UploadDocument: failed to save metadata", zap.Error(err))
		if delErr := s.Storage.Delete(context.WithoutCancel(ctx), obj.ID); delErr != nil {
			utils.GetLogger().Warn("UploadDocument: orphaned stored object", zap.String("storageID", obj.ID), zap.Error(delErr))
		}
		return nil, utils.PersistenceError("Failed to save document", err)
	}
	return doc, nil
}

func (s *DefaultDocumentService) ListMine(ctx context.Context, userID string) ([]models.Document, error) {
	docs, err := s.Repo.ListByUser(ctx, userID)
	if err != nil {
		utils.GetLogger().Error("ListMine: failed", zap.String("userID", userID), zap.Error(err))
		return nil, utils.PersistenceError("Failed to fetch documents", err)
	}
	return docs, nil
}

func (s *DefaultDocumentService) ListSharedWithMe(ctx context.Context, userID string) ([]models.Document, error) {
	docs, err := s.Repo.ListSharedWith(ctx, userID)
	if err != nil {
		utils.GetLogger().Error("ListSharedWithMe: failed", zap.String("userID", userID), zap.Error(err))
		return nil, utils.PersistenceError("Failed to fetch shared documents", err)
	}
	return docs, nil
}

func (s *DefaultDocumentService) owned(ctx context.Context, userID, documentID string) (*models.Document, error) {
	doc, err := s.Repo.GetByID(ctx, documentID)
	if err != nil {
		utils.GetLogger().Error("document lookup failed", zap.String("documentID", documentID), zap.Error(err))
		return nil, utils.PersistenceError("Failed to fetch document", err)
	}
	if doc == nil {
		return nil, utils.NotFoundError("Document not found")
	}
	if !doc.OwnedBy(userID) {
		return nil, utils.ForbiddenError("Not authorized to modify this document")
	}
	return doc, nil
}

// Share grants read access to existing users. Only the owner may share.
func (s *DefaultDocumentService) Share(ctx context.Context, userID, documentID string, with []string) (*models.Document, error) {
	if len(with) == 0 {
		return nil, utils.ValidationError("userIds are required")
	}
	if _, err := s.owned(ctx, userID, documentID); err != nil {
		return nil, err
	}
	for _, id := range with {
		if id == userID {
			return nil, utils.ValidationError("cannot share a document with its owner")
		}
		u, err := s.Users.GetByID(ctx, id)
		if err != nil {
			return nil, utils.PersistenceError("Failed to fetch user", err)
		}
		if u == nil {
			return nil, utils.NotFoundError("User " + id + " not found")
		}
	}

	doc, err := s.Repo.Share(ctx, documentID, with)
	if err != nil {
		utils.GetLogger().Error("ShareDocument: failed", zap.String("documentID", documentID), zap.Error(err))
		return nil, utils.PersistenceError("Failed to share document", err)
	}
	if doc == nil {
		return nil, utils.NotFoundError("Document not found")
	}
	return doc, nil
}

// Delete removes the record and, for uploaded files, the stored object.
func (s *DefaultDocumentService) Delete(ctx context.Context, userID, documentID string) error {
	doc, err := s.owned(ctx, userID, documentID)
	if err != nil {
		return err
	}
	if err := s.Repo.Delete(ctx, documentID); err != nil {
		utils.GetLogger().Error("DeleteDocument: failed", zap.String("documentID", documentID), zap.Error(err))
		return utils.PersistenceError("Failed to delete document", err)
	}
	if doc.StorageID != "" {
		if err := s.Storage.Delete(ctx, doc.StorageID); err != nil {
			utils.GetLogger().Warn("DeleteDocument: stored object not removed", zap.String("storageID", doc.StorageID), zap.Error(err))
		}
	}
	return nil
}
