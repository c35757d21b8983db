package handlers

import (
	"net/http"

	"legalassist/services/document"
	"legalassist/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type DocumentHandler struct {
	DocumentService document.DocumentService
}

func NewDocumentHandler(ds document.DocumentService) *DocumentHandler {
	return &DocumentHandler{DocumentService: ds}
}

// CreateDocumentHandler registers an already-hosted file.
func (h *DocumentHandler) CreateDocumentHandler(c *gin.Context) {
	var req document.CreateDocumentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid document data", err.Error())
		return
	}
	doc, err := h.DocumentService.Create(c.Request.Context(), userID(c), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, doc)
}

// UploadDocumentHandler accepts a multipart form with "file", "title" and "description".
func (h *DocumentHandler) UploadDocumentHandler(c *gin.Context) {
	c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, document.MaxUploadSize+1<<20)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "file not provided", err.Error())
		return
	}
	f, err := fileHeader.Open()
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "file could not be read", err.Error())
		return
	}
	defer f.Close()

	doc, err := h.DocumentService.Upload(c.Request.Context(), userID(c), document.Upload{
		Title:       c.PostForm("title"),
		Description: c.PostForm("description"),
		Filename:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Size:        fileHeader.Size,
		Body:        f,
	})
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	getLogger(c).Info("Document uploaded", zap.String("documentID", doc.ID), zap.Int64("size", doc.FileSize))
	c.JSON(http.StatusCreated, doc)
}

func (h *DocumentHandler) ListDocumentsHandler(c *gin.Context) {
	docs, err := h.DocumentService.ListMine(c.Request.Context(), userID(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, docs)
}

func (h *DocumentHandler) SharedDocumentsHandler(c *gin.Context) {
	docs, err := h.DocumentService.ListSharedWithMe(c.Request.Context(), userID(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, docs)
}

type shareRequest struct {
	UserIDs []string `json:"userIds"`
}

func (h *DocumentHandler) ShareDocumentHandler(c *gin.Context) {
	var req shareRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	doc, err := h.DocumentService.Share(c.Request.Context(), userID(c), c.Param("id"), req.UserIDs)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

func (h *DocumentHandler) DeleteDocumentHandler(c *gin.Context) {
	if err := h.DocumentService.Delete(c.Request.Context(), userID(c), c.Param("id")); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Document deleted"})
}
