package handlers

import (
	"net/http"

	"legalassist/models"
	"legalassist/services/consultation"
	"legalassist/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AIHandler serves the consultation assistant.
type AIHandler struct {
	Consultation consultation.ConsultationService
}

func NewAIHandler(cs consultation.ConsultationService) *AIHandler {
	return &AIHandler{Consultation: cs}
}

// ChatHandler handles POST /api/ai/chat. Authentication is optional.
func (h *AIHandler) ChatHandler(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	resp, err := h.Consultation.SubmitMessage(c.Request.Context(), userID(c), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	getLogger(c).Debug("Chat reply sent", zap.String("sessionID", resp.SessionID), zap.Bool("anonymous", userID(c) == ""))
	c.JSON(http.StatusOK, resp)
}

// ChatHistoryHandler handles GET /api/ai/chat/:sessionId.
func (h *AIHandler) ChatHistoryHandler(c *gin.Context) {
	turns, err := h.Consultation.GetSessionHistory(c.Request.Context(), userID(c), c.Param("sessionId"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, turns)
}

type recommendationRequest struct {
	LegalIssue string `json:"legalIssue"`
}

// LawyerRecommendationHandler handles POST /api/ai/lawyer-recommendations.
func (h *AIHandler) LawyerRecommendationHandler(c *gin.Context) {
	var req recommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	rec, err := h.Consultation.RecommendLawyers(c.Request.Context(), req.LegalIssue)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, rec)
}

type analyzeRequest struct {
	Text string `json:"text"`
}

// AnalyzeDocumentHandler handles POST /api/documents/analyze.
func (h *AIHandler) AnalyzeDocumentHandler(c *gin.Context) {
	var req analyzeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	analysis, err := h.Consultation.AnalyzeDocument(c.Request.Context(), req.Text)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, analysis)
}
