package handlers

import (
	"net/http"

	"legalassist/models"
	"legalassist/services/lawyer"
	"legalassist/utils"

	"github.com/gin-gonic/gin"
)

// LawyerHandler serves the lawyer directory.
type LawyerHandler struct {
	LawyerService lawyer.LawyerService
}

func NewLawyerHandler(ls lawyer.LawyerService) *LawyerHandler {
	return &LawyerHandler{LawyerService: ls}
}

// SearchLawyersHandler handles GET /api/lawyers. Every query parameter is optional.
func (h *LawyerHandler) SearchLawyersHandler(c *gin.Context) {
	var criteria models.SearchCriteria
	if err := c.ShouldBindQuery(&criteria); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid search parameters", err.Error())
		return
	}
	lawyers, err := h.LawyerService.SearchLawyers(c.Request.Context(), criteria)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, lawyers)
}

func (h *LawyerHandler) GetLawyerHandler(c *gin.Context) {
	l, err := h.LawyerService.GetLawyerByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, l)
}

func (h *LawyerHandler) ExperienceLevelsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, h.LawyerService.ExperienceLevels())
}
