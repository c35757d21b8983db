package handlers

import (
	"net/http"

	"legalassist/services/content"
	"legalassist/services/policy"
	"legalassist/utils"

	"github.com/gin-gonic/gin"
)

// ContentHandler serves legal resources, news and platform policies. All endpoints are public.
type ContentHandler struct {
	ContentService content.ContentService
	PolicyService  policy.PolicyService
}

func NewContentHandler(cs content.ContentService, ps policy.PolicyService) *ContentHandler {
	return &ContentHandler{ContentService: cs, PolicyService: ps}
}

func (h *ContentHandler) ListResourcesHandler(c *gin.Context) {
	out, err := h.ContentService.ListResources(c.Request.Context(), c.Query("category"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *ContentHandler) GetResourceHandler(c *gin.Context) {
	res, err := h.ContentService.GetResource(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *ContentHandler) ListNewsHandler(c *gin.Context) {
	out, err := h.ContentService.ListNews(c.Request.Context(), c.Query("category"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *ContentHandler) GetNewsHandler(c *gin.Context) {
	n, err := h.ContentService.GetNews(c.Request.Context(), c.Param("id"))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, n)
}

// PoliciesHandler handles GET /api/policies. Signed-in callers get the sections
// for their account type unless ?audience= is given.
func (h *ContentHandler) PoliciesHandler(c *gin.Context) {
	audience := c.Query("audience")
	if audience == "" {
		audience = c.GetString("userType")
	}
	sections, err := h.PolicyService.Sections(audience)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, sections)
}
