package handlers

import (
	"net/http"

	"legalassist/models"
	"legalassist/services/user"
	"legalassist/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// UserHandler serves account and profile endpoints.
type UserHandler struct {
	UserService user.UserService
}

func NewUserHandler(us user.UserService) *UserHandler {
	return &UserHandler{UserService: us}
}

// RegisterHandler handles POST /api/auth/register.
func (h *UserHandler) RegisterHandler(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	resp, err := h.UserService.Register(c.Request.Context(), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	getLogger(c).Info("User registered", zap.String("userID", resp.User.ID), zap.String("userType", resp.User.UserType))
	c.JSON(http.StatusCreated, resp)
}

// LoginHandler handles POST /api/auth/login.
func (h *UserHandler) LoginHandler(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request body", err.Error())
		return
	}
	resp, err := h.UserService.Login(c.Request.Context(), req)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// LogoutHandler revokes the bearer token the request was authenticated with.
func (h *UserHandler) LogoutHandler(c *gin.Context) {
	if err := h.UserService.Logout(c.Request.Context(), c.GetString("token")); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

func (h *UserHandler) MeHandler(c *gin.Context) {
	usr, err := h.UserService.GetUserByID(c.Request.Context(), userID(c))
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, usr)
}

// CreateLawyerProfileHandler handles POST /api/lawyers/profile.
func (h *UserHandler) CreateLawyerProfileHandler(c *gin.Context) {
	var profile models.LawyerProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid profile data", err.Error())
		return
	}
	usr, err := h.UserService.CreateLawyerProfile(c.Request.Context(), userID(c), profile)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, usr)
}

// CreateClientProfileHandler handles POST /api/clients/profile.
func (h *UserHandler) CreateClientProfileHandler(c *gin.Context) {
	var profile models.ClientProfile
	if err := c.ShouldBindJSON(&profile); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid profile data", err.Error())
		return
	}
	usr, err := h.UserService.CreateClientProfile(c.Request.Context(), userID(c), profile)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, usr)
}
