package routes

import (
	"net/http"
	"strings"
	"time"

	"legalassist/config"
	"legalassist/handlers"
	"legalassist/middleware"
	"legalassist/models"
	"legalassist/monitoring"
	"legalassist/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func requireAuth(hb *handlers.HandlerBundle) gin.HandlerFunc {
	return middleware.JWTAuthUserMiddleware(hb.UserRepo, hb.Tokens, false)
}

func optionalAuth(hb *handlers.HandlerBundle) gin.HandlerFunc {
	return middleware.JWTAuthUserMiddleware(hb.UserRepo, hb.Tokens, true)
}

// RegisterAuthRoutes registers account and profile endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.RegisterHandler)
		api.POST("/login", hb.LoginHandler)

		// Protected routes (Require Authentication)
		api.Use(requireAuth(hb))
		api.POST("/logout", hb.LogoutHandler)
		api.GET("/me", hb.MeHandler)
	}

	clients := r.Group("/api/clients")
	{
		clients.Use(requireAuth(hb), middleware.RequireUserType(models.UserTypeClient))
		clients.POST("/profile", hb.CreateClientProfileHandler)
	}
}

// RegisterLawyerRoutes registers the public directory and lawyer profile creation.
func RegisterLawyerRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/lawyers")
	{
		api.GET("", hb.SearchLawyersHandler)
		api.GET("/experience-levels", hb.ExperienceLevelsHandler)
		api.GET("/:id", hb.GetLawyerHandler)

		api.POST("/profile", requireAuth(hb), hb.CreateLawyerProfileHandler)
	}
}

// RegisterAIRoutes registers consultation assistant endpoints.
func RegisterAIRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/ai")
	{
		// Anonymous callers may chat; their sessions are not kept durably.
		api.POST("/chat", optionalAuth(hb), hb.ChatHandler)
		api.POST("/lawyer-recommendations", optionalAuth(hb), hb.LawyerRecommendationHandler)

		api.GET("/chat/:sessionId", requireAuth(hb), hb.ChatHistoryHandler)
	}
}

// RegisterDocumentRoutes registers document endpoints. All require authentication.
func RegisterDocumentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/documents")
	{
		api.Use(requireAuth(hb))
		api.GET("", hb.ListDocumentsHandler)
		api.GET("/shared", hb.SharedDocumentsHandler)
		api.POST("", hb.CreateDocumentHandler)
		api.POST("/upload", hb.UploadDocumentHandler)
		api.POST("/analyze", hb.AnalyzeDocumentHandler)
		api.POST("/:id/share", hb.ShareDocumentHandler)
		api.DELETE("/:id", hb.DeleteDocumentHandler)
	}
}

func RegisterMessageRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/messages")
	{
		api.Use(requireAuth(hb))
		api.POST("", hb.SendMessageHandler)
		api.GET("/unread/count", hb.UnreadCountHandler)
		api.GET("/:id", hb.ConversationHandler)
		api.POST("/:id/read", hb.MarkReadHandler)
	}
}

func RegisterContentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	resources := r.Group("/api/resources")
	{
		resources.GET("", hb.ListResourcesHandler)
		resources.GET("/:id", hb.GetResourceHandler)
	}
	news := r.Group("/api/news")
	{
		news.GET("", hb.ListNewsHandler)
		news.GET("/:id", hb.GetNewsHandler)
	}
	r.GET("/api/policies", optionalAuth(hb), hb.PoliciesHandler)
}

func RegisterPaymentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/payments")
	{
		api.Use(requireAuth(hb))
		api.GET("", hb.ListPaymentsHandler)
		api.POST("/consultations", hb.CreatePaymentHandler)
		api.POST("/:id/confirm", hb.ConfirmPaymentHandler)
	}
}

// RegisterHealthRoute reports the last backend health snapshot.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		status := utils.GetHealthStatus()
		code := http.StatusOK
		state := "ok"
		if !status.Healthy() {
			code = http.StatusServiceUnavailable
			state = "degraded"
		}
		c.JSON(code, gin.H{"status": state, "backends": status})
	})
}

func RegisterMetricsRoute(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(monitoring.Handler()))
}

func allowedOrigins() []string {
	var out []string
	for _, o := range strings.Split(config.AppConfig.CORSAllowOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	if len(out) == 0 {
		return []string{"*"}
	}
	return out
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	origins := allowedOrigins()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: len(origins) > 0 && origins[0] != "*",
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterLawyerRoutes(r, hb)
	RegisterAIRoutes(r, hb)
	RegisterDocumentRoutes(r, hb)
	RegisterMessageRoutes(r, hb)
	RegisterContentRoutes(r, hb)
	RegisterPaymentRoutes(r, hb)
	RegisterHealthRoute(r)
	RegisterMetricsRoute(r)
}
