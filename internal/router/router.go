package router

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "brokerdoc/docs"
	"brokerdoc/internal/handler"
	"brokerdoc/internal/middleware"
	"brokerdoc/internal/service"
)

// Setup configures the Gin engine with all routes and middleware.
func Setup(
	authSvc service.AuthService,
	allowedOrigins []string,
	authH *handler.AuthHandler,
	chatH *handler.ChatHandler,
	convH *handler.ConversationHandler,
	uploadH *handler.UploadHandler,
	templateH *handler.TemplateHandler,
	docH *handler.DocumentHandler,
	healthH *handler.HealthHandler,
) *gin.Engine {
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.CORS(allowedOrigins))

	// Health checks
	r.GET("/healthz", healthH.Liveness)
	r.GET("/readyz", healthH.Readiness)

	// API documentation
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := r.Group("/api/v1")

	// Public auth routes
	auth := v1.Group("/auth")
	auth.POST("/register", authH.Register)
	auth.POST("/login", authH.Login)
	auth.POST("/refresh", authH.RefreshToken)

	// Protected routes - require valid JWT
	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(authSvc))

	protected.GET("/auth/me", authH.Me)

	// Chat (SSE)
	protected.POST("/chat", chatH.Stream)

	// Conversations
	convs := protected.Group("/conversations")
	convs.POST("", convH.Create)
	convs.GET("", convH.List)
	convs.GET("/:id", convH.GetByID)
	convs.PATCH("/:id", convH.Rename)
	convs.DELETE("/:id", convH.Delete)
	convs.GET("/:id/messages", convH.Messages)
	convs.GET("/:id/uploads", uploadH.List)

	// Uploads
	uploads := protected.Group("/uploads")
	uploads.POST("", uploadH.Upload)
	uploads.GET("/:id/download", uploadH.DownloadURL)

	// Templates
	templates := protected.Group("/templates")
	templates.GET("", templateH.List)
	templates.GET("/resolve", templateH.Resolve)
	templates.GET("/:id", templateH.GetByID)
	templates.POST("/:id/validate", templateH.Validate)

	// Generated documents
	docs := protected.Group("/documents")
	docs.POST("/fill-template", docH.FillTemplate)
	docs.GET("", docH.List)
	docs.GET("/export", docH.Export)
	docs.GET("/:id", docH.GetByID)
	docs.PATCH("/:id/fields", docH.UpdateField)
	docs.POST("/:id/finalize", docH.Finalize)

	return r
}
