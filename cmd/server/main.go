package main

import (
	"fmt"
	"log"
	"net/http"

	"brokerdoc/internal/config"
	"brokerdoc/internal/email/noop"
	"brokerdoc/internal/email/ses"
	"brokerdoc/internal/handler"
	"brokerdoc/internal/llm/openai"
	"brokerdoc/internal/pdffill"
	"brokerdoc/internal/port"
	"brokerdoc/internal/repository/postgres"
	"brokerdoc/internal/router"
	"brokerdoc/internal/service"
	s3storage "brokerdoc/internal/storage/s3"
)

// @title        BrokerDoc API
// @version      1.0
// @description  Backend for real-estate brokers: streaming chat assistant, PDF uploads, and automated Ontario agreement generation.
// @BasePath     /api/v1
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	userRepo := postgres.NewUserRepo(db)
	convRepo := postgres.NewConversationRepo(db)
	msgRepo := postgres.NewMessageRepo(db)
	templateRepo := postgres.NewTemplateRepo(db)
	extractionRepo := postgres.NewExtractionRepo(db)
	docRepo := postgres.NewGeneratedDocumentRepo(db)
	uploadRepo := postgres.NewUploadRepo(db)

	// Initialize storage
	s3Client, err := s3storage.NewS3Client(&cfg.S3)
	if err != nil {
		return fmt.Errorf("failed to initialize S3 client: %w", err)
	}

	// Initialize email sender
	var emailSender port.EmailSender
	switch cfg.Email.Provider {
	case "ses":
		emailSender, err = ses.NewSESSender(cfg.Email.Region, cfg.Email.FromAddress, cfg.Email.FromName)
		if err != nil {
			return fmt.Errorf("failed to initialize SES sender: %w", err)
		}
	default:
		emailSender = noop.NewNoopSender()
	}

	// Initialize LLM client and PDF filler
	chatClient := openai.NewClient(&cfg.Chat)
	filler := pdffill.NewFiller()

	// Initialize services
	authSvc := service.NewAuthService(userRepo, cfg.JWT)
	convSvc := service.NewConversationService(convRepo, msgRepo)
	templateSvc := service.NewTemplateService(templateRepo)
	uploadSvc := service.NewUploadService(uploadRepo, convRepo, s3Client, &cfg.S3)
	docSvc := service.NewDocumentService(docRepo, extractionRepo, templateRepo, convRepo,
		userRepo, s3Client, filler, emailSender, &cfg.S3)
	chatSvc := service.NewChatService(convRepo, msgRepo, chatClient, docSvc, cfg.Chat.HistorySize)

	// Initialize handlers
	authH := handler.NewAuthHandler(authSvc)
	chatH := handler.NewChatHandler(chatSvc)
	convH := handler.NewConversationHandler(convSvc)
	uploadH := handler.NewUploadHandler(uploadSvc)
	templateH := handler.NewTemplateHandler(templateSvc)
	docH := handler.NewDocumentHandler(docSvc)
	healthH := handler.NewHealthHandler(db)

	// Setup router
	r := router.Setup(authSvc, cfg.CORS.AllowedOrigins,
		authH, chatH, convH, uploadH, templateH, docH, healthH)

	// SSE needs an unset (or zero) write timeout so streams stay open.
	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := srv.ListenAndServe(); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
