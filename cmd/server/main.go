// @title           POI Validation API
// @version         1.0.0
// @description     Proof-of-impact project submission and verification backend. Owners submit impact projects, verifiers approve or reject them, and approved projects are flagged for NFT minting and funding with an email notification to the owner.

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and a Supabase JWT.

package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "poi-backend/docs"
	"poi-backend/internal/config"
	"poi-backend/internal/database"
	"poi-backend/internal/handlers"
	"poi-backend/internal/mailer"
	"poi-backend/internal/middleware"
	"poi-backend/internal/repository"
	"poi-backend/internal/services"
	"poi-backend/internal/supabase"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	var logger *zap.Logger
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
		logger, err = zap.NewProduction()
	} else {
		logger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Supabase clients
	supaClient, err := supabase.NewClient(cfg)
	if err != nil {
		logger.Fatal("failed to initialize supabase client", zap.Error(err))
	}

	storageClient, err := supabase.NewStorageClient(cfg.SupabaseURL, cfg.SupabaseServiceKey, cfg.SupabaseStorageBucket)
	if err != nil {
		logger.Fatal("failed to initialize storage client", zap.Error(err))
	}

	realtimeClient := supabase.NewRealtimeClient(supaClient.Supabase)

	// Schema migrations need a direct database connection; skip when not
	// configured (e.g. the schema is managed in the Supabase dashboard).
	if cfg.DatabaseURL != "" {
		migrator, err := database.NewMigrator(cfg.DatabaseURL, logger)
		if err != nil {
			logger.Warn("failed to initialize migrator", zap.Error(err))
		} else {
			defer migrator.Close()
			if err := migrator.Run(); err != nil {
				logger.Warn("migration failed", zap.Error(err))
			} else {
				logger.Info("migrations completed")
			}
		}
	} else {
		logger.Warn("DATABASE_URL not set, skipping migrations")
	}

	// Repositories and services
	projectRepo := repository.NewProjectRepository(supaClient.Rest)
	verifierRepo := repository.NewVerifierRepository(supaClient.Rest)
	evidenceRepo := repository.NewEvidenceRepository(supaClient.Rest)

	statusMailer := mailer.New(cfg, logger)
	verificationService := services.NewVerificationService(projectRepo, statusMailer, realtimeClient, logger)

	// Handlers
	authHandler := handlers.NewAuthHandler(supaClient, verifierRepo, cfg, logger)
	pagesHandler := handlers.NewPagesHandler(projectRepo, logger)
	projectsHandler := handlers.NewProjectsHandler(projectRepo, evidenceRepo, storageClient, verifierRepo, logger)
	evidenceHandler := handlers.NewEvidenceHandler(projectRepo, evidenceRepo, storageClient, verifierRepo, logger)
	verifierHandler := handlers.NewVerifierHandler(projectRepo, verificationService, logger)
	notifyHandler := handlers.NewNotifyHandler(statusMailer, logger)

	// Router
	router := gin.Default()

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", handlers.HealthHandler)
	router.GET("/auth/callback", authHandler.Callback)

	// Page routes go through the edge guard: every navigation is evaluated
	// against the policy table before any handler runs.
	pages := router.Group("/", middleware.RouteGuard(cfg, verifierRepo))
	pages.GET("/", pagesHandler.Landing)
	pages.GET("/login", pagesHandler.LoginPage)
	pages.GET("/signup", pagesHandler.SignupPage)
	pages.GET("/dashboard", pagesHandler.Dashboard)
	pages.GET("/projects/new", pagesHandler.NewProjectPage)
	pages.GET("/verifier", pagesHandler.VerifierDashboard)

	// Session endpoints
	authAPI := router.Group("/api/v1/auth")
	authAPI.POST("/signup", authHandler.SignUp)
	authAPI.POST("/login", authHandler.SignIn)
	authAPI.POST("/logout", authHandler.SignOut)

	// Authenticated API
	api := router.Group("/api/v1")
	api.Use(middleware.AuthMiddleware(cfg))

	api.GET("/projects", projectsHandler.ListProjects)
	api.POST("/projects", projectsHandler.CreateProject)
	api.GET("/projects/:project_id", projectsHandler.GetProject)
	api.PATCH("/projects/:project_id", projectsHandler.UpdateProject)
	api.DELETE("/projects/:project_id", projectsHandler.DeleteProject)
	api.GET("/dashboard/stats", projectsHandler.Stats)

	api.POST("/projects/:project_id/evidence", evidenceHandler.Upload)
	api.GET("/projects/:project_id/evidence", evidenceHandler.List)

	api.POST("/email", notifyHandler.SendStatusEmail)

	verifierAPI := api.Group("/verifier", middleware.RequireVerifier(verifierRepo))
	verifierAPI.GET("/projects", verifierHandler.ListPending)
	verifierAPI.POST("/projects/:project_id/decision", verifierHandler.Decide)

	logger.Info("server starting", zap.String("port", cfg.Port))
	if err := http.ListenAndServe(":"+cfg.Port, router); err != nil {
		logger.Fatal("failed to start server", zap.Error(err))
	}
}
