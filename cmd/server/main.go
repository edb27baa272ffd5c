package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/careerforge/api/adapters/event"
	httpAdapter "github.com/careerforge/api/adapters/http"
	"github.com/careerforge/api/adapters/media_storage"
	"github.com/careerforge/api/adapters/persistence"
	"github.com/careerforge/api/adapters/simulated"
	"github.com/careerforge/api/internal/application/builder"
	authUC "github.com/careerforge/api/internal/application/usecase/auth"
	profileUC "github.com/careerforge/api/internal/application/usecase/profile"
	resumeUC "github.com/careerforge/api/internal/application/usecase/resume"
	shareUC "github.com/careerforge/api/internal/application/usecase/share"
	"github.com/careerforge/api/internal/config"
	"github.com/careerforge/api/pkg/auth"
	"github.com/careerforge/api/pkg/logger"
	"github.com/careerforge/api/pkg/tracing"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	appLogger.Info("Starting CareerForge API server...")

	if cfg.Tracing.OTLPEndpoint != "" {
		tp, err := tracing.NewTracerProvider(cfg, appLogger, "careerforge-api")
		if err != nil {
			appLogger.Fatal("Cannot init tracing", err)
		}
		defer tp.Shutdown(context.Background())
	}

	// Infrastructure
	dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Cannot connect Postgres", err)
	}
	defer dbPool.Close()

	redisClient, err := persistence.NewRedisClient(cfg)
	if err != nil {
		appLogger.Fatal("Cannot connect Redis", err)
	}
	defer redisClient.Close()

	kafkaClient, err := event.NewKafkaProducerClient(cfg)
	if err != nil {
		appLogger.Fatal("Cannot init Kafka", err)
	}
	defer kafkaClient.Close()

	// Repositories and adapters
	userRepo := persistence.NewPostgresUserRepo(dbPool, appLogger)
	profileRepo := persistence.NewPostgresProfileRepo(dbPool, appLogger)
	renderCache := persistence.NewRedisRenderCache(redisClient)
	tokenDenylist := persistence.NewRedisTokenDenylist(redisClient)

	jwtSvc := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenLifespan)
	uploader, err := media_storage.NewCloudinaryAdapter(cfg)
	if err != nil {
		appLogger.Fatal("Failed to initialize uploader", err)
	}

	resumeParser := simulated.NewResumeParser()
	socialImporter := simulated.NewSocialImporter()
	enhancer := simulated.NewEnhancer()
	deployer := simulated.NewDeployer(cfg.App.PublicHost)
	exporter := simulated.NewExporter()

	// Use cases
	loginUseCase := authUC.NewLoginUseCase(userRepo, jwtSvc, appLogger)
	logoutUseCase := authUC.NewLogoutUseCase(jwtSvc, tokenDenylist, appLogger)
	profileUseCase := profileUC.NewProfileUseCase(profileRepo, kafkaClient, renderCache, resumeParser, socialImporter, appLogger)
	resumeUseCase := resumeUC.NewResumeUseCase(enhancer, appLogger)
	shareUseCase := shareUC.NewShareUseCase(cfg.App.PublicHost, exporter, deployer, kafkaClient, appLogger)

	// Builder sessions
	sessionStore := builder.NewStore()

	// HTTP handlers
	authHandler := httpAdapter.NewAuthHandler(loginUseCase, logoutUseCase)
	profileHandler := httpAdapter.NewProfileHandler(profileUseCase, sessionStore, appLogger)
	builderHandler := httpAdapter.NewBuilderHandler(profileUseCase, sessionStore, appLogger)
	previewHandler := httpAdapter.NewPreviewHandler(profileUseCase, sessionStore, resumeUseCase, appLogger)
	shareHandler := httpAdapter.NewShareHandler(profileUseCase, sessionStore, shareUseCase, appLogger)
	mediaHandler := httpAdapter.NewMediaHandler(profileUseCase, sessionStore, uploader, appLogger)
	publicHandler := httpAdapter.NewPublicHandler(profileUseCase, renderCache, appLogger)

	// Middleware
	authMiddleware := httpAdapter.AuthMiddleware(jwtSvc, tokenDenylist, appLogger)
	errorMiddleware := httpAdapter.ErrorMiddleware(appLogger)

	// Router
	router := gin.Default()
	router.Use(errorMiddleware)

	api := router.Group("/api")
	{
		apiAuth := api.Group("/auth")
		apiAuth.POST("/login", authHandler.Login)
		apiAuth.POST("/logout", authMiddleware, authHandler.Logout)

		private := api.Group("/")
		private.Use(authMiddleware)
		{
			private.GET("/health-auth", func(c *gin.Context) {
				ownerID, ok := httpAdapter.GetOwnerIDFromGinContext(c)
				if !ok {
					c.JSON(http.StatusInternalServerError, gin.H{"error": "cannot get user id from context"})
					return
				}
				c.JSON(http.StatusOK, gin.H{"status": "OK", "owner_id": ownerID})
			})

			private.GET("/profile", profileHandler.GetProfile)
			private.PUT("/profile/fields", profileHandler.UpdateField)
			private.PUT("/profile/contact", profileHandler.UpdateContact)
			private.PUT("/profile/social", profileHandler.UpdateSocial)
			private.POST("/profile/save", profileHandler.SaveProfile)
			private.POST("/profile/import/resume", profileHandler.ImportResume)
			private.POST("/profile/import/:provider", profileHandler.ImportSocial)

			// The skill-item routes live inside the :section group:
			// a static "skills" sibling of :section makes gin capture
			// "draft"/"commit" as the :id of /skills/:id/select and
			// 404 instead of backtracking to the param route.
			sections := private.Group("/builder/:section")
			{
				sections.GET("", builderHandler.GetSection)
				sections.POST("/draft", builderHandler.StartCreate)
				sections.POST("/:id/edit", builderHandler.StartEdit)
				sections.PUT("/draft", builderHandler.UpdateDraft)
				sections.POST("/commit", builderHandler.Commit)
				sections.DELETE("/draft", builderHandler.Cancel)
				sections.DELETE("/:id", builderHandler.Remove)

				sections.POST("/:id/select", builderHandler.SelectCategory)
				sections.POST("/items", builderHandler.AddSkill)
				sections.DELETE("/items", builderHandler.RemoveSkill)
			}

			private.POST("/builder/projects/draft/technologies", builderHandler.AddTechnology)
			private.DELETE("/builder/projects/draft/technologies", builderHandler.RemoveTechnology)
			private.POST("/builder/projects/draft/image", mediaHandler.UploadProjectImage)

			private.GET("/preview/portfolio", previewHandler.PortfolioPreview)
			private.POST("/resume/generate", previewHandler.GenerateResume)
			private.POST("/enhance", previewHandler.EnhanceText)

			private.GET("/share/link", shareHandler.ShareLink)
			private.GET("/share/embed", shareHandler.Embed)
			private.POST("/share/export", shareHandler.Export)
			private.POST("/share/deploy", shareHandler.Deploy)
		}

		public := api.Group("/")
		{
			public.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "UP"}) })
			public.GET("/p/:userID", publicHandler.Portfolio)
			public.GET("/directory", publicHandler.Directory)
		}
	}

	appLogger.Info("Server running on port " + cfg.App.Port)
	if err := router.Run(":" + cfg.App.Port); err != nil {
		appLogger.Fatal("Cannot run server", err)
	}
}
