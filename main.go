package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"main/config"
	"main/export"
	"main/handler"
	"main/middleware"
	"main/repository"
	"main/services"
	"main/storage"
	"main/usecase"
	"main/utils"
)

func init() {
	// Load environment variables from .env file
	if err := godotenv.Load(); err != nil && os.Getenv("GO_ENV") != "test" {
		log.Printf("No .env file loaded: %v", err)
	}

	utils.InitValidator()
	utils.InitJWT()
}

func setupRouter(cfg config.AppConfig, notesRepo *repository.NotesRepo, downloadsRepo *repository.DownloadsRepo, sessionCache *services.SessionCache) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.MetricsMiddleware())
	router.Use(middleware.RequestSizeLimiter(1 << 20))

	notesService := &usecase.NotesService{
		Notes:     notesRepo,
		Downloads: downloadsRepo,
	}
	exporter := export.NewExporter(downloadsRepo)
	statsHandler := handler.NewStatsHandler(notesService, downloadsRepo)

	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Public routes (no authentication required)
	public := router.Group("/api")
	{
		auth := public.Group("/auth")
		{
			auth.POST("/login", func(c *gin.Context) {
				handler.LoginHandler(c, cfg, sessionCache)
			})
		}
	}

	// Protected routes (authentication required)
	protected := router.Group("/api")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.POST("/auth/logout", func(c *gin.Context) {
			handler.LogoutHandler(c, sessionCache)
		})

		notes := protected.Group("/notes")
		{
			notes.GET("/", func(c *gin.Context) {
				handler.ListNotesHandler(c, notesService)
			})
			notes.POST("/", func(c *gin.Context) {
				handler.CreateNoteHandler(c, notesService)
			})
			notes.PUT("/:id", func(c *gin.Context) {
				handler.UpdateNoteHandler(c, notesService)
			})
			notes.DELETE("/:id", func(c *gin.Context) {
				handler.DeleteNoteHandler(c, notesService)
			})
			notes.POST("/:id/favorite", func(c *gin.Context) {
				handler.ToggleFavoriteHandler(c, notesService)
			})
			notes.POST("/:id/export", func(c *gin.Context) {
				handler.ExportNoteHandler(c, notesService, exporter)
			})
		}

		downloads := protected.Group("/downloads")
		{
			downloads.GET("/", func(c *gin.Context) {
				handler.GetDownloadHistoryHandler(c, downloadsRepo)
			})
			downloads.DELETE("/", func(c *gin.Context) {
				handler.ClearDownloadHistoryHandler(c, downloadsRepo)
			})
		}

		protected.GET("/stats", statsHandler.GetStats)
	}

	return router
}

func main() {
	cfg := config.LoadAppConfig()

	store, err := storage.Open(config.LoadStorageConfig())
	if err != nil {
		log.Fatalf("Failed to open storage: %v", err)
	}
	defer store.Close()

	notesRepo := repository.NewNotesRepo(store)
	notesRepo.Load(context.Background())

	downloadsRepo := repository.NewDownloadsRepo(store)
	downloadsRepo.Load(context.Background())

	var sessionCache *services.SessionCache
	if cfg.RedisURL != "" {
		sessionCache, err = services.NewSessionCache(cfg.RedisURL)
		if err != nil {
			log.Printf("Session cache unavailable: %v", err)
			sessionCache = nil
		}
	}

	router := setupRouter(cfg, notesRepo, downloadsRepo, sessionCache)

	serverAddr := fmt.Sprintf(":%s", cfg.Port)
	log.Printf("Server starting on %s", serverAddr)
	if err := router.Run(serverAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
