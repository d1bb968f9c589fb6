package app

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"outfit-recommender/app/controller"
	"outfit-recommender/app/router"
	"outfit-recommender/db"
	"outfit-recommender/repository"
	"outfit-recommender/service"
	"outfit-recommender/telemetry"
)

// App owns the long-lived resources shared by all requests
type App struct {
	Handler http.Handler

	shutdownTelemetry telemetry.ShutdownFunc
}

// Initialize initializes the application
func Initialize(ctx context.Context, cfg Config) (*App, error) {
	shutdownTelemetry, err := telemetry.InitMeterProvider(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize telemetry: %w", err)
	}

	// Embedding model: created once, shared by every request
	embedder, err := service.NewEmbeddingService(service.EmbeddingConfig{
		BaseURL: cfg.EmbeddingBaseURL,
		APIKey:  cfg.EmbeddingAPIKey,
		Model:   cfg.EmbeddingModel,
		Timeout: cfg.EmbeddingTimeout,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize embedding service: %w", err)
	}

	source, err := newWardrobeSource(ctx, cfg)
	if err != nil {
		return nil, err
	}

	// Recommendation history is optional
	var history repository.RecommendationRepositoryInterface
	if db.Configured() {
		if err := db.InitDB(ctx); err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		repo := repository.NewRecommendationRepository(db.DB)
		if err := repo.EnsureSchema(ctx); err != nil {
			return nil, err
		}
		history = repo
	} else {
		log.Printf("⚠️  No database configured, recommendation history disabled")
	}

	recommendationService := service.NewRecommendationService(
		service.NewCatalogIndexer(source, embedder),
		service.NewOutfitComposer(embedder),
		service.NewCollageRenderer(source, cfg.CollageOutputPath),
		history,
	)

	// Create controllers
	controllers := &router.Controllers{
		Outfit: controller.NewOutfitController(recommendationService, cfg.CollageOutputPath),
	}
	if recommendationService.HistoryEnabled() {
		controllers.History = controller.NewRecommendationHistoryController(recommendationService)
	}

	handler := router.SetupRoutes(controllers, router.Options{
		AllowedOrigins: cfg.CORSAllowedOrigins,
	})

	return &App{
		Handler:           handler,
		shutdownTelemetry: shutdownTelemetry,
	}, nil
}

// Close releases the resources owned by the application
func (a *App) Close(ctx context.Context) error {
	if err := db.CloseDB(); err != nil {
		log.Printf("❌ Error closing database: %v", err)
	}
	return a.shutdownTelemetry(ctx)
}

func newWardrobeSource(ctx context.Context, cfg Config) (service.WardrobeSourceInterface, error) {
	if cfg.DriveFolderID != "" {
		source, err := service.NewDriveWardrobeSource(ctx, cfg.CredentialsPath, cfg.DriveFolderID)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize drive wardrobe: %w", err)
		}
		log.Printf("✓ Using Google Drive wardrobe folder %s", cfg.DriveFolderID)
		return source, nil
	}

	log.Printf("✓ Using local wardrobe folder %s", cfg.WardrobeDir)
	return service.NewLocalWardrobeSource(cfg.WardrobeDir), nil
}
