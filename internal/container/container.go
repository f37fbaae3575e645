package container

import (
	"context"
	"log/slog"

	"github.com/FACorreiaa/go-mood-planner/config"
	generativeAI "github.com/FACorreiaa/go-mood-planner/internal/api/generative_ai"
	"github.com/FACorreiaa/go-mood-planner/internal/api/places"
	"github.com/FACorreiaa/go-mood-planner/internal/api/planner"
	"github.com/FACorreiaa/go-mood-planner/internal/api/tags"
)

// Container holds all application dependencies
type Container struct {
	Config         *config.Config
	Logger         *slog.Logger
	AIClient       *generativeAI.AIClient
	PlacesClient   *places.Client
	TagsService    tags.Service
	PlannerService planner.Service
	PlannerHandler *planner.Handler
}

// NewContainer initializes and returns a new dependency container.
// Both upstream credentials are mandatory; construction fails when
// either is missing from the environment.
func NewContainer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Container, error) {
	aiClient, err := generativeAI.NewAIClient(ctx, cfg.LLM.Model)
	if err != nil {
		logger.Error("Failed to initialize generative AI client", slog.Any("error", err))
		return nil, err
	}

	placesAPIKey, err := config.RequireEnv("YELP_API_KEY")
	if err != nil {
		logger.Error("Failed to initialize places client", slog.Any("error", err))
		return nil, err
	}
	placesClient := places.NewClient(cfg.Places.BaseURL, placesAPIKey, logger)

	tagsService := tags.NewServiceImpl(aiClient, logger)
	plannerService := planner.NewServiceImpl(aiClient, placesClient, tagsService, cfg.Places.LimitPerTag, logger)
	plannerHandler := planner.NewHandler(plannerService, logger)

	return &Container{
		Config:         cfg,
		Logger:         logger,
		AIClient:       aiClient,
		PlacesClient:   placesClient,
		TagsService:    tagsService,
		PlannerService: plannerService,
		PlannerHandler: plannerHandler,
	}, nil
}
