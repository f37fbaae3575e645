package planner

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/FACorreiaa/go-mood-planner/app/observability/metrics"
	"github.com/FACorreiaa/go-mood-planner/internal/api/tags"
	"github.com/FACorreiaa/go-mood-planner/internal/types"
	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"
	"google.golang.org/genai"
)

var _ Service = (*ServiceImpl)(nil)

const (
	planTemperature = float32(0.6)
	planMaxTokens   = int32(900)
	planPreamble    = "Only return valid JSON in the requested format. Do not add any other text."

	// maxConcurrentSearches bounds the per-tag fan-out. Each search is
	// independent and failures are isolated per tag, so the concurrent
	// fan-out is behavior-equivalent to running the searches in sequence.
	maxConcurrentSearches = 3
)

// AIClient is the slice of the generative AI client the planner needs.
type AIClient interface {
	GenerateResponse(ctx context.Context, prompt string, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// PlacesClient searches businesses near a coordinate for one term.
type PlacesClient interface {
	Search(ctx context.Context, term string, latitude, longitude float64, limit int) ([]types.Business, error)
}

// Service runs the whole plan pipeline for one request.
type Service interface {
	GeneratePlan(ctx context.Context, req types.PlanRequest) (*types.PlanResponse, error)
}

type ServiceImpl struct {
	logger       *slog.Logger
	aiClient     AIClient
	placesClient PlacesClient
	tagsService  tags.Service
	searchLimit  int
}

func NewServiceImpl(aiClient AIClient, placesClient PlacesClient, tagsService tags.Service, searchLimit int, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger:       logger,
		aiClient:     aiClient,
		placesClient: placesClient,
		tagsService:  tagsService,
		searchLimit:  searchLimit,
	}
}

// GeneratePlan orchestrates one run: tag extraction, per-tag place search,
// consolidation, itinerary generation and coordinate enrichment. Everything
// is request-scoped; nothing persists between calls.
func (s *ServiceImpl) GeneratePlan(ctx context.Context, req types.PlanRequest) (*types.PlanResponse, error) {
	ctx, span := otel.Tracer("PlannerService").Start(ctx, "GeneratePlan", trace.WithAttributes(
		attribute.Float64("request.latitude", req.Latitude),
		attribute.Float64("request.longitude", req.Longitude),
	))
	defer span.End()

	start := time.Now()
	interactionID := uuid.New()
	l := s.logger.With(slog.String("interactionID", interactionID.String()))
	span.SetAttributes(attribute.String("interaction.id", interactionID.String()))

	l.InfoContext(ctx, "New plan request", slog.String("prompt", req.Prompt))

	extracted := s.tagsService.ExtractSearchTags(ctx, req.Prompt)
	l.InfoContext(ctx, "Search tags extracted", slog.Any("tags", extracted))
	span.SetAttributes(attribute.Int("tags.count", len(extracted)))

	raw := s.searchAllTags(ctx, l, extracted, req.Latitude, req.Longitude)
	l.InfoContext(ctx, "Place search completed", slog.Int("total_raw", len(raw)))

	deduped := dedupeBusinesses(raw)
	sortBusinesses(deduped)
	if len(deduped) > maxPlanBusinesses {
		deduped = deduped[:maxPlanBusinesses]
	}
	summaries := summarizeBusinesses(deduped)
	span.SetAttributes(
		attribute.Int("businesses.raw", len(raw)),
		attribute.Int("businesses.deduped", len(deduped)),
	)

	startCoords := types.Coordinates{Latitude: req.Latitude, Longitude: req.Longitude}

	plan := s.generateItinerary(ctx, l, req.Prompt, summaries)
	if plan == nil {
		metrics.Get().PlanFallbacksTotal.Add(ctx, 1)
		plan = buildFallbackPlan(req.Prompt, summaries, startCoords)
		l.InfoContext(ctx, "Using fallback plan")
	} else {
		enrichPlanCoordinates(plan, deduped, startCoords)
	}

	metrics.Get().PlanRequestsTotal.Add(ctx, 1)
	metrics.Get().PlanDurationSeconds.Record(ctx, time.Since(start).Seconds())
	span.SetStatus(codes.Ok, "Plan generated")

	return &types.PlanResponse{
		Spots: deduped,
		Plan:  plan,
		Debug: types.PlanDebug{
			ExtractedTags:      extracted,
			TotalRawBusinesses: len(raw),
			DedupedBusinesses:  len(deduped),
		},
	}, nil
}

// searchAllTags fans out one bounded-concurrency search per tag and
// re-assembles the results in tag order, so downstream dedup sees the same
// order a sequential loop would produce. A failed search counts as zero
// results for that tag and never aborts the others.
func (s *ServiceImpl) searchAllTags(ctx context.Context, l *slog.Logger, extracted []string, latitude, longitude float64) []types.Business {
	ctx, span := otel.Tracer("PlannerService").Start(ctx, "searchAllTags")
	defer span.End()

	perTag := make([][]types.Business, len(extracted))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentSearches)
	for i, tag := range extracted {
		g.Go(func() error {
			businesses, err := s.placesClient.Search(gctx, tag, latitude, longitude, s.searchLimit)
			if err != nil {
				l.WarnContext(gctx, "Place search failed for tag, continuing with zero results",
					slog.String("tag", tag),
					slog.Any("error", err),
				)
				metrics.Get().PlaceSearchErrorsTotal.Add(gctx, 1)
				return nil
			}
			perTag[i] = businesses
			return nil
		})
	}
	// Workers never return errors; Wait only synchronizes.
	_ = g.Wait()

	var all []types.Business
	for _, businesses := range perTag {
		all = append(all, businesses...)
	}
	return all
}

// generateItinerary asks the model for a structured plan. Any call or parse
// failure returns nil, which signals the caller to fall back.
func (s *ServiceImpl) generateItinerary(ctx context.Context, l *slog.Logger, userPrompt string, summaries []types.BusinessSummary) *types.Plan {
	ctx, span := otel.Tracer("PlannerService").Start(ctx, "generateItinerary", trace.WithAttributes(
		attribute.Int("summaries.count", len(summaries)),
	))
	defer span.End()

	summariesJSON, err := json.MarshalIndent(summaries, "", "  ")
	if err != nil {
		l.ErrorContext(ctx, "Failed to marshal business summaries", slog.Any("error", err))
		span.RecordError(err)
		return nil
	}

	prompt := getItineraryPrompt(userPrompt, string(summariesJSON))
	span.SetAttributes(attribute.Int("prompt.length", len(prompt)))

	llmStart := time.Now()
	response, err := s.aiClient.GenerateResponse(ctx, prompt, &genai.GenerateContentConfig{
		Temperature:     genai.Ptr[float32](planTemperature),
		MaxOutputTokens: planMaxTokens,
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: planPreamble}},
		},
	})
	metrics.Get().LLMCallDurationSeconds.Record(ctx, time.Since(llmStart).Seconds())
	if err != nil {
		l.WarnContext(ctx, "Itinerary generation call failed", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Itinerary generation call failed")
		return nil
	}

	var txt string
	for _, candidate := range response.Candidates {
		if candidate.Content != nil && len(candidate.Content.Parts) > 0 {
			txt = candidate.Content.Parts[0].Text
			break
		}
	}
	span.SetAttributes(attribute.Int("response.length", len(txt)))

	plan, err := parsePlan(txt)
	if err != nil {
		l.WarnContext(ctx, "Failed to parse plan JSON from model", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to parse plan JSON")
		return nil
	}

	span.SetStatus(codes.Ok, "Itinerary generated")
	return plan
}
