package planner

import (
	"log/slog"
	"net/http"

	"github.com/FACorreiaa/go-mood-planner/internal/api"
	"github.com/FACorreiaa/go-mood-planner/internal/types"
	"go.opentelemetry.io/otel"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
	"go.opentelemetry.io/otel/trace"
)

type Handler struct {
	plannerService Service
	logger         *slog.Logger
}

func NewHandler(plannerService Service, logger *slog.Logger) *Handler {
	return &Handler{
		plannerService: plannerService,
		logger:         logger,
	}
}

// GeneratePlan runs the whole pipeline for one mood request.
// @Summary Generate a mood-based itinerary
// @Description Derives search tags from the prompt, finds nearby businesses and assembles them into an itinerary
// @Tags planner
// @Accept json
// @Produce json
// @Param request body types.PlanRequest true "Mood prompt and start coordinates"
// @Success 200 {object} types.PlanResponse
// @Failure 400 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /api/plan [post]
func (h *Handler) GeneratePlan(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("PlannerHandler").Start(r.Context(), "GeneratePlan", trace.WithAttributes(
		semconv.HTTPRequestMethodKey.String(r.Method),
		semconv.HTTPRouteKey.String("/api/plan"),
	))
	defer span.End()

	l := h.logger.With(slog.String("handler", "GeneratePlan"))
	l.DebugContext(ctx, "Generate plan handler invoked")

	var req types.PlanRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		l.ErrorContext(ctx, "Failed to decode request body", slog.Any("error", err))
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}

	response, err := h.plannerService.GeneratePlan(ctx, req)
	if err != nil {
		l.ErrorContext(ctx, "Failed to generate plan", slog.Any("error", err))
		span.RecordError(err)
		api.ErrorResponse(w, r, http.StatusInternalServerError, err.Error())
		return
	}

	l.InfoContext(ctx, "Plan generated successfully",
		slog.Int("spots", len(response.Spots)),
		slog.Int("itinerary_steps", len(response.Plan.Itinerary)),
	)
	api.WriteJSONResponse(w, r, http.StatusOK, response)
	span.SetAttributes(semconv.HTTPResponseStatusCodeKey.Int(http.StatusOK))
}
