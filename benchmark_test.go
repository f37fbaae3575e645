package main

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/FACorreiaa/go-mood-planner/app/observability/metrics"
	"github.com/FACorreiaa/go-mood-planner/internal/api/places"
	"github.com/FACorreiaa/go-mood-planner/internal/api/planner"
	"github.com/FACorreiaa/go-mood-planner/internal/api/tags"
	api "github.com/FACorreiaa/go-mood-planner/internal/router"
	"github.com/FACorreiaa/go-mood-planner/internal/types"
	"github.com/go-chi/chi/v5"
)

// BenchmarkSuite drives the plan endpoint with stubbed upstreams so the
// numbers reflect the pipeline itself, not network latency.
type BenchmarkSuite struct {
	router       chi.Router
	placesServer *httptest.Server
}

func setupBenchmarkSuite(aiClient *scriptedAIClient) *BenchmarkSuite {
	metrics.InitAppMetrics()
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))

	distance := 200.0
	placesServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body := map[string]any{
			"businesses": []types.Business{
				{
					ID:          r.URL.Query().Get("term") + "-1",
					Name:        "Benchmark Spot",
					Rating:      4.0,
					Coordinates: &types.Coordinates{Latitude: 37.79, Longitude: -122.4},
					Distance:    &distance,
				},
			},
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(body)
	}))

	placesClient := places.NewClient(placesServer.URL, "benchmark-key", logger)
	tagsService := tags.NewServiceImpl(aiClient, logger)
	plannerService := planner.NewServiceImpl(aiClient, placesClient, tagsService, 5, logger)
	plannerHandler := planner.NewHandler(plannerService, logger)

	return &BenchmarkSuite{
		router:       api.SetupRouter(&api.Config{PlannerHandler: plannerHandler}),
		placesServer: placesServer,
	}
}

func (suite *BenchmarkSuite) postPlan(body []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", "/api/plan", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	suite.router.ServeHTTP(w, req)
	return w
}

// BenchmarkPlanEndpoint benchmarks the full pipeline with a well-behaved model.
func BenchmarkPlanEndpoint(b *testing.B) {
	aiClient := &scriptedAIClient{
		tagsText: `["coffee", "park", "museum"]`,
		planText: `{"title": "Benchmark Day", "itinerary": [{"order": 1, "place_name": "Benchmark Spot", "activity": "Visit Benchmark Spot", "duration_minutes": 60}]}`,
	}
	suite := setupBenchmarkSuite(aiClient)
	defer suite.placesServer.Close()

	body, _ := json.Marshal(types.PlanRequest{Prompt: "benchmark mood", Latitude: 37.77, Longitude: -122.42})

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		suite.postPlan(body)
	}
}

// BenchmarkPlanEndpointFallback benchmarks the degraded path where both model
// calls return unusable text.
func BenchmarkPlanEndpointFallback(b *testing.B) {
	aiClient := &scriptedAIClient{
		tagsText: "no tags today",
		planText: "no plan today",
	}
	suite := setupBenchmarkSuite(aiClient)
	defer suite.placesServer.Close()

	body, _ := json.Marshal(types.PlanRequest{Prompt: "benchmark mood", Latitude: 37.77, Longitude: -122.42})

	b.ResetTimer()
	b.ReportAllocs()

	for i := 0; i < b.N; i++ {
		suite.postPlan(body)
	}
}
