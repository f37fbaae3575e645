package tags

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"regexp"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"google.golang.org/genai"
)

var _ Service = (*ServiceImpl)(nil)

const (
	maxSearchTags   = 5
	tagsTemperature = float32(0.2)
	tagsMaxTokens   = int32(100)
	tagsPreamble    = "Return ONLY a JSON array."
)

// fallbackSearchTags is returned whenever the model output cannot be parsed
// or the call fails. The extractor never surfaces an error to the caller.
var fallbackSearchTags = []string{"restaurant", "coffee", "park"}

// AIClient is the slice of the generative AI client the extractor needs.
type AIClient interface {
	GenerateResponse(ctx context.Context, prompt string, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// Service defines the tag extraction contract: an ordered sequence of at
// most 5 search phrases for any prompt, including the empty one.
type Service interface {
	ExtractSearchTags(ctx context.Context, userPrompt string) []string
}

type ServiceImpl struct {
	logger   *slog.Logger
	aiClient AIClient
}

func NewServiceImpl(aiClient AIClient, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		logger:   logger,
		aiClient: aiClient,
	}
}

func (s *ServiceImpl) ExtractSearchTags(ctx context.Context, userPrompt string) []string {
	ctx, span := otel.Tracer("TagsService").Start(ctx, "ExtractSearchTags")
	defer span.End()

	prompt := getSearchTagsPrompt(userPrompt)
	span.SetAttributes(attribute.Int("prompt.length", len(prompt)))

	response, err := s.aiClient.GenerateResponse(ctx, prompt, &genai.GenerateContentConfig{
		Temperature:     genai.Ptr[float32](tagsTemperature),
		MaxOutputTokens: tagsMaxTokens,
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{Text: tagsPreamble}},
		},
	})
	if err != nil {
		s.logger.WarnContext(ctx, "Tag extraction call failed, using fallback tags", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Tag extraction call failed")
		return fallbackTags()
	}

	var txt string
	for _, candidate := range response.Candidates {
		if candidate.Content != nil && len(candidate.Content.Parts) > 0 {
			txt = candidate.Content.Parts[0].Text
			break
		}
	}

	extracted, err := parseSearchTags(txt)
	if err != nil {
		s.logger.WarnContext(ctx, "Failed to parse tags, using fallback tags", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to parse tags")
		return fallbackTags()
	}

	span.SetAttributes(attribute.Int("tags.count", len(extracted)))
	span.SetStatus(codes.Ok, "Tags extracted")
	return extracted
}

// bracketSpanRe locates the first bracketed span in the model output,
// non-greedy so trailing prose after the array is ignored. Newlines inside
// the span are allowed.
var bracketSpanRe = regexp.MustCompile(`(?s)\[.*?\]`)

func parseSearchTags(text string) ([]string, error) {
	span := bracketSpanRe.FindString(text)
	if span == "" {
		return nil, fmt.Errorf("no JSON array found in model output")
	}

	var extracted []string
	if err := json.Unmarshal([]byte(span), &extracted); err != nil {
		return nil, fmt.Errorf("failed to parse tag array: %w", err)
	}
	if len(extracted) == 0 {
		return nil, fmt.Errorf("model returned an empty tag array")
	}
	if len(extracted) > maxSearchTags {
		extracted = extracted[:maxSearchTags]
	}
	return extracted, nil
}

func fallbackTags() []string {
	out := make([]string, len(fallbackSearchTags))
	copy(out, fallbackSearchTags)
	return out
}
