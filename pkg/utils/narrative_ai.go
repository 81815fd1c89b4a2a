package utils

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"github.com/pgvector/pgvector-go"
	openai "github.com/sashabaranov/go-openai"
	"google.golang.org/api/option"
)

const (
	defaultOpenAIModel   = openai.GPT4oMini
	defaultGeminiModel   = "gemini-1.5-flash"
	geminiEmbeddingModel = "text-embedding-004"
	narrativeMaxTokens   = 400
	narrativeTemperature = 0.4
)

// NarrativeRequest carries everything the provider needs to write a short
// itinerary summary. Plain fields only so the prompt builders stay provider
// independent.
type NarrativeRequest struct {
	Origin     string
	Cities     []string
	Nights     []int
	StartDate  string
	EndDate    string
	Highlights []string
}

type NarrativeClientInterface interface {
	SummarizeRoute(ctx context.Context, req NarrativeRequest) (string, error)
	GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error)
}

func buildNarrativePrompt(req NarrativeRequest) string {
	var legs strings.Builder
	for i, city := range req.Cities {
		nights := 1
		if i < len(req.Nights) {
			nights = req.Nights[i]
		}
		fmt.Fprintf(&legs, "- %s (%d nights)\n", city, nights)
	}

	var notes string
	if len(req.Highlights) > 0 {
		notes = "Mention briefly: " + strings.Join(req.Highlights, "; ") + "\n"
	}

	return fmt.Sprintf(`Write a short, practical trip summary (2-3 sentences, plain prose, no markdown, no lists).
Departing from %s between %s and %s, visiting in order:
%s%sDo not invent attractions or prices. Return the paragraph only.`,
		req.Origin, req.StartDate, req.EndDate, legs.String(), notes)
}

// OpenAINarrativeClient implements NarrativeClientInterface on the OpenAI API.
type OpenAINarrativeClient struct {
	client *openai.Client
	model  string
}

func NewOpenAINarrativeClient(apiKey, model string) NarrativeClientInterface {
	if model == "" {
		model = defaultOpenAIModel
	}
	return &OpenAINarrativeClient{
		client: openai.NewClient(apiKey),
		model:  model,
	}
}

func (c *OpenAINarrativeClient) SummarizeRoute(ctx context.Context, req NarrativeRequest) (string, error) {
	if len(req.Cities) == 0 {
		return "", fmt.Errorf("no cities to summarize")
	}

	resp, err := c.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
		Model:       c.model,
		Temperature: narrativeTemperature,
		MaxTokens:   narrativeMaxTokens,
		Messages: []openai.ChatCompletionMessage{
			{Role: openai.ChatMessageRoleUser, Content: buildNarrativePrompt(req)},
		},
	})
	if err != nil {
		return "", fmt.Errorf("openai: %w", err)
	}
	if len(resp.Choices) == 0 {
		return "", fmt.Errorf("openai: empty response")
	}
	return strings.TrimSpace(resp.Choices[0].Message.Content), nil
}

func (c *OpenAINarrativeClient) GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error) {
	resp, err := c.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: []string{text},
		Model: openai.SmallEmbedding3,
	})
	if err != nil {
		return pgvector.Vector{}, fmt.Errorf("openai embeddings: %w", err)
	}
	if len(resp.Data) == 0 {
		return pgvector.Vector{}, fmt.Errorf("openai embeddings: empty response")
	}
	return pgvector.NewVector(resp.Data[0].Embedding), nil
}

// GeminiNarrativeClient implements NarrativeClientInterface on Google's
// Gemini models.
type GeminiNarrativeClient struct {
	client *genai.Client
	model  string
}

func NewGeminiNarrativeClient(apiKey, model string) (NarrativeClientInterface, error) {
	if model == "" {
		model = defaultGeminiModel
	}

	client, err := genai.NewClient(context.Background(), option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &GeminiNarrativeClient{
		client: client,
		model:  model,
	}, nil
}

func (c *GeminiNarrativeClient) SummarizeRoute(ctx context.Context, req NarrativeRequest) (string, error) {
	if len(req.Cities) == 0 {
		return "", fmt.Errorf("no cities to summarize")
	}

	m := c.client.GenerativeModel(c.model)
	m.SetTemperature(narrativeTemperature)
	m.SetMaxOutputTokens(narrativeMaxTokens)

	resp, err := m.GenerateContent(ctx, genai.Text(buildNarrativePrompt(req)))
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("gemini: empty response")
	}
	return strings.TrimSpace(fmt.Sprintf("%v", resp.Candidates[0].Content.Parts[0])), nil
}

func (c *GeminiNarrativeClient) GetEmbedding(ctx context.Context, text string) (pgvector.Vector, error) {
	em := c.client.EmbeddingModel(geminiEmbeddingModel)
	resp, err := em.EmbedContent(ctx, genai.Text(text))
	if err != nil {
		return pgvector.Vector{}, fmt.Errorf("gemini embeddings: %w", err)
	}
	if resp.Embedding == nil || len(resp.Embedding.Values) == 0 {
		return pgvector.Vector{}, fmt.Errorf("gemini embeddings: empty response")
	}
	return pgvector.NewVector(resp.Embedding.Values), nil
}

func (c *GeminiNarrativeClient) Close() error {
	return c.client.Close()
}

// NewNarrativeClient picks the provider from config.
func NewNarrativeClient(provider, apiKey, model string) (NarrativeClientInterface, error) {
	switch strings.ToLower(provider) {
	case "openai":
		return NewOpenAINarrativeClient(apiKey, model), nil
	case "gemini":
		return NewGeminiNarrativeClient(apiKey, model)
	default:
		return nil, fmt.Errorf("unsupported narrative provider: %s", provider)
	}
}
