package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const DefaultGeminiModel = "gemini-2.5-pro"

var (
	ErrAIUnavailable  = errors.New("AI assistant is not configured")
	ErrAIValidation   = errors.New("query and systemInstruction are required")
	ErrAIEmptyAnswer  = errors.New("AI returned no text")
	ErrAIRequestError = errors.New("AI request failed")
)

type AskRequest struct {
	Query             string `json:"query"`
	ItemContext       string `json:"itemContext"`
	SystemInstruction string `json:"systemInstruction"`
}

type AskResponse struct {
	Text string `json:"text"`
}

// TextGenerator turns one prompt into one answer.
type TextGenerator interface {
	GenerateText(ctx context.Context, prompt string) (string, error)
}

// AIService answers free-form questions about inventory data.
type AIService interface {
	Ask(ctx context.Context, req AskRequest) (*AskResponse, error)
}

type aiService struct {
	gen TextGenerator
}

// NewAIService creates an AIService. A nil generator makes every Ask fail with ErrAIUnavailable.
func NewAIService(gen TextGenerator) AIService {
	return &aiService{gen: gen}
}

// BuildPrompt joins the instruction, inventory data and question into one prompt.
func BuildPrompt(req AskRequest) string {
	return req.SystemInstruction + "\n\nInventory Data:\n" + req.ItemContext + "\n\nUser Query: " + req.Query
}

func (s *aiService) Ask(ctx context.Context, req AskRequest) (*AskResponse, error) {
	if strings.TrimSpace(req.Query) == "" || strings.TrimSpace(req.SystemInstruction) == "" {
		return nil, ErrAIValidation
	}
	if s.gen == nil {
		return nil, ErrAIUnavailable
	}
	text, err := s.gen.GenerateText(ctx, BuildPrompt(req))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrAIRequestError, err)
	}
	return &AskResponse{Text: text}, nil
}

// GeminiGenerator calls Gemini through one long-lived client.
type GeminiGenerator struct {
	client *genai.Client
	model  string
}

// NewGeminiGenerator dials Gemini with apiKey. Close releases the client.
func NewGeminiGenerator(ctx context.Context, apiKey, model string) (*GeminiGenerator, error) {
	if apiKey == "" {
		return nil, ErrAIUnavailable
	}
	if model == "" {
		model = DefaultGeminiModel
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("gemini client init failed: %w", err)
	}
	return &GeminiGenerator{client: client, model: model}, nil
}

func (g *GeminiGenerator) GenerateText(ctx context.Context, prompt string) (string, error) {
	resp, err := g.client.GenerativeModel(g.model).GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", err
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", ErrAIEmptyAnswer
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if txt, ok := part.(genai.Text); ok {
			b.WriteString(string(txt))
		}
	}
	if b.Len() == 0 {
		return "", ErrAIEmptyAnswer
	}
	return b.String(), nil
}

func (g *GeminiGenerator) Close() error {
	return g.client.Close()
}
