package intelligence

import (
	"context"
	"fmt"
	"strings"

	"legalassist/models"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiConfig holds model tuning applied to every call.
type GeminiConfig struct {
	APIKey      string
	Model       string
	Temperature float32
	MaxTokens   int32
}

// GeminiGenerator implements Generator over the Gemini chat API.
type GeminiGenerator struct {
	client *genai.Client
	cfg    GeminiConfig
}

func NewGeminiGenerator(ctx context.Context, cfg GeminiConfig) (*GeminiGenerator, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiGenerator{client: client, cfg: cfg}, nil
}

func (g *GeminiGenerator) Close() error {
	return g.client.Close()
}

// model builds a fresh model handle per call so settings never leak between requests.
func (g *GeminiGenerator) model(req GenerationRequest) *genai.GenerativeModel {
	m := g.client.GenerativeModel(g.cfg.Model)
	m.SetTemperature(g.cfg.Temperature)
	m.SetMaxOutputTokens(g.cfg.MaxTokens)
	if req.SystemInstruction != "" {
		m.SystemInstruction = &genai.Content{Parts: []genai.Part{genai.Text(req.SystemInstruction)}}
	}
	if req.JSON {
		m.ResponseMIMEType = "application/json"
	}
	return m
}

func (g *GeminiGenerator) Generate(ctx context.Context, req GenerationRequest) (string, error) {
	cs := g.model(req).StartChat()
	cs.History = toContents(req.History)

	resp, err := cs.SendMessage(ctx, genai.Text(req.Message))
	if err != nil {
		return "", fmt.Errorf("gemini generate error: %w", err)
	}
	return responseText(resp), nil
}

// toContents maps assistant turns onto Gemini's "model" role.
func toContents(history []models.ChatMessage) []*genai.Content {
	contents := make([]*genai.Content, 0, len(history))
	for _, m := range history {
		role := "user"
		if m.Role == models.RoleAssistant {
			role = "model"
		}
		contents = append(contents, &genai.Content{Role: role, Parts: []genai.Part{genai.Text(m.Content)}})
	}
	return contents
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return ""
	}
	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	return sb.String()
}
