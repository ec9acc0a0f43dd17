// Package chat is the thin proxy in front of the hosted completion API.
// It holds no conversation state; each request is forwarded as-is.
package chat

import (
	"context"
	"fmt"
	"strings"

	genai "github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// ChatService forwards a visitor prompt to the completion model.
type ChatService interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// GeminiChatService is the production implementation.
type GeminiChatService struct {
	model *genai.GenerativeModel
}

// NewGeminiChatService builds the client once at startup.
func NewGeminiChatService(apiKey string) (*GeminiChatService, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}
	return &GeminiChatService{model: client.GenerativeModel("models/gemini-1.5-pro")}, nil
}

// Complete forwards the prompt and concatenates the text parts of the
// first candidate.
func (g *GeminiChatService) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", fmt.Errorf("gemini generate error: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini returned no candidates")
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}
	return sb.String(), nil
}
