package oracle

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"camp-portal/internal/domain"
)

// DefaultModel answers Oracle questions unless configuration overrides it.
const DefaultModel = "gemini-2.0-flash"

const systemPrompt = "You are the Oracle of Delphi at Camp Half-Blood. Answer " +
	"the demigod's question in character: cryptic but helpful, at most three " +
	"sentences, never breaking the fiction."

// Client is a single-turn Gemini client for the camp Oracle.
type Client struct {
	client *genai.Client
	model  *genai.GenerativeModel
}

func NewClient(ctx context.Context, apiKey, model string) (*Client, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("oracle client: %w", err)
	}
	if model == "" {
		model = DefaultModel
	}
	m := client.GenerativeModel(model)
	m.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(systemPrompt)},
	}
	return &Client{client: client, model: m}, nil
}

// Ask sends one question and returns the Oracle's reply. An empty or
// non-text response maps to domain.ErrOracleSilent.
func (c *Client) Ask(ctx context.Context, question string) (string, error) {
	resp, err := c.model.GenerateContent(ctx, genai.Text(question))
	if err != nil {
		return "", fmt.Errorf("oracle ask: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", domain.ErrOracleSilent
	}
	text, ok := resp.Candidates[0].Content.Parts[0].(genai.Text)
	if !ok {
		return "", domain.ErrOracleSilent
	}
	answer := strings.TrimSpace(string(text))
	if answer == "" {
		return "", domain.ErrOracleSilent
	}
	return answer, nil
}

func (c *Client) Close() error {
	return c.client.Close()
}
