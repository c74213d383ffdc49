package completion

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

// GeminiClient generates text through the Gemini API.
type GeminiClient struct {
	apiKey string
	model  string
}

var _ Client = (*GeminiClient)(nil)

// NewGemini creates a Gemini-backed client.
func NewGemini(apiKey, model string) *GeminiClient {
	return &GeminiClient{
		apiKey: strings.TrimSpace(apiKey),
		model:  strings.TrimSpace(model),
	}
}

// Complete sends the prompt (plus optional image) to Gemini and returns
// the concatenated text parts of the first candidate.
func (c *GeminiClient) Complete(ctx context.Context, req Request) (string, error) {
	if c.apiKey == "" {
		return "", fmt.Errorf("gemini: API key is empty")
	}

	cl, err := genai.NewClient(ctx, option.WithAPIKey(c.apiKey))
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}
	defer cl.Close()

	m := cl.GenerativeModel(c.model)

	cfg := genai.GenerationConfig{
		Temperature: ptrFloat32(float32(req.Temperature)),
	}
	if req.JSONMode {
		cfg.ResponseMIMEType = "application/json"
	}
	if req.MaxTokens > 0 {
		cfg.MaxOutputTokens = ptrInt32(int32(req.MaxTokens))
	}
	m.GenerationConfig = cfg

	if req.System != "" {
		m.SystemInstruction = &genai.Content{
			Parts: []genai.Part{genai.Text(req.System)},
		}
	}

	parts := []genai.Part{genai.Text(req.Prompt)}
	if req.ImageBase64 != "" {
		img, err := base64.StdEncoding.DecodeString(req.ImageBase64)
		if err != nil {
			return "", fmt.Errorf("gemini: bad image base64: %w", err)
		}
		parts = append(parts, &genai.Blob{MIMEType: "image/jpeg", Data: img})
	}

	resp, err := m.GenerateContent(ctx, parts...)
	if err != nil {
		return "", fmt.Errorf("gemini: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("gemini: empty response")
	}

	var b strings.Builder
	for _, p := range resp.Candidates[0].Content.Parts {
		if t, ok := p.(genai.Text); ok {
			b.WriteString(string(t))
		}
	}

	out := strings.TrimSpace(b.String())
	if out == "" {
		return "", fmt.Errorf("gemini: no text in response")
	}
	return out, nil
}

func ptrFloat32(v float32) *float32 { return &v }
func ptrInt32(v int32) *int32       { return &v }
