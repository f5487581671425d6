package vision

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/developia-II/jewellery-storefront/internal/config"
	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const maxImageBytes = 10 << 20

type GeminiAnalyzer struct {
	client *genai.Client
	model  *genai.GenerativeModel
	http   *http.Client
}

func NewGeminiAnalyzer(ctx context.Context, cfg config.GeminiConfig) (*GeminiAnalyzer, error) {
	if cfg.APIKey == "" {
		return nil, errors.New("gemini api key is not configured")
	}
	client, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("init gemini: %w", err)
	}

	model := client.GenerativeModel(cfg.Model)
	model.SetTemperature(0.3)
	model.SetMaxOutputTokens(500)
	model.ResponseMIMEType = "application/json"
	model.SystemInstruction = genai.NewUserContent(genai.Text(systemPrompt))

	return &GeminiAnalyzer{
		client: client,
		model:  model,
		http:   &http.Client{Timeout: 30 * time.Second},
	}, nil
}

func (g *GeminiAnalyzer) Analyze(ctx context.Context, imageURL string) (Analysis, error) {
	data, format, err := g.fetchImage(ctx, imageURL)
	if err != nil {
		return Analysis{}, err
	}

	resp, err := g.model.GenerateContent(ctx, genai.ImageData(format, data), genai.Text(userPrompt))
	if err != nil {
		return Analysis{}, fmt.Errorf("generate content: %w", err)
	}
	return ParseAnalysis(responseText(resp))
}

func (g *GeminiAnalyzer) Close() error {
	return g.client.Close()
}

func (g *GeminiAnalyzer) fetchImage(ctx context.Context, imageURL string) ([]byte, string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return nil, "", fmt.Errorf("fetch image: %w", err)
	}
	res, err := g.http.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("fetch image: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("fetch image: unexpected status %d", res.StatusCode)
	}
	data, err := io.ReadAll(io.LimitReader(res.Body, maxImageBytes+1))
	if err != nil {
		return nil, "", fmt.Errorf("fetch image: %w", err)
	}
	if len(data) > maxImageBytes {
		return nil, "", errors.New("fetch image: image exceeds 10MB")
	}

	format, ok := imageFormat(http.DetectContentType(data))
	if !ok {
		return nil, "", errors.New("fetch image: not an image")
	}
	return data, format, nil
}

// imageFormat maps a sniffed content type such as image/jpeg to jpeg.
func imageFormat(contentType string) (string, bool) {
	format, ok := strings.CutPrefix(contentType, "image/")
	return format, ok && format != ""
}

func responseText(resp *genai.GenerateContentResponse) string {
	if resp == nil {
		return ""
	}
	var b strings.Builder
	for _, cand := range resp.Candidates {
		if cand == nil || cand.Content == nil {
			continue
		}
		for _, part := range cand.Content.Parts {
			if text, ok := part.(genai.Text); ok {
				b.WriteString(string(text))
			}
		}
		break
	}
	return b.String()
}
