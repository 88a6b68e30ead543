// Package gemini is the outbound adapter for the generative-AI API. Every
// call absorbs failure at this boundary: network errors, non-2xx statuses
// and malformed payloads all resolve to deterministic fallback values
// derived from the input, never to an error.
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"robofund/internal/core/port"
)

// Config configures the generative API client. HTTPClient is injectable so
// tests can point the client at a local server.
type Config struct {
	BaseURL    string
	APIKey     string
	TextModel  string
	ImageModel string
	HTTPClient *http.Client
}

// Client implements port.AIGateway against the generateContent endpoint.
type Client struct {
	cfg    Config
	logger *slog.Logger
}

// NewClient builds a gateway client. Missing optional config fields are
// filled with defaults.
func NewClient(cfg Config, logger *slog.Logger) *Client {
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = http.DefaultClient
	}
	if strings.TrimSpace(cfg.BaseURL) == "" {
		cfg.BaseURL = "https://generativelanguage.googleapis.com"
	}
	if strings.TrimSpace(cfg.TextModel) == "" {
		cfg.TextModel = "gemini-2.5-flash"
	}
	if strings.TrimSpace(cfg.ImageModel) == "" {
		cfg.ImageModel = "gemini-2.5-flash-image"
	}
	return &Client{cfg: cfg, logger: logger}
}

// GenerateNarrative asks the model for campaign copy. On any failure it
// returns the fallback narrative derived purely from req, so two failed
// calls with identical input return identical values.
func (c *Client) GenerateNarrative(ctx context.Context, req port.NarrativeReq) port.Narrative {
	prompt := fmt.Sprintf(`You are an expert crowdfunding consultant.
Create a comprehensive campaign structure for a project in the %q category.
The user's raw idea is: %q.
Their primary goal is: %q.

Respond with a JSON object with string fields "title", "tagline",
"description" (at least 2 paragraphs, markdown), "marketingCopy" and
"targetAudience".`, req.Category, req.Idea, req.Goal)

	body, err := c.generate(ctx, c.cfg.TextModel, prompt, narrativeSchema)
	if err != nil {
		c.logger.Warn("narrative generation failed, using fallback", slog.Any("error", err))
		return fallbackNarrative(req)
	}

	var n port.Narrative
	if err = json.Unmarshal([]byte(body), &n); err != nil {
		c.logger.Warn("narrative response malformed, using fallback", slog.Any("error", err))
		return fallbackNarrative(req)
	}
	if n.Title == "" || n.Tagline == "" || n.Description == "" || n.MarketingCopy == "" || n.TargetAudience == "" {
		c.logger.Warn("narrative response incomplete, using fallback")
		return fallbackNarrative(req)
	}
	return n
}

// GenerateVisual asks the image model for a promotional image and returns
// it as a data URI. On failure it returns a placeholder URL derived from
// the excerpt.
func (c *Client) GenerateVisual(ctx context.Context, excerpt string) string {
	prompt := fmt.Sprintf("Generate a high-quality, photorealistic or stylistic promotional image "+
		"for a crowdfunding campaign described as: %s. Aspect ratio 16:9. No text overlay.", excerpt)

	resp, err := c.call(ctx, c.cfg.ImageModel, prompt, nil)
	if err != nil {
		c.logger.Warn("image generation failed, using placeholder", slog.Any("error", err))
		return placeholderImage(excerpt)
	}
	for _, cand := range resp.Candidates {
		for _, part := range cand.Content.Parts {
			if part.InlineData != nil && part.InlineData.Data != "" {
				return fmt.Sprintf("data:%s;base64,%s", part.InlineData.MimeType, part.InlineData.Data)
			}
		}
	}
	return placeholderImage(excerpt)
}

// AnalyzePerformance asks the model for a funding-performance snapshot. On
// failure it returns a fixed plausible analysis.
func (c *Client) AnalyzePerformance(ctx context.Context, req port.AnalysisReq) port.Analysis {
	excerpt := req.Description
	// truncate on a rune boundary so the prompt never carries a split
	// multi-byte sequence
	if r := []rune(excerpt); len(r) > 200 {
		excerpt = string(r[:200]) + "..."
	}
	prompt := fmt.Sprintf(`Analyze the current status of the crowdfunding campaign %q.
Description: %q
Progress: %d raised of %d goal.

Respond with a JSON object: "sentimentScore" (0-100), "tips" (three short
actionable strings) and "successProbability" (0-100).`,
		req.Title, excerpt, req.CurrentAmount, req.TargetAmount)

	body, err := c.generate(ctx, c.cfg.TextModel, prompt, analysisSchema)
	if err != nil {
		c.logger.Warn("analysis failed, using fallback", slog.Any("error", err))
		return fallbackAnalysis()
	}

	var a port.Analysis
	if err = json.Unmarshal([]byte(body), &a); err != nil {
		c.logger.Warn("analysis response malformed, using fallback", slog.Any("error", err))
		return fallbackAnalysis()
	}
	if len(a.Tips) == 0 {
		c.logger.Warn("analysis response incomplete, using fallback")
		return fallbackAnalysis()
	}
	a.SentimentScore = clampScore(a.SentimentScore)
	a.SuccessProbability = clampScore(a.SuccessProbability)
	return a
}

// generate runs a JSON-mode text generation constrained by schema and
// returns the first text part.
func (c *Client) generate(ctx context.Context, model, prompt string, schema *responseSchema) (string, error) {
	resp, err := c.call(ctx, model, prompt, schema)
	if err != nil {
		return "", err
	}
	for _, cand := range resp.Candidates {
		for _, part := range cand.Content.Parts {
			if part.Text != "" {
				return part.Text, nil
			}
		}
	}
	return "", fmt.Errorf("response contains no text part")
}

type generateRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type generationConfig struct {
	ResponseMIMEType string          `json:"responseMimeType,omitempty"`
	ResponseSchema   *responseSchema `json:"responseSchema,omitempty"`
}

// responseSchema is the subset of the API's schema vocabulary the client
// needs to pin down its JSON response shapes.
type responseSchema struct {
	Type       string                     `json:"type"`
	Properties map[string]*responseSchema `json:"properties,omitempty"`
	Items      *responseSchema            `json:"items,omitempty"`
	Required   []string                   `json:"required,omitempty"`
}

var narrativeSchema = &responseSchema{
	Type: "OBJECT",
	Properties: map[string]*responseSchema{
		"title":          {Type: "STRING"},
		"tagline":        {Type: "STRING"},
		"description":    {Type: "STRING"},
		"marketingCopy":  {Type: "STRING"},
		"targetAudience": {Type: "STRING"},
	},
	Required: []string{"title", "tagline", "description", "marketingCopy", "targetAudience"},
}

var analysisSchema = &responseSchema{
	Type: "OBJECT",
	Properties: map[string]*responseSchema{
		"sentimentScore":     {Type: "NUMBER"},
		"tips":               {Type: "ARRAY", Items: &responseSchema{Type: "STRING"}},
		"successProbability": {Type: "NUMBER"},
	},
	Required: []string{"sentimentScore", "tips", "successProbability"},
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inlineData,omitempty"`
}

type inlineData struct {
	MimeType string `json:"mimeType"`
	Data     string `json:"data"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

func (c *Client) call(ctx context.Context, model, prompt string, schema *responseSchema) (*generateResponse, error) {
	reqBody := generateRequest{
		Contents: []content{{Parts: []part{{Text: prompt}}}},
	}
	if schema != nil {
		reqBody.GenerationConfig = &generationConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   schema,
		}
	}
	raw, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", strings.TrimRight(c.cfg.BaseURL, "/"), model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	// The key is sent only as a header and never echoed in errors.
	req.Header.Set("x-goog-api-key", c.cfg.APIKey)

	res, err := c.cfg.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer res.Body.Close()
	if res.StatusCode < 200 || res.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(res.Body, 4096))
		return nil, fmt.Errorf("request status %d: %s", res.StatusCode, strings.TrimSpace(string(body)))
	}

	var resp generateResponse
	if err = json.NewDecoder(res.Body).Decode(&resp); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &resp, nil
}

func fallbackNarrative(req port.NarrativeReq) port.Narrative {
	return port.Narrative{
		Title:          "Project " + string(req.Category),
		Tagline:        "A revolutionary new project.",
		Description:    req.Idea,
		MarketingCopy:  "Check this out!",
		TargetAudience: "General public",
	}
}

func fallbackAnalysis() port.Analysis {
	return port.Analysis{
		SentimentScore: 75,
		Tips: []string{
			"Share more on social media",
			"Add a video update",
			"Expand reward tiers",
		},
		SuccessProbability: 60,
	}
}

// placeholderImage derives a stable placeholder URL from the excerpt.
func placeholderImage(excerpt string) string {
	h := fnv.New32a()
	_, _ = h.Write([]byte(excerpt))
	return fmt.Sprintf("https://picsum.photos/800/450?random=%d", h.Sum32())
}

func clampScore(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
