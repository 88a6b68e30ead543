package port

import (
	"context"

	"robofund/internal/core/domain"
)

// NarrativeReq carries the creator's raw concept into text generation.
type NarrativeReq struct {
	Idea     string
	Goal     string
	Category domain.Category
}

// Narrative is the generated campaign copy reviewed in the creation wizard.
type Narrative struct {
	Title          string `json:"title"`
	Tagline        string `json:"tagline"`
	Description    string `json:"description"`
	MarketingCopy  string `json:"marketingCopy"`
	TargetAudience string `json:"targetAudience"`
}

// AnalysisReq describes a campaign's current funding state for the
// dashboard analysis call.
type AnalysisReq struct {
	Title         string
	Description   string
	CurrentAmount int64
	TargetAmount  int64
}

// Analysis is the AI-derived performance snapshot shown on the dashboard.
// Scores are percentages in [0,100].
type Analysis struct {
	SentimentScore     int      `json:"sentimentScore"`
	Tips               []string `json:"tips"`
	SuccessProbability int      `json:"successProbability"`
}

// AIGateway is the outbound port to the generative-AI service. Every call
// absorbs failure at the boundary: on any error, timeout or malformed
// response the methods return a deterministic fallback value instead of an
// error, so consumers never observe a raised failure — only possibly
// generic content.
type AIGateway interface {
	GenerateNarrative(ctx context.Context, req NarrativeReq) Narrative
	// GenerateVisual returns an opaque image reference (URL or data URI)
	// for the given description excerpt.
	GenerateVisual(ctx context.Context, excerpt string) string
	AnalyzePerformance(ctx context.Context, req AnalysisReq) Analysis
}
