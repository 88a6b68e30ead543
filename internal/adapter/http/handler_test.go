package httpadapter

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"robofund/internal/adapter/memory"
	"robofund/internal/adapter/usecase"
	"robofund/internal/core/domain"
	"robofund/internal/core/port"
)

type fakeGateway struct{}

func (fakeGateway) GenerateNarrative(ctx context.Context, req port.NarrativeReq) port.Narrative {
	return port.Narrative{
		Title:          "Project " + string(req.Category),
		Tagline:        "A revolutionary new project.",
		Description:    req.Idea,
		MarketingCopy:  "Check this out!",
		TargetAudience: "General public",
	}
}

func (fakeGateway) GenerateVisual(ctx context.Context, excerpt string) string {
	return "https://example.com/visual.png"
}

func (fakeGateway) AnalyzePerformance(ctx context.Context, req port.AnalysisReq) port.Analysis {
	return port.Analysis{SentimentScore: 75, Tips: []string{"a", "b", "c"}, SuccessProbability: 60}
}

func newTestHandler() *Handler {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	gw := fakeGateway{}
	svc := usecase.NewCampaignUseCase(memory.NewCampaignStore(), gw)
	return NewHandler(svc, gw, logger)
}

func doRequest(h *Handler, method, target, body string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)
	return rec
}

func TestListCampaignsEndpoint(t *testing.T) {
	h := newTestHandler()

	rec := doRequest(h, http.MethodGet, "/api/v1/campaigns", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var campaigns []domain.Campaign
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &campaigns))
	require.Len(t, campaigns, 2)
	assert.Equal(t, "1", campaigns[0].ID)

	// search filter
	rec = doRequest(h, http.MethodGet, "/api/v1/campaigns?q=cyberpunk", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &campaigns))
	require.Len(t, campaigns, 1)
	assert.Equal(t, "2", campaigns[0].ID)
}

func TestGetCampaignEndpoint(t *testing.T) {
	h := newTestHandler()

	rec := doRequest(h, http.MethodGet, "/api/v1/campaigns/1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var c domain.Campaign
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &c))
	assert.Equal(t, int64(34500), c.CurrentAmount)

	rec = doRequest(h, http.MethodGet, "/api/v1/campaigns/missing-id", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestLaunchCampaignEndpoint(t *testing.T) {
	h := newTestHandler()

	body := `{
		"creatorName": "Current User",
		"category": "Technology",
		"targetAmount": 10000,
		"narrative": {
			"title": "Signal Glove",
			"tagline": "Speak with your hands.",
			"description": "A wearable translator.",
			"marketingCopy": "Wear the future.",
			"targetAudience": "Accessibility advocates"
		},
		"tiers": [{"title": "Early Bird", "amount": 25, "description": "Digital copy"}]
	}`
	rec := doRequest(h, http.MethodPost, "/api/v1/campaigns", body)
	require.Equal(t, http.StatusCreated, rec.Code)

	var c domain.Campaign
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &c))
	assert.NotEmpty(t, c.ID)
	assert.Equal(t, int64(0), c.CurrentAmount)
	assert.Equal(t, domain.StatusActive, c.Status)

	// invalid payloads are rejected
	rec = doRequest(h, http.MethodPost, "/api/v1/campaigns", `{"category": "Sports", "targetAmount": 1}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(h, http.MethodPost, "/api/v1/campaigns", `not json`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestContributeEndpoint(t *testing.T) {
	h := newTestHandler()

	rec := doRequest(h, http.MethodPost, "/api/v1/campaigns/1/contributions", `{"amount": 500}`)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doRequest(h, http.MethodGet, "/api/v1/campaigns/1", "")
	var c domain.Campaign
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &c))
	assert.Equal(t, int64(35000), c.CurrentAmount)

	// non-positive amounts are rejected at the workflow boundary
	rec = doRequest(h, http.MethodPost, "/api/v1/campaigns/1/contributions", `{"amount": 0}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	// missing id is a silent no-op, surfaced as success
	rec = doRequest(h, http.MethodPost, "/api/v1/campaigns/missing-id/contributions", `{"amount": 500}`)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestEditCampaignEndpoint(t *testing.T) {
	h := newTestHandler()

	rec := doRequest(h, http.MethodPatch, "/api/v1/campaigns/1", `{"title": "EcoDrone v2"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var c domain.Campaign
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &c))
	assert.Equal(t, "EcoDrone v2", c.Title)
	assert.Equal(t, "1", c.ID)

	rec = doRequest(h, http.MethodPatch, "/api/v1/campaigns/missing-id", `{"title": "x"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = doRequest(h, http.MethodPatch, "/api/v1/campaigns/1", `{"targetAmount": -1}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDashboardEndpoint(t *testing.T) {
	h := newTestHandler()

	rec := doRequest(h, http.MethodGet, "/api/v1/campaigns/1/dashboard", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp port.DashboardResp
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "1", resp.Campaign.ID)
	assert.Equal(t, 75, resp.Analysis.SentimentScore)
	assert.Len(t, resp.Series, 7)

	rec = doRequest(h, http.MethodGet, "/api/v1/campaigns/missing-id/dashboard", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGenerateNarrativeEndpoint(t *testing.T) {
	h := newTestHandler()

	rec := doRequest(h, http.MethodPost, "/api/v1/generate/narrative",
		`{"idea": "a solar sail kit", "goal": "fund a prototype", "category": "Technology"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var n port.Narrative
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &n))
	assert.Equal(t, "Project Technology", n.Title)
	assert.Equal(t, "a solar sail kit", n.Description)

	rec = doRequest(h, http.MethodPost, "/api/v1/generate/narrative", `{"idea": "", "goal": "g", "category": "Technology"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(h, http.MethodPost, "/api/v1/generate/narrative", `{"idea": "i", "goal": "g", "category": "Sports"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGenerateVisualEndpoint(t *testing.T) {
	h := newTestHandler()

	rec := doRequest(h, http.MethodPost, "/api/v1/generate/visual", `{"description": "a drone over a forest"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp visualResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "https://example.com/visual.png", resp.ImageURL)

	rec = doRequest(h, http.MethodPost, "/api/v1/generate/visual", `{"description": ""}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// recordingGateway captures the excerpt passed to visual generation.
type recordingGateway struct {
	fakeGateway
	excerpt string
}

func (g *recordingGateway) GenerateVisual(ctx context.Context, excerpt string) string {
	g.excerpt = excerpt
	return "https://example.com/visual.png"
}

// TestGenerateVisualExcerptTruncation posts a long multi-byte description
// and verifies the excerpt handed to the gateway is cut at 100 runes on a
// rune boundary.
func TestGenerateVisualExcerptTruncation(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	gw := &recordingGateway{}
	svc := usecase.NewCampaignUseCase(memory.NewCampaignStore(), gw)
	h := NewHandler(svc, gw, logger)

	long := strings.Repeat("→", 150)
	body, err := json.Marshal(map[string]string{"description": long})
	require.NoError(t, err)

	rec := doRequest(h, http.MethodPost, "/api/v1/generate/visual", string(body))
	require.Equal(t, http.StatusOK, rec.Code)

	assert.True(t, utf8.ValidString(gw.excerpt))
	assert.Equal(t, strings.Repeat("→", 100), gw.excerpt)
}

func TestCategoriesEndpoint(t *testing.T) {
	h := newTestHandler()

	rec := doRequest(h, http.MethodGet, "/api/v1/categories", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var categories []domain.Category
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &categories))
	assert.Equal(t, domain.Categories(), categories)
}
