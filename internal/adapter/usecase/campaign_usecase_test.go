package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"robofund/internal/adapter/memory"
	"robofund/internal/core/domain"
	"robofund/internal/core/port"
)

// stubGateway returns canned values and records analysis calls.
type stubGateway struct {
	analysis      port.Analysis
	analysisCalls int
}

func (g *stubGateway) GenerateNarrative(ctx context.Context, req port.NarrativeReq) port.Narrative {
	return port.Narrative{Title: "T", Tagline: "TL", Description: "D", MarketingCopy: "MC", TargetAudience: "TA"}
}

func (g *stubGateway) GenerateVisual(ctx context.Context, excerpt string) string {
	return "https://example.com/image.png"
}

func (g *stubGateway) AnalyzePerformance(ctx context.Context, req port.AnalysisReq) port.Analysis {
	g.analysisCalls++
	return g.analysis
}

func newTestUseCase() (*CampaignUseCase, *stubGateway) {
	gw := &stubGateway{analysis: port.Analysis{SentimentScore: 80, Tips: []string{"a", "b", "c"}, SuccessProbability: 70}}
	return NewCampaignUseCase(memory.NewCampaignStore(), gw), gw
}

func TestListCampaignsSearch(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestUseCase()

	all, err := svc.ListCampaigns(ctx, "")
	require.NoError(t, err)
	require.Len(t, all, 2)

	// matches title
	got, err := svc.ListCampaigns(ctx, "ecodrone")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "1", got[0].ID)

	// matches category
	got, err = svc.ListCampaigns(ctx, "games")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "2", got[0].ID)

	// matches description
	got, err = svc.ListCampaigns(ctx, "neo-tokyo")
	require.NoError(t, err)
	require.Len(t, got, 1)

	got, err = svc.ListCampaigns(ctx, "no such thing")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLaunchCampaign(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestUseCase()

	before := time.Now().UTC()
	campaign, err := svc.LaunchCampaign(ctx, port.LaunchReq{
		CreatorName:  "Current User",
		Category:     domain.CategoryTechnology,
		TargetAmount: 10000,
		Narrative: port.Narrative{
			Title:          "Signal Glove",
			Tagline:        "Speak with your hands.",
			Description:    "A wearable that translates sign language.",
			MarketingCopy:  "Wear the future.",
			TargetAudience: "Accessibility advocates",
		},
		Tiers: []domain.Tier{{Title: "Early Bird", Amount: 25, Description: "Digital copy"}},
	})
	require.NoError(t, err)
	require.NotNil(t, campaign)

	assert.NotEmpty(t, campaign.ID)
	assert.Equal(t, int64(0), campaign.CurrentAmount)
	assert.Equal(t, domain.StatusActive, campaign.Status)
	assert.Equal(t, "Signal Glove", campaign.Title)
	require.Len(t, campaign.Tiers, 1)
	assert.NotEmpty(t, campaign.Tiers[0].ID)

	// deadline is creation time + 30 days
	wantDeadline := campaign.CreatedAt.AddDate(0, 0, 30)
	assert.Equal(t, wantDeadline, campaign.Deadline)
	assert.False(t, campaign.CreatedAt.Before(before))

	// analysis snapshot derived from the narrative
	require.NotNil(t, campaign.AIAnalysis)
	assert.Equal(t, "Accessibility advocates", campaign.AIAnalysis.TargetAudience)
	assert.GreaterOrEqual(t, campaign.AIAnalysis.SuccessProbability, 70)
	assert.Less(t, campaign.AIAnalysis.SuccessProbability, 95)

	// persisted and retrievable
	stored, err := svc.GetCampaign(ctx, campaign.ID)
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, campaign.ID, stored.ID)
}

func TestLaunchCampaignValidation(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestUseCase()

	valid := port.LaunchReq{
		Category:     domain.CategoryArt,
		TargetAmount: 100,
		Narrative:    port.Narrative{Title: "t", Description: "d"},
	}

	cases := []struct {
		name   string
		mutate func(*port.LaunchReq)
	}{
		{"unknown category", func(r *port.LaunchReq) { r.Category = "Sports" }},
		{"zero target", func(r *port.LaunchReq) { r.TargetAmount = 0 }},
		{"negative target", func(r *port.LaunchReq) { r.TargetAmount = -1 }},
		{"empty title", func(r *port.LaunchReq) { r.Narrative.Title = "" }},
		{"empty description", func(r *port.LaunchReq) { r.Narrative.Description = "" }},
		{"invalid tier", func(r *port.LaunchReq) { r.Tiers = []domain.Tier{{Title: "x", Amount: 0, Description: "d"}} }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := valid
			tc.mutate(&req)
			_, err := svc.LaunchCampaign(ctx, req)
			assert.ErrorIs(t, err, port.ErrInvalidCampaign)
		})
	}
}

func TestContributeValidation(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestUseCase()

	assert.ErrorIs(t, svc.Contribute(ctx, "1", 0), port.ErrInvalidAmount)
	assert.ErrorIs(t, svc.Contribute(ctx, "1", -10), port.ErrInvalidAmount)

	require.NoError(t, svc.Contribute(ctx, "1", 500))
	c, err := svc.GetCampaign(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, int64(35000), c.CurrentAmount)

	// missing id stays a silent no-op
	require.NoError(t, svc.Contribute(ctx, "missing-id", 500))
}

func TestEditCampaign(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestUseCase()

	title := "EcoDrone v2"
	target := int64(60000)
	updated, err := svc.EditCampaign(ctx, "1", domain.CampaignPatch{Title: &title, TargetAmount: &target})
	require.NoError(t, err)
	assert.Equal(t, "EcoDrone v2", updated.Title)
	assert.Equal(t, int64(60000), updated.TargetAmount)
	// funding total survives the edit
	assert.Equal(t, int64(34500), updated.CurrentAmount)

	stored, err := svc.GetCampaign(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "EcoDrone v2", stored.Title)
}

func TestEditCampaignErrors(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestUseCase()

	_, err := svc.EditCampaign(ctx, "missing-id", domain.CampaignPatch{})
	assert.ErrorIs(t, err, port.ErrNotFound)

	bad := int64(-5)
	_, err = svc.EditCampaign(ctx, "1", domain.CampaignPatch{TargetAmount: &bad})
	assert.ErrorIs(t, err, port.ErrInvalidCampaign)

	badCat := domain.Category("Sports")
	_, err = svc.EditCampaign(ctx, "1", domain.CampaignPatch{Category: &badCat})
	assert.ErrorIs(t, err, port.ErrInvalidCampaign)

	badStatus := domain.Status("archived")
	_, err = svc.EditCampaign(ctx, "1", domain.CampaignPatch{Status: &badStatus})
	assert.ErrorIs(t, err, port.ErrInvalidCampaign)
}

// TestEditCampaignTierIDs verifies the edit path upholds the same tier-id
// rules as launch: duplicate ids are rejected, empty ids are filled in.
func TestEditCampaignTierIDs(t *testing.T) {
	ctx := context.Background()
	svc, _ := newTestUseCase()

	dup := []domain.Tier{
		{ID: "t1", Title: "A", Amount: 10, Description: "d"},
		{ID: "t1", Title: "B", Amount: 20, Description: "d"},
	}
	_, err := svc.EditCampaign(ctx, "1", domain.CampaignPatch{Tiers: dup})
	assert.ErrorIs(t, err, port.ErrInvalidCampaign)

	// a valid tier list replaces the stored one; missing ids are assigned
	fresh := []domain.Tier{
		{ID: "t1", Title: "A", Amount: 10, Description: "d"},
		{Title: "B", Amount: 20, Description: "d"},
	}
	updated, err := svc.EditCampaign(ctx, "1", domain.CampaignPatch{Tiers: fresh})
	require.NoError(t, err)
	require.Len(t, updated.Tiers, 2)

	seen := map[string]bool{}
	for _, tier := range updated.Tiers {
		require.NotEmpty(t, tier.ID)
		require.False(t, seen[tier.ID], "duplicate tier id %q", tier.ID)
		seen[tier.ID] = true
	}
}

func TestDashboard(t *testing.T) {
	ctx := context.Background()
	svc, gw := newTestUseCase()

	resp, err := svc.Dashboard(ctx, "1")
	require.NoError(t, err)
	assert.Equal(t, "1", resp.Campaign.ID)
	assert.Equal(t, 1, gw.analysisCalls)
	assert.Equal(t, 80, resp.Analysis.SentimentScore)

	require.Len(t, resp.Series, 7)
	assert.Equal(t, "Today", resp.Series[6].Label)
	var total int64
	for _, p := range resp.Series {
		assert.GreaterOrEqual(t, p.Amount, int64(0))
		total += p.Amount
	}
	assert.Equal(t, resp.Campaign.CurrentAmount, total)

	_, err = svc.Dashboard(ctx, "missing-id")
	assert.ErrorIs(t, err, port.ErrNotFound)
}
