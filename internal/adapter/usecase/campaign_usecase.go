package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"robofund/internal/core/domain"
	"robofund/internal/core/port"
)

// fundingSeriesDays is the number of daily points in the dashboard chart.
const fundingSeriesDays = 7

// CampaignUseCase implements the application workflows over a campaign
// store and the AI gateway. Validation that the store deliberately omits
// (contribution sign, target amounts, category membership) lives here.
type CampaignUseCase struct {
	store   port.CampaignStore
	gateway port.AIGateway
}

// NewCampaignUseCase creates a usecase with the provided store and gateway.
func NewCampaignUseCase(store port.CampaignStore, gateway port.AIGateway) *CampaignUseCase {
	return &CampaignUseCase{store: store, gateway: gateway}
}

// ListCampaigns returns campaigns in stored order. A non-empty query
// filters case-insensitively over title, description and category.
func (u *CampaignUseCase) ListCampaigns(ctx context.Context, query string) ([]domain.Campaign, error) {
	campaigns, err := u.store.List(ctx)
	if err != nil {
		return nil, err
	}
	query = strings.TrimSpace(query)
	if query == "" {
		return campaigns, nil
	}
	q := strings.ToLower(query)
	filtered := make([]domain.Campaign, 0, len(campaigns))
	for _, c := range campaigns {
		if strings.Contains(strings.ToLower(c.Title), q) ||
			strings.Contains(strings.ToLower(c.Description), q) ||
			strings.Contains(strings.ToLower(string(c.Category)), q) {
			filtered = append(filtered, c)
		}
	}
	return filtered, nil
}

// GetCampaign returns the campaign with the given id, or nil when absent.
func (u *CampaignUseCase) GetCampaign(ctx context.Context, id string) (*domain.Campaign, error) {
	return u.store.Get(ctx, id)
}

// LaunchCampaign is the wizard's commit step. It validates the payload,
// assembles a new active campaign with a generated id, zero funding and a
// 30-day deadline, and persists it.
func (u *CampaignUseCase) LaunchCampaign(ctx context.Context, req port.LaunchReq) (*domain.Campaign, error) {
	if err := validateLaunch(req); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	campaign := domain.Campaign{
		ID:            uuid.NewString(),
		CreatorName:   req.CreatorName,
		Title:         req.Narrative.Title,
		Tagline:       req.Narrative.Tagline,
		Description:   req.Narrative.Description,
		Category:      req.Category,
		ImageURL:      req.ImageURL,
		TargetAmount:  req.TargetAmount,
		CurrentAmount: 0,
		Deadline:      port.CampaignDeadline(now),
		CreatedAt:     now,
		Status:        domain.StatusActive,
	}
	if campaign.ImageURL == "" {
		campaign.ImageURL = "https://picsum.photos/800/450"
	}
	for _, t := range req.Tiers {
		if err := campaign.AddTier(t); err != nil {
			return nil, fmt.Errorf("%w: %w", port.ErrInvalidCampaign, err)
		}
	}
	if req.Analysis != nil {
		analysis := *req.Analysis
		campaign.AIAnalysis = &analysis
	} else {
		campaign.AIAnalysis = &domain.AIAnalysis{
			TargetAudience:     req.Narrative.TargetAudience,
			MarketingCopy:      req.Narrative.MarketingCopy,
			SuccessProbability: initialProbability(req),
		}
	}

	if err := u.store.Save(ctx, campaign); err != nil {
		return nil, err
	}
	return &campaign, nil
}

// Contribute adds amount to a campaign's funding total. Non-positive
// amounts are rejected; a missing id remains a silent no-op, matching the
// store contract.
func (u *CampaignUseCase) Contribute(ctx context.Context, id string, amount int64) error {
	if amount <= 0 {
		return port.ErrInvalidAmount
	}
	return u.store.Contribute(ctx, id, amount)
}

// EditCampaign merges a partial update into the stored record. The id is
// never mergeable; invalid patch values are rejected before anything is
// written.
func (u *CampaignUseCase) EditCampaign(ctx context.Context, id string, patch domain.CampaignPatch) (*domain.Campaign, error) {
	if err := validatePatch(patch); err != nil {
		return nil, err
	}
	current, err := u.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, port.ErrNotFound
	}
	updated := patch.Apply(*current)
	for i := range updated.Tiers {
		if updated.Tiers[i].ID == "" {
			updated.Tiers[i].ID = uuid.NewString()
		}
	}
	if err := u.store.Save(ctx, updated); err != nil {
		return nil, err
	}
	return &updated, nil
}

// Dashboard returns the campaign, a fresh AI performance analysis and the
// funding time series consumed by the chart widget. Analysis failures
// degrade to fallback content inside the gateway, never to an error here.
func (u *CampaignUseCase) Dashboard(ctx context.Context, id string) (*port.DashboardResp, error) {
	campaign, err := u.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if campaign == nil {
		return nil, port.ErrNotFound
	}
	analysis := u.gateway.AnalyzePerformance(ctx, port.AnalysisReq{
		Title:         campaign.Title,
		Description:   campaign.Description,
		CurrentAmount: campaign.CurrentAmount,
		TargetAmount:  campaign.TargetAmount,
	})
	return &port.DashboardResp{
		Campaign: *campaign,
		Analysis: analysis,
		Series:   fundingSeries(*campaign),
	}, nil
}

func validateLaunch(req port.LaunchReq) error {
	if !req.Category.Valid() {
		return fmt.Errorf("%w: unknown category %q", port.ErrInvalidCampaign, req.Category)
	}
	if req.TargetAmount <= 0 {
		return fmt.Errorf("%w: target amount must be positive", port.ErrInvalidCampaign)
	}
	if req.Narrative.Title == "" {
		return fmt.Errorf("%w: title is required", port.ErrInvalidCampaign)
	}
	if req.Narrative.Description == "" {
		return fmt.Errorf("%w: description is required", port.ErrInvalidCampaign)
	}
	return nil
}

func validatePatch(patch domain.CampaignPatch) error {
	if patch.TargetAmount != nil && *patch.TargetAmount <= 0 {
		return fmt.Errorf("%w: target amount must be positive", port.ErrInvalidCampaign)
	}
	if patch.Category != nil && !patch.Category.Valid() {
		return fmt.Errorf("%w: unknown category %q", port.ErrInvalidCampaign, *patch.Category)
	}
	if patch.Status != nil && !patch.Status.Valid() {
		return fmt.Errorf("%w: unknown status %q", port.ErrInvalidCampaign, *patch.Status)
	}
	seen := make(map[string]bool, len(patch.Tiers))
	for _, t := range patch.Tiers {
		if err := t.Validate(); err != nil {
			return fmt.Errorf("%w: %w", port.ErrInvalidCampaign, err)
		}
		if t.ID == "" {
			continue
		}
		if seen[t.ID] {
			return fmt.Errorf("%w: duplicate tier id %q", port.ErrInvalidCampaign, t.ID)
		}
		seen[t.ID] = true
	}
	return nil
}

// initialProbability derives a stable starting success probability in
// [70,95) from the launch payload, standing in for a full analysis until
// the dashboard runs one.
func initialProbability(req port.LaunchReq) int {
	var sum int
	for _, r := range req.Narrative.Title + string(req.Category) {
		sum += int(r)
	}
	return 70 + sum%25
}

// fundingSeries splits the campaign's raised total across the last seven
// days as a deterministic ramp. The chart widget consumes these points
// as-is; real per-day contribution history is not recorded.
func fundingSeries(c domain.Campaign) []port.FundingPoint {
	points := make([]port.FundingPoint, 0, fundingSeriesDays)
	// weights 1..7 sum to 28; earlier days get smaller shares
	const totalWeight = fundingSeriesDays * (fundingSeriesDays + 1) / 2
	var allocated int64
	for i := 1; i <= fundingSeriesDays; i++ {
		label := fmt.Sprintf("Day %d", i)
		if i == fundingSeriesDays {
			label = "Today"
		}
		amount := c.CurrentAmount * int64(i) / totalWeight
		if i == fundingSeriesDays {
			amount = c.CurrentAmount - allocated
		}
		allocated += amount
		points = append(points, port.FundingPoint{Label: label, Amount: amount})
	}
	return points
}
