package port

import (
	"context"
	"errors"
	"time"

	"robofund/internal/core/domain"
)

var (
	// ErrNotFound signals a lookup for an id that is not in the store, on
	// paths where absence is an error rather than a silent no-op.
	ErrNotFound = errors.New("campaign not found")
	// ErrInvalidAmount rejects non-positive contribution amounts at the
	// workflow boundary. The store itself does not validate sign.
	ErrInvalidAmount = errors.New("contribution amount must be positive")
	// ErrInvalidCampaign rejects a launch or edit payload that fails
	// domain validation.
	ErrInvalidCampaign = errors.New("invalid campaign")
)

// LaunchReq is the creation wizard's commit payload: the reviewed narrative,
// the chosen visual and the authored reward tiers. The usecase assigns the
// id, timestamps, deadline and zeroed funding total.
type LaunchReq struct {
	CreatorName  string             `json:"creatorName"`
	Category     domain.Category    `json:"category"`
	TargetAmount int64              `json:"targetAmount"`
	Narrative    Narrative          `json:"narrative"`
	ImageURL     string             `json:"imageUrl"`
	Tiers        []domain.Tier      `json:"tiers"`
	Analysis     *domain.AIAnalysis `json:"analysis,omitempty"`
}

// FundingPoint is one precomputed point of the dashboard funding series,
// consumed as-is by the chart widget.
type FundingPoint struct {
	Label  string `json:"label"`
	Amount int64  `json:"amount"`
}

// DashboardResp aggregates everything the creator dashboard renders for one
// campaign.
type DashboardResp struct {
	Campaign domain.Campaign `json:"campaign"`
	Analysis Analysis        `json:"analysis"`
	Series   []FundingPoint  `json:"series"`
}

// CampaignUseCase is the primary port into the application: browsing,
// creation, backing, editing and dashboard analytics.
type CampaignUseCase interface {
	// ListCampaigns returns campaigns in stored order, optionally filtered
	// by a case-insensitive query over title, description and category.
	ListCampaigns(ctx context.Context, query string) ([]domain.Campaign, error)

	// GetCampaign returns the campaign with the given id, or nil when
	// absent. Absence is not an error.
	GetCampaign(ctx context.Context, id string) (*domain.Campaign, error)

	// LaunchCampaign validates req, builds a new active campaign with a
	// generated id, zero funding and a 30-day deadline, and persists it.
	LaunchCampaign(ctx context.Context, req LaunchReq) (*domain.Campaign, error)

	// Contribute adds a positive amount to a campaign's funding total.
	// Non-positive amounts are rejected with ErrInvalidAmount. A missing id
	// is silently ignored, matching the store contract.
	Contribute(ctx context.Context, id string, amount int64) error

	// EditCampaign merges a partial update into the stored record and
	// persists the result. Returns ErrNotFound when the id is absent.
	EditCampaign(ctx context.Context, id string, patch domain.CampaignPatch) (*domain.Campaign, error)

	// Dashboard returns the campaign together with a fresh AI performance
	// analysis and the funding time series.
	Dashboard(ctx context.Context, id string) (*DashboardResp, error)
}

// CampaignDeadline computes a new campaign's deadline from its creation
// time. Fixed at 30 days, matching the wizard contract.
func CampaignDeadline(createdAt time.Time) time.Time {
	return createdAt.AddDate(0, 0, 30)
}
