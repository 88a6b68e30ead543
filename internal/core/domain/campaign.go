package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// Status is the lifecycle state of a campaign. The store never changes it
// on its own; transitions are driven by callers.
type Status string

const (
	StatusActive    Status = "active"
	StatusCompleted Status = "completed"
	StatusDraft     Status = "draft"
)

// Valid reports whether s is a known status value.
func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusCompleted, StatusDraft:
		return true
	}
	return false
}

var (
	ErrEmptyTierTitle       = errors.New("tier title is required")
	ErrNonPositiveTierPrice = errors.New("tier amount must be positive")
	ErrEmptyTierDescription = errors.New("tier description is required")
)

// Tier is a reward pledge level owned by its parent campaign. Amounts are
// stored in integer currency-agnostic units, like campaign amounts.
type Tier struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Amount      int64  `json:"amount"`
	Description string `json:"description"`
}

// Validate checks the authoring rules for a tier: non-empty title,
// positive amount and non-empty description.
func (t Tier) Validate() error {
	if t.Title == "" {
		return ErrEmptyTierTitle
	}
	if t.Amount <= 0 {
		return ErrNonPositiveTierPrice
	}
	if t.Description == "" {
		return ErrEmptyTierDescription
	}
	return nil
}

// AIAnalysis is a cached external-service result attached at creation time.
// The store never refreshes it; staleness is acceptable.
type AIAnalysis struct {
	TargetAudience     string `json:"targetAudience"`
	MarketingCopy      string `json:"marketingCopy"`
	SuccessProbability int    `json:"successProbability"` // 0–100
}

// Campaign is the aggregate root of the crowdfunding domain. ID is assigned
// at creation and immutable; CurrentAmount starts at 0 and only grows
// through contributions. Tier order is meaningful for display.
type Campaign struct {
	ID            string      `json:"id"`
	CreatorName   string      `json:"creatorName"`
	Title         string      `json:"title"`
	Tagline       string      `json:"tagline"`
	Description   string      `json:"description"`
	Category      Category    `json:"category"`
	ImageURL      string      `json:"imageUrl"`
	TargetAmount  int64       `json:"targetAmount"`
	CurrentAmount int64       `json:"currentAmount"`
	Deadline      time.Time   `json:"deadline"`
	CreatedAt     time.Time   `json:"createdAt"`
	Status        Status      `json:"status"`
	Tiers         []Tier      `json:"tiers"`
	AIAnalysis    *AIAnalysis `json:"aiAnalysis,omitempty"`
}

// Clone returns a deep copy of the campaign: the tier list and the analysis
// snapshot are copied, never aliased, so mutating the clone cannot reach the
// original.
func (c Campaign) Clone() Campaign {
	if c.Tiers != nil {
		c.Tiers = append([]Tier(nil), c.Tiers...)
	}
	if c.AIAnalysis != nil {
		analysis := *c.AIAnalysis
		c.AIAnalysis = &analysis
	}
	return c
}

// AddTier validates t and appends it to the campaign's tier list. A missing
// id is filled with a fresh uuid; an id colliding with an existing tier is
// replaced with a fresh uuid so ids stay unique within the campaign.
func (c *Campaign) AddTier(t Tier) error {
	if err := t.Validate(); err != nil {
		return err
	}
	if t.ID == "" || c.hasTier(t.ID) {
		t.ID = uuid.NewString()
	}
	c.Tiers = append(c.Tiers, t)
	return nil
}

// RemoveTier removes the tier with the given id. Removal is unconditional:
// a missing id leaves the list unchanged.
func (c *Campaign) RemoveTier(id string) {
	for i, t := range c.Tiers {
		if t.ID == id {
			c.Tiers = append(c.Tiers[:i], c.Tiers[i+1:]...)
			return
		}
	}
}

func (c *Campaign) hasTier(id string) bool {
	for _, t := range c.Tiers {
		if t.ID == id {
			return true
		}
	}
	return false
}
