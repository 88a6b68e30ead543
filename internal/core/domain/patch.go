package domain

// CampaignPatch is an explicit partial update for a campaign. Nil fields are
// left untouched by Apply. The campaign id is deliberately absent: it is
// immutable and never part of the mergeable set.
type CampaignPatch struct {
	CreatorName  *string   `json:"creatorName,omitempty"`
	Title        *string   `json:"title,omitempty"`
	Tagline      *string   `json:"tagline,omitempty"`
	Description  *string   `json:"description,omitempty"`
	Category     *Category `json:"category,omitempty"`
	ImageURL     *string   `json:"imageUrl,omitempty"`
	TargetAmount *int64    `json:"targetAmount,omitempty"`
	Status       *Status   `json:"status,omitempty"`
	Tiers        []Tier    `json:"tiers,omitempty"`
}

// Apply merges the patch field-by-field into a copy of c and returns it.
// The original campaign is not modified.
func (p CampaignPatch) Apply(c Campaign) Campaign {
	if p.CreatorName != nil {
		c.CreatorName = *p.CreatorName
	}
	if p.Title != nil {
		c.Title = *p.Title
	}
	if p.Tagline != nil {
		c.Tagline = *p.Tagline
	}
	if p.Description != nil {
		c.Description = *p.Description
	}
	if p.Category != nil {
		c.Category = *p.Category
	}
	if p.ImageURL != nil {
		c.ImageURL = *p.ImageURL
	}
	if p.TargetAmount != nil {
		c.TargetAmount = *p.TargetAmount
	}
	if p.Status != nil {
		c.Status = *p.Status
	}
	if p.Tiers != nil {
		c.Tiers = append([]Tier(nil), p.Tiers...)
	}
	return c
}
