// Package memory provides an in-process CampaignStore backed by a plain
// slice. It exists as the dev/test backing medium behind the same port as
// the Postgres store; a single mutex gives the mutual exclusion the
// read-modify-write contribution path needs once callers are concurrent.
package memory

import (
	"context"
	"sync"

	"robofund/internal/core/domain"
)

// CampaignStore keeps the whole collection in memory, preserving insertion
// order. Campaigns are deep-copied on the way in and out, so callers can
// only change stored state through Save. The zero value is not usable; use
// NewCampaignStore.
type CampaignStore struct {
	mu        sync.Mutex
	campaigns []domain.Campaign
	seeded    bool
}

// NewCampaignStore returns an empty store. The first List call seeds it.
func NewCampaignStore() *CampaignStore {
	return &CampaignStore{}
}

// List returns a copy of the collection in insertion order, seeding the
// store on first access.
func (s *CampaignStore) List(ctx context.Context) ([]domain.Campaign, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seedLocked()
	out := make([]domain.Campaign, len(s.campaigns))
	for i, c := range s.campaigns {
		out[i] = c.Clone()
	}
	return out, nil
}

// Get returns the campaign with the given id, or nil when absent.
func (s *CampaignStore) Get(ctx context.Context, id string) (*domain.Campaign, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seedLocked()
	for _, c := range s.campaigns {
		if c.ID == id {
			cp := c.Clone()
			return &cp, nil
		}
	}
	return nil, nil
}

// Save upserts by id.
func (s *CampaignStore) Save(ctx context.Context, c domain.Campaign) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seedLocked()
	s.upsertLocked(c.Clone())
	return nil
}

// Contribute adds amount to the campaign's funding total. A missing id is
// silently ignored.
func (s *CampaignStore) Contribute(ctx context.Context, id string, amount int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.seedLocked()
	for i := range s.campaigns {
		if s.campaigns[i].ID == id {
			s.campaigns[i].CurrentAmount += amount
			return nil
		}
	}
	return nil
}

func (s *CampaignStore) seedLocked() {
	if s.seeded {
		return
	}
	s.campaigns = domain.SeedCampaigns()
	s.seeded = true
}

func (s *CampaignStore) upsertLocked(c domain.Campaign) {
	for i := range s.campaigns {
		if s.campaigns[i].ID == c.ID {
			s.campaigns[i] = c
			return
		}
	}
	s.campaigns = append(s.campaigns, c)
}
