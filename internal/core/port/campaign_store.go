package port

import (
	"context"

	"robofund/internal/core/domain"
)

// CampaignStore is the outbound persistence port for the campaign
// collection. The backing medium is a single durable slot holding the whole
// collection; implementations own serialization and must make each mutation
// atomic from the caller's perspective. Implementations shared between
// processes must serialize read-modify-write cycles themselves.
type CampaignStore interface {
	// List returns every campaign in insertion order. An empty slot is
	// initialised with the seed set first, so List never returns an empty
	// collection on a healthy store.
	List(ctx context.Context) ([]domain.Campaign, error)
	// Get returns the campaign with the given id, or nil when absent.
	// A missing id is not an error.
	Get(ctx context.Context, id string) (*domain.Campaign, error)
	// Save upserts by id: an existing record is replaced in place, a new
	// one is appended.
	Save(ctx context.Context, c domain.Campaign) error
	// Contribute adds amount to the campaign's current total. A missing id
	// is silently ignored; call sites rely on this being non-fatal.
	Contribute(ctx context.Context, id string, amount int64) error
}
