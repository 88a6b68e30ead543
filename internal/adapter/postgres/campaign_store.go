package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"robofund/internal/core/domain"
)

// storageKey addresses the single durable slot holding the whole campaign
// collection.
const storageKey = "robofund_campaigns"

// blobVersion tags the serialized collection so a future format change can
// be detected instead of silently misparsed.
const blobVersion = 1

// blob is the persisted shape of the slot: one versioned array of campaigns.
type blob struct {
	Version   int               `json:"version"`
	Campaigns []domain.Campaign `json:"campaigns"`
}

// CampaignStore implements port.CampaignStore over a single jsonb row in
// the kv_store table. The whole collection is loaded and rewritten on every
// mutation; each cycle runs in a transaction with the row locked FOR UPDATE
// so concurrent contributions are never lost.
type CampaignStore struct {
	pool *pgxpool.Pool
}

// NewCampaignStore returns a store backed by the given pool.
func NewCampaignStore(pool *pgxpool.Pool) *CampaignStore {
	return &CampaignStore{pool: pool}
}

// List returns the collection in stored order, seeding the slot on first
// access.
func (s *CampaignStore) List(ctx context.Context) ([]domain.Campaign, error) {
	var campaigns []domain.Campaign
	err := s.withSlot(ctx, func(current []domain.Campaign) ([]domain.Campaign, bool, error) {
		campaigns = current
		return nil, false, nil
	})
	if err != nil {
		return nil, err
	}
	return campaigns, nil
}

// Get returns the campaign with the given id, or nil when absent.
func (s *CampaignStore) Get(ctx context.Context, id string) (*domain.Campaign, error) {
	var found *domain.Campaign
	err := s.withSlot(ctx, func(current []domain.Campaign) ([]domain.Campaign, bool, error) {
		for _, c := range current {
			if c.ID == id {
				cp := c
				found = &cp
				break
			}
		}
		return nil, false, nil
	})
	if err != nil {
		return nil, err
	}
	return found, nil
}

// Save upserts by id and rewrites the slot.
func (s *CampaignStore) Save(ctx context.Context, campaign domain.Campaign) error {
	return s.withSlot(ctx, func(current []domain.Campaign) ([]domain.Campaign, bool, error) {
		for i := range current {
			if current[i].ID == campaign.ID {
				current[i] = campaign
				return current, true, nil
			}
		}
		return append(current, campaign), true, nil
	})
}

// Contribute adds amount to the campaign's funding total. A missing id is
// silently ignored; the slot is left untouched.
func (s *CampaignStore) Contribute(ctx context.Context, id string, amount int64) error {
	return s.withSlot(ctx, func(current []domain.Campaign) ([]domain.Campaign, bool, error) {
		for i := range current {
			if current[i].ID == id {
				current[i].CurrentAmount += amount
				return current, true, nil
			}
		}
		return nil, false, nil
	})
}

// withSlot runs fn against the current collection inside a transaction that
// holds the slot row locked. An empty slot is seeded (and persisted) before
// fn runs. When fn reports a change, the returned collection replaces the
// slot's value before commit.
func (s *CampaignStore) withSlot(ctx context.Context, fn func(current []domain.Campaign) ([]domain.Campaign, bool, error)) (err error) {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("begin: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	current, err := s.loadLocked(ctx, tx)
	if err != nil {
		return err
	}

	updated, changed, err := fn(current)
	if err != nil {
		return err
	}
	if changed {
		if err = s.write(ctx, tx, updated); err != nil {
			return err
		}
	}
	return nil
}

// loadLocked reads the slot with a row lock, seeding it when empty.
func (s *CampaignStore) loadLocked(ctx context.Context, tx pgx.Tx) ([]domain.Campaign, error) {
	var raw []byte
	err := tx.QueryRow(ctx, `SELECT value FROM kv_store WHERE key = $1 FOR UPDATE`, storageKey).Scan(&raw)
	if errors.Is(err, pgx.ErrNoRows) {
		seed := domain.SeedCampaigns()
		if err = s.write(ctx, tx, seed); err != nil {
			return nil, err
		}
		return seed, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load slot: %w", err)
	}

	var b blob
	if err = json.Unmarshal(raw, &b); err != nil {
		return nil, fmt.Errorf("decode slot: %w", err)
	}
	if b.Version != blobVersion {
		return nil, fmt.Errorf("unsupported slot version %d", b.Version)
	}
	return b.Campaigns, nil
}

func (s *CampaignStore) write(ctx context.Context, tx pgx.Tx, campaigns []domain.Campaign) error {
	raw, err := json.Marshal(blob{Version: blobVersion, Campaigns: campaigns})
	if err != nil {
		return fmt.Errorf("encode slot: %w", err)
	}
	_, err = tx.Exec(ctx, `INSERT INTO kv_store (key, value) VALUES ($1, $2)
ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`, storageKey, raw)
	if err != nil {
		return fmt.Errorf("write slot: %w", err)
	}
	return nil
}
