package ports

import (
	"context"
	"errors"

	"cashback-catalog-service/internal/core/domain"
)

// ErrNotFound is returned by repository Update/Delete when the addressed id
// does not exist. Get methods return (nil, nil) instead. Services translate
// this into the user-facing error taxonomy.
var ErrNotFound = errors.New("record not found")

// MerchantRepository owns the merchant table.
//
// Create assigns a new unique id when m.ID is empty, checked against the
// full current table (not a counter), so id reuse after deletions cannot
// collide. List returns rows in storage (insertion) order. Implementations
// serialize writes per table; a delete racing an update on the same id
// resolves with the delete winning once committed, the loser observing
// ErrNotFound.
type MerchantRepository interface {
	List(ctx context.Context) ([]domain.Merchant, error)
	GetByID(ctx context.Context, id string) (*domain.Merchant, error)
	GetByName(ctx context.Context, name string) (*domain.Merchant, error)
	Create(ctx context.Context, m *domain.Merchant) error
	Update(ctx context.Context, m *domain.Merchant) error
	Delete(ctx context.Context, id string) error
}

// OfferRepository owns the offer table. Same contract as
// MerchantRepository: store-assigned ids, insertion order, per-table write
// serialization.
type OfferRepository interface {
	List(ctx context.Context) ([]domain.Offer, error)
	GetByID(ctx context.Context, id string) (*domain.Offer, error)
	Create(ctx context.Context, o *domain.Offer) error
	Update(ctx context.Context, o *domain.Offer) error
	Delete(ctx context.Context, id string) error
}
