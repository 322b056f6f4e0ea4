package ports

import (
	"context"
	"time"

	"cashback-catalog-service/internal/core/domain"
)

// OfferFilter narrows the rendered offer view. Empty string fields match
// everything. IncludeStaging=false (the default view) hides offers whose
// Available flag is unset.
type OfferFilter struct {
	MerchantID     string
	OfferID        string
	IncludeStaging bool
}

// CatalogQueryService is the read path: it joins offers with their owning
// merchants and derives the display-only fields. Pure reads, safe to call
// concurrently. Filters that match nothing yield an empty slice, never an
// error; orphaned offers (merchant deleted) are excluded from the view.
type CatalogQueryService interface {
	RenderOffers(ctx context.Context, filter OfferFilter) ([]domain.DisplayOffer, error)
	// OrphanedOffers lists offers whose merchant_id no longer resolves,
	// so operators can be warned about the non-cascading delete policy.
	OrphanedOffers(ctx context.Context) ([]domain.Offer, error)
}

// MerchantInput holds the mutable merchant fields for create/update. The
// merchant id is never taken from input.
type MerchantInput struct {
	Name             string
	BannerImageURL   string
	MerchantImageURL string
	MerchantDays     string
	AboutText        string
}

// OfferInput holds the mutable offer fields for create/update.
//
// MerchantID is honored on create only; on update the stored value is kept.
// Conditions follows checkbox semantics: keys absent from the map are
// stored as false, and update replaces the full flag set rather than
// merging.
type OfferInput struct {
	MerchantID          string
	OriginalOfferAmount string
	Description         string
	EndDate             string
	CashbackCode        string
	Available           bool
	Conditions          map[string]bool
}

// CatalogService is the mutation path: validated create/update/delete
// against both tables. Every successful mutation writes through to the
// relevant store synchronously.
type CatalogService interface {
	ListMerchants(ctx context.Context) ([]domain.Merchant, error) // sorted by name
	AddMerchant(ctx context.Context, in MerchantInput) (string, error)
	UpdateMerchant(ctx context.Context, id string, in MerchantInput) error
	DeleteMerchant(ctx context.Context, id string) error

	AddOffer(ctx context.Context, in OfferInput) (string, error)
	UpdateOffer(ctx context.Context, id string, in OfferInput) error
	DeleteOffer(ctx context.Context, id string) error
}

// OfferViewCache caches rendered offer views keyed by filter. A nil/absent
// cache is valid; the query service then reads straight from the stores.
type OfferViewCache interface {
	Get(ctx context.Context, key string) ([]byte, error) // nil, nil on miss
	Set(ctx context.Context, key string, payload []byte, ttl time.Duration) error
	// Invalidate drops every cached view. Called after each mutation.
	Invalidate(ctx context.Context) error
}
