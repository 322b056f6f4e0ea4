package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"cashback-catalog-service/internal/core/domain"
	"cashback-catalog-service/internal/core/ports"
	"cashback-catalog-service/pkg/apperror"

	"github.com/rs/zerolog"
)

type catalogQueryService struct {
	merchantRepo ports.MerchantRepository
	offerRepo    ports.OfferRepository
	viewCache    ports.OfferViewCache // nil = caching disabled
	cacheTTL     time.Duration
	log          zerolog.Logger
}

// NewCatalogQueryService creates the read-only catalog view service.
func NewCatalogQueryService(
	merchantRepo ports.MerchantRepository,
	offerRepo ports.OfferRepository,
	viewCache ports.OfferViewCache,
	cacheTTL time.Duration,
	log zerolog.Logger,
) ports.CatalogQueryService {
	return &catalogQueryService{
		merchantRepo: merchantRepo,
		offerRepo:    offerRepo,
		viewCache:    viewCache,
		cacheTTL:     cacheTTL,
		log:          log,
	}
}

// RenderOffers produces the filtered, joined, display-ready offer list in
// storage order. Filters that match nothing yield an empty slice. Offers
// whose merchant has been deleted are excluded: a display row requires a
// valid merchant join.
func (s *catalogQueryService) RenderOffers(ctx context.Context, filter ports.OfferFilter) ([]domain.DisplayOffer, error) {
	cacheKey := viewCacheKey(filter)
	if cached := s.cachedView(ctx, cacheKey); cached != nil {
		return cached, nil
	}

	offers, err := s.offerRepo.List(ctx)
	if err != nil {
		return nil, apperror.ErrStorage(err)
	}
	merchants, err := s.merchantsByID(ctx)
	if err != nil {
		return nil, err
	}

	rows := make([]domain.DisplayOffer, 0, len(offers))
	for i := range offers {
		o := &offers[i]
		if filter.OfferID != "" && o.ID != filter.OfferID {
			continue
		}
		if filter.MerchantID != "" && o.MerchantID != filter.MerchantID {
			continue
		}
		if !filter.IncludeStaging && !o.Available {
			continue
		}

		merchant, ok := merchants[o.MerchantID]
		if !ok {
			s.log.Warn().
				Str("offer_id", o.ID).
				Str("merchant_id", o.MerchantID).
				Msg("orphaned offer excluded from view")
			continue
		}
		rows = append(rows, domain.NewDisplayOffer(o, merchant))
	}

	s.storeView(ctx, cacheKey, rows)
	return rows, nil
}

// OrphanedOffers returns offers whose merchant id no longer resolves.
func (s *catalogQueryService) OrphanedOffers(ctx context.Context) ([]domain.Offer, error) {
	offers, err := s.offerRepo.List(ctx)
	if err != nil {
		return nil, apperror.ErrStorage(err)
	}
	merchants, err := s.merchantsByID(ctx)
	if err != nil {
		return nil, err
	}

	orphans := make([]domain.Offer, 0)
	for _, o := range offers {
		if _, ok := merchants[o.MerchantID]; !ok {
			orphans = append(orphans, o)
		}
	}
	return orphans, nil
}

func (s *catalogQueryService) merchantsByID(ctx context.Context) (map[string]*domain.Merchant, error) {
	merchants, err := s.merchantRepo.List(ctx)
	if err != nil {
		return nil, apperror.ErrStorage(err)
	}
	byID := make(map[string]*domain.Merchant, len(merchants))
	for i := range merchants {
		byID[merchants[i].ID] = &merchants[i]
	}
	return byID, nil
}

func viewCacheKey(filter ports.OfferFilter) string {
	return fmt.Sprintf("%s|%s|%t", filter.MerchantID, filter.OfferID, filter.IncludeStaging)
}

// cachedView returns the cached rendering for key, or nil on miss or any
// cache failure. The cache is an accelerator only; errors must never
// surface on the read path.
func (s *catalogQueryService) cachedView(ctx context.Context, key string) []domain.DisplayOffer {
	if s.viewCache == nil {
		return nil
	}
	payload, err := s.viewCache.Get(ctx, key)
	if err != nil {
		s.log.Warn().Err(err).Msg("offer view cache read failed")
		return nil
	}
	if payload == nil {
		return nil
	}
	var rows []domain.DisplayOffer
	if err := json.Unmarshal(payload, &rows); err != nil {
		s.log.Warn().Err(err).Msg("offer view cache payload corrupt")
		return nil
	}
	return rows
}

func (s *catalogQueryService) storeView(ctx context.Context, key string, rows []domain.DisplayOffer) {
	if s.viewCache == nil {
		return
	}
	payload, err := json.Marshal(rows)
	if err != nil {
		return
	}
	if err := s.viewCache.Set(ctx, key, payload, s.cacheTTL); err != nil {
		s.log.Warn().Err(err).Msg("offer view cache write failed")
	}
}
