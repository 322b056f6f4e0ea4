package service

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"cashback-catalog-service/internal/core/domain"
	"cashback-catalog-service/internal/core/ports"
	"cashback-catalog-service/pkg/apperror"

	"github.com/rs/zerolog"
)

type catalogService struct {
	merchantRepo ports.MerchantRepository
	offerRepo    ports.OfferRepository
	viewCache    ports.OfferViewCache // nil = caching disabled
	log          zerolog.Logger
}

// NewCatalogService creates the catalog mutation service.
func NewCatalogService(
	merchantRepo ports.MerchantRepository,
	offerRepo ports.OfferRepository,
	viewCache ports.OfferViewCache,
	log zerolog.Logger,
) ports.CatalogService {
	return &catalogService{
		merchantRepo: merchantRepo,
		offerRepo:    offerRepo,
		viewCache:    viewCache,
		log:          log,
	}
}

func (s *catalogService) ListMerchants(ctx context.Context) ([]domain.Merchant, error) {
	merchants, err := s.merchantRepo.List(ctx)
	if err != nil {
		return nil, apperror.ErrStorage(err)
	}
	sort.Slice(merchants, func(i, j int) bool {
		return merchants[i].Name < merchants[j].Name
	})
	return merchants, nil
}

func (s *catalogService) AddMerchant(ctx context.Context, in ports.MerchantInput) (string, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return "", apperror.Validation("merchant_name is required")
	}

	existing, err := s.merchantRepo.GetByName(ctx, name)
	if err != nil {
		return "", apperror.ErrStorage(err)
	}
	if existing != nil {
		return "", apperror.ErrMerchantNameExists(name)
	}

	m := &domain.Merchant{
		Name:             name,
		BannerImageURL:   in.BannerImageURL,
		MerchantImageURL: in.MerchantImageURL,
		MerchantDays:     in.MerchantDays,
		AboutText:        in.AboutText,
	}
	if err := s.merchantRepo.Create(ctx, m); err != nil {
		return "", apperror.ErrStorage(err)
	}

	s.invalidateViews(ctx)
	s.log.Info().Str("merchant_id", m.ID).Str("merchant_name", m.Name).Msg("merchant added")
	return m.ID, nil
}

func (s *catalogService) UpdateMerchant(ctx context.Context, id string, in ports.MerchantInput) error {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return apperror.Validation("merchant_name is required")
	}

	current, err := s.merchantRepo.GetByID(ctx, id)
	if err != nil {
		return apperror.ErrStorage(err)
	}
	if current == nil {
		return apperror.ErrNotFound("merchant")
	}

	if name != current.Name {
		other, err := s.merchantRepo.GetByName(ctx, name)
		if err != nil {
			return apperror.ErrStorage(err)
		}
		if other != nil && other.ID != id {
			return apperror.ErrMerchantNameExists(name)
		}
	}

	// Full replacement of the mutable fields; the id never comes from input.
	m := &domain.Merchant{
		ID:               id,
		Name:             name,
		BannerImageURL:   in.BannerImageURL,
		MerchantImageURL: in.MerchantImageURL,
		MerchantDays:     in.MerchantDays,
		AboutText:        in.AboutText,
	}
	if err := s.merchantRepo.Update(ctx, m); err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return apperror.ErrNotFound("merchant")
		}
		return apperror.ErrStorage(err)
	}

	s.invalidateViews(ctx)
	return nil
}

// DeleteMerchant removes the merchant row only. Offers referencing it are
// neither deleted nor reassigned; they become orphans, excluded from the
// rendered view and reported by CatalogQueryService.OrphanedOffers.
func (s *catalogService) DeleteMerchant(ctx context.Context, id string) error {
	if err := s.merchantRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return apperror.ErrNotFound("merchant")
		}
		return apperror.ErrStorage(err)
	}

	if offers, err := s.offerRepo.List(ctx); err == nil {
		orphaned := 0
		for _, o := range offers {
			if o.MerchantID == id {
				orphaned++
			}
		}
		if orphaned > 0 {
			s.log.Warn().
				Str("merchant_id", id).
				Int("orphaned_offers", orphaned).
				Msg("merchant deleted while offers still reference it")
		}
	}

	s.invalidateViews(ctx)
	return nil
}

func (s *catalogService) AddOffer(ctx context.Context, in ports.OfferInput) (string, error) {
	description := strings.TrimSpace(in.Description)
	if description == "" {
		return "", apperror.Validation("offer_description is required")
	}
	if in.MerchantID == "" {
		return "", apperror.Validation("merchant_id is required")
	}
	if err := validateEndDate(in.EndDate); err != nil {
		return "", err
	}

	merchant, err := s.merchantRepo.GetByID(ctx, in.MerchantID)
	if err != nil {
		return "", apperror.ErrStorage(err)
	}
	if merchant == nil {
		return "", apperror.ErrUnknownMerchant(in.MerchantID)
	}

	o := &domain.Offer{
		MerchantID:          in.MerchantID,
		AmountRatio:         domain.ParseAmountRatio(in.OriginalOfferAmount),
		OriginalOfferAmount: in.OriginalOfferAmount,
		Description:         description,
		EndDate:             in.EndDate,
		CashbackCode:        in.CashbackCode,
		Available:           in.Available,
		Conditions:          domain.NormalizeConditions(in.Conditions),
	}
	if err := s.offerRepo.Create(ctx, o); err != nil {
		return "", apperror.ErrStorage(err)
	}

	s.invalidateViews(ctx)
	s.log.Info().Str("offer_id", o.ID).Str("merchant_id", o.MerchantID).Msg("offer added")
	return o.ID, nil
}

// UpdateOffer replaces every mutable field with the supplied set. The offer
// id and merchant id are immutable after creation; values resupplied in the
// input are ignored. An absent condition flag means false, matching the
// checkbox semantics of the admin forms.
func (s *catalogService) UpdateOffer(ctx context.Context, id string, in ports.OfferInput) error {
	description := strings.TrimSpace(in.Description)
	if description == "" {
		return apperror.Validation("offer_description is required")
	}
	if err := validateEndDate(in.EndDate); err != nil {
		return err
	}

	current, err := s.offerRepo.GetByID(ctx, id)
	if err != nil {
		return apperror.ErrStorage(err)
	}
	if current == nil {
		return apperror.ErrNotFound("offer")
	}

	o := &domain.Offer{
		ID:                  current.ID,
		MerchantID:          current.MerchantID,
		AmountRatio:         domain.ParseAmountRatio(in.OriginalOfferAmount),
		OriginalOfferAmount: in.OriginalOfferAmount,
		Description:         description,
		EndDate:             in.EndDate,
		CashbackCode:        in.CashbackCode,
		Available:           in.Available,
		Conditions:          domain.NormalizeConditions(in.Conditions),
	}
	if err := s.offerRepo.Update(ctx, o); err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return apperror.ErrNotFound("offer")
		}
		return apperror.ErrStorage(err)
	}

	s.invalidateViews(ctx)
	return nil
}

func (s *catalogService) DeleteOffer(ctx context.Context, id string) error {
	if err := s.offerRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return apperror.ErrNotFound("offer")
		}
		return apperror.ErrStorage(err)
	}

	s.invalidateViews(ctx)
	return nil
}

// invalidateViews drops cached renderings after a successful mutation. A
// cache failure only costs freshness until the TTL expires, so it is logged
// and not surfaced.
func (s *catalogService) invalidateViews(ctx context.Context) {
	if s.viewCache == nil {
		return
	}
	if err := s.viewCache.Invalidate(ctx); err != nil {
		s.log.Warn().Err(err).Msg("offer view cache invalidation failed")
	}
}

// validateEndDate checks the YYYY-MM-DD shape of a non-empty end date. The
// value is stored as a string; this only rejects input the admin form could
// not have produced.
func validateEndDate(endDate string) error {
	if endDate == "" {
		return nil
	}
	if _, err := time.Parse("2006-01-02", endDate); err != nil {
		return apperror.Validation("end_date must be formatted YYYY-MM-DD")
	}
	return nil
}
