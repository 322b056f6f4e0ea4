package csvfile

import (
	"context"
	"path/filepath"
	"strconv"
	"sync"

	"cashback-catalog-service/internal/core/domain"
	"cashback-catalog-service/internal/core/ports"
)

// offerColumns returns the on-disk column order of offers.csv: the fixed
// fields followed by one boolean column per catalog condition.
func offerColumns() []string {
	cols := []string{
		"offer_id",
		"merchant_id",
		"amount_ratio",
		"original_offer_amount",
		"offer_description",
		"end_date",
		"imagined_cashback_code",
		"available",
	}
	for _, c := range domain.Conditions() {
		cols = append(cols, c.Key)
	}
	return cols
}

// OfferRepo implements ports.OfferRepository over offers.csv.
type OfferRepo struct {
	mu   sync.RWMutex
	path string
}

// NewOfferRepo creates a CSV-backed offer repository under dataDir.
func NewOfferRepo(dataDir string) *OfferRepo {
	return &OfferRepo{path: filepath.Join(dataDir, "offers.csv")}
}

func (r *OfferRepo) load() ([]domain.Offer, error) {
	h, rows, err := readTable(r.path)
	if err != nil {
		return nil, err
	}
	offers := make([]domain.Offer, 0, len(rows))
	for _, row := range rows {
		o := domain.Offer{
			ID:                  h.field(row, "offer_id"),
			MerchantID:          h.field(row, "merchant_id"),
			OriginalOfferAmount: h.field(row, "original_offer_amount"),
			Description:         h.field(row, "offer_description"),
			EndDate:             h.field(row, "end_date"),
			CashbackCode:        h.field(row, "imagined_cashback_code"),
			Available:           h.boolField(row, "available"),
			Conditions:          make(map[string]bool, len(domain.Conditions())),
		}
		if raw := h.field(row, "amount_ratio"); raw != "" {
			if ratio, err := strconv.ParseFloat(raw, 64); err == nil {
				o.AmountRatio = &ratio
			}
		}
		// Condition columns missing from the file default to false, so the
		// stored record always carries the complete flag set.
		for _, c := range domain.Conditions() {
			o.Conditions[c.Key] = h.boolField(row, c.Key)
		}
		offers = append(offers, o)
	}
	return offers, nil
}

func (r *OfferRepo) save(offers []domain.Offer) error {
	rows := make([][]string, 0, len(offers))
	for _, o := range offers {
		ratio := ""
		if o.AmountRatio != nil {
			ratio = strconv.FormatFloat(*o.AmountRatio, 'g', -1, 64)
		}
		row := []string{
			o.ID,
			o.MerchantID,
			ratio,
			o.OriginalOfferAmount,
			o.Description,
			o.EndDate,
			o.CashbackCode,
			formatBool(o.Available),
		}
		for _, c := range domain.Conditions() {
			row = append(row, formatBool(o.Conditions[c.Key]))
		}
		rows = append(rows, row)
	}
	return writeTable(r.path, offerColumns(), rows)
}

// List returns all offers in file (insertion) order.
func (r *OfferRepo) List(ctx context.Context) ([]domain.Offer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.load()
}

// GetByID returns the offer with the given id, or nil when absent.
func (r *OfferRepo) GetByID(ctx context.Context, id string) (*domain.Offer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	offers, err := r.load()
	if err != nil {
		return nil, err
	}
	for i := range offers {
		if offers[i].ID == id {
			return &offers[i], nil
		}
	}
	return nil, nil
}

// Create appends the offer, assigning a fresh id when o.ID is empty.
func (r *OfferRepo) Create(ctx context.Context, o *domain.Offer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	offers, err := r.load()
	if err != nil {
		return err
	}
	if o.ID == "" {
		o.ID = newID("off_", func(id string) bool {
			for i := range offers {
				if offers[i].ID == id {
					return true
				}
			}
			return false
		})
	}
	return r.save(append(offers, *o))
}

// Update replaces the stored row for o.ID.
func (r *OfferRepo) Update(ctx context.Context, o *domain.Offer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	offers, err := r.load()
	if err != nil {
		return err
	}
	for i := range offers {
		if offers[i].ID == o.ID {
			offers[i] = *o
			return r.save(offers)
		}
	}
	return ports.ErrNotFound
}

// Delete removes the row with the given id.
func (r *OfferRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	offers, err := r.load()
	if err != nil {
		return err
	}
	for i := range offers {
		if offers[i].ID == id {
			return r.save(append(offers[:i], offers[i+1:]...))
		}
	}
	return ports.ErrNotFound
}
