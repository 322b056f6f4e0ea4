package csvfile

import (
	"context"
	"path/filepath"
	"sync"

	"cashback-catalog-service/internal/core/domain"
	"cashback-catalog-service/internal/core/ports"
)

// merchantColumns is the on-disk column order of merchants.csv.
var merchantColumns = []string{
	"merchant_id",
	"banner_img_url",
	"merchant_image_url",
	"merchant_name",
	"merchant_days",
	"about_text",
}

// MerchantRepo implements ports.MerchantRepository over merchants.csv.
type MerchantRepo struct {
	mu   sync.RWMutex
	path string
}

// NewMerchantRepo creates a CSV-backed merchant repository under dataDir.
func NewMerchantRepo(dataDir string) *MerchantRepo {
	return &MerchantRepo{path: filepath.Join(dataDir, "merchants.csv")}
}

func (r *MerchantRepo) load() ([]domain.Merchant, error) {
	h, rows, err := readTable(r.path)
	if err != nil {
		return nil, err
	}
	merchants := make([]domain.Merchant, 0, len(rows))
	for _, row := range rows {
		merchants = append(merchants, domain.Merchant{
			ID:               h.field(row, "merchant_id"),
			BannerImageURL:   h.field(row, "banner_img_url"),
			MerchantImageURL: h.field(row, "merchant_image_url"),
			Name:             h.field(row, "merchant_name"),
			MerchantDays:     h.field(row, "merchant_days"),
			AboutText:        h.field(row, "about_text"),
		})
	}
	return merchants, nil
}

func (r *MerchantRepo) save(merchants []domain.Merchant) error {
	rows := make([][]string, 0, len(merchants))
	for _, m := range merchants {
		rows = append(rows, []string{
			m.ID,
			m.BannerImageURL,
			m.MerchantImageURL,
			m.Name,
			m.MerchantDays,
			m.AboutText,
		})
	}
	return writeTable(r.path, merchantColumns, rows)
}

// List returns all merchants in file (insertion) order.
func (r *MerchantRepo) List(ctx context.Context) ([]domain.Merchant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.load()
}

// GetByID returns the merchant with the given id, or nil when absent.
func (r *MerchantRepo) GetByID(ctx context.Context, id string) (*domain.Merchant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	merchants, err := r.load()
	if err != nil {
		return nil, err
	}
	for i := range merchants {
		if merchants[i].ID == id {
			return &merchants[i], nil
		}
	}
	return nil, nil
}

// GetByName returns the merchant with the given name, or nil when absent.
func (r *MerchantRepo) GetByName(ctx context.Context, name string) (*domain.Merchant, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	merchants, err := r.load()
	if err != nil {
		return nil, err
	}
	for i := range merchants {
		if merchants[i].Name == name {
			return &merchants[i], nil
		}
	}
	return nil, nil
}

// Create appends the merchant, assigning a fresh id when m.ID is empty.
func (r *MerchantRepo) Create(ctx context.Context, m *domain.Merchant) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	merchants, err := r.load()
	if err != nil {
		return err
	}
	if m.ID == "" {
		m.ID = newID("mer_", func(id string) bool {
			for i := range merchants {
				if merchants[i].ID == id {
					return true
				}
			}
			return false
		})
	}
	return r.save(append(merchants, *m))
}

// Update replaces the stored row for m.ID.
func (r *MerchantRepo) Update(ctx context.Context, m *domain.Merchant) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	merchants, err := r.load()
	if err != nil {
		return err
	}
	for i := range merchants {
		if merchants[i].ID == m.ID {
			merchants[i] = *m
			return r.save(merchants)
		}
	}
	return ports.ErrNotFound
}

// Delete removes the row with the given id.
func (r *MerchantRepo) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	merchants, err := r.load()
	if err != nil {
		return err
	}
	for i := range merchants {
		if merchants[i].ID == id {
			return r.save(append(merchants[:i], merchants[i+1:]...))
		}
	}
	return ports.ErrNotFound
}
