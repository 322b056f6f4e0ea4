package postgres

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"cashback-catalog-service/internal/core/domain"
	"cashback-catalog-service/internal/core/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

// newID builds a prefixed 8-hex-char identifier. Uniqueness is enforced by
// the primary key; Create retries on a collision.
func newID(prefix string) string {
	return prefix + strings.ToLower(uuid.New().String()[:8])
}

// MerchantRepo implements ports.MerchantRepository on PostgreSQL.
type MerchantRepo struct {
	pool Pool
}

// NewMerchantRepo creates a new MerchantRepo.
func NewMerchantRepo(pool Pool) *MerchantRepo {
	return &MerchantRepo{pool: pool}
}

const merchantSelect = `SELECT id, banner_img_url, merchant_image_url, name, merchant_days, about_text FROM merchants`

func scanMerchant(row pgx.Row, m *domain.Merchant) error {
	return row.Scan(
		&m.ID, &m.BannerImageURL, &m.MerchantImageURL,
		&m.Name, &m.MerchantDays, &m.AboutText,
	)
}

// List returns all merchants in insertion order.
func (r *MerchantRepo) List(ctx context.Context) ([]domain.Merchant, error) {
	rows, err := r.pool.Query(ctx, merchantSelect+` ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("list merchants: %w", err)
	}
	defer rows.Close()

	var merchants []domain.Merchant
	for rows.Next() {
		var m domain.Merchant
		if err := scanMerchant(rows, &m); err != nil {
			return nil, fmt.Errorf("scan merchant: %w", err)
		}
		merchants = append(merchants, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list merchants: %w", err)
	}
	return merchants, nil
}

// GetByID fetches a merchant by id. Returns nil, nil when absent.
func (r *MerchantRepo) GetByID(ctx context.Context, id string) (*domain.Merchant, error) {
	m := &domain.Merchant{}
	err := scanMerchant(r.pool.QueryRow(ctx, merchantSelect+` WHERE id = $1`, id), m)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get merchant by id: %w", err)
	}
	return m, nil
}

// GetByName fetches a merchant by its display name. Returns nil, nil when
// absent.
func (r *MerchantRepo) GetByName(ctx context.Context, name string) (*domain.Merchant, error) {
	m := &domain.Merchant{}
	err := scanMerchant(r.pool.QueryRow(ctx, merchantSelect+` WHERE name = $1`, name), m)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get merchant by name: %w", err)
	}
	return m, nil
}

// Create inserts a new merchant, assigning an id when m.ID is empty. A
// generated id colliding with an existing row re-rolls and retries.
func (r *MerchantRepo) Create(ctx context.Context, m *domain.Merchant) error {
	assigned := m.ID == ""
	for {
		if assigned {
			m.ID = newID("mer_")
		}
		query := `INSERT INTO merchants (id, banner_img_url, merchant_image_url, name, merchant_days, about_text)
		VALUES ($1, $2, $3, $4, $5, $6)`
		_, err := r.pool.Exec(ctx, query,
			m.ID, m.BannerImageURL, m.MerchantImageURL,
			m.Name, m.MerchantDays, m.AboutText,
		)
		if err == nil {
			return nil
		}
		var pgErr *pgconn.PgError
		if assigned && errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			continue
		}
		return fmt.Errorf("insert merchant: %w", err)
	}
}

// Update replaces the stored row for m.ID.
func (r *MerchantRepo) Update(ctx context.Context, m *domain.Merchant) error {
	query := `UPDATE merchants
		SET banner_img_url=$1, merchant_image_url=$2, name=$3, merchant_days=$4, about_text=$5
		WHERE id=$6`
	tag, err := r.pool.Exec(ctx, query,
		m.BannerImageURL, m.MerchantImageURL, m.Name, m.MerchantDays, m.AboutText, m.ID,
	)
	if err != nil {
		return fmt.Errorf("update merchant: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ports.ErrNotFound
	}
	return nil
}

// Delete removes the merchant row.
func (r *MerchantRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM merchants WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete merchant: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ports.ErrNotFound
	}
	return nil
}
