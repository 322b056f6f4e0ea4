package postgres

import (
	"context"
	"errors"
	"fmt"

	"cashback-catalog-service/internal/core/domain"
	"cashback-catalog-service/internal/core/ports"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// OfferRepo implements ports.OfferRepository on PostgreSQL. Condition flags
// are stored as a JSONB object keyed by condition key.
type OfferRepo struct {
	pool Pool
}

// NewOfferRepo creates a new OfferRepo.
func NewOfferRepo(pool Pool) *OfferRepo {
	return &OfferRepo{pool: pool}
}

const offerSelect = `SELECT id, merchant_id, amount_ratio, original_offer_amount, description, end_date, cashback_code, available, conditions FROM offers`

func scanOffer(row pgx.Row, o *domain.Offer) error {
	if err := row.Scan(
		&o.ID, &o.MerchantID, &o.AmountRatio, &o.OriginalOfferAmount,
		&o.Description, &o.EndDate, &o.CashbackCode, &o.Available, &o.Conditions,
	); err != nil {
		return err
	}
	// Rows written before a condition entered the catalog lack its key.
	o.Conditions = domain.NormalizeConditions(o.Conditions)
	return nil
}

// List returns all offers in insertion order.
func (r *OfferRepo) List(ctx context.Context) ([]domain.Offer, error) {
	rows, err := r.pool.Query(ctx, offerSelect+` ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("list offers: %w", err)
	}
	defer rows.Close()

	var offers []domain.Offer
	for rows.Next() {
		var o domain.Offer
		if err := scanOffer(rows, &o); err != nil {
			return nil, fmt.Errorf("scan offer: %w", err)
		}
		offers = append(offers, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list offers: %w", err)
	}
	return offers, nil
}

// GetByID fetches an offer by id. Returns nil, nil when absent.
func (r *OfferRepo) GetByID(ctx context.Context, id string) (*domain.Offer, error) {
	o := &domain.Offer{}
	err := scanOffer(r.pool.QueryRow(ctx, offerSelect+` WHERE id = $1`, id), o)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get offer by id: %w", err)
	}
	return o, nil
}

// Create inserts a new offer, assigning an id when o.ID is empty. A
// generated id colliding with an existing row re-rolls and retries.
func (r *OfferRepo) Create(ctx context.Context, o *domain.Offer) error {
	assigned := o.ID == ""
	for {
		if assigned {
			o.ID = newID("off_")
		}
		query := `INSERT INTO offers (id, merchant_id, amount_ratio, original_offer_amount, description, end_date, cashback_code, available, conditions)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
		_, err := r.pool.Exec(ctx, query,
			o.ID, o.MerchantID, o.AmountRatio, o.OriginalOfferAmount,
			o.Description, o.EndDate, o.CashbackCode, o.Available, o.Conditions,
		)
		if err == nil {
			return nil
		}
		var pgErr *pgconn.PgError
		if assigned && errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			continue
		}
		return fmt.Errorf("insert offer: %w", err)
	}
}

// Update replaces the stored row for o.ID.
func (r *OfferRepo) Update(ctx context.Context, o *domain.Offer) error {
	query := `UPDATE offers
		SET merchant_id=$1, amount_ratio=$2, original_offer_amount=$3, description=$4, end_date=$5, cashback_code=$6, available=$7, conditions=$8
		WHERE id=$9`
	tag, err := r.pool.Exec(ctx, query,
		o.MerchantID, o.AmountRatio, o.OriginalOfferAmount, o.Description,
		o.EndDate, o.CashbackCode, o.Available, o.Conditions, o.ID,
	)
	if err != nil {
		return fmt.Errorf("update offer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ports.ErrNotFound
	}
	return nil
}

// Delete removes the offer row.
func (r *OfferRepo) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM offers WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete offer: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ports.ErrNotFound
	}
	return nil
}
