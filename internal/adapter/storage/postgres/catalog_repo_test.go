package postgres

import (
	"context"
	"testing"

	"cashback-catalog-service/internal/core/domain"
	"cashback-catalog-service/internal/core/ports"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestMerchant() *domain.Merchant {
	return &domain.Merchant{
		ID:               "mer_1a2b3c4d",
		Name:             "Acme",
		BannerImageURL:   "https://cdn.example.com/acme-banner.png",
		MerchantImageURL: "https://cdn.example.com/acme.png",
		MerchantDays:     "7j",
		AboutText:        "Acme vend de tout.",
	}
}

func newTestOffer() *domain.Offer {
	ratio := 0.1
	return &domain.Offer{
		ID:                  "off_9f8e7d6c",
		MerchantID:          "mer_1a2b3c4d",
		AmountRatio:         &ratio,
		OriginalOfferAmount: "10%",
		Description:         "10% de cashback",
		EndDate:             "2026-12-31",
		CashbackCode:        "ACME10",
		Available:           true,
		Conditions:          domain.NormalizeConditions(map[string]bool{"cond_specific": true}),
	}
}

func merchantTestColumns() []string {
	return []string{"id", "banner_img_url", "merchant_image_url", "name", "merchant_days", "about_text"}
}

func merchantRow(m *domain.Merchant) *pgxmock.Rows {
	return pgxmock.NewRows(merchantTestColumns()).AddRow(
		m.ID, m.BannerImageURL, m.MerchantImageURL,
		m.Name, m.MerchantDays, m.AboutText,
	)
}

func offerTestColumns() []string {
	return []string{"id", "merchant_id", "amount_ratio", "original_offer_amount", "description", "end_date", "cashback_code", "available", "conditions"}
}

func offerRow(o *domain.Offer) *pgxmock.Rows {
	return pgxmock.NewRows(offerTestColumns()).AddRow(
		o.ID, o.MerchantID, o.AmountRatio, o.OriginalOfferAmount,
		o.Description, o.EndDate, o.CashbackCode, o.Available, o.Conditions,
	)
}

func TestMerchantRepo_Create_AssignsID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewMerchantRepo(mock)
	m := newTestMerchant()
	m.ID = ""

	mock.ExpectExec("INSERT INTO merchants").
		WithArgs(pgxmock.AnyArg(), m.BannerImageURL, m.MerchantImageURL,
			m.Name, m.MerchantDays, m.AboutText).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, repo.Create(context.Background(), m))
	assert.Regexp(t, `^mer_[0-9a-f]{8}$`, m.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMerchantRepo_Create_RetriesOnIDCollision(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewMerchantRepo(mock)
	m := newTestMerchant()
	m.ID = ""

	mock.ExpectExec("INSERT INTO merchants").
		WithArgs(pgxmock.AnyArg(), m.BannerImageURL, m.MerchantImageURL,
			m.Name, m.MerchantDays, m.AboutText).
		WillReturnError(&pgconn.PgError{Code: uniqueViolation})
	mock.ExpectExec("INSERT INTO merchants").
		WithArgs(pgxmock.AnyArg(), m.BannerImageURL, m.MerchantImageURL,
			m.Name, m.MerchantDays, m.AboutText).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, repo.Create(context.Background(), m))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMerchantRepo_GetByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewMerchantRepo(mock)
	m := newTestMerchant()

	mock.ExpectQuery("SELECT .+ FROM merchants WHERE id").
		WithArgs(m.ID).
		WillReturnRows(merchantRow(m))

	result, err := repo.GetByID(context.Background(), m.ID)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, *m, *result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMerchantRepo_GetByID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewMerchantRepo(mock)

	mock.ExpectQuery("SELECT .+ FROM merchants WHERE id").
		WithArgs(pgxmock.AnyArg()).
		WillReturnRows(pgxmock.NewRows(merchantTestColumns()))

	result, err := repo.GetByID(context.Background(), "mer_missing1")
	assert.NoError(t, err)
	assert.Nil(t, result)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMerchantRepo_GetByName(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewMerchantRepo(mock)
	m := newTestMerchant()

	mock.ExpectQuery("SELECT .+ FROM merchants WHERE name").
		WithArgs(m.Name).
		WillReturnRows(merchantRow(m))

	result, err := repo.GetByName(context.Background(), m.Name)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Equal(t, m.ID, result.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMerchantRepo_List_OrderedBySeq(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewMerchantRepo(mock)

	rows := pgxmock.NewRows(merchantTestColumns()).
		AddRow("mer_00000001", "", "", "Zed", "", "").
		AddRow("mer_00000002", "", "", "Acme", "", "")
	mock.ExpectQuery("SELECT .+ FROM merchants ORDER BY seq").
		WillReturnRows(rows)

	merchants, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, merchants, 2)
	assert.Equal(t, "Zed", merchants[0].Name)
	assert.Equal(t, "Acme", merchants[1].Name)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMerchantRepo_Update_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewMerchantRepo(mock)
	m := newTestMerchant()

	mock.ExpectExec("UPDATE merchants").
		WithArgs(m.BannerImageURL, m.MerchantImageURL, m.Name, m.MerchantDays, m.AboutText, m.ID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	assert.ErrorIs(t, repo.Update(context.Background(), m), ports.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMerchantRepo_Delete(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewMerchantRepo(mock)

	mock.ExpectExec("DELETE FROM merchants").
		WithArgs("mer_1a2b3c4d").
		WillReturnResult(pgxmock.NewResult("DELETE", 1))
	mock.ExpectExec("DELETE FROM merchants").
		WithArgs("mer_1a2b3c4d").
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	assert.NoError(t, repo.Delete(context.Background(), "mer_1a2b3c4d"))
	assert.ErrorIs(t, repo.Delete(context.Background(), "mer_1a2b3c4d"), ports.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOfferRepo_Create(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOfferRepo(mock)
	o := newTestOffer()
	o.ID = ""

	mock.ExpectExec("INSERT INTO offers").
		WithArgs(pgxmock.AnyArg(), o.MerchantID, o.AmountRatio, o.OriginalOfferAmount,
			o.Description, o.EndDate, o.CashbackCode, o.Available, o.Conditions).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	require.NoError(t, repo.Create(context.Background(), o))
	assert.Regexp(t, `^off_[0-9a-f]{8}$`, o.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOfferRepo_GetByID_NormalizesConditions(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOfferRepo(mock)
	o := newTestOffer()
	// Stored object predates part of the catalog: only one key present.
	o.Conditions = map[string]bool{"cond_specific": true}

	mock.ExpectQuery("SELECT .+ FROM offers WHERE id").
		WithArgs(o.ID).
		WillReturnRows(offerRow(o))

	result, err := repo.GetByID(context.Background(), o.ID)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.Len(t, result.Conditions, len(domain.Conditions()))
	assert.True(t, result.Conditions["cond_specific"])
	assert.False(t, result.Conditions["cond_new_clients_only"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOfferRepo_List(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOfferRepo(mock)
	o := newTestOffer()

	mock.ExpectQuery("SELECT .+ FROM offers ORDER BY seq").
		WillReturnRows(offerRow(o))

	offers, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, offers, 1)
	assert.Equal(t, o.ID, offers[0].ID)
	require.NotNil(t, offers[0].AmountRatio)
	assert.InDelta(t, 0.1, *offers[0].AmountRatio, 1e-9)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestOfferRepo_UpdateAndDelete_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewOfferRepo(mock)
	o := newTestOffer()

	mock.ExpectExec("UPDATE offers").
		WithArgs(o.MerchantID, o.AmountRatio, o.OriginalOfferAmount, o.Description,
			o.EndDate, o.CashbackCode, o.Available, o.Conditions, o.ID).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))
	mock.ExpectExec("DELETE FROM offers").
		WithArgs(o.ID).
		WillReturnResult(pgxmock.NewResult("DELETE", 0))

	assert.ErrorIs(t, repo.Update(context.Background(), o), ports.ErrNotFound)
	assert.ErrorIs(t, repo.Delete(context.Background(), o.ID), ports.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
