package domain

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Offer is a single cashback offer attached to a merchant.
//
// Available distinguishes production offers (true, shown in the default
// view) from staging offers (false, shown only on request). EndDate is a
// free-form "YYYY-MM-DD" string; the catalog stores and compares it
// lexically and never interprets it as a calendar boundary.
type Offer struct {
	ID                  string          `json:"offer_id"`
	MerchantID          string          `json:"merchant_id"`
	AmountRatio         *float64        `json:"amount_ratio,omitempty"` // derived from OriginalOfferAmount, nil when not a percentage
	OriginalOfferAmount string          `json:"original_offer_amount,omitempty"`
	Description         string          `json:"offer_description"`
	EndDate             string          `json:"end_date,omitempty"`
	CashbackCode        string          `json:"imagined_cashback_code,omitempty"`
	Available           bool            `json:"available"`
	Conditions          map[string]bool `json:"conditions"`
}

// ActiveConditions returns the descriptions of every condition flag set on
// the offer, in catalog order regardless of flag-map iteration order.
func (o *Offer) ActiveConditions() []string {
	active := make([]string, 0, len(o.Conditions))
	for _, c := range Conditions() {
		if o.Conditions[c.Key] {
			active = append(active, c.Description)
		}
	}
	return active
}

var amountRatioRe = regexp.MustCompile(`(\d+\.?\d*)\s*%`)

// ParseAmountRatio extracts a cashback ratio from a free-form amount string
// ("5%" -> 0.05, "5,5 %" -> 0.055). Returns nil for non-percentage strings
// such as "10€".
func ParseAmountRatio(amount string) *float64 {
	normalized := strings.ReplaceAll(amount, ",", ".")
	m := amountRatioRe.FindStringSubmatch(normalized)
	if m == nil {
		return nil
	}
	pct, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return nil
	}
	ratio := pct / 100.0
	return &ratio
}

// Subtitle derives the merchant subtitle line for an offer card: the raw
// amount string when present, else a percentage rendered from the ratio,
// else empty.
func (o *Offer) Subtitle() string {
	if o.OriginalOfferAmount != "" {
		return fmt.Sprintf("Jusqu'à %s de cashback", o.OriginalOfferAmount)
	}
	if o.AmountRatio != nil {
		pct := *o.AmountRatio * 100
		if pct == float64(int64(pct)) {
			return fmt.Sprintf("Jusqu'à %d%% de cashback", int64(pct))
		}
		return fmt.Sprintf("Jusqu'à %.1f%% de cashback", pct)
	}
	return ""
}

// DisplayOffer is the view-only row the presentation layer renders. It is
// recomputed on every query and never persisted.
type DisplayOffer struct {
	OfferID             string   `json:"offer_id"`
	MerchantName        string   `json:"merchant_name"`
	MerchantImageURL    string   `json:"merchant_image_url"`
	BannerImageURL      string   `json:"banner_img_url"`
	OfferDescription    string   `json:"offer_description"`
	OriginalOfferAmount string   `json:"original_offer_amount"`
	MerchantDays        string   `json:"merchant_days"`
	MerchantSubtitle    string   `json:"merchant_subtitle_display"`
	AboutTextShort      string   `json:"about_text_short"`
	ActiveConditions    []string `json:"active_conditions"`
	CashbackCode        string   `json:"imagined_cashback_code"`
	IsAvailable         bool     `json:"is_available"`
}

// NewDisplayOffer joins an offer with its merchant into a display row.
func NewDisplayOffer(o *Offer, m *Merchant) DisplayOffer {
	return DisplayOffer{
		OfferID:             o.ID,
		MerchantName:        m.Name,
		MerchantImageURL:    m.MerchantImageURL,
		BannerImageURL:      m.BannerImageURL,
		OfferDescription:    o.Description,
		OriginalOfferAmount: o.OriginalOfferAmount,
		MerchantDays:        m.MerchantDays,
		MerchantSubtitle:    o.Subtitle(),
		AboutTextShort:      m.AboutTextShort(),
		ActiveConditions:    o.ActiveConditions(),
		CashbackCode:        o.CashbackCode,
		IsAvailable:         o.Available,
	}
}
