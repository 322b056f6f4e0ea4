package dto

// MerchantForm is the form body for creating or replacing a merchant.
// The admin UI submits classic url-encoded forms, so fields bind by
// form tag rather than JSON.
type MerchantForm struct {
	MerchantName     string `form:"merchant_name" binding:"required,max=100"`
	BannerImageURL   string `form:"banner_img_url" binding:"omitempty,safe_url"`
	MerchantImageURL string `form:"merchant_image_url" binding:"omitempty,safe_url"`
	MerchantDays     string `form:"merchant_days" binding:"max=100"`
	AboutText        string `form:"about_text" binding:"max=2000"`
}

// OfferForm is the form body for creating or replacing an offer.
// Checkbox fields (available and the condition flags) are not listed
// here: a checked box submits the literal "true" and an unchecked box
// submits nothing, so the handler reads them straight off the form.
type OfferForm struct {
	MerchantID          string `form:"merchant_id" binding:"required,safe_id"`
	OriginalOfferAmount string `form:"original_offer_amount" binding:"max=100"`
	OfferDescription    string `form:"offer_description" binding:"required,max=500"`
	EndDate             string `form:"end_date"`
	CashbackCode        string `form:"imagined_cashback_code" binding:"max=100"`
}

// OfferUpdateForm is OfferForm for replacements. The owning merchant is
// fixed at creation, so the edit form does not have to resubmit
// merchant_id; a resubmitted value is ignored anyway.
type OfferUpdateForm struct {
	MerchantID          string `form:"merchant_id" binding:"omitempty,safe_id"`
	OriginalOfferAmount string `form:"original_offer_amount" binding:"max=100"`
	OfferDescription    string `form:"offer_description" binding:"required,max=500"`
	EndDate             string `form:"end_date"`
	CashbackCode        string `form:"imagined_cashback_code" binding:"max=100"`
}

// MerchantCreatedResponse is returned after a successful merchant insert.
type MerchantCreatedResponse struct {
	MerchantID string `json:"merchant_id"`
}

// OfferCreatedResponse is returned after a successful offer insert.
type OfferCreatedResponse struct {
	OfferID string `json:"offer_id"`
}

// SyncEvent is the catalog-sync webhook payload. Only the fields the
// service reacts to are bound; the rest of the event passes through as-is.
type SyncEvent struct {
	VerificationToken string `json:"verification_token"`
	Type              string `json:"type"`
}
