package domain

// Merchant is a cashback partner whose offers appear in the catalog.
type Merchant struct {
	ID               string `json:"merchant_id"`
	Name             string `json:"merchant_name"`
	BannerImageURL   string `json:"banner_img_url,omitempty"`
	MerchantImageURL string `json:"merchant_image_url,omitempty"`
	MerchantDays     string `json:"merchant_days,omitempty"` // free-form label, e.g. "7j"
	AboutText        string `json:"about_text,omitempty"`
}

// aboutTextLimit is the display truncation bound for about texts.
const aboutTextLimit = 100

// AboutTextShort returns the about text truncated for card display: the
// first 100 runes followed by "..." when the text is longer.
func (m *Merchant) AboutTextShort() string {
	runes := []rune(m.AboutText)
	if len(runes) <= aboutTextLimit {
		return m.AboutText
	}
	return string(runes[:aboutTextLimit]) + "..."
}
