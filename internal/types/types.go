package types

import "time"

// ImageType classifies an uploaded image.
type ImageType string

const (
	ImageLogo   ImageType = "logo"
	ImageHomeBg ImageType = "home-bg"
	ImageOther  ImageType = "other"
)

// Valid reports whether t is one of the known image classifications.
func (t ImageType) Valid() bool {
	switch t {
	case ImageLogo, ImageHomeBg, ImageOther:
		return true
	}
	return false
}

// BrandColors are the two user-chosen theme colors, hex encoded ("#6366f1").
type BrandColors struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
}

// ImageAttachment is one uploaded image. The blob itself never goes over the wire.
type ImageAttachment struct {
	Data        []byte    `json:"-"`
	ContentType string    `json:"contentType"`
	Size        int       `json:"size"`
	Type        ImageType `json:"type"`
}

// BusinessData is the form accumulator collected across the wizard steps.
type BusinessData struct {
	CompanyName  string            `json:"companyName"`
	BusinessName string            `json:"businessName"`
	Description  string            `json:"description"`
	Price        string            `json:"price"`
	Currency     string            `json:"currency"`
	Availability string            `json:"availability"`
	Industry     string            `json:"industry"`
	Colors       BrandColors       `json:"colors"`
	Images       []ImageAttachment `json:"images"`
}

// FAQItem is a single question/answer pair.
type FAQItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// PageColors is the full theme of a generated page; Accent is derived from Primary.
type PageColors struct {
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
	Accent    string `json:"accent"`
}

// GeneratedPage is the output of either content generator.
type GeneratedPage struct {
	Title        string     `json:"title"`
	Headline     string     `json:"headline"`
	Description  string     `json:"description"`
	Features     []string   `json:"features"`
	CallToAction string     `json:"callToAction"`
	TrustSignals []string   `json:"trustSignals"`
	FAQ          []FAQItem  `json:"faq"`
	Template     string     `json:"template"`
	Colors       PageColors `json:"colors"`
}

// PersistedPage is one row of the payment_pages table.
type PersistedPage struct {
	ID           string     `json:"id"`
	UserID       string     `json:"user_id"`
	Title        string     `json:"title"`
	CompanyName  string     `json:"company_name"`
	BusinessName string     `json:"business_name"`
	Description  string     `json:"description"`
	Price        string     `json:"price"`
	Currency     string     `json:"currency"`
	Availability string     `json:"availability"`
	Industry     string     `json:"industry"`
	Headline     string     `json:"headline"`
	Features     []string   `json:"features"`
	CallToAction string     `json:"call_to_action"`
	TrustSignals []string   `json:"trust_signals"`
	FAQ          []FAQItem  `json:"faq"`
	Colors       PageColors `json:"colors"`
	Template     string     `json:"template"`
	CreatedAt    time.Time  `json:"created_at"`
}
