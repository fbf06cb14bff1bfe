package types

// Industries is the fixed catalog offered by the basic info step.
var Industries = []string{
	"Travel & Tourism",
	"Professional Services",
	"E-commerce",
	"Events & Experiences",
	"Education & Training",
	"Health & Wellness",
	"Creative Services",
	"Consulting",
	"Technology",
	"Food & Beverage",
	"Real Estate",
	"Financial Services",
}

// Currency is a supported price currency.
type Currency struct {
	Code   string
	Symbol string
	Name   string
}

var Currencies = []Currency{
	{Code: "USD", Symbol: "$", Name: "US Dollar"},
	{Code: "EUR", Symbol: "€", Name: "Euro"},
	{Code: "GBP", Symbol: "£", Name: "British Pound"},
	{Code: "CAD", Symbol: "C$", Name: "Canadian Dollar"},
	{Code: "AUD", Symbol: "A$", Name: "Australian Dollar"},
	{Code: "JPY", Symbol: "¥", Name: "Japanese Yen"},
	{Code: "CHF", Symbol: "Fr", Name: "Swiss Franc"},
}

const DefaultCurrency = "USD"

// DefaultBrandColors is the preset applied when a wizard starts.
var DefaultBrandColors = BrandColors{Primary: "#6366f1", Secondary: "#8b5cf6"}

// IsKnownIndustry reports whether industry is in the catalog.
func IsKnownIndustry(industry string) bool {
	for _, i := range Industries {
		if i == industry {
			return true
		}
	}
	return false
}

// IsKnownCurrency reports whether code is a supported currency code.
func IsKnownCurrency(code string) bool {
	for _, c := range Currencies {
		if c.Code == code {
			return true
		}
	}
	return false
}

// CurrencySymbol returns the display symbol for code, falling back to "$".
func CurrencySymbol(code string) string {
	for _, c := range Currencies {
		if c.Code == code {
			return c.Symbol
		}
	}
	return "$"
}

// NewBusinessData returns the empty accumulator a wizard starts from.
func NewBusinessData() *BusinessData {
	return &BusinessData{
		Currency: DefaultCurrency,
		Colors:   DefaultBrandColors,
		Images:   []ImageAttachment{},
	}
}
