package wizard

import "paypage_ai_server/internal/types"

type example struct {
	name         string
	description  string
	price        string
	availability string
}

var examples = map[string]example{
	"Travel & Tourism": {
		name:         "Sunset Paradise Tours",
		description:  "Experience the magic of Bali with our exclusive 7-day cultural immersion tour. Includes luxury accommodations, private guides, and authentic local experiences.",
		price:        "2,499",
		availability: "Limited to 12 guests per tour",
	},
	"Professional Services": {
		name:         "Strategic Business Consulting",
		description:  "Transform your business with our comprehensive 90-day growth strategy program. Includes market analysis, competitive research, and implementation roadmap.",
		price:        "4,999",
		availability: "Only 5 spots available this quarter",
	},
	"Creative Services": {
		name:         "Premium Brand Photography",
		description:  "Elevate your brand with professional photography that tells your story. Full day shoot with 50+ edited images and commercial usage rights.",
		price:        "1,200",
		availability: "Booking 3-4 weeks in advance",
	},
}

// FillExample prefills the accumulator with the sample business for industry.
// Company name, colors and images are left alone. Returns false when no sample exists.
func FillExample(data *types.BusinessData, industry string) bool {
	ex, ok := examples[industry]
	if !ok {
		return false
	}
	data.BusinessName = ex.name
	data.Description = ex.description
	data.Price = ex.price
	data.Availability = ex.availability
	data.Industry = industry
	return true
}

// BrandingPreset is a primary/secondary pair offered on the branding step.
type BrandingPreset struct {
	Name   string            `json:"name"`
	Colors types.BrandColors `json:"colors"`
}

var BrandingPresets = []BrandingPreset{
	{Name: "Purple", Colors: types.BrandColors{Primary: "#6366f1", Secondary: "#8b5cf6"}},
	{Name: "Blue", Colors: types.BrandColors{Primary: "#0ea5e9", Secondary: "#06b6d4"}},
	{Name: "Green", Colors: types.BrandColors{Primary: "#10b981", Secondary: "#059669"}},
	{Name: "Orange", Colors: types.BrandColors{Primary: "#f59e0b", Secondary: "#d97706"}},
	{Name: "Red", Colors: types.BrandColors{Primary: "#ef4444", Secondary: "#dc2626"}},
	{Name: "Violet", Colors: types.BrandColors{Primary: "#8b5cf6", Secondary: "#7c3aed"}},
}

// ApplyBrandingPreset sets both brand colors from the named preset.
func ApplyBrandingPreset(data *types.BusinessData, name string) bool {
	for _, p := range BrandingPresets {
		if p.Name == name {
			data.Colors = p.Colors
			return true
		}
	}
	return false
}
