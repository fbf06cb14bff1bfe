package ai

import (
	"fmt"
	"strconv"

	"paypage_ai_server/internal/types"
	"paypage_ai_server/internal/utils"
)

// AccentColor brightens primary by +50/+30/+20 on R/G/B, clamped to 255,
// and returns it as lowercase "#rrggbb". Input that is not "#rrggbb" is
// returned unchanged.
func AccentColor(primary string) string {
	if !utils.IsHexColor(primary) {
		return primary
	}
	channel := func(i, delta int) int {
		v, _ := strconv.ParseUint(primary[i:i+2], 16, 8)
		return min(255, int(v)+delta)
	}
	return fmt.Sprintf("#%02x%02x%02x", channel(1, 50), channel(3, 30), channel(5, 20))
}

// PageColorsFor derives the page theme from the brand colors.
// Missing channels fall back to the default brand colors.
func PageColorsFor(brand types.BrandColors) types.PageColors {
	if brand.Primary == "" {
		brand.Primary = types.DefaultBrandColors.Primary
	}
	if brand.Secondary == "" {
		brand.Secondary = types.DefaultBrandColors.Secondary
	}
	return types.PageColors{
		Primary:   brand.Primary,
		Secondary: brand.Secondary,
		Accent:    AccentColor(brand.Primary),
	}
}
