package wizard

import (
	"strings"

	"paypage_ai_server/internal/types"
)

// Step enumerates the wizard screens in order.
type Step int

const (
	StepBasicInfo Step = iota // 0
	StepPricing               // 1
	StepBranding              // 2
	StepImages                // 3
)

const stepCount = 4

// StepLabels are the titles shown in the progress indicator.
func StepLabels() []string {
	return []string{
		"Basic Information",
		"Pricing & Availability",
		"Visual Branding",
		"Images & Logo",
	}
}

// CanAdvance reports whether the data entered so far allows leaving step.
// Branding and images are always valid: colors start from a preset and images are optional.
func CanAdvance(step Step, data *types.BusinessData) bool {
	if data == nil {
		return false
	}
	switch step {
	case StepBasicInfo:
		return filled(data.CompanyName) && filled(data.BusinessName) && filled(data.Description)
	case StepPricing:
		return filled(data.Price)
	case StepBranding, StepImages:
		return true
	default:
		return false
	}
}

func filled(s string) bool {
	return strings.TrimSpace(s) != ""
}
