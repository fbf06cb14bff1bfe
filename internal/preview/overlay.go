// Package preview merges a generated page with post-generation edits and
// holds the preview-only concerns: colors, view toggles and the payment mock.
package preview

import (
	"slices"

	"paypage_ai_server/internal/types"
)

// Overlay holds the user's edits over a generated page. A nil field means
// "not edited" and falls through to the generation; an empty non-nil list
// is an edit that removed every item.
type Overlay struct {
	Headline     *string         `json:"headline,omitempty"`
	Description  *string         `json:"description,omitempty"`
	Features     []string        `json:"features"`
	CallToAction *string         `json:"callToAction,omitempty"`
	TrustSignals []string        `json:"trustSignals"`
	FAQ          []types.FAQItem `json:"faq"`
}

// Displayed is the page as shown: overlay fields win over the generation,
// and colors (when non-nil) replace the generated theme.
func Displayed(page types.GeneratedPage, overlay Overlay, colors *types.PageColors) types.GeneratedPage {
	out := page
	out.Features = slices.Clone(page.Features)
	out.TrustSignals = slices.Clone(page.TrustSignals)
	out.FAQ = slices.Clone(page.FAQ)

	if overlay.Headline != nil {
		out.Headline = *overlay.Headline
	}
	if overlay.Description != nil {
		out.Description = *overlay.Description
	}
	if overlay.CallToAction != nil {
		out.CallToAction = *overlay.CallToAction
	}
	if overlay.Features != nil {
		out.Features = slices.Clone(overlay.Features)
	}
	if overlay.TrustSignals != nil {
		out.TrustSignals = slices.Clone(overlay.TrustSignals)
	}
	if overlay.FAQ != nil {
		out.FAQ = slices.Clone(overlay.FAQ)
	}
	if colors != nil {
		out.Colors = *colors
	}
	return out
}
