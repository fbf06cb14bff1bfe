package ai

import (
	"encoding/json"
	"fmt"
	"strings"

	"paypage_ai_server/internal/types"
)

// PageContent is the copy a completion is asked to return.
type PageContent struct {
	Headline     string          `json:"headline"`
	Description  string          `json:"description"`
	Features     []string        `json:"features"`
	CallToAction string          `json:"callToAction"`
	TrustSignals []string        `json:"trustSignals"`
	FAQ          []types.FAQItem `json:"faq"`
}

// ParsePageContent decodes a single JSON object from raw completion text.
// A ```json fence around the object is tolerated; anything else that is not
// the expected object is an ErrMalformedCompletion.
func ParsePageContent(raw string) (*PageContent, error) {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	var content PageContent
	if err := json.Unmarshal([]byte(cleaned), &content); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedCompletion, err)
	}
	if strings.TrimSpace(content.Headline) == "" {
		return nil, fmt.Errorf("%w: missing headline", ErrMalformedCompletion)
	}
	return &content, nil
}

// buildPage fills in the fields the completion never produces. Lists the
// completion left out come back empty, never null.
func buildPage(data types.BusinessData, content *PageContent) *types.GeneratedPage {
	return &types.GeneratedPage{
		Title:        fmt.Sprintf("%s - %s", data.BusinessName, content.Headline),
		Headline:     content.Headline,
		Description:  content.Description,
		Features:     orEmpty(content.Features),
		CallToAction: content.CallToAction,
		TrustSignals: orEmpty(content.TrustSignals),
		FAQ:          orEmpty(content.FAQ),
		Template:     RealTemplate,
		Colors:       PageColorsFor(data.Colors),
	}
}

func orEmpty[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
