package ai

import (
	"context"
	"log"

	"paypage_ai_server/internal/ai/prompts"
	"paypage_ai_server/internal/types"
)

// Generate asks the completion API for page copy and assembles the page.
func (g *Generator) Generate(ctx context.Context, data types.BusinessData) (*types.GeneratedPage, error) {
	if g.apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	log.Printf("Generating page content for %q (industry %q) with %s", data.BusinessName, data.Industry, g.model)

	raw, err := g.createCompletion(ctx, prompts.GetPageSystemPrompt(), prompts.GetPageContentPrompt(data))
	if err != nil {
		return nil, err
	}

	content, err := ParsePageContent(raw)
	if err != nil {
		log.Printf("ERROR: Failed to parse completion for %q: %v. Raw output: %s", data.BusinessName, err, raw)
		return nil, err
	}

	page := buildPage(data, content)
	log.Printf("Generated page %q (%d features, %d faq)", page.Title, len(page.Features), len(page.FAQ))
	return page, nil
}
