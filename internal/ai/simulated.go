package ai

import (
	"context"
	"fmt"
	"slices"

	"paypage_ai_server/internal/types"
)

// SimulatedGenerator builds a page from fixed tables without any network call.
type SimulatedGenerator struct {
	Picker Picker
}

func NewSimulatedGenerator(p Picker) *SimulatedGenerator {
	if p == nil {
		p = RandomPicker
	}
	return &SimulatedGenerator{Picker: p}
}

// Generate returns immediately. The phased delay lives in Simulation.
func (s *SimulatedGenerator) Generate(ctx context.Context, data types.BusinessData) (*types.GeneratedPage, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.Build(data), nil
}

// Build is the synchronous page assembly.
func (s *SimulatedGenerator) Build(data types.BusinessData) *types.GeneratedPage {
	p := s.Picker
	if p == nil {
		p = RandomPicker
	}

	template := pick(p, Templates)
	content := lookup(industryContents, data.Industry)
	headline := fmt.Sprintf(pick(p, headlineFormats), data.BusinessName)
	enhancement := pick(p, lookup(descriptionEnhancements, data.Industry))
	cta := pick(p, callsToAction)

	return &types.GeneratedPage{
		Title:        fmt.Sprintf("%s - %s", data.BusinessName, content.TitleSuffix),
		Headline:     headline,
		Description:  data.Description + " " + enhancement,
		Features:     slices.Clone(lookup(industryFeatures, data.Industry)),
		CallToAction: cta,
		TrustSignals: slices.Clone(content.TrustSignals),
		FAQ:          slices.Clone(simulatedFAQ),
		Template:     template,
		Colors:       PageColorsFor(data.Colors),
	}
}
