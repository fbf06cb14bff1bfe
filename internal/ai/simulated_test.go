package ai

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paypage_ai_server/internal/types"
)

// fixedPicker always picks the same index, clamped to the candidate count.
type fixedPicker int

func (f fixedPicker) IntN(n int) int { return min(int(f), n-1) }

func TestSimulatedFeaturesAreDeterministic(t *testing.T) {
	gen := NewSimulatedGenerator(nil)
	for industry, features := range industryFeatures {
		if industry == defaultIndustry {
			continue
		}
		t.Run(industry, func(t *testing.T) {
			data := sampleData()
			data.Industry = industry
			for i := 0; i < 5; i++ {
				assert.Equal(t, features, gen.Build(data).Features)
			}
		})
	}
}

func TestSimulatedUnknownIndustryFallsBack(t *testing.T) {
	for _, industry := range []string{"", "Food & Beverage", "Underwater Basket Weaving"} {
		t.Run(industry, func(t *testing.T) {
			data := sampleData()
			data.Industry = industry
			page := NewSimulatedGenerator(fixedPicker(0)).Build(data)

			assert.Equal(t, industryFeatures[defaultIndustry], page.Features)
			assert.Equal(t, industryContents[defaultIndustry].TrustSignals, page.TrustSignals)
			assert.Equal(t, "Sunset Paradise Tours - Premium Quality Guaranteed", page.Title)
			assert.Equal(t, "Seven days in Bali. Premium quality and exceptional service.", page.Description)
		})
	}
}

func TestSimulatedRandomFieldsComeFromCandidates(t *testing.T) {
	gen := NewSimulatedGenerator(nil)
	data := sampleData()

	headlines := make([]string, len(headlineFormats))
	for i := range headlineFormats {
		headlines[i] = NewSimulatedGenerator(fixedPicker(i)).Build(data).Headline
	}

	for i := 0; i < 20; i++ {
		page := gen.Build(data)
		assert.Contains(t, Templates, page.Template)
		assert.Contains(t, callsToAction, page.CallToAction)
		assert.Contains(t, headlines, page.Headline)
		assert.Len(t, page.FAQ, 4)
	}
}

func TestSimulatedWithFixedPicker(t *testing.T) {
	data := sampleData()
	data.Colors = types.BrandColors{Primary: "#6366f1", Secondary: "#8b5cf6"}

	page := NewSimulatedGenerator(fixedPicker(2)).Build(data)
	assert.Equal(t, "minimal", page.Template)
	assert.Equal(t, "Exclusive Sunset Paradise Tours - Limited Availability", page.Headline)
	assert.Equal(t, "Seven days in Bali. All-inclusive packages with premium accommodations.", page.Description)
	assert.Equal(t, "Secure Your Spot", page.CallToAction)
	assert.Equal(t, "Sunset Paradise Tours - Unforgettable Adventures Await", page.Title)
	assert.Equal(t, "#9584ff", page.Colors.Accent)
}

func TestSimulatedGenerateHonoursContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewSimulatedGenerator(nil).Generate(ctx, sampleData())
	assert.ErrorIs(t, err, context.Canceled)
}

func TestProgressAt(t *testing.T) {
	sim := NewSimulation(nil)
	assert.Equal(t, 10*time.Second, sim.Total())

	tests := []struct {
		elapsed time.Duration
		phase   int
		percent float64
	}{
		{0, 0, 0},
		{2000 * time.Millisecond, 0, 20},
		{2100 * time.Millisecond, 1, 21},
		{5000 * time.Millisecond, 1, 50},
		{9500 * time.Millisecond, 4, 95},
		{12 * time.Second, 4, 100},
	}
	for _, tt := range tests {
		pr := sim.ProgressAt(tt.elapsed)
		assert.Equal(t, tt.phase, pr.Phase, "phase at %s", tt.elapsed)
		assert.InDelta(t, tt.percent, pr.Percent, 0.001, "percent at %s", tt.elapsed)
		assert.Equal(t, DefaultPhases[tt.phase].Label, pr.Label)
	}
}

func fastSimulation() *Simulation {
	return &Simulation{
		Generator: NewSimulatedGenerator(fixedPicker(0)),
		Phases: []Phase{
			{Label: "one", Duration: 3 * time.Millisecond},
			{Label: "two", Duration: 2 * time.Millisecond},
		},
		Tick:            time.Millisecond,
		CompletionDelay: time.Millisecond,
	}
}

func TestSimulationRun(t *testing.T) {
	var ticks []Progress
	page, err := fastSimulation().Run(context.Background(), sampleData(), func(p Progress) {
		ticks = append(ticks, p)
	})
	require.NoError(t, err)
	require.NotNil(t, page)

	require.Len(t, ticks, 5)
	assert.Equal(t, "one", ticks[0].Label)
	assert.Equal(t, "two", ticks[4].Label)
	assert.Equal(t, float64(100), ticks[4].Percent)
	assert.Equal(t, "Transform Your Experience with Sunset Paradise Tours", page.Headline)
}

func TestSimulationRunCancelled(t *testing.T) {
	sim := fastSimulation()
	sim.Phases = []Phase{{Label: "long", Duration: time.Hour}}

	ctx, cancel := context.WithCancel(context.Background())
	var once sync.Once
	page, err := sim.Run(ctx, sampleData(), func(Progress) { once.Do(cancel) })

	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, page, "no page after teardown")
}
