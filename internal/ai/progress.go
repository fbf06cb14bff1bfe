package ai

import (
	"context"
	"time"

	"paypage_ai_server/internal/types"
)

// Phase is one labelled slice of the simulated progress bar.
type Phase struct {
	Label       string        `json:"label"`
	Description string        `json:"description"`
	Duration    time.Duration `json:"-"`
}

var DefaultPhases = []Phase{
	{Label: "Analyzing Business Context", Description: "Understanding your industry and target audience", Duration: 2000 * time.Millisecond},
	{Label: "Generating Compelling Content", Description: "Creating headlines, descriptions, and persuasive copy", Duration: 3000 * time.Millisecond},
	{Label: "Designing Visual Layout", Description: "Selecting optimal templates and color schemes", Duration: 2000 * time.Millisecond},
	{Label: "Optimizing for Conversions", Description: "Fine-tuning elements for maximum impact", Duration: 2000 * time.Millisecond},
	{Label: "Finalizing Your Page", Description: "Adding finishing touches and preparing preview", Duration: 1000 * time.Millisecond},
}

const (
	DefaultTick            = 100 * time.Millisecond
	DefaultCompletionDelay = 500 * time.Millisecond
)

// Progress is reported on every tick.
type Progress struct {
	Phase     int     `json:"phase"`
	Label     string  `json:"label"`
	Detail    string  `json:"description"`
	ElapsedMs int64   `json:"elapsedMs"`
	TotalMs   int64   `json:"totalMs"`
	Percent   float64 `json:"percent"`
}

// Simulation drives the simulated generator behind an animated progress indicator.
type Simulation struct {
	Generator       *SimulatedGenerator
	Phases          []Phase
	Tick            time.Duration
	CompletionDelay time.Duration
}

func NewSimulation(gen *SimulatedGenerator) *Simulation {
	return &Simulation{
		Generator:       gen,
		Phases:          DefaultPhases,
		Tick:            DefaultTick,
		CompletionDelay: DefaultCompletionDelay,
	}
}

// Total is the sum of all phase durations.
func (s *Simulation) Total() time.Duration {
	var total time.Duration
	for _, p := range s.Phases {
		total += p.Duration
	}
	return total
}

// ProgressAt reports the phase and percentage at elapsed. The current phase is
// the first whose cumulative end is >= elapsed; percent is clamped to 100.
func (s *Simulation) ProgressAt(elapsed time.Duration) Progress {
	total := s.Total()
	pr := Progress{ElapsedMs: elapsed.Milliseconds(), TotalMs: total.Milliseconds()}
	if total > 0 {
		pr.Percent = min(100, float64(elapsed)/float64(total)*100)
	}

	pr.Phase = len(s.Phases) - 1
	var end time.Duration
	for i, p := range s.Phases {
		end += p.Duration
		if end >= elapsed {
			pr.Phase = i
			break
		}
	}
	if pr.Phase >= 0 {
		pr.Label = s.Phases[pr.Phase].Label
		pr.Detail = s.Phases[pr.Phase].Description
	}
	return pr
}

// Run ticks onTick until every phase has elapsed, waits CompletionDelay,
// then builds the page. The ticker is stopped on every return path; if ctx
// ends first Run returns ctx.Err() and no page is built.
func (s *Simulation) Run(ctx context.Context, data types.BusinessData, onTick func(Progress)) (*types.GeneratedPage, error) {
	tick := s.Tick
	if tick <= 0 {
		tick = DefaultTick
	}
	total := s.Total()

	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	var elapsed time.Duration
	for elapsed < total {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
			elapsed = min(total, elapsed+tick)
			if onTick != nil {
				onTick(s.ProgressAt(elapsed))
			}
		}
	}
	ticker.Stop()

	if s.CompletionDelay > 0 {
		timer := time.NewTimer(s.CompletionDelay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-timer.C:
		}
	}

	gen := s.Generator
	if gen == nil {
		gen = NewSimulatedGenerator(nil)
	}
	return gen.Build(data), nil
}
