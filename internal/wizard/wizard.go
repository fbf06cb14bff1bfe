// Package wizard holds the multi-step business form: per-step validation,
// navigation, the shared BusinessData accumulator and image intake.
package wizard

import (
	"context"
	"sync"

	"paypage_ai_server/internal/types"
)

// State is the app-level phase the wizard drives.
type State string

const (
	StateInput      State = "input"
	StateProcessing State = "processing"
	StatePreview    State = "preview"
)

// SubmitFunc starts a generation for one submission. ctx is cancelled when the
// wizard abandons the run; run identifies it in Complete and Fail.
type SubmitFunc func(ctx context.Context, run uint64, data types.BusinessData)

// Wizard owns the current step and a single accumulator shared by every step.
// Steps receive the same *BusinessData through Data, never a copy.
type Wizard struct {
	mu        sync.Mutex
	step      Step
	state     State
	data      *types.BusinessData
	submitted *types.BusinessData
	page      *types.GeneratedPage
	lastErr   error
	onSubmit  SubmitFunc

	run    uint64 // bumped on every submission and every abandon
	cancel context.CancelFunc
}

// New starts an empty wizard. onSubmit receives a frozen copy of the
// accumulator when the last step is passed; it may be nil.
func New(onSubmit SubmitFunc) *Wizard {
	return &Wizard{
		step:     StepBasicInfo,
		state:    StateInput,
		data:     types.NewBusinessData(),
		onSubmit: onSubmit,
	}
}

// Data returns the shared accumulator.
func (w *Wizard) Data() *types.BusinessData {
	return w.data
}

// Update runs fn against the accumulator while holding the wizard lock.
// Concurrent callers (HTTP handlers) mutate the data through here.
func (w *Wizard) Update(fn func(data *types.BusinessData) error) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return fn(w.data)
}

func (w *Wizard) Step() Step {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.step
}

func (w *Wizard) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

// Submitted returns the frozen data handed to the generator, or nil before submission.
func (w *Wizard) Submitted() *types.BusinessData {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.submitted
}

// Page returns the generated page once the wizard reached preview.
func (w *Wizard) Page() *types.GeneratedPage {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.page
}

// IsLastStep reports whether the current step is the final one.
func (w *Wizard) IsLastStep() bool {
	return w.Step() == stepCount-1
}

// CanAdvance validates the current step against the accumulator.
func (w *Wizard) CanAdvance() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state == StateInput && CanAdvance(w.step, w.data)
}

// GoNext moves forward one step. On the last step it freezes the data,
// switches to processing and calls onSubmit; it then returns true.
// Invalid data is a no-op.
func (w *Wizard) GoNext() bool {
	w.mu.Lock()
	if w.state != StateInput || !CanAdvance(w.step, w.data) {
		w.mu.Unlock()
		return false
	}
	if w.step < stepCount-1 {
		w.step++
		w.mu.Unlock()
		return false
	}

	frozen := freeze(w.data)
	w.submitted = &frozen
	w.state = StateProcessing
	w.lastErr = nil
	ctx, run := w.beginRun()
	submit := w.onSubmit
	w.mu.Unlock()

	if submit != nil {
		submit(ctx, run, frozen)
	}
	return true
}

// GoPrevious moves back one step, never below the first. No validation.
func (w *Wizard) GoPrevious() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.step > StepBasicInfo {
		w.step--
	}
}

// Complete records the generated page of run and moves to preview. It
// reports false when run is no longer the wizard's current submission.
func (w *Wizard) Complete(run uint64, page *types.GeneratedPage) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.pending(run) {
		return false
	}
	w.endRun()
	w.page = page
	w.state = StatePreview
	return true
}

// Fail returns a processing wizard to input so the user can resubmit.
// A failure of an abandoned run is ignored and reported as false.
func (w *Wizard) Fail(run uint64, err error) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.pending(run) {
		return false
	}
	w.endRun()
	w.state = StateInput
	w.lastErr = err
	return true
}

// PreviewRun reports the run whose page is shown, and whether the wizard is in preview.
func (w *Wizard) PreviewRun() (uint64, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.run, w.state == StatePreview
}

// Cancel abandons a pending generation. A processing wizard returns to input.
func (w *Wizard) Cancel() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.abandon()
	if w.state == StateProcessing {
		w.state = StateInput
	}
}

// Err is the reason the last generation failed, cleared by the next submission.
func (w *Wizard) Err() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.lastErr
}

// Edit returns from preview, or from a pending generation, to the form with
// the data kept. A pending generation is cancelled.
func (w *Wizard) Edit() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.state == StateInput {
		return
	}
	w.abandon()
	w.state = StateInput
	w.page = nil
}

// Regenerate sends the same frozen data back through generation.
func (w *Wizard) Regenerate() bool {
	w.mu.Lock()
	if w.state != StatePreview || w.submitted == nil {
		w.mu.Unlock()
		return false
	}
	w.state = StateProcessing
	w.page = nil
	w.lastErr = nil
	frozen := *w.submitted
	ctx, run := w.beginRun()
	submit := w.onSubmit
	w.mu.Unlock()

	if submit != nil {
		submit(ctx, run, frozen)
	}
	return true
}

// Restart discards everything and starts over from an empty accumulator.
// The accumulator is reset in place so holders of Data see the reset.
func (w *Wizard) Restart() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.abandon()
	*w.data = *types.NewBusinessData()
	w.step = StepBasicInfo
	w.state = StateInput
	w.submitted = nil
	w.page = nil
	w.lastErr = nil
}

// beginRun abandons any previous run and opens a new one. Callers hold mu.
func (w *Wizard) beginRun() (context.Context, uint64) {
	w.abandon()
	ctx, cancel := context.WithCancel(context.Background())
	w.cancel = cancel
	return ctx, w.run
}

// abandon cancels the pending run, if any, and invalidates its token.
func (w *Wizard) abandon() {
	w.endRun()
	w.run++
}

// endRun releases the context of the current run.
func (w *Wizard) endRun() {
	if w.cancel != nil {
		w.cancel()
		w.cancel = nil
	}
}

func (w *Wizard) pending(run uint64) bool {
	return w.state == StateProcessing && run == w.run
}

func freeze(data *types.BusinessData) types.BusinessData {
	frozen := *data
	frozen.Images = append([]types.ImageAttachment(nil), data.Images...)
	return frozen
}

// Snapshot is a consistent copy of the wizard for serialization.
type Snapshot struct {
	Step       Step                 `json:"step"`
	StepLabel  string               `json:"stepLabel"`
	Steps      []string             `json:"steps"`
	State      State                `json:"state"`
	CanAdvance bool                 `json:"canAdvance"`
	IsLastStep bool                 `json:"isLastStep"`
	Data       types.BusinessData   `json:"data"`
	Page       *types.GeneratedPage `json:"page,omitempty"`
	Error      string               `json:"error,omitempty"`
}

func (w *Wizard) Snapshot() Snapshot {
	w.mu.Lock()
	defer w.mu.Unlock()
	labels := StepLabels()
	s := Snapshot{
		Step:       w.step,
		StepLabel:  labels[w.step],
		Steps:      labels,
		State:      w.state,
		CanAdvance: w.state == StateInput && CanAdvance(w.step, w.data),
		IsLastStep: w.step == stepCount-1,
		Data:       freeze(w.data),
		Page:       w.page,
	}
	if w.lastErr != nil {
		s.Error = w.lastErr.Error()
	}
	return s
}
