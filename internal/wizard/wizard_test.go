package wizard

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paypage_ai_server/internal/types"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func fillBasics(d *types.BusinessData) {
	d.CompanyName = "Acme"
	d.BusinessName = "Sunset Tours"
	d.Description = "Guided island tours"
	d.Price = "2,499"
}

func TestCanAdvance(t *testing.T) {
	d := types.NewBusinessData()
	assert.False(t, CanAdvance(StepBasicInfo, d))

	d.CompanyName = "Acme"
	d.BusinessName = "Sunset Tours"
	d.Description = "   "
	assert.False(t, CanAdvance(StepBasicInfo, d), "whitespace description must not pass")

	d.Description = "Guided island tours"
	assert.True(t, CanAdvance(StepBasicInfo, d))

	assert.False(t, CanAdvance(StepPricing, d))
	d.Price = "10"
	assert.True(t, CanAdvance(StepPricing, d))

	assert.True(t, CanAdvance(StepBranding, d))
	assert.True(t, CanAdvance(StepImages, d))
	assert.False(t, CanAdvance(Step(7), d))
	assert.False(t, CanAdvance(StepBranding, nil))
}

func TestWizardNavigation(t *testing.T) {
	var got []types.BusinessData
	w := New(func(_ context.Context, _ uint64, d types.BusinessData) { got = append(got, d) })

	assert.False(t, w.GoNext(), "invalid first step is a no-op")
	assert.Equal(t, StepBasicInfo, w.Step())

	w.GoPrevious()
	w.GoPrevious()
	assert.Equal(t, StepBasicInfo, w.Step())

	fillBasics(w.Data())
	for i := 0; i < 3; i++ {
		assert.False(t, w.GoNext())
	}
	assert.Equal(t, StepImages, w.Step())
	assert.True(t, w.IsLastStep())

	w.GoPrevious()
	assert.Equal(t, StepBranding, w.Step())
	assert.Equal(t, "Sunset Tours", w.Data().BusinessName, "data survives going back")
	w.GoNext()

	assert.True(t, w.GoNext())
	require.Len(t, got, 1)
	assert.Equal(t, StateProcessing, w.State())
	assert.Equal(t, "Acme", got[0].CompanyName)
}

func TestSubmissionFreezesData(t *testing.T) {
	var got types.BusinessData
	w := New(func(_ context.Context, _ uint64, d types.BusinessData) { got = d })
	fillBasics(w.Data())
	_, err := AddImage(w.Data(), pngHeader)
	require.NoError(t, err)

	for !w.GoNext() {
	}

	w.Data().BusinessName = "Changed"
	w.Data().Images[0].Type = types.ImageLogo
	assert.Equal(t, "Sunset Tours", got.BusinessName)
	assert.Equal(t, types.ImageHomeBg, got.Images[0].Type)
	assert.Equal(t, "Sunset Tours", w.Submitted().BusinessName)
	assert.False(t, w.GoNext(), "no resubmission while processing")
}

// submission records what the wizard handed to its SubmitFunc.
type submission struct {
	ctx  context.Context
	run  uint64
	data types.BusinessData
}

func recordingWizard() (*Wizard, *[]submission) {
	var subs []submission
	w := New(func(ctx context.Context, run uint64, d types.BusinessData) {
		subs = append(subs, submission{ctx: ctx, run: run, data: d})
	})
	return w, &subs
}

func TestLifecycle(t *testing.T) {
	w, subs := recordingWizard()
	fillBasics(w.Data())
	for !w.GoNext() {
	}
	require.Len(t, *subs, 1)
	first := (*subs)[0]

	page := &types.GeneratedPage{Title: "T"}
	assert.True(t, w.Complete(first.run, page))
	assert.Equal(t, StatePreview, w.State())
	assert.False(t, w.Complete(first.run, page), "only a processing wizard completes")
	assert.Same(t, page, w.Page())
	run, ready := w.PreviewRun()
	assert.True(t, ready)
	assert.Equal(t, first.run, run)

	assert.True(t, w.Regenerate())
	require.Len(t, *subs, 2)
	second := (*subs)[1]
	assert.NotEqual(t, first.run, second.run)
	assert.Equal(t, StateProcessing, w.State())
	assert.Nil(t, w.Page())

	assert.False(t, w.Fail(first.run, errors.New("stale")), "an old run cannot fail the new one")
	assert.Equal(t, StateProcessing, w.State())

	assert.True(t, w.Fail(second.run, errors.New("upstream down")))
	assert.Equal(t, StateInput, w.State())
	assert.EqualError(t, w.Err(), "upstream down")
	assert.False(t, w.Regenerate())

	data := w.Data()
	w.Restart()
	assert.Equal(t, StepBasicInfo, w.Step())
	assert.Empty(t, data.CompanyName, "restart resets the shared accumulator")
	assert.Equal(t, types.DefaultCurrency, data.Currency)
	assert.Nil(t, w.Submitted())
}

func TestAddImageLimits(t *testing.T) {
	d := types.NewBusinessData()

	big := append(append([]byte{}, pngHeader...), bytes.Repeat([]byte{0}, MaxImageSize)...)
	_, err := AddImage(d, big)
	assert.ErrorIs(t, err, ErrFileTooLarge)

	_, err = AddImage(d, []byte("plain text, not an image"))
	assert.ErrorIs(t, err, ErrInvalidFileType)
	assert.Empty(t, d.Images)

	for i := 0; i < MaxImages; i++ {
		img, err := AddImage(d, pngHeader)
		require.NoError(t, err)
		assert.Equal(t, types.ImageHomeBg, img.Type)
		assert.Equal(t, "image/png", img.ContentType)
	}
	_, err = AddImage(d, pngHeader)
	assert.ErrorIs(t, err, ErrMaxImagesReached)
	assert.Len(t, d.Images, MaxImages)
}

func TestImageEdits(t *testing.T) {
	d := types.NewBusinessData()
	for i := 0; i < 3; i++ {
		_, err := AddImage(d, pngHeader)
		require.NoError(t, err)
	}

	require.NoError(t, SetImageType(d, 1, types.ImageLogo))
	assert.Equal(t, types.ImageLogo, d.Images[1].Type)
	assert.ErrorIs(t, SetImageType(d, 1, "banner"), ErrInvalidImageType)
	assert.ErrorIs(t, SetImageType(d, 9, types.ImageOther), ErrImageNotFound)

	require.NoError(t, RemoveImage(d, 0))
	require.Len(t, d.Images, 2)
	assert.Equal(t, types.ImageLogo, d.Images[0].Type)
	assert.ErrorIs(t, RemoveImage(d, 5), ErrImageNotFound)
}

func TestFillExample(t *testing.T) {
	d := types.NewBusinessData()
	d.CompanyName = "Keep Me"

	assert.True(t, FillExample(d, "Creative Services"))
	assert.Equal(t, "Premium Brand Photography", d.BusinessName)
	assert.Equal(t, "1,200", d.Price)
	assert.Equal(t, "Keep Me", d.CompanyName)

	assert.False(t, FillExample(d, "Healthcare"))
	assert.Equal(t, "Creative Services", d.Industry)
}

func TestApplyBrandingPreset(t *testing.T) {
	d := types.NewBusinessData()
	assert.True(t, ApplyBrandingPreset(d, "Green"))
	assert.Equal(t, "#10b981", d.Colors.Primary)
	assert.False(t, ApplyBrandingPreset(d, "Teal"))
	assert.Equal(t, "#10b981", d.Colors.Primary)
}

func TestEditCancelsPendingRun(t *testing.T) {
	w, subs := recordingWizard()
	fillBasics(w.Data())
	for !w.GoNext() {
	}
	first := (*subs)[0]

	w.Edit()
	assert.ErrorIs(t, first.ctx.Err(), context.Canceled)
	assert.Equal(t, StateInput, w.State())
	assert.Equal(t, StepImages, w.Step(), "edit keeps the step")

	w.Data().BusinessName = "Second"
	require.True(t, w.GoNext())
	second := (*subs)[1]
	require.NoError(t, second.ctx.Err())

	assert.False(t, w.Complete(first.run, &types.GeneratedPage{Headline: "First"}))
	assert.False(t, w.Fail(first.run, errors.New("late")))
	assert.Equal(t, StateProcessing, w.State())

	assert.True(t, w.Complete(second.run, &types.GeneratedPage{Headline: "Second"}))
	assert.Equal(t, "Second", w.Page().Headline)
	assert.Error(t, second.ctx.Err(), "a finished run releases its context")
}

func TestRestartAndCancelAbandonRun(t *testing.T) {
	w, subs := recordingWizard()
	fillBasics(w.Data())
	for !w.GoNext() {
	}
	w.Restart()
	assert.ErrorIs(t, (*subs)[0].ctx.Err(), context.Canceled)
	assert.False(t, w.Complete((*subs)[0].run, &types.GeneratedPage{}))
	assert.Equal(t, StateInput, w.State())

	fillBasics(w.Data())
	for !w.GoNext() {
	}
	w.Cancel()
	assert.ErrorIs(t, (*subs)[1].ctx.Err(), context.Canceled)
	assert.Equal(t, StateInput, w.State())
	assert.False(t, w.Complete((*subs)[1].run, &types.GeneratedPage{}))
}

func TestRegistry(t *testing.T) {
	var gotID string
	var gotCtx context.Context
	r := NewRegistry(func(ctx context.Context, id string, _ uint64, _ types.BusinessData) {
		gotID = id
		gotCtx = ctx
	})

	id, w := r.Create()
	fetched, ok := r.Get(id)
	require.True(t, ok)
	assert.Same(t, w, fetched)

	fillBasics(w.Data())
	for !w.GoNext() {
	}
	assert.Equal(t, id, gotID)
	require.NotNil(t, gotCtx)

	assert.True(t, r.Delete(id))
	assert.ErrorIs(t, gotCtx.Err(), context.Canceled, "delete cancels the pending generation")
	assert.False(t, r.Delete(id))
	_, ok = r.Get(id)
	assert.False(t, ok)
	assert.Equal(t, 0, r.Len())
}

func TestSnapshot(t *testing.T) {
	w := New(nil)
	fillBasics(w.Data())
	w.GoNext()

	s := w.Snapshot()
	assert.Equal(t, StepPricing, s.Step)
	assert.Equal(t, "Pricing & Availability", s.StepLabel)
	assert.Len(t, s.Steps, 4)
	assert.True(t, s.CanAdvance)
	assert.False(t, s.IsLastStep)
	assert.Equal(t, "Acme", s.Data.CompanyName)
	assert.Nil(t, s.Page)
	assert.Empty(t, s.Error)
}
