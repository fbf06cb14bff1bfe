package preview

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"paypage_ai_server/internal/types"
)

func generated() types.GeneratedPage {
	return types.GeneratedPage{
		Title:        "Tours - Adventures",
		Headline:     "Original headline",
		Description:  "Original description",
		Features:     []string{"f1", "f2", "f3", "f4"},
		CallToAction: "Book",
		TrustSignals: []string{"t1", "t2", "t3", "t4"},
		FAQ:          []types.FAQItem{{Question: "q1", Answer: "a1"}, {Question: "q2", Answer: "a2"}},
		Template:     "modern",
		Colors:       types.PageColors{Primary: "#6366f1", Secondary: "#8b5cf6", Accent: "#9584ff"},
	}
}

func TestDisplayedOverlayPrecedence(t *testing.T) {
	page := generated()
	headline := "Edited headline"

	shown := Displayed(page, Overlay{Headline: &headline}, nil)
	assert.Equal(t, "Edited headline", shown.Headline)
	assert.Equal(t, page.Description, shown.Description)
	assert.Equal(t, page.Features, shown.Features)
	assert.Equal(t, page.CallToAction, shown.CallToAction)
	assert.Equal(t, page.TrustSignals, shown.TrustSignals)
	assert.Equal(t, page.FAQ, shown.FAQ)
	assert.Equal(t, page.Colors, shown.Colors)

	emptied := Displayed(page, Overlay{Features: []string{}}, &ResetColors)
	assert.Empty(t, emptied.Features)
	assert.NotNil(t, emptied.Features)
	assert.Equal(t, ResetColors, emptied.Colors)
	assert.Len(t, page.Features, 4, "generation is never mutated")
}

func TestOverlayJSONKeepsEmptyLists(t *testing.T) {
	var o Overlay
	require.NoError(t, json.Unmarshal([]byte(`{"trustSignals": []}`), &o))
	assert.Nil(t, o.Features)
	assert.NotNil(t, o.TrustSignals)
	assert.Nil(t, o.Headline)
}

func TestEditorOnlyEmitsTouchedFields(t *testing.T) {
	e := NewEditor(generated())
	require.NoError(t, e.Set(Target{Field: FieldHeadline}, "New headline"))

	o := e.Overlay()
	require.NotNil(t, o.Headline)
	assert.Equal(t, "New headline", *o.Headline)
	assert.Nil(t, o.Description)
	assert.Nil(t, o.Features)
	assert.Nil(t, o.FAQ)

	shown := e.Displayed(nil)
	assert.Equal(t, "New headline", shown.Headline)
	assert.Equal(t, "Original description", shown.Description)
}

func TestEditorSingleFocus(t *testing.T) {
	e := NewEditor(generated())
	features := e.Items(FieldFeatures)

	require.NoError(t, e.StartEdit(Target{Field: FieldHeadline}))
	require.NoError(t, e.StartEdit(Target{Field: FieldFeatures, ItemID: features[1].ID}))

	current, ok := e.Editing()
	require.True(t, ok)
	assert.Equal(t, FieldFeatures, current.Field)

	require.NoError(t, e.Commit("f2 edited"))
	_, ok = e.Editing()
	assert.False(t, ok)
	assert.Equal(t, "f2 edited", e.Items(FieldFeatures)[1].Text)
	assert.Nil(t, e.Overlay().Headline, "headline was focused but never changed")

	assert.ErrorIs(t, e.Commit("x"), ErrUnknownField)
	assert.ErrorIs(t, e.StartEdit(Target{Field: "footer"}), ErrUnknownField)
	assert.ErrorIs(t, e.StartEdit(Target{Field: FieldFAQ, ItemID: e.FAQ()[0].ID, Part: "body"}), ErrUnknownField)
}

func TestEditorStableIDsAcrossRemoval(t *testing.T) {
	e := NewEditor(generated())
	items := e.Items(FieldTrustSignals)
	third := items[2]

	require.NoError(t, e.StartEdit(Target{Field: FieldTrustSignals, ItemID: items[0].ID}))
	require.NoError(t, e.Remove(FieldTrustSignals, items[0].ID))
	_, editing := e.Editing()
	assert.False(t, editing, "removing the focused item leaves edit mode")

	require.NoError(t, e.Set(Target{Field: FieldTrustSignals, ItemID: third.ID}, "t3 edited"))
	assert.Equal(t, []string{"t2", "t3 edited", "t4"}, e.Overlay().TrustSignals)

	id, err := e.Append(FieldTrustSignals, "t5")
	require.NoError(t, err)
	assert.NotEqual(t, third.ID, id)
	assert.ErrorIs(t, e.Remove(FieldTrustSignals, items[0].ID), ErrUnknownItem)

	_, err = e.Append(FieldHeadline, "nope")
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestEditorFAQ(t *testing.T) {
	e := NewEditor(generated())
	entries := e.FAQ()

	require.NoError(t, e.Set(Target{Field: FieldFAQ, ItemID: entries[1].ID, Part: PartAnswer}, "a2 edited"))
	id := e.AppendFAQ("q3", "a3")
	require.NoError(t, e.Remove(FieldFAQ, entries[0].ID))

	assert.Equal(t, []types.FAQItem{
		{Question: "q2", Answer: "a2 edited"},
		{Question: "q3", Answer: "a3"},
	}, e.Overlay().FAQ)
	assert.Equal(t, id, e.FAQ()[1].ID)
}

func TestCustomizer(t *testing.T) {
	c := NewCustomizer(generated().Colors)

	require.NoError(t, c.SetColor(ChannelAccent, "#123456"))
	assert.Equal(t, "#123456", c.Colors().Accent)
	assert.Equal(t, "#6366f1", c.Colors().Primary)

	assert.ErrorIs(t, c.SetColor(ChannelPrimary, "blue"), ErrInvalidColor)
	assert.ErrorIs(t, c.SetColor("border", "#000000"), ErrUnknownChannel)

	require.NoError(t, c.ApplyPreset("pink"))
	assert.Equal(t, types.PageColors{Primary: "#EC4899", Secondary: "#DB2777", Accent: "#F472B6"}, c.Colors())
	assert.ErrorIs(t, c.ApplyPreset("Teal"), ErrUnknownPreset)

	c.Reset()
	assert.Equal(t, types.PageColors{Primary: "#3B82F6", Secondary: "#1E40AF", Accent: "#60A5FA"}, c.Colors())
}

func TestViewToggles(t *testing.T) {
	v := NewView()
	assert.Equal(t, DeviceDesktop, v.State().Device)
	assert.Equal(t, -1, v.State().ExpandedFAQ)

	v.SetDevice(DeviceMobile)
	v.ToggleFullscreen()
	v.ToggleMenu(true)
	s := v.State()
	assert.Equal(t, "375px", s.MaxWidth)
	assert.True(t, s.Fullscreen)
	assert.True(t, s.FullscreenMenuOpen)
	assert.False(t, s.MenuOpen)

	v.ToggleFAQ(2)
	assert.Equal(t, 2, v.State().ExpandedFAQ)
	v.ToggleFAQ(1)
	assert.Equal(t, 1, v.State().ExpandedFAQ)
	v.ToggleFAQ(1)
	assert.Equal(t, -1, v.State().ExpandedFAQ)
}

func TestInputMasks(t *testing.T) {
	tests := []struct {
		name string
		fn   func(string) string
		in   string
		want string
	}{
		{"card grouped", FormatCardNumber, "4242424242424242", "4242 4242 4242 4242"},
		{"card strips junk", FormatCardNumber, "4242-4242 42a", "4242 4242 42"},
		{"card truncated", FormatCardNumber, "12345678901234567890", "1234 5678 9012 3456"},
		{"card short", FormatCardNumber, "123", "123"},
		{"expiry one digit", FormatExpiry, "1", "1"},
		{"expiry two digits", FormatExpiry, "12", "12/"},
		{"expiry full", FormatExpiry, "1/2 7 9", "12/79"},
		{"expiry truncated", FormatExpiry, "123456", "12/34"},
		{"cvv", FormatCVV, "12a34 5", "1234"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.fn(tt.in))
		})
	}
}

func validPayment() PaymentDetails {
	return PaymentDetails{
		CardNumber:     "4242424242424242",
		Expiry:         "1230",
		CVV:            "123",
		CardholderName: "Jane Doe",
		Email:          "jane@example.com",
	}
}

func TestMockProcessor(t *testing.T) {
	receipt, err := MockProcessor{Delay: time.Millisecond}.Process(context.Background(), validPayment())
	require.NoError(t, err)
	assert.Equal(t, "succeeded", receipt.Status)
	assert.Equal(t, "4242", receipt.Last4)
	assert.NotEmpty(t, receipt.ID)

	missing := validPayment()
	missing.Email = " "
	_, err = MockProcessor{}.Process(context.Background(), missing)
	assert.ErrorIs(t, err, ErrIncompletePayment)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = MockProcessor{Delay: time.Hour}.Process(ctx, validPayment())
	assert.ErrorIs(t, err, context.Canceled)
}
