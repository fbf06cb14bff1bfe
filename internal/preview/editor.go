package preview

import (
	"errors"
	"fmt"
	"sync"

	"paypage_ai_server/internal/types"
)

// Field addresses one editable part of the page.
type Field string

const (
	FieldHeadline     Field = "headline"
	FieldDescription  Field = "description"
	FieldCallToAction Field = "callToAction"
	FieldFeatures     Field = "features"
	FieldTrustSignals Field = "trustSignals"
	FieldFAQ          Field = "faq"
)

// FAQ entries are edited per part.
const (
	PartQuestion = "question"
	PartAnswer   = "answer"
)

var (
	ErrUnknownField = errors.New("unknown field")
	ErrUnknownItem  = errors.New("unknown item")
)

// Item is a list entry with an id that stays put when siblings are removed.
type Item struct {
	ID   int    `json:"id"`
	Text string `json:"text"`
}

type FAQEntry struct {
	ID       int    `json:"id"`
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Target is what is currently in edit mode. ItemID and Part are only set for list fields.
type Target struct {
	Field  Field  `json:"field"`
	ItemID int    `json:"itemId,omitempty"`
	Part   string `json:"part,omitempty"`
}

// Editor tracks inline edits over a generated page. At most one target is
// in edit mode at a time.
type Editor struct {
	mu sync.Mutex

	page    types.GeneratedPage
	texts   map[Field]string
	lists   map[Field][]Item
	faq     []FAQEntry
	touched map[Field]bool
	editing *Target
	nextID  int
}

func NewEditor(page types.GeneratedPage) *Editor {
	e := &Editor{
		page: page,
		texts: map[Field]string{
			FieldHeadline:     page.Headline,
			FieldDescription:  page.Description,
			FieldCallToAction: page.CallToAction,
		},
		lists:   make(map[Field][]Item),
		touched: make(map[Field]bool),
	}
	e.lists[FieldFeatures] = e.items(page.Features)
	e.lists[FieldTrustSignals] = e.items(page.TrustSignals)
	for _, f := range page.FAQ {
		e.faq = append(e.faq, FAQEntry{ID: e.newID(), Question: f.Question, Answer: f.Answer})
	}
	return e
}

func (e *Editor) newID() int {
	e.nextID++
	return e.nextID
}

func (e *Editor) items(texts []string) []Item {
	out := make([]Item, 0, len(texts))
	for _, t := range texts {
		out = append(out, Item{ID: e.newID(), Text: t})
	}
	return out
}

// StartEdit puts target in edit mode, leaving whatever was being edited before.
func (e *Editor) StartEdit(target Target) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if err := e.check(target); err != nil {
		return err
	}
	e.editing = &target
	return nil
}

// Editing returns the target in edit mode, if any.
func (e *Editor) Editing() (Target, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.editing == nil {
		return Target{}, false
	}
	return *e.editing, true
}

func (e *Editor) StopEdit() {
	e.mu.Lock()
	e.editing = nil
	e.mu.Unlock()
}

// Commit writes value into the target in edit mode and leaves edit mode.
func (e *Editor) Commit(value string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.editing == nil {
		return fmt.Errorf("%w: nothing is being edited", ErrUnknownField)
	}
	t := *e.editing
	if err := e.write(t, value); err != nil {
		return err
	}
	e.editing = nil
	return nil
}

// Set writes value into target without going through edit mode.
func (e *Editor) Set(target Target, value string) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.write(target, value)
}

func (e *Editor) check(t Target) error {
	switch t.Field {
	case FieldHeadline, FieldDescription, FieldCallToAction:
		return nil
	case FieldFeatures, FieldTrustSignals:
		if indexOf(e.lists[t.Field], t.ItemID) < 0 {
			return fmt.Errorf("%w: %s #%d", ErrUnknownItem, t.Field, t.ItemID)
		}
		return nil
	case FieldFAQ:
		if faqIndex(e.faq, t.ItemID) < 0 {
			return fmt.Errorf("%w: faq #%d", ErrUnknownItem, t.ItemID)
		}
		if t.Part != PartQuestion && t.Part != PartAnswer {
			return fmt.Errorf("%w: faq part %q", ErrUnknownField, t.Part)
		}
		return nil
	default:
		return fmt.Errorf("%w: %q", ErrUnknownField, t.Field)
	}
}

func (e *Editor) write(t Target, value string) error {
	if err := e.check(t); err != nil {
		return err
	}
	switch t.Field {
	case FieldHeadline, FieldDescription, FieldCallToAction:
		e.texts[t.Field] = value
	case FieldFeatures, FieldTrustSignals:
		e.lists[t.Field][indexOf(e.lists[t.Field], t.ItemID)].Text = value
	case FieldFAQ:
		i := faqIndex(e.faq, t.ItemID)
		if t.Part == PartQuestion {
			e.faq[i].Question = value
		} else {
			e.faq[i].Answer = value
		}
	}
	e.touched[t.Field] = true
	return nil
}

// Append adds an item to features or trustSignals and returns its id.
func (e *Editor) Append(field Field, text string) (int, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if field != FieldFeatures && field != FieldTrustSignals {
		return 0, fmt.Errorf("%w: %q is not a list", ErrUnknownField, field)
	}
	id := e.newID()
	e.lists[field] = append(e.lists[field], Item{ID: id, Text: text})
	e.touched[field] = true
	return id, nil
}

func (e *Editor) AppendFAQ(question, answer string) int {
	e.mu.Lock()
	defer e.mu.Unlock()
	id := e.newID()
	e.faq = append(e.faq, FAQEntry{ID: id, Question: question, Answer: answer})
	e.touched[FieldFAQ] = true
	return id
}

// Remove deletes the item with id from a list field. Other ids are unaffected.
func (e *Editor) Remove(field Field, id int) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	switch field {
	case FieldFeatures, FieldTrustSignals:
		i := indexOf(e.lists[field], id)
		if i < 0 {
			return fmt.Errorf("%w: %s #%d", ErrUnknownItem, field, id)
		}
		e.lists[field] = append(e.lists[field][:i], e.lists[field][i+1:]...)
	case FieldFAQ:
		i := faqIndex(e.faq, id)
		if i < 0 {
			return fmt.Errorf("%w: faq #%d", ErrUnknownItem, id)
		}
		e.faq = append(e.faq[:i], e.faq[i+1:]...)
	default:
		return fmt.Errorf("%w: %q is not a list", ErrUnknownField, field)
	}
	if e.editing != nil && e.editing.Field == field && e.editing.ItemID == id {
		e.editing = nil
	}
	e.touched[field] = true
	return nil
}

func (e *Editor) Items(field Field) []Item {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]Item(nil), e.lists[field]...)
}

func (e *Editor) FAQ() []FAQEntry {
	e.mu.Lock()
	defer e.mu.Unlock()
	return append([]FAQEntry(nil), e.faq...)
}

// Overlay emits only the fields that were edited.
func (e *Editor) Overlay() Overlay {
	e.mu.Lock()
	defer e.mu.Unlock()

	var o Overlay
	textOf := func(f Field) *string {
		if !e.touched[f] {
			return nil
		}
		v := e.texts[f]
		return &v
	}
	listOf := func(f Field) []string {
		if !e.touched[f] {
			return nil
		}
		out := make([]string, 0, len(e.lists[f]))
		for _, it := range e.lists[f] {
			out = append(out, it.Text)
		}
		return out
	}

	o.Headline = textOf(FieldHeadline)
	o.Description = textOf(FieldDescription)
	o.CallToAction = textOf(FieldCallToAction)
	o.Features = listOf(FieldFeatures)
	o.TrustSignals = listOf(FieldTrustSignals)
	if e.touched[FieldFAQ] {
		o.FAQ = make([]types.FAQItem, 0, len(e.faq))
		for _, f := range e.faq {
			o.FAQ = append(o.FAQ, types.FAQItem{Question: f.Question, Answer: f.Answer})
		}
	}
	return o
}

// Displayed merges the edits over the page the editor was built from.
func (e *Editor) Displayed(colors *types.PageColors) types.GeneratedPage {
	return Displayed(e.page, e.Overlay(), colors)
}

func indexOf(items []Item, id int) int {
	for i, it := range items {
		if it.ID == id {
			return i
		}
	}
	return -1
}

func faqIndex(entries []FAQEntry, id int) int {
	for i, f := range entries {
		if f.ID == id {
			return i
		}
	}
	return -1
}
