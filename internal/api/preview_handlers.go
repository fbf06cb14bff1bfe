package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"paypage_ai_server/internal/preview"
	"paypage_ai_server/internal/types"
)

type PreviewResponse struct {
	Page         types.GeneratedPage `json:"page"`
	Features     []preview.Item      `json:"features"`
	TrustSignals []preview.Item      `json:"trustSignals"`
	FAQ          []preview.FAQEntry  `json:"faq"`
	Editing      *preview.Target     `json:"editing,omitempty"`
	View         preview.ViewState   `json:"view"`
}

type FieldEditRequest struct {
	preview.Target
	Value string `json:"value"`
}

type CommitRequest struct {
	Value string `json:"value"`
}

type AppendItemRequest struct {
	Field    preview.Field `json:"field" binding:"required"`
	Text     string        `json:"text"`
	Question string        `json:"question"`
	Answer   string        `json:"answer"`
}

// ColorsRequest sets one channel, applies a preset or resets, in that order of precedence.
type ColorsRequest struct {
	Channel preview.Channel `json:"channel"`
	Value   string          `json:"value"`
	Preset  string          `json:"preset"`
	Reset   bool            `json:"reset"`
}

type ViewRequest struct {
	Device           preview.Device `json:"device"`
	ToggleFullscreen bool           `json:"toggleFullscreen"`
	ToggleMenu       bool           `json:"toggleMenu"`
	FullscreenMenu   bool           `json:"fullscreenMenu"`
	ToggleFAQ        *int           `json:"toggleFaq"`
}

type RenderRequest struct {
	Page    types.GeneratedPage `json:"page"`
	Overlay preview.Overlay     `json:"overlay"`
	Colors  *types.PageColors   `json:"colors"`
	Preset  string              `json:"preset"`
}

func previewResponse(s *preview.Session) PreviewResponse {
	resp := PreviewResponse{
		Page:         s.Displayed(),
		Features:     s.Editor.Items(preview.FieldFeatures),
		TrustSignals: s.Editor.Items(preview.FieldTrustSignals),
		FAQ:          s.Editor.FAQ(),
		View:         s.View.State(),
	}
	if t, ok := s.Editor.Editing(); ok {
		resp.Editing = &t
	}
	return resp
}

func editStatus(err error) int {
	switch {
	case errors.Is(err, preview.ErrUnknownItem):
		return http.StatusNotFound
	default:
		return http.StatusBadRequest
	}
}

// loadPreview resolves the preview session of wizard :id or writes a 409.
// Only the session of the run the wizard currently shows is returned.
func (h *APIHandler) loadPreview(c *gin.Context) (*preview.Session, bool) {
	id, w, ok := h.loadWizard(c)
	if !ok {
		return nil, false
	}
	run, ready := w.PreviewRun()
	s, ok := h.previewFor(id, run)
	if !ready || !ok {
		c.JSON(http.StatusConflict, gin.H{"error": "The page has not been generated yet"})
		return nil, false
	}
	return s, true
}

func (h *APIHandler) GetPreview(c *gin.Context) {
	if s, ok := h.loadPreview(c); ok {
		c.JSON(http.StatusOK, previewResponse(s))
	}
}

func (h *APIHandler) StartEdit(c *gin.Context) {
	s, ok := h.loadPreview(c)
	if !ok {
		return
	}
	var target preview.Target
	if err := c.ShouldBindJSON(&target); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if err := s.Editor.StartEdit(target); err != nil {
		c.JSON(editStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, previewResponse(s))
}

func (h *APIHandler) StopEdit(c *gin.Context) {
	if s, ok := h.loadPreview(c); ok {
		s.Editor.StopEdit()
		c.JSON(http.StatusOK, previewResponse(s))
	}
}

func (h *APIHandler) CommitEdit(c *gin.Context) {
	s, ok := h.loadPreview(c)
	if !ok {
		return
	}
	var req CommitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if err := s.Editor.Commit(req.Value); err != nil {
		c.JSON(editStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, previewResponse(s))
}

func (h *APIHandler) SetField(c *gin.Context) {
	s, ok := h.loadPreview(c)
	if !ok {
		return
	}
	var req FieldEditRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if err := s.Editor.Set(req.Target, req.Value); err != nil {
		c.JSON(editStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, previewResponse(s))
}

func (h *APIHandler) AppendItem(c *gin.Context) {
	s, ok := h.loadPreview(c)
	if !ok {
		return
	}
	var req AppendItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if req.Field == preview.FieldFAQ {
		s.Editor.AppendFAQ(req.Question, req.Answer)
	} else if _, err := s.Editor.Append(req.Field, req.Text); err != nil {
		c.JSON(editStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, previewResponse(s))
}

func (h *APIHandler) RemoveItem(c *gin.Context) {
	s, ok := h.loadPreview(c)
	if !ok {
		return
	}
	itemID, err := strconv.Atoi(c.Param("itemId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Item id must be a number"})
		return
	}
	if err := s.Editor.Remove(preview.Field(c.Param("field")), itemID); err != nil {
		c.JSON(editStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, previewResponse(s))
}

func applyColors(cust *preview.Customizer, req ColorsRequest) error {
	switch {
	case req.Reset:
		cust.Reset()
		return nil
	case req.Preset != "":
		return cust.ApplyPreset(req.Preset)
	default:
		return cust.SetColor(req.Channel, req.Value)
	}
}

func (h *APIHandler) UpdateColors(c *gin.Context) {
	s, ok := h.loadPreview(c)
	if !ok {
		return
	}
	var req ColorsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if err := applyColors(s.Customizer, req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, previewResponse(s))
}

func (h *APIHandler) UpdateView(c *gin.Context) {
	s, ok := h.loadPreview(c)
	if !ok {
		return
	}
	var req ViewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if req.Device != "" {
		s.View.SetDevice(req.Device)
	}
	if req.ToggleFullscreen {
		s.View.ToggleFullscreen()
	}
	if req.ToggleMenu {
		s.View.ToggleMenu(req.FullscreenMenu)
	}
	if req.ToggleFAQ != nil {
		s.View.ToggleFAQ(*req.ToggleFAQ)
	}
	c.JSON(http.StatusOK, previewResponse(s))
}

// SaveWizardPage persists the displayed page together with the submitted data.
func (h *APIHandler) SaveWizardPage(c *gin.Context) {
	_, w, ok := h.loadWizard(c)
	if !ok {
		return
	}
	s, ok := h.loadPreview(c)
	if !ok {
		return
	}
	submitted := w.Submitted()
	if submitted == nil {
		c.JSON(http.StatusConflict, gin.H{"error": "The page has not been generated yet"})
		return
	}

	saved, err := h.pages.Save(c.Request.Context(), currentUser(c), *submitted, s.Displayed())
	if err != nil {
		pageError(c, err)
		return
	}
	c.JSON(http.StatusCreated, saved)
}

// RenderPreview is the stateless merge of a page, an overlay and colors.
func (h *APIHandler) RenderPreview(c *gin.Context) {
	var req RenderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	colors := req.Colors
	if req.Preset != "" {
		cust := preview.NewCustomizer(req.Page.Colors)
		if err := cust.ApplyPreset(req.Preset); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		applied := cust.Colors()
		colors = &applied
	}
	c.JSON(http.StatusOK, preview.Displayed(req.Page, req.Overlay, colors))
}
