package api

import (
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"paypage_ai_server/internal/types"
	"paypage_ai_server/internal/utils"
	"paypage_ai_server/internal/wizard"
)

type WizardResponse struct {
	ID string `json:"id"`
	wizard.Snapshot
}

// WizardDataRequest updates only the fields that are present.
type WizardDataRequest struct {
	CompanyName    *string            `json:"companyName"`
	BusinessName   *string            `json:"businessName"`
	Description    *string            `json:"description"`
	Price          *string            `json:"price"`
	Currency       *string            `json:"currency"`
	Availability   *string            `json:"availability"`
	Industry       *string            `json:"industry"`
	Colors         *types.BrandColors `json:"colors"`
	BrandingPreset *string            `json:"brandingPreset"`
}

type ExampleRequest struct {
	Industry string `json:"industry" binding:"required"`
}

type ImageTypeRequest struct {
	Type types.ImageType `json:"type" binding:"required"`
}

var errValidation = errors.New("validation failed")

func (r WizardDataRequest) apply(d *types.BusinessData) error {
	if r.Currency != nil && !types.IsKnownCurrency(*r.Currency) {
		return fmt.Errorf("%w: unknown currency %q", errValidation, *r.Currency)
	}
	if r.Industry != nil && *r.Industry != "" && !types.IsKnownIndustry(*r.Industry) {
		return fmt.Errorf("%w: unknown industry %q", errValidation, *r.Industry)
	}
	if r.Colors != nil && (!utils.IsHexColor(r.Colors.Primary) || !utils.IsHexColor(r.Colors.Secondary)) {
		return fmt.Errorf("%w: colors must be #RRGGBB", errValidation)
	}

	set := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	set(&d.CompanyName, r.CompanyName)
	set(&d.BusinessName, r.BusinessName)
	set(&d.Description, r.Description)
	set(&d.Price, r.Price)
	set(&d.Currency, r.Currency)
	set(&d.Availability, r.Availability)
	set(&d.Industry, r.Industry)
	if r.Colors != nil {
		d.Colors = *r.Colors
	}
	if r.BrandingPreset != nil && !wizard.ApplyBrandingPreset(d, *r.BrandingPreset) {
		return fmt.Errorf("%w: unknown branding preset %q", errValidation, *r.BrandingPreset)
	}
	return nil
}

func (h *APIHandler) respondWizard(c *gin.Context, status int, id string, w *wizard.Wizard) {
	c.JSON(status, WizardResponse{ID: id, Snapshot: w.Snapshot()})
}

// loadWizard resolves :id or writes a 404.
func (h *APIHandler) loadWizard(c *gin.Context) (string, *wizard.Wizard, bool) {
	id := c.Param("id")
	w, ok := h.wizards.Get(id)
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "Wizard session not found"})
		return id, nil, false
	}
	return id, w, true
}

func (h *APIHandler) CreateWizard(c *gin.Context) {
	id, w := h.wizards.Create()
	log.Printf("Created wizard session %s", id)
	h.respondWizard(c, http.StatusCreated, id, w)
}

func (h *APIHandler) GetWizard(c *gin.Context) {
	if id, w, ok := h.loadWizard(c); ok {
		h.respondWizard(c, http.StatusOK, id, w)
	}
}

func (h *APIHandler) DeleteWizard(c *gin.Context) {
	id := c.Param("id")
	if !h.wizards.Delete(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Wizard session not found"})
		return
	}
	h.dropPreview(id)
	c.Status(http.StatusNoContent)
}

func (h *APIHandler) UpdateWizardData(c *gin.Context) {
	id, w, ok := h.loadWizard(c)
	if !ok {
		return
	}
	var req WizardDataRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	if err := w.Update(req.apply); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.respondWizard(c, http.StatusOK, id, w)
}

func (h *APIHandler) FillWizardExample(c *gin.Context) {
	id, w, ok := h.loadWizard(c)
	if !ok {
		return
	}
	var req ExampleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	err := w.Update(func(d *types.BusinessData) error {
		if !wizard.FillExample(d, req.Industry) {
			return fmt.Errorf("no example for industry %q", req.Industry)
		}
		return nil
	})
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		return
	}
	h.respondWizard(c, http.StatusOK, id, w)
}

func imageStatus(err error) int {
	switch {
	case errors.Is(err, wizard.ErrFileTooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, wizard.ErrInvalidFileType):
		return http.StatusUnsupportedMediaType
	case errors.Is(err, wizard.ErrMaxImagesReached):
		return http.StatusConflict
	case errors.Is(err, wizard.ErrImageNotFound):
		return http.StatusNotFound
	default:
		return http.StatusBadRequest
	}
}

// UploadImage accepts one multipart "file" field.
func (h *APIHandler) UploadImage(c *gin.Context) {
	id, w, ok := h.loadWizard(c)
	if !ok {
		return
	}
	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing file: " + err.Error()})
		return
	}
	if header.Size > wizard.MaxImageSize {
		c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": wizard.ErrFileTooLarge.Error()})
		return
	}

	f, err := header.Open()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read upload"})
		return
	}
	defer f.Close()

	blob, err := io.ReadAll(io.LimitReader(f, wizard.MaxImageSize+1))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read upload"})
		return
	}

	var img types.ImageAttachment
	err = w.Update(func(d *types.BusinessData) error {
		var addErr error
		img, addErr = wizard.AddImage(d, blob)
		return addErr
	})
	if err != nil {
		log.Printf("WARN: Rejected image %q for wizard %s: %v", header.Filename, id, err)
		c.JSON(imageStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"image": img, "wizard": WizardResponse{ID: id, Snapshot: w.Snapshot()}})
}

func imageIndex(c *gin.Context) (int, bool) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Image index must be a number"})
		return 0, false
	}
	return index, true
}

func (h *APIHandler) SetImageType(c *gin.Context) {
	id, w, ok := h.loadWizard(c)
	if !ok {
		return
	}
	index, ok := imageIndex(c)
	if !ok {
		return
	}
	var req ImageTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	err := w.Update(func(d *types.BusinessData) error {
		return wizard.SetImageType(d, index, req.Type)
	})
	if err != nil {
		c.JSON(imageStatus(err), gin.H{"error": err.Error()})
		return
	}
	h.respondWizard(c, http.StatusOK, id, w)
}

func (h *APIHandler) RemoveImage(c *gin.Context) {
	id, w, ok := h.loadWizard(c)
	if !ok {
		return
	}
	index, ok := imageIndex(c)
	if !ok {
		return
	}
	err := w.Update(func(d *types.BusinessData) error {
		return wizard.RemoveImage(d, index)
	})
	if err != nil {
		c.JSON(imageStatus(err), gin.H{"error": err.Error()})
		return
	}
	h.respondWizard(c, http.StatusOK, id, w)
}

// NextStep advances when the current step validates. On the last step it
// submits and generation starts in the background. A blocked advance is not
// an error; the response simply shows the unchanged step.
func (h *APIHandler) NextStep(c *gin.Context) {
	if id, w, ok := h.loadWizard(c); ok {
		w.GoNext()
		h.respondWizard(c, http.StatusOK, id, w)
	}
}

func (h *APIHandler) PreviousStep(c *gin.Context) {
	if id, w, ok := h.loadWizard(c); ok {
		w.GoPrevious()
		h.respondWizard(c, http.StatusOK, id, w)
	}
}

// EditWizard leaves the preview for the form, keeping the data.
func (h *APIHandler) EditWizard(c *gin.Context) {
	if id, w, ok := h.loadWizard(c); ok {
		w.Edit()
		h.dropPreview(id)
		h.respondWizard(c, http.StatusOK, id, w)
	}
}

func (h *APIHandler) RegenerateWizard(c *gin.Context) {
	id, w, ok := h.loadWizard(c)
	if !ok {
		return
	}
	if !w.Regenerate() {
		c.JSON(http.StatusConflict, gin.H{"error": "Nothing to regenerate yet"})
		return
	}
	h.respondWizard(c, http.StatusAccepted, id, w)
}

func (h *APIHandler) RestartWizard(c *gin.Context) {
	if id, w, ok := h.loadWizard(c); ok {
		w.Restart()
		h.dropPreview(id)
		h.respondWizard(c, http.StatusOK, id, w)
	}
}
