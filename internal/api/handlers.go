package api

import (
	"context"
	"errors"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"paypage_ai_server/internal/ai"
	"paypage_ai_server/internal/preview"
	"paypage_ai_server/internal/store"
	"paypage_ai_server/internal/types"
	"paypage_ai_server/internal/wizard"
)

// submissionTimeout caps a background generation started by the wizard.
const submissionTimeout = 2 * time.Minute

// APIHandler holds dependencies for API endpoints.
type APIHandler struct {
	generator  ai.ContentGenerator
	simulation *ai.Simulation
	pages      *store.Gateway
	payments   preview.MockProcessor
	wizards    *wizard.Registry

	mu       sync.Mutex
	previews map[string]previewEntry
	inflight sync.WaitGroup
}

// previewEntry is a preview session tagged with the wizard run that produced it.
type previewEntry struct {
	run     uint64
	session *preview.Session
}

// NewAPIHandler initializes a new API handler with its dependencies.
// generator serves the real-path endpoint and wizard submissions.
func NewAPIHandler(
	generator ai.ContentGenerator,
	simulation *ai.Simulation,
	pages *store.Gateway,
	payments preview.MockProcessor,
) *APIHandler {
	h := &APIHandler{
		generator:  generator,
		simulation: simulation,
		pages:      pages,
		payments:   payments,
		previews:   make(map[string]previewEntry),
	}
	h.wizards = wizard.NewRegistry(h.generateForWizard)
	return h
}

// Wait blocks until background generations have finished.
func (h *APIHandler) Wait() {
	h.inflight.Wait()
}

// --- Request/Response Structs ---

type GeneratePageRequest struct {
	BusinessData *types.BusinessData `json:"businessData" binding:"required"`
}

// --- Handler Functions ---

// GeneratePageContent is the server function: business data in, generated page out.
// Every failure is a 500 with the message in the body.
func (h *APIHandler) GeneratePageContent(c *gin.Context) {
	var req GeneratePageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	log.Printf("Received generation request for %q", req.BusinessData.BusinessName)

	page, err := h.generator.Generate(c.Request.Context(), *req.BusinessData)
	if err != nil {
		log.Printf("ERROR: Generating page content for %q: %v", req.BusinessData.BusinessName, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, page)
}

// GenerateSimulated builds a simulated page immediately, without the progress delay.
func (h *APIHandler) GenerateSimulated(c *gin.Context) {
	var req GeneratePageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.simulation.Generator.Build(*req.BusinessData))
}

func (h *APIHandler) Catalog(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"industries":      types.Industries,
		"currencies":      types.Currencies,
		"brandingPresets": wizard.BrandingPresets,
		"colorPresets":    preview.ColorPresets,
		"templates":       ai.Templates,
		"phases":          h.simulation.Phases,
		"steps":           wizard.StepLabels(),
	})
}

// generateForWizard runs when a wizard submits. ctx belongs to the run and is
// cancelled when the wizard is edited, restarted or deleted; results of an
// abandoned run are discarded.
func (h *APIHandler) generateForWizard(ctx context.Context, id string, run uint64, data types.BusinessData) {
	h.dropPreview(id)
	h.inflight.Add(1)
	go func() {
		defer h.inflight.Done()
		ctx, cancel := context.WithTimeout(ctx, submissionTimeout)
		defer cancel()

		log.Printf("Generating page for wizard %s (run %d)", id, run)
		page, err := h.generator.Generate(ctx, data)

		w, ok := h.wizards.Get(id)
		if !ok {
			log.Printf("WARN: Wizard %s was removed during generation", id)
			return
		}
		if err != nil {
			if !w.Fail(run, err) {
				log.Printf("Discarding failure of abandoned run %d for wizard %s: %v", run, id, err)
				return
			}
			log.Printf("ERROR: Generation for wizard %s failed: %v", id, err)
			return
		}

		if !h.installPreview(id, run, preview.NewSession(*page)) {
			log.Printf("WARN: Discarding page of superseded run %d for wizard %s", run, id)
			return
		}
		if !w.Complete(run, page) {
			log.Printf("WARN: Discarding page of abandoned run %d for wizard %s", run, id)
			h.dropPreviewRun(id, run)
			return
		}
		log.Printf("Wizard %s is ready for preview", id)
	}()
}

// installPreview stores the session unless a newer run already stored one.
func (h *APIHandler) installPreview(id string, run uint64, s *preview.Session) bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	if cur, ok := h.previews[id]; ok && cur.run > run {
		return false
	}
	h.previews[id] = previewEntry{run: run, session: s}
	return true
}

// previewFor returns the session of wizard id produced by run.
func (h *APIHandler) previewFor(id string, run uint64) (*preview.Session, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	e, ok := h.previews[id]
	if !ok || e.run != run {
		return nil, false
	}
	return e.session, true
}

func (h *APIHandler) dropPreview(id string) {
	h.mu.Lock()
	delete(h.previews, id)
	h.mu.Unlock()
}

// dropPreviewRun removes the session only if run produced it.
func (h *APIHandler) dropPreviewRun(id string, run uint64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if e, ok := h.previews[id]; ok && e.run == run {
		delete(h.previews, id)
	}
}

// pageError writes a Persistence Gateway failure with its user-facing message.
func pageError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, store.ErrQuotaExceeded):
		status = http.StatusForbidden
	case errors.Is(err, store.ErrPageNotFound):
		status = http.StatusNotFound
	}
	c.JSON(status, gin.H{"error": store.UserMessage(err)})
}
