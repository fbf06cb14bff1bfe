package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"paypage_ai_server/internal/preview"
	"paypage_ai_server/internal/types"
)

type SavePageRequest struct {
	BusinessData *types.BusinessData  `json:"businessData" binding:"required"`
	Page         *types.GeneratedPage `json:"page" binding:"required"`
	Overlay      preview.Overlay      `json:"overlay"`
	Colors       *types.PageColors    `json:"colors"`
}

type PaymentResponse struct {
	Success bool             `json:"success"`
	Receipt *preview.Receipt `json:"receipt"`
}

func (h *APIHandler) ListPages(c *gin.Context) {
	summary, err := h.pages.List(c.Request.Context(), currentUser(c))
	if err != nil {
		pageError(c, err)
		return
	}
	c.JSON(http.StatusOK, summary)
}

// SavePage stores the page as displayed, edits and colors included.
func (h *APIHandler) SavePage(c *gin.Context) {
	var req SavePageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	shown := preview.Displayed(*req.Page, req.Overlay, req.Colors)
	saved, err := h.pages.Save(c.Request.Context(), currentUser(c), *req.BusinessData, shown)
	if err != nil {
		pageError(c, err)
		return
	}
	c.JSON(http.StatusCreated, saved)
}

func (h *APIHandler) DeletePage(c *gin.Context) {
	if err := h.pages.Delete(c.Request.Context(), currentUser(c), c.Param("id")); err != nil {
		pageError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// MockPayment waits the configured delay and reports success. No card is charged.
func (h *APIHandler) MockPayment(c *gin.Context) {
	var details preview.PaymentDetails
	if err := c.ShouldBindJSON(&details); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	receipt, err := h.payments.Process(c.Request.Context(), details)
	if err != nil {
		if errors.Is(err, preview.ErrIncompletePayment) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		log.Printf("WARN: Mock payment aborted: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Payment could not be processed"})
		return
	}
	c.JSON(http.StatusOK, PaymentResponse{Success: true, Receipt: receipt})
}
