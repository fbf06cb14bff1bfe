package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes sets up the API routes.
func RegisterRoutes(router *gin.Engine, h *APIHandler) {
	router.Use(CORS())

	// Server function, same path the hosted edge function used.
	router.POST("/functions/v1/generate-page-content", h.GeneratePageContent)

	generateGroup := router.Group("/generate")
	{
		generateGroup.POST("/simulated", h.GenerateSimulated)
		generateGroup.GET("/stream", h.StreamGeneration) // websocket
	}

	router.GET("/catalog", h.Catalog)

	wizardGroup := router.Group("/wizard")
	{
		wizardGroup.POST("", h.CreateWizard)
		wizardGroup.GET("/:id", h.GetWizard)
		wizardGroup.DELETE("/:id", h.DeleteWizard)
		wizardGroup.PUT("/:id/data", h.UpdateWizardData)
		wizardGroup.POST("/:id/example", h.FillWizardExample)

		wizardGroup.POST("/:id/images", h.UploadImage)
		wizardGroup.PATCH("/:id/images/:index", h.SetImageType)
		wizardGroup.DELETE("/:id/images/:index", h.RemoveImage)

		wizardGroup.POST("/:id/next", h.NextStep)
		wizardGroup.POST("/:id/previous", h.PreviousStep)
		wizardGroup.POST("/:id/edit", h.EditWizard)
		wizardGroup.POST("/:id/regenerate", h.RegenerateWizard)
		wizardGroup.POST("/:id/restart", h.RestartWizard)

		wizardGroup.GET("/:id/preview", h.GetPreview)
		wizardGroup.POST("/:id/preview/edit", h.StartEdit)
		wizardGroup.DELETE("/:id/preview/edit", h.StopEdit)
		wizardGroup.POST("/:id/preview/commit", h.CommitEdit)
		wizardGroup.PUT("/:id/preview/fields", h.SetField)
		wizardGroup.POST("/:id/preview/items", h.AppendItem)
		wizardGroup.DELETE("/:id/preview/items/:field/:itemId", h.RemoveItem)
		wizardGroup.PUT("/:id/preview/colors", h.UpdateColors)
		wizardGroup.POST("/:id/preview/view", h.UpdateView)
		wizardGroup.POST("/:id/save", RequireUser(), h.SaveWizardPage)
	}

	router.POST("/preview/render", h.RenderPreview)
	router.POST("/payments/mock", h.MockPayment)

	pagesGroup := router.Group("/pages", RequireUser())
	{
		pagesGroup.GET("", h.ListPages)
		pagesGroup.POST("", h.SavePage)
		pagesGroup.DELETE("/:id", h.DeletePage)
	}

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
