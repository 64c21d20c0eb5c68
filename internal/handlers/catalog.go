package handlers

import (
	"log"

	"github.com/gin-gonic/gin"

	"dental-tourism-server/internal/models"
	"dental-tourism-server/internal/utils"
)

// CatalogHandler serves the read-only reference data: testimonials, clinics
// and treatments.
type CatalogHandler struct {
	Store *models.Store
}

// NewCatalogHandler creates a new CatalogHandler.
func NewCatalogHandler(store *models.Store) *CatalogHandler {
	return &CatalogHandler{Store: store}
}

// GetTestimonials returns visible testimonials, newest first.
func (h *CatalogHandler) GetTestimonials(c *gin.Context) {
	testimonials, err := h.Store.GetTestimonials()
	if err != nil {
		log.Printf("Failed to fetch testimonials: %v", err)
		utils.InternalServerError(c, "Failed to fetch testimonials")
		return
	}
	utils.Success(c, "Testimonials fetched successfully", testimonials)
}

// GetClinics returns active partner clinics.
func (h *CatalogHandler) GetClinics(c *gin.Context) {
	clinics, err := h.Store.GetClinics()
	if err != nil {
		log.Printf("Failed to fetch clinics: %v", err)
		utils.InternalServerError(c, "Failed to fetch clinics")
		return
	}
	utils.Success(c, "Clinics fetched successfully", clinics)
}

// GetTreatments returns active treatments ordered by category then name.
func (h *CatalogHandler) GetTreatments(c *gin.Context) {
	treatments, err := h.Store.GetTreatments()
	if err != nil {
		log.Printf("Failed to fetch treatments: %v", err)
		utils.InternalServerError(c, "Failed to fetch treatments")
		return
	}
	utils.Success(c, "Treatments fetched successfully", treatments)
}
