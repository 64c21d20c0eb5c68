package handlers

import (
	"log"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"dental-tourism-server/internal/models"
	"dental-tourism-server/internal/pricing"
	"dental-tourism-server/internal/utils"
)

// PricingHandler computes savings quotes over the treatment table. The client
// recomputes the same math locally; this endpoint keeps the canonical numbers
// next to the data.
type PricingHandler struct {
	Store *models.Store
}

// NewPricingHandler creates a new PricingHandler.
func NewPricingHandler(store *models.Store) *PricingHandler {
	return &PricingHandler{Store: store}
}

// QuoteRequest represents the pricing quote payload.
type QuoteRequest struct {
	TreatmentID string `json:"treatmentId" validate:"required"`
	Quantity    int    `json:"quantity" validate:"required,gte=1"`
}

// CreateQuote handles POST /api/pricing/quote.
func (h *PricingHandler) CreateQuote(c *gin.Context) {
	var req QuoteRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	treatment, err := h.Store.GetTreatmentByID(req.TreatmentID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Treatment not found")
			return
		}
		log.Printf("Failed to fetch treatment %s: %v", req.TreatmentID, err)
		utils.InternalServerError(c, "Failed to fetch treatment")
		return
	}

	utils.Success(c, "Quote calculated", pricing.Calculate(treatment, req.Quantity))
}
