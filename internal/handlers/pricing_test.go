package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"dental-tourism-server/internal/models"
	"dental-tourism-server/internal/pricing"
)

func pricingRouter(store *models.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewPricingHandler(store)
	router.POST("/api/pricing/quote", h.CreateQuote)
	return router
}

func TestCreateQuote(t *testing.T) {
	store := setupTestStore(t)
	treatment := models.Treatment{Name: "Dental Implant", Category: "Implants", USPrice: 1000, MexicoPrice: 400, IsActive: true}
	store.DB.Create(&treatment)

	router := pricingRouter(store)
	w := postJSON(router, "/api/pricing/quote", map[string]interface{}{
		"treatmentId": treatment.ID,
		"quantity":    2,
	})

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp envelope
	json.Unmarshal(w.Body.Bytes(), &resp)
	var quote pricing.Quote
	json.Unmarshal(resp.Data, &quote)

	if quote.USTotal != 2000 || quote.MexicoTotal != 800 {
		t.Errorf("unexpected totals: %+v", quote)
	}
	if quote.Savings != 1200 || quote.Percentage != 60 {
		t.Errorf("unexpected savings: %+v", quote)
	}
}

func TestCreateQuoteUnknownTreatment(t *testing.T) {
	router := pricingRouter(setupTestStore(t))

	w := postJSON(router, "/api/pricing/quote", map[string]interface{}{
		"treatmentId": "does-not-exist",
		"quantity":    1,
	})

	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d: %s", w.Code, w.Body.String())
	}
}

func TestCreateQuoteInvalidQuantity(t *testing.T) {
	router := pricingRouter(setupTestStore(t))

	w := postJSON(router, "/api/pricing/quote", map[string]interface{}{
		"treatmentId": "some-id",
		"quantity":    0,
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for zero quantity, got %d", w.Code)
	}
}
