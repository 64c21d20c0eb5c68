package handlers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"

	"dental-tourism-server/internal/models"
)

func providerRouter(store *models.Store) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewProviderHandler(store, testNotifier())
	router.POST("/api/provider-application", h.CreateProviderApplication)
	return router
}

func validProviderPayload() map[string]interface{} {
	return map[string]interface{}{
		"clinicName":      "Sonrisa Dental",
		"contactName":     "Dr. Ana Ruiz",
		"email":           "ana@sonrisa.example.com",
		"phone":           "+52 664 555 0100",
		"address":         "Av. Revolucion 123",
		"city":            "Tijuana",
		"state":           "Baja California",
		"specialties":     []string{"implants", "cosmetic"},
		"yearsInBusiness": 12,
		"dentistCount":    4,
		"languages":       []string{"es", "en"},
	}
}

func TestCreateProviderApplication(t *testing.T) {
	store := setupTestStore(t)
	router := providerRouter(store)

	w := postJSON(router, "/api/provider-application", validProviderPayload())
	if w.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
	}

	var resp envelope
	json.Unmarshal(w.Body.Bytes(), &resp)
	var created models.ProviderApplication
	json.Unmarshal(resp.Data, &created)

	if created.ClinicName != "Sonrisa Dental" || created.YearsInBusiness != 12 {
		t.Errorf("submitted fields mutated: %+v", created)
	}
	if len(created.Specialties) != 2 {
		t.Errorf("array field did not round-trip: %+v", created.Specialties)
	}
	if created.Status != models.ApplicationPending {
		t.Errorf("expected pending status, got %s", created.Status)
	}
}

func TestCreateProviderApplicationUnknownSpecialty(t *testing.T) {
	store := setupTestStore(t)
	router := providerRouter(store)

	payload := validProviderPayload()
	payload["specialties"] = []string{"implants", "astrology"}
	w := postJSON(router, "/api/provider-application", payload)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for unknown specialty, got %d: %s", w.Code, w.Body.String())
	}
}

func TestCreateProviderApplicationZeroYears(t *testing.T) {
	store := setupTestStore(t)
	router := providerRouter(store)

	payload := validProviderPayload()
	payload["yearsInBusiness"] = 0
	w := postJSON(router, "/api/provider-application", payload)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for zero years in business, got %d: %s", w.Code, w.Body.String())
	}

	var count int64
	store.DB.Model(&models.ProviderApplication{}).Count(&count)
	if count != 0 {
		t.Errorf("expected no rows, found %d", count)
	}
}
