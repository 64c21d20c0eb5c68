package handlers

import (
	"log"

	"github.com/gin-gonic/gin"

	"dental-tourism-server/internal/mailer"
	"dental-tourism-server/internal/models"
	"dental-tourism-server/internal/utils"
)

// ProviderHandler handles clinic partnership applications.
type ProviderHandler struct {
	Store    *models.Store
	Notifier *mailer.Notifier
}

// NewProviderHandler creates a new ProviderHandler.
func NewProviderHandler(store *models.Store, notifier *mailer.Notifier) *ProviderHandler {
	return &ProviderHandler{Store: store, Notifier: notifier}
}

// CreateProviderApplicationRequest represents the provider application payload.
type CreateProviderApplicationRequest struct {
	ClinicName      string   `json:"clinicName" validate:"required,min=2"`
	ContactName     string   `json:"contactName" validate:"required,min=2"`
	Email           string   `json:"email" validate:"required,email"`
	Phone           string   `json:"phone" validate:"required,min=7"`
	Address         string   `json:"address" validate:"required"`
	City            string   `json:"city" validate:"required"`
	State           string   `json:"state" validate:"required"`
	Specialties     []string `json:"specialties" validate:"required,min=1,dive,oneof=implants crowns veneers orthodontics endodontics periodontics oral-surgery cosmetic general"`
	YearsInBusiness int      `json:"yearsInBusiness" validate:"required,gte=1"`
	DentistCount    int      `json:"dentistCount" validate:"omitempty,gte=1"`
	Certifications  []string `json:"certifications"`
	Languages       []string `json:"languages"`
	Description     string   `json:"description" validate:"omitempty,min=10"`
}

// CreateProviderApplication handles a new clinic application.
func (h *ProviderHandler) CreateProviderApplication(c *gin.Context) {
	var req CreateProviderApplicationRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	application := models.ProviderApplication{
		ClinicName:      req.ClinicName,
		ContactName:     req.ContactName,
		Email:           req.Email,
		Phone:           req.Phone,
		Address:         req.Address,
		City:            req.City,
		State:           req.State,
		Specialties:     req.Specialties,
		YearsInBusiness: req.YearsInBusiness,
		DentistCount:    req.DentistCount,
		Certifications:  req.Certifications,
		Languages:       req.Languages,
		Description:     req.Description,
		Status:          models.ApplicationPending,
	}

	if err := h.Store.CreateProviderApplication(&application); err != nil {
		log.Printf("Failed to create provider application: %v", err)
		utils.InternalServerError(c, "Failed to save provider application")
		return
	}

	// Best-effort notification
	h.Notifier.SendProviderNotification(&application)

	utils.Created(c, "Application submitted successfully", application)
}
