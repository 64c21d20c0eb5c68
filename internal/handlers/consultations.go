package handlers

import (
	"log"
	"strings"

	"github.com/gin-gonic/gin"

	"dental-tourism-server/internal/mailer"
	"dental-tourism-server/internal/models"
	"dental-tourism-server/internal/storage"
	"dental-tourism-server/internal/utils"
)

// ConsultationHandler handles consultation/booking form submissions.
type ConsultationHandler struct {
	Store         *models.Store
	Notifier      *mailer.Notifier
	Storage       storage.Storage
	MaxUploadSize int64
}

// NewConsultationHandler creates a new ConsultationHandler.
func NewConsultationHandler(store *models.Store, notifier *mailer.Notifier, st storage.Storage, maxUploadSize int64) *ConsultationHandler {
	return &ConsultationHandler{
		Store:         store,
		Notifier:      notifier,
		Storage:       st,
		MaxUploadSize: maxUploadSize,
	}
}

// CreateConsultationRequest represents the consultation form payload. The
// binding tags are the single source of truth for the field rules; the same
// shape is used for the JSON and the multipart variants of the form.
type CreateConsultationRequest struct {
	Name             string `json:"name" form:"name" validate:"omitempty,min=2"`
	FirstName        string `json:"firstName" form:"firstName"`
	LastName         string `json:"lastName" form:"lastName"`
	Email            string `json:"email" form:"email" validate:"required,email"`
	Phone            string `json:"phone" form:"phone" validate:"required,min=7"`
	PreferredContact string `json:"preferredContact" form:"preferredContact" validate:"omitempty,oneof=phone email text"`
	ServiceInterest  string `json:"serviceInterest" form:"serviceInterest" validate:"required"`
	DateOfBirth      string `json:"dateOfBirth" form:"dateOfBirth"`
	Description      string `json:"description" form:"description" validate:"omitempty,min=10"`
	PhotoURL         string `json:"photoUrl" form:"photoUrl"`
	PreferredDate    string `json:"preferredDate" form:"preferredDate"`
	PreferredTime    string `json:"preferredTime" form:"preferredTime"`
	Timezone         string `json:"timezone" form:"timezone"`
	ConsultationType string `json:"consultationType" form:"consultationType" validate:"omitempty,oneof=video phone"`
}

// CreateConsultation handles a new consultation request: receive, validate,
// persist, notify (best-effort), respond. An optional photo file is uploaded
// to object storage before the record is written.
func (h *ConsultationHandler) CreateConsultation(c *gin.Context) {
	var req CreateConsultationRequest

	isMultipart := strings.HasPrefix(c.ContentType(), "multipart/form-data")
	if isMultipart {
		if err := c.ShouldBind(&req); err != nil {
			utils.BadRequest(c, "Invalid request payload: "+err.Error())
			return
		}
	} else {
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.BadRequest(c, "Invalid request payload: "+err.Error())
			return
		}
	}

	// Legacy clients send firstName/lastName instead of a full name
	if req.Name == "" {
		req.Name = strings.TrimSpace(req.FirstName + " " + req.LastName)
	}

	fieldErrors := utils.Validate(&req)
	if req.Name == "" {
		fieldErrors = append(fieldErrors, utils.FieldError{Field: "name", Message: "name is required"})
	}
	if fieldErrors != nil {
		utils.ValidationFailed(c, fieldErrors)
		return
	}

	// The photo is validated and uploaded before anything is persisted so a
	// bad file never leaves a half-complete lead behind.
	if isMultipart {
		photoURL, ok := h.handlePhotoUpload(c)
		if !ok {
			return
		}
		if photoURL != "" {
			req.PhotoURL = photoURL
		}
	}

	consultation := models.ConsultationRequest{
		Name:             req.Name,
		Email:            req.Email,
		Phone:            req.Phone,
		PreferredContact: models.ContactMethod(req.PreferredContact),
		ServiceInterest:  req.ServiceInterest,
		DateOfBirth:      req.DateOfBirth,
		Description:      req.Description,
		PhotoURL:         req.PhotoURL,
		PreferredDate:    req.PreferredDate,
		PreferredTime:    req.PreferredTime,
		Timezone:         req.Timezone,
		ConsultationType: models.ConsultationType(req.ConsultationType),
		Status:           models.ConsultationPending,
	}
	if consultation.PreferredContact == "" {
		consultation.PreferredContact = models.ContactByEmail
	}

	if err := h.Store.CreateConsultationRequest(&consultation); err != nil {
		log.Printf("Failed to create consultation request: %v", err)
		utils.InternalServerError(c, "Failed to save consultation request")
		return
	}

	// Best-effort: notification failure never affects the response
	if h.Notifier.SendBookingNotification(&consultation) {
		if err := h.Store.MarkNotificationSent(consultation.ID); err != nil {
			log.Printf("Failed to flag notification for consultation %s: %v", consultation.ID, err)
		} else {
			consultation.NotificationsSent = true
		}
	}

	utils.Created(c, "Consultation request submitted successfully", consultation)
}

// handlePhotoUpload pulls the optional photo field out of a multipart request
// and uploads it server-side. Returns ok=false after writing the error
// response when the file is rejected.
func (h *ConsultationHandler) handlePhotoUpload(c *gin.Context) (string, bool) {
	file, header, err := c.Request.FormFile("photo")
	if err != nil {
		// No photo attached is fine
		return "", true
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		utils.BadRequest(c, "Photo must be an image file")
		return "", false
	}
	if header.Size > h.MaxUploadSize {
		utils.BadRequest(c, "Photo exceeds the maximum upload size")
		return "", false
	}
	if h.Storage == nil {
		utils.InternalServerError(c, "Photo uploads are not configured")
		return "", false
	}

	photoURL, err := h.Storage.Upload(c.Request.Context(), header.Filename, contentType, "consultations", file)
	if err != nil {
		log.Printf("Photo upload failed: %v", err)
		utils.InternalServerError(c, "Upload failed")
		return "", false
	}
	return photoURL, true
}
