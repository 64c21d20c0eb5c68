package handlers

import (
	"log"

	"github.com/gin-gonic/gin"

	"dental-tourism-server/internal/mailer"
	"dental-tourism-server/internal/models"
	"dental-tourism-server/internal/utils"
)

// ContactHandler handles contact form submissions.
type ContactHandler struct {
	Store    *models.Store
	Notifier *mailer.Notifier
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(store *models.Store, notifier *mailer.Notifier) *ContactHandler {
	return &ContactHandler{Store: store, Notifier: notifier}
}

// CreateContactRequest represents the contact form payload.
type CreateContactRequest struct {
	Name    string `json:"name" validate:"required,min=2"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone" validate:"omitempty,min=7"`
	Subject string `json:"subject" validate:"required,min=2"`
	Message string `json:"message" validate:"required,min=10"`
}

// CreateContact handles a new contact form submission.
func (h *ContactHandler) CreateContact(c *gin.Context) {
	var req CreateContactRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	submission := models.ContactSubmission{
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Subject: req.Subject,
		Message: req.Message,
	}

	if err := h.Store.CreateContactSubmission(&submission); err != nil {
		log.Printf("Failed to create contact submission: %v", err)
		utils.InternalServerError(c, "Failed to save contact submission")
		return
	}

	// Best-effort notification
	h.Notifier.SendContactNotification(&submission)

	utils.Created(c, "Message sent successfully", submission)
}
