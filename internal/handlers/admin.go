package handlers

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"dental-tourism-server/internal/config"
	"dental-tourism-server/internal/mailer"
	"dental-tourism-server/internal/models"
	"dental-tourism-server/internal/utils"
)

// AdminHandler serves the CRM surface: operator login, lead listings, the
// manual status transition and the bulk-email testing utility.
type AdminHandler struct {
	Store      *models.Store
	Config     *config.Config
	BulkSender *mailer.BulkSender
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(store *models.Store, cfg *config.Config, bulkSender *mailer.BulkSender) *AdminHandler {
	return &AdminHandler{Store: store, Config: cfg, BulkSender: bulkSender}
}

// LoginRequest represents the operator login payload.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login handles POST /api/admin/login. There is a single operator account
// configured through the environment; no user table exists.
func (h *AdminHandler) Login(c *gin.Context) {
	var req LoginRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	admin := h.Config.Admin
	if admin.Email == "" || admin.PasswordHash == "" {
		utils.Unauthorized(c, "Admin access is not configured")
		return
	}

	if req.Email != admin.Email {
		utils.Unauthorized(c, "Invalid credentials")
		return
	}
	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(req.Password)); err != nil {
		utils.Unauthorized(c, "Invalid credentials")
		return
	}

	token, err := utils.GenerateAdminToken(admin.Email, h.Config)
	if err != nil {
		log.Printf("Failed to generate admin token: %v", err)
		utils.InternalServerError(c, "Failed to generate token")
		return
	}

	utils.Success(c, "Login successful", gin.H{"token": token})
}

// ListConsultations handles GET /api/admin/consultations?status=pending.
func (h *AdminHandler) ListConsultations(c *gin.Context) {
	requests, err := h.Store.ListConsultationRequests(c.Query("status"))
	if err != nil {
		log.Printf("Failed to list consultation requests: %v", err)
		utils.InternalServerError(c, "Failed to fetch consultation requests")
		return
	}
	utils.Success(c, "Consultation requests fetched successfully", requests)
}

// ListContacts handles GET /api/admin/contacts.
func (h *AdminHandler) ListContacts(c *gin.Context) {
	submissions, err := h.Store.ListContactSubmissions()
	if err != nil {
		log.Printf("Failed to list contact submissions: %v", err)
		utils.InternalServerError(c, "Failed to fetch contact submissions")
		return
	}
	utils.Success(c, "Contact submissions fetched successfully", submissions)
}

// ListProviderApplications handles GET /api/admin/provider-applications.
func (h *AdminHandler) ListProviderApplications(c *gin.Context) {
	applications, err := h.Store.ListProviderApplications()
	if err != nil {
		log.Printf("Failed to list provider applications: %v", err)
		utils.InternalServerError(c, "Failed to fetch provider applications")
		return
	}
	utils.Success(c, "Provider applications fetched successfully", applications)
}

// UpdateStatusRequest represents the manual lead status transition payload.
type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending contacted scheduled completed"`
}

// UpdateConsultationStatus handles PATCH /api/admin/consultations/:id/status.
func (h *AdminHandler) UpdateConsultationStatus(c *gin.Context) {
	var req UpdateStatusRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	updated, err := h.Store.UpdateConsultationStatus(c.Param("id"), models.ConsultationStatus(req.Status))
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			utils.NotFound(c, "Consultation request not found")
			return
		}
		log.Printf("Failed to update consultation status: %v", err)
		utils.InternalServerError(c, "Failed to update consultation status")
		return
	}

	utils.Success(c, "Status updated successfully", updated)
}

// BulkEmailRequest represents the bulk-email utility payload. Delays are
// given in milliseconds.
type BulkEmailRequest struct {
	Recipients          []mailer.Recipient `json:"recipients" validate:"required,min=1,dive"`
	Subject             string             `json:"subject" validate:"required"`
	Template            string             `json:"template" validate:"required"`
	BatchSize           int                `json:"batchSize" validate:"omitempty,gte=1"`
	DelayBetweenEmails  int                `json:"delayBetweenEmailsMs" validate:"omitempty,gte=0"`
	DelayBetweenBatches int                `json:"delayBetweenBatchesMs" validate:"omitempty,gte=0"`
	MaxRetries          int                `json:"maxRetries" validate:"omitempty,gte=0"`
}

// SendBulkEmail handles POST /api/admin/bulk-email. The loop is synchronous:
// the response carries the full per-recipient result list.
func (h *AdminHandler) SendBulkEmail(c *gin.Context) {
	var req BulkEmailRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	opts := mailer.DefaultBulkOptions()
	if req.BatchSize > 0 {
		opts.BatchSize = req.BatchSize
	}
	if req.DelayBetweenEmails > 0 {
		opts.DelayBetweenEmails = time.Duration(req.DelayBetweenEmails) * time.Millisecond
	}
	if req.DelayBetweenBatches > 0 {
		opts.DelayBetweenBatches = time.Duration(req.DelayBetweenBatches) * time.Millisecond
	}
	if req.MaxRetries > 0 {
		opts.MaxRetries = req.MaxRetries
	}

	summary := h.BulkSender.SendBulk(req.Recipients, req.Subject, req.Template, opts)
	utils.Success(c, "Bulk send completed", summary)
}
