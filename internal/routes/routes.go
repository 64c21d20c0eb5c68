package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"dental-tourism-server/internal/config"
	"dental-tourism-server/internal/handlers"
	"dental-tourism-server/internal/mailer"
	"dental-tourism-server/internal/middleware"
	"dental-tourism-server/internal/models"
	"dental-tourism-server/internal/storage"
)

// SetupRoutes configures the application routes.
func SetupRoutes(router *gin.Engine, db *gorm.DB, cfg *config.Config, st storage.Storage, notifier *mailer.Notifier, bulkSender *mailer.BulkSender) {
	store := models.NewStore(db)

	// Initialize handlers
	consultationHandler := handlers.NewConsultationHandler(store, notifier, st, cfg.MaxUploadSizeBytes)
	contactHandler := handlers.NewContactHandler(store, notifier)
	providerHandler := handlers.NewProviderHandler(store, notifier)
	catalogHandler := handlers.NewCatalogHandler(store)
	uploadHandler := handlers.NewUploadHandler(st)
	pricingHandler := handlers.NewPricingHandler(store)
	healthHandler := handlers.NewHealthHandler(cfg)
	adminHandler := handlers.NewAdminHandler(store, cfg, bulkSender)

	// Public routes (no authentication required)
	public := router.Group("/api")
	{
		public.POST("/consultation", consultationHandler.CreateConsultation)
		public.POST("/contact", contactHandler.CreateContact)
		public.POST("/provider-application", providerHandler.CreateProviderApplication)

		public.GET("/testimonials", catalogHandler.GetTestimonials)
		public.GET("/clinics", catalogHandler.GetClinics)
		public.GET("/treatments", catalogHandler.GetTreatments)

		public.POST("/upload/presigned-url", uploadHandler.CreatePresignedURL)
		public.POST("/pricing/quote", pricingHandler.CreateQuote)

		public.GET("/health", healthHandler.Health)
		public.POST("/admin/login", adminHandler.Login)
	}

	// CRM routes for the single operator account
	admin := router.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(cfg))
	{
		admin.GET("/consultations", adminHandler.ListConsultations)
		admin.GET("/contacts", adminHandler.ListContacts)
		admin.GET("/provider-applications", adminHandler.ListProviderApplications)
		admin.PATCH("/consultations/:id/status", adminHandler.UpdateConsultationStatus)
		admin.POST("/bulk-email", adminHandler.SendBulkEmail)
	}

	// SEO assets served verbatim
	router.StaticFile("/robots.txt", "./static/robots.txt")
	router.StaticFile("/sitemap.xml", "./static/sitemap.xml")
	router.StaticFile("/sw.js", "./static/sw.js")
}
