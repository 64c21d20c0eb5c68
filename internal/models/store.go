package models

import "gorm.io/gorm"

// Store wraps the database handle with the operations the handlers need.
// Keeping them behind one type makes the handlers testable against an
// in-memory database.
type Store struct {
	DB *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{DB: db}
}

// CreateConsultationRequest inserts a new consultation lead in pending state.
func (s *Store) CreateConsultationRequest(req *ConsultationRequest) error {
	return s.DB.Create(req).Error
}

// CreateContactSubmission inserts a contact form message.
func (s *Store) CreateContactSubmission(sub *ContactSubmission) error {
	return s.DB.Create(sub).Error
}

// CreateProviderApplication inserts a clinic application in pending state.
func (s *Store) CreateProviderApplication(app *ProviderApplication) error {
	return s.DB.Create(app).Error
}

// GetTestimonials returns visible testimonials, newest first.
func (s *Store) GetTestimonials() ([]Testimonial, error) {
	var testimonials []Testimonial
	err := s.DB.Where("is_visible = ?", true).Order("created_at desc").Find(&testimonials).Error
	return testimonials, err
}

// GetClinics returns active clinics.
func (s *Store) GetClinics() ([]Clinic, error) {
	var clinics []Clinic
	err := s.DB.Where("is_active = ?", true).Find(&clinics).Error
	return clinics, err
}

// GetTreatments returns active treatments ordered by category then name.
func (s *Store) GetTreatments() ([]Treatment, error) {
	var treatments []Treatment
	err := s.DB.Where("is_active = ?", true).Order("category asc, name asc").Find(&treatments).Error
	return treatments, err
}

// GetTreatmentByID looks up a single treatment for the pricing quote endpoint.
func (s *Store) GetTreatmentByID(id string) (*Treatment, error) {
	var treatment Treatment
	if err := s.DB.First(&treatment, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &treatment, nil
}

// ListConsultationRequests returns leads for the CRM, optionally filtered by
// status, newest first.
func (s *Store) ListConsultationRequests(status string) ([]ConsultationRequest, error) {
	var requests []ConsultationRequest
	query := s.DB.Order("created_at desc")
	if status != "" {
		query = query.Where("status = ?", status)
	}
	err := query.Find(&requests).Error
	return requests, err
}

// ListContactSubmissions returns contact messages for the CRM, newest first.
func (s *Store) ListContactSubmissions() ([]ContactSubmission, error) {
	var submissions []ContactSubmission
	err := s.DB.Order("created_at desc").Find(&submissions).Error
	return submissions, err
}

// ListProviderApplications returns provider applications for the CRM, newest first.
func (s *Store) ListProviderApplications() ([]ProviderApplication, error) {
	var applications []ProviderApplication
	err := s.DB.Order("created_at desc").Find(&applications).Error
	return applications, err
}

// UpdateConsultationStatus advances a lead's lifecycle state from the CRM.
func (s *Store) UpdateConsultationStatus(id string, status ConsultationStatus) (*ConsultationRequest, error) {
	var req ConsultationRequest
	if err := s.DB.First(&req, "id = ?", id).Error; err != nil {
		return nil, err
	}
	req.Status = status
	if err := s.DB.Save(&req).Error; err != nil {
		return nil, err
	}
	return &req, nil
}

// MarkNotificationSent flags a lead whose admin notification went out.
func (s *Store) MarkNotificationSent(id string) error {
	return s.DB.Model(&ConsultationRequest{}).Where("id = ?", id).
		Update("notifications_sent", true).Error
}
