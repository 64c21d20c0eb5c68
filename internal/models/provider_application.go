package models

// ApplicationStatus represents the review state of a provider application
type ApplicationStatus string

const (
	ApplicationPending  ApplicationStatus = "pending"
	ApplicationApproved ApplicationStatus = "approved"
	ApplicationRejected ApplicationStatus = "rejected"
)

// ProviderApplication is a clinic applying to join the network. Created once
// from the provider form; status is advanced manually in the CRM.
type ProviderApplication struct {
	BaseModel
	ClinicName      string            `gorm:"size:255;not null" json:"clinicName"`
	ContactName     string            `gorm:"size:255;not null" json:"contactName"`
	Email           string            `gorm:"size:255;not null;index" json:"email"`
	Phone           string            `gorm:"size:50;not null" json:"phone"`
	Address         string            `gorm:"size:255" json:"address"`
	City            string            `gorm:"size:100" json:"city"`
	State           string            `gorm:"size:100" json:"state"`
	Specialties     []string          `gorm:"serializer:json" json:"specialties"`
	YearsInBusiness int               `gorm:"not null" json:"yearsInBusiness"`
	DentistCount    int               `json:"dentistCount"`
	Certifications  []string          `gorm:"serializer:json" json:"certifications"`
	Languages       []string          `gorm:"serializer:json" json:"languages"`
	Description     string            `gorm:"type:text" json:"description,omitempty"`
	Status          ApplicationStatus `gorm:"size:20;default:'pending'" json:"status"`
}

func (ProviderApplication) TableName() string {
	return "provider_applications"
}
