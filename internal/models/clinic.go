package models

// Clinic is a partner dental clinic. Read-only reference data; array-valued
// fields are stored as JSON text columns.
type Clinic struct {
	BaseModel
	Name           string   `gorm:"size:255;not null" json:"name"`
	Email          string   `gorm:"size:255" json:"email"`
	Phone          string   `gorm:"size:50" json:"phone"`
	Website        string   `gorm:"size:255" json:"website,omitempty"`
	Address        string   `gorm:"size:255" json:"address"`
	City           string   `gorm:"size:100" json:"city"`
	State          string   `gorm:"size:100" json:"state"`
	Country        string   `gorm:"size:100;default:'Mexico'" json:"country"`
	Specialties    []string `gorm:"serializer:json" json:"specialties"`
	Languages      []string `gorm:"serializer:json" json:"languages"`
	Certifications []string `gorm:"serializer:json" json:"certifications"`
	IsActive       bool     `gorm:"default:true" json:"isActive"`
	IsVerified     bool     `gorm:"default:false" json:"isVerified"`
}

func (Clinic) TableName() string {
	return "clinics"
}
