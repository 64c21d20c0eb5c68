package models

// ContactSubmission is a message sent through the public contact form.
// Immutable once created.
type ContactSubmission struct {
	BaseModel
	Name    string `gorm:"size:255;not null" json:"name"`
	Email   string `gorm:"size:255;not null;index" json:"email"`
	Phone   string `gorm:"size:50" json:"phone,omitempty"`
	Subject string `gorm:"size:255;not null" json:"subject"`
	Message string `gorm:"type:text;not null" json:"message"`
}

func (ContactSubmission) TableName() string {
	return "contact_submissions"
}
