package models

// ConsultationStatus represents the lifecycle state of a consultation request
type ConsultationStatus string

const (
	ConsultationPending   ConsultationStatus = "pending"
	ConsultationContacted ConsultationStatus = "contacted"
	ConsultationScheduled ConsultationStatus = "scheduled"
	ConsultationCompleted ConsultationStatus = "completed"
)

// ContactMethod is how the patient prefers to be reached
type ContactMethod string

const (
	ContactByPhone ContactMethod = "phone"
	ContactByEmail ContactMethod = "email"
	ContactByText  ContactMethod = "text"
)

// ConsultationType is the medium for the consultation itself
type ConsultationType string

const (
	ConsultationVideo ConsultationType = "video"
	ConsultationPhone ConsultationType = "phone"
)

// ConsultationRequest is a booking/consultation lead submitted from the public site.
// The API only ever creates these in pending state; status changes happen in the CRM.
type ConsultationRequest struct {
	BaseModel
	Name              string             `gorm:"size:255;not null" json:"name"`
	Email             string             `gorm:"size:255;not null;index" json:"email"`
	Phone             string             `gorm:"size:50;not null" json:"phone"`
	PreferredContact  ContactMethod      `gorm:"size:20;default:'email'" json:"preferredContact"`
	ServiceInterest   string             `gorm:"size:100" json:"serviceInterest"`
	DateOfBirth       string             `gorm:"size:20" json:"dateOfBirth,omitempty"`
	Description       string             `gorm:"type:text" json:"description,omitempty"`
	PhotoURL          string             `gorm:"size:512" json:"photoUrl,omitempty"`
	PreferredDate     string             `gorm:"size:20" json:"preferredDate,omitempty"`
	PreferredTime     string             `gorm:"size:20" json:"preferredTime,omitempty"`
	Timezone          string             `gorm:"size:64" json:"timezone,omitempty"`
	ConsultationType  ConsultationType   `gorm:"size:20" json:"consultationType,omitempty"`
	Status            ConsultationStatus `gorm:"size:20;default:'pending'" json:"status"`
	NotificationsSent bool               `gorm:"default:false" json:"notificationsSent"`
}

func (ConsultationRequest) TableName() string {
	return "consultation_requests"
}
