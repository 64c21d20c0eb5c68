package models

// Testimonial is patient feedback shown on the public site. Seeded out-of-band;
// the API only ever reads visible entries.
type Testimonial struct {
	BaseModel
	PatientName string `gorm:"size:255;not null" json:"patientName"`
	Location    string `gorm:"size:255" json:"location"`
	Treatment   string `gorm:"size:255" json:"treatment"`
	Rating      string `gorm:"size:5;default:'5'" json:"rating"`
	Text        string `gorm:"type:text;not null" json:"text"`
	Language    string `gorm:"size:10;default:'en'" json:"language"`
	ImageURL    string `gorm:"size:512" json:"imageUrl,omitempty"`
	IsVisible   bool   `gorm:"default:true" json:"isVisible"`
}

func (Testimonial) TableName() string {
	return "testimonials"
}
