package models

// Treatment is reference pricing data consumed by the savings calculator.
// USPrice and MexicoPrice are both in USD.
type Treatment struct {
	BaseModel
	Name        string  `gorm:"size:255;not null" json:"name"`
	Category    string  `gorm:"size:100;not null;index" json:"category"`
	Description string  `gorm:"type:text" json:"description"`
	USPrice     float64 `gorm:"not null" json:"usPrice"`
	MexicoPrice float64 `gorm:"not null" json:"mexicoPrice"`
	Duration    string  `gorm:"size:100" json:"duration"`
	IsActive    bool    `gorm:"default:true" json:"isActive"`
}

func (Treatment) TableName() string {
	return "treatments"
}
