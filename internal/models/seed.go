package models

import "gorm.io/gorm"

// SeedReferenceData inserts the treatment catalog when the table is empty.
// Testimonials and clinics are managed out-of-band; treatments are the one
// table the site cannot function without (the pricing calculator reads it).
func SeedReferenceData(db *gorm.DB) error {
	var count int64
	if err := db.Model(&Treatment{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	treatments := []Treatment{
		{Name: "Dental Implant (Single)", Category: "Implants", Description: "Titanium implant with abutment and crown", USPrice: 4500, MexicoPrice: 1600, Duration: "2-3 visits", IsActive: true},
		{Name: "All-on-4 Implants (Full Arch)", Category: "Implants", Description: "Full arch restoration on four implants", USPrice: 24000, MexicoPrice: 9500, Duration: "4-6 visits", IsActive: true},
		{Name: "Porcelain Crown", Category: "Crowns", Description: "Full porcelain crown, color matched", USPrice: 1200, MexicoPrice: 450, Duration: "2 visits", IsActive: true},
		{Name: "Zirconia Crown", Category: "Crowns", Description: "Metal-free zirconia crown", USPrice: 1500, MexicoPrice: 550, Duration: "2 visits", IsActive: true},
		{Name: "Root Canal", Category: "Endodontics", Description: "Root canal treatment, anterior or molar", USPrice: 1400, MexicoPrice: 350, Duration: "1-2 visits", IsActive: true},
		{Name: "Porcelain Veneer", Category: "Cosmetic", Description: "Hand-layered porcelain veneer", USPrice: 1800, MexicoPrice: 500, Duration: "2 visits", IsActive: true},
		{Name: "Teeth Whitening (In-Office)", Category: "Cosmetic", Description: "Professional in-office whitening session", USPrice: 650, MexicoPrice: 200, Duration: "1 visit", IsActive: true},
		{Name: "Full Denture (Per Arch)", Category: "Dentures", Description: "Conventional complete denture", USPrice: 2200, MexicoPrice: 700, Duration: "3-4 visits", IsActive: true},
	}

	return db.Create(&treatments).Error
}
