package models

import "gorm.io/gorm"

// ContactInfo represents a contact channel shown on the public site
type ContactInfo struct {
	gorm.Model
	Label     string `json:"label"` // e.g. "Support", "Admissions"
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	IsPrimary bool   `json:"is_primary" gorm:"default:false"`
	IsDeleted bool   `gorm:"default:false"`
}
