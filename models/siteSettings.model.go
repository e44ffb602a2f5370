package models

import "gorm.io/gorm"

// SiteSetting holds the single row of site-wide settings.
// The settings controller creates the row on first read; there is no
// schema-level singleton magic.
type SiteSetting struct {
	gorm.Model
	SiteName        string `json:"site_name" gorm:"default:'TechClass Academy'"`
	Tagline         string `json:"tagline"`
	LogoURL         string `json:"logo_url"`
	FacebookURL     string `json:"facebook_url"`
	InstagramURL    string `json:"instagram_url"`
	LinkedinURL     string `json:"linkedin_url"`
	MaintenanceMode bool   `json:"maintenance_mode" gorm:"default:false"`
}
