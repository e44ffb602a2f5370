package models

import "gorm.io/gorm"

// Alumni represents a graduate featured on the public site
type Alumni struct {
	gorm.Model
	Name           string `json:"name"`
	Email          string `json:"email"`
	CourseID       uint   `json:"course_id" gorm:"index"`
	GraduationYear int    `json:"graduation_year"`
	CurrentRole    string `json:"current_role"`
	Company        string `json:"company"`
	Testimonial    string `json:"testimonial"`
	PhotoURL       string `json:"photo_url"`
	IsFeatured     bool   `json:"is_featured" gorm:"default:false"`
	IsDeleted      bool   `gorm:"default:false"`
}
