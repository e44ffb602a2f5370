package certificate

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Certificate represents an issued course-completion certificate.
//
// The database key (gorm.Model.ID) is never exposed to the public site; public
// lookups go through CertificateID, and third-party trust checks go through
// VerificationCode. The two tokens are generated independently so that knowing
// one does not narrow the search space for the other.
type Certificate struct {
	gorm.Model
	CertificateID    string `json:"certificate_id" gorm:"uniqueIndex;size:64;not null"`
	VerificationCode string `json:"verification_code" gorm:"uniqueIndex;size:16;not null"`

	CourseID uint `json:"course_id" gorm:"index;not null"`
	UserID   uint `json:"user_id" gorm:"index;not null"`

	// Snapshots captured at issuance so the certificate stays meaningful even
	// if the course or student record is later edited or removed.
	CourseName   string `json:"course_name"`
	StudentName  string `json:"student_name"`
	StudentEmail string `json:"student_email"`

	CompletionDate time.Time `json:"completion_date" gorm:"index"`
	IssuedBy       string    `json:"issued_by"`

	Grade         string                      `json:"grade"`
	Score         *float64                    `json:"score"` // 0-100 when set
	DurationHours int64                       `json:"duration_hours" gorm:"default:0"`
	Skills        datatypes.JSONSlice[string] `json:"skills"`

	IsActive   bool `json:"is_active" gorm:"default:true;index"`
	IsVerified bool `json:"is_verified" gorm:"default:false"`

	DownloadCount int        `json:"download_count" gorm:"default:0"`
	DownloadedAt  *time.Time `json:"downloaded_at"`
}
