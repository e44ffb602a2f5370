package certificate

import (
	"errors"
	"time"

	certModels "techclass/models/certificate"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ListFilter narrows List results. Zero-valued fields are ignored.
// Active nil means active-only, the safe default for public listings;
// admin callers set an explicit value, or IncludeInactive to see everything.
type ListFilter struct {
	CourseID        uint
	UserID          uint
	Verified        *bool
	Active          *bool
	IncludeInactive bool
}

// UpdatePatch is a partial update. Nil fields are left untouched.
// CertificateID and VerificationCode are present only so that an attempt to
// change them is expressible; the lifecycle service rejects such patches.
type UpdatePatch struct {
	CertificateID    *string
	VerificationCode *string

	CourseName     *string
	StudentName    *string
	StudentEmail   *string
	CompletionDate *time.Time
	IssuedBy       *string

	Grade         *string
	Score         *float64
	DurationHours *int64
	Skills        *[]string

	IsActive   *bool
	IsVerified *bool
}

// Store is the persistence contract for certificates. The lifecycle service
// and the verification gateway depend on this interface; tests substitute an
// in-memory implementation.
type Store interface {
	Create(cert *certModels.Certificate) error
	FindByKey(id uint) (*certModels.Certificate, error)
	FindByCertificateID(certificateID string) (*certModels.Certificate, error)
	FindByVerificationCode(code string) (*certModels.Certificate, error)
	List(filter ListFilter, page, limit int) ([]certModels.Certificate, int64, error)
	Update(id uint, patch UpdatePatch) (*certModels.Certificate, error)
	Deactivate(id uint) (*certModels.Certificate, error)
	IncrementDownload(certificateID string, at time.Time) (*certModels.Certificate, error)
}

// GormStore implements Store on top of GORM. It requires the connection to be
// opened with TranslateError so unique violations arrive as
// gorm.ErrDuplicatedKey.
type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

// Create persists a new certificate. A unique-index violation on either token
// is reported as ErrDuplicateIdentifier so the caller can regenerate and
// retry; an existing row is never overwritten.
func (s *GormStore) Create(cert *certModels.Certificate) error {
	if err := s.db.Create(cert).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrDuplicateIdentifier
		}
		return err
	}
	return nil
}

// FindByKey looks up by database key. This is the admin path: it returns
// revoked certificates too, so they can be inspected and reactivated.
func (s *GormStore) FindByKey(id uint) (*certModels.Certificate, error) {
	var cert certModels.Certificate
	if err := s.db.Where("id = ?", id).First(&cert).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &cert, nil
}

// FindByCertificateID looks up an active certificate by its public identifier.
func (s *GormStore) FindByCertificateID(certificateID string) (*certModels.Certificate, error) {
	return s.findActive("certificate_id = ?", certificateID)
}

// FindByVerificationCode looks up an active certificate by verification code.
func (s *GormStore) FindByVerificationCode(code string) (*certModels.Certificate, error) {
	return s.findActive("verification_code = ?", code)
}

func (s *GormStore) findActive(query string, arg interface{}) (*certModels.Certificate, error) {
	var cert certModels.Certificate
	if err := s.db.Where(query, arg).Where("is_active = ?", true).First(&cert).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &cert, nil
}

// List returns a page of certificates plus the total matching count, newest
// completion first.
func (s *GormStore) List(filter ListFilter, page, limit int) ([]certModels.Certificate, int64, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	offset := (page - 1) * limit

	db := s.db.Model(&certModels.Certificate{})

	if filter.CourseID != 0 {
		db = db.Where("course_id = ?", filter.CourseID)
	}
	if filter.UserID != 0 {
		db = db.Where("user_id = ?", filter.UserID)
	}
	if filter.Verified != nil {
		db = db.Where("is_verified = ?", *filter.Verified)
	}
	if filter.Active != nil {
		db = db.Where("is_active = ?", *filter.Active)
	} else if !filter.IncludeInactive {
		db = db.Where("is_active = ?", true)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var certs []certModels.Certificate
	if err := db.Offset(offset).Limit(limit).Order("completion_date desc").Find(&certs).Error; err != nil {
		return nil, 0, err
	}

	return certs, total, nil
}

// Update applies a partial update and returns the fresh row.
func (s *GormStore) Update(id uint, patch UpdatePatch) (*certModels.Certificate, error) {
	values := patch.columns()
	if len(values) > 0 {
		res := s.db.Model(&certModels.Certificate{}).Where("id = ?", id).Updates(values)
		if res.Error != nil {
			if errors.Is(res.Error, gorm.ErrDuplicatedKey) {
				return nil, ErrDuplicateIdentifier
			}
			return nil, res.Error
		}
		if res.RowsAffected == 0 {
			return nil, ErrNotFound
		}
	}
	return s.FindByKey(id)
}

// Deactivate soft-deletes: flips is_active off and touches nothing else.
func (s *GormStore) Deactivate(id uint) (*certModels.Certificate, error) {
	res := s.db.Model(&certModels.Certificate{}).Where("id = ?", id).Update("is_active", false)
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return s.FindByKey(id)
}

// IncrementDownload bumps download_count and stamps downloaded_at in a single
// UPDATE so concurrent downloads never lose an increment. Scoped to active
// certificates; a revoked certificate reports ErrNotFound.
func (s *GormStore) IncrementDownload(certificateID string, at time.Time) (*certModels.Certificate, error) {
	res := s.db.Model(&certModels.Certificate{}).
		Where("certificate_id = ? AND is_active = ?", certificateID, true).
		Updates(map[string]interface{}{
			"download_count": gorm.Expr("download_count + 1"),
			"downloaded_at":  at,
		})
	if res.Error != nil {
		return nil, res.Error
	}
	if res.RowsAffected == 0 {
		return nil, ErrNotFound
	}
	return s.FindByCertificateID(certificateID)
}

// columns maps set patch fields to their database columns.
func (p UpdatePatch) columns() map[string]interface{} {
	values := make(map[string]interface{})

	if p.CertificateID != nil {
		values["certificate_id"] = *p.CertificateID
	}
	if p.VerificationCode != nil {
		values["verification_code"] = *p.VerificationCode
	}
	if p.CourseName != nil {
		values["course_name"] = *p.CourseName
	}
	if p.StudentName != nil {
		values["student_name"] = *p.StudentName
	}
	if p.StudentEmail != nil {
		values["student_email"] = *p.StudentEmail
	}
	if p.CompletionDate != nil {
		values["completion_date"] = *p.CompletionDate
	}
	if p.IssuedBy != nil {
		values["issued_by"] = *p.IssuedBy
	}
	if p.Grade != nil {
		values["grade"] = *p.Grade
	}
	if p.Score != nil {
		values["score"] = *p.Score
	}
	if p.DurationHours != nil {
		values["duration_hours"] = *p.DurationHours
	}
	if p.Skills != nil {
		values["skills"] = datatypes.JSONSlice[string](*p.Skills)
	}
	if p.IsActive != nil {
		values["is_active"] = *p.IsActive
	}
	if p.IsVerified != nil {
		values["is_verified"] = *p.IsVerified
	}

	return values
}
