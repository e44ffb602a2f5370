package certificate

import (
	"errors"
	"fmt"
	"regexp"
	"time"

	certModels "techclass/models/certificate"

	"gorm.io/datatypes"
)

// maxIssueAttempts bounds the regenerate-and-retry loop when a generated
// token pair collides with an existing row.
const maxIssueAttempts = 3

var emailRegex = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)

// IssueInput carries everything needed to issue a certificate. Course and
// student names/email are snapshots taken by the caller at issuance time.
type IssueInput struct {
	CourseID uint
	UserID   uint

	CourseName   string
	StudentName  string
	StudentEmail string

	CompletionDate *time.Time
	IssuedBy       string

	Grade         string
	Score         *float64
	DurationHours int64
	Skills        []string
}

// Service is the certificate lifecycle: the only component that mutates
// certificate state. It owns identifier generation, issuance defaults,
// download accounting and revocation; the store stays a dumb persistence
// layer underneath it.
type Service struct {
	store     Store
	generator *Generator
	issuer    string
	now       func() time.Time
}

// NewService wires the lifecycle over a store. issuer is the platform name
// stamped on certificates when the caller leaves IssuedBy empty.
func NewService(store Store, generator *Generator, issuer string) *Service {
	return &Service{
		store:     store,
		generator: generator,
		issuer:    issuer,
		now:       time.Now,
	}
}

// WithClock pins the service clock; used by tests.
func (s *Service) WithClock(now func() time.Time) *Service {
	s.now = now
	return s
}

// Issue validates the input, fills defaults, generates the identifier pair
// and persists the certificate. A token collision is retried with a freshly
// generated pair up to maxIssueAttempts before giving up with
// ErrPersistenceExhausted.
func (s *Service) Issue(input IssueInput) (*certModels.Certificate, error) {
	if err := validateIssueInput(input); err != nil {
		return nil, err
	}

	completion := s.now()
	if input.CompletionDate != nil {
		completion = *input.CompletionDate
	}

	issuedBy := input.IssuedBy
	if issuedBy == "" {
		issuedBy = s.issuer
	}

	for attempt := 0; attempt < maxIssueAttempts; attempt++ {
		cert := &certModels.Certificate{
			CertificateID:    s.generator.GenerateCertificateID(),
			VerificationCode: s.generator.GenerateVerificationCode(),
			CourseID:         input.CourseID,
			UserID:           input.UserID,
			CourseName:       input.CourseName,
			StudentName:      input.StudentName,
			StudentEmail:     input.StudentEmail,
			CompletionDate:   completion,
			IssuedBy:         issuedBy,
			Grade:            input.Grade,
			Score:            input.Score,
			DurationHours:    input.DurationHours,
			Skills:           datatypes.JSONSlice[string](input.Skills),
			IsActive:         true,
		}

		err := s.store.Create(cert)
		if err == nil {
			return cert, nil
		}
		if !errors.Is(err, ErrDuplicateIdentifier) {
			return nil, err
		}
		// Collision: both tokens are regenerated on the next pass.
	}

	return nil, fmt.Errorf("%w after %d attempts", ErrPersistenceExhausted, maxIssueAttempts)
}

// RecordDownload accounts a download of an active certificate and returns the
// updated record. The increment happens inside the store in a single
// statement, so simultaneous downloads all land.
func (s *Service) RecordDownload(certificateID string) (*certModels.Certificate, error) {
	return s.store.IncrementDownload(certificateID, s.now())
}

// Revoke soft-deletes a certificate. Revoking an already-inactive
// certificate is a no-op, not an error.
func (s *Service) Revoke(id uint) error {
	if _, err := s.store.Deactivate(id); err != nil {
		return err
	}
	return nil
}

// Update applies an administrative patch. The certificate ID and verification
// code are immutable once issued; a patch naming either fails with
// ErrImmutableField before anything is written. Reactivation of a revoked
// certificate is an explicit IsActive=true patch through this path.
func (s *Service) Update(id uint, patch UpdatePatch) (*certModels.Certificate, error) {
	if patch.CertificateID != nil || patch.VerificationCode != nil {
		return nil, ErrImmutableField
	}
	if patch.Score != nil && (*patch.Score < 0 || *patch.Score > 100) {
		return nil, &ValidationError{Fields: map[string]string{"score": "Score must be between 0 and 100!"}}
	}
	if patch.StudentEmail != nil && !emailRegex.MatchString(*patch.StudentEmail) {
		return nil, &ValidationError{Fields: map[string]string{"student_email": "Invalid email!"}}
	}
	return s.store.Update(id, patch)
}

// GetByKey fetches by database key, revoked rows included. Admin use only.
func (s *Service) GetByKey(id uint) (*certModels.Certificate, error) {
	return s.store.FindByKey(id)
}

// GetByCertificateID fetches an active certificate by its public identifier.
func (s *Service) GetByCertificateID(certificateID string) (*certModels.Certificate, error) {
	return s.store.FindByCertificateID(certificateID)
}

// List pages through certificates.
func (s *Service) List(filter ListFilter, page, limit int) ([]certModels.Certificate, int64, error) {
	return s.store.List(filter, page, limit)
}

func validateIssueInput(input IssueInput) error {
	fields := make(map[string]string)

	if input.CourseID == 0 {
		fields["course_id"] = "Course is required!"
	}
	if input.UserID == 0 {
		fields["user_id"] = "Student is required!"
	}
	if input.CourseName == "" {
		fields["course_name"] = "Course name is required!"
	}
	if input.StudentName == "" {
		fields["student_name"] = "Student name is required!"
	}
	if input.StudentEmail == "" || !emailRegex.MatchString(input.StudentEmail) {
		fields["student_email"] = "Invalid email!"
	}
	if input.Score != nil && (*input.Score < 0 || *input.Score > 100) {
		fields["score"] = "Score must be between 0 and 100!"
	}

	if len(fields) > 0 {
		return &ValidationError{Fields: fields}
	}
	return nil
}
