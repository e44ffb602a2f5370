package certificate

import (
	"time"

	certModels "techclass/models/certificate"
)

// VerificationResult is the redacted view handed to anonymous third parties
// checking a certificate's authenticity. It never carries the database key,
// the verification code, the certificate ID of the record, or download
// accounting.
type VerificationResult struct {
	CourseName     string    `json:"course_name"`
	StudentName    string    `json:"student_name"`
	CompletionDate time.Time `json:"completion_date"`
	IssuedBy       string    `json:"issued_by"`
	IsVerified     bool      `json:"is_verified"`
}

// PublicCertificateView is the redacted view for "look up my certificate"
// flows, keyed by the public certificate ID. The ID itself is part of the
// view (the caller already holds it); the verification code, database key
// and download counters are not.
type PublicCertificateView struct {
	CertificateID  string    `json:"certificate_id"`
	CourseName     string    `json:"course_name"`
	StudentName    string    `json:"student_name"`
	CompletionDate time.Time `json:"completion_date"`
	IssuedBy       string    `json:"issued_by"`
	Grade          string    `json:"grade,omitempty"`
	Score          *float64  `json:"score,omitempty"`
	DurationHours  int64     `json:"duration_hours,omitempty"`
	Skills         []string  `json:"skills,omitempty"`
	IsVerified     bool      `json:"is_verified"`
}

// Gateway is the public trust boundary: read-only, anonymous, redacted.
type Gateway struct {
	store Store
}

func NewGateway(store Store) *Gateway {
	return &Gateway{store: store}
}

// Verify resolves a verification code to a redacted trust assertion.
// A revoked certificate, an unknown code and a malformed code all come back
// as the same ErrNotFound: the gateway leaks nothing about which prefixes or
// patterns exist.
func (g *Gateway) Verify(code string) (*VerificationResult, error) {
	cert, err := g.store.FindByVerificationCode(code)
	if err != nil {
		return nil, err
	}
	return &VerificationResult{
		CourseName:     cert.CourseName,
		StudentName:    cert.StudentName,
		CompletionDate: cert.CompletionDate,
		IssuedBy:       cert.IssuedBy,
		IsVerified:     cert.IsVerified,
	}, nil
}

// FetchPublicByID resolves a certificate ID to its public view.
func (g *Gateway) FetchPublicByID(certificateID string) (*PublicCertificateView, error) {
	cert, err := g.store.FindByCertificateID(certificateID)
	if err != nil {
		return nil, err
	}
	return PublicView(cert), nil
}

// PublicView redacts a certificate row into its public representation.
func PublicView(cert *certModels.Certificate) *PublicCertificateView {
	return &PublicCertificateView{
		CertificateID:  cert.CertificateID,
		CourseName:     cert.CourseName,
		StudentName:    cert.StudentName,
		CompletionDate: cert.CompletionDate,
		IssuedBy:       cert.IssuedBy,
		Grade:          cert.Grade,
		Score:          cert.Score,
		DurationHours:  cert.DurationHours,
		Skills:         []string(cert.Skills),
		IsVerified:     cert.IsVerified,
	}
}
