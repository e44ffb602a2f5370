package certificate

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyReturnsRedactedResult(t *testing.T) {
	store := newMemStore()
	svc := newTestService(store)
	gw := NewGateway(store)

	cert, err := svc.Issue(testIssueInput())
	require.NoError(t, err)

	verified := true
	_, err = svc.Update(cert.ID, UpdatePatch{IsVerified: &verified})
	require.NoError(t, err)

	result, err := gw.Verify(cert.VerificationCode)
	require.NoError(t, err)

	assert.Equal(t, "Advanced Go", result.CourseName)
	assert.Equal(t, "Priya Sharma", result.StudentName)
	assert.Equal(t, "TechClass Academy", result.IssuedBy)
	assert.True(t, result.IsVerified)

	// The serialized result must not leak identifiers or accounting.
	raw, err := json.Marshal(result)
	require.NoError(t, err)
	payload := string(raw)
	assert.NotContains(t, payload, cert.VerificationCode)
	assert.NotContains(t, payload, cert.CertificateID)
	assert.NotContains(t, payload, "download")
	assert.NotContains(t, payload, "\"id\"")
	assert.NotContains(t, payload, cert.StudentEmail)
}

func TestVerifyMissesAreUniform(t *testing.T) {
	store := newMemStore()
	svc := newTestService(store)
	gw := NewGateway(store)

	cert, err := svc.Issue(testIssueInput())
	require.NoError(t, err)
	require.NoError(t, svc.Revoke(cert.ID))

	// Unknown, malformed and revoked codes are indistinguishable.
	_, unknownErr := gw.Verify("AAAA0000")
	_, malformedErr := gw.Verify("not a code")
	_, revokedErr := gw.Verify(cert.VerificationCode)

	assert.ErrorIs(t, unknownErr, ErrNotFound)
	assert.ErrorIs(t, malformedErr, ErrNotFound)
	assert.ErrorIs(t, revokedErr, ErrNotFound)
}

func TestFetchPublicByID(t *testing.T) {
	store := newMemStore()
	svc := newTestService(store)
	gw := NewGateway(store)

	cert, err := svc.Issue(testIssueInput())
	require.NoError(t, err)

	view, err := gw.FetchPublicByID(cert.CertificateID)
	require.NoError(t, err)

	assert.Equal(t, cert.CertificateID, view.CertificateID)
	assert.Equal(t, "A", view.Grade)
	assert.Equal(t, []string{"Go", "Concurrency"}, view.Skills)

	raw, err := json.Marshal(view)
	require.NoError(t, err)
	payload := string(raw)
	assert.NotContains(t, payload, cert.VerificationCode)
	assert.NotContains(t, payload, "download")
	assert.NotContains(t, payload, cert.StudentEmail)
}

func TestFetchPublicByIDRevoked(t *testing.T) {
	store := newMemStore()
	svc := newTestService(store)
	gw := NewGateway(store)

	cert, err := svc.Issue(testIssueInput())
	require.NoError(t, err)
	require.NoError(t, svc.Revoke(cert.ID))

	_, err = gw.FetchPublicByID(cert.CertificateID)
	assert.ErrorIs(t, err, ErrNotFound)
}
