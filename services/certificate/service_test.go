package certificate

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testIssueInput() IssueInput {
	score := 91.5
	return IssueInput{
		CourseID:      7,
		UserID:        12,
		CourseName:    "Advanced Go",
		StudentName:   "Priya Sharma",
		StudentEmail:  "priya@example.com",
		Grade:         "A",
		Score:         &score,
		DurationHours: 40,
		Skills:        []string{"Go", "Concurrency"},
	}
}

func newTestService(store Store) *Service {
	return NewService(store, NewGenerator(), "TechClass Academy")
}

func TestIssueAssignsDefaults(t *testing.T) {
	store := newMemStore()
	at := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	svc := newTestService(store).WithClock(fixedClock(at))

	input := testIssueInput()
	input.CompletionDate = nil
	input.IssuedBy = ""

	cert, err := svc.Issue(input)
	require.NoError(t, err)

	assert.Regexp(t, certificateIDPattern, cert.CertificateID)
	assert.Regexp(t, verificationCodePattern, cert.VerificationCode)
	assert.Equal(t, at, cert.CompletionDate)
	assert.Equal(t, "TechClass Academy", cert.IssuedBy)
	assert.True(t, cert.IsActive)
	assert.False(t, cert.IsVerified)
	assert.Equal(t, 0, cert.DownloadCount)
	assert.Nil(t, cert.DownloadedAt)
	assert.NotZero(t, cert.ID)
}

func TestIssueKeepsCallerValues(t *testing.T) {
	store := newMemStore()
	svc := newTestService(store)

	completed := time.Date(2025, 2, 20, 0, 0, 0, 0, time.UTC)
	input := testIssueInput()
	input.CompletionDate = &completed
	input.IssuedBy = "Jane Instructor"

	cert, err := svc.Issue(input)
	require.NoError(t, err)

	assert.Equal(t, completed, cert.CompletionDate)
	assert.Equal(t, "Jane Instructor", cert.IssuedBy)
	assert.Equal(t, "Advanced Go", cert.CourseName)
	assert.Equal(t, []string{"Go", "Concurrency"}, []string(cert.Skills))
}

func TestIssueValidation(t *testing.T) {
	svc := newTestService(newMemStore())

	badScore := 120.0
	cases := []struct {
		name  string
		mod   func(*IssueInput)
		field string
	}{
		{"missing course", func(in *IssueInput) { in.CourseID = 0 }, "course_id"},
		{"missing student", func(in *IssueInput) { in.UserID = 0 }, "user_id"},
		{"missing course name", func(in *IssueInput) { in.CourseName = "" }, "course_name"},
		{"missing student name", func(in *IssueInput) { in.StudentName = "" }, "student_name"},
		{"bad email", func(in *IssueInput) { in.StudentEmail = "not-an-email" }, "student_email"},
		{"score out of range", func(in *IssueInput) { in.Score = &badScore }, "score"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := testIssueInput()
			tc.mod(&input)

			_, err := svc.Issue(input)
			require.Error(t, err)

			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Contains(t, verr.Fields, tc.field)
		})
	}
}

func TestIssueRetriesOnTokenCollision(t *testing.T) {
	store := newMemStore()
	store.failCreates = 2
	svc := newTestService(store)

	cert, err := svc.Issue(testIssueInput())
	require.NoError(t, err)

	// Two failed attempts plus the successful one, each with fresh tokens.
	require.Len(t, store.createAttempts, 3)
	seenIDs := make(map[string]bool)
	seenCodes := make(map[string]bool)
	for _, attempt := range store.createAttempts {
		seenIDs[attempt.CertificateID] = true
		seenCodes[attempt.VerificationCode] = true
	}
	assert.Len(t, seenIDs, 3)
	assert.Len(t, seenCodes, 3)
	assert.True(t, seenIDs[cert.CertificateID])
}

func TestIssueGivesUpAfterMaxAttempts(t *testing.T) {
	store := newMemStore()
	store.failCreates = maxIssueAttempts
	svc := newTestService(store)

	_, err := svc.Issue(testIssueInput())
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPersistenceExhausted)
	assert.Len(t, store.createAttempts, maxIssueAttempts)
}

func TestRecordDownloadConcurrent(t *testing.T) {
	store := newMemStore()
	svc := newTestService(store)

	cert, err := svc.Issue(testIssueInput())
	require.NoError(t, err)

	const downloads = 50
	var wg sync.WaitGroup
	wg.Add(downloads)
	for i := 0; i < downloads; i++ {
		go func() {
			defer wg.Done()
			_, err := svc.RecordDownload(cert.CertificateID)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	got, err := svc.GetByKey(cert.ID)
	require.NoError(t, err)
	assert.Equal(t, downloads, got.DownloadCount)
	assert.NotNil(t, got.DownloadedAt)
}

func TestRecordDownloadUnknownID(t *testing.T) {
	svc := newTestService(newMemStore())

	_, err := svc.RecordDownload("TC-DOESNOT-EXIST")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRevokeIsIdempotent(t *testing.T) {
	store := newMemStore()
	svc := newTestService(store)

	cert, err := svc.Issue(testIssueInput())
	require.NoError(t, err)

	require.NoError(t, svc.Revoke(cert.ID))
	require.NoError(t, svc.Revoke(cert.ID))

	got, err := svc.GetByKey(cert.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)
}

func TestRevokedCertificateHiddenFromPublicLookups(t *testing.T) {
	store := newMemStore()
	svc := newTestService(store)

	cert, err := svc.Issue(testIssueInput())
	require.NoError(t, err)
	require.NoError(t, svc.Revoke(cert.ID))

	_, err = svc.GetByCertificateID(cert.CertificateID)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = svc.RecordDownload(cert.CertificateID)
	assert.ErrorIs(t, err, ErrNotFound)

	// Admin fetch by key still sees the row.
	got, err := svc.GetByKey(cert.ID)
	require.NoError(t, err)
	assert.Equal(t, cert.CertificateID, got.CertificateID)
}

func TestUpdateRejectsIdentifierChanges(t *testing.T) {
	store := newMemStore()
	svc := newTestService(store)

	cert, err := svc.Issue(testIssueInput())
	require.NoError(t, err)

	forged := "TC-FORGED-AAAAA"
	_, err = svc.Update(cert.ID, UpdatePatch{CertificateID: &forged})
	assert.ErrorIs(t, err, ErrImmutableField)

	code := "ZZZZZZZZ"
	_, err = svc.Update(cert.ID, UpdatePatch{VerificationCode: &code})
	assert.ErrorIs(t, err, ErrImmutableField)

	// The original identifier still resolves.
	got, err := svc.GetByCertificateID(cert.CertificateID)
	require.NoError(t, err)
	assert.Equal(t, cert.VerificationCode, got.VerificationCode)
}

func TestUpdateAppliesPatchAndValidates(t *testing.T) {
	store := newMemStore()
	svc := newTestService(store)

	cert, err := svc.Issue(testIssueInput())
	require.NoError(t, err)

	grade := "A+"
	verified := true
	updated, err := svc.Update(cert.ID, UpdatePatch{Grade: &grade, IsVerified: &verified})
	require.NoError(t, err)
	assert.Equal(t, "A+", updated.Grade)
	assert.True(t, updated.IsVerified)

	badScore := -3.0
	_, err = svc.Update(cert.ID, UpdatePatch{Score: &badScore})
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "score")

	badEmail := "nope"
	_, err = svc.Update(cert.ID, UpdatePatch{StudentEmail: &badEmail})
	require.ErrorAs(t, err, &verr)
	assert.Contains(t, verr.Fields, "student_email")
}

func TestUpdateReactivates(t *testing.T) {
	store := newMemStore()
	svc := newTestService(store)

	cert, err := svc.Issue(testIssueInput())
	require.NoError(t, err)
	require.NoError(t, svc.Revoke(cert.ID))

	active := true
	updated, err := svc.Update(cert.ID, UpdatePatch{IsActive: &active})
	require.NoError(t, err)
	assert.True(t, updated.IsActive)

	got, err := svc.GetByCertificateID(cert.CertificateID)
	require.NoError(t, err)
	assert.Equal(t, cert.ID, got.ID)
}

func TestListFiltersAndPaginates(t *testing.T) {
	store := newMemStore()
	svc := newTestService(store)

	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		input := testIssueInput()
		input.UserID = uint(100 + i%2)
		completed := base.AddDate(0, 0, i)
		input.CompletionDate = &completed
		_, err := svc.Issue(input)
		require.NoError(t, err)
	}

	rows, total, err := svc.List(ListFilter{}, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	require.Len(t, rows, 3)
	// Most recent completion first.
	assert.True(t, rows[0].CompletionDate.After(rows[1].CompletionDate))

	rows, total, err = svc.List(ListFilter{UserID: 100}, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	for _, row := range rows {
		assert.Equal(t, uint(100), row.UserID)
	}
}

func TestListActiveScoping(t *testing.T) {
	store := newMemStore()
	svc := newTestService(store)

	first, err := svc.Issue(testIssueInput())
	require.NoError(t, err)
	_, err = svc.Issue(testIssueInput())
	require.NoError(t, err)
	require.NoError(t, svc.Revoke(first.ID))

	// Default scope hides revoked rows.
	_, total, err := svc.List(ListFilter{}, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)

	// Admin "all" scope sees both.
	_, total, err = svc.List(ListFilter{IncludeInactive: true}, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)

	// Explicit inactive-only filter.
	inactive := false
	rows, total, err := svc.List(ListFilter{Active: &inactive}, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, rows, 1)
	assert.Equal(t, first.ID, rows[0].ID)
}

func TestValidationErrorMessage(t *testing.T) {
	err := &ValidationError{Fields: map[string]string{
		"student_email": "Invalid email!",
		"course_id":     "Course is required!",
	}}

	// Fields are reported in a stable order.
	assert.Equal(t, "validation failed: course_id: Course is required!; student_email: Invalid email!", err.Error())
	assert.False(t, errors.Is(err, ErrNotFound))
}
