package certificate

import (
	"fmt"
	"testing"
	"time"

	certModels "techclass/models/certificate"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormLogger.Default.LogMode(gormLogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&certModels.Certificate{}))
	return db
}

func storedCertificate(suffix string) *certModels.Certificate {
	return &certModels.Certificate{
		CertificateID:    "TC-LQ8F3K-" + suffix,
		VerificationCode: suffix + "XYZ",
		CourseID:         7,
		UserID:           12,
		CourseName:       "Advanced Go",
		StudentName:      "Priya Sharma",
		StudentEmail:     "priya@example.com",
		CompletionDate:   time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC),
		IssuedBy:         "TechClass Academy",
		IsActive:         true,
	}
}

func TestGormStoreCreateDuplicate(t *testing.T) {
	store := NewGormStore(openTestDB(t))

	first := storedCertificate("AAAAA")
	require.NoError(t, store.Create(first))
	assert.NotZero(t, first.ID)

	// Same certificate ID, different code.
	dupID := storedCertificate("BBBBB")
	dupID.CertificateID = first.CertificateID
	assert.ErrorIs(t, store.Create(dupID), ErrDuplicateIdentifier)

	// Same code, different certificate ID.
	dupCode := storedCertificate("CCCCC")
	dupCode.VerificationCode = first.VerificationCode
	assert.ErrorIs(t, store.Create(dupCode), ErrDuplicateIdentifier)
}

func TestGormStoreActiveScopedLookups(t *testing.T) {
	store := NewGormStore(openTestDB(t))

	cert := storedCertificate("AAAAA")
	require.NoError(t, store.Create(cert))

	byID, err := store.FindByCertificateID(cert.CertificateID)
	require.NoError(t, err)
	assert.Equal(t, cert.ID, byID.ID)

	byCode, err := store.FindByVerificationCode(cert.VerificationCode)
	require.NoError(t, err)
	assert.Equal(t, cert.ID, byCode.ID)

	_, err = store.Deactivate(cert.ID)
	require.NoError(t, err)

	_, err = store.FindByCertificateID(cert.CertificateID)
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = store.FindByVerificationCode(cert.VerificationCode)
	assert.ErrorIs(t, err, ErrNotFound)

	// Key lookup still reaches the revoked row.
	byKey, err := store.FindByKey(cert.ID)
	require.NoError(t, err)
	assert.False(t, byKey.IsActive)
}

func TestGormStoreList(t *testing.T) {
	store := NewGormStore(openTestDB(t))

	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		cert := storedCertificate(fmt.Sprintf("%05d", i))
		cert.UserID = uint(100 + i%2)
		cert.CompletionDate = base.AddDate(0, 0, i)
		cert.IsVerified = i%2 == 0
		require.NoError(t, store.Create(cert))
	}

	rows, total, err := store.List(ListFilter{}, 1, 3)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	require.Len(t, rows, 3)
	assert.True(t, rows[0].CompletionDate.After(rows[1].CompletionDate))

	// Second page carries the remainder.
	rows, _, err = store.List(ListFilter{}, 2, 3)
	require.NoError(t, err)
	assert.Len(t, rows, 2)

	verified := true
	rows, total, err = store.List(ListFilter{Verified: &verified}, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(3), total)
	for _, row := range rows {
		assert.True(t, row.IsVerified)
	}

	rows, total, err = store.List(ListFilter{UserID: 101}, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)
	for _, row := range rows {
		assert.Equal(t, uint(101), row.UserID)
	}
}

func TestGormStoreListActiveScoping(t *testing.T) {
	store := NewGormStore(openTestDB(t))

	first := storedCertificate("AAAAA")
	second := storedCertificate("BBBBB")
	require.NoError(t, store.Create(first))
	require.NoError(t, store.Create(second))
	_, err := store.Deactivate(first.ID)
	require.NoError(t, err)

	_, total, err := store.List(ListFilter{}, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)

	_, total, err = store.List(ListFilter{IncludeInactive: true}, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(2), total)

	inactive := false
	rows, total, err := store.List(ListFilter{Active: &inactive}, 1, 10)
	require.NoError(t, err)
	assert.Equal(t, int64(1), total)
	require.Len(t, rows, 1)
	assert.Equal(t, first.ID, rows[0].ID)
}

func TestGormStoreUpdate(t *testing.T) {
	store := NewGormStore(openTestDB(t))

	cert := storedCertificate("AAAAA")
	require.NoError(t, store.Create(cert))

	grade := "A+"
	skills := []string{"Go", "SQL"}
	updated, err := store.Update(cert.ID, UpdatePatch{Grade: &grade, Skills: &skills})
	require.NoError(t, err)
	assert.Equal(t, "A+", updated.Grade)
	assert.Equal(t, []string{"Go", "SQL"}, []string(updated.Skills))
	// Untouched fields survive a partial update.
	assert.Equal(t, cert.StudentName, updated.StudentName)

	_, err = store.Update(9999, UpdatePatch{Grade: &grade})
	assert.ErrorIs(t, err, ErrNotFound)

	// An empty patch is a no-op fetch.
	same, err := store.Update(cert.ID, UpdatePatch{})
	require.NoError(t, err)
	assert.Equal(t, "A+", same.Grade)
}

func TestGormStoreDeactivate(t *testing.T) {
	store := NewGormStore(openTestDB(t))

	cert := storedCertificate("AAAAA")
	require.NoError(t, store.Create(cert))

	got, err := store.Deactivate(cert.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)

	// Deactivating again still succeeds against the same row.
	got, err = store.Deactivate(cert.ID)
	require.NoError(t, err)
	assert.False(t, got.IsActive)

	_, err = store.Deactivate(9999)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestGormStoreIncrementDownload(t *testing.T) {
	store := NewGormStore(openTestDB(t))

	cert := storedCertificate("AAAAA")
	require.NoError(t, store.Create(cert))

	at := time.Date(2025, 6, 2, 15, 4, 5, 0, time.UTC)
	got, err := store.IncrementDownload(cert.CertificateID, at)
	require.NoError(t, err)
	assert.Equal(t, 1, got.DownloadCount)
	require.NotNil(t, got.DownloadedAt)
	assert.Equal(t, at.Unix(), got.DownloadedAt.Unix())

	later := at.Add(time.Hour)
	got, err = store.IncrementDownload(cert.CertificateID, later)
	require.NoError(t, err)
	assert.Equal(t, 2, got.DownloadCount)
	assert.Equal(t, later.Unix(), got.DownloadedAt.Unix())

	// Revoked certificates do not accept downloads.
	_, err = store.Deactivate(cert.ID)
	require.NoError(t, err)
	_, err = store.IncrementDownload(cert.CertificateID, later)
	assert.ErrorIs(t, err, ErrNotFound)

	_, err = store.IncrementDownload("TC-UNKNOWN-ZZZZZ", at)
	assert.ErrorIs(t, err, ErrNotFound)
}
