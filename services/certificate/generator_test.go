package certificate

import (
	"math/rand"
	"regexp"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var certificateIDPattern = regexp.MustCompile(`^TC-[0-9A-Z]+-[0-9A-Z]{5}$`)
var verificationCodePattern = regexp.MustCompile(`^[0-9A-Z]{8}$`)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestGenerateCertificateIDFormat(t *testing.T) {
	at := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	gen := NewGeneratorWith(fixedClock(at), rand.NewSource(1))

	id := gen.GenerateCertificateID()

	require.Regexp(t, certificateIDPattern, id)

	// The middle segment is the issuance timestamp in base36
	parts := strings.Split(id, "-")
	require.Len(t, parts, 3)
	ts, err := strconv.ParseInt(strings.ToLower(parts[1]), 36, 64)
	require.NoError(t, err)
	assert.Equal(t, at.UnixMilli(), ts)
}

func TestGenerateVerificationCodeFormat(t *testing.T) {
	gen := NewGenerator()

	code := gen.GenerateVerificationCode()

	assert.Regexp(t, verificationCodePattern, code)
	assert.Len(t, code, 8)
}

func TestGeneratedPairsAreDistinct(t *testing.T) {
	// Advance the clock a millisecond per draw; back-to-back issuances in the
	// same process never share a timestamp segment.
	at := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	tick := func() time.Time {
		at = at.Add(time.Millisecond)
		return at
	}
	gen := NewGeneratorWith(tick, rand.NewSource(7))

	ids := make(map[string]bool)
	codes := make(map[string]bool)

	const n = 10000
	for i := 0; i < n; i++ {
		ids[gen.GenerateCertificateID()] = true
		codes[gen.GenerateVerificationCode()] = true
	}

	assert.Len(t, ids, n, "certificate IDs collided")
	// The 8-char code space is ~2.8e12; 10k draws should not collide
	assert.Len(t, codes, n, "verification codes collided")
}

func TestTokensAreIndependent(t *testing.T) {
	at := time.Date(2025, 3, 14, 9, 26, 53, 0, time.UTC)
	gen := NewGeneratorWith(fixedClock(at), rand.NewSource(42))

	id := gen.GenerateCertificateID()
	code := gen.GenerateVerificationCode()

	assert.NotContains(t, id, code)
	assert.NotContains(t, code, CertificateIDPrefix+"-")
}
