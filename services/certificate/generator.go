package certificate

import (
	"math/rand"
	"strconv"
	"strings"
	"time"
)

const (
	// CertificateIDPrefix tags every public certificate identifier.
	CertificateIDPrefix = "TC"

	idSuffixLength         = 5
	verificationCodeLength = 8

	idAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"
)

// Generator produces the public certificate identifier and the verification
// code. The two tokens are drawn independently: the ID embeds the issuance
// timestamp, the code is pure entropy, so leaking one reveals nothing about
// the other. Generation never fails; the store's unique indexes are the
// authoritative defense against the (negligible) collision probability.
type Generator struct {
	now  func() time.Time
	rand *rand.Rand
}

// NewGenerator returns a Generator backed by the wall clock and a
// time-seeded entropy source.
func NewGenerator() *Generator {
	return &Generator{
		now:  time.Now,
		rand: rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// NewGeneratorWith allows tests to pin the clock and entropy source.
func NewGeneratorWith(now func() time.Time, src rand.Source) *Generator {
	return &Generator{now: now, rand: rand.New(src)}
}

// GenerateCertificateID returns a human-copyable identifier of the form
// TC-<base36 timestamp>-<random suffix>, upper-cased.
func (g *Generator) GenerateCertificateID() string {
	ts := strings.ToUpper(strconv.FormatInt(g.now().UnixMilli(), 36))
	return CertificateIDPrefix + "-" + ts + "-" + g.randomString(idSuffixLength)
}

// GenerateVerificationCode returns an 8-character alphanumeric code.
func (g *Generator) GenerateVerificationCode() string {
	return g.randomString(verificationCodeLength)
}

func (g *Generator) randomString(n int) string {
	var b strings.Builder
	b.Grow(n)
	for i := 0; i < n; i++ {
		b.WriteByte(idAlphabet[g.rand.Intn(len(idAlphabet))])
	}
	return b.String()
}
