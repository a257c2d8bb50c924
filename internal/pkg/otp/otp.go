package otp

import (
	"crypto/rand"
	"crypto/subtle"
	"math/big"
	"strconv"
	"time"
)

const (
	codeMin = 100000
	codeMax = 999999
)

// Status classifies the outcome of checking a submitted code.
type Status int

const (
	// StatusValid means the submitted code matches the stored, unexpired code.
	StatusValid Status = iota
	// StatusNoCode means no code has been issued (or it was already consumed).
	StatusNoCode
	// StatusExpired means a code exists but its expiry has passed.
	StatusExpired
	// StatusMismatch means the submitted code does not match the stored code.
	StatusMismatch
)

// String returns the string representation of the status.
func (s Status) String() string {
	switch s {
	case StatusValid:
		return "Valid"
	case StatusNoCode:
		return "NoCode"
	case StatusExpired:
		return "Expired"
	case StatusMismatch:
		return "Mismatch"
	default:
		return "Unknown"
	}
}

// Generator defines the contract for creating login codes.
type Generator interface {
	// Generate returns a new 6-digit numeric code.
	Generate() (string, error)
}

// CodeGenerator implements Generator with crypto/rand.
type CodeGenerator struct{}

// NewCodeGenerator constructs a CodeGenerator.
func NewCodeGenerator() *CodeGenerator {
	return &CodeGenerator{}
}

// Generate returns a uniform random code in [100000, 999999].
//
// crypto/rand is used because the code is a security credential; a
// general-purpose PRNG is not acceptable here.
func (*CodeGenerator) Generate() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(codeMax-codeMin+1))
	if err != nil {
		return "", err
	}

	return strconv.FormatInt(n.Int64()+codeMin, 10), nil
}

// Verify checks a submitted code against the stored code and expiry.
//
// The stored state is considered absent when either the code or the expiry is
// zero. The exact expiry instant counts as expired. The comparison is
// constant time so the mismatch path does not leak code prefixes.
func Verify(submitted, stored string, expiresAt, now time.Time) Status {
	if stored == "" || expiresAt.IsZero() {
		return StatusNoCode
	}

	if !now.Before(expiresAt) {
		return StatusExpired
	}

	if subtle.ConstantTimeCompare([]byte(submitted), []byte(stored)) != 1 {
		return StatusMismatch
	}

	return StatusValid
}
