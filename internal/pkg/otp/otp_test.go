package otp

import (
	"regexp"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCodeGeneratorGenerate(t *testing.T) {
	gen := NewCodeGenerator()
	pattern := regexp.MustCompile(`^[0-9]{6}$`)

	for range 200 {
		code, err := gen.Generate()
		require.NoError(t, err)
		require.True(t, pattern.MatchString(code), "code %q is not 6 digits", code)

		n, err := strconv.Atoi(code)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, n, codeMin)
		assert.LessOrEqual(t, n, codeMax)
	}
}

func TestVerify(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		submitted string
		stored    string
		expiresAt time.Time
		want      Status
	}{
		{
			name:      "NoStoredCode",
			submitted: "123456",
			stored:    "",
			expiresAt: now.Add(10 * time.Minute),
			want:      StatusNoCode,
		},
		{
			name:      "NoExpiry",
			submitted: "123456",
			stored:    "123456",
			expiresAt: time.Time{},
			want:      StatusNoCode,
		},
		{
			name:      "ExpiredPast",
			submitted: "123456",
			stored:    "123456",
			expiresAt: now.Add(-time.Second),
			want:      StatusExpired,
		},
		{
			name:      "ExpiredAtExactInstant",
			submitted: "123456",
			stored:    "123456",
			expiresAt: now,
			want:      StatusExpired,
		},
		{
			name:      "Mismatch",
			submitted: "654321",
			stored:    "123456",
			expiresAt: now.Add(10 * time.Minute),
			want:      StatusMismatch,
		},
		{
			name:      "Valid",
			submitted: "123456",
			stored:    "123456",
			expiresAt: now.Add(10 * time.Minute),
			want:      StatusValid,
		},
		{
			name:      "ValidJustBeforeExpiry",
			submitted: "123456",
			stored:    "123456",
			expiresAt: now.Add(time.Nanosecond),
			want:      StatusValid,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Verify(tc.submitted, tc.stored, tc.expiresAt, now)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "Valid", StatusValid.String())
	assert.Equal(t, "NoCode", StatusNoCode.String())
	assert.Equal(t, "Expired", StatusExpired.String())
	assert.Equal(t, "Mismatch", StatusMismatch.String())
	assert.Equal(t, "Unknown", Status(99).String())
}
