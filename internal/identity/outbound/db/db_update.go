package db

import (
	"context"
	"time"
)

func (s *DB) SetUserOTP(ctx context.Context, userID int64, code string, expiresAt time.Time) (err error) {
	ctx, span := s.startSpan(ctx, "SetUserOTP")
	defer func() { s.endSpan(span, err) }()

	query := `
		UPDATE users
		SET otp_code = $2, otp_expires_at = $3, updated_at = NOW()
		WHERE id = $1`

	_, err = s.conn.Exec(ctx, query, userID, code, expiresAt)
	return s.mapError(err)
}

func (s *DB) ClearUserOTP(ctx context.Context, userID int64) (err error) {
	ctx, span := s.startSpan(ctx, "ClearUserOTP")
	defer func() { s.endSpan(span, err) }()

	query := `
		UPDATE users
		SET otp_code = NULL, otp_expires_at = NULL, updated_at = NOW()
		WHERE id = $1`

	_, err = s.conn.Exec(ctx, query, userID)
	return s.mapError(err)
}

// ConsumeUserOTP clears the stored code and marks the account verified in a
// single statement so a code cannot survive a successful verification.
func (s *DB) ConsumeUserOTP(ctx context.Context, userID int64) (err error) {
	ctx, span := s.startSpan(ctx, "ConsumeUserOTP")
	defer func() { s.endSpan(span, err) }()

	query := `
		UPDATE users
		SET otp_code = NULL, otp_expires_at = NULL, is_verified = TRUE, updated_at = NOW()
		WHERE id = $1`

	_, err = s.conn.Exec(ctx, query, userID)
	return s.mapError(err)
}

func (s *DB) LinkGoogleAccount(ctx context.Context, userID int64, googleID string) (err error) {
	ctx, span := s.startSpan(ctx, "LinkGoogleAccount")
	defer func() { s.endSpan(span, err) }()

	query := `
		UPDATE users
		SET google_id = $2, is_verified = TRUE, updated_at = NOW()
		WHERE id = $1`

	_, err = s.conn.Exec(ctx, query, userID, googleID)
	return s.mapError(err)
}
