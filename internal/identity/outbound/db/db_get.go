package db

import (
	"context"

	"github.com/camporahq/campora/internal/identity/entity"
	"github.com/jackc/pgx/v5/pgtype"
)

const userColumns = `id, email, username, role, is_verified,
	COALESCE(google_id, ''), otp_code, otp_expires_at, created_at, updated_at`

func (s *DB) scanUser(row interface{ Scan(dest ...any) error }) (*entity.User, error) {
	var (
		user      entity.User
		otpCode   pgtype.Text
		otpExpiry pgtype.Timestamptz
	)

	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.Username,
		&user.Role,
		&user.IsVerified,
		&user.GoogleID,
		&otpCode,
		&otpExpiry,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if otpCode.Valid && otpExpiry.Valid {
		user.OTP = entity.OTPState{Code: otpCode.String, ExpiresAt: otpExpiry.Time}
	}

	return &user, nil
}

func (s *DB) GetUserByEmail(ctx context.Context, email string) (_ *entity.User, err error) {
	ctx, span := s.startSpan(ctx, "GetUserByEmail")
	defer func() { s.endSpan(span, err) }()

	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	user, err := s.scanUser(s.conn.QueryRow(ctx, query, email))
	if err != nil {
		return nil, s.mapError(err)
	}

	return user, nil
}

func (s *DB) GetUserByID(ctx context.Context, id int64) (_ *entity.User, err error) {
	ctx, span := s.startSpan(ctx, "GetUserByID")
	defer func() { s.endSpan(span, err) }()

	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	user, err := s.scanUser(s.conn.QueryRow(ctx, query, id))
	if err != nil {
		return nil, s.mapError(err)
	}

	return user, nil
}

func (s *DB) GetUserByGoogleID(ctx context.Context, googleID string) (_ *entity.User, err error) {
	ctx, span := s.startSpan(ctx, "GetUserByGoogleID")
	defer func() { s.endSpan(span, err) }()

	query := `SELECT ` + userColumns + ` FROM users WHERE google_id = $1`

	user, err := s.scanUser(s.conn.QueryRow(ctx, query, googleID))
	if err != nil {
		return nil, s.mapError(err)
	}

	return user, nil
}
