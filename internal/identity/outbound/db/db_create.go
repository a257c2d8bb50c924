package db

import (
	"context"

	"github.com/camporahq/campora/internal/identity/entity"
)

func (s *DB) CreateUser(ctx context.Context, in entity.NewUser) (err error) {
	ctx, span := s.startSpan(ctx, "CreateUser")
	defer func() { s.endSpan(span, err) }()

	query := `
		INSERT INTO users (id, email, username, role, is_verified, google_id)
		VALUES ($1, $2, $3, $4, $5, NULLIF($6, ''))`

	_, err = s.conn.Exec(ctx, query, in.ID, in.Email, in.Username, in.Role, in.IsVerified, in.GoogleID)
	return s.mapError(err)
}
