package db

import (
	"context"

	"github.com/camporahq/campora/internal/campground/entity"
)

func (s *DB) ListReviewsByCampground(ctx context.Context, campgroundID int64) (_ []entity.Review, err error) {
	ctx, span := s.startSpan(ctx, "ListReviewsByCampground")
	defer func() { s.endSpan(span, err) }()

	query := `
		SELECT r.id, r.campground_id, r.author_id, u.username, r.rating, r.body, r.created_at
		FROM reviews r
		JOIN users u ON u.id = r.author_id
		WHERE r.campground_id = $1
		ORDER BY r.created_at DESC`

	rows, err := s.conn.Query(ctx, query, campgroundID)
	if err != nil {
		return nil, s.mapError(err)
	}
	defer rows.Close()

	var reviews []entity.Review
	for rows.Next() {
		var rv entity.Review
		if err = rows.Scan(
			&rv.ID,
			&rv.CampgroundID,
			&rv.AuthorID,
			&rv.AuthorName,
			&rv.Rating,
			&rv.Body,
			&rv.CreatedAt,
		); err != nil {
			return nil, s.mapError(err)
		}
		reviews = append(reviews, rv)
	}
	if err = rows.Err(); err != nil {
		return nil, s.mapError(err)
	}

	return reviews, nil
}

func (s *DB) GetReviewByID(ctx context.Context, id, campgroundID int64) (_ *entity.Review, err error) {
	ctx, span := s.startSpan(ctx, "GetReviewByID")
	defer func() { s.endSpan(span, err) }()

	query := `
		SELECT r.id, r.campground_id, r.author_id, u.username, r.rating, r.body, r.created_at
		FROM reviews r
		JOIN users u ON u.id = r.author_id
		WHERE r.id = $1 AND r.campground_id = $2`

	var rv entity.Review
	err = s.conn.QueryRow(ctx, query, id, campgroundID).Scan(
		&rv.ID,
		&rv.CampgroundID,
		&rv.AuthorID,
		&rv.AuthorName,
		&rv.Rating,
		&rv.Body,
		&rv.CreatedAt,
	)
	if err != nil {
		return nil, s.mapError(err)
	}

	return &rv, nil
}

func (s *DB) CreateReview(ctx context.Context, in entity.NewReview) (err error) {
	ctx, span := s.startSpan(ctx, "CreateReview")
	defer func() { s.endSpan(span, err) }()

	query := `
		INSERT INTO reviews (id, campground_id, author_id, rating, body)
		VALUES ($1, $2, $3, $4, $5)`

	_, err = s.conn.Exec(ctx, query, in.ID, in.CampgroundID, in.AuthorID, in.Rating, in.Body)
	return s.mapError(err)
}

func (s *DB) DeleteReview(ctx context.Context, id, campgroundID int64) (err error) {
	ctx, span := s.startSpan(ctx, "DeleteReview")
	defer func() { s.endSpan(span, err) }()

	query := `DELETE FROM reviews WHERE id = $1 AND campground_id = $2`

	_, err = s.conn.Exec(ctx, query, id, campgroundID)
	return s.mapError(err)
}
