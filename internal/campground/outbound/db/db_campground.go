package db

import (
	"context"

	"github.com/camporahq/campora/internal/campground/entity"
)

const campgroundColumns = `c.id, c.title, c.description, c.location, c.price,
	COALESCE(c.image_url, ''), c.author_id, u.username, c.created_at, c.updated_at`

func (s *DB) GetCampgroundByID(ctx context.Context, id int64) (_ *entity.Campground, err error) {
	ctx, span := s.startSpan(ctx, "GetCampgroundByID")
	defer func() { s.endSpan(span, err) }()

	query := `
		SELECT ` + campgroundColumns + `
		FROM campgrounds c
		JOIN users u ON u.id = c.author_id
		WHERE c.id = $1`

	var cg entity.Campground
	err = s.conn.QueryRow(ctx, query, id).Scan(
		&cg.ID,
		&cg.Title,
		&cg.Description,
		&cg.Location,
		&cg.Price,
		&cg.ImageURL,
		&cg.AuthorID,
		&cg.AuthorName,
		&cg.CreatedAt,
		&cg.UpdatedAt,
	)
	if err != nil {
		return nil, s.mapError(err)
	}

	return &cg, nil
}

func (s *DB) ListCampgrounds(ctx context.Context, filter entity.ListFilter) (_ []entity.Campground, _ int64, err error) {
	ctx, span := s.startSpan(ctx, "ListCampgrounds")
	defer func() { s.endSpan(span, err) }()

	query := `
		SELECT ` + campgroundColumns + `, COUNT(*) OVER()
		FROM campgrounds c
		JOIN users u ON u.id = c.author_id
		WHERE ($1 = '' OR c.title ILIKE '%' || $1 || '%' OR c.location ILIKE '%' || $1 || '%')
		ORDER BY c.created_at DESC
		LIMIT $2 OFFSET $3`

	rows, err := s.conn.Query(ctx, query, filter.Search, filter.Limit, filter.Offset)
	if err != nil {
		return nil, 0, s.mapError(err)
	}
	defer rows.Close()

	var (
		campgrounds []entity.Campground
		total       int64
	)
	for rows.Next() {
		var cg entity.Campground
		if err = rows.Scan(
			&cg.ID,
			&cg.Title,
			&cg.Description,
			&cg.Location,
			&cg.Price,
			&cg.ImageURL,
			&cg.AuthorID,
			&cg.AuthorName,
			&cg.CreatedAt,
			&cg.UpdatedAt,
			&total,
		); err != nil {
			return nil, 0, s.mapError(err)
		}
		campgrounds = append(campgrounds, cg)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, s.mapError(err)
	}

	return campgrounds, total, nil
}

func (s *DB) CreateCampground(ctx context.Context, in entity.NewCampground) (err error) {
	ctx, span := s.startSpan(ctx, "CreateCampground")
	defer func() { s.endSpan(span, err) }()

	query := `
		INSERT INTO campgrounds (id, title, description, location, price, author_id)
		VALUES ($1, $2, $3, $4, $5, $6)`

	_, err = s.conn.Exec(ctx, query, in.ID, in.Title, in.Description, in.Location, in.Price, in.AuthorID)
	return s.mapError(err)
}

func (s *DB) UpdateCampground(ctx context.Context, in entity.UpdateCampground) (err error) {
	ctx, span := s.startSpan(ctx, "UpdateCampground")
	defer func() { s.endSpan(span, err) }()

	query := `
		UPDATE campgrounds
		SET title = $2, description = $3, location = $4, price = $5, updated_at = NOW()
		WHERE id = $1`

	_, err = s.conn.Exec(ctx, query, in.ID, in.Title, in.Description, in.Location, in.Price)
	return s.mapError(err)
}

func (s *DB) UpdateCampgroundImage(ctx context.Context, id int64, imageURL string) (err error) {
	ctx, span := s.startSpan(ctx, "UpdateCampgroundImage")
	defer func() { s.endSpan(span, err) }()

	query := `
		UPDATE campgrounds
		SET image_url = $2, updated_at = NOW()
		WHERE id = $1`

	_, err = s.conn.Exec(ctx, query, id, imageURL)
	return s.mapError(err)
}

// DeleteCampground removes the campground; its reviews go with it via the
// foreign key cascade.
func (s *DB) DeleteCampground(ctx context.Context, id int64) (err error) {
	ctx, span := s.startSpan(ctx, "DeleteCampground")
	defer func() { s.endSpan(span, err) }()

	query := `DELETE FROM campgrounds WHERE id = $1`

	_, err = s.conn.Exec(ctx, query, id)
	return s.mapError(err)
}
