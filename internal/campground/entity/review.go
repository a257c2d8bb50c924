package entity

import "time"

// Review is a rating left on a campground. AuthorID is immutable once set.
type Review struct {
	ID           int64
	CampgroundID int64
	AuthorID     int64
	AuthorName   string
	Rating       int16
	Body         string
	CreatedAt    time.Time
}

type NewReview struct {
	ID           int64
	CampgroundID int64
	AuthorID     int64
	Rating       int16
	Body         string
}
