package entity

import "time"

// Campground is a listed site. AuthorID is set at creation and never changes;
// it is the basis for mutation authorization.
type Campground struct {
	ID          int64
	Title       string
	Description string
	Location    string
	Price       float64
	ImageURL    string
	AuthorID    int64
	AuthorName  string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type NewCampground struct {
	ID          int64
	Title       string
	Description string
	Location    string
	Price       float64
	AuthorID    int64
}

type UpdateCampground struct {
	ID          int64
	Title       string
	Description string
	Location    string
	Price       float64
}

// ListFilter narrows and pages the campground listing.
type ListFilter struct {
	Search string
	Limit  int32
	Offset int32
}
