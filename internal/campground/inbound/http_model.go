package inbound

import "time"

type CampgroundItem struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	Price       float64   `json:"price"`
	ImageURL    string    `json:"image_url"`
	AuthorID    int64     `json:"author_id"`
	AuthorName  string    `json:"author_name"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type ListResponse struct {
	Page        int32            `json:"page"`
	Size        int32            `json:"size"`
	Total       int64            `json:"total"`
	Campgrounds []CampgroundItem `json:"campgrounds"`
}

type ReviewItem struct {
	ID         int64     `json:"id"`
	AuthorID   int64     `json:"author_id"`
	AuthorName string    `json:"author_name"`
	Rating     int16     `json:"rating"`
	Body       string    `json:"body"`
	CreatedAt  time.Time `json:"created_at"`
}

type DetailResponse struct {
	CampgroundItem
	Reviews []ReviewItem `json:"reviews"`
}

type CreateRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Location    string  `json:"location"`
	Price       float64 `json:"price"`
}

type CreateResponse struct {
	ID int64 `json:"id"`
}

type UpdateRequest struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Location    string  `json:"location"`
	Price       float64 `json:"price"`
}

type UploadImageResponse struct {
	ImageURL string `json:"image_url"`
}

type ReviewCreateRequest struct {
	Rating int16  `json:"rating"`
	Body   string `json:"body"`
}

type ReviewCreateResponse struct {
	ID int64 `json:"id"`
}
