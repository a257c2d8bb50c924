package event

const ReviewCreatedDestination string = "review_created"
const ReviewCreatedConsumerNotification string = "review_created_notification"

type ReviewCreatedMessage struct {
	ReviewID       int64  `json:"review_id"`
	CampgroundID   int64  `json:"campground_id"`
	CampgroundName string `json:"campground_name"`
	OwnerID        int64  `json:"owner_id"`
	AuthorID       int64  `json:"author_id"`
	AuthorName     string `json:"author_name"`
	Rating         int16  `json:"rating"`
}
