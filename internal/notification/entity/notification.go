package entity

import (
	"time"

	"github.com/camporahq/campora/internal/pkg/valueobject"
)

// Kind identifies what triggered a notification.
type Kind string

const (
	KindWelcome        Kind = "welcome"
	KindReviewReceived Kind = "review_received"
)

// String returns the string representation of the kind.
func (k Kind) String() string {
	return string(k)
}

type Notification struct {
	ID        int64
	UserID    int64
	Kind      Kind
	Data      valueobject.JSONMap
	IsRead    bool
	CreatedAt time.Time
}

type CreateNotification struct {
	ID     int64
	UserID int64
	Kind   Kind
	Data   valueobject.JSONMap
}
