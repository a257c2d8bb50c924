package inbound

import (
	"time"

	"github.com/camporahq/campora/internal/pkg/valueobject"
)

type NotificationItem struct {
	ID        int64               `json:"id"`
	Kind      string              `json:"kind"`
	Data      valueobject.JSONMap `json:"data"`
	IsRead    bool                `json:"is_read"`
	CreatedAt time.Time           `json:"created_at"`
}
