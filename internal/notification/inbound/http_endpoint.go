package inbound

import (
	"github.com/camporahq/campora/internal/notification/entity"
	"github.com/camporahq/campora/internal/notification/usecase"
	"github.com/camporahq/campora/internal/pkg/router"
	"github.com/samber/lo"
)

// HTTPEndpoint exposes the notification inbox.
type HTTPEndpoint struct {
	uc uc
}

// List returns the caller's notifications, newest first.
// @Summary List notifications
// @Tags Notification
// @Produce json
// @Param limit query int false "Page size"
// @Param offset query int false "Offset"
// @Success 200 {object} router.successResponse{data=[]NotificationItem} "Notifications"
// @Failure 401 {object} router.errorResponse "You must be signed in first"
// @Router /api/v1/notifications [get]
func (h *HTTPEndpoint) List(r *router.Request) (any, error) {
	limit, err := r.GetQueryInt32("limit")
	if err != nil {
		return nil, err
	}
	offset, err := r.GetQueryInt32("offset")
	if err != nil {
		return nil, err
	}

	items, err := h.uc.List(r.Context(), usecase.ListInput{Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}

	return lo.Map(items, func(n entity.Notification, _ int) NotificationItem {
		return NotificationItem{
			ID:        n.ID,
			Kind:      n.Kind.String(),
			Data:      n.Data,
			IsRead:    n.IsRead,
			CreatedAt: n.CreatedAt,
		}
	}), nil
}
