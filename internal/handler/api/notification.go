package api

import (
	"errors"
	"net/http"

	resdto "gocery/internal/handler/dto/response"
	"gocery/internal/handler/httperr"
	"gocery/internal/handler/middleware"
	"gocery/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type NotificationHandler struct {
	notificationQueries queries.NotificationQueries
}

func NewNotificationHandler(notificationQueries queries.NotificationQueries) *NotificationHandler {
	return &NotificationHandler{notificationQueries: notificationQueries}
}

// @Summary List notifications
// @Description List the authenticated user's notifications with the unread count, newest first
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Page size"
// @Param after query string false "Cursor from the previous page"
// @Success 200 {object} resdto.NotificationListResponse
// @Failure 400 {object} httperr.Response
// @Router /notifications [get]
func (h *NotificationHandler) List(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusInternalServerError, errNoAuthContext, "Internal server error", nil)
		return
	}

	limit, cursor := pageParams(c)

	items, next, err := h.notificationQueries.ListByUser(c.Request.Context(), userID, cursor, limit)
	if err != nil {
		if errors.Is(err, queries.ErrInvalidCursor) {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid cursor", nil)
			return
		}
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	unread, err := h.notificationQueries.UnreadCount(c.Request.Context(), userID)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	resp := resdto.FromNotificationViews(items, unread)
	if next != nil {
		resp.NextCursor = &next.After
	}
	c.JSON(http.StatusOK, resp)
}
