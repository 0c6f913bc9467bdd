package handler

import (
	"net/http"

	"app/internal/config"
	"app/internal/middleware"
	"app/internal/notify"

	"github.com/labstack/echo/v4"
)

// /notificationsのHTTP。カート・ウィッシュリスト操作後のフィードバックを読める。
type NotificationHandler struct {
	feed *notify.Feed
}

// DI
func NewNotificationHandler(feed *notify.Feed) *NotificationHandler {
	return &NotificationHandler{feed: feed}
}

type NotificationListResponse struct {
	Items []notify.Notification `json:"items"`
}

func (h *NotificationHandler) RegisterRoutes(e *echo.Echo, cfg config.Config) {
	g := e.Group("/notifications")
	g.Use(middleware.AuthJWT(cfg))

	g.GET("", h.list)
	g.DELETE("/:id", h.dismiss)
}

func (h *NotificationHandler) list(c echo.Context) error {
	return c.JSON(http.StatusOK, NotificationListResponse{Items: h.feed.Items()})
}

func (h *NotificationHandler) dismiss(c echo.Context) error {
	if !h.feed.Dismiss(c.Param("id")) {
		return c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
	}
	return c.NoContent(http.StatusNoContent)
}
