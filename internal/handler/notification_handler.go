package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"roster/internal/service"
)

// NotificationHandler exposes stored notifications.
type NotificationHandler struct {
	svc service.NotificationService
}

// NewNotificationHandler creates a new notification handler.
func NewNotificationHandler(svc service.NotificationService) *NotificationHandler {
	return &NotificationHandler{svc: svc}
}

// CreateNotification godoc
// @Summary Create notification
// @Description Stores the notification and queues push delivery. Without user_id it is broadcast.
// @Tags notifications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.CreateNotificationInput true "Notification"
// @Success 201 {object} model.Notification
// @Failure 400 {object} errors.ErrorResponse
// @Router /notifications [post]
func (h *NotificationHandler) CreateNotification(c echo.Context) error {
	var req service.CreateNotificationInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	n, err := h.svc.Create(c.Request().Context(), req)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusCreated, n)
}

// ListNotifications godoc
// @Summary List notifications
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param user_id query int false "Only notifications addressed to this user"
// @Success 200 {array} model.Notification
// @Failure 400 {object} errors.ErrorResponse
// @Router /notifications [get]
func (h *NotificationHandler) ListNotifications(c echo.Context) error {
	userID, err := queryID(c, "user_id")
	if err != nil {
		return err
	}
	items, err := h.svc.List(c.Request().Context(), userID)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, items)
}

// DeleteNotification godoc
// @Summary Delete notification
// @Tags notifications
// @Security BearerAuth
// @Param id path int true "Notification ID"
// @Success 204
// @Failure 404 {object} errors.ErrorResponse
// @Router /notifications/{id} [delete]
func (h *NotificationHandler) DeleteNotification(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return fail(err)
	}
	return c.NoContent(http.StatusNoContent)
}
