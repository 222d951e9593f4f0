package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"roster/internal/service"
)

// SubscriptionHandler manages browser push subscriptions.
type SubscriptionHandler struct {
	svc       service.SubscriptionService
	publicKey string
}

// NewSubscriptionHandler creates a new subscription handler. publicKey is the
// VAPID application server key handed to browsers.
func NewSubscriptionHandler(svc service.SubscriptionService, publicKey string) *SubscriptionHandler {
	return &SubscriptionHandler{svc: svc, publicKey: publicKey}
}

// PublicKeyResponse carries the VAPID public key.
type PublicKeyResponse struct {
	PublicKey string `json:"public_key"`
}

// Subscribe godoc
// @Summary Register push subscription
// @Description Upserts per (user, endpoint): 201 when created, 200 when keys were replaced.
// @Tags subscriptions
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body service.SubscribeInput true "Browser subscription"
// @Success 200 {object} model.Subscription
// @Success 201 {object} model.Subscription
// @Failure 400 {object} errors.ErrorResponse
// @Router /subscriptions [post]
func (h *SubscriptionHandler) Subscribe(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	var req service.SubscribeInput
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	sub, created, err := h.svc.Subscribe(c.Request().Context(), actor, req)
	if err != nil {
		return fail(err)
	}
	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}
	return c.JSON(status, sub)
}

// ListSubscriptions godoc
// @Summary List push subscriptions
// @Description Administrators see every subscription, other users their own.
// @Tags subscriptions
// @Produce json
// @Security BearerAuth
// @Success 200 {array} model.Subscription
// @Router /subscriptions [get]
func (h *SubscriptionHandler) ListSubscriptions(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	subs, err := h.svc.List(c.Request().Context(), actor)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, subs)
}

// DeleteSubscription godoc
// @Summary Delete push subscription
// @Tags subscriptions
// @Security BearerAuth
// @Param id path int true "Subscription ID"
// @Success 204
// @Failure 403 {object} errors.ErrorResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /subscriptions/{id} [delete]
func (h *SubscriptionHandler) DeleteSubscription(c echo.Context) error {
	actor, err := actorFrom(c)
	if err != nil {
		return err
	}
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.svc.Delete(c.Request().Context(), actor, id); err != nil {
		return fail(err)
	}
	return c.NoContent(http.StatusNoContent)
}

// PublicKey godoc
// @Summary VAPID public key
// @Tags subscriptions
// @Produce json
// @Success 200 {object} PublicKeyResponse
// @Router /push/public-key [get]
func (h *SubscriptionHandler) PublicKey(c echo.Context) error {
	return c.JSON(http.StatusOK, PublicKeyResponse{PublicKey: h.publicKey})
}
