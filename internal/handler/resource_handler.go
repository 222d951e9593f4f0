package handler

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"

	"roster/internal/repository"
	"roster/internal/service"
)

// maxResourceBody caps catalog request bodies.
const maxResourceBody = 1 << 20

// ResourceHandler serves JSON CRUD for one catalog model. Routes are
// documented per resource in docs/.
type ResourceHandler[T any] struct {
	svc     service.ResourceService[T]
	filters []string
}

// NewResourceHandler creates a CRUD handler. filters names the query
// parameters accepted by List; each must match a column holding an id.
func NewResourceHandler[T any](svc service.ResourceService[T], filters ...string) *ResourceHandler[T] {
	return &ResourceHandler[T]{svc: svc, filters: filters}
}

// Register mounts the five CRUD routes on g. Write routes are wrapped with mw.
func (h *ResourceHandler[T]) Register(g *echo.Group, path string, mw ...echo.MiddlewareFunc) {
	g.GET(path, h.List)
	g.GET(path+"/:id", h.Get)
	g.POST(path, h.Create, mw...)
	g.PUT(path+"/:id", h.Update, mw...)
	g.DELETE(path+"/:id", h.Delete, mw...)
}

func (h *ResourceHandler[T]) Create(c echo.Context) error {
	body, err := readBody(c)
	if err != nil {
		return err
	}
	entity, err := service.DecodeNew[T](body)
	if err != nil {
		return fail(err)
	}
	created, err := h.svc.Create(c.Request().Context(), entity)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusCreated, created)
}

func (h *ResourceHandler[T]) List(c echo.Context) error {
	var filter repository.Filter
	for _, name := range h.filters {
		id, err := queryID(c, name)
		if err != nil {
			return err
		}
		if id == nil {
			continue
		}
		if filter == nil {
			filter = repository.Filter{}
		}
		filter[name] = *id
	}

	items, err := h.svc.List(c.Request().Context(), filter)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, items)
}

func (h *ResourceHandler[T]) Get(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	entity, err := h.svc.Get(c.Request().Context(), id)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, entity)
}

// Update applies a partial JSON body; absent fields keep their stored value.
func (h *ResourceHandler[T]) Update(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	body, err := readBody(c)
	if err != nil {
		return err
	}
	entity, err := h.svc.Update(c.Request().Context(), id, body)
	if err != nil {
		return fail(err)
	}
	return c.JSON(http.StatusOK, entity)
}

func (h *ResourceHandler[T]) Delete(c echo.Context) error {
	id, err := parseID(c, "id")
	if err != nil {
		return err
	}
	if err := h.svc.Delete(c.Request().Context(), id); err != nil {
		return fail(err)
	}
	return c.NoContent(http.StatusNoContent)
}

func readBody(c echo.Context) ([]byte, error) {
	body, err := io.ReadAll(io.LimitReader(c.Request().Body, maxResourceBody))
	if err != nil {
		return nil, invalidBody(err)
	}
	return body, nil
}
