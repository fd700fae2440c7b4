package navigation

import (
	"site-cms/core/loader"
	"site-cms/core/logger"
	"site-cms/core/response"
	"site-cms/core/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for navigation.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the navigation routes.
func (h *Handler) RegisterRoutes(r loader.Routers) {
	r.Public.Get("/navigation", h.HandleGetPublic)

	r.Admin.Put("/navigation", h.HandleUpdate)
	r.Admin.Get("/navigation/:id", h.HandleGet)
	r.Admin.Delete("/navigation/:id", h.HandleDelete)
}

// HandleGetPublic returns the menu, dropdowns and theme.
// @Summary Get Navigation
// @Tags navigation
// @Produce json
// @Success 200 {object} response.Envelope{data=PublicNavigation}
// @Failure 500 {object} response.Envelope
// @Router /navigation [get]
func (h *Handler) HandleGetPublic(c *fiber.Ctx) error {
	nav, err := h.service.GetPublic(c.UserContext())
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Navigation fetch failed", zap.Error(err))
		return response.Fail(c, err)
	}
	return response.OK(c, nav)
}

// HandleGet returns one nav item with its dropdown.
// @Summary Get Navigation Item
// @Tags navigation
// @Produce json
// @Security BearerAuth
// @Param id path string true "Nav item ID"
// @Success 200 {object} response.Envelope{data=NavItem}
// @Failure 404 {object} response.Envelope
// @Router /admin/navigation/{id} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	item, err := h.service.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return response.Fail(c, err)
	}
	return response.OK(c, item)
}

// HandleUpdate saves nav items and dropdowns.
// @Summary Update Navigation
// @Description Upserts nav items by key and rewrites the dropdowns in the payload. Nav items not in the payload are kept.
// @Tags navigation
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body UpdateRequest true "Navigation"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /admin/navigation [put]
func (h *Handler) HandleUpdate(c *fiber.Ctx) error {
	var req UpdateRequest
	if err := validation.ParseBody(c, &req); err != nil {
		return response.Fail(c, err)
	}

	if err := h.service.Replace(c.UserContext(), req); err != nil {
		return response.Fail(c, err)
	}
	return response.Message(c, "Navigation updated successfully", nil)
}

// HandleDelete removes a nav item and its dropdown.
// @Summary Delete Navigation Item
// @Tags navigation
// @Security BearerAuth
// @Param id path string true "Nav item ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /admin/navigation/{id} [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.UserContext(), c.Params("id")); err != nil {
		return response.Fail(c, err)
	}
	return response.Message(c, "Navigation item deleted successfully", nil)
}
