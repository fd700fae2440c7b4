package theme

import (
	"site-cms/core/loader"
	"site-cms/core/response"
	"site-cms/core/validation"

	"github.com/gofiber/fiber/v2"
)

// Handler handles HTTP requests for the theme.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the theme routes.
func (h *Handler) RegisterRoutes(r loader.Routers) {
	r.Admin.Get("/theme", h.HandleGet)
	r.Admin.Put("/theme", h.HandleUpdate)
}

// HandleGet returns the stored theme.
// @Summary Get Theme
// @Tags theme
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope{data=Config}
// @Router /admin/theme [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	cfg, err := h.service.Get(c.UserContext())
	if err != nil {
		return response.Fail(c, err)
	}
	return response.OK(c, cfg)
}

// HandleUpdate saves the theme colors and branding.
// @Summary Update Theme
// @Tags theme
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body UpdateRequest true "Theme"
// @Success 200 {object} response.Envelope{data=Config}
// @Failure 400 {object} response.Envelope
// @Router /admin/theme [put]
func (h *Handler) HandleUpdate(c *fiber.Ctx) error {
	var req UpdateRequest
	if err := validation.ParseBody(c, &req); err != nil {
		return response.Fail(c, err)
	}

	cfg, err := h.service.Update(c.UserContext(), req)
	if err != nil {
		return response.Fail(c, err)
	}
	return response.Message(c, "Theme updated successfully", cfg)
}
