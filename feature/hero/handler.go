package hero

import (
	"site-cms/core/loader"
	"site-cms/core/response"
	"site-cms/core/validation"

	"github.com/gofiber/fiber/v2"
)

// Handler handles HTTP requests for the hero section.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the hero routes.
func (h *Handler) RegisterRoutes(r loader.Routers) {
	r.Public.Get("/hero", h.HandleGetPublic)

	r.Admin.Put("/hero-dashboards", h.HandleUpdateDashboards)
	r.Admin.Get("/hero-content", h.HandleGetContent)
	r.Admin.Put("/hero-content", h.HandleUpdateContent)
}

// HandleGetPublic returns the hero dashboards and content.
// @Summary Get Hero
// @Tags hero
// @Produce json
// @Success 200 {object} response.Envelope{data=PublicHero}
// @Router /hero [get]
func (h *Handler) HandleGetPublic(c *fiber.Ctx) error {
	return response.OK(c, h.service.GetPublic(c.UserContext()))
}

// HandleUpdateDashboards replaces the hero dashboards.
// @Summary Replace Hero Dashboards
// @Tags hero
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body DashboardsRequest true "Dashboards"
// @Success 200 {object} response.Envelope{data=[]Dashboard}
// @Failure 400 {object} response.Envelope
// @Router /admin/hero-dashboards [put]
func (h *Handler) HandleUpdateDashboards(c *fiber.Ctx) error {
	var req DashboardsRequest
	if err := validation.ParseBody(c, &req); err != nil {
		return response.Fail(c, err)
	}

	saved, err := h.service.ReplaceDashboards(c.UserContext(), req.Dashboards)
	if err != nil {
		return response.Fail(c, err)
	}
	return response.Message(c, "Hero dashboards updated successfully", saved)
}

// HandleGetContent returns the stored hero content.
// @Summary Get Hero Content
// @Tags hero
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope{data=Content}
// @Router /admin/hero-content [get]
func (h *Handler) HandleGetContent(c *fiber.Ctx) error {
	content, err := h.service.GetContent(c.UserContext())
	if err != nil {
		return response.Fail(c, err)
	}
	return response.OK(c, content)
}

// HandleUpdateContent saves the hero copy.
// @Summary Update Hero Content
// @Tags hero
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body ContentRequest true "Hero content"
// @Success 200 {object} response.Envelope{data=Content}
// @Failure 400 {object} response.Envelope
// @Router /admin/hero-content [put]
func (h *Handler) HandleUpdateContent(c *fiber.Ctx) error {
	var req ContentRequest
	if err := validation.ParseBody(c, &req); err != nil {
		return response.Fail(c, err)
	}

	content, err := h.service.UpdateContent(c.UserContext(), req)
	if err != nil {
		return response.Fail(c, err)
	}
	return response.Message(c, "Hero content updated successfully", content)
}
