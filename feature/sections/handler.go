package sections

import (
	"site-cms/core/loader"
	"site-cms/core/response"
	"site-cms/core/validation"

	"github.com/gofiber/fiber/v2"
)

// Handler handles HTTP requests for section content.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the section content routes.
func (h *Handler) RegisterRoutes(r loader.Routers) {
	r.Public.Get("/section-content/:sectionKey", h.HandleGet)

	r.Admin.Get("/section-content", h.HandleList)
	r.Admin.Put("/section-content", h.HandleUpdate)
}

// HandleGet returns one active section.
// @Summary Get Section Content
// @Tags sections
// @Produce json
// @Param sectionKey path string true "Section key"
// @Success 200 {object} response.Envelope{data=Content}
// @Failure 404 {object} response.Envelope
// @Router /section-content/{sectionKey} [get]
func (h *Handler) HandleGet(c *fiber.Ctx) error {
	content, err := h.service.Get(c.UserContext(), c.Params("sectionKey"))
	if err != nil {
		return response.Fail(c, err)
	}
	return response.OK(c, content)
}

// HandleList returns every section for the admin editor.
// @Summary List Section Content
// @Tags sections
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope{data=[]Content}
// @Router /admin/section-content [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	list, err := h.service.List(c.UserContext())
	if err != nil {
		return response.Fail(c, err)
	}
	return response.OK(c, list)
}

// HandleUpdate upserts a section by its key.
// @Summary Update Section Content
// @Tags sections
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body UpdateRequest true "Section"
// @Success 200 {object} response.Envelope{data=Content}
// @Failure 400 {object} response.Envelope
// @Router /admin/section-content [put]
func (h *Handler) HandleUpdate(c *fiber.Ctx) error {
	var req UpdateRequest
	if err := validation.ParseBody(c, &req); err != nil {
		return response.Fail(c, err)
	}

	content, err := h.service.Update(c.UserContext(), req)
	if err != nil {
		return response.Fail(c, err)
	}
	return response.Message(c, "Section content updated successfully", content)
}
