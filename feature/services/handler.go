package services

import (
	"site-cms/core/loader"
	"site-cms/core/logger"
	"site-cms/core/response"
	"site-cms/core/utils"
	"site-cms/core/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for services.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the services routes. Fixed paths are mounted
// before the slug route so they are not captured by it.
func (h *Handler) RegisterRoutes(r loader.Routers) {
	group := r.Public.Group("/services")
	group.Get("/", h.HandleList)
	group.Get("/quote-options", h.HandleQuoteOptions)
	group.Get("/categories", h.HandleCategories)
	group.Get("/:slug", h.HandleGetBySlug)

	r.Admin.Get("/services", h.HandleListAll)
	r.Admin.Put("/services", h.HandleUpdate)
	r.Admin.Delete("/services/:id", h.HandleDelete)
}

// HandleList returns active services.
// @Summary List Services
// @Tags services
// @Produce json
// @Param category query string false "Category"
// @Param featured query bool false "Featured only"
// @Param popular query bool false "Popular only"
// @Param onQuote query bool false "Offered on the quote form"
// @Success 200 {object} response.Envelope{data=[]Offering}
// @Router /services [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	filters := Filters{
		Category: c.Query("category"),
		Featured: utils.OptionalBool(c.Query("featured")),
		Popular:  utils.OptionalBool(c.Query("popular")),
		OnQuote:  utils.OptionalBool(c.Query("onQuote")),
	}

	out, err := h.service.List(c.UserContext(), filters)
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Services fetch failed", zap.Error(err))
		return response.Fail(c, err)
	}
	return response.OK(c, out)
}

// HandleQuoteOptions lists services selectable on the quote form.
// @Summary List Quote Options
// @Tags services
// @Produce json
// @Success 200 {object} response.Envelope{data=[]QuoteOption}
// @Router /services/quote-options [get]
func (h *Handler) HandleQuoteOptions(c *fiber.Ctx) error {
	out, err := h.service.QuoteOptions(c.UserContext())
	if err != nil {
		return response.Fail(c, err)
	}
	return response.OK(c, out)
}

// HandleCategories lists the distinct service categories.
// @Summary List Service Categories
// @Tags services
// @Produce json
// @Success 200 {object} response.Envelope{data=[]string}
// @Router /services/categories [get]
func (h *Handler) HandleCategories(c *fiber.Ctx) error {
	out, err := h.service.Categories(c.UserContext())
	if err != nil {
		return response.Fail(c, err)
	}
	return response.OK(c, out)
}

// HandleGetBySlug returns one service.
// @Summary Get Service
// @Tags services
// @Produce json
// @Param slug path string true "Service slug"
// @Success 200 {object} response.Envelope{data=Offering}
// @Failure 404 {object} response.Envelope
// @Router /services/{slug} [get]
func (h *Handler) HandleGetBySlug(c *fiber.Ctx) error {
	out, err := h.service.GetBySlug(c.UserContext(), c.Params("slug"))
	if err != nil {
		return response.Fail(c, err)
	}
	return response.OK(c, out)
}

// HandleListAll returns every service for the admin editor.
// @Summary List All Services
// @Tags services
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope{data=[]Offering}
// @Router /admin/services [get]
func (h *Handler) HandleListAll(c *fiber.Ctx) error {
	out, err := h.service.ListAll(c.UserContext())
	if err != nil {
		return response.Fail(c, err)
	}
	return response.OK(c, out)
}

// HandleUpdate replaces the service catalogue.
// @Summary Replace Services
// @Tags services
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body UpdateRequest true "Services"
// @Success 200 {object} response.Envelope{data=[]Offering}
// @Failure 400 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /admin/services [put]
func (h *Handler) HandleUpdate(c *fiber.Ctx) error {
	var req UpdateRequest
	if err := validation.ParseBody(c, &req); err != nil {
		return response.Fail(c, err)
	}

	out, err := h.service.Replace(c.UserContext(), req.Services)
	if err != nil {
		return response.Fail(c, err)
	}
	return response.Message(c, "Services updated successfully", out)
}

// HandleDelete removes a service.
// @Summary Delete Service
// @Tags services
// @Security BearerAuth
// @Param id path string true "Service ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /admin/services/{id} [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.UserContext(), c.Params("id")); err != nil {
		return response.Fail(c, err)
	}
	return response.Message(c, "Service deleted successfully", nil)
}
