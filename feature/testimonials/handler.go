package testimonials

import (
	"site-cms/core/loader"
	"site-cms/core/logger"
	"site-cms/core/response"
	"site-cms/core/utils"
	"site-cms/core/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for testimonials.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the testimonial routes.
func (h *Handler) RegisterRoutes(r loader.Routers) {
	r.Public.Get("/testimonials", h.HandleList)

	r.Admin.Put("/testimonials", h.HandleUpdate)
	r.Admin.Delete("/testimonials/:id", h.HandleDelete)
}

// HandleList returns active testimonials.
// @Summary List Testimonials
// @Tags testimonials
// @Produce json
// @Param service query string false "Service name"
// @Param featured query bool false "Featured only"
// @Param rating query int false "Minimum rating"
// @Param limit query int false "Maximum number of results"
// @Success 200 {object} response.Envelope{data=[]Testimonial}
// @Router /testimonials [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	filters := Filters{
		Service:   c.Query("service"),
		Featured:  utils.OptionalBool(c.Query("featured")),
		MinRating: utils.OptionalInt(c.Query("rating")),
		Limit:     utils.ToInt(c.Query("limit"), 0),
	}

	out, err := h.service.List(c.UserContext(), filters)
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Testimonials fetch failed", zap.Error(err))
		return response.Fail(c, err)
	}
	return response.OK(c, out)
}

// HandleUpdate reconciles the stored testimonials against the submitted list.
// @Summary Reconcile Testimonials
// @Description Updates testimonials whose id is known, creates the rest and deletes any not in the list.
// @Tags testimonials
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body UpdateRequest true "Testimonials"
// @Success 200 {object} response.Envelope{data=reconcile.Counts}
// @Failure 400 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /admin/testimonials [put]
func (h *Handler) HandleUpdate(c *fiber.Ctx) error {
	var req UpdateRequest
	if err := validation.ParseBody(c, &req); err != nil {
		return response.Fail(c, err)
	}

	counts, err := h.service.Reconcile(c.UserContext(), req.Testimonials)
	if err != nil {
		return response.Fail(c, err)
	}
	return response.Message(c, "Testimonials updated successfully", counts)
}

// HandleDelete removes a testimonial.
// @Summary Delete Testimonial
// @Tags testimonials
// @Security BearerAuth
// @Param id path string true "Testimonial ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /admin/testimonials/{id} [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.UserContext(), c.Params("id")); err != nil {
		return response.Fail(c, err)
	}
	return response.Message(c, "Testimonial deleted successfully", nil)
}
