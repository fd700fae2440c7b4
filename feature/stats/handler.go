package stats

import (
	"site-cms/core/loader"
	"site-cms/core/logger"
	"site-cms/core/response"
	"site-cms/core/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for stats.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the stats routes.
func (h *Handler) RegisterRoutes(r loader.Routers) {
	r.Public.Get("/stats", h.HandleList)

	r.Admin.Put("/stats", h.HandleUpdate)
	r.Admin.Delete("/stats/:id", h.HandleDelete)
}

// HandleList returns the active stats.
// @Summary List Stats
// @Tags stats
// @Produce json
// @Success 200 {object} response.Envelope{data=[]Stat}
// @Failure 500 {object} response.Envelope
// @Router /stats [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	stats, err := h.service.List(c.UserContext())
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Stats fetch failed", zap.Error(err))
		return response.Fail(c, err)
	}
	return response.OK(c, stats)
}

// HandleUpdate replaces every stat with the submitted list.
// @Summary Replace Stats
// @Description Deletes all stats and recreates them from the payload. Ids change on every save.
// @Tags stats
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body UpdateRequest true "Stats"
// @Success 200 {object} response.Envelope{data=[]Stat}
// @Failure 400 {object} response.Envelope
// @Failure 500 {object} response.Envelope
// @Router /admin/stats [put]
func (h *Handler) HandleUpdate(c *fiber.Ctx) error {
	var req UpdateRequest
	if err := validation.ParseBody(c, &req); err != nil {
		return response.Fail(c, err)
	}

	stats, err := h.service.Replace(c.UserContext(), req.Stats)
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Stats update failed", zap.Error(err))
		return response.Fail(c, err)
	}
	return response.Message(c, "Stats updated successfully", stats)
}

// HandleDelete removes a stat.
// @Summary Delete Stat
// @Tags stats
// @Produce json
// @Security BearerAuth
// @Param id path string true "Stat ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /admin/stats/{id} [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.UserContext(), c.Params("id")); err != nil {
		return response.Fail(c, err)
	}
	return response.Message(c, "Stat deleted successfully", nil)
}
