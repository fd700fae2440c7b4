package pages

import (
	"site-cms/core/loader"
	"site-cms/core/logger"
	"site-cms/core/response"
	"site-cms/core/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for page content and call-to-actions.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the pages routes.
func (h *Handler) RegisterRoutes(r loader.Routers) {
	r.Public.Get("/page-content/:pageKey", h.HandlePublicContent)
	r.Public.Get("/call-to-actions/:pageKey", h.HandlePublicCallToActions)

	r.Admin.Get("/page-content/:pageKey", h.HandleGetContent)
	r.Admin.Put("/page-content", h.HandleUpdateContent)
	r.Admin.Get("/call-to-actions/:pageKey", h.HandleGetCallToActions)
	r.Admin.Put("/call-to-actions", h.HandleUpdateCallToActions)
	r.Admin.Put("/call-to-actions/:pageKey", h.HandleReplacePageCallToActions)
}

// HandlePublicContent returns the content of an active page.
// @Summary Get Page Content
// @Tags pages
// @Produce json
// @Param pageKey path string true "Page key"
// @Success 200 {object} response.Envelope{data=Content}
// @Failure 404 {object} response.Envelope
// @Router /page-content/{pageKey} [get]
func (h *Handler) HandlePublicContent(c *fiber.Ctx) error {
	return h.content(c, false)
}

// HandlePublicCallToActions returns the active banners of a page.
// @Summary List Call-to-Actions
// @Tags pages
// @Produce json
// @Param pageKey path string true "Page key"
// @Success 200 {object} response.Envelope{data=[]CallToAction}
// @Router /call-to-actions/{pageKey} [get]
func (h *Handler) HandlePublicCallToActions(c *fiber.Ctx) error {
	return h.callToActions(c, false)
}

// HandleGetContent returns the content of a page whether or not it is active.
// @Summary Get Page Content (admin)
// @Tags pages
// @Produce json
// @Security BearerAuth
// @Param pageKey path string true "Page key"
// @Success 200 {object} response.Envelope{data=Content}
// @Failure 404 {object} response.Envelope
// @Router /admin/page-content/{pageKey} [get]
func (h *Handler) HandleGetContent(c *fiber.Ctx) error {
	return h.content(c, true)
}

// HandleUpdateContent upserts a page by its key.
// @Summary Update Page Content
// @Tags pages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body ContentRequest true "Page content"
// @Success 200 {object} response.Envelope{data=Content}
// @Failure 400 {object} response.Envelope
// @Router /admin/page-content [put]
func (h *Handler) HandleUpdateContent(c *fiber.Ctx) error {
	var req ContentRequest
	if err := validation.ParseBody(c, &req); err != nil {
		return response.Fail(c, err)
	}

	content, err := h.service.UpdateContent(c.UserContext(), req)
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Page content update failed", zap.Error(err))
		return response.Fail(c, err)
	}
	return response.Message(c, "Page content updated successfully", content)
}

// HandleGetCallToActions returns every banner of a page.
// @Summary List Call-to-Actions (admin)
// @Tags pages
// @Produce json
// @Security BearerAuth
// @Param pageKey path string true "Page key"
// @Success 200 {object} response.Envelope{data=[]CallToAction}
// @Router /admin/call-to-actions/{pageKey} [get]
func (h *Handler) HandleGetCallToActions(c *fiber.Ctx) error {
	return h.callToActions(c, true)
}

// HandleUpdateCallToActions replaces the banners of the pages in the payload.
// @Summary Replace Call-to-Actions
// @Description Each page key present in the payload has its banners replaced; other pages are untouched.
// @Tags pages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CallToActionsRequest true "Call-to-actions"
// @Success 200 {object} response.Envelope{data=[]CallToAction}
// @Failure 400 {object} response.Envelope
// @Router /admin/call-to-actions [put]
func (h *Handler) HandleUpdateCallToActions(c *fiber.Ctx) error {
	var req CallToActionsRequest
	if err := validation.ParseBody(c, &req); err != nil {
		return response.Fail(c, err)
	}

	ctas, err := h.service.ReplaceCallToActions(c.UserContext(), req.CTAs)
	if err != nil {
		return response.Fail(c, err)
	}
	return response.Message(c, "Call-to-actions updated successfully", ctas)
}

// HandleReplacePageCallToActions replaces the banners of one page.
// @Summary Replace Page Call-to-Actions
// @Description The body is the complete list for the page; an empty list removes every banner.
// @Tags pages
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param pageKey path string true "Page key"
// @Param body body PageCallToActionsRequest true "Call-to-actions"
// @Success 200 {object} response.Envelope{data=[]CallToAction}
// @Failure 400 {object} response.Envelope
// @Router /admin/call-to-actions/{pageKey} [put]
func (h *Handler) HandleReplacePageCallToActions(c *fiber.Ctx) error {
	pageKey := c.Params("pageKey")
	var req PageCallToActionsRequest
	if err := c.BodyParser(&req); err != nil {
		return response.Fail(c, response.Validation("Invalid request body"))
	}
	for i := range req.CTAs {
		req.CTAs[i].PageKey = pageKey
	}
	if err := validation.Struct(req); err != nil {
		return response.Fail(c, err)
	}

	ctas, err := h.service.ReplacePageCallToActions(c.UserContext(), pageKey, req.CTAs)
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Call-to-actions update failed", zap.String("page", pageKey), zap.Error(err))
		return response.Fail(c, err)
	}
	return response.Message(c, "Call-to-actions updated successfully", ctas)
}

func (h *Handler) content(c *fiber.Ctx, includeHidden bool) error {
	content, err := h.service.GetContent(c.UserContext(), c.Params("pageKey"), includeHidden)
	if err != nil {
		return response.Fail(c, err)
	}
	return response.OK(c, content)
}

func (h *Handler) callToActions(c *fiber.Ctx, includeHidden bool) error {
	ctas, err := h.service.CallToActions(c.UserContext(), c.Params("pageKey"), includeHidden)
	if err != nil {
		return response.Fail(c, err)
	}
	return response.OK(c, ctas)
}
