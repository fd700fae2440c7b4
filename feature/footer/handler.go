package footer

import (
	"site-cms/core/loader"
	"site-cms/core/logger"
	"site-cms/core/response"
	"site-cms/core/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for the footer.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the footer routes.
func (h *Handler) RegisterRoutes(r loader.Routers) {
	r.Public.Get("/footer", h.HandlePublicFooter)
	r.Public.Get("/contact-info", h.HandlePublicContactInfo)
	r.Public.Get("/social-links", h.HandlePublicSocialLinks)

	r.Admin.Get("/footer", h.HandleGetSections)
	r.Admin.Put("/footer", h.HandleUpdateSections)
	r.Admin.Get("/contact-info", h.HandleGetContactInfo)
	r.Admin.Put("/contact-info", h.HandleUpdateContactInfo)
	r.Admin.Get("/social-links", h.HandleGetSocialLinks)
	r.Admin.Put("/social-links", h.HandleUpdateSocialLinks)
}

// HandlePublicFooter returns everything the footer renders.
// @Summary Get Footer
// @Tags footer
// @Produce json
// @Success 200 {object} response.Envelope{data=PublicFooter}
// @Failure 500 {object} response.Envelope
// @Router /footer [get]
func (h *Handler) HandlePublicFooter(c *fiber.Ctx) error {
	footer, err := h.service.GetPublic(c.UserContext())
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Footer fetch failed", zap.Error(err))
		return response.Fail(c, err)
	}
	return response.OK(c, footer)
}

// HandlePublicContactInfo returns the active contact channels.
// @Summary List Contact Info
// @Tags footer
// @Produce json
// @Success 200 {object} response.Envelope{data=[]ContactInfo}
// @Router /contact-info [get]
func (h *Handler) HandlePublicContactInfo(c *fiber.Ctx) error {
	return h.contactInfo(c, true)
}

// HandlePublicSocialLinks returns the active social links.
// @Summary List Social Links
// @Tags footer
// @Produce json
// @Success 200 {object} response.Envelope{data=[]SocialLink}
// @Router /social-links [get]
func (h *Handler) HandlePublicSocialLinks(c *fiber.Ctx) error {
	return h.socialLinks(c, true)
}

// HandleGetSections returns every footer column, hidden ones included.
// @Summary Get Footer Sections
// @Tags footer
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope{data=[]Section}
// @Router /admin/footer [get]
func (h *Handler) HandleGetSections(c *fiber.Ctx) error {
	sections, err := h.service.Sections(c.UserContext(), false)
	if err != nil {
		return response.Fail(c, err)
	}
	return response.OK(c, fiber.Map{"sections": sections})
}

// HandleUpdateSections replaces the footer columns and their links.
// @Summary Replace Footer
// @Tags footer
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body SectionsRequest true "Footer sections"
// @Success 200 {object} response.Envelope{data=[]Section}
// @Failure 400 {object} response.Envelope
// @Router /admin/footer [put]
func (h *Handler) HandleUpdateSections(c *fiber.Ctx) error {
	var req SectionsRequest
	if err := validation.ParseBody(c, &req); err != nil {
		return response.Fail(c, err)
	}

	sections, err := h.service.ReplaceSections(c.UserContext(), req.Sections)
	if err != nil {
		return response.Fail(c, err)
	}
	return response.Message(c, "Footer updated successfully", sections)
}

// HandleGetContactInfo returns every contact channel.
// @Summary Get Contact Info
// @Tags footer
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope{data=[]ContactInfo}
// @Router /admin/contact-info [get]
func (h *Handler) HandleGetContactInfo(c *fiber.Ctx) error {
	return h.contactInfo(c, false)
}

// HandleUpdateContactInfo replaces the contact channels.
// @Summary Replace Contact Info
// @Tags footer
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body ContactInfoRequest true "Contact info"
// @Success 200 {object} response.Envelope{data=[]ContactInfo}
// @Failure 400 {object} response.Envelope
// @Router /admin/contact-info [put]
func (h *Handler) HandleUpdateContactInfo(c *fiber.Ctx) error {
	var req ContactInfoRequest
	if err := validation.ParseBody(c, &req); err != nil {
		return response.Fail(c, err)
	}

	info, err := h.service.ReplaceContactInfo(c.UserContext(), req.ContactInfo)
	if err != nil {
		return response.Fail(c, err)
	}
	return response.Message(c, "Contact info updated successfully", info)
}

// HandleGetSocialLinks returns every social link.
// @Summary Get Social Links
// @Tags footer
// @Produce json
// @Security BearerAuth
// @Success 200 {object} response.Envelope{data=[]SocialLink}
// @Router /admin/social-links [get]
func (h *Handler) HandleGetSocialLinks(c *fiber.Ctx) error {
	return h.socialLinks(c, false)
}

// HandleUpdateSocialLinks replaces the social links.
// @Summary Replace Social Links
// @Tags footer
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body SocialLinksRequest true "Social links"
// @Success 200 {object} response.Envelope{data=[]SocialLink}
// @Failure 400 {object} response.Envelope
// @Router /admin/social-links [put]
func (h *Handler) HandleUpdateSocialLinks(c *fiber.Ctx) error {
	var req SocialLinksRequest
	if err := validation.ParseBody(c, &req); err != nil {
		return response.Fail(c, err)
	}

	links, err := h.service.ReplaceSocialLinks(c.UserContext(), req.SocialLinks)
	if err != nil {
		return response.Fail(c, err)
	}
	return response.Message(c, "Social links updated successfully", links)
}

func (h *Handler) contactInfo(c *fiber.Ctx, activeOnly bool) error {
	info, err := h.service.ContactInfo(c.UserContext(), activeOnly)
	if err != nil {
		return response.Fail(c, err)
	}
	return response.OK(c, info)
}

func (h *Handler) socialLinks(c *fiber.Ctx, activeOnly bool) error {
	links, err := h.service.SocialLinks(c.UserContext(), activeOnly)
	if err != nil {
		return response.Fail(c, err)
	}
	return response.OK(c, links)
}
