package leads

import (
	"site-cms/core/loader"
	"site-cms/core/logger"
	"site-cms/core/response"
	"site-cms/core/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for leads.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the leads routes.
func (h *Handler) RegisterRoutes(r loader.Routers) {
	r.Public.Post("/consultation", h.HandleConsultation)
	r.Public.Post("/contact", h.HandleContact)
	r.Public.Get("/consultation-form", h.HandleGetForm)

	r.Admin.Get("/leads", h.HandleList)
	r.Admin.Patch("/leads/:id/status", h.HandleUpdateStatus)
	r.Admin.Delete("/leads/:id", h.HandleDelete)
	r.Admin.Get("/consultation-form", h.HandleGetForm)
	r.Admin.Put("/consultation-form", h.HandleUpdateForm)
}

// HandleConsultation stores a consultation request.
// @Summary Request Consultation
// @Tags leads
// @Accept json
// @Produce json
// @Param body body ConsultationRequest true "Consultation"
// @Success 201 {object} response.Envelope{data=Receipt}
// @Failure 400 {object} response.Envelope
// @Router /consultation [post]
func (h *Handler) HandleConsultation(c *fiber.Ctx) error {
	var req ConsultationRequest
	if err := validation.ParseBody(c, &req); err != nil {
		return response.Fail(c, err)
	}

	receipt, err := h.service.SubmitConsultation(c.UserContext(), req)
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Consultation submit failed", zap.Error(err))
		return response.Fail(c, err)
	}
	return response.Created(c, "Consultation request submitted successfully", receipt)
}

// HandleContact stores a contact-form message.
// @Summary Submit Contact Form
// @Tags leads
// @Accept json
// @Produce json
// @Param body body ContactRequest true "Contact"
// @Success 201 {object} response.Envelope{data=Receipt}
// @Failure 400 {object} response.Envelope
// @Router /contact [post]
func (h *Handler) HandleContact(c *fiber.Ctx) error {
	var req ContactRequest
	if err := validation.ParseBody(c, &req); err != nil {
		return response.Fail(c, err)
	}

	receipt, err := h.service.SubmitContact(c.UserContext(), req)
	if err != nil {
		logger.WithRayID(h.service.logger, c).Error("Contact submit failed", zap.Error(err))
		return response.Fail(c, err)
	}
	return response.Created(c, ContactThanks, receipt)
}

// HandleGetForm returns the consultation form configuration.
// @Summary Get Consultation Form
// @Tags leads
// @Produce json
// @Success 200 {object} response.Envelope{data=FormConfig}
// @Router /consultation-form [get]
func (h *Handler) HandleGetForm(c *fiber.Ctx) error {
	cfg, err := h.service.GetForm(c.UserContext())
	if err != nil {
		return response.Fail(c, err)
	}
	return response.OK(c, cfg)
}

// HandleUpdateForm saves the consultation form configuration.
// @Summary Update Consultation Form
// @Tags leads
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body FormRequest true "Form"
// @Success 200 {object} response.Envelope{data=FormConfig}
// @Failure 400 {object} response.Envelope
// @Router /admin/consultation-form [put]
func (h *Handler) HandleUpdateForm(c *fiber.Ctx) error {
	var req FormRequest
	if err := validation.ParseBody(c, &req); err != nil {
		return response.Fail(c, err)
	}

	cfg, err := h.service.UpdateForm(c.UserContext(), req)
	if err != nil {
		return response.Fail(c, err)
	}
	return response.Message(c, "Consultation form updated successfully", cfg)
}

// HandleList returns leads, optionally filtered by type and status.
// @Summary List Leads
// @Tags leads
// @Produce json
// @Security BearerAuth
// @Param type query string false "consultation or contact"
// @Param status query string false "new, in_progress or closed"
// @Success 200 {object} response.Envelope{data=[]Lead}
// @Router /admin/leads [get]
func (h *Handler) HandleList(c *fiber.Ctx) error {
	leads, err := h.service.List(c.UserContext(), Filters{
		LeadType: c.Query("type"),
		Status:   c.Query("status"),
	})
	if err != nil {
		return response.Fail(c, err)
	}
	return response.OK(c, leads)
}

// HandleUpdateStatus moves a lead to a new status.
// @Summary Update Lead Status
// @Tags leads
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Lead ID"
// @Param body body StatusRequest true "Status"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /admin/leads/{id}/status [patch]
func (h *Handler) HandleUpdateStatus(c *fiber.Ctx) error {
	var req StatusRequest
	if err := validation.ParseBody(c, &req); err != nil {
		return response.Fail(c, err)
	}

	if err := h.service.UpdateStatus(c.UserContext(), c.Params("id"), req.Status); err != nil {
		return response.Fail(c, err)
	}
	return response.Message(c, "Status updated successfully", nil)
}

// HandleDelete removes a lead.
// @Summary Delete Lead
// @Tags leads
// @Produce json
// @Security BearerAuth
// @Param id path string true "Lead ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /admin/leads/{id} [delete]
func (h *Handler) HandleDelete(c *fiber.Ctx) error {
	if err := h.service.Delete(c.UserContext(), c.Params("id")); err != nil {
		return response.Fail(c, err)
	}
	return response.Message(c, "Lead deleted successfully", nil)
}
