package admins

import (
	"site-cms/core/loader"
	"site-cms/core/logger"
	"site-cms/core/response"
	"site-cms/core/validation"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Handler handles HTTP requests for admin accounts.
type Handler struct {
	service *Service
}

// NewHandler creates a new HTTP handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterRoutes registers the auth routes.
func (h *Handler) RegisterRoutes(r loader.Routers) {
	r.Public.Post("/auth/login", h.HandleLogin)

	r.Admin.Post("/auth/reset-password", h.HandleResetPassword)
}

// HandleLogin exchanges credentials for a token.
// @Summary Admin Login
// @Tags auth
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Credentials"
// @Success 200 {object} response.Envelope{data=LoginResult}
// @Failure 401 {object} response.Envelope
// @Router /auth/login [post]
func (h *Handler) HandleLogin(c *fiber.Ctx) error {
	var req LoginRequest
	if err := validation.ParseBody(c, &req); err != nil {
		return response.Fail(c, err)
	}

	result, err := h.service.Login(c.UserContext(), req)
	if err != nil {
		logger.WithRayID(h.service.logger, c).Info("Login failed", zap.String("ip", c.IP()), zap.Error(err))
		return response.Fail(c, err)
	}
	return response.Message(c, "Login successful", result)
}

// HandleResetPassword sets a new password for an account.
// @Summary Reset Admin Password
// @Tags auth
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body ResetPasswordRequest true "Reset"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /admin/auth/reset-password [post]
func (h *Handler) HandleResetPassword(c *fiber.Ctx) error {
	var req ResetPasswordRequest
	if err := validation.ParseBody(c, &req); err != nil {
		return response.Fail(c, err)
	}

	if err := h.service.ResetPassword(c.UserContext(), req); err != nil {
		return response.Fail(c, err)
	}
	return response.Message(c, "Password reset successfully", nil)
}
