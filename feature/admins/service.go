package admins

import (
	"context"
	"errors"
	"strings"
	"time"

	"site-cms/core/auth"
	"site-cms/core/database"
	"site-cms/core/response"
	"site-cms/core/utils"
	"site-cms/core/validation"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// TokenIssuer signs admin tokens.
type TokenIssuer interface {
	Issue(adminID, email string) (string, time.Time, error)
}

// Service manages admin accounts.
type Service struct {
	db     *gorm.DB
	tokens TokenIssuer
	logger *zap.Logger
}

// NewService creates a new admins service.
func NewService(db *gorm.DB, tokens TokenIssuer, logger *zap.Logger) *Service {
	return &Service{db: db, tokens: tokens, logger: logger}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *Service) findByEmail(ctx context.Context, email string) (*Admin, error) {
	var admin Admin
	err := s.db.WithContext(ctx).Where("email = ?", normalizeEmail(email)).Take(&admin).Error
	if err != nil {
		return nil, err
	}
	return &admin, nil
}

// Login checks the credentials and issues a token.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*LoginResult, error) {
	admin, err := s.findByEmail(ctx, req.Email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, response.Unauthorized("Invalid credentials")
	}
	if err != nil {
		return nil, database.Classify(err, "Login failed")
	}
	if !admin.IsActive || !auth.CheckPassword(admin.PasswordHash, req.Password) {
		s.logger.Warn("Rejected admin login", zap.String("admin_id", admin.ID))
		return nil, response.Unauthorized("Invalid credentials")
	}

	token, expiresAt, err := s.tokens.Issue(admin.ID, admin.Email)
	if err != nil {
		return nil, response.Internal("Login failed", err)
	}

	now := time.Now()
	if err := s.db.WithContext(ctx).Model(admin).UpdateColumn("last_login_at", now).Error; err != nil {
		s.logger.Warn("Could not record login time", zap.String("admin_id", admin.ID), zap.Error(err))
	}

	s.logger.Info("Admin logged in", zap.String("admin_id", admin.ID))
	return &LoginResult{Token: token, ExpiresAt: expiresAt, Admin: admin.Profile()}, nil
}

// ResetPassword replaces the password of the account with the given email.
func (s *Service) ResetPassword(ctx context.Context, req ResetPasswordRequest) error {
	req.Email = normalizeEmail(req.Email)
	if err := validation.Struct(req); err != nil {
		return err
	}
	hash, err := auth.HashPassword(req.NewPassword)
	if err != nil {
		return response.Internal("Password reset failed", err)
	}

	res := s.db.WithContext(ctx).Model(&Admin{}).
		Where("email = ?", req.Email).
		Update("password", hash)
	if res.Error != nil {
		return database.Classify(res.Error, "Password reset failed")
	}
	if res.RowsAffected == 0 {
		return response.NotFound("Admin not found")
	}

	s.logger.Info("Admin password reset", zap.String("email", req.Email))
	return nil
}

// Create adds an active account.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Admin, error) {
	req.Email = normalizeEmail(req.Email)
	if err := validation.Struct(req); err != nil {
		return nil, err
	}
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, response.Internal("Failed to create admin", err)
	}

	admin := &Admin{
		Email:        req.Email,
		Name:         strings.TrimSpace(req.Name),
		Role:         utils.StringOr(req.Role, DefaultRole),
		PasswordHash: hash,
		IsActive:     true,
	}
	err = s.db.WithContext(ctx).Create(admin).Error
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return nil, response.Conflict("Admin already exists", err)
	}
	if err != nil {
		return nil, database.Classify(err, "Failed to create admin")
	}

	s.logger.Info("Admin created", zap.String("admin_id", admin.ID), zap.String("email", admin.Email))
	return admin, nil
}
