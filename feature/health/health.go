// Package health reports whether the service and its database are up.
package health

import (
	"context"
	"time"

	"site-cms/core/loader"
	"site-cms/core/response"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// pingTimeout bounds the database probe.
const pingTimeout = 2 * time.Second

// Status is the body of GET /health.
type Status struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

// Feature serves the health endpoint.
type Feature struct {
	db     *gorm.DB
	logger *zap.Logger
}

// NewFeature creates a new Health feature.
func NewFeature(db *gorm.DB, logger *zap.Logger) *Feature {
	return &Feature{db: db, logger: logger}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "health"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Models returns nil; health owns no tables.
func (f *Feature) Models() []any {
	return nil
}

// Load registers GET /health.
func (f *Feature) Load(r loader.Routers) error {
	r.Public.Get("/health", f.HandleHealth)
	return nil
}

// Check pings the database.
func (f *Feature) Check(ctx context.Context) Status {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()

	sqlDB, err := f.db.DB()
	if err == nil {
		err = sqlDB.PingContext(ctx)
	}
	if err != nil {
		f.logger.Warn("Database ping failed", zap.Error(err))
		return Status{Status: "degraded", Database: "disconnected"}
	}
	return Status{Status: "ok", Database: "connected"}
}

// HandleHealth reports service health. A failed database probe answers 503.
// @Summary Health Check
// @Tags health
// @Produce json
// @Success 200 {object} response.Envelope{data=Status}
// @Failure 503 {object} response.Envelope{data=Status}
// @Router /health [get]
func (f *Feature) HandleHealth(c *fiber.Ctx) error {
	status := f.Check(c.UserContext())
	if status.Database != "connected" {
		c.Status(fiber.StatusServiceUnavailable)
		return c.JSON(response.Envelope{Success: false, Message: "Database unavailable", Data: status})
	}
	return response.OK(c, status)
}
