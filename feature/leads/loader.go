package leads

import (
	"site-cms/core/loader"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates a new Leads feature.
func NewFeature(db *gorm.DB, logger *zap.Logger) *Feature {
	svc := NewService(db, logger)
	return &Feature{service: svc, handler: NewHandler(svc)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "leads"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Models returns the entities owned by the feature.
func (f *Feature) Models() []any {
	return []any{&Lead{}, &FormConfig{}}
}

// Load registers the feature's routes.
func (f *Feature) Load(r loader.Routers) error {
	f.handler.RegisterRoutes(r)
	return nil
}
