package loader

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Routers holds the route groups a feature mounts its handlers on.
type Routers struct {
	// Public is open to the front end.
	Public fiber.Router
	// Admin requires a valid admin token.
	Admin fiber.Router
}

// Feature is a self-contained module of the application.
type Feature interface {
	// Name returns the unique name of the feature.
	Name() string
	// IsEnabled reports whether the feature should be loaded.
	IsEnabled() bool
	// Models returns the persisted entities owned by the feature.
	Models() []any
	// Load registers the feature's routes.
	Load(r Routers) error
}

// Manager holds the registry of features.
type Manager struct {
	features []Feature
	logger   *zap.Logger
}

// NewManager creates an empty feature registry.
func NewManager(logger *zap.Logger) *Manager {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Manager{logger: logger}
}

// Register adds a feature to the registry.
func (m *Manager) Register(f Feature) {
	m.features = append(m.features, f)
}

// Features returns the registered features in registration order.
func (m *Manager) Features() []Feature {
	return m.features
}

// Models returns the entities of every enabled feature, for migration and schema checks.
func (m *Manager) Models() []any {
	var models []any
	for _, f := range m.features {
		if f.IsEnabled() {
			models = append(models, f.Models()...)
		}
	}
	return models
}

// LoadAll loads every enabled feature, stopping at the first failure.
func (m *Manager) LoadAll(r Routers) error {
	seen := make(map[string]struct{}, len(m.features))
	for _, f := range m.features {
		if _, dup := seen[f.Name()]; dup {
			return fmt.Errorf("feature %s registered twice", f.Name())
		}
		seen[f.Name()] = struct{}{}

		if !f.IsEnabled() {
			m.logger.Info("Feature disabled", zap.String("feature", f.Name()))
			continue
		}
		if err := f.Load(r); err != nil {
			return fmt.Errorf("failed to load feature %s: %w", f.Name(), err)
		}
		m.logger.Info("Feature loaded", zap.String("feature", f.Name()))
	}
	return nil
}
