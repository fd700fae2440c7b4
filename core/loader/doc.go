// Package loader provides the plugin-like feature loading system.
//
// It allows the application to register and initialize features (modules) dynamically.
// Each entity family of the CMS (navigation, hero, services, testimonials, …) is a
// feature implementing the Feature interface.
//
// # Feature Interface
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Models() []any
//	    Load(r loader.Routers) error
//	}
//
// # Manager
//
// The Manager struct holds the registry of available features. It handles:
//   - Registration of features via Register()
//   - Collection of persisted models for the migrate command via Models()
//   - Loading of enabled features onto the public and admin route groups via LoadAll()
package loader
