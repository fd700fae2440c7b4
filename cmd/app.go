package cmd

import (
	"fmt"

	"site-cms/core/auth"
	"site-cms/core/config"
	"site-cms/core/database"
	"site-cms/core/loader"
	"site-cms/core/logger"
	"site-cms/core/storage"
	"site-cms/feature/admins"
	"site-cms/feature/footer"
	"site-cms/feature/health"
	"site-cms/feature/hero"
	"site-cms/feature/leads"
	"site-cms/feature/navigation"
	"site-cms/feature/pages"
	"site-cms/feature/sections"
	"site-cms/feature/services"
	"site-cms/feature/stats"
	"site-cms/feature/testimonials"
	"site-cms/feature/theme"
	"site-cms/feature/uploads"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// application bundles the dependencies shared by the commands.
type application struct {
	cfg     *config.Config
	logger  *zap.Logger
	db      *gorm.DB
	store   storage.Client
	tokens  *auth.TokenService
	uploads *uploads.Feature
	admins  *admins.Feature
	mgr     *loader.Manager
}

// bootstrap loads configuration and connects every backing service.
func bootstrap() (*application, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	db, err := database.Connect(cfg.Database)
	if err != nil {
		return nil, err
	}
	logg.Info("Connected to database", zap.String("driver", cfg.Database.Driver))

	store, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	app := &application{
		cfg:    cfg,
		logger: logg,
		db:     db,
		store:  store,
		tokens: auth.NewTokenService(cfg.Auth),
	}
	app.register()
	return app, nil
}

// register builds the feature registry in mount order.
func (a *application) register() {
	a.uploads = uploads.NewFeature(a.db, a.store, uploads.OptionsFrom(a.cfg.Storage, a.cfg.Server.Prefix()+"/uploads"), a.logger)
	a.admins = admins.NewFeature(a.db, a.tokens, a.logger)

	a.mgr = loader.NewManager(a.logger)
	a.mgr.Register(health.NewFeature(a.db, a.logger))
	a.mgr.Register(a.admins)
	a.mgr.Register(theme.NewFeature(a.db, a.logger))
	a.mgr.Register(navigation.NewFeature(a.db, a.logger))
	a.mgr.Register(hero.NewFeature(a.db, a.logger))
	a.mgr.Register(services.NewFeature(a.db, a.logger))
	a.mgr.Register(testimonials.NewFeature(a.db, a.logger))
	a.mgr.Register(stats.NewFeature(a.db, a.logger))
	a.mgr.Register(sections.NewFeature(a.db, a.logger))
	a.mgr.Register(footer.NewFeature(a.db, a.logger))
	a.mgr.Register(pages.NewFeature(a.db, a.logger))
	a.mgr.Register(leads.NewFeature(a.db, a.logger))
	a.mgr.Register(a.uploads)
}

// close flushes the logger and releases the database pool.
func (a *application) close() {
	if sqlDB, err := a.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	_ = a.logger.Sync()
}
