package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"site-cms/core/loader"
	"site-cms/core/logger"
	mwauth "site-cms/core/middleware/auth"
	"site-cms/core/middleware/rayid"
	"site-cms/core/response"
	"site-cms/core/storage"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "site-cms/docs/swagger"
)

// @title Site CMS API
// @version 1.0
// @description Content and lead capture API for the marketing website.
// @host localhost:5000
// @BasePath /api
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

var migrateOnStart bool

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the CMS server",
	Long:  `Starts the HTTP server and mounts every enabled feature under the API prefix.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootstrap()
		if err != nil {
			return err
		}
		defer a.close()
		zap.ReplaceGlobals(a.logger)

		if migrateOnStart {
			if err := a.db.AutoMigrate(a.mgr.Models()...); err != nil {
				return err
			}
			a.logger.Info("Schema migrated", zap.Int("models", len(a.mgr.Models())))
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		created, err := storage.EnsureBucket(ctx, a.store, a.cfg.Storage.Bucket, a.cfg.Storage.Region)
		cancel()
		if err != nil {
			// Uploads fail until storage is reachable; content endpoints still work
			a.logger.Warn("Storage bucket unavailable", zap.String("bucket", a.cfg.Storage.Bucket), zap.Error(err))
		} else if created {
			a.logger.Info("Storage bucket created", zap.String("bucket", a.cfg.Storage.Bucket))
		}

		app, err := newServer(a)
		if err != nil {
			return err
		}

		go func() {
			a.logger.Info("Starting server",
				zap.String("port", a.cfg.Server.Port),
				zap.String("prefix", a.cfg.Server.Prefix()),
			)
			if err := app.Listen(":" + a.cfg.Server.Port); err != nil {
				a.logger.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		a.logger.Info("Shutting down server...")
		return app.ShutdownWithTimeout(10 * time.Second)
	},
}

// newServer builds the Fiber app with middleware and every feature mounted.
func newServer(a *application) (*fiber.App, error) {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		BodyLimit:             a.cfg.Server.BodyLimitBytes,
		ErrorHandler:          response.ErrorHandler,
	})

	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     a.cfg.Server.CorsOrigin,
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: a.cfg.Server.CorsOrigin != "*",
	}))

	// RayID first so every later log line carries it
	app.Use(rayid.New())
	app.Use(logger.RequestLogger(a.logger))

	app.Get("/swagger/*", swagger.HandlerDefault)

	api := app.Group(a.cfg.Server.Prefix())
	routers := loader.Routers{
		Public: api,
		Admin:  api.Group("/admin", mwauth.New(mwauth.Config{Verifier: a.tokens})),
	}
	if err := a.mgr.LoadAll(routers); err != nil {
		return nil, err
	}
	return app, nil
}

func init() {
	RootCmd.AddCommand(startCmd)
	startCmd.Flags().BoolVar(&migrateOnStart, "migrate", false, "Run schema migration before serving")
}
