package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"media-batchload/core/loader"
	"media-batchload/core/logger"
	"media-batchload/core/middleware/auth"
	"media-batchload/core/middleware/rayid"
	"media-batchload/core/storage"

	"media-batchload/feature/batchload"
	"media-batchload/feature/filenames"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "media-batchload/docs/swagger"
)

// @title Media Batchload API
// @version 1.0
// @description API for enriching catalog batches with digitized files.
// @host localhost:8080
// @BasePath /

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the batch loading HTTP API",
	Long:  `Starts the HTTP server and initializes all enabled features.`,
	RunE:  runServe,
}

func init() {
	RootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, logg, err := setup()
	if err != nil {
		return err
	}
	defer logg.Sync()
	zap.ReplaceGlobals(logg)

	if !cfg.Server.IsValidPort() {
		return fmt.Errorf("invalid server port %q", cfg.Server.Port)
	}

	app := fiber.New(fiber.Config{
		DisableStartupMessage: true, // We log our own startup message
	})

	store, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to create storage client: %w", err)
	}

	mgr := loader.NewManager()
	mgr.Register(batchload.NewFeature(store, cfg.Storage, cfg.Batch, logg))
	mgr.Register(filenames.NewFeature(cfg.Filenames, logg))

	// RayID must be first to trace everything
	app.Use(rayid.New())

	app.Use(func(c *fiber.Ctx) error {
		l := logger.WithRayID(logg, c)
		l.Info("Request started",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("ip", c.IP()),
		)
		err := c.Next()
		if err != nil {
			l.Error("Request error", zap.Error(err))
		}
		return err
	})

	// Swagger stays public
	app.Get("/swagger/*", swagger.HandlerDefault)

	app.Use(auth.New(auth.Config{ApiKey: cfg.Server.ApiKey}))

	if err := mgr.LoadAll(app); err != nil {
		return err
	}

	errCh := make(chan error, 1)
	go func() {
		logg.Info("Starting server",
			zap.String("address", cfg.Server.Address()),
			zap.Strings("features", mgr.Enabled()),
		)
		errCh <- app.Listen(cfg.Server.Address())
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	select {
	case err := <-errCh:
		return fmt.Errorf("server failed: %w", err)
	case <-quit:
	}

	logg.Info("Shutting down server...")
	return app.Shutdown()
}
