package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"storage-facade/core/loader"
	"storage-facade/core/logger"
	"storage-facade/core/middleware/auth"
	"storage-facade/core/middleware/rayid"
	"storage-facade/core/storage"
	"storage-facade/feature/journal"
	"storage-facade/feature/objects"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "storage-facade/docs/swagger"
)

// @title Storage Facade API
// @version 1.0
// @description HTTP surface of the object storage facade.
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the storage facade server",
	Long:  `Starts the HTTP server and loads every enabled feature.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		a, err := bootstrap()
		if err != nil {
			return err
		}
		logg := a.logger
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
			BodyLimit:             int(storage.DefaultMaxFetchBytes),
		})

		// RayID first so every later log line carries it.
		app.Use(rayid.New())
		app.Use(requestLogger(logg))

		app.Get("/swagger/*", swagger.HandlerDefault)

		skip := []string{}
		if a.metrics != nil {
			app.Get(a.cfg.Metrics.Path, adaptor.HTTPHandler(a.metrics.Handler()))
			skip = append(skip, a.cfg.Metrics.Path)
		}
		app.Use(auth.New(auth.Config{ApiKey: a.cfg.Server.ApiKey, Skip: skip}))
		if !a.cfg.Server.AuthEnabled() {
			logg.Warn("API key is empty, the API is unprotected")
		}

		mgr := loader.NewManager()
		mgr.Register(objects.NewFeature(a.service))
		mgr.Register(journal.NewFeature(a.journal, logg))

		loaded, err := mgr.LoadAll(app)
		if err != nil {
			return err
		}
		logg.Info("Features loaded", zap.Strings("features", loaded))

		errCh := make(chan error, 1)
		go func() {
			logg.Info("Starting server",
				zap.String("port", a.cfg.Server.Port),
				zap.String("bucket", a.service.DefaultBucket()))
			errCh <- app.Listen(a.cfg.Server.Addr())
		}()

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, os.Interrupt, syscall.SIGTERM)

		select {
		case err := <-errCh:
			return err
		case <-sig:
		}

		logg.Info("Shutting down server...")
		timeout := time.Duration(a.cfg.Server.ShutdownSeconds) * time.Second
		if timeout <= 0 {
			timeout = 10 * time.Second
		}
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()
		return app.ShutdownWithContext(ctx)
	},
}

// requestLogger logs each request with its ray id.
func requestLogger(logg *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		started := time.Now()
		l := logger.WithRayID(logg, c)
		err := c.Next()
		if err != nil {
			l.Error("Request error", zap.Error(err))
		}
		l.Info("Request completed",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.String("ip", c.IP()),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("duration", time.Since(started)),
		)
		return err
	}
}

func init() {
	RootCmd.AddCommand(startCmd)
}
