package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"qatardigital.app/configs"
	"qatardigital.app/configs/configsdatabase"
	"qatardigital.app/configs/configslog"
	"qatardigital.app/database"
	"qatardigital.app/routes"
)

func main() {
	configslog.InitLogger()
	defer configslog.SyncLogger()

	cfg := configs.LoadConfig()

	configsdatabase.InitDB()
	defer configsdatabase.CloseDB()

	if err := database.Initialize(configsdatabase.GetDB(), true, true); err != nil {
		configslog.Log.Fatal("Database initialization failed", zap.Error(err))
	}

	app := fiber.New(fiber.Config{
		AppName:      "Qatar Digital Solutions API",
		ErrorHandler: fiberErrorHandler,
	})

	routes.SetupRoutes(app)

	go func() {
		addr := fmt.Sprintf(":%d", cfg.Port)
		configslog.SLog.Infof("Serving on port %d", cfg.Port)
		if err := app.Listen(addr); err != nil {
			configslog.Log.Fatal("Server stopped unexpectedly", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	configslog.SLog.Info("Shutting down...")
	if err := app.Shutdown(); err != nil {
		configslog.Log.Error("Graceful shutdown failed", zap.Error(err))
	}
}

// fiberErrorHandler keeps unexpected fiber errors in the API's JSON shape.
func fiberErrorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	if e, ok := err.(*fiber.Error); ok {
		code = e.Code
	}
	if code == fiber.StatusInternalServerError {
		configslog.Log.Error("Unhandled server error",
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Error(err),
		)
		return c.Status(code).JSON(fiber.Map{"error": "Internal server error"})
	}
	return c.Status(code).JSON(fiber.Map{"error": err.Error()})
}
