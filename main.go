package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"go.uber.org/zap"

	"github.com/alumniconnect/Backend-Alumni-Connect/src/config"
	"github.com/alumniconnect/Backend-Alumni-Connect/src/lib"
	"github.com/alumniconnect/Backend-Alumni-Connect/src/logger"
	"github.com/alumniconnect/Backend-Alumni-Connect/src/middleware"
	"github.com/alumniconnect/Backend-Alumni-Connect/src/routes"
)

func main() {
	cfg := config.MustLoad()

	log, err := logger.Init(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		panic("failed to init logger: " + err.Error())
	}
	defer logger.Sync()

	lib.JWTSecret = []byte(cfg.JWTSecret)
	lib.Mail = lib.NewMailer(cfg)
	lib.Gateway = lib.NewPaymentGateway(cfg)

	lib.Uploads, err = lib.NewStorage(cfg)
	if err != nil {
		log.Fatal("failed to init upload storage", zap.Error(err))
	}

	if err := lib.ConnectDB(cfg); err != nil {
		log.Fatal("failed to connect to MongoDB", zap.Error(err))
	}

	app := fiber.New()

	app.Use(requestid.New())
	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(middleware.RequestLogger)

	routes.AuthRoutes(app)
	routes.ProfileRoutes(app)
	routes.UserRoutes(app)
	routes.ConnectionRoutes(app)
	routes.ProjectRoutes(app)
	routes.EventRoutes(app)
	routes.StatsRoutes(app)
	routes.ChatRoutes(app)
	routes.PaymentRoutes(app)

	app.Static("/uploads", lib.Uploads.Dir())

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		<-quit

		log.Info("shutting down")
		if err := app.ShutdownWithTimeout(cfg.ShutdownTimeout); err != nil {
			log.Error("shutdown failed", zap.Error(err))
		}
	}()

	log.Info("server listening", zap.String("port", cfg.Port))
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := lib.DisconnectDB(ctx); err != nil {
		log.Error("MongoDB disconnect failed", zap.Error(err))
	}
}
