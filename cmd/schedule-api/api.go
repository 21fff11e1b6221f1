// Package main provides the scheduling API server.
package main

import (
	"log/slog"
	"strconv"

	"github.com/VideoEngager/aws-videoengager-addons/pkg/config"
	"github.com/VideoEngager/aws-videoengager-addons/pkg/connect"
	"github.com/VideoEngager/aws-videoengager-addons/pkg/services"
	"github.com/VideoEngager/aws-videoengager-addons/pkg/ve"
	"github.com/VideoEngager/aws-videoengager-addons/pkg/web"
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/cors"
	"github.com/gofiber/fiber/v3/middleware/healthcheck"
	"github.com/gofiber/fiber/v3/middleware/logger"
	"github.com/gofiber/fiber/v3/middleware/requestid"
)

type API struct {
	logger *slog.Logger
	cfg    config.Config
	tasks  connect.TaskStarter
}

func NewAPI(logger *slog.Logger, cfg config.Config, tasks connect.TaskStarter) *API {
	return &API{
		logger: logger,
		cfg:    cfg,
		tasks:  tasks,
	}
}

func (a *API) App() *fiber.App {
	veClient := ve.NewClient(a.cfg.VEBaseURL, a.logger)
	scheduler := services.NewScheduler(a.cfg, veClient, a.tasks, a.logger)
	handlers := web.NewHandlers(scheduler, a.cfg, a.logger)

	app := fiber.New()
	app.Use(requestid.New())
	app.Use(cors.New())
	app.Use(logger.New(logger.Config{
		DisableColors: true,
	}))

	app.Get(healthcheck.DefaultLivenessEndpoint, healthcheck.NewHealthChecker())
	app.Get(healthcheck.DefaultReadinessEndpoint, healthcheck.NewHealthChecker())

	app.Post(a.cfg.SchedulePath, handlers.Schedule)
	app.Get("/:file", handlers.Asset)

	return app
}

func (a *API) Start(port int) error {
	return a.App().Listen(":" + strconv.Itoa(port))
}
