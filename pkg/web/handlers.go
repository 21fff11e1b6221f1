// Package web provides the HTTP handlers for the scheduling service: the
// schedule endpoint and the static asset handler serving the agent form.
package web

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/VideoEngager/aws-videoengager-addons/pkg/config"
	"github.com/VideoEngager/aws-videoengager-addons/pkg/models"
	"github.com/VideoEngager/aws-videoengager-addons/pkg/services"
	"github.com/gofiber/fiber/v3"
	"github.com/gofiber/fiber/v3/middleware/requestid"
	"github.com/google/uuid"
)

type Handlers struct {
	scheduler *services.Scheduler
	cfg       config.Config
	logger    *slog.Logger
}

func NewHandlers(scheduler *services.Scheduler, cfg config.Config, logger *slog.Logger) *Handlers {
	return &Handlers{
		scheduler: scheduler,
		cfg:       cfg,
		logger:    logger,
	}
}

// Schedule adapts the fiber request onto the scheduler's transport-neutral
// envelope and writes its response verbatim, headers included. Status and
// body shape are a contract with the browser form.
func (h *Handlers) Schedule(c fiber.Ctx) error {
	id := requestid.FromContext(c)
	if id == "" {
		id = uuid.NewString()
	}

	resp := h.scheduler.Handle(c.Context(), models.Request{
		ID:         id,
		HasContext: true,
		Method:     c.Method(),
		Path:       c.Path(),
		Body:       string(c.Body()),
	})

	for key, value := range resp.Headers {
		c.Set(key, value)
	}

	return c.Status(resp.StatusCode).SendString(resp.Body)
}

// Asset serves the agent-facing form files, substituting the deployment
// placeholders the same way the original template server did. Unknown or
// unreadable files get a bare 404.
func (h *Handlers) Asset(c fiber.Ctx) error {
	name := filepath.Base(c.Params("file"))

	data, err := os.ReadFile(filepath.Join(h.cfg.AssetsDir, name))
	if err != nil {
		h.logger.Warn("Asset read failed", "file", name, "error", err)

		return c.Status(fiber.StatusNotFound).SendString("Not Found")
	}

	content := string(data)

	switch name {
	case "schedule.html":
		content = strings.ReplaceAll(content, "{{AGENT_EMAIL}}", strings.ToLower(c.Query("agentEmail")))
		content = strings.ReplaceAll(content, "{{LAMBDA_ENDPOINT}}", c.BaseURL()+h.cfg.SchedulePath)
	case "bundle.js":
		content = strings.ReplaceAll(content, "{{VE_APP_URL}}", "schedule.html")
		content = strings.ReplaceAll(content, "{{VE_CUST_DOMAIN}}", h.cfg.CustomerDomain)
	}

	c.Type(strings.TrimPrefix(filepath.Ext(name), "."))

	return c.SendString(content)
}
