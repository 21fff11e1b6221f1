package main

import (
	"context"
	"os"

	"github.com/VideoEngager/aws-videoengager-addons/pkg/config"
	"github.com/VideoEngager/aws-videoengager-addons/pkg/connect"
	"github.com/VideoEngager/aws-videoengager-addons/pkg/log"
	cli "github.com/urfave/cli/v3"
)

const defaultPort = 8080

func main() {
	cmd := &cli.Command{
		Name:                  "schedule-api",
		Usage:                 "Schedule video meetings through VideoEngager and Amazon Connect",
		EnableShellCompletion: true,
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Usage:   "Port to run the API server on",
				Value:   defaultPort,
				Sources: cli.EnvVars("PORT"),
			},
			&cli.StringFlag{
				Name:     "partner-key",
				Usage:    "VideoEngager partner access key",
				Required: true,
				Sources:  cli.EnvVars("PAK"),
			},
			&cli.StringFlag{
				Name:     "external-id",
				Usage:    "VideoEngager external organization ID",
				Required: true,
				Sources:  cli.EnvVars("EXTERNAL_ID"),
			},
			&cli.StringFlag{
				Name:     "ve-base-url",
				Usage:    "Base URL of the VideoEngager service",
				Required: true,
				Sources:  cli.EnvVars("VE_BASE_URL"),
			},
			&cli.StringFlag{
				Name:    "instance-id",
				Usage:   "Default Amazon Connect instance ID",
				Sources: cli.EnvVars("INSTANCE_ID"),
			},
			&cli.StringFlag{
				Name:    "flow-id",
				Usage:   "Default Amazon Connect contact flow ID",
				Sources: cli.EnvVars("FLOW_ID"),
			},
			&cli.StringFlag{
				Name:    "customer-domain",
				Usage:   "Customer email domain substituted into the agent form",
				Sources: cli.EnvVars("DOMAIN"),
			},
			&cli.StringFlag{
				Name:    "schedule-path",
				Usage:   "Resource path of the schedule endpoint",
				Value:   config.DefaultSchedulePath,
				Sources: cli.EnvVars("SCHEDULE_PATH"),
			},
			&cli.StringFlag{
				Name:    "assets-dir",
				Usage:   "Directory holding the agent form assets",
				Value:   "./assets",
				Sources: cli.EnvVars("ASSETS_DIR"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Usage:   "Log level (debug, info, warn, error)",
				Value:   "info",
				Sources: cli.EnvVars("LOG_LEVEL"),
			},
		},
		Action: func(ctx context.Context, command *cli.Command) error {
			log.Setup(command.String("log-level"))

			logger := log.WithModule("schedule-api")
			logger.InfoContext(ctx, "Initializing scheduling API")

			cfg := config.Config{
				PartnerKey:        command.String("partner-key"),
				ExternalID:        command.String("external-id"),
				VEBaseURL:         command.String("ve-base-url"),
				DefaultInstanceID: command.String("instance-id"),
				DefaultFlowID:     command.String("flow-id"),
				CustomerDomain:    command.String("customer-domain"),
				SchedulePath:      command.String("schedule-path"),
				AssetsDir:         command.String("assets-dir"),
			}

			tasks, err := connect.NewClient(ctx)
			if err != nil {
				logger.ErrorContext(ctx, "Failed to create Connect client", "error", err)

				return err
			}

			api := NewAPI(logger, cfg, tasks)

			if err := api.Start(command.Int("port")); err != nil {
				logger.ErrorContext(ctx, "Failed to start API server", "error", err)

				return err
			}

			return nil
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		panic(err)
	}
}
