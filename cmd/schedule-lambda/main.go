// Package main provides the AWS Lambda entrypoint for the scheduling
// service, adapting API Gateway proxy events onto the scheduler.
package main

import (
	"context"
	"os"

	"github.com/VideoEngager/aws-videoengager-addons/pkg/config"
	"github.com/VideoEngager/aws-videoengager-addons/pkg/connect"
	"github.com/VideoEngager/aws-videoengager-addons/pkg/log"
	"github.com/VideoEngager/aws-videoengager-addons/pkg/services"
	"github.com/VideoEngager/aws-videoengager-addons/pkg/ve"
	"github.com/aws/aws-lambda-go/lambda"
)

func main() {
	log.Setup(os.Getenv("LOG_LEVEL"))
	logger := log.WithModule("schedule-lambda")

	cfg := config.FromEnv()

	tasks, err := connect.NewClient(context.Background())
	if err != nil {
		logger.Error("Failed to create Connect client", "error", err)
		os.Exit(1)
	}

	veClient := ve.NewClient(cfg.VEBaseURL, logger)
	scheduler := services.NewScheduler(cfg, veClient, tasks, logger)

	lambda.Start(newHandler(scheduler))
}
