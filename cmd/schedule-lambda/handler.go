package main

import (
	"context"

	"github.com/VideoEngager/aws-videoengager-addons/pkg/models"
	"github.com/VideoEngager/aws-videoengager-addons/pkg/services"
	"github.com/aws/aws-lambda-go/events"
	"github.com/google/uuid"
)

type handlerFunc func(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error)

// newHandler adapts API Gateway proxy events onto the scheduler. The
// response always comes from the scheduler's envelope; the Lambda itself
// never errors, so API Gateway never substitutes its own error body.
func newHandler(scheduler *services.Scheduler) handlerFunc {
	return func(ctx context.Context, event events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
		id := event.RequestContext.RequestID
		if id == "" {
			id = uuid.NewString()
		}

		resp := scheduler.Handle(ctx, models.Request{
			ID:         id,
			HasContext: hasRequestContext(event),
			Method:     event.RequestContext.HTTPMethod,
			Path:       event.RequestContext.ResourcePath,
			Body:       event.Body,
		})

		return events.APIGatewayProxyResponse{
			StatusCode: resp.StatusCode,
			Headers:    resp.Headers,
			Body:       resp.Body,
		}, nil
	}
}

// hasRequestContext reports whether API Gateway attached a request context.
// The proxy event embeds it by value, so absence shows up as a zero value.
func hasRequestContext(event events.APIGatewayProxyRequest) bool {
	rc := event.RequestContext

	return rc.RequestID != "" || rc.HTTPMethod != "" || rc.ResourcePath != ""
}
