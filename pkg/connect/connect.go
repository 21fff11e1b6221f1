// Package connect starts scheduled task contacts on an Amazon Connect
// instance.
package connect

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/connect"
)

// TaskInput describes one scheduled task. Attributes carries the visitor's
// real contact details plus the VE record id linking the two systems.
type TaskInput struct {
	InstanceID    string
	FlowID        string
	Name          string
	Description   string
	ScheduledTime time.Time
	Attributes    map[string]string
}

// TaskStarter creates a scheduled task and returns the contact id.
type TaskStarter interface {
	StartTask(ctx context.Context, input TaskInput) (string, error)
}

// API is the slice of the Connect service client this package uses.
type API interface {
	StartTaskContact(ctx context.Context, params *connect.StartTaskContactInput, optFns ...func(*connect.Options)) (*connect.StartTaskContactOutput, error)
}

type Client struct {
	api API
}

// NewClient builds a Client against the real Connect service using the
// default AWS credential chain.
func NewClient(ctx context.Context) (*Client, error) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load AWS configuration: %w", err)
	}

	return &Client{api: connect.NewFromConfig(cfg)}, nil
}

func NewClientWithAPI(api API) *Client {
	return &Client{api: api}
}

func (c *Client) StartTask(ctx context.Context, input TaskInput) (string, error) {
	out, err := c.api.StartTaskContact(ctx, &connect.StartTaskContactInput{
		InstanceId:    aws.String(input.InstanceID),
		ContactFlowId: aws.String(input.FlowID),
		Name:          aws.String(input.Name),
		Description:   aws.String(input.Description),
		ScheduledTime: aws.Time(input.ScheduledTime),
		Attributes:    input.Attributes,
	})
	if err != nil {
		return "", fmt.Errorf("failed to start task contact: %w", err)
	}

	return aws.ToString(out.ContactId), nil
}
