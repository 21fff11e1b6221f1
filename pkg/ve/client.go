// Package ve is the client for the VideoEngager session API: partner
// impersonation auth and schedule record create/delete.
package ve

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
)

const defaultTimeout = 30 * time.Second

// Result folds every outcome of a VE call into plain data. Transport
// failures are reported with Status 0 and Err set instead of a Go error, so
// call sites inspect results uniformly.
type Result struct {
	Status int
	Data   map[string]any
	Err    string
}

// Message picks the most specific failure text the VE service returned:
// the transport error, then the API's error field, then its message field.
func (r Result) Message() string {
	if r.Err != "" {
		return r.Err
	}

	if m, ok := r.Data["error"].(string); ok && m != "" {
		return m
	}

	if m, ok := r.Data["message"].(string); ok && m != "" {
		return m
	}

	return "Unknown error"
}

type Client struct {
	http   *resty.Client
	logger *slog.Logger
}

func NewClient(baseURL string, logger *slog.Logger) *Client {
	return &Client{
		http: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(defaultTimeout).
			SetHeader("Content-Type", "application/json"),
		logger: logger,
	}
}

// schedulePayload is the body of a schedule-create call. The visitor block
// is a fixed set of empty strings: visitor PII never reaches the VE service.
type schedulePayload struct {
	Date     string       `json:"date"`
	Duration int          `json:"duration"`
	Visitor  blankVisitor `json:"visitor"`
}

type blankVisitor struct {
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// Authenticate exchanges the partner key for an agent-scoped bearer token.
// It returns "" when any input is missing, on any non-200 response, and on
// transport failure; the cause is logged but callers only see the empty
// token.
func (c *Client) Authenticate(ctx context.Context, partnerKey, externalID, agentEmail string) string {
	if partnerKey == "" || externalID == "" || agentEmail == "" {
		c.logger.Error("Missing partner key, external ID, or agent email")

		return ""
	}

	path := "/api/partners/impersonate/" +
		url.PathEscape(partnerKey) + "/" +
		url.PathEscape(externalID) + "/" +
		url.PathEscape(agentEmail)

	res := c.do(ctx, http.MethodGet, path, nil, nil, "")
	if res.Status == http.StatusOK {
		if token, ok := res.Data["token"].(string); ok && token != "" {
			return token
		}
	}

	c.logger.Error("Authentication failed", "status", res.Status, "error", res.Message())

	return ""
}

// CreateSchedule creates a VE schedule record for the agent. The date string
// is forwarded exactly as the caller sent it.
func (c *Client) CreateSchedule(ctx context.Context, token, date string, duration int, agentEmail string) Result {
	payload := schedulePayload{
		Date:     date,
		Duration: duration,
		Visitor:  blankVisitor{},
	}

	return c.do(ctx, http.MethodPost, "/api/schedules/my/", payload, map[string]string{
		"agentEmail": agentEmail,
	}, token)
}

// DeleteSchedule removes a VE schedule record. Compensation only; the caller
// logs and discards the result.
func (c *Client) DeleteSchedule(ctx context.Context, token, id string) Result {
	return c.do(ctx, http.MethodDelete, "/api/schedules/my/"+url.PathEscape(id), nil, nil, token)
}

// do performs one VE call. It never returns a Go error: transport failures
// become Result{Status: 0} with the error text in both Err and Data so the
// uniform error/message lookup still works.
func (c *Client) do(ctx context.Context, method, path string, body any, query map[string]string, token string) Result {
	req := c.http.R().SetContext(ctx)

	for key, value := range query {
		if value != "" {
			req.SetQueryParam(key, value)
		}
	}

	if token != "" {
		req.SetAuthToken(token)
	}

	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		c.logger.Error("VE request failed", "method", method, "path", path, "error", err)

		return Result{
			Status: 0,
			Data:   map[string]any{"error": err.Error()},
			Err:    err.Error(),
		}
	}

	var data map[string]any

	// Non-JSON bodies leave Data nil; status still tells the caller enough.
	_ = json.Unmarshal(resp.Body(), &data)

	return Result{Status: resp.StatusCode(), Data: data}
}
