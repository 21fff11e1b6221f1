package services

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/VideoEngager/aws-videoengager-addons/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSchedulePath = "/schedule"

var testNow = time.Date(2026, 8, 29, 12, 0, 0, 0, time.UTC)

func validBody(t *testing.T) string {
	t.Helper()

	return fmt.Sprintf(`{
		"agentEmail": "agent@example.com",
		"date": %q,
		"duration": 30,
		"visitor": {
			"name": "Jane Visitor",
			"email": "jane@example.com",
			"phone": "+15551234567",
			"subject": "Billing question"
		}
	}`, testNow.Add(24*time.Hour).Format(time.RFC3339))
}

func postRequest(body string) models.Request {
	return models.Request{
		ID:         "test-request",
		HasContext: true,
		Method:     http.MethodPost,
		Path:       testSchedulePath,
		Body:       body,
	}
}

func TestValidateRequest_HTTPShape(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		request     models.Request
		expectedErr string
	}{
		{
			name:        "missing request context",
			request:     models.Request{Method: http.MethodPost, Path: testSchedulePath, Body: "{}"},
			expectedErr: "Missing request context",
		},
		{
			name:        "wrong method",
			request:     models.Request{HasContext: true, Method: http.MethodGet, Path: testSchedulePath, Body: "{}"},
			expectedErr: "Only POST method is allowed",
		},
		{
			name:        "wrong resource path",
			request:     models.Request{HasContext: true, Method: http.MethodPost, Path: "/other", Body: "{}"},
			expectedErr: "Invalid resource path",
		},
		{
			name:        "empty body",
			request:     models.Request{HasContext: true, Method: http.MethodPost, Path: testSchedulePath},
			expectedErr: "Request body is required",
		},
		{
			name:        "malformed JSON",
			request:     postRequest("{not json"),
			expectedErr: "Invalid JSON format",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := validateRequest(tt.request, testSchedulePath, testNow)
			require.Error(t, err)
			assert.True(t, IsValidationError(err))
			assert.Equal(t, tt.expectedErr, err.Error())
		})
	}
}

func TestValidateRequest_RequiredFieldOrder(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		body        string
		expectedErr string
	}{
		{
			name:        "everything missing reports agentEmail first",
			body:        `{}`,
			expectedErr: "agentEmail is required",
		},
		{
			name:        "date missing reported before visitor and duration",
			body:        `{"agentEmail": "agent@example.com"}`,
			expectedErr: "date is required",
		},
		{
			name:        "visitor missing reported before duration",
			body:        `{"agentEmail": "agent@example.com", "date": "2026-08-30T10:00:00Z"}`,
			expectedErr: "visitor is required",
		},
		{
			name:        "duration missing reported last",
			body:        `{"agentEmail": "agent@example.com", "date": "2026-08-30T10:00:00Z", "visitor": {"name": "J"}}`,
			expectedErr: "duration is required",
		},
		{
			name:        "zero duration counts as missing",
			body:        `{"agentEmail": "agent@example.com", "date": "2026-08-30T10:00:00Z", "visitor": {"name": "J"}, "duration": 0}`,
			expectedErr: "duration is required",
		},
		{
			name:        "visitor primitive rejected",
			body:        `{"agentEmail": "agent@example.com", "date": "2026-08-30T10:00:00Z", "visitor": "Jane", "duration": 30}`,
			expectedErr: "visitor must be an object",
		},
		{
			name:        "visitor name missing reported first",
			body:        `{"agentEmail": "agent@example.com", "date": "2026-08-30T10:00:00Z", "visitor": {}, "duration": 30}`,
			expectedErr: "visitor name is required",
		},
		{
			name:        "visitor email missing reported before phone",
			body:        `{"agentEmail": "agent@example.com", "date": "2026-08-30T10:00:00Z", "visitor": {"name": "Jane"}, "duration": 30}`,
			expectedErr: "visitor email is required",
		},
		{
			name:        "visitor phone missing reported last",
			body:        `{"agentEmail": "agent@example.com", "date": "2026-08-30T10:00:00Z", "visitor": {"name": "Jane", "email": "jane@example.com"}, "duration": 30}`,
			expectedErr: "visitor phone is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := validateRequest(postRequest(tt.body), testSchedulePath, testNow)
			require.Error(t, err)
			assert.Equal(t, tt.expectedErr, err.Error())
		})
	}
}

func TestValidateRequest_EmailShape(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name         string
		agentEmail   string
		visitorEmail string
		expectedErr  string
	}{
		{
			name:         "agent email without domain dot",
			agentEmail:   "agent@example",
			visitorEmail: "jane@example.com",
			expectedErr:  "Please enter a valid email address for agent email",
		},
		{
			name:         "agent email with whitespace",
			agentEmail:   "agent smith@example.com",
			visitorEmail: "jane@example.com",
			expectedErr:  "Please enter a valid email address for agent email",
		},
		{
			name:         "agent email checked before visitor email",
			agentEmail:   "not-an-email",
			visitorEmail: "also-not-an-email",
			expectedErr:  "Please enter a valid email address for agent email",
		},
		{
			name:         "visitor email without at sign",
			agentEmail:   "agent@example.com",
			visitorEmail: "jane.example.com",
			expectedErr:  "Please enter a valid email address for visitor email",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			body := fmt.Sprintf(
				`{"agentEmail": %q, "date": "2026-08-30T10:00:00Z", "visitor": {"name": "Jane", "email": %q, "phone": "+1555"}, "duration": 30}`,
				tt.agentEmail, tt.visitorEmail)

			_, err := validateRequest(postRequest(body), testSchedulePath, testNow)
			require.Error(t, err)
			assert.Equal(t, tt.expectedErr, err.Error())
		})
	}
}

func TestValidateRequest_Duration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		duration    string
		expectedErr string
	}{
		{name: "below minimum", duration: "10", expectedErr: "Meeting duration must be at least 15 minutes"},
		{name: "fourteen minutes", duration: "14", expectedErr: "Meeting duration must be at least 15 minutes"},
		{name: "non-numeric string", duration: `"soon"`, expectedErr: "Meeting duration must be at least 15 minutes"},
		{name: "exactly fifteen passes", duration: "15"},
		{name: "numeric string passes", duration: `"45"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			body := fmt.Sprintf(
				`{"agentEmail": "agent@example.com", "date": "2026-08-30T10:00:00Z", "visitor": {"name": "Jane", "email": "jane@example.com", "phone": "+1555"}, "duration": %s}`,
				tt.duration)

			req, err := validateRequest(postRequest(body), testSchedulePath, testNow)
			if tt.expectedErr != "" {
				require.Error(t, err)
				assert.Equal(t, tt.expectedErr, err.Error())

				return
			}

			require.NoError(t, err)
			assert.GreaterOrEqual(t, req.Duration, 15)
		})
	}
}

func TestValidateRequest_DateWindow(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		date        string
		expectedErr string
	}{
		{
			name:        "unparseable date",
			date:        "not-a-date",
			expectedErr: "Please enter a valid date",
		},
		{
			name:        "date in the past",
			date:        testNow.Add(-time.Hour).Format(time.RFC3339),
			expectedErr: "Please select a date in the future",
		},
		{
			name:        "date equal to now rejected",
			date:        testNow.Format(time.RFC3339),
			expectedErr: "Please select a date in the future",
		},
		{
			name:        "date beyond six days",
			date:        testNow.AddDate(0, 0, 7).Format(time.RFC3339),
			expectedErr: "Please select a date within the next 6 days",
		},
		{
			name: "date exactly six days ahead passes",
			date: testNow.AddDate(0, 0, 6).Format(time.RFC3339),
		},
		{
			name: "date-only form accepted",
			date: testNow.AddDate(0, 0, 1).Format("2006-01-02"),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			body := fmt.Sprintf(
				`{"agentEmail": "agent@example.com", "date": %q, "visitor": {"name": "Jane", "email": "jane@example.com", "phone": "+1555"}, "duration": 30}`,
				tt.date)

			req, err := validateRequest(postRequest(body), testSchedulePath, testNow)
			if tt.expectedErr != "" {
				require.Error(t, err)
				assert.Equal(t, tt.expectedErr, err.Error())

				return
			}

			require.NoError(t, err)
			assert.True(t, req.MeetingTime.After(testNow))
		})
	}
}

func TestValidateRequest_Valid(t *testing.T) {
	t.Parallel()

	req, err := validateRequest(postRequest(validBody(t)), testSchedulePath, testNow)
	require.NoError(t, err)

	assert.Equal(t, "agent@example.com", req.AgentEmail)
	assert.Equal(t, 30, req.Duration)
	assert.Equal(t, "Jane Visitor", req.Visitor.Name)
	assert.Equal(t, "jane@example.com", req.Visitor.Email)
	assert.Equal(t, "+15551234567", req.Visitor.Phone)
	assert.Equal(t, "Billing question", req.Visitor.Subject)
	assert.Equal(t, testNow.Add(24*time.Hour), req.MeetingTime)
	assert.Empty(t, req.InstanceID)
	assert.Empty(t, req.FlowID)
}

func TestValidateRequest_BodyOverrides(t *testing.T) {
	t.Parallel()

	body := fmt.Sprintf(
		`{"agentEmail": "agent@example.com", "date": %q, "visitor": {"name": "Jane", "email": "jane@example.com", "phone": "+1555"}, "duration": 30, "instanceId": "inst-1", "flowId": "flow-1"}`,
		testNow.Add(time.Hour).Format(time.RFC3339))

	req, err := validateRequest(postRequest(body), testSchedulePath, testNow)
	require.NoError(t, err)
	assert.Equal(t, "inst-1", req.InstanceID)
	assert.Equal(t, "flow-1", req.FlowID)
}
