package services

import (
	"encoding/json"
	"net/http"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/VideoEngager/aws-videoengager-addons/pkg/models"
)

const (
	// minDuration is the shortest meeting the service accepts, in minutes.
	minDuration = 15
	// maxDaysAhead bounds how far in the future a meeting may be scheduled.
	maxDaysAhead = 6
)

// emailPattern is deliberately permissive: one @ with non-whitespace on both
// sides and a dot somewhere in the domain. The browser form applies the same
// shape, so anything stricter here would reject input the form accepted.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// validateRequest turns a raw inbound request into a ScheduleRequest or
// fails with a ValidationError. Checks run in a fixed order and the first
// failure wins; the messages are a contract with the browser form and must
// not change.
func validateRequest(req models.Request, schedulePath string, now time.Time) (*models.ScheduleRequest, error) {
	if !req.HasContext {
		return nil, NewValidationError("Missing request context")
	}

	if req.Method != http.MethodPost {
		return nil, NewValidationError("Only POST method is allowed")
	}

	if req.Path != schedulePath {
		return nil, NewValidationError("Invalid resource path")
	}

	if req.Body == "" {
		return nil, NewValidationError("Request body is required")
	}

	var raw map[string]any
	if err := json.Unmarshal([]byte(req.Body), &raw); err != nil {
		return nil, NewValidationError("Invalid JSON format")
	}

	for _, field := range []string{"agentEmail", "date", "visitor", "duration"} {
		if isBlank(raw[field]) {
			return nil, NewValidationError(field + " is required")
		}
	}

	visitor, ok := raw["visitor"].(map[string]any)
	if !ok {
		return nil, NewValidationError("visitor must be an object")
	}

	for _, field := range []string{"name", "email", "phone"} {
		if isBlank(visitor[field]) {
			return nil, NewValidationError("visitor " + field + " is required")
		}
	}

	agentEmail, _ := raw["agentEmail"].(string)
	if !emailPattern.MatchString(agentEmail) {
		return nil, NewValidationError("Please enter a valid email address for agent email")
	}

	visitorEmail, _ := visitor["email"].(string)
	if !emailPattern.MatchString(visitorEmail) {
		return nil, NewValidationError("Please enter a valid email address for visitor email")
	}

	duration, ok := asMinutes(raw["duration"])
	if !ok || duration < minDuration {
		return nil, NewValidationError("Meeting duration must be at least 15 minutes")
	}

	dateStr, _ := raw["date"].(string)

	meetingTime, err := parseDate(dateStr)
	if err != nil {
		return nil, NewValidationError("Please enter a valid date")
	}

	if !meetingTime.After(now) {
		return nil, NewValidationError("Please select a date in the future")
	}

	if meetingTime.After(now.AddDate(0, 0, maxDaysAhead)) {
		return nil, NewValidationError("Please select a date within the next 6 days")
	}

	return &models.ScheduleRequest{
		AgentEmail: agentEmail,
		Date:       dateStr,
		Duration:   duration,
		Visitor: models.VisitorInfo{
			Name:    asString(visitor["name"]),
			Email:   visitorEmail,
			Phone:   asString(visitor["phone"]),
			Subject: asString(visitor["subject"]),
		},
		InstanceID:  asString(raw["instanceId"]),
		FlowID:      asString(raw["flowId"]),
		MeetingTime: meetingTime,
	}, nil
}

// isBlank treats absent, null, empty-string, and zero values as missing,
// matching how the browser form serializes untouched fields.
func isBlank(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return v == ""
	case bool:
		return !v
	case float64:
		return v == 0
	default:
		return false
	}
}

func asString(value any) string {
	s, _ := value.(string)

	return s
}

// asMinutes accepts a JSON number or a numeric string. Anything else is a
// validation failure, reported by the caller as a too-short duration.
func asMinutes(value any) (int, bool) {
	switch v := value.(type) {
	case float64:
		return int(v), true
	case string:
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return 0, false
		}

		return n, true
	default:
		return 0, false
	}
}

var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02",
}

func parseDate(value string) (time.Time, error) {
	var lastErr error

	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, value)
		if err == nil {
			return t, nil
		}

		lastErr = err
	}

	return time.Time{}, lastErr
}
