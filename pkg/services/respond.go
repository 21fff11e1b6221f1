package services

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/VideoEngager/aws-videoengager-addons/pkg/models"
)

// responseHeaders is the fixed header set the browser form expects on every
// reply, success or failure.
func responseHeaders() map[string]string {
	return map[string]string{
		"Content-Type":                 "application/json",
		"Access-Control-Allow-Origin":  "*",
		"Access-Control-Allow-Headers": "*",
		"Access-Control-Allow-Methods": "GET,POST,OPTIONS",
	}
}

// successResponse echoes the VE record back with the caller's real visitor
// details superimposed. The VE-stored visitor is blank, but the caller
// already holds the PII it sent.
func successResponse(record map[string]any, visitor models.VisitorInfo) models.Response {
	body := make(map[string]any, len(record)+2)
	for key, value := range record {
		body[key] = value
	}

	merged := map[string]any{}
	if existing, ok := record["visitor"].(map[string]any); ok {
		for key, value := range existing {
			merged[key] = value
		}
	}

	merged["name"] = visitor.Name
	merged["email"] = visitor.Email
	merged["phone"] = visitor.Phone
	body["visitor"] = merged
	body["success"] = true

	encoded, err := json.Marshal(body)
	if err != nil {
		return errorResponse(err)
	}

	return models.Response{
		StatusCode: http.StatusOK,
		Headers:    responseHeaders(),
		Body:       string(encoded),
	}
}

// errorResponse maps a ValidationError to 400 with its message verbatim and
// everything else to 500 with the generic message.
func errorResponse(err error) models.Response {
	statusCode := http.StatusInternalServerError
	message := GenericErrorMessage

	if IsValidationError(err) {
		statusCode = http.StatusBadRequest
		message = err.Error()
	}

	encoded, _ := json.Marshal(map[string]any{
		"success": false,
		"message": message,
	})

	return models.Response{
		StatusCode: statusCode,
		Headers:    responseHeaders(),
		Body:       string(encoded),
	}
}

func errorResponseLogged(logger *slog.Logger, err error) models.Response {
	if IsValidationError(err) {
		logger.Warn("Scheduling request rejected", "error", err)
	} else {
		logger.Error("Scheduling request failed", "error", err)
	}

	return errorResponse(err)
}
