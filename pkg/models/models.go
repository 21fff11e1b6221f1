// Package models defines the request, response, and domain types for the
// video meeting scheduling service.
package models

import "time"

// Request is the transport-neutral view of an inbound scheduling request.
// Both the fiber handler and the Lambda adapter map their native request
// shapes into it before handing it to the scheduler.
type Request struct {
	// ID identifies the request in logs. Supplied by the transport layer.
	ID string
	// HasContext reports whether the transport delivered a request context
	// at all. API Gateway omits it for malformed invocations.
	HasContext bool
	Method     string
	Path       string
	Body       string
}

// Response is the transport-neutral reply envelope: the fiber handler writes
// it onto the connection, the Lambda adapter converts it into an API Gateway
// proxy response.
type Response struct {
	StatusCode int
	Headers    map[string]string
	Body       string
}

// VisitorInfo carries the customer's contact details. It is attached to the
// Connect task only; the copy sent to the VE service is always blanked.
type VisitorInfo struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject,omitempty"`
}

// ScheduleRequest is a fully validated scheduling request. Date keeps the
// caller's original string form because the VE service receives it verbatim;
// MeetingTime is the parsed instant used for the Connect task.
type ScheduleRequest struct {
	AgentEmail  string      `json:"agentEmail"`
	Date        string      `json:"date"`
	Duration    int         `json:"duration"`
	Visitor     VisitorInfo `json:"visitor"`
	InstanceID  string      `json:"instanceId,omitempty"`
	FlowID      string      `json:"flowId,omitempty"`
	MeetingTime time.Time   `json:"-"`
}

// ResolvedParameters are the effective parameters for one request, derived
// once from the request body and the process configuration.
type ResolvedParameters struct {
	InstanceID  string
	FlowID      string
	PartnerKey  string
	ExternalID  string
	AgentEmail  string
	MeetingTime time.Time
}
