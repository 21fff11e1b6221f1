package services

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/VideoEngager/aws-videoengager-addons/pkg/config"
	"github.com/VideoEngager/aws-videoengager-addons/pkg/connect"
	"github.com/VideoEngager/aws-videoengager-addons/pkg/models"
	"github.com/VideoEngager/aws-videoengager-addons/pkg/ve"
)

// Scheduler sequences one scheduling request: validate, resolve parameters,
// authenticate to VE, create the VE schedule record, then create the Connect
// task. When the task step fails it compensates by deleting the VE record.
type Scheduler struct {
	cfg    config.Config
	ve     *ve.Client
	tasks  connect.TaskStarter
	logger *slog.Logger
}

func NewScheduler(cfg config.Config, veClient *ve.Client, tasks connect.TaskStarter, logger *slog.Logger) *Scheduler {
	if cfg.SchedulePath == "" {
		cfg.SchedulePath = config.DefaultSchedulePath
	}

	return &Scheduler{
		cfg:    cfg,
		ve:     veClient,
		tasks:  tasks,
		logger: logger,
	}
}

// Handle runs the full pipeline and always produces a writable response:
// validation failures surface their message with 400, anything unexpected is
// logged and collapsed into a generic 500.
func (s *Scheduler) Handle(ctx context.Context, req models.Request) (resp models.Response) {
	logger := s.logger.With("request_id", req.ID)

	defer func() {
		if r := recover(); r != nil {
			logger.Error("Unexpected failure while scheduling", "panic", r)

			resp = errorResponse(fmt.Errorf("panic: %v", r))
		}
	}()

	scheduleReq, err := validateRequest(req, s.cfg.SchedulePath, time.Now())
	if err != nil {
		return errorResponseLogged(logger, err)
	}

	params, err := s.resolveParameters(scheduleReq)
	if err != nil {
		return errorResponseLogged(logger, err)
	}

	logger.Info("Processing scheduling request",
		"agent_email", params.AgentEmail,
		"meeting_time", params.MeetingTime.Format(time.RFC3339))

	token := s.ve.Authenticate(ctx, params.PartnerKey, params.ExternalID, params.AgentEmail)
	if token == "" {
		return errorResponseLogged(logger, NewValidationError("Authentication failed"))
	}

	created := s.ve.CreateSchedule(ctx, token, scheduleReq.Date, scheduleReq.Duration, params.AgentEmail)
	if created.Status != http.StatusOK {
		return errorResponseLogged(logger, NewValidationError(
			fmt.Sprintf("VE scheduling failed with %d: %s", created.Status, created.Message())))
	}

	veVisitorID, _ := created.Data["_id"].(string)
	if veVisitorID == "" {
		return errorResponseLogged(logger, NewValidationError("VE schedule created but no ID returned"))
	}

	contactID, err := s.tasks.StartTask(ctx, buildTask(params, scheduleReq, veVisitorID))
	if err != nil {
		logger.Error("Connect task creation failed, attempting cleanup", "error", err)
		s.compensate(ctx, logger, token, veVisitorID)

		return errorResponseLogged(logger, NewValidationError("Failed to create Connect task"))
	}

	logger.Info("Created schedule and task",
		"visitor_name", scheduleReq.Visitor.Name,
		"ve_visitor_id", veVisitorID,
		"contact_id", contactID)

	return successResponse(created.Data, scheduleReq.Visitor)
}

// resolveParameters combines request overrides with the process
// configuration. Missing secrets are an operator problem and stay internal;
// missing instance/flow ids are the caller's to fix.
func (s *Scheduler) resolveParameters(req *models.ScheduleRequest) (models.ResolvedParameters, error) {
	if err := s.cfg.Validate(); err != nil {
		return models.ResolvedParameters{}, err
	}

	instanceID := req.InstanceID
	if instanceID == "" {
		instanceID = s.cfg.DefaultInstanceID
	}

	flowID := req.FlowID
	if flowID == "" {
		flowID = s.cfg.DefaultFlowID
	}

	if instanceID == "" {
		return models.ResolvedParameters{}, NewValidationError("instanceId is required")
	}

	if flowID == "" {
		return models.ResolvedParameters{}, NewValidationError("flowId is required")
	}

	return models.ResolvedParameters{
		InstanceID:  instanceID,
		FlowID:      flowID,
		PartnerKey:  s.cfg.PartnerKey,
		ExternalID:  s.cfg.ExternalID,
		AgentEmail:  req.AgentEmail,
		MeetingTime: req.MeetingTime,
	}, nil
}

// buildTask assembles the Connect task. This is the only place visitor PII
// leaves the service.
func buildTask(params models.ResolvedParameters, req *models.ScheduleRequest, veVisitorID string) connect.TaskInput {
	attributes := map[string]string{
		"veVisitorId":  veVisitorID,
		"visitorName":  req.Visitor.Name,
		"visitorEmail": req.Visitor.Email,
		"visitorPhone": req.Visitor.Phone,
	}
	if req.Visitor.Subject != "" {
		attributes["visitorSubject"] = req.Visitor.Subject
	}

	return connect.TaskInput{
		InstanceID:    params.InstanceID,
		FlowID:        params.FlowID,
		Name:          "Video Call with " + req.Visitor.Name,
		Description:   "Scheduled video conference",
		ScheduledTime: params.MeetingTime,
		Attributes:    attributes,
	}
}

// compensate deletes the VE record after a failed task creation. Single
// attempt; the result is logged and discarded, and the original failure is
// what reaches the caller.
func (s *Scheduler) compensate(ctx context.Context, logger *slog.Logger, token, veVisitorID string) {
	res := s.ve.DeleteSchedule(ctx, token, veVisitorID)
	if res.Status == http.StatusOK {
		logger.Info("VE schedule cleanup successful", "ve_visitor_id", veVisitorID)
	} else {
		logger.Error("VE schedule cleanup failed",
			"ve_visitor_id", veVisitorID,
			"status", res.Status,
			"error", res.Message())
	}
}
