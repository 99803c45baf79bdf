package notification

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"iakwe-hr/internal/events"
	notificationerrors "iakwe-hr/internal/notification/errors"
	"iakwe-hr/internal/session"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

//go:generate mockgen -source=notification_service.go -destination=mock/notification_service_mock.go -package=mock
type Service interface {
	CreateFromLeaveDecision(ctx context.Context, evt events.LeaveDecidedEvent) error
	ListForEmployee(ctx context.Context, actor session.Actor, unreadOnly bool) ([]NotificationResponse, error)
	MarkRead(ctx context.Context, actor session.Actor, id string) error
}

type service struct {
	repo   Repository
	now    func() time.Time
	logger *zap.Logger
}

func NewService(repo Repository, logger ...*zap.Logger) Service {
	l := zap.L().Named("notification.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("notification.service")
	}
	return &service{
		repo:   repo,
		now:    func() time.Time { return time.Now().UTC() },
		logger: l,
	}
}

// CreateFromLeaveDecision is safe to call more than once for the same event;
// redelivered messages resolve to the same dedupe key.
func (s *service) CreateFromLeaveDecision(ctx context.Context, evt events.LeaveDecidedEvent) error {
	leaveID, err := uuid.Parse(evt.LeaveID)
	if err != nil {
		return fmt.Errorf("leave decided event: invalid leave id %q", evt.LeaveID)
	}
	companyID, err := uuid.Parse(evt.CompanyID)
	if err != nil {
		return fmt.Errorf("leave decided event: invalid company id %q", evt.CompanyID)
	}
	employeeID, err := uuid.Parse(evt.EmployeeID)
	if err != nil {
		return fmt.Errorf("leave decided event: invalid employee id %q", evt.EmployeeID)
	}

	n := &Notification{
		ID:         uuid.New(),
		CompanyID:  companyID,
		EmployeeID: employeeID,
		LeaveID:    leaveID,
		DedupeKey:  leaveID.String() + ":" + evt.Status,
		Title:      fmt.Sprintf("Leave %s %s", evt.ReferenceNumber, evt.Status),
		Body:       decisionBody(evt),
		CreatedAt:  s.now(),
	}

	created, err := s.repo.Create(ctx, n)
	if err != nil {
		s.logger.Error("create notification failed",
			zap.String("request_id", evt.RequestID),
			zap.String("leave_id", evt.LeaveID),
			zap.Error(err),
		)
		return err
	}
	if !created {
		s.logger.Info("notification already recorded",
			zap.String("leave_id", evt.LeaveID),
			zap.String("status", evt.Status),
		)
		return nil
	}

	s.logger.Info("notification created",
		zap.String("request_id", evt.RequestID),
		zap.String("leave_id", evt.LeaveID),
		zap.String("employee_id", evt.EmployeeID),
		zap.String("status", evt.Status),
	)
	return nil
}

func decisionBody(evt events.LeaveDecidedEvent) string {
	period := evt.StartDate
	if evt.EndDate != "" && evt.EndDate != evt.StartDate {
		period = evt.StartDate + " to " + evt.EndDate
	}
	switch evt.Status {
	case "Rejected":
		return fmt.Sprintf("Your leave for %s was rejected by %s: %s", period, evt.DecidedBy, evt.RejectionReason)
	case "Cancelled":
		return fmt.Sprintf("Your leave for %s was cancelled.", period)
	default:
		return fmt.Sprintf("Your leave for %s was %s by %s.", period, strings.ToLower(evt.Status), evt.DecidedBy)
	}
}

func (s *service) ListForEmployee(ctx context.Context, actor session.Actor, unreadOnly bool) ([]NotificationResponse, error) {
	if actor.EmployeeID == "" {
		return nil, notificationerrors.ErrNoEmployeeProfile
	}

	items, err := s.repo.ListForEmployee(ctx, actor.CompanyID, actor.EmployeeID, unreadOnly)
	if err != nil {
		s.logger.Error("list notifications failed",
			zap.String("employee_id", actor.EmployeeID),
			zap.Error(err),
		)
		return nil, err
	}

	resp := make([]NotificationResponse, len(items))
	for i, n := range items {
		resp[i] = mapToResponse(n)
	}
	return resp, nil
}

func (s *service) MarkRead(ctx context.Context, actor session.Actor, id string) error {
	if actor.EmployeeID == "" {
		return notificationerrors.ErrNoEmployeeProfile
	}
	if _, err := uuid.Parse(id); err != nil {
		return notificationerrors.ErrInvalidNotificationID
	}

	err := s.repo.MarkRead(ctx, actor.CompanyID, actor.EmployeeID, id, s.now())
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return notificationerrors.ErrNotificationNotFound
	}
	if err != nil {
		s.logger.Error("mark notification read failed", zap.String("notification_id", id), zap.Error(err))
		return err
	}
	return nil
}

func mapToResponse(n Notification) NotificationResponse {
	resp := NotificationResponse{
		ID:        n.ID.String(),
		LeaveID:   n.LeaveID.String(),
		Title:     n.Title,
		Body:      n.Body,
		CreatedAt: n.CreatedAt.Format(time.RFC3339),
	}
	if n.ReadAt != nil {
		v := n.ReadAt.Format(time.RFC3339)
		resp.ReadAt = &v
	}
	return resp
}
