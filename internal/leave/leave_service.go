package leave

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"iakwe-hr/internal/bootstrap"
	"iakwe-hr/internal/events"
	leaveerrors "iakwe-hr/internal/leave/errors"
	"iakwe-hr/internal/messaging/kafka"
	"iakwe-hr/internal/session"
	"iakwe-hr/internal/shared/contextutil"
	"iakwe-hr/internal/shared/counter"
	"iakwe-hr/internal/shared/entitystore"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	referencePrefix      = "LV"
	employeeStatusActive = "Active"
	snapshotKeyPrefix    = "leaves:snapshot:"
)

//go:generate mockgen -source=leave_service.go -destination=mock/leave_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, actor session.Actor, req CreateLeaveRequest) (LeaveResponse, error)
	List(ctx context.Context, actor session.Actor, req ListLeaveRequest) (LeaveListResponse, error)
	FilterByEmployee(ctx context.Context, actor session.Actor, employeeID string) (LeaveListResponse, error)
	GetByID(ctx context.Context, actor session.Actor, id string) (LeaveDetailResponse, error)
	Approve(ctx context.Context, actor session.Actor, id string, version int64) (LeaveResponse, error)
	Reject(ctx context.Context, actor session.Actor, id string, version int64, rejectionReason string) (LeaveResponse, error)
	Cancel(ctx context.Context, actor session.Actor, id string, version int64) (LeaveResponse, error)
	AddComment(ctx context.Context, actor session.Actor, id, body string) (CommentResponse, error)
	ListComments(ctx context.Context, actor session.Actor, id string) ([]CommentResponse, error)
	Export(ctx context.Context, actor session.Actor) ([]byte, error)
	Preview(req PreviewLeaveRequest) (DayCount, error)
	Options() OptionsResponse
}

// Dependencies groups the optional collaborators of the leave service. Nil
// members disable the matching feature (no reference numbers, no events, no
// snapshots, no audit trail).
type Dependencies struct {
	Counter   counter.Repository
	Outbox    kafka.OutboxRepository
	Policy    Policy
	Snapshots *entitystore.SnapshotCache
	Audit     bootstrap.AuditLogger
	Calendar  *HolidayCalendar
	Now       func() time.Time
}

type service struct {
	db        *sql.DB
	repo      Repository
	counter   counter.Repository
	outbox    kafka.OutboxRepository
	policy    Policy
	snapshots *entitystore.SnapshotCache
	audit     bootstrap.AuditLogger
	calendar  HolidayCalendar
	now       func() time.Time
	logger    *zap.Logger
}

func NewService(db *sql.DB, repo Repository, deps Dependencies, logger ...*zap.Logger) Service {
	l := zap.L().Named("leave.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.service")
	}

	s := &service{
		db:        db,
		repo:      repo,
		counter:   deps.Counter,
		outbox:    deps.Outbox,
		policy:    deps.Policy,
		snapshots: deps.Snapshots,
		audit:     deps.Audit,
		calendar:  DefaultCalendar(),
		now:       deps.Now,
		logger:    l,
	}
	if deps.Calendar != nil {
		s.calendar = *deps.Calendar
	}
	if s.policy == nil {
		s.policy = NewPolicy(nil)
	}
	if s.now == nil {
		s.now = func() time.Time { return time.Now().UTC() }
	}
	return s
}

func (s *service) Create(ctx context.Context, actor session.Actor, req CreateLeaveRequest) (LeaveResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("create leave requested",
		zap.String("request_id", rid),
		zap.String("company_id", actor.CompanyID),
		zap.String("actor_id", actor.UserID),
		zap.String("employee_id", req.EmployeeID),
		zap.String("start_date", req.StartDate),
		zap.String("end_date", req.EndDate),
	)

	l, err := s.validateCreateRequest(actor, req)
	if err != nil {
		s.logger.Warn("create leave validation failed", zap.String("request_id", rid), zap.Error(err))
		return LeaveResponse{}, err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("create leave begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	status, err := qtx.EmployeeStatus(ctx, actor.CompanyID, req.EmployeeID)
	if err != nil {
		s.logger.Error("create leave employee lookup failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	switch {
	case status == "":
		return LeaveResponse{}, leaveerrors.ErrEmployeeNotInCompany
	case status != employeeStatusActive:
		s.logger.Warn("create leave for inactive employee",
			zap.String("employee_id", req.EmployeeID),
			zap.String("employee_status", status),
		)
		return LeaveResponse{}, leaveerrors.ErrEmployeeNotActive
	}

	overlap, err := qtx.HasOverlappingPeriod(ctx, actor.CompanyID, req.EmployeeID, l.StartDate, l.EndDate)
	if err != nil {
		s.logger.Error("create leave overlap check failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	if overlap {
		s.logger.Warn("create leave overlap detected",
			zap.String("company_id", actor.CompanyID),
			zap.String("employee_id", req.EmployeeID),
			zap.String("start_date", req.StartDate),
			zap.String("end_date", req.EndDate),
		)
		return LeaveResponse{}, leaveerrors.ErrLeaveOverlap
	}

	if s.counter != nil {
		next, err := s.counter.WithTx(tx).GetNextValue(ctx, actor.CompanyID, counter.TypeLeaveReference)
		if err != nil {
			s.logger.Error("create leave reference number failed", zap.Error(err))
			return LeaveResponse{}, err
		}
		l.ReferenceNumber = counter.Format(referencePrefix, next)
	}

	if err := qtx.Create(ctx, l); err != nil {
		s.logger.Error("create leave persist failed", zap.Error(err))
		return LeaveResponse{}, err
	}

	if err := s.queueEvent(ctx, tx, l.ID.String(), events.EventLeaveRequested, events.LeaveRequestedTopic, events.LeaveRequestedEvent{
		EventType:       events.EventLeaveRequested,
		RequestID:       rid,
		LeaveID:         l.ID.String(),
		ReferenceNumber: l.ReferenceNumber,
		CompanyID:       actor.CompanyID,
		EmployeeID:      req.EmployeeID,
		LeaveType:       string(l.LeaveType),
		StartDate:       req.StartDate,
		EndDate:         req.EndDate,
		TotalDays:       l.TotalDays,
		RequestedBy:     actor.DisplayName(),
		OccurredAt:      s.now(),
	}); err != nil {
		return LeaveResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("create leave commit failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	s.logger.Info("create leave success",
		zap.String("request_id", rid),
		zap.String("leave_id", l.ID.String()),
		zap.String("reference_number", l.ReferenceNumber),
		zap.String("company_id", actor.CompanyID),
		zap.String("employee_id", req.EmployeeID),
	)

	return mapToResponse(*l), nil
}

func (s *service) validateCreateRequest(actor session.Actor, req CreateLeaveRequest) (*Leave, error) {
	companyUUID, err := uuid.Parse(actor.CompanyID)
	if err != nil {
		return nil, leaveerrors.ErrEmployeeNotInCompany
	}
	employeeUUID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return nil, leaveerrors.ErrInvalidEmployeeID
	}

	leaveType := LeaveType(strings.TrimSpace(req.LeaveType))
	if !leaveType.Valid() {
		return nil, leaveerrors.ErrInvalidLeaveType
	}

	culturalContext := strings.TrimSpace(req.CulturalContext)
	if culturalContext == "" {
		culturalContext = CulturalContextNotApplicable
	}
	if !validCulturalContext(culturalContext) {
		return nil, leaveerrors.ErrInvalidCulturalContext
	}
	if leaveType == TypeCultural && culturalContext == CulturalContextNotApplicable {
		return nil, leaveerrors.ErrCulturalContextRequired
	}

	reason := strings.TrimSpace(req.Reason)
	if reason == "" {
		return nil, leaveerrors.ErrReasonRequired
	}

	startDate, err := parseDate(req.StartDate)
	if err != nil {
		return nil, err
	}
	endDate, err := parseDate(req.EndDate)
	if err != nil {
		return nil, err
	}
	days, err := Calculate(startDate, endDate, s.calendar)
	if err != nil {
		return nil, err
	}

	return &Leave{
		ID:              uuid.New(),
		CompanyID:       companyUUID,
		EmployeeID:      employeeUUID,
		LeaveType:       leaveType,
		CulturalContext: culturalContext,
		StartDate:       startDate,
		EndDate:         endDate,
		TotalDays:       days.TotalDays,
		Reason:          reason,
		Status:          StatusPending,
		CreatedBy:       actor.UserID,
		Version:         1,
	}, nil
}

func (s *service) List(ctx context.Context, actor session.Actor, req ListLeaveRequest) (LeaveListResponse, error) {
	opts := parseListOptions(req)
	key := snapshotKey(actor.CompanyID, "all", opts)

	return s.listWithFallback(ctx, key, func() ([]Leave, error) {
		return s.repo.List(ctx, actor.CompanyID, opts)
	})
}

func (s *service) FilterByEmployee(ctx context.Context, actor session.Actor, employeeID string) (LeaveListResponse, error) {
	if _, err := uuid.Parse(employeeID); err != nil {
		return LeaveListResponse{}, leaveerrors.ErrInvalidEmployeeID
	}
	opts := entitystore.ListOptions{OrderBy: "start_date", Desc: true}
	key := snapshotKey(actor.CompanyID, "employee:"+employeeID, opts)

	return s.listWithFallback(ctx, key, func() ([]Leave, error) {
		return s.repo.FilterByEmployee(ctx, actor.CompanyID, employeeID, opts)
	})
}

// listWithFallback serves live data and refreshes the snapshot. When the
// store is unreachable it answers from the last snapshot (or an empty list)
// flagged as degraded; any other failure is returned as is.
func (s *service) listWithFallback(ctx context.Context, key string, fetch func() ([]Leave, error)) (LeaveListResponse, error) {
	leaves, err := fetch()
	if err == nil {
		items := mapToListResponse(leaves)
		if saveErr := s.snapshots.Save(ctx, key, items); saveErr != nil {
			s.logger.Warn("save leave list snapshot failed", zap.String("key", key), zap.Error(saveErr))
		}
		return LeaveListResponse{Items: items, Source: entitystore.Live()}, nil
	}

	if !entitystore.IsConnectivityError(err) {
		s.logger.Error("list leaves failed", zap.String("key", key), zap.Error(err))
		return LeaveListResponse{}, err
	}

	// request logger already carries request_id and user_id
	contextutil.GetLogger(ctx, s.logger).Warn("leave store unreachable, serving degraded list",
		zap.String("key", key),
		zap.Error(err),
	)

	var cached []LeaveResponse
	savedAt, found, loadErr := s.snapshots.Load(ctx, key, &cached)
	if loadErr != nil {
		s.logger.Warn("load leave list snapshot failed", zap.String("key", key), zap.Error(loadErr))
	}
	if !found || loadErr != nil {
		return LeaveListResponse{
			Items:  []LeaveResponse{},
			Source: entitystore.Degraded("leave records are unreachable and no saved copy is available", nil),
		}, nil
	}

	return LeaveListResponse{
		Items:  cached,
		Source: entitystore.Degraded("leave records are unreachable; showing the last saved copy", &savedAt),
	}, nil
}

func (s *service) GetByID(ctx context.Context, actor session.Actor, id string) (LeaveDetailResponse, error) {
	l, err := s.findLeave(ctx, s.repo, actor.CompanyID, id)
	if err != nil {
		return LeaveDetailResponse{}, err
	}

	actions, err := s.policy.AvailableActions(ctx, actor, *l)
	if err != nil {
		s.logger.Error("resolve leave actions failed", zap.String("leave_id", id), zap.Error(err))
		return LeaveDetailResponse{}, err
	}

	return LeaveDetailResponse{
		LeaveResponse:    mapToResponse(*l),
		Holidays:         s.calendar.Overlaps(l.StartDate, l.EndDate),
		AvailableActions: actions,
	}, nil
}

func (s *service) Approve(ctx context.Context, actor session.Actor, id string, version int64) (LeaveResponse, error) {
	return s.transitionLeaveStatus(ctx, actor, id, version, StatusApproved, "")
}

func (s *service) Reject(ctx context.Context, actor session.Actor, id string, version int64, rejectionReason string) (LeaveResponse, error) {
	return s.transitionLeaveStatus(ctx, actor, id, version, StatusRejected, rejectionReason)
}

func (s *service) Cancel(ctx context.Context, actor session.Actor, id string, version int64) (LeaveResponse, error) {
	return s.transitionLeaveStatus(ctx, actor, id, version, StatusCancelled, "")
}

func (s *service) transitionLeaveStatus(
	ctx context.Context,
	actor session.Actor,
	id string,
	version int64,
	target Status,
	rejectionReason string,
) (LeaveResponse, error) {
	rid := contextutil.GetRequestID(ctx)
	s.logger.Debug("transition leave status requested",
		zap.String("request_id", rid),
		zap.String("leave_id", id),
		zap.String("company_id", actor.CompanyID),
		zap.String("actor_id", actor.UserID),
		zap.String("target_status", string(target)),
		zap.Int64("version", version),
	)

	rejectionReason = strings.TrimSpace(rejectionReason)
	if target == StatusRejected && rejectionReason == "" {
		return LeaveResponse{}, leaveerrors.ErrRejectionReasonRequired
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		s.logger.Error("transition leave status begin tx failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	defer tx.Rollback()

	qtx := s.repo.WithTx(tx)

	l, err := s.findLeave(ctx, qtx, actor.CompanyID, id)
	if err != nil {
		return LeaveResponse{}, err
	}
	if l.Status != StatusPending {
		s.logger.Warn("transition leave status on processed request",
			zap.String("leave_id", id),
			zap.String("from_status", string(l.Status)),
			zap.String("to_status", string(target)),
		)
		return LeaveResponse{}, leaveerrors.ErrLeaveAlreadyProcessed
	}

	allowed, err := s.policy.CanTransition(ctx, actor, *l, target)
	if err != nil {
		s.logger.Error("transition leave policy check failed", zap.Error(err))
		return LeaveResponse{}, err
	}
	if !allowed {
		s.logger.Warn("transition leave forbidden",
			zap.String("leave_id", id),
			zap.String("actor_id", actor.UserID),
			zap.String("role", actor.Role),
			zap.String("to_status", string(target)),
		)
		return LeaveResponse{}, leaveerrors.ErrForbiddenTransition
	}

	if l.Version != version {
		return LeaveResponse{}, leaveerrors.ErrStaleLeave
	}

	now := s.now()
	changes := map[string]any{"status": string(target)}
	switch target {
	case StatusApproved:
		approvedBy := actor.DisplayName()
		changes["approved_by"] = approvedBy
		changes["approved_date"] = now
		changes["rejection_reason"] = nil
		l.ApprovedBy, l.ApprovedDate, l.RejectionReason = &approvedBy, &now, nil
	case StatusRejected:
		approvedBy := actor.DisplayName()
		changes["approved_by"] = approvedBy
		changes["approved_date"] = now
		changes["rejection_reason"] = rejectionReason
		l.ApprovedBy, l.ApprovedDate, l.RejectionReason = &approvedBy, &now, &rejectionReason
	case StatusCancelled:
		cancelledBy := actor.UserID
		changes["cancelled_by"] = cancelledBy
		changes["cancelled_at"] = now
		l.CancelledBy, l.CancelledAt = &cancelledBy, &now
	}

	if err := qtx.UpdateVersioned(ctx, actor.CompanyID, id, version, changes); err != nil {
		switch {
		case errors.Is(err, entitystore.ErrVersionConflict):
			return LeaveResponse{}, leaveerrors.ErrStaleLeave
		case errors.Is(err, entitystore.ErrNotFound):
			return LeaveResponse{}, leaveerrors.ErrLeaveNotFound
		}
		s.logger.Error("transition leave status persist failed",
			zap.String("leave_id", id),
			zap.String("target_status", string(target)),
			zap.Error(err),
		)
		return LeaveResponse{}, err
	}
	l.Status = target
	l.Version = version + 1
	l.UpdatedAt = now

	event := events.LeaveDecidedEvent{
		EventType:       events.EventLeaveDecided,
		RequestID:       rid,
		LeaveID:         id,
		ReferenceNumber: l.ReferenceNumber,
		CompanyID:       actor.CompanyID,
		EmployeeID:      l.EmployeeID.String(),
		Status:          string(target),
		DecidedBy:       actor.DisplayName(),
		RejectionReason: rejectionReason,
		StartDate:       l.StartDate.Format(dateLayout),
		EndDate:         l.EndDate.Format(dateLayout),
		OccurredAt:      now,
	}
	if err := s.queueEvent(ctx, tx, id, events.EventLeaveDecided, events.LeaveDecidedTopic, event); err != nil {
		return LeaveResponse{}, err
	}

	if err := tx.Commit(); err != nil {
		s.logger.Error("transition leave status commit failed",
			zap.String("leave_id", id),
			zap.Error(err),
		)
		return LeaveResponse{}, err
	}

	if s.audit != nil {
		s.audit.Log(ctx, bootstrap.AuditLog{
			Action:    "LEAVE_" + strings.ToUpper(string(target)),
			Message:   fmt.Sprintf("leave request %s %s", id, strings.ToLower(string(target))),
			ActorID:   actor.UserID,
			CompanyID: actor.CompanyID,
			Meta: map[string]any{
				"leave_id":         id,
				"reference_number": l.ReferenceNumber,
				"decided_by":       actor.DisplayName(),
				"version":          l.Version,
			},
		})
	}

	s.logger.Info("transition leave status success",
		zap.String("request_id", rid),
		zap.String("leave_id", id),
		zap.String("status", string(target)),
	)
	return mapToResponse(*l), nil
}

func (s *service) AddComment(ctx context.Context, actor session.Actor, id, body string) (CommentResponse, error) {
	body = strings.TrimSpace(body)
	if body == "" {
		return CommentResponse{}, leaveerrors.ErrCommentRequired
	}

	l, err := s.findLeave(ctx, s.repo, actor.CompanyID, id)
	if err != nil {
		return CommentResponse{}, err
	}

	c := &Comment{
		ID:         uuid.New(),
		CompanyID:  l.CompanyID,
		LeaveID:    l.ID,
		AuthorID:   actor.UserID,
		AuthorName: actor.DisplayName(),
		Body:       body,
		CreatedAt:  s.now(),
	}
	if err := s.repo.CreateComment(ctx, c); err != nil {
		s.logger.Error("add leave comment failed", zap.String("leave_id", id), zap.Error(err))
		return CommentResponse{}, err
	}

	return mapCommentResponse(*c), nil
}

func (s *service) ListComments(ctx context.Context, actor session.Actor, id string) ([]CommentResponse, error) {
	if _, err := s.findLeave(ctx, s.repo, actor.CompanyID, id); err != nil {
		return nil, err
	}

	comments, err := s.repo.ListComments(ctx, actor.CompanyID, id)
	if err != nil {
		s.logger.Error("list leave comments failed", zap.String("leave_id", id), zap.Error(err))
		return nil, err
	}

	resp := make([]CommentResponse, len(comments))
	for i, c := range comments {
		resp[i] = mapCommentResponse(c)
	}
	return resp, nil
}

func (s *service) Export(ctx context.Context, actor session.Actor) ([]byte, error) {
	leaves, err := s.repo.List(ctx, actor.CompanyID, entitystore.ListOptions{OrderBy: "start_date", Desc: true})
	if err != nil {
		if entitystore.IsConnectivityError(err) {
			return nil, leaveerrors.ErrLeaveStoreUnavailable
		}
		s.logger.Error("export leaves failed", zap.Error(err))
		return nil, err
	}

	buf, err := renderRegister(leaves, s.calendar)
	if err != nil {
		s.logger.Error("render leave register failed", zap.Error(err))
		return nil, err
	}
	s.logger.Info("leave register exported",
		zap.String("company_id", actor.CompanyID),
		zap.Int("rows", len(leaves)),
	)
	return buf, nil
}

func (s *service) Preview(req PreviewLeaveRequest) (DayCount, error) {
	return Preview(req.StartDate, req.EndDate, s.calendar)
}

func (s *service) Options() OptionsResponse {
	return OptionsResponse{
		LeaveTypes:       append([]LeaveType(nil), LeaveTypes...),
		CulturalContexts: append([]string(nil), CulturalContexts...),
		Holidays:         s.calendar.Holidays(),
	}
}

func (s *service) findLeave(ctx context.Context, repo Repository, companyID, id string) (*Leave, error) {
	if _, err := uuid.Parse(id); err != nil {
		return nil, leaveerrors.ErrLeaveNotFound
	}
	l, err := repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, leaveerrors.ErrLeaveNotFound
		}
		s.logger.Error("find leave failed", zap.String("leave_id", id), zap.Error(err))
		if entitystore.IsConnectivityError(err) {
			return nil, leaveerrors.ErrLeaveStoreUnavailable
		}
		return nil, err
	}
	return l, nil
}

func (s *service) queueEvent(ctx context.Context, tx *sql.Tx, aggregateID, eventType, topic string, payload any) error {
	if s.outbox == nil {
		return nil
	}

	event, err := kafka.NewOutboxEvent(contextutil.GetRequestID(ctx), "leave", aggregateID, eventType, topic, payload)
	if err != nil {
		s.logger.Error("build leave outbox event failed", zap.String("event_type", eventType), zap.Error(err))
		return err
	}
	if err := s.outbox.WithTx(tx).Create(ctx, event); err != nil {
		s.logger.Error("leave outbox persist failed",
			zap.String("leave_id", aggregateID),
			zap.String("event_type", eventType),
			zap.Error(err),
		)
		return err
	}
	return nil
}

func parseListOptions(req ListLeaveRequest) entitystore.ListOptions {
	orderBy := strings.TrimSpace(req.OrderBy)
	desc := req.Desc
	if strings.HasPrefix(orderBy, "-") {
		orderBy, desc = strings.TrimPrefix(orderBy, "-"), true
	}
	return entitystore.ListOptions{OrderBy: orderBy, Desc: desc, Limit: req.Limit}
}

func snapshotKey(companyID, scope string, opts entitystore.ListOptions) string {
	return fmt.Sprintf("%s%s:%s:%s:%t:%d", snapshotKeyPrefix, companyID, scope, opts.OrderBy, opts.Desc, opts.Limit)
}

func mapToResponse(l Leave) LeaveResponse {
	resp := LeaveResponse{
		ID:              l.ID.String(),
		CompanyID:       l.CompanyID.String(),
		EmployeeID:      l.EmployeeID.String(),
		ReferenceNumber: l.ReferenceNumber,
		LeaveType:       string(l.LeaveType),
		CulturalContext: l.CulturalContext,
		StartDate:       l.StartDate.Format(dateLayout),
		EndDate:         l.EndDate.Format(dateLayout),
		TotalDays:       l.TotalDays,
		Reason:          l.Reason,
		Status:          string(l.Status),
		RejectionReason: l.RejectionReason,
		ApprovedBy:      l.ApprovedBy,
		CancelledBy:     l.CancelledBy,
		CreatedBy:       l.CreatedBy,
		Version:         l.Version,
	}
	if l.ApprovedDate != nil {
		v := l.ApprovedDate.Format(time.RFC3339)
		resp.ApprovedDate = &v
	}
	if l.CancelledAt != nil {
		v := l.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &v
	}
	if !l.CreatedAt.IsZero() {
		resp.CreatedAt = l.CreatedAt.Format(time.RFC3339)
	}
	if !l.UpdatedAt.IsZero() {
		resp.UpdatedAt = l.UpdatedAt.Format(time.RFC3339)
	}
	return resp
}

func mapToListResponse(leaves []Leave) []LeaveResponse {
	resp := make([]LeaveResponse, len(leaves))
	for i, l := range leaves {
		resp[i] = mapToResponse(l)
	}
	return resp
}

func mapCommentResponse(c Comment) CommentResponse {
	return CommentResponse{
		ID:         c.ID.String(),
		LeaveID:    c.LeaveID.String(),
		AuthorID:   c.AuthorID,
		AuthorName: c.AuthorName,
		Body:       c.Body,
		CreatedAt:  c.CreatedAt.Format(time.RFC3339),
	}
}
