package leave

import (
	"context"

	"iakwe-hr/internal/domain"
	"iakwe-hr/internal/session"
)

const (
	ActionApprove = "approve"
	ActionReject  = "reject"
	ActionCancel  = "cancel"
	ActionComment = "comment"
)

// Enforcer is the subset of rbac.Service the policy needs.
type Enforcer interface {
	Enforce(ctx context.Context, req domain.EnforceRequest) (bool, error)
}

// Policy decides who may move a request to which status. Services call it
// before every write; handlers call AvailableActions to decide what to show.
type Policy interface {
	CanTransition(ctx context.Context, actor session.Actor, l Leave, target Status) (bool, error)
	AvailableActions(ctx context.Context, actor session.Actor, l Leave) ([]string, error)
}

type rbacPolicy struct {
	enforcer Enforcer
}

// NewPolicy lets only the General Manager approve or reject, and then only
// when enforcer also grants leave:approve / leave:reject.
func NewPolicy(enforcer Enforcer) Policy {
	return &rbacPolicy{enforcer: enforcer}
}

func (p *rbacPolicy) CanTransition(ctx context.Context, actor session.Actor, l Leave, target Status) (bool, error) {
	if l.Status != StatusPending || actor.CompanyID != l.CompanyID.String() {
		return false, nil
	}

	switch target {
	case StatusApproved:
		return p.allowed(ctx, actor, ActionApprove)
	case StatusRejected:
		return p.allowed(ctx, actor, ActionReject)
	case StatusCancelled:
		return isOwner(actor, l), nil
	default:
		return false, nil
	}
}

func (p *rbacPolicy) AvailableActions(ctx context.Context, actor session.Actor, l Leave) ([]string, error) {
	actions := make([]string, 0, 4)

	for _, t := range []struct {
		action string
		target Status
	}{
		{ActionApprove, StatusApproved},
		{ActionReject, StatusRejected},
		{ActionCancel, StatusCancelled},
	} {
		ok, err := p.CanTransition(ctx, actor, l, t.target)
		if err != nil {
			return nil, err
		}
		if ok {
			actions = append(actions, t.action)
		}
	}

	return append(actions, ActionComment), nil
}

// allowed requires the General Manager role; the enforcer can only narrow
// that further, never widen it.
func (p *rbacPolicy) allowed(ctx context.Context, actor session.Actor, action string) (bool, error) {
	if !actor.IsGeneralManager() {
		return false, nil
	}
	if p.enforcer == nil {
		return true, nil
	}
	return p.enforcer.Enforce(ctx, domain.EnforceRequest{
		Role:      actor.Role,
		CompanyID: actor.CompanyID,
		Resource:  "leave",
		Action:    action,
	})
}

// isOwner covers self-service withdrawal: the employee the request is for,
// or whoever filed it on their behalf.
func isOwner(actor session.Actor, l Leave) bool {
	if actor.EmployeeID != "" && actor.EmployeeID == l.EmployeeID.String() {
		return true
	}
	return actor.UserID != "" && actor.UserID == l.CreatedBy
}
