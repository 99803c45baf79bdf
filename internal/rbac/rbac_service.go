package rbac

import (
	"context"
	"sort"
	"sync"

	"iakwe-hr/internal/domain"

	"github.com/casbin/casbin/v2"
	"go.uber.org/zap"
)

//go:generate mockgen -source=rbac_service.go -destination=mock/rbac_service_mock.go -package=mock
type Service interface {
	LoadCompanyPolicy(ctx context.Context, companyID string) error
	Enforce(ctx context.Context, req domain.EnforceRequest) (bool, error)
	PermissionsFor(ctx context.Context, role, companyID string) ([]domain.PermissionResponse, error)
}

type service struct {
	repo     Repository
	enforcer *casbin.Enforcer
	mu       sync.Mutex
	logger   *zap.Logger
	// catalog holds every (resource, action) pair seen while loading, for
	// PermissionsFor.
	catalog map[[2]string]struct{}
}

func NewService(repo Repository, enforcer *casbin.Enforcer, logger ...*zap.Logger) Service {
	l := zap.L().Named("rbac.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.service")
	}
	return &service{
		repo:     repo,
		enforcer: enforcer,
		logger:   l,
		catalog:  make(map[[2]string]struct{}),
	}
}

func (s *service) LoadCompanyPolicy(ctx context.Context, companyID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.loadCompanyPolicyUnlocked(ctx, companyID)
}

func (s *service) loadCompanyPolicyUnlocked(ctx context.Context, companyID string) error {
	s.enforcer.ClearPolicy()

	for _, p := range DefaultPermissions {
		if _, err := s.enforcer.AddPolicy(p.Role, WildcardDomain, p.Resource, p.Action); err != nil {
			return err
		}
		s.catalog[[2]string{p.Resource, p.Action}] = struct{}{}
	}

	rolePerms, err := s.repo.GetRolePermissions(ctx, companyID)
	if err != nil {
		return err
	}
	s.logger.Debug("rbac load policy",
		zap.String("company_id", companyID),
		zap.Int("role_permissions", len(rolePerms)),
	)

	for _, rp := range rolePerms {
		if isReservedGrant(rp.RoleName, rp.Resource, rp.Action) {
			s.logger.Warn("rbac ignoring reserved grant",
				zap.String("company_id", companyID),
				zap.String("role", rp.RoleName),
				zap.String("resource", rp.Resource),
				zap.String("action", rp.Action),
			)
			continue
		}
		if _, err := s.enforcer.AddPolicy(rp.RoleName, companyID, rp.Resource, rp.Action); err != nil {
			return err
		}
		s.catalog[[2]string{rp.Resource, rp.Action}] = struct{}{}
	}

	return nil
}

func (s *service) Enforce(ctx context.Context, req domain.EnforceRequest) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.loadCompanyPolicyUnlocked(ctx, req.CompanyID); err != nil {
		s.logger.Error("rbac load policy failed", zap.String("company_id", req.CompanyID), zap.Error(err))
		return false, err
	}

	allowed, err := s.enforcer.Enforce(req.Role, req.CompanyID, req.Resource, req.Action)
	if err != nil {
		s.logger.Error("rbac enforce failed",
			zap.String("role", req.Role),
			zap.String("company_id", req.CompanyID),
			zap.String("resource", req.Resource),
			zap.String("action", req.Action),
			zap.Error(err),
		)
		return false, err
	}

	s.logger.Debug("rbac enforce result",
		zap.String("role", req.Role),
		zap.String("company_id", req.CompanyID),
		zap.String("resource", req.Resource),
		zap.String("action", req.Action),
		zap.Bool("allowed", allowed),
	)

	return allowed, nil
}

func (s *service) PermissionsFor(ctx context.Context, role, companyID string) ([]domain.PermissionResponse, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.loadCompanyPolicyUnlocked(ctx, companyID); err != nil {
		return nil, err
	}

	perms := make([]domain.PermissionResponse, 0, len(s.catalog))
	for pair := range s.catalog {
		ok, err := s.enforcer.Enforce(role, companyID, pair[0], pair[1])
		if err != nil {
			return nil, err
		}
		if ok {
			perms = append(perms, domain.PermissionResponse{Resource: pair[0], Action: pair[1]})
		}
	}
	sort.Slice(perms, func(i, j int) bool {
		if perms[i].Resource != perms[j].Resource {
			return perms[i].Resource < perms[j].Resource
		}
		return perms[i].Action < perms[j].Action
	})
	return perms, nil
}
