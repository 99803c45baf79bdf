package leave

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"iakwe-hr/internal/shared/entitystore"
	"iakwe-hr/internal/tenant"

	"gorm.io/gorm"
)

var leaveStoreConfig = entitystore.Config{
	Orderable:    []string{"created_at", "updated_at", "start_date", "end_date", "status", "leave_type", "total_days"},
	Filterable:   []string{"employee_id", "status", "leave_type"},
	DefaultOrder: "created_at",
	DefaultDesc:  true,
}

//go:generate mockgen -source=leave_repo.go -destination=mock/leave_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, l *Leave) error
	List(ctx context.Context, companyID string, opts entitystore.ListOptions) ([]Leave, error)
	FilterByEmployee(ctx context.Context, companyID, employeeID string, opts entitystore.ListOptions) ([]Leave, error)
	FindByIDAndCompany(ctx context.Context, companyID, id string) (*Leave, error)
	UpdateVersioned(ctx context.Context, companyID, id string, version int64, changes map[string]any) error
	EmployeeStatus(ctx context.Context, companyID, employeeID string) (string, error)
	HasOverlappingPeriod(ctx context.Context, companyID, employeeID string, startDate, endDate time.Time) (bool, error)
	CreateComment(ctx context.Context, c *Comment) error
	ListComments(ctx context.Context, companyID, leaveID string) ([]Comment, error)
}

type repository struct {
	db     *gorm.DB
	leaves *entitystore.Store[Leave]
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db, leaves: entitystore.New[Leave](db, leaveStoreConfig)}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: entitystore.BindTx(r.db, tx), leaves: r.leaves.WithTx(tx)}
}

func (r *repository) Create(ctx context.Context, l *Leave) error {
	return r.leaves.Create(ctx, l)
}

func (r *repository) List(ctx context.Context, companyID string, opts entitystore.ListOptions) ([]Leave, error) {
	return r.leaves.List(ctx, companyID, opts)
}

func (r *repository) FilterByEmployee(ctx context.Context, companyID, employeeID string, opts entitystore.ListOptions) ([]Leave, error) {
	return r.leaves.Filter(ctx, companyID, map[string]any{"employee_id": employeeID}, opts)
}

// FindByIDAndCompany returns gorm.ErrRecordNotFound for a missing row so the
// service maps it the same way as other modules.
func (r *repository) FindByIDAndCompany(ctx context.Context, companyID, id string) (*Leave, error) {
	l, err := r.leaves.Get(ctx, companyID, id)
	if errors.Is(err, entitystore.ErrNotFound) {
		return nil, gorm.ErrRecordNotFound
	}
	return l, err
}

func (r *repository) UpdateVersioned(ctx context.Context, companyID, id string, version int64, changes map[string]any) error {
	return r.leaves.Update(ctx, companyID, id, version, changes)
}

// EmployeeStatus returns "" when the employee is not part of the company.
func (r *repository) EmployeeStatus(ctx context.Context, companyID, employeeID string) (string, error) {
	var statuses []string
	err := r.db.WithContext(ctx).
		Table("employees").
		Scopes(tenant.Scope(companyID)).
		Where("id = ?", employeeID).
		Where("deleted_at IS NULL").
		Limit(1).
		Pluck("status", &statuses).Error
	if err != nil || len(statuses) == 0 {
		return "", err
	}
	return statuses[0], nil
}

func (r *repository) HasOverlappingPeriod(ctx context.Context, companyID, employeeID string, startDate, endDate time.Time) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&Leave{}).
		Scopes(tenant.OwnedBy(companyID, employeeID)).
		Where("status NOT IN ?", []string{string(StatusCancelled), string(StatusRejected)}).
		Where("NOT (end_date < ? OR start_date > ?)", startDate, endDate).
		Count(&count).Error
	return count > 0, err
}

func (r *repository) CreateComment(ctx context.Context, c *Comment) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *repository) ListComments(ctx context.Context, companyID, leaveID string) ([]Comment, error) {
	var comments []Comment
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Where("leave_id = ?", leaveID).
		Order("created_at ASC").
		Find(&comments).Error
	return comments, err
}
