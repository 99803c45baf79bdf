package employee

import (
	"context"
	"database/sql"
	"errors"

	"iakwe-hr/internal/shared/entitystore"
	"iakwe-hr/internal/tenant"

	"gorm.io/gorm"
)

var employeeStoreConfig = entitystore.Config{
	Orderable:    []string{"full_name", "email", "department", "position", "hire_date", "created_at"},
	Filterable:   []string{"status", "department"},
	DefaultOrder: "full_name",
}

//go:generate mockgen -source=employee_repo.go -destination=mock/employee_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, empl *Employee) error
	FindAllByCompany(ctx context.Context, companyID string, opts entitystore.ListOptions) ([]Employee, error)
	FindOptionsByCompany(ctx context.Context, companyID string) ([]Employee, error)
	FindByIDAndCompany(ctx context.Context, companyID string, id string) (*Employee, error)
	Update(ctx context.Context, companyID, id string, version int64, changes map[string]any) error
	Delete(ctx context.Context, companyID string, id string) error
}

type repository struct {
	db        *gorm.DB
	employees *entitystore.Store[Employee]
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{
		db:        db,
		employees: entitystore.New[Employee](db, employeeStoreConfig),
	}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{
		db:        entitystore.BindTx(r.db, tx),
		employees: r.employees.WithTx(tx),
	}
}

func (r *repository) Create(ctx context.Context, empl *Employee) error {
	return r.employees.Create(ctx, empl)
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID string, opts entitystore.ListOptions) ([]Employee, error) {
	return r.employees.List(ctx, companyID, opts)
}

func (r *repository) FindOptionsByCompany(ctx context.Context, companyID string) ([]Employee, error) {
	var empls []Employee
	err := r.db.WithContext(ctx).
		Scopes(tenant.Scope(companyID)).
		Select("id", "full_name", "department", "position").
		Where("status = ?", StatusActive).
		Order("full_name ASC").
		Find(&empls).Error
	return empls, err
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID string, id string) (*Employee, error) {
	empl, err := r.employees.Get(ctx, companyID, id)
	if errors.Is(err, entitystore.ErrNotFound) {
		return nil, gorm.ErrRecordNotFound
	}
	return empl, err
}

func (r *repository) Update(ctx context.Context, companyID, id string, version int64, changes map[string]any) error {
	return r.employees.Update(ctx, companyID, id, version, changes)
}

func (r *repository) Delete(ctx context.Context, companyID string, id string) error {
	err := r.employees.Delete(ctx, companyID, id)
	if errors.Is(err, entitystore.ErrNotFound) {
		return gorm.ErrRecordNotFound
	}
	return err
}
