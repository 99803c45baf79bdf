package notification

import (
	"context"
	"time"

	"iakwe-hr/internal/tenant"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

//go:generate mockgen -source=notification_repo.go -destination=mock/notification_repo_mock.go -package=mock
type Repository interface {
	// Create reports false when a notification with the same dedupe key
	// already exists.
	Create(ctx context.Context, n *Notification) (bool, error)
	ListForEmployee(ctx context.Context, companyID, employeeID string, unreadOnly bool) ([]Notification, error)
	MarkRead(ctx context.Context, companyID, employeeID, id string, at time.Time) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, n *Notification) (bool, error) {
	res := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{Columns: []clause.Column{{Name: "dedupe_key"}}, DoNothing: true}).
		Create(n)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *repository) ListForEmployee(ctx context.Context, companyID, employeeID string, unreadOnly bool) ([]Notification, error) {
	q := r.db.WithContext(ctx).Scopes(tenant.OwnedBy(companyID, employeeID))
	if unreadOnly {
		q = q.Scopes(unread)
	}

	var items []Notification
	err := q.Order("created_at DESC").Limit(100).Find(&items).Error
	return items, err
}

func unread(db *gorm.DB) *gorm.DB {
	return db.Where("read_at IS NULL")
}

// MarkRead keeps the first read time; marking twice is not an error.
func (r *repository) MarkRead(ctx context.Context, companyID, employeeID, id string, at time.Time) error {
	res := r.db.WithContext(ctx).
		Model(&Notification{}).
		Scopes(tenant.OwnedBy(companyID, employeeID)).
		Where("id = ?", id).
		Update("read_at", gorm.Expr("COALESCE(read_at, ?)", at))
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
