package notification

import (
	"time"

	"github.com/google/uuid"
)

type Notification struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID  uuid.UUID `gorm:"type:uuid;not null;index:idx_notifications_recipient"`
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;index:idx_notifications_recipient"`
	LeaveID    uuid.UUID `gorm:"type:uuid;not null"`
	// DedupeKey is leave id plus resulting status; one notification per decision.
	DedupeKey string `gorm:"type:varchar(80);not null;uniqueIndex"`
	Title     string `gorm:"type:varchar(150);not null"`
	Body      string `gorm:"type:text;not null"`
	ReadAt    *time.Time
	CreatedAt time.Time
}
