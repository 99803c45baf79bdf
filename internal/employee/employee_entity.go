package employee

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Status string

const (
	StatusActive     Status = "Active"
	StatusOnLeave    Status = "On Leave"
	StatusTerminated Status = "Terminated"
)

func (s Status) Valid() bool {
	switch s {
	case StatusActive, StatusOnLeave, StatusTerminated:
		return true
	}
	return false
}

type Employee struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID      uuid.UUID `gorm:"type:uuid;index"`
	EmployeeNumber string    `gorm:"type:varchar(20)"`
	FullName       string
	Email          string `gorm:"uniqueIndex"`
	Phone          string
	Department     string
	Position       string
	Status         Status    `gorm:"type:varchar(20);not null;default:'Active'"`
	HireDate       time.Time `gorm:"type:date"`
	Version        int64     `gorm:"not null;default:1"`
	CreatedAt      time.Time
	UpdatedAt      time.Time
	DeletedAt      gorm.DeletedAt `gorm:"index"`
}
