package leave

import (
	"time"

	"github.com/google/uuid"
)

type LeaveType string

const (
	TypeAnnual      LeaveType = "Annual"
	TypeSick        LeaveType = "Sick"
	TypeCultural    LeaveType = "Cultural"
	TypeBereavement LeaveType = "Bereavement"
	TypeMaternity   LeaveType = "Maternity"
	TypePaternity   LeaveType = "Paternity"
	TypeEmergency   LeaveType = "Emergency"
	TypeUnpaid      LeaveType = "Unpaid"
)

var LeaveTypes = []LeaveType{
	TypeAnnual, TypeSick, TypeCultural, TypeBereavement,
	TypeMaternity, TypePaternity, TypeEmergency, TypeUnpaid,
}

func (t LeaveType) Valid() bool {
	for _, v := range LeaveTypes {
		if v == t {
			return true
		}
	}
	return false
}

type Status string

const (
	StatusPending   Status = "Pending"
	StatusApproved  Status = "Approved"
	StatusRejected  Status = "Rejected"
	StatusCancelled Status = "Cancelled"
)

const CulturalContextNotApplicable = "Not Applicable"

// CulturalContexts is the curated list offered on the request form.
var CulturalContexts = []string{
	CulturalContextNotApplicable,
	"Kemem Celebrations",
	"Irooj Obligations",
	"Eorak (Mourning Period)",
	"Church Obligations",
	"Community Gatherings",
	"Family Obligations",
	"Traditional Ceremonies",
}

func validCulturalContext(v string) bool {
	for _, c := range CulturalContexts {
		if c == v {
			return true
		}
	}
	return false
}

type Leave struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID       uuid.UUID `gorm:"type:uuid;not null;index:idx_leave_requests_company_status"`
	EmployeeID      uuid.UUID `gorm:"type:uuid;not null;index:idx_leave_requests_employee_dates"`
	ReferenceNumber string    `gorm:"type:varchar(20)"`

	LeaveType       LeaveType `gorm:"type:varchar(20);not null"`
	CulturalContext string    `gorm:"type:varchar(60);not null;default:'Not Applicable'"`
	StartDate       time.Time `gorm:"type:date;not null;index:idx_leave_requests_employee_dates"`
	EndDate         time.Time `gorm:"type:date;not null;index:idx_leave_requests_employee_dates"`
	TotalDays       int       `gorm:"type:int;not null"`
	Reason          string    `gorm:"type:text;not null"`

	Status          Status     `gorm:"type:varchar(20);not null;default:'Pending';index:idx_leave_requests_company_status"`
	RejectionReason *string    `gorm:"type:text"`
	ApprovedBy      *string    `gorm:"type:varchar(150)"`
	ApprovedDate    *time.Time
	CancelledBy     *string `gorm:"type:varchar(64)"`
	CancelledAt     *time.Time

	CreatedBy string `gorm:"type:varchar(64);not null"`
	Version   int64  `gorm:"not null;default:1"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (Leave) TableName() string { return "leave_requests" }

type Comment struct {
	ID         uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID  uuid.UUID `gorm:"type:uuid;not null"`
	LeaveID    uuid.UUID `gorm:"type:uuid;not null;index"`
	AuthorID   string    `gorm:"type:varchar(64);not null"`
	AuthorName string    `gorm:"type:varchar(150)"`
	Body       string    `gorm:"type:text;not null"`
	CreatedAt  time.Time
}

func (Comment) TableName() string { return "leave_comments" }
