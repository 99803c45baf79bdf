package leave

import "iakwe-hr/internal/shared/entitystore"

type CreateLeaveRequest struct {
	EmployeeID      string `json:"employee_id" binding:"required,uuid"`
	LeaveType       string `json:"leave_type" binding:"required"`
	CulturalContext string `json:"cultural_context"`
	StartDate       string `json:"start_date" binding:"required"`
	EndDate         string `json:"end_date" binding:"required"`
	Reason          string `json:"reason" binding:"required"`
}

// ListLeaveRequest: order_by accepts a "-" prefix for descending order.
type ListLeaveRequest struct {
	OrderBy string `form:"order_by"`
	Desc    bool   `form:"desc"`
	Limit   int    `form:"limit" binding:"omitempty,min=1,max=500"`
}

type TransitionLeaveRequest struct {
	Version int64 `json:"version" binding:"required,min=1"`
}

// Reason is validated by the service so an empty string yields the domain
// error rather than a binding error.
type RejectLeaveRequest struct {
	Version         int64  `json:"version" binding:"required,min=1"`
	RejectionReason string `json:"rejection_reason"`
}

type PreviewLeaveRequest struct {
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
}

type AddCommentRequest struct {
	Body string `json:"body"`
}

type LeaveResponse struct {
	ID              string  `json:"id"`
	CompanyID       string  `json:"company_id"`
	EmployeeID      string  `json:"employee_id"`
	ReferenceNumber string  `json:"reference_number,omitempty"`
	LeaveType       string  `json:"leave_type"`
	CulturalContext string  `json:"cultural_context"`
	StartDate       string  `json:"start_date"`
	EndDate         string  `json:"end_date"`
	TotalDays       int     `json:"total_days"`
	Reason          string  `json:"reason"`
	Status          string  `json:"status"`
	RejectionReason *string `json:"rejection_reason"`
	ApprovedBy      *string `json:"approved_by"`
	ApprovedDate    *string `json:"approved_date"`
	CancelledBy     *string `json:"cancelled_by,omitempty"`
	CancelledAt     *string `json:"cancelled_at,omitempty"`
	CreatedBy       string  `json:"created_by"`
	Version         int64   `json:"version"`
	CreatedAt       string  `json:"created_at"`
	UpdatedAt       string  `json:"updated_at"`
}

type LeaveDetailResponse struct {
	LeaveResponse
	Holidays         []string `json:"holidays"`
	AvailableActions []string `json:"available_actions"`
}

type LeaveListResponse struct {
	Items  []LeaveResponse        `json:"items"`
	Source entitystore.DataSource `json:"source"`
}

type CommentResponse struct {
	ID         string `json:"id"`
	LeaveID    string `json:"leave_id"`
	AuthorID   string `json:"author_id"`
	AuthorName string `json:"author_name"`
	Body       string `json:"body"`
	CreatedAt  string `json:"created_at"`
}

type OptionsResponse struct {
	LeaveTypes       []LeaveType `json:"leave_types"`
	CulturalContexts []string    `json:"cultural_contexts"`
	Holidays         []Holiday   `json:"holidays"`
}
