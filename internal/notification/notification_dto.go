package notification

type ListNotificationRequest struct {
	UnreadOnly bool `form:"unread"`
}

type NotificationResponse struct {
	ID        string  `json:"id"`
	LeaveID   string  `json:"leave_id"`
	Title     string  `json:"title"`
	Body      string  `json:"body"`
	ReadAt    *string `json:"read_at"`
	CreatedAt string  `json:"created_at"`
}
