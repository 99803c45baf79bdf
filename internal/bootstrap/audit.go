package bootstrap

import "context"

type AuditLog struct {
	Action    string
	Message   string
	ActorID   string
	CompanyID string
	Meta      map[string]any
}

// AuditLogger records security-relevant events such as leave decisions and
// server shutdown.
type AuditLogger interface {
	Log(ctx context.Context, entry AuditLog)
}
