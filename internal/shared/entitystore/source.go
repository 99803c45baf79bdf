package entitystore

import (
	"context"
	"database/sql/driver"
	"errors"
	"net"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
)

type SourceMode string

const (
	SourceLive     SourceMode = "live"
	SourceDegraded SourceMode = "degraded"
)

// DataSource tells callers whether a result came from the backend or from
// the last good snapshot after the backend failed.
type DataSource struct {
	Mode   SourceMode `json:"mode"`
	Reason string     `json:"reason,omitempty"`
	AsOf   *time.Time `json:"as_of,omitempty"`
}

func Live() DataSource {
	return DataSource{Mode: SourceLive}
}

func Degraded(reason string, asOf *time.Time) DataSource {
	return DataSource{Mode: SourceDegraded, Reason: reason, AsOf: asOf}
}

func (d DataSource) IsDegraded() bool {
	return d.Mode == SourceDegraded
}

// IsConnectivityError reports failures to reach the database, as opposed to
// errors the database returned.
func IsConnectivityError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var connectErr *pgconn.ConnectError
	if errors.As(err, &connectErr) {
		return true
	}
	if pgconn.Timeout(err) {
		return true
	}

	var netErr net.Error
	if errors.As(err, &netErr) {
		return true
	}
	var opErr *net.OpError
	return errors.As(err, &opErr)
}
