// Package session carries the authenticated actor explicitly from the HTTP
// edge into services, so role checks never read ambient state.
package session

import (
	"context"
	"errors"

	"github.com/gin-gonic/gin"
)

const RoleGeneralManager = "General Manager"

// Gin context keys written by middleware.AuthMiddleware.
const (
	KeyUserID     = "user_id"
	KeyEmployeeID = "employee_id"
	KeyCompanyID  = "company_id"
	KeyRole       = "role"
	KeyFullName   = "full_name"
	KeyEmail      = "email"
)

var ErrNoActor = errors.New("session: no authenticated actor")

type Actor struct {
	UserID     string `json:"user_id"`
	EmployeeID string `json:"employee_id"`
	CompanyID  string `json:"company_id"`
	Role       string `json:"role"`
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
}

func (a Actor) IsGeneralManager() bool {
	return a.Role == RoleGeneralManager
}

// DisplayName is what gets stamped on decisions; falls back to email.
func (a Actor) DisplayName() string {
	if a.FullName != "" {
		return a.FullName
	}
	return a.Email
}

func FromGin(c *gin.Context) (Actor, error) {
	a := Actor{
		UserID:     c.GetString(KeyUserID),
		EmployeeID: c.GetString(KeyEmployeeID),
		CompanyID:  c.GetString(KeyCompanyID),
		Role:       c.GetString(KeyRole),
		FullName:   c.GetString(KeyFullName),
		Email:      c.GetString(KeyEmail),
	}
	if a.UserID == "" || a.CompanyID == "" {
		return Actor{}, ErrNoActor
	}
	return a, nil
}

type actorKey struct{}

func WithActor(ctx context.Context, a Actor) context.Context {
	return context.WithValue(ctx, actorKey{}, a)
}

func FromContext(ctx context.Context) (Actor, bool) {
	a, ok := ctx.Value(actorKey{}).(Actor)
	return a, ok
}
