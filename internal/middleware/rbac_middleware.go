package middleware

import (
	"context"

	"iakwe-hr/internal/domain"
	"iakwe-hr/internal/session"
	"iakwe-hr/internal/shared/apperror"
	"iakwe-hr/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// RBACService is satisfied by rbac.Service; declared here to keep the
// dependency pointing from rbac to middleware.
type RBACService interface {
	Enforce(ctx context.Context, req domain.EnforceRequest) (bool, error)
}

func RBACAuthorize(service RBACService, resource, action string) gin.HandlerFunc {
	return func(c *gin.Context) {
		companyID := c.GetString(session.KeyCompanyID)
		role := c.GetString(session.KeyRole)

		if companyID == "" {
			e := apperror.ErrUnauthorized
			response.Error(c, e.HTTPStatus, e.Code, "missing auth context", nil)
			c.Abort()
			return
		}

		allowed, err := service.Enforce(c.Request.Context(), domain.EnforceRequest{
			Role:      role,
			CompanyID: companyID,
			Resource:  resource,
			Action:    action,
		})
		if err != nil {
			httpErr := apperror.ToHTTP(err)
			response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
			c.Abort()
			return
		}

		if !allowed {
			e := apperror.ErrForbidden
			response.Error(c, e.HTTPStatus, e.Code, e.Message, gin.H{
				"required": resource + ":" + action,
			})
			c.Abort()
			return
		}
		c.Next()
	}
}
