package rbac

import (
	"net/http"
	"strings"

	"iakwe-hr/internal/domain"
	"iakwe-hr/internal/session"
	"iakwe-hr/internal/shared/apperror"
	"iakwe-hr/internal/shared/response"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Handler struct {
	service Service
	logger  *zap.Logger
}

func NewHandler(service Service, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("rbac.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("rbac.handler")
	}
	return &Handler{service: service, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("rbac request failed",
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.Error(err),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

// Check answers whether the current actor may perform resource:action, so
// clients can hide controls the server would refuse anyway.
func (h *Handler) Check(c *gin.Context) {
	actor, err := session.FromGin(c)
	if err != nil {
		h.writeServiceError(c, apperror.ErrUnauthorized)
		return
	}

	var req CheckPermissionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", apperror.ValidationDetails(err))
		return
	}

	allowed, err := h.service.Enforce(c.Request.Context(), domain.EnforceRequest{
		Role:      actor.Role,
		CompanyID: actor.CompanyID,
		Resource:  strings.TrimSpace(req.Resource),
		Action:    strings.TrimSpace(req.Action),
	})
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, domain.EnforceResponse{Allowed: allowed}, nil)
}

func (h *Handler) Permissions(c *gin.Context) {
	actor, err := session.FromGin(c)
	if err != nil {
		h.writeServiceError(c, apperror.ErrUnauthorized)
		return
	}

	perms, err := h.service.PermissionsFor(c.Request.Context(), actor.Role, actor.CompanyID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, perms, nil)
}
