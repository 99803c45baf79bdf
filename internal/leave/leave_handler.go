package leave

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"iakwe-hr/internal/middleware"
	"iakwe-hr/internal/session"
	"iakwe-hr/internal/shared/apperror"
	"iakwe-hr/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type Handler struct {
	service Service
	rdb     *redis.Client
	logger  *zap.Logger
}

// NewHandler takes the redis client used for idempotent creation; nil
// disables idempotency.
func NewHandler(service Service, rdb *redis.Client, logger ...*zap.Logger) *Handler {
	l := zap.L().Named("leave.handler")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("leave.handler")
	}
	return &Handler{service: service, rdb: rdb, logger: l}
}

func (h *Handler) writeServiceError(c *gin.Context, err error) {
	httpErr := apperror.ToHTTP(err)
	h.logger.Warn("leave request failed",
		zap.String("method", c.Request.Method),
		zap.String("path", c.FullPath()),
		zap.Int("status", httpErr.Status),
		zap.String("code", httpErr.Code),
		zap.String("message", httpErr.Message),
	)
	response.Error(c, httpErr.Status, httpErr.Code, httpErr.Message, httpErr.Details)
}

func (h *Handler) writeBindError(c *gin.Context, op string, err error) {
	h.logger.Warn("http "+op+" validation failed", zap.Error(err))
	response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", apperror.ValidationDetails(err))
}

func (h *Handler) actor(c *gin.Context) (session.Actor, bool) {
	actor, err := session.FromGin(c)
	if err != nil {
		h.writeServiceError(c, apperror.ErrUnauthorized)
		return session.Actor{}, false
	}
	return actor, true
}

func (h *Handler) Create(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	h.logger.Debug("http create leave", zap.String("company_id", actor.CompanyID), zap.String("actor_id", actor.UserID))

	var result any
	defer func() { middleware.ReleaseIdempotency(c, h.rdb, result) }()

	var req CreateLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBindError(c, "create leave", err)
		return
	}

	resp, err := h.service.Create(c.Request.Context(), actor, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	result = resp
	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) GetAll(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	var req ListLeaveRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.writeBindError(c, "list leaves", err)
		return
	}

	resp, err := h.service.List(c.Request.Context(), actor, req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	h.writeList(c, resp)
}

func (h *Handler) GetMine(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}
	if actor.EmployeeID == "" {
		h.writeServiceError(c, apperror.ErrForbidden)
		return
	}

	resp, err := h.service.FilterByEmployee(c.Request.Context(), actor, actor.EmployeeID)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	h.writeList(c, resp)
}

func (h *Handler) GetByEmployee(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	resp, err := h.service.FilterByEmployee(c.Request.Context(), actor, c.Param("employee_id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	h.writeList(c, resp)
}

// writeList pages the items when page or page_size is given and keeps the
// data source next to them.
func (h *Handler) writeList(c *gin.Context, resp LeaveListResponse) {
	if c.Query("page") == "" && c.Query("page_size") == "" {
		response.Success(c, http.StatusOK, resp, nil)
		return
	}

	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ := strconv.Atoi(c.DefaultQuery("page_size", "10"))
	items, meta := response.Paginate(resp.Items, page, pageSize)
	response.Success(c, http.StatusOK, LeaveListResponse{Items: items, Source: resp.Source}, &meta)
}

func (h *Handler) GetById(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	resp, err := h.service.GetByID(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Approve(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	var req TransitionLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBindError(c, "approve leave", err)
		return
	}

	resp, err := h.service.Approve(c.Request.Context(), actor, c.Param("id"), req.Version)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Reject(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	var req RejectLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBindError(c, "reject leave", err)
		return
	}

	resp, err := h.service.Reject(c.Request.Context(), actor, c.Param("id"), req.Version, req.RejectionReason)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Cancel(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	var req TransitionLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBindError(c, "cancel leave", err)
		return
	}

	resp, err := h.service.Cancel(c.Request.Context(), actor, c.Param("id"), req.Version)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) AddComment(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	var req AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBindError(c, "add leave comment", err)
		return
	}

	resp, err := h.service.AddComment(c.Request.Context(), actor, c.Param("id"), req.Body)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusCreated, resp, nil)
}

func (h *Handler) ListComments(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	resp, err := h.service.ListComments(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Preview(c *gin.Context) {
	var req PreviewLeaveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.writeBindError(c, "preview leave", err)
		return
	}

	resp, err := h.service.Preview(req)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	response.Success(c, http.StatusOK, resp, nil)
}

func (h *Handler) Options(c *gin.Context) {
	response.Success(c, http.StatusOK, h.service.Options(), nil)
}

func (h *Handler) Export(c *gin.Context) {
	actor, ok := h.actor(c)
	if !ok {
		return
	}

	buf, err := h.service.Export(c.Request.Context(), actor)
	if err != nil {
		h.writeServiceError(c, err)
		return
	}

	filename := fmt.Sprintf("leave-register-%s.xlsx", time.Now().UTC().Format("20060102"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, xlsxContentType, buf)
}
