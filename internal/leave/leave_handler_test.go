package leave_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"iakwe-hr/internal/leave"
	leaveerrors "iakwe-hr/internal/leave/errors"
	"iakwe-hr/internal/middleware"
	"iakwe-hr/internal/session"
	"iakwe-hr/internal/shared/entitystore"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

type apiError struct {
	Code    string         `json:"code"`
	Message string         `json:"message"`
	Details map[string]any `json:"details"`
}

type apiEnvelope struct {
	Ok    bool            `json:"ok"`
	Data  json.RawMessage `json:"data"`
	Meta  json.RawMessage `json:"meta"`
	Error *apiError       `json:"error"`
}

func decodeEnvelope(t *testing.T, body []byte) apiEnvelope {
	t.Helper()
	var env apiEnvelope
	err := json.Unmarshal(body, &env)
	assert.NoError(t, err)
	return env
}

type fakeLeaveService struct {
	createFn           func(ctx context.Context, actor session.Actor, req leave.CreateLeaveRequest) (leave.LeaveResponse, error)
	listFn             func(ctx context.Context, actor session.Actor, req leave.ListLeaveRequest) (leave.LeaveListResponse, error)
	filterByEmployeeFn func(ctx context.Context, actor session.Actor, employeeID string) (leave.LeaveListResponse, error)
	getByIDFn          func(ctx context.Context, actor session.Actor, id string) (leave.LeaveDetailResponse, error)
	approveFn          func(ctx context.Context, actor session.Actor, id string, version int64) (leave.LeaveResponse, error)
	rejectFn           func(ctx context.Context, actor session.Actor, id string, version int64, reason string) (leave.LeaveResponse, error)
	cancelFn           func(ctx context.Context, actor session.Actor, id string, version int64) (leave.LeaveResponse, error)
	addCommentFn       func(ctx context.Context, actor session.Actor, id, body string) (leave.CommentResponse, error)
	listCommentsFn     func(ctx context.Context, actor session.Actor, id string) ([]leave.CommentResponse, error)
	exportFn           func(ctx context.Context, actor session.Actor) ([]byte, error)
}

func (f *fakeLeaveService) Create(ctx context.Context, actor session.Actor, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
	return f.createFn(ctx, actor, req)
}
func (f *fakeLeaveService) List(ctx context.Context, actor session.Actor, req leave.ListLeaveRequest) (leave.LeaveListResponse, error) {
	return f.listFn(ctx, actor, req)
}
func (f *fakeLeaveService) FilterByEmployee(ctx context.Context, actor session.Actor, employeeID string) (leave.LeaveListResponse, error) {
	return f.filterByEmployeeFn(ctx, actor, employeeID)
}
func (f *fakeLeaveService) GetByID(ctx context.Context, actor session.Actor, id string) (leave.LeaveDetailResponse, error) {
	return f.getByIDFn(ctx, actor, id)
}
func (f *fakeLeaveService) Approve(ctx context.Context, actor session.Actor, id string, version int64) (leave.LeaveResponse, error) {
	return f.approveFn(ctx, actor, id, version)
}
func (f *fakeLeaveService) Reject(ctx context.Context, actor session.Actor, id string, version int64, reason string) (leave.LeaveResponse, error) {
	return f.rejectFn(ctx, actor, id, version, reason)
}
func (f *fakeLeaveService) Cancel(ctx context.Context, actor session.Actor, id string, version int64) (leave.LeaveResponse, error) {
	return f.cancelFn(ctx, actor, id, version)
}
func (f *fakeLeaveService) AddComment(ctx context.Context, actor session.Actor, id, body string) (leave.CommentResponse, error) {
	return f.addCommentFn(ctx, actor, id, body)
}
func (f *fakeLeaveService) ListComments(ctx context.Context, actor session.Actor, id string) ([]leave.CommentResponse, error) {
	return f.listCommentsFn(ctx, actor, id)
}
func (f *fakeLeaveService) Export(ctx context.Context, actor session.Actor) ([]byte, error) {
	return f.exportFn(ctx, actor)
}
func (f *fakeLeaveService) Preview(req leave.PreviewLeaveRequest) (leave.DayCount, error) {
	return leave.Preview(req.StartDate, req.EndDate, leave.DefaultCalendar())
}
func (f *fakeLeaveService) Options() leave.OptionsResponse {
	return leave.OptionsResponse{LeaveTypes: leave.LeaveTypes, CulturalContexts: leave.CulturalContexts}
}

func newTestContext(method, target, body string) (*gin.Context, *httptest.ResponseRecorder) {
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	c.Request = httptest.NewRequest(method, target, strings.NewReader(body))
	c.Request.Header.Set("Content-Type", "application/json")
	return c, w
}

func setActor(c *gin.Context, a session.Actor) {
	c.Set(session.KeyUserID, a.UserID)
	c.Set(session.KeyEmployeeID, a.EmployeeID)
	c.Set(session.KeyCompanyID, a.CompanyID)
	c.Set(session.KeyRole, a.Role)
	c.Set(session.KeyFullName, a.FullName)
	c.Set(session.KeyEmail, a.Email)
}

func TestLeaveHandler_Create(t *testing.T) {
	companyID := uuid.New().String()
	employeeID := uuid.New().String()
	actor := employeeActor(companyID, employeeID)
	body := `{"employee_id":"` + employeeID + `","leave_type":"Annual","start_date":"2024-03-01","end_date":"2024-03-03","reason":"Family matters"}`

	t.Run("success", func(t *testing.T) {
		svc := &fakeLeaveService{
			createFn: func(ctx context.Context, a session.Actor, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
				assert.Equal(t, actor, a)
				assert.Equal(t, employeeID, req.EmployeeID)
				return leave.LeaveResponse{ID: uuid.New().String(), EmployeeID: req.EmployeeID, Status: "Pending", TotalDays: 3, Version: 1}, nil
			},
		}

		c, w := newTestContext(http.MethodPost, "/leaves", body)
		setActor(c, actor)

		leave.NewHandler(svc, nil).Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.True(t, env.Ok)

		var got map[string]any
		assert.NoError(t, json.Unmarshal(env.Data, &got))
		assert.Equal(t, "Pending", got["status"])
		assert.Contains(t, got, "approved_by")
		assert.Nil(t, got["approved_by"])
	})

	t.Run("stores idempotent result", func(t *testing.T) {
		rdb, redisMock := redismock.NewClientMock()
		svc := &fakeLeaveService{
			createFn: func(ctx context.Context, a session.Actor, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
				return leave.LeaveResponse{ID: "l-1", Status: "Pending"}, nil
			},
		}

		c, w := newTestContext(http.MethodPost, "/leaves", body)
		setActor(c, actor)
		c.Set(middleware.IdempotencyCacheKey, "idemp:/leaves:u:k-1")
		c.Set(middleware.IdempotencyLockKey, "idemp:/leaves:u:k-1:lock")
		redisMock.Regexp().ExpectSet("idemp:/leaves:u:k-1", `"status":201,"data":\{"id":"l-1"`, 24*time.Hour).SetVal("OK")
		redisMock.ExpectDel("idemp:/leaves:u:k-1:lock").SetVal(1)

		leave.NewHandler(svc, rdb).Create(c)

		assert.Equal(t, http.StatusCreated, w.Code)
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})

	t.Run("failure releases lock without result", func(t *testing.T) {
		rdb, redisMock := redismock.NewClientMock()
		svc := &fakeLeaveService{
			createFn: func(ctx context.Context, a session.Actor, req leave.CreateLeaveRequest) (leave.LeaveResponse, error) {
				return leave.LeaveResponse{}, leaveerrors.ErrLeaveOverlap
			},
		}

		c, w := newTestContext(http.MethodPost, "/leaves", body)
		setActor(c, actor)
		c.Set(middleware.IdempotencyCacheKey, "idemp:/leaves:u:k-2")
		c.Set(middleware.IdempotencyLockKey, "idemp:/leaves:u:k-2:lock")
		redisMock.ExpectDel("idemp:/leaves:u:k-2:lock").SetVal(1)

		leave.NewHandler(svc, rdb).Create(c)

		assert.Equal(t, http.StatusConflict, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.False(t, env.Ok)
		assert.Equal(t, "CONFLICT", env.Error.Code)
		assert.NoError(t, redisMock.ExpectationsWereMet())
	})

	t.Run("invalid body", func(t *testing.T) {
		c, w := newTestContext(http.MethodPost, "/leaves", `{"leave_type":"Annual"}`)
		setActor(c, actor)

		leave.NewHandler(&fakeLeaveService{}, nil).Create(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.Equal(t, "VALIDATION_ERROR", env.Error.Code)
		assert.Equal(t, "Invalid input", env.Error.Message)
		assert.Equal(t, "client", env.Error.Details["kind"])
		assert.Contains(t, env.Error.Details["reason"], "is required")
	})

	t.Run("no actor", func(t *testing.T) {
		c, w := newTestContext(http.MethodPost, "/leaves", body)

		leave.NewHandler(&fakeLeaveService{}, nil).Create(c)

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func TestLeaveHandler_GetAll(t *testing.T) {
	companyID := uuid.New().String()
	actor := generalManager(companyID)
	asOf := time.Date(2026, 3, 1, 8, 0, 0, 0, time.UTC)

	svc := &fakeLeaveService{
		listFn: func(ctx context.Context, a session.Actor, req leave.ListLeaveRequest) (leave.LeaveListResponse, error) {
			assert.Equal(t, "-start_date", req.OrderBy)
			assert.Equal(t, 20, req.Limit)
			return leave.LeaveListResponse{
				Items:  []leave.LeaveResponse{{ID: "a"}, {ID: "b"}, {ID: "c"}},
				Source: entitystore.Degraded("leave records are unreachable", &asOf),
			}, nil
		},
	}

	t.Run("full list keeps degraded source", func(t *testing.T) {
		c, w := newTestContext(http.MethodGet, "/leaves?order_by=-start_date&limit=20", "")
		setActor(c, actor)

		leave.NewHandler(svc, nil).GetAll(c)

		assert.Equal(t, http.StatusOK, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		var got leave.LeaveListResponse
		assert.NoError(t, json.Unmarshal(env.Data, &got))
		assert.Len(t, got.Items, 3)
		assert.Equal(t, entitystore.SourceDegraded, got.Source.Mode)
	})

	t.Run("paged", func(t *testing.T) {
		c, w := newTestContext(http.MethodGet, "/leaves?order_by=-start_date&limit=20&page=2&page_size=2", "")
		setActor(c, actor)

		leave.NewHandler(svc, nil).GetAll(c)

		env := decodeEnvelope(t, w.Body.Bytes())
		var got leave.LeaveListResponse
		assert.NoError(t, json.Unmarshal(env.Data, &got))
		if assert.Len(t, got.Items, 1) {
			assert.Equal(t, "c", got.Items[0].ID)
		}
		assert.NotEmpty(t, env.Meta)
	})

	t.Run("limit out of range", func(t *testing.T) {
		c, w := newTestContext(http.MethodGet, "/leaves?limit=9000", "")
		setActor(c, actor)

		leave.NewHandler(svc, nil).GetAll(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

func TestLeaveHandler_GetMine(t *testing.T) {
	companyID := uuid.New().String()
	employeeID := uuid.New().String()

	svc := &fakeLeaveService{
		filterByEmployeeFn: func(ctx context.Context, a session.Actor, eid string) (leave.LeaveListResponse, error) {
			assert.Equal(t, employeeID, eid)
			return leave.LeaveListResponse{Items: []leave.LeaveResponse{}, Source: entitystore.Live()}, nil
		},
	}

	c, w := newTestContext(http.MethodGet, "/leaves/mine", "")
	setActor(c, employeeActor(companyID, employeeID))
	leave.NewHandler(svc, nil).GetMine(c)
	assert.Equal(t, http.StatusOK, w.Code)

	c, w = newTestContext(http.MethodGet, "/leaves/mine", "")
	setActor(c, generalManager(companyID))
	leave.NewHandler(svc, nil).GetMine(c)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestLeaveHandler_Transitions(t *testing.T) {
	companyID := uuid.New().String()
	leaveID := uuid.New().String()
	gm := generalManager(companyID)

	t.Run("approve", func(t *testing.T) {
		approvedBy := gm.FullName
		svc := &fakeLeaveService{
			approveFn: func(ctx context.Context, a session.Actor, id string, version int64) (leave.LeaveResponse, error) {
				assert.Equal(t, leaveID, id)
				assert.Equal(t, int64(4), version)
				return leave.LeaveResponse{ID: id, Status: "Approved", ApprovedBy: &approvedBy, Version: 5}, nil
			},
		}

		c, w := newTestContext(http.MethodPost, "/leaves/"+leaveID+"/approve", `{"version":4}`)
		c.Params = gin.Params{{Key: "id", Value: leaveID}}
		setActor(c, gm)

		leave.NewHandler(svc, nil).Approve(c)

		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("approve without version", func(t *testing.T) {
		c, w := newTestContext(http.MethodPost, "/leaves/"+leaveID+"/approve", `{}`)
		c.Params = gin.Params{{Key: "id", Value: leaveID}}
		setActor(c, gm)

		leave.NewHandler(&fakeLeaveService{}, nil).Approve(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("forbidden transition", func(t *testing.T) {
		svc := &fakeLeaveService{
			approveFn: func(ctx context.Context, a session.Actor, id string, version int64) (leave.LeaveResponse, error) {
				return leave.LeaveResponse{}, leaveerrors.ErrForbiddenTransition
			},
		}

		c, w := newTestContext(http.MethodPost, "/leaves/"+leaveID+"/approve", `{"version":1}`)
		c.Params = gin.Params{{Key: "id", Value: leaveID}}
		setActor(c, employeeActor(companyID, uuid.New().String()))

		leave.NewHandler(svc, nil).Approve(c)

		assert.Equal(t, http.StatusForbidden, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.Equal(t, "auth", env.Error.Details["kind"])
		assert.Equal(t, false, env.Error.Details["retryable"])
	})

	t.Run("reject passes reason through", func(t *testing.T) {
		svc := &fakeLeaveService{
			rejectFn: func(ctx context.Context, a session.Actor, id string, version int64, reason string) (leave.LeaveResponse, error) {
				assert.Equal(t, "", reason)
				return leave.LeaveResponse{}, leaveerrors.ErrRejectionReasonRequired
			},
		}

		c, w := newTestContext(http.MethodPost, "/leaves/"+leaveID+"/reject", `{"version":1}`)
		c.Params = gin.Params{{Key: "id", Value: leaveID}}
		setActor(c, gm)

		leave.NewHandler(svc, nil).Reject(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("stale cancel", func(t *testing.T) {
		svc := &fakeLeaveService{
			cancelFn: func(ctx context.Context, a session.Actor, id string, version int64) (leave.LeaveResponse, error) {
				return leave.LeaveResponse{}, leaveerrors.ErrStaleLeave
			},
		}

		c, w := newTestContext(http.MethodPost, "/leaves/"+leaveID+"/cancel", `{"version":1}`)
		c.Params = gin.Params{{Key: "id", Value: leaveID}}
		setActor(c, gm)

		leave.NewHandler(svc, nil).Cancel(c)

		assert.Equal(t, http.StatusConflict, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.Equal(t, "STALE_STATE", env.Error.Code)
	})

	t.Run("unexpected error is hidden", func(t *testing.T) {
		svc := &fakeLeaveService{
			getByIDFn: func(ctx context.Context, a session.Actor, id string) (leave.LeaveDetailResponse, error) {
				return leave.LeaveDetailResponse{}, errors.New("pq: relation missing")
			},
		}

		c, w := newTestContext(http.MethodGet, "/leaves/"+leaveID, "")
		c.Params = gin.Params{{Key: "id", Value: leaveID}}
		setActor(c, gm)

		leave.NewHandler(svc, nil).GetById(c)

		assert.Equal(t, http.StatusInternalServerError, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		assert.Equal(t, "Internal server error", env.Error.Message)
	})
}

func TestLeaveHandler_Comments(t *testing.T) {
	companyID := uuid.New().String()
	leaveID := uuid.New().String()

	svc := &fakeLeaveService{
		addCommentFn: func(ctx context.Context, a session.Actor, id, body string) (leave.CommentResponse, error) {
			return leave.CommentResponse{ID: "c-1", LeaveID: id, Body: body}, nil
		},
		listCommentsFn: func(ctx context.Context, a session.Actor, id string) ([]leave.CommentResponse, error) {
			return []leave.CommentResponse{{ID: "c-1", LeaveID: id}}, nil
		},
	}

	c, w := newTestContext(http.MethodPost, "/leaves/"+leaveID+"/comments", `{"body":"Noted"}`)
	c.Params = gin.Params{{Key: "id", Value: leaveID}}
	setActor(c, generalManager(companyID))
	leave.NewHandler(svc, nil).AddComment(c)
	assert.Equal(t, http.StatusCreated, w.Code)

	c, w = newTestContext(http.MethodGet, "/leaves/"+leaveID+"/comments", "")
	c.Params = gin.Params{{Key: "id", Value: leaveID}}
	setActor(c, generalManager(companyID))
	leave.NewHandler(svc, nil).ListComments(c)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestLeaveHandler_PreviewOptionsExport(t *testing.T) {
	companyID := uuid.New().String()

	t.Run("preview", func(t *testing.T) {
		c, w := newTestContext(http.MethodPost, "/leaves/preview", `{"start_date":"2024-12-30","end_date":"2025-01-02"}`)

		leave.NewHandler(&fakeLeaveService{}, nil).Preview(c)

		assert.Equal(t, http.StatusOK, w.Code)
		env := decodeEnvelope(t, w.Body.Bytes())
		var got leave.DayCount
		assert.NoError(t, json.Unmarshal(env.Data, &got))
		assert.Equal(t, 4, got.TotalDays)
		assert.Equal(t, []string{"New Year's Day"}, got.Holidays)
	})

	t.Run("preview inverted", func(t *testing.T) {
		c, w := newTestContext(http.MethodPost, "/leaves/preview", `{"start_date":"2025-01-02","end_date":"2024-12-30"}`)

		leave.NewHandler(&fakeLeaveService{}, nil).Preview(c)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("options", func(t *testing.T) {
		c, w := newTestContext(http.MethodGet, "/leaves/options", "")

		leave.NewHandler(&fakeLeaveService{}, nil).Options(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), "Kemem Celebrations")
	})

	t.Run("export", func(t *testing.T) {
		svc := &fakeLeaveService{
			exportFn: func(ctx context.Context, a session.Actor) ([]byte, error) {
				return []byte("PK-data"), nil
			},
		}
		c, w := newTestContext(http.MethodGet, "/leaves/export", "")
		setActor(c, generalManager(companyID))

		leave.NewHandler(svc, nil).Export(c)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Header().Get("Content-Type"), "spreadsheetml")
		assert.Contains(t, w.Header().Get("Content-Disposition"), "leave-register-")
		assert.Equal(t, "PK-data", w.Body.String())
	})
}
