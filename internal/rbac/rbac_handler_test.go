package rbac

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"iakwe-hr/internal/domain"
	"iakwe-hr/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type fakeService struct {
	got domain.EnforceRequest
}

func (f *fakeService) LoadCompanyPolicy(context.Context, string) error { return nil }

func (f *fakeService) Enforce(_ context.Context, req domain.EnforceRequest) (bool, error) {
	f.got = req
	return req.Role == session.RoleGeneralManager && req.Action == "approve", nil
}

func (f *fakeService) PermissionsFor(context.Context, string, string) ([]domain.PermissionResponse, error) {
	return []domain.PermissionResponse{{Resource: "leave", Action: "read"}}, nil
}

func withActor(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(session.KeyUserID, "user-1")
		c.Set(session.KeyCompanyID, "company-1")
		c.Set(session.KeyRole, role)
	}
}

func TestHandler_Check(t *testing.T) {
	gin.SetMode(gin.TestMode)

	svc := &fakeService{}
	handler := NewHandler(svc)

	router := gin.New()
	router.POST("/rbac/check", withActor(session.RoleGeneralManager), handler.Check)

	body, _ := json.Marshal(CheckPermissionRequest{Resource: "leave", Action: "approve"})
	req := httptest.NewRequest(http.MethodPost, "/rbac/check", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Ok   bool                   `json:"ok"`
		Data domain.EnforceResponse `json:"data"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Data.Allowed)
	assert.Equal(t, "company-1", svc.got.CompanyID)
}

func TestHandler_Check_Validation(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.POST("/rbac/check", withActor("Employee"), NewHandler(&fakeService{}).Check)

	req := httptest.NewRequest(http.MethodPost, "/rbac/check", bytes.NewBufferString(`{"resource":"leave"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Permissions(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.GET("/rbac/permissions", withActor("Employee"), NewHandler(&fakeService{}).Permissions)

	w := httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/rbac/permissions", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"resource":"leave"`)
}
