package employee_test

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"testing"
	"time"

	"iakwe-hr/internal/employee"
	employeeerrors "iakwe-hr/internal/employee/errors"
	employeeMock "iakwe-hr/internal/employee/mock"
	counterMock "iakwe-hr/internal/shared/counter/mock"
	"iakwe-hr/internal/shared/entitystore"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-redis/redismock/v9"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
	"gorm.io/gorm"
)

type serviceDeps struct {
	db        *sql.DB
	sqlMock   sqlmock.Sqlmock
	service   employee.Service
	repo      *employeeMock.MockRepository
	counter   *counterMock.MockRepository
	redismock redismock.ClientMock
}

func setupServiceTest(t *testing.T) *serviceDeps {
	ctrl := gomock.NewController(t)

	db, sqlMock, _ := sqlmock.New()
	dbRedis, redisMock := redismock.NewClientMock()
	repo := employeeMock.NewMockRepository(ctrl)
	counterRepo := counterMock.NewMockRepository(ctrl)

	svc := employee.NewService(db, repo, counterRepo, dbRedis)

	return &serviceDeps{
		db:        db,
		sqlMock:   sqlMock,
		service:   svc,
		repo:      repo,
		counter:   counterRepo,
		redismock: redisMock,
	}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func TestEmployeeService_Create(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()

	validReq := func() employee.CreateEmployeeRequest {
		return employee.CreateEmployeeRequest{
			FullName:   "Lijon Anjain",
			Email:      "lijon@iakwe.mh",
			Department: "Finance",
			Position:   "Accountant",
			HireDate:   "2025-06-01",
		}
	}

	t.Run("success - auto generate employee number", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()
		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.counter.EXPECT().WithTx(gomock.Any()).Return(deps.counter)
		deps.counter.EXPECT().
			GetNextValue(ctx, companyID, "employee_number").
			Return(int64(123), nil)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			DoAndReturn(func(ctx context.Context, e *employee.Employee) error {
				assert.Equal(t, "EMP-000123", e.EmployeeNumber)
				assert.Equal(t, employee.StatusActive, e.Status)
				assert.Equal(t, companyID, e.CompanyID.String())
				assert.Equal(t, int64(1), e.Version)
				return nil
			})
		deps.redismock.ExpectDel(employee.GetEmployeeOptionsKey(companyID)).SetVal(1)

		resp, err := deps.service.Create(ctx, companyID, validReq())

		assert.NoError(t, err)
		assert.Equal(t, "EMP-000123", resp.EmployeeNumber)
		assert.Equal(t, "Active", resp.Status)
		assert.Equal(t, "2025-06-01", resp.HireDate)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("explicit number skips counter", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()
		expectTx(t, deps.sqlMock, true)

		req := validReq()
		req.EmployeeNumber = "MAJ-7"
		req.Status = "On Leave"

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Create(ctx, gomock.Any()).Return(nil)
		deps.redismock.ExpectDel(employee.GetEmployeeOptionsKey(companyID)).SetVal(1)

		resp, err := deps.service.Create(ctx, companyID, req)

		assert.NoError(t, err)
		assert.Equal(t, "MAJ-7", resp.EmployeeNumber)
		assert.Equal(t, "On Leave", resp.Status)
	})

	t.Run("invalid hire date", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		req := validReq()
		req.HireDate = "01/06/2025"

		_, err := deps.service.Create(ctx, companyID, req)

		assert.ErrorIs(t, err, employeeerrors.ErrInvalidHireDate)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("invalid status", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		req := validReq()
		req.Status = "Retired"

		_, err := deps.service.Create(ctx, companyID, req)

		assert.ErrorIs(t, err, employeeerrors.ErrInvalidStatus)
	})

	t.Run("duplicate email", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()
		expectTx(t, deps.sqlMock, false)

		req := validReq()
		req.EmployeeNumber = "MAJ-8"

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			Create(ctx, gomock.Any()).
			Return(&pgconn.PgError{Code: "23505", ConstraintName: "uq_employee_email"})

		_, err := deps.service.Create(ctx, companyID, req)

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeAlreadyExists)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestEmployeeService_GetAll(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		opts := entitystore.ListOptions{OrderBy: "full_name"}
		deps.repo.EXPECT().
			FindAllByCompany(ctx, companyID, opts).
			Return([]employee.Employee{{ID: uuid.New(), FullName: "A", Status: employee.StatusActive}}, nil)

		resp, err := deps.service.GetAll(ctx, companyID, opts)

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
	})

	t.Run("store unreachable", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.repo.EXPECT().
			FindAllByCompany(ctx, companyID, gomock.Any()).
			Return(nil, driver.ErrBadConn)

		_, err := deps.service.GetAll(ctx, companyID, entitystore.ListOptions{})

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeStoreUnavailable)
	})
}

func TestEmployeeService_GetOptions(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()
	cacheKey := employee.GetEmployeeOptionsKey(companyID)

	t.Run("cache hit", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.redismock.ExpectGet(cacheKey).SetVal(`[{"id":"e-1","full_name":"Lijon Anjain","department":"Finance","position":"Accountant"}]`)

		resp, err := deps.service.GetOptions(ctx, companyID)

		assert.NoError(t, err)
		if assert.Len(t, resp, 1) {
			assert.Equal(t, "Lijon Anjain", resp[0].FullName)
		}
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("cache miss loads active employees", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		id := uuid.New()
		deps.redismock.ExpectGet(cacheKey).RedisNil()
		deps.repo.EXPECT().
			FindOptionsByCompany(ctx, companyID).
			Return([]employee.Employee{{ID: id, FullName: "Lijon Anjain", Department: "Finance"}}, nil)
		deps.redismock.Regexp().ExpectSet(cacheKey, `"full_name":"Lijon Anjain"`, time.Hour).SetVal("OK")

		resp, err := deps.service.GetOptions(ctx, companyID)

		assert.NoError(t, err)
		if assert.Len(t, resp, 1) {
			assert.Equal(t, id.String(), resp[0].ID)
		}
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("repository error", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()

		deps.redismock.ExpectGet(cacheKey).RedisNil()
		deps.repo.EXPECT().
			FindOptionsByCompany(ctx, companyID).
			Return(nil, errors.New("boom"))

		_, err := deps.service.GetOptions(ctx, companyID)

		assert.EqualError(t, err, "boom")
	})
}

func TestEmployeeService_GetByID(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()
	id := uuid.New().String()

	deps := setupServiceTest(t)
	defer deps.db.Close()

	deps.repo.EXPECT().
		FindByIDAndCompany(ctx, companyID, id).
		Return(nil, gorm.ErrRecordNotFound)

	_, err := deps.service.GetByID(ctx, companyID, id)
	assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)

	_, err = deps.service.GetByID(ctx, companyID, "abc")
	assert.ErrorIs(t, err, employeeerrors.ErrInvalidEmployeeID)
}

func TestEmployeeService_Update(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()
	id := uuid.New()

	req := employee.UpdateEmployeeRequest{
		FullName:   "Lijon Anjain",
		Email:      "lijon@iakwe.mh",
		Department: "Finance",
		Position:   "Senior Accountant",
		Status:     "Terminated",
		HireDate:   "2025-06-01",
		Version:    2,
	}

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()
		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			Update(ctx, companyID, id.String(), int64(2), gomock.Any()).
			DoAndReturn(func(ctx context.Context, cid, eid string, version int64, changes map[string]any) error {
				assert.Equal(t, "Terminated", changes["status"])
				assert.Equal(t, "Senior Accountant", changes["position"])
				return nil
			})
		deps.repo.EXPECT().
			FindByIDAndCompany(ctx, companyID, id.String()).
			Return(&employee.Employee{ID: id, Position: "Senior Accountant", Status: employee.StatusTerminated, Version: 3}, nil)
		deps.redismock.ExpectDel(employee.GetEmployeeOptionsKey(companyID)).SetVal(1)

		resp, err := deps.service.Update(ctx, companyID, id.String(), req)

		assert.NoError(t, err)
		assert.Equal(t, int64(3), resp.Version)
		assert.Equal(t, "Terminated", resp.Status)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("stale version", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()
		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().
			Update(ctx, companyID, id.String(), int64(2), gomock.Any()).
			Return(entitystore.ErrVersionConflict)

		_, err := deps.service.Update(ctx, companyID, id.String(), req)

		assert.ErrorIs(t, err, employeeerrors.ErrStaleEmployee)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestEmployeeService_Delete(t *testing.T) {
	ctx := context.Background()
	companyID := uuid.New().String()
	id := uuid.New().String()

	t.Run("success", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()
		expectTx(t, deps.sqlMock, true)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Delete(ctx, companyID, id).Return(nil)
		deps.redismock.ExpectDel(employee.GetEmployeeOptionsKey(companyID)).SetVal(1)

		err := deps.service.Delete(ctx, companyID, id)

		assert.NoError(t, err)
		assert.NoError(t, deps.redismock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		deps := setupServiceTest(t)
		defer deps.db.Close()
		expectTx(t, deps.sqlMock, false)

		deps.repo.EXPECT().WithTx(gomock.Any()).Return(deps.repo)
		deps.repo.EXPECT().Delete(ctx, companyID, id).Return(gorm.ErrRecordNotFound)

		err := deps.service.Delete(ctx, companyID, id)

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
	})
}
