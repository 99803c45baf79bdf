package leave_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"iakwe-hr/internal/leave"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func setupLeaveRepo(t *testing.T) (leave.Repository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	gdb, err := gorm.Open(postgres.New(postgres.Config{Conn: db}), &gorm.Config{SkipDefaultTransaction: true})
	assert.NoError(t, err)
	return leave.NewRepository(gdb), mock
}

func TestRepository_EmployeeStatus(t *testing.T) {
	const query = `SELECT "status" FROM "employees" WHERE id = \$1 AND deleted_at IS NULL AND company_id = \$2 LIMIT \$3`
	ctx := context.Background()

	t.Run("returns stored status", func(t *testing.T) {
		repo, mock := setupLeaveRepo(t)
		mock.ExpectQuery(query).
			WithArgs("e1", "c1", 1).
			WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("Active"))

		got, err := repo.EmployeeStatus(ctx, "c1", "e1")

		assert.NoError(t, err)
		assert.Equal(t, "Active", got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("non active status is passed through", func(t *testing.T) {
		repo, mock := setupLeaveRepo(t)
		mock.ExpectQuery(query).
			WithArgs("e1", "c1", 1).
			WillReturnRows(sqlmock.NewRows([]string{"status"}).AddRow("Terminated"))

		got, err := repo.EmployeeStatus(ctx, "c1", "e1")

		assert.NoError(t, err)
		assert.Equal(t, "Terminated", got)
	})

	t.Run("soft deleted or foreign employee is empty", func(t *testing.T) {
		repo, mock := setupLeaveRepo(t)
		mock.ExpectQuery(query).
			WithArgs("e1", "c2", 1).
			WillReturnRows(sqlmock.NewRows([]string{"status"}))

		got, err := repo.EmployeeStatus(ctx, "c2", "e1")

		assert.NoError(t, err)
		assert.Empty(t, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("query error", func(t *testing.T) {
		repo, mock := setupLeaveRepo(t)
		mock.ExpectQuery(query).WillReturnError(errors.New("conn reset"))

		got, err := repo.EmployeeStatus(ctx, "c1", "e1")

		assert.EqualError(t, err, "conn reset")
		assert.Empty(t, got)
	})
}

func TestRepository_HasOverlappingPeriod(t *testing.T) {
	const query = `SELECT count\(\*\) FROM "leave_requests" WHERE status NOT IN \(\$1,\$2\) AND NOT \(end_date < \$3 OR start_date > \$4\) AND company_id = \$5 AND employee_id = \$6`
	ctx := context.Background()
	start := time.Date(2026, 4, 6, 0, 0, 0, 0, time.UTC)
	end := time.Date(2026, 4, 10, 0, 0, 0, 0, time.UTC)

	t.Run("overlap found", func(t *testing.T) {
		repo, mock := setupLeaveRepo(t)
		mock.ExpectQuery(query).
			WithArgs("Cancelled", "Rejected", start, end, "c1", "e1").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		got, err := repo.HasOverlappingPeriod(ctx, "c1", "e1", start, end)

		assert.NoError(t, err)
		assert.True(t, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("single day touching an existing boundary uses the same bounds", func(t *testing.T) {
		repo, mock := setupLeaveRepo(t)
		mock.ExpectQuery(query).
			WithArgs("Cancelled", "Rejected", end, end, "c1", "e1").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		got, err := repo.HasOverlappingPeriod(ctx, "c1", "e1", end, end)

		assert.NoError(t, err)
		assert.True(t, got)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("no overlap", func(t *testing.T) {
		repo, mock := setupLeaveRepo(t)
		mock.ExpectQuery(query).
			WithArgs("Cancelled", "Rejected", start, end, "c1", "e1").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

		got, err := repo.HasOverlappingPeriod(ctx, "c1", "e1", start, end)

		assert.NoError(t, err)
		assert.False(t, got)
	})

	t.Run("query error", func(t *testing.T) {
		repo, mock := setupLeaveRepo(t)
		mock.ExpectQuery(query).WillReturnError(errors.New("conn reset"))

		got, err := repo.HasOverlappingPeriod(ctx, "c1", "e1", start, end)

		assert.EqualError(t, err, "conn reset")
		assert.False(t, got)
	})
}
