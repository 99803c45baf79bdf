package employee

import (
	"errors"
	"strings"

	employeeerrors "iakwe-hr/internal/employee/errors"
	"iakwe-hr/internal/shared/entitystore"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) || errors.Is(err, entitystore.ErrNotFound) {
		return employeeerrors.ErrEmployeeNotFound
	}
	if errors.Is(err, entitystore.ErrVersionConflict) {
		return employeeerrors.ErrStaleEmployee
	}
	if entitystore.IsConnectivityError(err) {
		return employeeerrors.ErrEmployeeStoreUnavailable
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" {
			switch pgErr.ConstraintName {
			case "uq_employee_number":
				return employeeerrors.ErrEmployeeNumberAlreadyExists
			case "uq_employee_email", "idx_employees_email":
				return employeeerrors.ErrEmployeeAlreadyExists
			}
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "uq_employee_number") {
		return employeeerrors.ErrEmployeeNumberAlreadyExists
	}
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, "email") {
		return employeeerrors.ErrEmployeeAlreadyExists
	}

	return err
}
