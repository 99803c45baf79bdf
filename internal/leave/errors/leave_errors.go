package leaveerrors

import (
	"net/http"

	"iakwe-hr/internal/shared/apperror"
)

var (
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid employee id",
		http.StatusBadRequest,
	)
	ErrInvalidLeaveType = apperror.New(
		apperror.CodeInvalidInput,
		"leave_type must be one of Annual, Sick, Cultural, Bereavement, Maternity, Paternity, Emergency, Unpaid",
		http.StatusBadRequest,
	)
	ErrInvalidCulturalContext = apperror.New(
		apperror.CodeInvalidInput,
		"cultural_context is not one of the supported contexts",
		http.StatusBadRequest,
	)
	ErrCulturalContextRequired = apperror.New(
		apperror.CodeInvalidInput,
		"cultural leave requires a cultural_context",
		http.StatusBadRequest,
	)
	ErrReasonRequired = apperror.New(
		apperror.CodeInvalidInput,
		"reason is required",
		http.StatusBadRequest,
	)
	ErrInvalidDateFormat = apperror.New(
		apperror.CodeInvalidInput,
		"invalid date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
	ErrInvalidDateRange = apperror.New(
		apperror.CodeInvalidInput,
		"start_date must be before or equal end_date",
		http.StatusBadRequest,
	)
	ErrEmployeeNotInCompany = apperror.New(
		apperror.CodeInvalidInput,
		"employee does not belong to this company",
		http.StatusBadRequest,
	)
	ErrEmployeeNotActive = apperror.New(
		apperror.CodeInvalidInput,
		"leave can only be requested for active employees",
		http.StatusUnprocessableEntity,
	)
	ErrLeaveOverlap = apperror.New(
		apperror.CodeConflict,
		"leave already exists in overlapping period",
		http.StatusConflict,
	)
	ErrLeaveNotFound = apperror.New(
		apperror.CodeNotFound,
		"leave not found",
		http.StatusNotFound,
	)
	ErrLeaveAlreadyProcessed = apperror.New(
		apperror.CodeInvalidState,
		"leave request is no longer pending",
		http.StatusConflict,
	)
	ErrForbiddenTransition = apperror.New(
		apperror.CodeForbidden,
		"you are not allowed to perform this transition",
		http.StatusForbidden,
	)
	ErrRejectionReasonRequired = apperror.New(
		apperror.CodeInvalidInput,
		"rejection_reason is required when rejecting",
		http.StatusBadRequest,
	)
	ErrStaleLeave = apperror.New(
		apperror.CodeStaleState,
		"leave request was changed by someone else, please refresh",
		http.StatusConflict,
	)
	ErrCommentRequired = apperror.New(
		apperror.CodeInvalidInput,
		"comment body is required",
		http.StatusBadRequest,
	)
	ErrLeaveStoreUnavailable = apperror.New(
		apperror.CodeServiceUnavailable,
		"leave records are temporarily unreachable",
		http.StatusServiceUnavailable,
	)
)
