package http

import (
	"errors"
	"net/http"

	"paybook/internal/core/domain/model/order"
	"paybook/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Error codes surfaced in the uniform {code, message} body.
const (
	codeInvalidRequest        = "INVALID_REQUEST"
	codeInvalidJSON           = "INVALID_JSON"
	codeUnsupportedMediaType  = "UNSUPPORTED_MEDIA_TYPE"
	codeOrderNotFound         = "ORDER_NOT_FOUND"
	codeOrderAlreadyCancelled = "ORDER_ALREADY_CANCELLED"
	codeInternalError         = "INTERNAL_ERROR"
)

// classify maps a use case failure onto a transport status and error body.
// Every failure is classified exactly once, here, and surfaced verbatim.
func classify(err error) (int, ErrorResponse) {
	var rejected *order.RejectedError
	if errors.As(err, &rejected) {
		status := http.StatusConflict
		if rejected.Code.EntityMissing() {
			status = http.StatusNotFound
		}
		return status, ErrorResponse{Code: string(rejected.Code), Message: rejected.Message}
	}

	if errors.Is(err, order.ErrOrderAlreadyCancelled) {
		return http.StatusConflict, ErrorResponse{
			Code:    codeOrderAlreadyCancelled,
			Message: "order is already cancelled",
		}
	}

	if errors.Is(err, errs.ErrObjectNotFound) {
		return http.StatusNotFound, ErrorResponse{
			Code:    codeOrderNotFound,
			Message: err.Error(),
		}
	}

	if errors.Is(err, errs.ErrValueIsRequired) || errors.Is(err, errs.ErrValueIsInvalid) {
		return http.StatusBadRequest, ErrorResponse{
			Code:    codeInvalidRequest,
			Message: err.Error(),
		}
	}

	return http.StatusInternalServerError, ErrorResponse{
		Code:    codeInternalError,
		Message: "internal error",
	}
}

// classifyBind maps an echo binding failure. An unsupported content type
// keeps its own status; everything else is an unparseable payload.
func classifyBind(err error) (int, ErrorResponse) {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) && httpErr.Code == http.StatusUnsupportedMediaType {
		return http.StatusUnsupportedMediaType, ErrorResponse{
			Code:    codeUnsupportedMediaType,
			Message: "unsupported content type",
		}
	}

	return http.StatusBadRequest, ErrorResponse{
		Code:    codeInvalidJSON,
		Message: "request body could not be parsed",
	}
}
