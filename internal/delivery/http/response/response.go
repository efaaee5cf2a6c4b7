// Package response renders the JSON envelope shared by every API route.
package response

import (
	"net/http"

	deliverycontext "safewallet/internal/delivery/context"
	domainerrors "safewallet/internal/domain/errors"
	"safewallet/internal/errors"

	"github.com/labstack/echo/v4"
)

// Response is the envelope of every dashboard API answer.
type Response struct {
	Success bool       `json:"success"`
	Code    int        `json:"code"`
	Message string     `json:"message"`
	Data    any        `json:"data,omitempty"`
	Error   *ErrorInfo `json:"error,omitempty"`
}

// ErrorInfo describes a failed request.
type ErrorInfo struct {
	Code    string `json:"code"` // e.g. "ITEM_NOT_FOUND"
	Details string `json:"details,omitempty"`
	// RequestID lets a user quote the failing call when reporting a problem.
	RequestID string `json:"request_id,omitempty"`
}

func Success(c echo.Context, statusCode int, data any, message string) error {
	if message == "" {
		message = "Success"
	}

	return c.JSON(statusCode, Response{
		Success: true,
		Code:    statusCode,
		Message: message,
		Data:    data,
	})
}

// Error renders a failure. Details never leave the server on 5xx.
func Error(c echo.Context, statusCode int, errorCode, message, details string) error {
	if message == "" {
		message = http.StatusText(statusCode)
	}
	if statusCode >= http.StatusInternalServerError {
		details = ""
	}

	return c.JSON(statusCode, Response{
		Code:    statusCode,
		Message: message,
		Error: &ErrorInfo{
			Code:      errorCode,
			Details:   details,
			RequestID: deliverycontext.EchoRequestID(c),
		},
	})
}

// AppError renders a domain error with its own status and code.
func AppError(c echo.Context, appErr domainerrors.AppError) error {
	return Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
}

// BadRequest is used for malformed bodies and path parameters.
func BadRequest(c echo.Context, errorCode, message string) error {
	return Error(c, http.StatusBadRequest, errorCode, message, "")
}

// ValidationError reports the fields that failed validation.
func ValidationError(c echo.Context, details string) error {
	return AppError(c, domainerrors.ErrValidationFailed.WithDetails(details))
}

func InternalServerError(c echo.Context) error {
	return AppError(c, domainerrors.ErrInternalError)
}

// HandleAppError renders domain errors; anything else is returned to the
// echo error handler with a stack attached.
func HandleAppError(c echo.Context, err error) error {
	if appErr, ok := errors.AsType[domainerrors.AppError](err); ok {
		return AppError(c, appErr)
	}

	return errors.WithStack(err)
}
