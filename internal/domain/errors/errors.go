// Package errors defines the errors the dashboard API renders, each with a
// status, a stable code and an Italian message for the app.
package errors

import (
	"net/http"

	"safewallet/internal/errors"
)

// AppError is an error the API can render as-is.
type AppError interface {
	error
	HTTPCode() int
	ErrorCode() string
	Message() string
	Details() string
}

// BaseError is an AppError identified by its code.
type BaseError struct {
	httpCode  int
	errorCode string
	message   string
	details   string
}

func coded(httpCode int, errorCode, message string) *BaseError {
	return &BaseError{httpCode: httpCode, errorCode: errorCode, message: message}
}

func (e *BaseError) Error() string {
	if e.details != "" {
		return e.message + ": " + e.details
	}

	return e.message
}

func (e *BaseError) HTTPCode() int     { return e.httpCode }
func (e *BaseError) ErrorCode() string { return e.errorCode }
func (e *BaseError) Message() string   { return e.message }
func (e *BaseError) Details() string   { return e.details }

// WithDetails returns a copy carrying details; the original is left untouched.
func (e *BaseError) WithDetails(details string) *BaseError {
	cp := *e
	cp.details = details

	return &cp
}

// Is matches on the code so copies from WithDetails equal their template.
func (e *BaseError) Is(target error) bool {
	t, ok := target.(*BaseError)

	return ok && t.errorCode == e.errorCode
}

var (
	ErrItemNotFound       = coded(http.StatusNotFound, "ITEM_NOT_FOUND", "Elemento non trovato nel portafoglio")
	ErrItemNoSupportPhone = coded(http.StatusNotFound, "ITEM_NO_SUPPORT_PHONE", "L'elemento non ha un numero di blocco")

	ErrInvalidCoordinate    = coded(http.StatusBadRequest, "INVALID_COORDINATE", "Coordinate non valide")
	ErrPositionFeedDisabled = coded(http.StatusConflict, "POSITION_FEED_DISABLED", "La sorgente di posizione HTTP non è attiva")

	ErrAssistantBusy = coded(http.StatusConflict, "ASSISTANT_BUSY", "L'assistente sta già elaborando una richiesta")
	ErrAlertNoClip   = coded(http.StatusNotFound, "ALERT_NO_CLIP", "Nessun avviso sonoro disponibile")

	ErrInvalidGeofenceRadius = coded(http.StatusBadRequest, "INVALID_GEOFENCE_RADIUS", "Raggio del geofence non valido")

	ErrTilesDisabled = coded(http.StatusNotFound, "TILES_DISABLED", "Il server di mappe locale non è attivo")
	ErrTileNotFound  = coded(http.StatusNotFound, "TILE_NOT_FOUND", "Tassello non trovato")

	ErrDeviceNotFound = coded(http.StatusNotFound, "DEVICE_NOT_FOUND", "Dispositivo non trovato")

	ErrValidationFailed = coded(http.StatusBadRequest, "VALIDATION_FAILED", "Validazione dei dati non riuscita")
	ErrConflict         = coded(http.StatusConflict, "CONFLICT", "Conflitto sulla risorsa")
	ErrInternalError    = coded(http.StatusInternalServerError, "INTERNAL_ERROR", "Errore interno del sistema")
)

// DatabaseExecuteError wraps a storage failure. It renders as a 500 and
// unwraps to the driver error.
type DatabaseExecuteError struct {
	err       error
	operation string
}

func NewDatabaseExecuteError(err error, operation string) AppError {
	return &DatabaseExecuteError{err: err, operation: operation}
}

func (e *DatabaseExecuteError) Error() string {
	return errors.Wrap(e.err, e.operation).Error()
}

func (e *DatabaseExecuteError) Unwrap() error     { return e.err }
func (e *DatabaseExecuteError) HTTPCode() int     { return http.StatusInternalServerError }
func (e *DatabaseExecuteError) ErrorCode() string { return "DATABASE_EXECUTE_FAILED" }
func (e *DatabaseExecuteError) Message() string   { return "Errore di esecuzione del database" }
func (e *DatabaseExecuteError) Details() string   { return e.operation }
