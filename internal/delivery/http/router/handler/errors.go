package handler

import (
	"safewallet/internal/delivery/http/response"
	domainerrors "safewallet/internal/domain/errors"
	"safewallet/internal/domain/repository"
	"safewallet/internal/errors"
	"safewallet/internal/usecase/impl"

	"github.com/labstack/echo/v4"
)

// appErrors maps use case sentinels to the errors rendered by the API
var appErrors = []struct {
	target error
	appErr *domainerrors.BaseError
}{
	{impl.ErrItemNotFound, domainerrors.ErrItemNotFound},
	{impl.ErrNoSupportPhone, domainerrors.ErrItemNoSupportPhone},
	{impl.ErrInvalidCoordinate, domainerrors.ErrInvalidCoordinate},
	{impl.ErrInvalidRadius, domainerrors.ErrInvalidGeofenceRadius},
	{impl.ErrPositionFeedDisabled, domainerrors.ErrPositionFeedDisabled},
	{impl.ErrRequestPending, domainerrors.ErrAssistantBusy},
	{impl.ErrConversationReset, domainerrors.ErrConflict},
	{impl.ErrTilesDisabled, domainerrors.ErrTilesDisabled},
	{impl.ErrTileNotFound, domainerrors.ErrTileNotFound},
	{impl.ErrDeviceNotFound, domainerrors.ErrDeviceNotFound},
	{repository.ErrDeviceNotFound, domainerrors.ErrDeviceNotFound},
	{repository.ErrDuplicateDevice, domainerrors.ErrConflict},
}

func toAppError(err error) error {
	for _, m := range appErrors {
		if errors.Is(err, m.target) {
			return m.appErr.WithDetails(m.target.Error())
		}
	}

	return err
}

// handleError renders known failures and lets the echo error handler deal with the rest
func handleError(c echo.Context, err error) error {
	return response.HandleAppError(c, toAppError(err))
}
