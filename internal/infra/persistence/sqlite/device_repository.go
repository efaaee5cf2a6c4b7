package sqlite

import (
	"context"
	"database/sql"
	"strings"

	"safewallet/internal/domain/entity"
	domainerrors "safewallet/internal/domain/errors"
	"safewallet/internal/domain/repository"
	"safewallet/internal/errors"

	"github.com/google/uuid"
)

const deviceColumns = `id, fcm_token, device_id, platform, is_active, created_at, updated_at`

// deviceRepository implements the repository.DeviceRepository interface.
type deviceRepository struct {
	db *sql.DB
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(db *sql.DB) repository.DeviceRepository {
	return &deviceRepository{
		db: db,
	}
}

// CreateDevice persists a new device.
func (repo *deviceRepository) CreateDevice(ctx context.Context, device *entity.PushDevice) error {
	_, err := repo.db.ExecContext(ctx,
		`INSERT INTO push_devices (`+deviceColumns+`) VALUES (?, ?, ?, ?, ?, ?, ?);`,
		device.ID.String(),
		device.FCMToken,
		device.DeviceID,
		device.Platform,
		boolToInt(device.IsActive),
		formatTime(device.CreatedAt),
		formatTime(device.UpdatedAt),
	)
	if err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateDevice
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create device")
	}

	return nil
}

// FindDeviceByID retrieves a device by its unique ID.
func (repo *deviceRepository) FindDeviceByID(ctx context.Context, id uuid.UUID) (*entity.PushDevice, error) {
	row := repo.db.QueryRowContext(ctx, `SELECT `+deviceColumns+` FROM push_devices WHERE id = ?;`, id.String())

	device, err := scanDevice(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to find device by ID")
	}

	return device, nil
}

// FindDeviceByDeviceID retrieves a device by the client supplied identifier.
func (repo *deviceRepository) FindDeviceByDeviceID(ctx context.Context, deviceID string) (*entity.PushDevice, error) {
	row := repo.db.QueryRowContext(ctx, `SELECT `+deviceColumns+` FROM push_devices WHERE device_id = ?;`, deviceID)

	device, err := scanDevice(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, repository.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to find device by device ID")
	}

	return device, nil
}

// FindDevices retrieves all devices (including inactive).
func (repo *deviceRepository) FindDevices(ctx context.Context) ([]*entity.PushDevice, error) {
	return repo.queryDevices(ctx, `SELECT `+deviceColumns+` FROM push_devices ORDER BY created_at DESC;`)
}

// FindActiveDevices retrieves all active devices.
func (repo *deviceRepository) FindActiveDevices(ctx context.Context) ([]*entity.PushDevice, error) {
	return repo.queryDevices(ctx, `SELECT `+deviceColumns+` FROM push_devices WHERE is_active = 1 ORDER BY created_at DESC;`)
}

// UpdateFCMToken updates the FCM token and reactivates the device.
func (repo *deviceRepository) UpdateFCMToken(ctx context.Context, id uuid.UUID, fcmToken string) error {
	result, err := repo.db.ExecContext(ctx,
		`UPDATE push_devices SET fcm_token = ?, is_active = 1, updated_at = ? WHERE id = ?;`,
		fcmToken, formatTime(nowUTC()), id.String(),
	)
	if err != nil {
		return errors.Wrap(err, "failed to update FCM token")
	}

	return requireAffected(result)
}

// DeactivateDevice marks a device inactive (soft delete).
func (repo *deviceRepository) DeactivateDevice(ctx context.Context, id uuid.UUID) error {
	result, err := repo.db.ExecContext(ctx,
		`UPDATE push_devices SET is_active = 0, updated_at = ? WHERE id = ?;`,
		formatTime(nowUTC()), id.String(),
	)
	if err != nil {
		return errors.Wrap(err, "failed to deactivate device")
	}

	return requireAffected(result)
}

// DeactivateByTokens marks every active device holding one of the tokens inactive.
func (repo *deviceRepository) DeactivateByTokens(ctx context.Context, tokens []string) (int, error) {
	if len(tokens) == 0 {
		return 0, nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?, ", len(tokens)), ", ")
	args := make([]any, 0, len(tokens)+1)
	args = append(args, formatTime(nowUTC()))
	for _, token := range tokens {
		args = append(args, token)
	}

	result, err := repo.db.ExecContext(ctx,
		`UPDATE push_devices SET is_active = 0, updated_at = ? WHERE is_active = 1 AND fcm_token IN (`+placeholders+`);`,
		args...,
	)
	if err != nil {
		return 0, errors.Wrap(err, "failed to deactivate devices by token")
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, errors.Wrap(err, "failed to read affected rows")
	}

	return int(affected), nil
}

func (repo *deviceRepository) queryDevices(ctx context.Context, query string) ([]*entity.PushDevice, error) {
	rows, err := repo.db.QueryContext(ctx, query)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query devices")
	}
	defer rows.Close()

	devices := make([]*entity.PushDevice, 0)
	for rows.Next() {
		device, err := scanDevice(rows)
		if err != nil {
			return nil, errors.Wrap(err, "failed to scan device")
		}
		devices = append(devices, device)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to iterate devices")
	}

	return devices, nil
}

func requireAffected(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return errors.Wrap(err, "failed to read affected rows")
	}
	if affected == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

// --- Mapper Functions ---

// scanDevice converts a push_devices row to a domain PushDevice entity.
func scanDevice(row rowScanner) (*entity.PushDevice, error) {
	var (
		id        string
		device    entity.PushDevice
		isActive  int
		createdAt string
		updatedAt string
	)

	if err := row.Scan(&id, &device.FCMToken, &device.DeviceID, &device.Platform, &isActive, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid device id %q", id)
	}

	device.ID = parsed
	device.IsActive = isActive != 0
	device.CreatedAt = parseTime(createdAt)
	device.UpdatedAt = parseTime(updatedAt)

	return &device, nil
}
