package sqlite

import (
	"context"
	"database/sql"
	"time"

	"safewallet/internal/domain/entity"
	"safewallet/internal/domain/repository"
	"safewallet/internal/errors"
)

const itemsSnapshot = "wallet_items"

// snapshotRepository implements the repository.SnapshotRepository interface.
type snapshotRepository struct {
	db  *sql.DB
	now func() time.Time
}

// NewSnapshotRepository is the constructor for snapshotRepository.
func NewSnapshotRepository(db *sql.DB) repository.SnapshotRepository {
	return &snapshotRepository{
		db:  db,
		now: time.Now,
	}
}

// SaveItems replaces the stored catalogue inside one transaction.
func (repo *snapshotRepository) SaveItems(ctx context.Context, items []*entity.WalletItem) error {
	tx, err := repo.db.BeginTx(ctx, nil)
	if err != nil {
		return errors.Wrap(err, "failed to begin items snapshot")
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM wallet_items;`); err != nil {
		return errors.Wrap(err, "failed to clear wallet items")
	}

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO wallet_items
		(position, id, type, name, issuer, number, issue_date, expiry_date, support_phone, contact_phone, schema_version)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`)
	if err != nil {
		return errors.Wrap(err, "failed to prepare wallet item insert")
	}
	defer stmt.Close()

	for position, item := range items {
		if _, err := stmt.ExecContext(ctx,
			position,
			item.ID,
			string(item.Type),
			item.Name,
			item.Issuer,
			item.Number,
			item.IssueDate,
			item.ExpiryDate,
			item.SupportPhone,
			item.ContactPhone,
			SnapshotVersion,
		); err != nil {
			return errors.Wrapf(err, "failed to insert wallet item %s", item.ID)
		}
	}

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO snapshot_meta (name, saved_at) VALUES (?, ?)
		ON CONFLICT(name) DO UPDATE SET saved_at = excluded.saved_at;`,
		itemsSnapshot, formatTime(repo.now()),
	); err != nil {
		return errors.Wrap(err, "failed to record items snapshot")
	}

	return errors.Wrap(tx.Commit(), "failed to commit items snapshot")
}

// LoadItems returns the stored catalogue in insertion order.
func (repo *snapshotRepository) LoadItems(ctx context.Context) ([]*entity.WalletItem, error) {
	var savedAt string
	err := repo.db.QueryRowContext(ctx, `SELECT saved_at FROM snapshot_meta WHERE name = ?;`, itemsSnapshot).Scan(&savedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrSnapshotNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to read items snapshot")
	}

	rows, err := repo.db.QueryContext(ctx, `SELECT id, type, name, issuer, number, issue_date, expiry_date, support_phone, contact_phone
		FROM wallet_items WHERE schema_version <= ? ORDER BY position ASC;`, SnapshotVersion)
	if err != nil {
		return nil, errors.Wrap(err, "failed to query wallet items")
	}
	defer rows.Close()

	items := make([]*entity.WalletItem, 0)
	for rows.Next() {
		var (
			id    string
			draft entity.WalletItemDraft
			typ   string
		)
		if err := rows.Scan(
			&id,
			&typ,
			&draft.Name,
			&draft.Issuer,
			&draft.Number,
			&draft.IssueDate,
			&draft.ExpiryDate,
			&draft.SupportPhone,
			&draft.ContactPhone,
		); err != nil {
			return nil, errors.Wrap(err, "failed to scan wallet item")
		}
		draft.Type = entity.WalletItemType(typ)

		items = append(items, entity.NewWalletItem(id, draft))
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to iterate wallet items")
	}

	return items, nil
}

// SaveStatus upserts the single status row.
func (repo *snapshotRepository) SaveStatus(ctx context.Context, status *entity.WalletStatus) error {
	_, err := repo.db.ExecContext(ctx, `INSERT INTO wallet_status
		(id, is_connected, battery_level, is_lost, last_seen, latitude, longitude, distance, temperature, schema_version)
		VALUES (1, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			is_connected = excluded.is_connected,
			battery_level = excluded.battery_level,
			is_lost = excluded.is_lost,
			last_seen = excluded.last_seen,
			latitude = excluded.latitude,
			longitude = excluded.longitude,
			distance = excluded.distance,
			temperature = excluded.temperature,
			schema_version = excluded.schema_version;`,
		boolToInt(status.IsConnected),
		status.BatteryLevel,
		boolToInt(status.IsLost),
		formatTime(status.LastSeen),
		status.Location.Lat,
		status.Location.Lng,
		status.Distance,
		string(status.Temperature),
		SnapshotVersion,
	)

	return errors.Wrap(err, "failed to save wallet status")
}

// LoadStatus returns the stored status or repository.ErrSnapshotNotFound.
func (repo *snapshotRepository) LoadStatus(ctx context.Context) (*entity.WalletStatus, error) {
	var (
		status      entity.WalletStatus
		isConnected int
		isLost      int
		lastSeen    string
		temperature string
	)

	err := repo.db.QueryRowContext(ctx, `SELECT is_connected, battery_level, is_lost, last_seen, latitude, longitude, distance, temperature
		FROM wallet_status WHERE id = 1 AND schema_version <= ?;`, SnapshotVersion).Scan(
		&isConnected,
		&status.BatteryLevel,
		&isLost,
		&lastSeen,
		&status.Location.Lat,
		&status.Location.Lng,
		&status.Distance,
		&temperature,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrSnapshotNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load wallet status")
	}

	status.IsConnected = isConnected != 0
	status.IsLost = isLost != 0
	status.LastSeen = parseTime(lastSeen)
	status.Temperature = entity.Temperature(temperature)

	return &status, nil
}
