package repository

import (
	"context"

	"safewallet/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrSnapshotNotFound is returned when no snapshot has been stored yet.
var ErrSnapshotNotFound = errors.New("snapshot not found")

// SnapshotRepository persists the wallet catalogue and the last known status.
type SnapshotRepository interface {
	// SaveItems replaces the stored catalogue, keeping the given order.
	SaveItems(ctx context.Context, items []*entity.WalletItem) error

	// LoadItems returns the stored catalogue in insertion order.
	// It returns ErrSnapshotNotFound if nothing was ever saved.
	LoadItems(ctx context.Context) ([]*entity.WalletItem, error)

	// SaveStatus stores the latest wallet status.
	SaveStatus(ctx context.Context, status *entity.WalletStatus) error

	// LoadStatus returns the stored status or ErrSnapshotNotFound.
	LoadStatus(ctx context.Context) (*entity.WalletStatus, error)
}
