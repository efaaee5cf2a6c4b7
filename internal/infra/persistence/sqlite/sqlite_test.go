package sqlite

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"safewallet/config"
	"safewallet/internal/domain/entity"
	"safewallet/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()

	db, err := Open(MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, Migrate(context.Background(), db))

	return db
}

func TestMigrate_Idempotent(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, Migrate(context.Background(), db))

	var count int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM schema_migrations;`).Scan(&count))
	assert.Equal(t, len(migrations), count)
}

func TestNew_Lifecycle(t *testing.T) {
	cfg := &config.Config{
		Persistence: &config.PersistenceConfig{
			DatabasePath: filepath.Join(t.TempDir(), "nested", "safewallet.db"),
		},
	}
	lc := fxtest.NewLifecycle(t)

	db, err := New(Params{
		Lifecycle: lc,
		Config:    cfg,
		Logger:    slog.New(slog.NewTextHandler(io.Discard, nil)),
	})
	require.NoError(t, err)

	lc.RequireStart()

	repo := NewDeviceRepository(db)
	devices, err := repo.FindDevices(context.Background())
	require.NoError(t, err)
	assert.Empty(t, devices)

	lc.RequireStop()
}

func TestSnapshotRepository_Items(t *testing.T) {
	repo := NewSnapshotRepository(newTestDB(t))
	ctx := context.Background()

	_, err := repo.LoadItems(ctx)
	require.ErrorIs(t, err, repository.ErrSnapshotNotFound)

	card := entity.NewWalletItem(uuid.NewString(), entity.WalletItemDraft{
		Type:         entity.WalletItemCredit,
		Name:         "Mastercard Gold",
		Issuer:       "UBS",
		Number:       "5412 3400 9910 2234",
		ExpiryDate:   "12/28",
		SupportPhone: "+41 44 828 33 00",
	})
	id := entity.NewWalletItem(uuid.NewString(), entity.WalletItemDraft{
		Type:       entity.WalletItemID,
		Name:       "Carta d'Identità",
		Issuer:     "Svizzera",
		ExpiryDate: "05/30",
	})

	require.NoError(t, repo.SaveItems(ctx, []*entity.WalletItem{card, id}))

	items, err := repo.LoadItems(ctx)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, card, items[0])
	assert.Equal(t, id, items[1])
	assert.Equal(t, "from-blue-800 to-slate-900", items[0].Color)

	// replacing keeps the new order and drops removed items
	require.NoError(t, repo.SaveItems(ctx, []*entity.WalletItem{id}))
	items, err = repo.LoadItems(ctx)
	require.NoError(t, err)
	assert.Equal(t, []*entity.WalletItem{id}, items)

	// an empty catalogue is still a snapshot
	require.NoError(t, repo.SaveItems(ctx, nil))
	items, err = repo.LoadItems(ctx)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestSnapshotRepository_Status(t *testing.T) {
	repo := NewSnapshotRepository(newTestDB(t))
	ctx := context.Background()

	_, err := repo.LoadStatus(ctx)
	require.ErrorIs(t, err, repository.ErrSnapshotNotFound)

	lastSeen := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
	status := &entity.WalletStatus{
		IsConnected:  true,
		BatteryLevel: 92,
		LastSeen:     lastSeen,
		Location:     entity.Coordinate{Lat: 46.1966, Lng: 9.0250},
		Distance:     0.5,
		Temperature:  entity.TemperatureVeryHot,
	}
	require.NoError(t, repo.SaveStatus(ctx, status))

	status.IsLost = true
	status.Distance = 75.4
	status.Temperature = entity.TemperatureCold
	require.NoError(t, repo.SaveStatus(ctx, status))

	loaded, err := repo.LoadStatus(ctx)
	require.NoError(t, err)
	assert.True(t, loaded.IsConnected)
	assert.True(t, loaded.IsLost)
	assert.Equal(t, 92, loaded.BatteryLevel)
	assert.True(t, lastSeen.Equal(loaded.LastSeen))
	assert.Equal(t, status.Location, loaded.Location)
	assert.InDelta(t, 75.4, loaded.Distance, 1e-9)
	assert.Equal(t, entity.TemperatureCold, loaded.Temperature)
}

func newTestDevice(deviceID, token string) *entity.PushDevice {
	now := time.Now().UTC()

	return &entity.PushDevice{
		ID:        uuid.New(),
		FCMToken:  token,
		DeviceID:  deviceID,
		Platform:  "android",
		IsActive:  true,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestDeviceRepository_CreateAndFind(t *testing.T) {
	repo := NewDeviceRepository(newTestDB(t))
	ctx := context.Background()

	device := newTestDevice("pixel-8", "token-1")
	require.NoError(t, repo.CreateDevice(ctx, device))

	byID, err := repo.FindDeviceByID(ctx, device.ID)
	require.NoError(t, err)
	assert.Equal(t, device.DeviceID, byID.DeviceID)
	assert.Equal(t, "token-1", byID.FCMToken)
	assert.True(t, byID.IsActive)
	assert.True(t, device.CreatedAt.Equal(byID.CreatedAt))

	byDeviceID, err := repo.FindDeviceByDeviceID(ctx, "pixel-8")
	require.NoError(t, err)
	assert.Equal(t, device.ID, byDeviceID.ID)

	_, err = repo.FindDeviceByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrDeviceNotFound)

	_, err = repo.FindDeviceByDeviceID(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrDeviceNotFound)
}

func TestDeviceRepository_CreateDuplicate(t *testing.T) {
	repo := NewDeviceRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.CreateDevice(ctx, newTestDevice("pixel-8", "token-1")))

	err := repo.CreateDevice(ctx, newTestDevice("pixel-8", "token-2"))
	assert.ErrorIs(t, err, repository.ErrDuplicateDevice)
}

func TestDeviceRepository_UpdateAndDeactivate(t *testing.T) {
	repo := NewDeviceRepository(newTestDB(t))
	ctx := context.Background()

	device := newTestDevice("iphone", "token-1")
	require.NoError(t, repo.CreateDevice(ctx, device))

	require.NoError(t, repo.DeactivateDevice(ctx, device.ID))

	active, err := repo.FindActiveDevices(ctx)
	require.NoError(t, err)
	assert.Empty(t, active)

	all, err := repo.FindDevices(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.False(t, all[0].IsActive)

	// a token refresh reactivates the device
	require.NoError(t, repo.UpdateFCMToken(ctx, device.ID, "token-2"))

	active, err = repo.FindActiveDevices(ctx)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "token-2", active[0].FCMToken)

	assert.ErrorIs(t, repo.UpdateFCMToken(ctx, uuid.New(), "token-3"), repository.ErrDeviceNotFound)
	assert.ErrorIs(t, repo.DeactivateDevice(ctx, uuid.New()), repository.ErrDeviceNotFound)
}

func TestDeviceRepository_DeactivateByTokens(t *testing.T) {
	repo := NewDeviceRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.CreateDevice(ctx, newTestDevice("a", "token-a")))
	require.NoError(t, repo.CreateDevice(ctx, newTestDevice("b", "token-b")))
	require.NoError(t, repo.CreateDevice(ctx, newTestDevice("c", "token-c")))

	retired, err := repo.DeactivateByTokens(ctx, nil)
	require.NoError(t, err)
	assert.Zero(t, retired)

	retired, err = repo.DeactivateByTokens(ctx, []string{"token-a", "token-c", "unknown"})
	require.NoError(t, err)
	assert.Equal(t, 2, retired)

	// already inactive devices are not counted twice
	retired, err = repo.DeactivateByTokens(ctx, []string{"token-a"})
	require.NoError(t, err)
	assert.Zero(t, retired)

	active, err := repo.FindActiveDevices(ctx)
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "b", active[0].DeviceID)
}
