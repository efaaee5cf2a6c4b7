package impl

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"sync"

	"safewallet/config"
	deliverycontext "safewallet/internal/delivery/context"
	"safewallet/internal/domain/entity"
	"safewallet/internal/domain/repository"
	"safewallet/internal/domain/service"
	"safewallet/internal/usecase"

	"github.com/google/uuid"
)

var (
	// ErrItemNotFound is returned when no item has the requested id
	ErrItemNotFound = errors.New("wallet item not found")
	// ErrNoSupportPhone is returned when an item has no blocking number to encode
	ErrNoSupportPhone = errors.New("wallet item has no support phone")
)

// DemoItems returns the catalogue shipped with a fresh install.
func DemoItems() []entity.WalletItemDraft {
	return []entity.WalletItemDraft{
		{
			Type:         entity.WalletItemCredit,
			Name:         "Mastercard Gold",
			Issuer:       "UBS",
			Number:       "5412 3400 9910 2234",
			ExpiryDate:   "12/28",
			SupportPhone: "+41 44 828 33 00",
		},
		{
			Type:       entity.WalletItemID,
			Name:       "Carta d'Identità",
			Issuer:     "Svizzera",
			ExpiryDate: "05/30",
		},
	}
}

type walletItemService struct {
	mu    sync.RWMutex
	items []*entity.WalletItem

	// persistMu orders snapshot writes so the last write always holds the latest catalogue
	persistMu sync.Mutex
	snapshots repository.SnapshotRepository // nil when snapshots are disabled
	qrSvc     service.QRCodeService
	logger    *slog.Logger
	newID     func() string
}

// NewWalletItemService creates the catalogue, restoring it from the snapshot store when configured.
func NewWalletItemService(
	ctx context.Context,
	cfg *config.Config,
	snapshots repository.SnapshotRepository,
	qrSvc service.QRCodeService,
	logger *slog.Logger,
) usecase.WalletItemUsecase {
	s := &walletItemService{
		snapshots: snapshots,
		qrSvc:     qrSvc,
		logger:    logger,
		newID:     func() string { return uuid.NewString() },
	}

	if s.restore(ctx, cfg) {
		return s
	}

	if cfg.Wallet != nil && cfg.Wallet.SeedDemoItems {
		for _, draft := range DemoItems() {
			s.items = append(s.items, entity.NewWalletItem(s.newID(), draft.Normalize()))
		}
	}

	return s
}

func (s *walletItemService) restore(ctx context.Context, cfg *config.Config) bool {
	if s.snapshots == nil || cfg.Persistence == nil || !cfg.Persistence.RestoreOnStart {
		return false
	}

	items, err := s.snapshots.LoadItems(ctx)
	if err != nil {
		if !errors.Is(err, repository.ErrSnapshotNotFound) {
			s.logger.Warn("Failed to restore wallet items, starting fresh", slog.Any("error", err))
		}

		return false
	}

	s.items = items
	s.logger.Info("Wallet items restored", slog.Int("count", len(items)))

	return true
}

// Add appends a new item built from the draft
func (s *walletItemService) Add(ctx context.Context, draft entity.WalletItemDraft) (*entity.WalletItem, bool) {
	draft = draft.Normalize()
	if draft.Name == "" {
		return nil, false
	}

	item := entity.NewWalletItem(s.newID(), draft)

	s.mu.Lock()
	s.items = append(s.items, item)
	created := *item
	s.mu.Unlock()

	s.persist(ctx)

	return &created, true
}

// Update replaces the mutable fields of the item with the given id
func (s *walletItemService) Update(ctx context.Context, id string, draft entity.WalletItemDraft) (*entity.WalletItem, bool) {
	draft = draft.Normalize()
	if draft.Name == "" {
		return nil, false
	}

	s.mu.Lock()
	idx := s.indexLocked(id)
	if idx < 0 {
		s.mu.Unlock()

		return nil, false
	}
	s.items[idx].Apply(draft)
	updated := *s.items[idx]
	s.mu.Unlock()

	s.persist(ctx)

	return &updated, true
}

// Remove deletes the item with the given id
func (s *walletItemService) Remove(ctx context.Context, id string) bool {
	s.mu.Lock()
	idx := s.indexLocked(id)
	if idx < 0 {
		s.mu.Unlock()

		return false
	}
	s.items = slices.Delete(s.items, idx, idx+1)
	s.mu.Unlock()

	s.persist(ctx)

	return true
}

// List returns copies of every item in insertion order
func (s *walletItemService) List() []*entity.WalletItem {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*entity.WalletItem, 0, len(s.items))
	for _, item := range s.items {
		c := *item
		out = append(out, &c)
	}

	return out
}

// Get returns a copy of the item with the given id
func (s *walletItemService) Get(id string) (*entity.WalletItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.indexLocked(id)
	if idx < 0 {
		return nil, false
	}
	c := *s.items[idx]

	return &c, true
}

// SupportQR renders a tel: QR code for the item's blocking number
func (s *walletItemService) SupportQR(ctx context.Context, id string) ([]byte, error) {
	item, ok := s.Get(id)
	if !ok {
		return nil, ErrItemNotFound
	}
	if item.SupportPhone == "" {
		return nil, ErrNoSupportPhone
	}

	png, err := s.qrSvc.GeneratePhoneQR(item.SupportPhone)
	if err != nil {
		deliverycontext.LoggerFrom(ctx, s.logger).Error("Failed to generate support QR code",
			slog.String("item_id", id),
			slog.Any("error", err),
		)

		return nil, err
	}

	return png, nil
}

func (s *walletItemService) indexLocked(id string) int {
	return slices.IndexFunc(s.items, func(item *entity.WalletItem) bool {
		return item.ID == id
	})
}

// persist writes the current catalogue. Failures are logged and never reach the caller.
func (s *walletItemService) persist(ctx context.Context) {
	if s.snapshots == nil {
		return
	}

	s.persistMu.Lock()
	defer s.persistMu.Unlock()

	if err := s.snapshots.SaveItems(context.WithoutCancel(ctx), s.List()); err != nil {
		deliverycontext.LoggerFrom(ctx, s.logger).Warn("Failed to persist wallet items", slog.Any("error", err))
	}
}
