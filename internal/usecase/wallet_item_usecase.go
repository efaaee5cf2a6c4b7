package usecase

import (
	"context"

	"safewallet/internal/domain/entity"
)

// WalletItemUsecase is the ordered catalogue of cards and documents in the wallet.
//
// Blank names and unknown ids are not errors: the call is ignored and reports
// false, leaving the catalogue untouched.
type WalletItemUsecase interface {
	// Add appends a new item and returns it.
	Add(ctx context.Context, draft entity.WalletItemDraft) (*entity.WalletItem, bool)

	// Update replaces the mutable fields of an existing item, keeping its id and position.
	Update(ctx context.Context, id string, draft entity.WalletItemDraft) (*entity.WalletItem, bool)

	// Remove deletes the item with the given id.
	Remove(ctx context.Context, id string) bool

	// List returns a snapshot of the catalogue in insertion order.
	List() []*entity.WalletItem

	// Get returns a copy of a single item.
	Get(id string) (*entity.WalletItem, bool)

	// SupportQR renders a QR code dialing the item's blocking number.
	SupportQR(ctx context.Context, id string) ([]byte, error)
}
