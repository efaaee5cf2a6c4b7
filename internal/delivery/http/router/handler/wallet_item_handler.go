package handler

import (
	"log/slog"
	"net/http"

	"safewallet/internal/delivery/http/response"
	"safewallet/internal/delivery/http/validator"
	"safewallet/internal/domain/entity"
	"safewallet/internal/usecase"
	"safewallet/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// WalletItemHandlerParams holds dependencies for WalletItemHandler, injected by Fx.
type WalletItemHandlerParams struct {
	fx.In

	WalletItemUC usecase.WalletItemUsecase
	Logger       *slog.Logger
}

// WalletItemHandler serves the card catalogue
type WalletItemHandler struct {
	walletItemUC usecase.WalletItemUsecase
	logger       *slog.Logger
}

// NewWalletItemHandler is the constructor for WalletItemHandler
func NewWalletItemHandler(params WalletItemHandlerParams) *WalletItemHandler {
	return &WalletItemHandler{
		walletItemUC: params.WalletItemUC,
		logger:       params.Logger,
	}
}

// WalletItemRequest is the body of POST and PUT item requests.
// A blank name is accepted and ignored by the catalogue.
type WalletItemRequest struct {
	Type         string `json:"type" validate:"omitempty,wallet_item_type"`
	Name         string `json:"name" validate:"max=120"`
	Issuer       string `json:"issuer" validate:"max=120"`
	Number       string `json:"number" validate:"max=64"`
	IssueDate    string `json:"issue_date" validate:"max=32"`
	ExpiryDate   string `json:"expiry_date" validate:"max=32"`
	SupportPhone string `json:"support_phone" validate:"max=32"`
	ContactPhone string `json:"contact_phone" validate:"max=32"`
}

func (r *WalletItemRequest) draft() entity.WalletItemDraft {
	return entity.WalletItemDraft{
		Type:         entity.WalletItemType(r.Type),
		Name:         r.Name,
		Issuer:       r.Issuer,
		Number:       r.Number,
		IssueDate:    r.IssueDate,
		ExpiryDate:   r.ExpiryDate,
		SupportPhone: r.SupportPhone,
		ContactPhone: r.ContactPhone,
	}
}

// WalletItemView is an item as shown by the wallet screen
type WalletItemView struct {
	*entity.WalletItem
	TypeLabel    string `json:"type_label"`
	MaskedNumber string `json:"masked_number,omitempty"`
}

func newWalletItemView(item *entity.WalletItem) *WalletItemView {
	if item == nil {
		return nil
	}

	return &WalletItemView{
		WalletItem:   item,
		TypeLabel:    item.Type.Label(),
		MaskedNumber: item.MaskedNumber(),
	}
}

// MutationResult tells the client whether a catalogue call changed anything
type MutationResult struct {
	Changed bool            `json:"changed"`
	Item    *WalletItemView `json:"item,omitempty"`
}

// ListItems handles GET /api/wallet/items
func (h *WalletItemHandler) ListItems(c echo.Context) error {
	items := h.walletItemUC.List()

	views := make([]*WalletItemView, 0, len(items))
	for _, item := range items {
		views = append(views, newWalletItemView(item))
	}

	return response.Success(c, http.StatusOK, views, "Wallet items retrieved successfully")
}

// GetItem handles GET /api/wallet/items/:id
func (h *WalletItemHandler) GetItem(c echo.Context) error {
	item, ok := h.walletItemUC.Get(c.Param("id"))
	if !ok {
		return handleError(c, impl.ErrItemNotFound)
	}

	return response.Success(c, http.StatusOK, newWalletItemView(item), "Wallet item retrieved successfully")
}

// AddItem handles POST /api/wallet/items
func (h *WalletItemHandler) AddItem(c echo.Context) error {
	var req WalletItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid wallet item input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, validator.Describe(err))
	}

	item, ok := h.walletItemUC.Add(c.Request().Context(), req.draft())
	if !ok {
		return response.Success(c, http.StatusOK, MutationResult{Changed: false}, "Nothing to add")
	}

	return response.Success(c, http.StatusCreated, MutationResult{Changed: true, Item: newWalletItemView(item)}, "Wallet item added successfully")
}

// UpdateItem handles PUT /api/wallet/items/:id
func (h *WalletItemHandler) UpdateItem(c echo.Context) error {
	var req WalletItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid wallet item input")
	}

	if err := c.Validate(&req); err != nil {
		return response.ValidationError(c, validator.Describe(err))
	}

	item, ok := h.walletItemUC.Update(c.Request().Context(), c.Param("id"), req.draft())
	if !ok {
		return response.Success(c, http.StatusOK, MutationResult{Changed: false}, "Nothing to update")
	}

	return response.Success(c, http.StatusOK, MutationResult{Changed: true, Item: newWalletItemView(item)}, "Wallet item updated successfully")
}

// RemoveItem handles DELETE /api/wallet/items/:id
func (h *WalletItemHandler) RemoveItem(c echo.Context) error {
	removed := h.walletItemUC.Remove(c.Request().Context(), c.Param("id"))

	return response.Success(c, http.StatusOK, MutationResult{Changed: removed}, "Wallet item removal processed")
}

// SupportQR handles GET /api/wallet/items/:id/qrcode
func (h *WalletItemHandler) SupportQR(c echo.Context) error {
	png, err := h.walletItemUC.SupportQR(c.Request().Context(), c.Param("id"))
	if err != nil {
		return handleError(c, err)
	}

	return c.Blob(http.StatusOK, "image/png", png)
}
