package handler

import (
	"net/http"
	"testing"

	"safewallet/internal/domain/entity"
	mockUsecase "safewallet/internal/mocks/usecase"
	"safewallet/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type walletItemHandlerFixture struct {
	e  *echo.Echo
	uc *mockUsecase.MockWalletItemUsecase
}

func createTestWalletItemHandler(t *testing.T) *walletItemHandlerFixture {
	uc := mockUsecase.NewMockWalletItemUsecase(t)
	h := NewWalletItemHandler(WalletItemHandlerParams{WalletItemUC: uc, Logger: newTestLogger()})

	e := newTestEcho()
	e.GET("/api/wallet/items", h.ListItems)
	e.POST("/api/wallet/items", h.AddItem)
	e.GET("/api/wallet/items/:id", h.GetItem)
	e.PUT("/api/wallet/items/:id", h.UpdateItem)
	e.DELETE("/api/wallet/items/:id", h.RemoveItem)
	e.GET("/api/wallet/items/:id/qrcode", h.SupportQR)

	return &walletItemHandlerFixture{e: e, uc: uc}
}

func testCard() *entity.WalletItem {
	return entity.NewWalletItem("card-1", entity.WalletItemDraft{
		Type:         entity.WalletItemCredit,
		Name:         "Mastercard Gold",
		Issuer:       "UBS",
		Number:       "5412 3400 9910 2234",
		ExpiryDate:   "12/28",
		SupportPhone: "+41 44 828 33 00",
	})
}

func TestWalletItemHandler_ListItems(t *testing.T) {
	fx := createTestWalletItemHandler(t)

	fx.uc.EXPECT().List().Return([]*entity.WalletItem{testCard()})

	rec := serve(fx.e, http.MethodGet, "/api/wallet/items", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var items []map[string]any
	env := decodeData(t, rec, &items)
	assert.True(t, env.Success)
	require.Len(t, items, 1)
	assert.Equal(t, "card-1", items[0]["id"])
	assert.Equal(t, "Credito", items[0]["type_label"])
	assert.Equal(t, "•••• •••• •••• 2234", items[0]["masked_number"])
	assert.Equal(t, "from-blue-800 to-slate-900", items[0]["color"])
}

func TestWalletItemHandler_AddItem(t *testing.T) {
	fx := createTestWalletItemHandler(t)

	fx.uc.EXPECT().
		Add(mock.Anything, mock.MatchedBy(func(d entity.WalletItemDraft) bool {
			return d.Name == "Mastercard Gold" && d.Type == entity.WalletItemCredit
		})).
		Return(testCard(), true)

	rec := serve(fx.e, http.MethodPost, "/api/wallet/items", `{"type":"credit","name":"Mastercard Gold"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	var result struct {
		Changed bool           `json:"changed"`
		Item    map[string]any `json:"item"`
	}
	decodeData(t, rec, &result)
	assert.True(t, result.Changed)
	assert.Equal(t, "card-1", result.Item["id"])
}

func TestWalletItemHandler_AddItem_BlankNameIgnored(t *testing.T) {
	fx := createTestWalletItemHandler(t)

	fx.uc.EXPECT().Add(mock.Anything, mock.Anything).Return(nil, false)

	rec := serve(fx.e, http.MethodPost, "/api/wallet/items", `{"name":"   "}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var result MutationResult
	decodeData(t, rec, &result)
	assert.False(t, result.Changed)
	assert.Nil(t, result.Item)
}

func TestWalletItemHandler_AddItem_InvalidInput(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantCode string
	}{
		{name: "unknown type", body: `{"type":"passport","name":"Passaporto"}`, wantCode: "VALIDATION_FAILED"},
		{name: "malformed json", body: `{"name":`, wantCode: "INVALID_INPUT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestWalletItemHandler(t)

			rec := serve(fx.e, http.MethodPost, "/api/wallet/items", tt.body)
			require.Equal(t, http.StatusBadRequest, rec.Code)

			env := decode(t, rec)
			assert.False(t, env.Success)
			require.NotNil(t, env.Error)
			assert.Equal(t, tt.wantCode, env.Error.Code)
		})
	}
}

func TestWalletItemHandler_UpdateItem_UnknownIgnored(t *testing.T) {
	fx := createTestWalletItemHandler(t)

	fx.uc.EXPECT().Update(mock.Anything, "missing", mock.Anything).Return(nil, false)

	rec := serve(fx.e, http.MethodPut, "/api/wallet/items/missing", `{"name":"Visa"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var result MutationResult
	decodeData(t, rec, &result)
	assert.False(t, result.Changed)
}

func TestWalletItemHandler_GetItem_NotFound(t *testing.T) {
	fx := createTestWalletItemHandler(t)

	fx.uc.EXPECT().Get("missing").Return(nil, false)

	rec := serve(fx.e, http.MethodGet, "/api/wallet/items/missing", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "ITEM_NOT_FOUND", decode(t, rec).Error.Code)
}

func TestWalletItemHandler_RemoveItem(t *testing.T) {
	fx := createTestWalletItemHandler(t)

	fx.uc.EXPECT().Remove(mock.Anything, "card-1").Return(true)

	rec := serve(fx.e, http.MethodDelete, "/api/wallet/items/card-1", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var result MutationResult
	decodeData(t, rec, &result)
	assert.True(t, result.Changed)
}

func TestWalletItemHandler_SupportQR(t *testing.T) {
	fx := createTestWalletItemHandler(t)

	png := []byte{0x89, 0x50, 0x4E, 0x47}
	fx.uc.EXPECT().SupportQR(mock.Anything, "card-1").Return(png, nil)
	fx.uc.EXPECT().SupportQR(mock.Anything, "id-card").Return(nil, impl.ErrNoSupportPhone)

	rec := serve(fx.e, http.MethodGet, "/api/wallet/items/card-1/qrcode", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, png, rec.Body.Bytes())

	rec = serve(fx.e, http.MethodGet, "/api/wallet/items/id-card/qrcode", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "ITEM_NO_SUPPORT_PHONE", decode(t, rec).Error.Code)
}
