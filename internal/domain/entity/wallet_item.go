package entity

import "strings"

// WalletItemType is the closed set of card kinds a wallet can hold.
type WalletItemType string

const (
	WalletItemCredit  WalletItemType = "credit"
	WalletItemID      WalletItemType = "id"
	WalletItemLoyalty WalletItemType = "loyalty"
	WalletItemMember  WalletItemType = "member"
	WalletItemOther   WalletItemType = "other"
)

// DefaultItemColor is used for types missing from the attribute table.
const DefaultItemColor = "from-slate-400 to-slate-600"

type walletItemAttributes struct {
	color string
	label string
}

var walletItemTable = map[WalletItemType]walletItemAttributes{
	WalletItemCredit:  {color: "from-blue-800 to-slate-900", label: "Credito"},
	WalletItemID:      {color: "from-emerald-600 to-teal-800", label: "Identità"},
	WalletItemLoyalty: {color: "from-purple-600 to-indigo-800", label: "Fedeltà"},
	WalletItemMember:  {color: "from-red-600 to-red-900", label: "Membro"},
	WalletItemOther:   {color: "from-blue-400 to-blue-600", label: "Altro"},
}

// WalletItemTypes lists the known types in display order.
func WalletItemTypes() []WalletItemType {
	return []WalletItemType{WalletItemCredit, WalletItemID, WalletItemLoyalty, WalletItemMember, WalletItemOther}
}

// IsValid reports whether t is one of the known types.
func (t WalletItemType) IsValid() bool {
	_, ok := walletItemTable[t]

	return ok
}

// Color returns the display tag for the type.
func (t WalletItemType) Color() string {
	if attrs, ok := walletItemTable[t]; ok {
		return attrs.color
	}

	return DefaultItemColor
}

// Label returns the Italian display name of the type.
func (t WalletItemType) Label() string {
	if attrs, ok := walletItemTable[t]; ok {
		return attrs.label
	}

	return string(t)
}

// WalletItem represents a card or document the user keeps in the wallet.
type WalletItem struct {
	ID           string         `json:"id"`                      // UUID assigned at creation, never changes.
	Type         WalletItemType `json:"type"`                    // Card kind.
	Name         string         `json:"name"`                    // e.g. "Mastercard Gold".
	Issuer       string         `json:"issuer,omitempty"`        // e.g. "UBS".
	Color        string         `json:"color"`                   // Derived from Type.
	Number       string         `json:"number,omitempty"`        // Card or document number.
	IssueDate    string         `json:"issue_date,omitempty"`    // Free text, e.g. "01/24".
	ExpiryDate   string         `json:"expiry_date,omitempty"`   // Free text, e.g. "12/28".
	SupportPhone string         `json:"support_phone,omitempty"` // Number to call to block the card.
	ContactPhone string         `json:"contact_phone,omitempty"` // General contact number.
}

// WalletItemDraft carries the user-editable fields of a WalletItem.
type WalletItemDraft struct {
	Type         WalletItemType `json:"type"`
	Name         string         `json:"name"`
	Issuer       string         `json:"issuer,omitempty"`
	Number       string         `json:"number,omitempty"`
	IssueDate    string         `json:"issue_date,omitempty"`
	ExpiryDate   string         `json:"expiry_date,omitempty"`
	SupportPhone string         `json:"support_phone,omitempty"`
	ContactPhone string         `json:"contact_phone,omitempty"`
}

// Normalize returns a copy with every text field trimmed.
func (d WalletItemDraft) Normalize() WalletItemDraft {
	return WalletItemDraft{
		Type:         WalletItemType(strings.ToLower(strings.TrimSpace(string(d.Type)))),
		Name:         strings.TrimSpace(d.Name),
		Issuer:       strings.TrimSpace(d.Issuer),
		Number:       strings.TrimSpace(d.Number),
		IssueDate:    strings.TrimSpace(d.IssueDate),
		ExpiryDate:   strings.TrimSpace(d.ExpiryDate),
		SupportPhone: strings.TrimSpace(d.SupportPhone),
		ContactPhone: strings.TrimSpace(d.ContactPhone),
	}
}

// NewWalletItem builds an item from a normalized draft.
func NewWalletItem(id string, draft WalletItemDraft) *WalletItem {
	item := &WalletItem{ID: id}
	item.Apply(draft)

	return item
}

// Apply overwrites every mutable field and recomputes the color.
func (i *WalletItem) Apply(draft WalletItemDraft) {
	i.Type = draft.Type
	i.Name = draft.Name
	i.Issuer = draft.Issuer
	i.Color = draft.Type.Color()
	i.Number = draft.Number
	i.IssueDate = draft.IssueDate
	i.ExpiryDate = draft.ExpiryDate
	i.SupportPhone = draft.SupportPhone
	i.ContactPhone = draft.ContactPhone
}

// MaskedNumber hides all but the last four digits of a credit card number.
// Other types are returned unchanged.
func (i *WalletItem) MaskedNumber() string {
	if i.Type != WalletItemCredit || i.Number == "" {
		return i.Number
	}

	digits := strings.ReplaceAll(i.Number, " ", "")
	if len(digits) <= 4 {
		return i.Number
	}

	return "•••• •••• •••• " + digits[len(digits)-4:]
}
