// Package domain defines the client-side domain models for moneytracker.
package domain

// WalletType classifies a wallet.
type WalletType string

const (
	WalletTypeBankCash    WalletType = "BANK_CASH"
	WalletTypeInvestments WalletType = "INVESTMENTS"
	WalletTypeCrypto      WalletType = "CRYPTO"
)

// Wallet is a container of transactions owned or shared by the user.
type Wallet struct {
	ID            string     `json:"id"`
	Name          string     `json:"name"`
	Type          WalletType `json:"type"`
	Currency      string     `json:"currency"`
	Balance       float64    `json:"balance"`
	DailyChange   float64    `json:"dailyChange" table:"wide"`
	IsShared      bool       `json:"isShared" table:"wide"`
	MemberCount   int        `json:"memberCount" table:"wide"`
	IsOwner       bool       `json:"isOwner" table:"wide"`
	Description   string     `json:"description,omitempty" table:"wide"`
	Icon          string     `json:"icon,omitempty" table:"-"`
	Color         string     `json:"color,omitempty" table:"-"`
	IsFavorite    bool       `json:"isFavorite"`
	FavoriteOrder *int       `json:"favoriteOrder,omitempty" table:"wide"`
	CreatedAt     string     `json:"createdAt,omitempty" table:"wide"`
}

// CreateWalletRequest is the body of POST /wallets.
type CreateWalletRequest struct {
	Name        string     `json:"name"`
	Type        WalletType `json:"type"`
	Currency    string     `json:"currency,omitempty"`
	Description string     `json:"description,omitempty"`
	Icon        string     `json:"icon,omitempty"`
	Color       string     `json:"color,omitempty"`
}

// UpdateWalletRequest is the body of PUT /wallets/{id}. Nil fields are left unchanged.
type UpdateWalletRequest struct {
	Name          *string     `json:"name,omitempty"`
	Type          *WalletType `json:"type,omitempty"`
	Currency      *string     `json:"currency,omitempty"`
	Description   *string     `json:"description,omitempty"`
	Icon          *string     `json:"icon,omitempty"`
	Color         *string     `json:"color,omitempty"`
	IsFavorite    *bool       `json:"isFavorite,omitempty"`
	FavoriteOrder *int        `json:"favoriteOrder,omitempty"`
}

// BatchFavoriteUpdate sets the favorite flag and order of one wallet.
type BatchFavoriteUpdate struct {
	WalletID      string `json:"walletId"`
	IsFavorite    bool   `json:"isFavorite"`
	FavoriteOrder *int   `json:"favoriteOrder,omitempty"`
}

// TransferWalletRequest is the body of POST /wallets/{id}/transfer.
type TransferWalletRequest struct {
	TargetWalletID string `json:"targetWalletId"`
}
