// Package domain defines the client-side domain models for moneytracker.
package domain

// TransactionType is the direction of a transaction.
type TransactionType string

const (
	TransactionIncome   TransactionType = "INCOME"
	TransactionExpense  TransactionType = "EXPENSE"
	TransactionTransfer TransactionType = "TRANSFER"
)

// Transaction is one money movement recorded against a wallet.
//
// TransactionDate is an ISO-8601 calendar date (YYYY-MM-DD).
type Transaction struct {
	ID              string          `json:"id"`
	WalletID        string          `json:"walletId"`
	Type            TransactionType `json:"type"`
	Amount          float64         `json:"amount"`
	Currency        string          `json:"currency"`
	RelatedWalletID string          `json:"relatedWalletId,omitempty" table:"wide"`
	UserID          string          `json:"userId" table:"wide"`
	DisplayName     string          `json:"displayName,omitempty" table:"wide"`
	CategoryID      string          `json:"categoryId,omitempty"`
	Description     string          `json:"description,omitempty"`
	TransactionDate string          `json:"transactionDate"`
}

// CreateTransactionRequest is the body of POST /transactions.
type CreateTransactionRequest struct {
	WalletID        string          `json:"walletId"`
	Type            TransactionType `json:"type"`
	Amount          float64         `json:"amount"`
	CategoryID      string          `json:"categoryId,omitempty"`
	Description     string          `json:"description,omitempty"`
	TargetWalletID  string          `json:"targetWalletId,omitempty"`
	TransactionDate string          `json:"transactionDate,omitempty"`
}

// UpdateTransactionRequest is the body of PUT /transactions/{id}. Nil fields are left unchanged.
type UpdateTransactionRequest struct {
	Type            *TransactionType `json:"type,omitempty"`
	Amount          *float64         `json:"amount,omitempty"`
	CategoryID      *string          `json:"categoryId,omitempty"`
	Description     *string          `json:"description,omitempty"`
	TransactionDate *string          `json:"transactionDate,omitempty"`
}
