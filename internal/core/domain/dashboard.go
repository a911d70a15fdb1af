// Package domain defines the client-side domain models for moneytracker.
package domain

// Dashboard is the aggregated overview returned by GET /dashboard.
type Dashboard struct {
	TotalBalance       float64             `json:"totalBalance"`
	MonthlyIncome      float64             `json:"monthlyIncome"`
	MonthlyExpense     float64             `json:"monthlyExpense"`
	MonthlyChange      float64             `json:"monthlyChange"`
	Wallets            []Wallet            `json:"wallets"`
	RecentTransactions []Transaction       `json:"recentTransactions"`
	CategoryBreakdown  []CategoryBreakdown `json:"categoryBreakdown"`
}

// CategoryBreakdown is the share of monthly expenses of one category.
type CategoryBreakdown struct {
	CategoryID    string  `json:"categoryId"`
	CategoryName  string  `json:"categoryName"`
	CategoryColor string  `json:"categoryColor,omitempty" table:"wide"`
	Amount        float64 `json:"amount"`
	Percentage    float64 `json:"percentage"`
}

// NetWorthHistory is the payload of GET /dashboard/net-worth-history.
type NetWorthHistory struct {
	History             []NetWorthPoint `json:"history"`
	CurrentNetWorth     float64         `json:"currentNetWorth"`
	PeriodChange        float64         `json:"periodChange"`
	PeriodChangePercent float64         `json:"periodChangePercent"`
}

// NetWorthPoint is one sample of the net worth series.
type NetWorthPoint struct {
	Date  string  `json:"date"`
	Value float64 `json:"value"`
	Label string  `json:"label,omitempty"`
}
