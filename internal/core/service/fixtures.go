package service

import "github.com/yndnr/moneytracker-go/internal/core/domain"

// Fixture data served by the mock sources. Every call returns fresh slices
// so each mock source owns and mutates its own copy.

const (
	mockCurrency = "PLN"
	mockUserID   = "1"
)

func intPtr(v int) *int { return &v }

func fixtureWallets() []domain.Wallet {
	return []domain.Wallet{
		{ID: "1", Name: "Personal Account", Type: domain.WalletTypeBankCash, Currency: mockCurrency, Balance: 8500.5, IsOwner: true, IsFavorite: true, FavoriteOrder: intPtr(0), DailyChange: 125.3, Icon: "bank", Description: "My main checking account", CreatedAt: "2024-01-01"},
		{ID: "2", Name: "Family Budget", Type: domain.WalletTypeBankCash, Currency: mockCurrency, Balance: 4200, IsOwner: true, IsShared: true, MemberCount: 3, IsFavorite: true, FavoriteOrder: intPtr(1), DailyChange: -45, Icon: "wallet", Description: "Shared family expenses", CreatedAt: "2024-01-15"},
		{ID: "3", Name: "Emergency Savings", Type: domain.WalletTypeBankCash, Currency: mockCurrency, Balance: 15000, IsOwner: true, Icon: "safe", CreatedAt: "2024-02-01"},
		{ID: "4", Name: "Vacation Fund", Type: domain.WalletTypeBankCash, Currency: mockCurrency, Balance: 2720, IsOwner: true, DailyChange: 50, Icon: "piggy", CreatedAt: "2024-03-01"},
		{ID: "5", Name: "Business Account", Type: domain.WalletTypeBankCash, Currency: mockCurrency, Balance: 12500, IsOwner: true, DailyChange: 320, Icon: "briefcase", CreatedAt: "2024-04-01"},
		{ID: "6", Name: "Shared Apartment", Type: domain.WalletTypeBankCash, Currency: mockCurrency, Balance: 800, IsShared: true, MemberCount: 2, DailyChange: -20, Icon: "house", CreatedAt: "2024-05-01"},
		{ID: "7", Name: "Stock Portfolio", Type: domain.WalletTypeInvestments, Currency: mockCurrency, Balance: 45000, IsOwner: true, IsFavorite: true, FavoriteOrder: intPtr(0), DailyChange: 890.5, Icon: "chart", CreatedAt: "2024-01-10"},
		{ID: "8", Name: "Retirement Fund", Type: domain.WalletTypeInvestments, Currency: mockCurrency, Balance: 82000, IsOwner: true, DailyChange: 450, Icon: "coins", CreatedAt: "2024-02-15"},
		{ID: "9", Name: "Bitcoin Wallet", Type: domain.WalletTypeCrypto, Currency: mockCurrency, Balance: 12500, IsOwner: true, IsFavorite: true, FavoriteOrder: intPtr(0), DailyChange: -320, Icon: "bitcoin", CreatedAt: "2024-03-01"},
		{ID: "10", Name: "Ethereum Wallet", Type: domain.WalletTypeCrypto, Currency: mockCurrency, Balance: 5600, IsOwner: true, DailyChange: 180, Icon: "coins", CreatedAt: "2024-03-15"},
	}
}

func fixtureCategories() []domain.Category {
	return []domain.Category{
		{ID: "1", Name: "Groceries", Type: domain.CategoryExpense, Icon: "shopping_cart", Color: "#FF9800", IsSystem: true},
		{ID: "2", Name: "Salary", Type: domain.CategoryIncome, Icon: "work", Color: "#4CAF50", IsSystem: true},
		{ID: "3", Name: "Entertainment", Type: domain.CategoryExpense, Icon: "movie", Color: "#9C27B0", IsSystem: true},
		{ID: "4", Name: "Bills & Utilities", Type: domain.CategoryExpense, Icon: "receipt", Color: "#607D8B", IsSystem: true},
		{ID: "5", Name: "Other Income", Type: domain.CategoryIncome, Icon: "attach_money", Color: "#9C27B0", IsSystem: true},
		{ID: "6", Name: "Transport", Type: domain.CategoryExpense, Icon: "directions_car", Color: "#2196F3", IsSystem: true},
		{ID: "7", Name: "Food & Dining", Type: domain.CategoryExpense, Icon: "restaurant", Color: "#FF5722", IsSystem: true},
		{ID: "8", Name: "Freelance", Type: domain.CategoryIncome, Icon: "laptop", Color: "#8BC34A", IsSystem: true},
	}
}

func fixtureTransactions() []domain.Transaction {
	tx := func(id, wallet string, typ domain.TransactionType, amount float64, desc, category, date string) domain.Transaction {
		return domain.Transaction{
			ID:              id,
			WalletID:        wallet,
			UserID:          mockUserID,
			Type:            typ,
			Amount:          amount,
			Currency:        mockCurrency,
			Description:     desc,
			CategoryID:      category,
			TransactionDate: date,
		}
	}
	return []domain.Transaction{
		tx("1", "1", domain.TransactionExpense, 125.5, "Weekly groceries at Biedronka", "1", "2024-12-13"),
		tx("2", "1", domain.TransactionIncome, 5000, "Monthly salary", "2", "2024-12-10"),
		tx("3", "2", domain.TransactionExpense, 89.99, "Netflix subscription", "3", "2024-12-09"),
		tx("4", "1", domain.TransactionExpense, 450, "Electric bill December", "4", "2024-12-08"),
		tx("5", "3", domain.TransactionIncome, 500, "Transfer to savings", "5", "2024-12-05"),
		tx("6", "1", domain.TransactionExpense, 65, "Uber rides", "6", "2024-12-04"),
		tx("7", "1", domain.TransactionExpense, 180, "Restaurant dinner", "7", "2024-12-03"),
		tx("8", "1", domain.TransactionIncome, 250, "Freelance project", "8", "2024-12-02"),
	}
}

func fixtureDashboard() *domain.Dashboard {
	recent := func(id, wallet string, typ domain.TransactionType, amount float64, desc, category, date string) domain.Transaction {
		return domain.Transaction{ID: id, WalletID: wallet, UserID: mockUserID, Type: typ, Amount: amount, Currency: mockCurrency, Description: desc, CategoryID: category, TransactionDate: date}
	}
	return &domain.Dashboard{
		TotalBalance:   15420.50,
		MonthlyIncome:  8500,
		MonthlyExpense: 4230.75,
		MonthlyChange:  4269.25,
		Wallets: []domain.Wallet{
			{ID: "1", Name: "Personal Account", Type: domain.WalletTypeBankCash, Currency: mockCurrency, Balance: 8500.50, IsOwner: true, CreatedAt: "2024-01-01"},
			{ID: "2", Name: "Family Budget", Type: domain.WalletTypeBankCash, Currency: mockCurrency, Balance: 4200, IsOwner: true, IsShared: true, MemberCount: 3, CreatedAt: "2024-01-15"},
			{ID: "3", Name: "Savings", Type: domain.WalletTypeBankCash, Currency: mockCurrency, Balance: 2720, IsOwner: true, CreatedAt: "2024-02-01"},
		},
		RecentTransactions: []domain.Transaction{
			recent("1", "1", domain.TransactionExpense, 125.50, "Groceries", "groceries", "2024-12-13"),
			recent("2", "1", domain.TransactionIncome, 5000, "Salary", "salary", "2024-12-10"),
			recent("3", "2", domain.TransactionExpense, 89.99, "Netflix subscription", "entertainment", "2024-12-09"),
			recent("4", "1", domain.TransactionExpense, 450, "Electric bill", "bills", "2024-12-08"),
			recent("5", "3", domain.TransactionIncome, 500, "Transfer to savings", "transfer", "2024-12-05"),
		},
		CategoryBreakdown: []domain.CategoryBreakdown{
			{CategoryID: "1", CategoryName: "Groceries", CategoryColor: "#FF9800", Amount: 850, Percentage: 35},
			{CategoryID: "2", CategoryName: "Bills & Utilities", CategoryColor: "#607D8B", Amount: 650, Percentage: 27},
			{CategoryID: "3", CategoryName: "Entertainment", CategoryColor: "#9C27B0", Amount: 450, Percentage: 18},
			{CategoryID: "4", CategoryName: "Transport", CategoryColor: "#2196F3", Amount: 300, Percentage: 12},
			{CategoryID: "5", CategoryName: "Other", CategoryColor: "#9E9E9E", Amount: 200, Percentage: 8},
		},
	}
}
