// Package domain defines the client-side domain models for moneytracker.
package domain

// CategoryType is the transaction direction a category applies to.
type CategoryType string

const (
	CategoryIncome  CategoryType = "INCOME"
	CategoryExpense CategoryType = "EXPENSE"
)

// Category labels transactions. System categories are shared by all users.
type Category struct {
	ID       string       `json:"id"`
	Name     string       `json:"name"`
	Type     CategoryType `json:"type"`
	Icon     string       `json:"icon,omitempty" table:"wide"`
	Color    string       `json:"color,omitempty" table:"wide"`
	IsSystem bool         `json:"isSystem"`
}

// CreateCategoryRequest is the body of POST /categories.
type CreateCategoryRequest struct {
	Name  string       `json:"name"`
	Type  CategoryType `json:"type"`
	Icon  string       `json:"icon,omitempty"`
	Color string       `json:"color,omitempty"`
}

// UpdateCategoryRequest is the body of PUT /categories/{id}. Nil fields are left unchanged.
type UpdateCategoryRequest struct {
	Name  *string       `json:"name,omitempty"`
	Type  *CategoryType `json:"type,omitempty"`
	Icon  *string       `json:"icon,omitempty"`
	Color *string       `json:"color,omitempty"`
}
