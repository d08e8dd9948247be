// Package valueobject defines immutable value types shared across the domain layer.
package valueobject

// ExpenseCategory describes one entry of the fixed expense category table.
// The table is display metadata consumed by clients; the core only validates
// membership by name.
type ExpenseCategory struct {
	Name  string
	Icon  string
	Color string
}

// expenseCategories is the fixed category set, in display order.
var expenseCategories = []ExpenseCategory{
	{Name: "Food", Icon: "🛒", Color: "#FF6B6B"},
	{Name: "Transport", Icon: "🚗", Color: "#4ECDC4"},
	{Name: "Rent", Icon: "🏠", Color: "#45B7D1"},
	{Name: "Phone", Icon: "📱", Color: "#96CEB4"},
	{Name: "Clothing", Icon: "👕", Color: "#FECA57"},
	{Name: "Entertainment", Icon: "🎬", Color: "#FF9FF3"},
	{Name: "Health", Icon: "💊", Color: "#54A0FF"},
	{Name: "Education", Icon: "📚", Color: "#5F27CD"},
}

// ExpenseCategories returns the full expense category table.
func ExpenseCategories() []ExpenseCategory {
	out := make([]ExpenseCategory, len(expenseCategories))
	copy(out, expenseCategories)
	return out
}

// ExpenseCategoryByName looks up an expense category by its name.
func ExpenseCategoryByName(name string) (ExpenseCategory, bool) {
	for _, c := range expenseCategories {
		if c.Name == name {
			return c, true
		}
	}
	return ExpenseCategory{}, false
}

// IsValidExpenseCategory reports whether the name belongs to the fixed set.
func IsValidExpenseCategory(name string) bool {
	_, ok := ExpenseCategoryByName(name)
	return ok
}

// SavingsCategory describes one entry of the fixed savings category table.
// Savings goals store the icon, matching the historical document shape.
type SavingsCategory struct {
	Name  string
	Icon  string
	Color string
}

var savingsCategories = []SavingsCategory{
	{Name: "Emergency", Icon: "🚨", Color: "#E74C3C"},
	{Name: "Travel", Icon: "✈️", Color: "#3498DB"},
	{Name: "Electronics", Icon: "💻", Color: "#27AE60"},
	{Name: "Vehicle", Icon: "🚗", Color: "#9B59B6"},
	{Name: "Home", Icon: "🏠", Color: "#F39C12"},
	{Name: "Education", Icon: "🎓", Color: "#E67E22"},
	{Name: "Wedding", Icon: "💍", Color: "#E91E63"},
	{Name: "General", Icon: "🎯", Color: "#34495E"},
}

// DefaultSavingsCategory is used when a goal is created without a category.
var DefaultSavingsCategory = SavingsCategory{Name: "General", Icon: "🎯", Color: "#34495E"}

// SavingsCategories returns the full savings category table.
func SavingsCategories() []SavingsCategory {
	out := make([]SavingsCategory, len(savingsCategories))
	copy(out, savingsCategories)
	return out
}

// IsValidSavingsCategoryIcon reports whether the icon belongs to the fixed set.
func IsValidSavingsCategoryIcon(icon string) bool {
	for _, c := range savingsCategories {
		if c.Icon == icon {
			return true
		}
	}
	return false
}
