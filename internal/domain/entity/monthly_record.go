// Package entity defines the core business entities for the domain layer.
package entity

import "github.com/shopspring/decimal"

// MonthlyRecord holds the running numeric totals for one calendar month.
// This is the canonical shape; legacy array-shaped records are resolved to it
// at load time by the persistence layer.
type MonthlyRecord struct {
	Income   decimal.Decimal
	Expenses decimal.Decimal
	Savings  decimal.Decimal
}

// NewMonthlyRecord returns a record with zeroed totals.
func NewMonthlyRecord() *MonthlyRecord {
	return &MonthlyRecord{
		Income:   decimal.Zero,
		Expenses: decimal.Zero,
		Savings:  decimal.Zero,
	}
}

// AddIncome increments the month's income total.
func (r *MonthlyRecord) AddIncome(amount decimal.Decimal) {
	r.Income = r.Income.Add(amount)
}

// AddExpenses increments the month's expense total.
func (r *MonthlyRecord) AddExpenses(amount decimal.Decimal) {
	r.Expenses = r.Expenses.Add(amount)
}

// AddSavings increments the month's savings total.
func (r *MonthlyRecord) AddSavings(amount decimal.Decimal) {
	r.Savings = r.Savings.Add(amount)
}

// SubIncome decrements the month's income total, flooring at zero.
func (r *MonthlyRecord) SubIncome(amount decimal.Decimal) {
	r.Income = subFloorZero(r.Income, amount)
}

// SubExpenses decrements the month's expense total, flooring at zero.
func (r *MonthlyRecord) SubExpenses(amount decimal.Decimal) {
	r.Expenses = subFloorZero(r.Expenses, amount)
}

// AdjustExpenses applies an edit delta (new amount minus old amount) to the
// month's expense total, flooring at zero. The floor keeps the displayed
// total sensible when the recorded total has drifted below the entry amounts.
func (r *MonthlyRecord) AdjustExpenses(oldAmount, newAmount decimal.Decimal) {
	r.Expenses = subFloorZero(r.Expenses.Add(newAmount), oldAmount)
}

// Clone returns an independent copy of the record.
func (r *MonthlyRecord) Clone() *MonthlyRecord {
	c := *r
	return &c
}

func subFloorZero(total, amount decimal.Decimal) decimal.Decimal {
	out := total.Sub(amount)
	if out.IsNegative() {
		return decimal.Zero
	}
	return out
}
