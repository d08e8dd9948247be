// Package entity defines the core business entities for the domain layer.
package entity

import (
	"math"
	"time"

	"github.com/shopspring/decimal"

	"github.com/budget-tracker/backend/internal/domain/valueobject"
)

// Contribution is a single dated payment toward a savings goal. The amount
// recorded is the applied delta after clamping at the goal target, so summing
// contributions always reconstructs CurrentAmount.
type Contribution struct {
	ID     int64
	Amount decimal.Decimal
	Date   time.Time
}

// MonthKey returns the month bucket owning this contribution.
func (c Contribution) MonthKey() valueobject.MonthKey {
	return valueobject.MonthKeyOf(c.Date)
}

// SavingsGoal represents a savings target in the ledger. Completed is always
// derived from the amount comparison, never set independently.
type SavingsGoal struct {
	ID            int64
	Name          string
	TargetAmount  decimal.Decimal
	CurrentAmount decimal.Decimal
	Deadline      time.Time
	Category      string // icon from the savings category table
	Completed     bool
	Contributions []Contribution
}

// NewSavingsGoal creates a new SavingsGoal with zero progress.
func NewSavingsGoal(name string, targetAmount decimal.Decimal, deadline time.Time, category string) *SavingsGoal {
	return &SavingsGoal{
		ID:            NewEntryID(),
		Name:          name,
		TargetAmount:  targetAmount,
		CurrentAmount: decimal.Zero,
		Deadline:      deadline,
		Category:      category,
		Completed:     false,
	}
}

// Contribute applies a payment toward the goal on the given date. The current
// amount clamps at the target; the applied (post-clamp) delta is recorded as a
// dated contribution. completedNow is true only on the false-to-true
// transition, so callers can fire the goal-completed signal exactly once.
func (g *SavingsGoal) Contribute(amount decimal.Decimal, date time.Time) (applied decimal.Decimal, completedNow bool) {
	remaining := g.TargetAmount.Sub(g.CurrentAmount)
	applied = amount
	if applied.GreaterThan(remaining) {
		applied = remaining
	}
	if applied.IsNegative() {
		applied = decimal.Zero
	}

	wasCompleted := g.Completed
	g.CurrentAmount = g.CurrentAmount.Add(applied)
	g.Completed = g.CurrentAmount.GreaterThanOrEqual(g.TargetAmount)

	if applied.IsPositive() {
		g.Contributions = append(g.Contributions, Contribution{
			ID:     NewEntryID(),
			Amount: applied,
			Date:   date,
		})
	}

	return applied, g.Completed && !wasCompleted
}

// Progress returns completion as a fraction in [0, 1].
func (g *SavingsGoal) Progress() decimal.Decimal {
	if !g.TargetAmount.IsPositive() {
		return decimal.Zero
	}
	p := g.CurrentAmount.Div(g.TargetAmount)
	if p.GreaterThan(decimal.NewFromInt(1)) {
		return decimal.NewFromInt(1)
	}
	return p
}

// DaysRemaining returns the number of days until the deadline, rounded up,
// negative once the deadline has passed.
func (g *SavingsGoal) DaysRemaining(now time.Time) int {
	return int(math.Ceil(g.Deadline.Sub(now).Hours() / 24))
}
