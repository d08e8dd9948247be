// Package dashboard contains dashboard-related use cases and the pure
// aggregation functions they are built on.
package dashboard

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/budget-tracker/backend/internal/domain/entity"
	"github.com/budget-tracker/backend/internal/domain/valueobject"
)

// The ledger carries two aggregation strategies on purpose. Income and
// expenses keep incrementally-maintained month buckets; savings totals are
// recomputed from each goal's current amount because goals never expire
// monthly. Both paths are kept explicit here rather than forced into one
// model.

// TotalIncome sums all income entry amounts (all-time, not month-scoped).
func TotalIncome(s *entity.Snapshot) decimal.Decimal {
	total := decimal.Zero
	for _, e := range s.Income {
		total = total.Add(e.Amount)
	}
	return total
}

// TotalExpenses sums all expense entry amounts (all-time, not month-scoped).
func TotalExpenses(s *entity.Snapshot) decimal.Decimal {
	total := decimal.Zero
	for _, e := range s.Expenses {
		total = total.Add(e.Amount)
	}
	return total
}

// TotalSavings sums every goal's current amount.
func TotalSavings(s *entity.Snapshot) decimal.Decimal {
	total := decimal.Zero
	for _, g := range s.Savings {
		total = total.Add(g.CurrentAmount)
	}
	return total
}

// RemainingBalance is total income minus total expenses minus total savings.
func RemainingBalance(s *entity.Snapshot) decimal.Decimal {
	return TotalIncome(s).Sub(TotalExpenses(s)).Sub(TotalSavings(s))
}

// IncomeByFrequency sums income entries recurring at the given frequency.
// Non-recurring entries belong to no bucket.
func IncomeByFrequency(s *entity.Snapshot, freq entity.Frequency) decimal.Decimal {
	total := decimal.Zero
	if !freq.IsRecurring() {
		return total
	}
	for _, e := range s.Income {
		if e.Frequency == freq {
			total = total.Add(e.Amount)
		}
	}
	return total
}

// MonthSummary returns the aggregate totals for one month. A stored monthly
// record is authoritative; when the key is absent the totals are recomputed
// from the raw entries (the repair path), which is equally valid output, not
// an error. Legacy array-shaped records are already resolved to numeric form
// at load time.
func MonthSummary(s *entity.Snapshot, key valueobject.MonthKey) entity.MonthlyRecord {
	if rec, ok := s.MonthlyRecords[key]; ok && rec != nil {
		return *rec
	}
	return repairMonthSummary(s, key)
}

// repairMonthSummary recomputes one month's totals from the flat lists.
func repairMonthSummary(s *entity.Snapshot, key valueobject.MonthKey) entity.MonthlyRecord {
	rec := *entity.NewMonthlyRecord()
	for _, e := range s.Income {
		if key.Contains(e.StartDate) {
			rec.Income = rec.Income.Add(e.Amount)
		}
	}
	for _, e := range s.Expenses {
		if key.Contains(e.Date) {
			rec.Expenses = rec.Expenses.Add(e.Amount)
		}
	}
	for _, g := range s.Savings {
		for _, c := range g.Contributions {
			if key.Contains(c.Date) {
				rec.Savings = rec.Savings.Add(c.Amount)
			}
		}
	}
	return rec
}

// HistoryItemType tags an item in the combined month history.
type HistoryItemType string

const (
	HistoryItemIncome  HistoryItemType = "income"
	HistoryItemExpense HistoryItemType = "expense"
	HistoryItemSavings HistoryItemType = "savings"
)

// HistoryItem is one row of the combined month history.
type HistoryItem struct {
	Type     HistoryItemType
	ID       int64
	Label    string
	Category string
	Amount   decimal.Decimal
	Date     time.Time
}

// CombinedHistory merges the month's income entries, expense entries and
// savings contributions into one list sorted by date descending. Ties keep
// original list order: income before expenses before savings.
func CombinedHistory(s *entity.Snapshot, key valueobject.MonthKey) []HistoryItem {
	items := []HistoryItem{}
	for _, e := range s.Income {
		if key.Contains(e.StartDate) {
			items = append(items, HistoryItem{
				Type:   HistoryItemIncome,
				ID:     e.ID,
				Label:  e.Source,
				Amount: e.Amount,
				Date:   e.StartDate,
			})
		}
	}
	for _, e := range s.Expenses {
		if key.Contains(e.Date) {
			items = append(items, HistoryItem{
				Type:     HistoryItemExpense,
				ID:       e.ID,
				Label:    e.Description,
				Category: e.Category,
				Amount:   e.Amount,
				Date:     e.Date,
			})
		}
	}
	for _, g := range s.Savings {
		for _, c := range g.Contributions {
			if key.Contains(c.Date) {
				items = append(items, HistoryItem{
					Type:     HistoryItemSavings,
					ID:       c.ID,
					Label:    g.Name,
					Category: g.Category,
					Amount:   c.Amount,
					Date:     c.Date,
				})
			}
		}
	}

	sort.SliceStable(items, func(i, j int) bool {
		return items[i].Date.After(items[j].Date)
	})
	return items
}

// AvailableMonths returns every month key derivable from the monthly records
// and from the entries' own dates, most recent first.
func AvailableMonths(s *entity.Snapshot) []valueobject.MonthKey {
	seen := map[valueobject.MonthKey]struct{}{}
	for key := range s.MonthlyRecords {
		seen[key] = struct{}{}
	}
	for _, e := range s.Income {
		seen[e.MonthKey()] = struct{}{}
	}
	for _, e := range s.Expenses {
		seen[e.MonthKey()] = struct{}{}
	}
	for _, g := range s.Savings {
		for _, c := range g.Contributions {
			seen[c.MonthKey()] = struct{}{}
		}
	}

	keys := make([]valueobject.MonthKey, 0, len(seen))
	for key := range seen {
		keys = append(keys, key)
	}
	valueobject.SortMonthKeysDesc(keys)
	return keys
}
