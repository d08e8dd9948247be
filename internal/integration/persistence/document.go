// Package persistence implements snapshot stores and the ledger repository.
package persistence

import (
	"encoding/json"
	"time"

	"github.com/shopspring/decimal"

	"github.com/budget-tracker/backend/internal/domain/entity"
	"github.com/budget-tracker/backend/internal/domain/valueobject"
)

// The stored document shape. Reads are tolerant: historical documents may
// omit monthlyRecords or savings entirely, store monthly totals as entry
// arrays instead of numbers, or carry an expense label under "source" rather
// than "description". All of that is resolved here, once, so the rest of the
// core only ever sees the canonical numeric shape. Writes always produce the
// canonical shape.

const dateLayout = "2006-01-02"

type rawDocument struct {
	Income         []rawIncome                 `json:"income"`
	Expenses       []rawExpense                `json:"expenses"`
	Savings        []rawGoal                   `json:"savings"`
	MonthlyRecords map[string]rawMonthlyRecord `json:"monthlyRecords"`
}

type rawIncome struct {
	ID        int64       `json:"id"`
	Amount    json.Number `json:"amount"`
	Source    string      `json:"source"`
	StartDate string      `json:"startDate"`
	Recurring bool        `json:"recurring"`
	Frequency string      `json:"frequency"`
}

type rawExpense struct {
	ID          int64       `json:"id"`
	Amount      json.Number `json:"amount"`
	Description string      `json:"description,omitempty"`
	Source      string      `json:"source,omitempty"` // legacy label field
	Date        string      `json:"date"`
	Category    string      `json:"category"`
}

type rawContribution struct {
	ID     int64       `json:"id"`
	Amount json.Number `json:"amount"`
	Date   string      `json:"date"`
}

type rawGoal struct {
	ID            int64             `json:"id"`
	Name          string            `json:"name"`
	TargetAmount  json.Number       `json:"targetAmount"`
	CurrentAmount json.Number       `json:"currentAmount"`
	Deadline      string            `json:"deadline"`
	Category      string            `json:"category"`
	Completed     bool              `json:"completed"`
	Contributions []rawContribution `json:"contributions,omitempty"`
}

// rawMonthlyRecord resolves the two historical shapes of a monthly record:
// numeric running totals, or arrays of the month's entries.
type rawMonthlyRecord struct {
	Income   decimal.Decimal
	Expenses decimal.Decimal
	Savings  decimal.Decimal
}

// UnmarshalJSON accepts both the numeric and the legacy array shape.
func (r *rawMonthlyRecord) UnmarshalJSON(data []byte) error {
	var shape struct {
		Income   json.RawMessage `json:"income"`
		Expenses json.RawMessage `json:"expenses"`
		Savings  json.RawMessage `json:"savings"`
	}
	if err := json.Unmarshal(data, &shape); err != nil {
		return err
	}
	r.Income = resolveMonthlyTotal(shape.Income)
	r.Expenses = resolveMonthlyTotal(shape.Expenses)
	r.Savings = resolveMonthlyTotal(shape.Savings)
	return nil
}

// MarshalJSON always writes the canonical numeric shape.
func (r rawMonthlyRecord) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]json.Number{
		"income":   json.Number(r.Income.String()),
		"expenses": json.Number(r.Expenses.String()),
		"savings":  json.Number(r.Savings.String()),
	})
}

// resolveMonthlyTotal turns one monthly-record field into a total: a plain
// number is taken as-is, a legacy entry array is summed over its amount
// fields, anything else counts as zero.
func resolveMonthlyTotal(raw json.RawMessage) decimal.Decimal {
	if len(raw) == 0 {
		return decimal.Zero
	}

	var num json.Number
	if err := json.Unmarshal(raw, &num); err == nil {
		return parseAmount(num)
	}

	var items []struct {
		Amount json.Number `json:"amount"`
	}
	if err := json.Unmarshal(raw, &items); err == nil {
		total := decimal.Zero
		for _, item := range items {
			total = total.Add(parseAmount(item.Amount))
		}
		return total
	}

	return decimal.Zero
}

// decodeDocument parses stored bytes into a canonical snapshot. Shape drift
// is repaired, never reported: missing collections become empty ones,
// derived fields are recomputed, and enum invariants are re-established.
func decodeDocument(data []byte) (*entity.Snapshot, error) {
	var doc rawDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	snapshot := entity.NewSnapshot()

	for _, raw := range doc.Income {
		recurring := raw.Recurring
		frequency := entity.ParseFrequency(raw.Frequency)
		if !recurring {
			frequency = entity.FrequencyNone
		} else if !frequency.IsRecurring() {
			recurring = false
		}
		snapshot.Income = append(snapshot.Income, &entity.IncomeEntry{
			ID:        raw.ID,
			Amount:    parseAmount(raw.Amount),
			Source:    raw.Source,
			StartDate: parseDate(raw.StartDate),
			Recurring: recurring,
			Frequency: frequency,
		})
	}

	for _, raw := range doc.Expenses {
		description := raw.Description
		if description == "" {
			description = raw.Source
		}
		if description == "" {
			description = raw.Category
		}
		snapshot.Expenses = append(snapshot.Expenses, &entity.ExpenseEntry{
			ID:          raw.ID,
			Amount:      parseAmount(raw.Amount),
			Description: description,
			Date:        parseDate(raw.Date),
			Category:    raw.Category,
		})
	}

	for _, raw := range doc.Savings {
		target := parseAmount(raw.TargetAmount)
		current := parseAmount(raw.CurrentAmount)
		if current.GreaterThan(target) {
			current = target
		}
		goal := &entity.SavingsGoal{
			ID:            raw.ID,
			Name:          raw.Name,
			TargetAmount:  target,
			CurrentAmount: current,
			Deadline:      parseDate(raw.Deadline),
			Category:      raw.Category,
			Completed:     current.GreaterThanOrEqual(target) && target.IsPositive(),
		}
		for _, c := range raw.Contributions {
			goal.Contributions = append(goal.Contributions, entity.Contribution{
				ID:     c.ID,
				Amount: parseAmount(c.Amount),
				Date:   parseDate(c.Date),
			})
		}
		snapshot.Savings = append(snapshot.Savings, goal)
	}

	for key, raw := range doc.MonthlyRecords {
		monthKey, err := valueobject.ParseMonthKey(key)
		if err != nil {
			continue
		}
		snapshot.MonthlyRecords[monthKey] = &entity.MonthlyRecord{
			Income:   raw.Income,
			Expenses: raw.Expenses,
			Savings:  raw.Savings,
		}
	}

	return snapshot, nil
}

// encodeDocument serializes a snapshot in the canonical document shape.
func encodeDocument(s *entity.Snapshot) ([]byte, error) {
	doc := rawDocument{
		Income:         []rawIncome{},
		Expenses:       []rawExpense{},
		Savings:        []rawGoal{},
		MonthlyRecords: map[string]rawMonthlyRecord{},
	}

	for _, e := range s.Income {
		frequency := e.Frequency
		if frequency == "" {
			frequency = entity.FrequencyNone
		}
		doc.Income = append(doc.Income, rawIncome{
			ID:        e.ID,
			Amount:    json.Number(e.Amount.String()),
			Source:    e.Source,
			StartDate: e.StartDate.Format(dateLayout),
			Recurring: e.Recurring,
			Frequency: string(frequency),
		})
	}

	for _, e := range s.Expenses {
		doc.Expenses = append(doc.Expenses, rawExpense{
			ID:          e.ID,
			Amount:      json.Number(e.Amount.String()),
			Description: e.Description,
			Date:        e.Date.Format(dateLayout),
			Category:    e.Category,
		})
	}

	for _, g := range s.Savings {
		raw := rawGoal{
			ID:            g.ID,
			Name:          g.Name,
			TargetAmount:  json.Number(g.TargetAmount.String()),
			CurrentAmount: json.Number(g.CurrentAmount.String()),
			Deadline:      g.Deadline.Format(dateLayout),
			Category:      g.Category,
			Completed:     g.Completed,
		}
		for _, c := range g.Contributions {
			raw.Contributions = append(raw.Contributions, rawContribution{
				ID:     c.ID,
				Amount: json.Number(c.Amount.String()),
				Date:   c.Date.Format(dateLayout),
			})
		}
		doc.Savings = append(doc.Savings, raw)
	}

	for key, rec := range s.MonthlyRecords {
		doc.MonthlyRecords[key.String()] = rawMonthlyRecord{
			Income:   rec.Income,
			Expenses: rec.Expenses,
			Savings:  rec.Savings,
		}
	}

	return json.Marshal(doc)
}

// parseAmount turns a stored number into a non-negative decimal.
func parseAmount(num json.Number) decimal.Decimal {
	if num == "" {
		return decimal.Zero
	}
	d, err := decimal.NewFromString(num.String())
	if err != nil || d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// parseDate accepts plain calendar dates and full RFC 3339 timestamps.
func parseDate(raw string) time.Time {
	if t, err := time.Parse(dateLayout, raw); err == nil {
		return t
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t.UTC().Truncate(24 * time.Hour)
	}
	return time.Time{}
}
