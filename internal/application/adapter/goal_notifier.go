// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/budget-tracker/backend/internal/domain/entity"
)

// GoalNotifier receives the one-time goal-completed signal fired when a
// savings goal's current amount first reaches its target.
type GoalNotifier interface {
	GoalCompleted(ctx context.Context, goal *entity.SavingsGoal)
}
