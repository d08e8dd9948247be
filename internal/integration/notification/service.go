// Package notification delivers goal-completed events to subscribers.
package notification

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/budget-tracker/backend/internal/application/adapter"
	"github.com/budget-tracker/backend/internal/domain/entity"
)

// GoalCompletedEvent carries the details of a goal reaching its target.
// Each event is tagged with a unique ID so subscribers can deduplicate.
type GoalCompletedEvent struct {
	ID           string
	GoalID       int64
	GoalName     string
	TargetAmount string
	CompletedAt  time.Time
}

// Subscriber consumes goal-completed events.
type Subscriber interface {
	Notify(ctx context.Context, event GoalCompletedEvent)
}

// SubscriberFunc adapts a function to the Subscriber interface.
type SubscriberFunc func(ctx context.Context, event GoalCompletedEvent)

// Notify calls the underlying function.
func (f SubscriberFunc) Notify(ctx context.Context, event GoalCompletedEvent) {
	f(ctx, event)
}

// Service queues goal-completed events and fans them out to subscribers
// from a background worker. Enqueueing never blocks the mutation that
// completed the goal; when the queue is full the event is dropped with a
// warning.
type Service struct {
	queue       chan GoalCompletedEvent
	subscribers []Subscriber
}

// Config holds configuration for the notification service.
type Config struct {
	QueueSize int
}

// DefaultConfig returns the default notification configuration.
func DefaultConfig() Config {
	return Config{
		QueueSize: 64,
	}
}

// NewService creates a notification service with the given subscribers.
func NewService(config Config, subscribers ...Subscriber) *Service {
	if config.QueueSize <= 0 {
		config.QueueSize = DefaultConfig().QueueSize
	}
	return &Service{
		queue:       make(chan GoalCompletedEvent, config.QueueSize),
		subscribers: subscribers,
	}
}

// Subscribe registers an additional subscriber. Must be called before Start.
func (s *Service) Subscribe(subscriber Subscriber) {
	s.subscribers = append(s.subscribers, subscriber)
}

// GoalCompleted enqueues a goal-completed event.
func (s *Service) GoalCompleted(_ context.Context, goal *entity.SavingsGoal) {
	event := GoalCompletedEvent{
		ID:           uuid.New().String(),
		GoalID:       goal.ID,
		GoalName:     goal.Name,
		TargetAmount: goal.TargetAmount.String(),
		CompletedAt:  time.Now().UTC(),
	}

	select {
	case s.queue <- event:
	default:
		slog.Warn("Notification queue full, dropping goal-completed event",
			"goal_id", event.GoalID,
			"goal_name", event.GoalName,
		)
	}
}

// Start begins the delivery loop. It blocks until the context is cancelled.
func (s *Service) Start(ctx context.Context) {
	slog.Info("Notification worker started",
		"queue_size", cap(s.queue),
		"subscribers", len(s.subscribers),
	)

	for {
		select {
		case <-ctx.Done():
			slog.Info("Notification worker shutting down")
			return
		case event := <-s.queue:
			s.deliver(ctx, event)
		}
	}
}

// deliver fans one event out to every subscriber.
func (s *Service) deliver(ctx context.Context, event GoalCompletedEvent) {
	logger := slog.With(
		"event_id", event.ID,
		"goal_id", event.GoalID,
		"goal_name", event.GoalName,
	)

	for _, subscriber := range s.subscribers {
		select {
		case <-ctx.Done():
			return
		default:
			subscriber.Notify(ctx, event)
		}
	}

	logger.Info("Goal-completed event delivered", "subscribers", len(s.subscribers))
}

// LogSubscriber writes a structured log line for each completed goal. It is
// the default subscriber when no other delivery channel is configured.
func LogSubscriber() Subscriber {
	return SubscriberFunc(func(_ context.Context, event GoalCompletedEvent) {
		slog.Info("Savings goal completed",
			"event_id", event.ID,
			"goal_id", event.GoalID,
			"goal_name", event.GoalName,
			"target_amount", event.TargetAmount,
		)
	})
}

// Ensure Service implements adapter.GoalNotifier.
var _ adapter.GoalNotifier = (*Service)(nil)
