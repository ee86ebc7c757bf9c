package services

import (
	"context"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"github.com/comitanigiacomo/kanso-coach/internal/core/domain"
)

type CheckinInput struct {
	Habits map[string]bool
	Mood   int
}

type CheckinResult struct {
	Date    string                `json:"date"`
	Habits  domain.HabitSet       `json:"habits"`
	Done    int                   `json:"done"`
	Total   int                   `json:"total"`
	Rate    int                   `json:"rate"`
	Mood    int                   `json:"mood"`
	History []domain.DailySummary `json:"history"`
}

// CheckinService owns the session's history ledger.
type CheckinService struct {
	variant domain.HabitVariant
	now     Clock
	log     *zap.Logger

	mu     sync.Mutex
	ledger *domain.Ledger
}

func NewCheckinService(variant domain.HabitVariant, now Clock, log *zap.Logger) *CheckinService {
	return &CheckinService{
		variant: variant,
		now:     now,
		log:     log,
	}
}

func (s *CheckinService) Variant() domain.HabitVariant {
	return s.variant
}

// ensureLedger seeds the demo history on first use. Callers hold s.mu.
func (s *CheckinService) ensureLedger() *domain.Ledger {
	if s.ledger == nil {
		s.ledger = domain.NewDemoLedger(s.now(), s.variant.Total())
		s.log.Info("history ledger seeded", zap.Int("rows", s.ledger.Len()), zap.String("variant", string(s.variant)))
	}
	return s.ledger
}

// Checkin validates today's input, records it in the ledger and returns the summary.
// It is safe to call on every recompute: today keeps a single row.
func (s *CheckinService) Checkin(ctx context.Context, input CheckinInput) (*CheckinResult, error) {
	if err := domain.ValidateMood(input.Mood); err != nil {
		return nil, fmt.Errorf("checkin: %w", err)
	}

	habits, err := s.variant.NewHabitSet(input.Habits)
	if err != nil {
		return nil, fmt.Errorf("checkin: %w", err)
	}

	done := habits.DoneCount()
	total := habits.Total()
	rate := domain.CompletionRate(done, total)
	today := domain.DateKey(s.now())

	history := s.upsert(today, done, rate, input.Mood)

	return &CheckinResult{
		Date:    today,
		Habits:  habits,
		Done:    done,
		Total:   total,
		Rate:    rate,
		Mood:    input.Mood,
		History: history,
	}, nil
}

// UpsertToday writes today's row and returns the resulting history.
func (s *CheckinService) UpsertToday(done, rate, mood int) []domain.DailySummary {
	return s.upsert(domain.DateKey(s.now()), done, rate, mood)
}

func (s *CheckinService) upsert(date string, done, rate, mood int) []domain.DailySummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	ledger := s.ensureLedger()
	ledger.Upsert(domain.DailySummary{
		Date: date,
		Done: done,
		Rate: rate,
		Mood: mood,
	})
	return ledger.Rows()
}

func (s *CheckinService) History() []domain.DailySummary {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.ensureLedger().Rows()
}
