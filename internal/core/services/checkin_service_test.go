package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/comitanigiacomo/kanso-coach/internal/core/domain"
	"github.com/comitanigiacomo/kanso-coach/internal/core/services"
)

func TestCheckinService_Checkin(t *testing.T) {
	ctx := context.Background()
	start := time.Date(2026, 10, 18, 10, 0, 0, 0, time.UTC)

	t.Run("Success: Seeds demo history and upserts today", func(t *testing.T) {
		clock := newTestClock(start)
		svc := services.NewCheckinService(domain.VariantReading, clock.Now, zap.NewNop())

		res, err := svc.Checkin(ctx, services.CheckinInput{
			Habits: map[string]bool{"wake": true, "water": true, "reading": true},
			Mood:   7,
		})
		require.NoError(t, err)

		assert.Equal(t, "2026-10-18", res.Date)
		assert.Equal(t, 3, res.Done)
		assert.Equal(t, 6, res.Total)
		assert.Equal(t, 50, res.Rate)
		assert.Equal(t, 7, res.Mood)

		require.Len(t, res.History, 7)
		assert.Equal(t, "2026-10-12", res.History[0].Date)
		assert.Equal(t, domain.DailySummary{Date: "2026-10-18", Done: 3, Rate: 50, Mood: 7}, res.History[6])
	})

	t.Run("Success: Recompute on the same day keeps one row with latest values", func(t *testing.T) {
		clock := newTestClock(start)
		svc := services.NewCheckinService(domain.VariantClassic, clock.Now, zap.NewNop())

		_, err := svc.Checkin(ctx, services.CheckinInput{Habits: map[string]bool{"wake": true}, Mood: 3})
		require.NoError(t, err)

		clock.Advance(2 * time.Hour)
		res, err := svc.Checkin(ctx, services.CheckinInput{
			Habits: map[string]bool{"wake": true, "water": true, "study": true, "workout": true},
			Mood:   9,
		})
		require.NoError(t, err)

		require.Len(t, res.History, 7)
		today := res.History[6]
		assert.Equal(t, domain.DailySummary{Date: "2026-10-18", Done: 4, Rate: 80, Mood: 9}, today)

		count := 0
		for _, row := range svc.History() {
			if row.Date == "2026-10-18" {
				count++
			}
		}
		assert.Equal(t, 1, count)
	})

	t.Run("Success: A new day rolls the oldest row out", func(t *testing.T) {
		clock := newTestClock(start)
		svc := services.NewCheckinService(domain.VariantReading, clock.Now, zap.NewNop())

		_, err := svc.Checkin(ctx, services.CheckinInput{Mood: 5})
		require.NoError(t, err)

		clock.Advance(24 * time.Hour)
		res, err := svc.Checkin(ctx, services.CheckinInput{Mood: 6})
		require.NoError(t, err)

		require.Len(t, res.History, 7)
		assert.Equal(t, "2026-10-13", res.History[0].Date)
		assert.Equal(t, "2026-10-19", res.History[6].Date)
	})

	t.Run("Fail: Invalid mood", func(t *testing.T) {
		svc := services.NewCheckinService(domain.VariantReading, newTestClock(start).Now, zap.NewNop())

		res, err := svc.Checkin(ctx, services.CheckinInput{Mood: 0})

		assert.ErrorIs(t, err, domain.ErrInvalidMood)
		assert.Nil(t, res)
		assert.Len(t, svc.History(), 6, "ledger is untouched by invalid input")
	})

	t.Run("Fail: Unknown habit", func(t *testing.T) {
		svc := services.NewCheckinService(domain.VariantClassic, newTestClock(start).Now, zap.NewNop())

		_, err := svc.Checkin(ctx, services.CheckinInput{Habits: map[string]bool{"reading": true}, Mood: 5})

		assert.ErrorIs(t, err, domain.ErrUnknownHabit)
	})
}

func TestCheckinService_UpsertToday(t *testing.T) {
	clock := newTestClock(time.Date(2026, 10, 18, 10, 0, 0, 0, time.UTC))
	svc := services.NewCheckinService(domain.VariantReading, clock.Now, zap.NewNop())

	for i := 0; i < 5; i++ {
		svc.UpsertToday(2, 33, 4)
	}
	history := svc.UpsertToday(6, 100, 10)

	require.Len(t, history, 7)
	assert.Equal(t, domain.DailySummary{Date: "2026-10-18", Done: 6, Rate: 100, Mood: 10}, history[6])
}
