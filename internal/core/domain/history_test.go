package domain

import (
	"sort"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 9, 30, 0, 0, time.UTC)
}

func TestLedger_Upsert(t *testing.T) {
	t.Run("Should never exceed the window and stay sorted", func(t *testing.T) {
		l := NewLedger()
		start := day(2026, 3, 1)

		// Out of order on purpose.
		offsets := []int{5, 0, 12, 3, 9, 1, 11, 7, 2, 10, 4, 8, 6}
		for _, off := range offsets {
			l.Upsert(DailySummary{Date: DateKey(start.AddDate(0, 0, off)), Done: off % 6, Rate: 0, Mood: 5})

			rows := l.Rows()
			assert.LessOrEqual(t, len(rows), HistoryWindow)
			assert.True(t, sort.SliceIsSorted(rows, func(i, j int) bool { return rows[i].Date < rows[j].Date }))
		}

		rows := l.Rows()
		require.Len(t, rows, HistoryWindow)
		assert.Equal(t, "2026-03-07", rows[0].Date, "oldest kept row is the 7th most recent")
		assert.Equal(t, "2026-03-13", rows[6].Date)
	})

	t.Run("Same date twice keeps one row with the latest values", func(t *testing.T) {
		l := NewLedger()
		l.Upsert(DailySummary{Date: "2026-03-01", Done: 2, Rate: 33, Mood: 4})
		l.Upsert(DailySummary{Date: "2026-03-01", Done: 5, Rate: 83, Mood: 9})

		rows := l.Rows()
		require.Len(t, rows, 1)
		assert.Equal(t, DailySummary{Date: "2026-03-01", Done: 5, Rate: 83, Mood: 9}, rows[0])
	})

	t.Run("Repeated identical upserts are idempotent", func(t *testing.T) {
		l := NewDemoLedger(day(2026, 3, 10), 6)
		row := DailySummary{Date: "2026-03-10", Done: 3, Rate: 50, Mood: 6}

		for i := 0; i < 20; i++ {
			l.Upsert(row)
		}

		assert.Equal(t, 7, l.Len())
		assert.Equal(t, row, l.Rows()[6])
	})

	t.Run("Rows returns a copy", func(t *testing.T) {
		l := NewLedger()
		l.Upsert(DailySummary{Date: "2026-03-01", Done: 1})

		rows := l.Rows()
		rows[0].Done = 99

		assert.Equal(t, 1, l.Rows()[0].Done)
	})
}

func TestNewDemoLedger(t *testing.T) {
	today := day(2026, 10, 18)

	t.Run("Seeds the six previous days for six habits", func(t *testing.T) {
		rows := NewDemoLedger(today, 6).Rows()

		require.Len(t, rows, 6)
		assert.Equal(t, DailySummary{Date: "2026-10-12", Done: 3, Rate: 50, Mood: 5}, rows[0])
		assert.Equal(t, DailySummary{Date: "2026-10-13", Done: 4, Rate: 67, Mood: 6}, rows[1])
		assert.Equal(t, DailySummary{Date: "2026-10-15", Done: 2, Rate: 33, Mood: 4}, rows[3])
		assert.Equal(t, DailySummary{Date: "2026-10-16", Done: 5, Rate: 83, Mood: 8}, rows[4])
		assert.Equal(t, "2026-10-17", rows[5].Date)
	})

	t.Run("Rates follow the variant size", func(t *testing.T) {
		rows := NewDemoLedger(today, 5).Rows()

		require.Len(t, rows, 6)
		assert.Equal(t, 60, rows[0].Rate)
		assert.Equal(t, 100, rows[4].Rate)
	})
}
