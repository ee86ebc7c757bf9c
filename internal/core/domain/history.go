package domain

import (
	"sort"
	"time"
)

const HistoryWindow = 7

type DailySummary struct {
	Date string `json:"date"`
	Done int    `json:"done"`
	Rate int    `json:"rate"`
	Mood int    `json:"mood"`
}

var (
	demoDoneCounts = []int{3, 4, 4, 2, 5, 3}
	demoMoods      = []int{5, 6, 7, 4, 8, 6}
)

// Rows are unique per date, sorted ascending, at most HistoryWindow long.
type Ledger struct {
	rows []DailySummary
}

func NewLedger() *Ledger {
	return &Ledger{rows: make([]DailySummary, 0, HistoryWindow+1)}
}

// NewDemoLedger seeds the six days before today with fixed demo values.
func NewDemoLedger(today time.Time, totalHabits int) *Ledger {
	l := NewLedger()
	for i := len(demoDoneCounts); i > 0; i-- {
		idx := len(demoDoneCounts) - i
		done := demoDoneCounts[idx]
		l.Upsert(DailySummary{
			Date: DateKey(today.AddDate(0, 0, -i)),
			Done: done,
			Rate: CompletionRate(done, totalHabits),
			Mood: demoMoods[idx],
		})
	}
	return l
}

func (l *Ledger) Upsert(row DailySummary) {
	replaced := false
	for i := range l.rows {
		if l.rows[i].Date == row.Date {
			l.rows[i].Done = row.Done
			l.rows[i].Rate = row.Rate
			l.rows[i].Mood = row.Mood
			replaced = true
			break
		}
	}
	if !replaced {
		l.rows = append(l.rows, row)
	}

	sort.SliceStable(l.rows, func(i, j int) bool {
		return l.rows[i].Date < l.rows[j].Date
	})

	if len(l.rows) > HistoryWindow {
		l.rows = append(l.rows[:0:0], l.rows[len(l.rows)-HistoryWindow:]...)
	}
}

func (l *Ledger) Rows() []DailySummary {
	out := make([]DailySummary, len(l.rows))
	copy(out, l.rows)
	return out
}

func (l *Ledger) Len() int {
	return len(l.rows)
}
