package domain

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

var (
	ErrUnknownHabit   = errors.New("unknown habit")
	ErrInvalidMood    = errors.New("invalid mood (must be 1-10)")
	ErrUnknownVariant = errors.New("unknown habit variant (must be classic or reading)")
)

const (
	MinMood     = 1
	MaxMood     = 10
	DefaultMood = 6
)

type HabitVariant string

const (
	VariantClassic HabitVariant = "classic"
	VariantReading HabitVariant = "reading"
)

type Habit struct {
	Key  string `json:"key"`
	Name string `json:"name"`
	Icon string `json:"icon"`
}

var classicHabits = []Habit{
	{Key: "wake", Name: "기상 미션", Icon: "🌅"},
	{Key: "water", Name: "물 마시기", Icon: "💧"},
	{Key: "study", Name: "공부/독서", Icon: "📚"},
	{Key: "workout", Name: "운동하기", Icon: "🏋️"},
	{Key: "sleep", Name: "수면", Icon: "😴"},
}

var readingHabit = Habit{Key: "reading", Name: "리딩 미션", Icon: "📖"}

func ParseHabitVariant(s string) (HabitVariant, error) {
	switch HabitVariant(strings.ToLower(strings.TrimSpace(s))) {
	case VariantClassic:
		return VariantClassic, nil
	case VariantReading, "":
		return VariantReading, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownVariant, s)
	}
}

// Habits returns the habits of the variant in display order.
func (v HabitVariant) Habits() []Habit {
	habits := make([]Habit, 0, len(classicHabits)+1)
	habits = append(habits, classicHabits...)
	if v == VariantReading {
		habits = append(habits, readingHabit)
	}
	return habits
}

func (v HabitVariant) Total() int {
	return len(v.Habits())
}

// HabitCheck is one row of a check-in: a habit and whether it was done today.
type HabitCheck struct {
	Key  string `json:"key"`
	Name string `json:"name"`
	Done bool   `json:"done"`
}

// HabitSet is ordered by display order. The order carries no meaning beyond rendering.
type HabitSet []HabitCheck

// NewHabitSet builds the variant's habit set from a completion map keyed by habit key or
// habit name. Habits missing from the map count as not done.
func (v HabitVariant) NewHabitSet(done map[string]bool) (HabitSet, error) {
	habits := v.Habits()

	known := make(map[string]string, len(habits)*2)
	for _, h := range habits {
		known[h.Key] = h.Key
		known[h.Name] = h.Key
	}

	byKey := make(map[string]bool, len(done))
	for k, val := range done {
		key, ok := known[strings.TrimSpace(k)]
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrUnknownHabit, k)
		}
		byKey[key] = byKey[key] || val
	}

	set := make(HabitSet, 0, len(habits))
	for _, h := range habits {
		set = append(set, HabitCheck{Key: h.Key, Name: h.Name, Done: byKey[h.Key]})
	}
	return set, nil
}

func (s HabitSet) DoneCount() int {
	n := 0
	for _, h := range s {
		if h.Done {
			n++
		}
	}
	return n
}

func (s HabitSet) Total() int {
	return len(s)
}

// CompletionRate returns done/total as an integer percentage.
// Ties round half to even: 1 of 8 is 12, 3 of 8 is 38.
func CompletionRate(done, total int) int {
	if total <= 0 {
		return 0
	}
	return int(math.RoundToEven(float64(done) / float64(total) * 100))
}

func ValidateMood(mood int) error {
	if mood < MinMood || mood > MaxMood {
		return ErrInvalidMood
	}
	return nil
}
