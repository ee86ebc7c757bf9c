package domain

import (
	"context"
	"encoding/json"
	"time"
)

// Providers return nil when their source is unavailable, whatever the cause.
// They never return an error to the core.

type WeatherProvider interface {
	// CurrentWeather fetches the current conditions for a city.
	CurrentWeather(ctx context.Context, city string) *WeatherSnapshot
}

type DogProvider interface {
	// RandomDog fetches a random dog image and its breed.
	RandomDog(ctx context.Context) *DogSnapshot
}

type InspirationProvider interface {
	// DailyInspiration fetches the quote of the day, optionally with an image of the day.
	DailyInspiration(ctx context.Context) *InspirationSnapshot
}

type BookProvider interface {
	// DailyBook picks the recommended book for the given day.
	// The same catalog and day always give the same book.
	DailyBook(ctx context.Context, day time.Time) *BookSnapshot
}

type ReportGenerator interface {
	// Generate sends the prompt to the language model.
	// It returns false when no report could be produced.
	Generate(ctx context.Context, prompt ReportPrompt) (string, bool)
}

// DailyRecord is one cached value of a once-per-day source.
// A JSON null payload is a cached absence.
type DailyRecord struct {
	Date    string          `json:"date"`
	Payload json.RawMessage `json:"payload"`
}

type DailyStore interface {
	// Load returns the last record of a source, or false if none was stored.
	Load(ctx context.Context, source string) (DailyRecord, bool, error)

	// Save replaces the record of a source.
	Save(ctx context.Context, source string, record DailyRecord) error
}
