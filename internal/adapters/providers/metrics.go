package providers

import (
	"errors"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/zap"
)

const (
	SourceWeather         = "openweathermap"
	SourceDog             = "dog_ceo"
	SourceAPOD            = "nasa_apod"
	SourceZenQuotes       = "zenquotes"
	SourceOpenLibrary     = "openlibrary"
	SourceOpenLibraryWork = "openlibrary_work"
	SourceOpenAI          = "openai"
)

var fetchTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "kanso_external_fetch_total",
		Help: "Outbound calls to external providers by outcome",
	},
	[]string{"source", "outcome"},
)

// Observe counts one outbound call and logs why it produced nothing.
func Observe(log *zap.Logger, source string, err error) {
	outcome := Outcome(err)
	fetchTotal.WithLabelValues(source, outcome).Inc()

	switch {
	case err == nil:
		return
	case errors.Is(err, ErrMissingCredential):
		log.Debug("external source skipped", zap.String("source", source), zap.Error(err))
	default:
		log.Warn("external source unavailable",
			zap.String("source", source),
			zap.String("outcome", outcome),
			zap.Error(err),
		)
	}
}
