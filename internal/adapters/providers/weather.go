package providers

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"github.com/comitanigiacomo/kanso-coach/internal/core/domain"
)

const DefaultWeatherBaseURL = "https://api.openweathermap.org"

var _ domain.WeatherProvider = (*WeatherClient)(nil)

// WeatherClient reads current conditions from OpenWeatherMap in metric units with
// Korean descriptions.
type WeatherClient struct {
	apiKey  string
	baseURL string
	client  *http.Client
	log     *zap.Logger
}

func NewWeatherClient(apiKey, baseURL string, client *http.Client, log *zap.Logger) *WeatherClient {
	if baseURL == "" {
		baseURL = DefaultWeatherBaseURL
	}
	return &WeatherClient{
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  client,
		log:     log,
	}
}

func (c *WeatherClient) CurrentWeather(ctx context.Context, city string) *domain.WeatherSnapshot {
	snap, err := c.fetch(ctx, city)
	Observe(c.log, SourceWeather, err)
	return snap
}

func (c *WeatherClient) fetch(ctx context.Context, city string) (*domain.WeatherSnapshot, error) {
	if c.apiKey == "" {
		return nil, ErrMissingCredential
	}

	q := url.Values{}
	q.Set("q", city)
	q.Set("appid", c.apiKey)
	q.Set("units", "metric")
	q.Set("lang", "kr")

	root, err := getJSON(ctx, c.client, joinURL(c.baseURL, "/data/2.5/weather"), q)
	if err != nil {
		return nil, err
	}
	if !root.IsObject() {
		return nil, fmt.Errorf("%w: weather body is not an object", ErrMalformedPayload)
	}

	return &domain.WeatherSnapshot{
		City:         city,
		TemperatureC: floatField(root.Get("main.temp")),
		FeelsLikeC:   floatField(root.Get("main.feels_like")),
		HumidityPct:  intField(root.Get("main.humidity")),
		Description:  stringField(root.Get("weather.0.description")),
		WindSpeedMps: floatField(root.Get("wind.speed")),
	}, nil
}
