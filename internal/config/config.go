package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/comitanigiacomo/kanso-coach/internal/core/domain"
)

type Config struct {
	Port               string
	Location           *time.Location
	HabitVariant       domain.HabitVariant
	HTTPTimeout        time.Duration
	LogLevel           string
	RateLimitPerMinute int
	// DailyWarmupCron is empty when the warm-up job is disabled.
	DailyWarmupCron string

	OpenAI    OpenAIConfig
	Providers ProvidersConfig
	Redis     RedisConfig
}

type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

type ProvidersConfig struct {
	WeatherAPIKey      string
	NASAAPIKey         string
	WeatherBaseURL     string
	DogBaseURL         string
	ZenQuotesBaseURL   string
	NASABaseURL        string
	OpenLibraryBaseURL string
	CoversBaseURL      string
}

// RedisConfig is disabled when Host is empty.
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

func (r RedisConfig) Enabled() bool {
	return r.Host != ""
}

var defaults = map[string]any{
	"port":                   "8080",
	"timezone":               "Asia/Seoul",
	"habit_variant":          string(domain.VariantReading),
	"http_timeout":           "10s",
	"log_level":              "info",
	"rate_limit_per_minute":  30,
	"daily_warmup_cron":      "1 0 * * *",
	"openai_api_key":         "",
	"openai_model":           "gpt-4.1-mini",
	"openai_base_url":        "https://api.openai.com/v1",
	"openweathermap_api_key": "",
	"nasa_api_key":           "",
	"weather_base_url":       "https://api.openweathermap.org",
	"dog_base_url":           "https://dog.ceo",
	"zenquotes_base_url":     "https://zenquotes.io",
	"nasa_base_url":          "https://api.nasa.gov",
	"openlibrary_base_url":   "https://openlibrary.org",
	"covers_base_url":        "https://covers.openlibrary.org",
	"redis_host":             "",
	"redis_port":             "6379",
	"redis_password":         "",
	"redis_db":               0,
}

// Load reads .env (if present), the optional YAML file named by CONFIG_FILE and the
// process environment, in increasing order of precedence.
func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()
	v.AllowEmptyEnv(true)

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		v.SetConfigFile(path)
		if ext := strings.TrimPrefix(filepath.Ext(path), "."); ext == "" {
			v.SetConfigType("yaml")
		}
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	loc, err := time.LoadLocation(v.GetString("timezone"))
	if err != nil {
		return nil, fmt.Errorf("invalid TIMEZONE: %w", err)
	}

	variant, err := domain.ParseHabitVariant(v.GetString("habit_variant"))
	if err != nil {
		return nil, fmt.Errorf("invalid HABIT_VARIANT: %w", err)
	}

	timeout := v.GetDuration("http_timeout")
	if timeout <= 0 {
		return nil, fmt.Errorf("invalid HTTP_TIMEOUT %q", v.GetString("http_timeout"))
	}

	port := v.GetString("port")
	if port == "" {
		port = "8080"
	}

	return &Config{
		Port:               port,
		Location:           loc,
		HabitVariant:       variant,
		HTTPTimeout:        timeout,
		LogLevel:           v.GetString("log_level"),
		RateLimitPerMinute: v.GetInt("rate_limit_per_minute"),
		DailyWarmupCron:    strings.TrimSpace(v.GetString("daily_warmup_cron")),
		OpenAI: OpenAIConfig{
			APIKey:  v.GetString("openai_api_key"),
			Model:   v.GetString("openai_model"),
			BaseURL: v.GetString("openai_base_url"),
		},
		Providers: ProvidersConfig{
			WeatherAPIKey:      v.GetString("openweathermap_api_key"),
			NASAAPIKey:         v.GetString("nasa_api_key"),
			WeatherBaseURL:     v.GetString("weather_base_url"),
			DogBaseURL:         v.GetString("dog_base_url"),
			ZenQuotesBaseURL:   v.GetString("zenquotes_base_url"),
			NASABaseURL:        v.GetString("nasa_base_url"),
			OpenLibraryBaseURL: v.GetString("openlibrary_base_url"),
			CoversBaseURL:      v.GetString("covers_base_url"),
		},
		Redis: RedisConfig{
			Host:     v.GetString("redis_host"),
			Port:     v.GetString("redis_port"),
			Password: v.GetString("redis_password"),
			DB:       v.GetInt("redis_db"),
		},
	}, nil
}
