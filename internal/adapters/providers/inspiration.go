package providers

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"go.uber.org/zap"

	"github.com/comitanigiacomo/kanso-coach/internal/core/domain"
)

const (
	DefaultNASABaseURL      = "https://api.nasa.gov"
	DefaultZenQuotesBaseURL = "https://zenquotes.io"
)

var _ domain.InspirationProvider = (*InspirationClient)(nil)

// InspirationClient combines the NASA picture of the day, when a key is configured,
// with the ZenQuotes quote of the day.
type InspirationClient struct {
	nasaKey      string
	nasaURL      string
	zenQuotesURL string
	client       *http.Client
	log          *zap.Logger
}

func NewInspirationClient(nasaKey, nasaURL, zenQuotesURL string, client *http.Client, log *zap.Logger) *InspirationClient {
	if nasaURL == "" {
		nasaURL = DefaultNASABaseURL
	}
	if zenQuotesURL == "" {
		zenQuotesURL = DefaultZenQuotesBaseURL
	}
	return &InspirationClient{
		nasaKey:      nasaKey,
		nasaURL:      nasaURL,
		zenQuotesURL: zenQuotesURL,
		client:       client,
		log:          log,
	}
}

// DailyInspiration returns nil only when neither source contributed a field.
func (c *InspirationClient) DailyInspiration(ctx context.Context) *domain.InspirationSnapshot {
	snap := &domain.InspirationSnapshot{}

	Observe(c.log, SourceAPOD, c.fetchPicture(ctx, snap))
	Observe(c.log, SourceZenQuotes, c.fetchQuote(ctx, snap))

	if snap.IsEmpty() {
		return nil
	}
	return snap
}

func (c *InspirationClient) fetchPicture(ctx context.Context, snap *domain.InspirationSnapshot) error {
	if c.nasaKey == "" {
		return ErrMissingCredential
	}

	q := url.Values{}
	q.Set("api_key", c.nasaKey)

	root, err := getJSON(ctx, c.client, joinURL(c.nasaURL, "/planetary/apod"), q)
	if err != nil {
		return err
	}
	if media := root.Get("media_type").String(); media != "image" {
		return fmt.Errorf("%w: apod media type %q", ErrNoContent, media)
	}

	snap.ImageURL = stringField(root.Get("url"))
	snap.Title = stringField(root.Get("title"))
	snap.Description = stringField(root.Get("explanation"))
	return nil
}

func (c *InspirationClient) fetchQuote(ctx context.Context, snap *domain.InspirationSnapshot) error {
	root, err := getJSON(ctx, c.client, joinURL(c.zenQuotesURL, "/api/today"), nil)
	if err != nil {
		return err
	}
	if !root.IsArray() {
		return fmt.Errorf("%w: quote body is not an array", ErrMalformedPayload)
	}

	snap.Quote = stringField(root.Get("0.q"))
	snap.Author = stringField(root.Get("0.a"))
	if snap.Quote == nil && snap.Author == nil {
		return fmt.Errorf("%w: empty quote list", ErrNoContent)
	}
	return nil
}
