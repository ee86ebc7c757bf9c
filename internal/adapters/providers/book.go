package providers

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/tidwall/gjson"
	"go.uber.org/zap"

	"github.com/comitanigiacomo/kanso-coach/internal/core/domain"
)

const (
	DefaultOpenLibraryBaseURL = "https://openlibrary.org"
	DefaultCoversBaseURL      = "https://covers.openlibrary.org"

	// CatalogSize is how many works of the subject the daily pick rotates through.
	CatalogSize = 30
	subjectPath = "/subjects/self_help.json"
)

var _ domain.BookProvider = (*BookClient)(nil)

// BookClient picks one self-help work from the OpenLibrary subject listing per day.
type BookClient struct {
	baseURL   string
	coversURL string
	client    *http.Client
	log       *zap.Logger
}

func NewBookClient(baseURL, coversURL string, client *http.Client, log *zap.Logger) *BookClient {
	if baseURL == "" {
		baseURL = DefaultOpenLibraryBaseURL
	}
	if coversURL == "" {
		coversURL = DefaultCoversBaseURL
	}
	return &BookClient{
		baseURL:   baseURL,
		coversURL: coversURL,
		client:    client,
		log:       log,
	}
}

// DailyBook is deterministic for a given day as long as the listing is unchanged.
func (c *BookClient) DailyBook(ctx context.Context, day time.Time) *domain.BookSnapshot {
	book, err := c.fetch(ctx, day)
	Observe(c.log, SourceOpenLibrary, err)
	return book
}

func (c *BookClient) fetch(ctx context.Context, day time.Time) (*domain.BookSnapshot, error) {
	q := url.Values{}
	q.Set("limit", strconv.Itoa(CatalogSize))

	root, err := getJSON(ctx, c.client, joinURL(c.baseURL, subjectPath), q)
	if err != nil {
		return nil, err
	}

	works := root.Get("works")
	if !works.IsArray() {
		return nil, fmt.Errorf("%w: works is not a list", ErrMalformedPayload)
	}
	list := works.Array()
	if len(list) == 0 {
		return nil, fmt.Errorf("%w: empty works list", ErrNoContent)
	}

	work := list[domain.DayOrdinal(day)%len(list)]

	book := &domain.BookSnapshot{
		Title:    textOr(work.Get("title"), domain.UnknownText),
		Author:   textOr(work.Get("authors.0.name"), domain.UnknownText),
		CoverURL: c.coverURL(work),
	}

	if key := stringField(work.Get("key")); key != nil {
		summary, err := c.summary(ctx, *key)
		Observe(c.log, SourceOpenLibraryWork, err)
		book.ShortSummary = summary
	}

	return book, nil
}

func (c *BookClient) coverURL(work gjson.Result) *string {
	if id := work.Get("cover_id"); id.Type == gjson.Number && id.Int() != 0 {
		u := fmt.Sprintf("%s/b/id/%d-L.jpg", c.coversURL, id.Int())
		return &u
	}
	if olid := stringField(work.Get("cover_edition_key")); olid != nil {
		u := fmt.Sprintf("%s/b/olid/%s-L.jpg", c.coversURL, *olid)
		return &u
	}
	return nil
}

// summary reads a work description, which OpenLibrary serves either as a plain
// string or as {"type": ..., "value": ...}.
func (c *BookClient) summary(ctx context.Context, workKey string) (*string, error) {
	root, err := getJSON(ctx, c.client, joinURL(c.baseURL, workKey+".json"), nil)
	if err != nil {
		return nil, err
	}

	desc := root.Get("description")
	if desc.IsObject() {
		desc = desc.Get("value")
	}
	text := stringField(desc)
	if text == nil {
		return nil, fmt.Errorf("%w: work %s has no description", ErrNoContent, workKey)
	}
	return text, nil
}

func textOr(r gjson.Result, fallback string) string {
	if s := stringField(r); s != nil {
		return *s
	}
	return fallback
}
