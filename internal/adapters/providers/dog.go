package providers

import (
	"context"
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"github.com/comitanigiacomo/kanso-coach/internal/core/domain"
)

const DefaultDogBaseURL = "https://dog.ceo"

var _ domain.DogProvider = (*DogClient)(nil)

type DogClient struct {
	baseURL string
	client  *http.Client
	log     *zap.Logger
}

func NewDogClient(baseURL string, client *http.Client, log *zap.Logger) *DogClient {
	if baseURL == "" {
		baseURL = DefaultDogBaseURL
	}
	return &DogClient{
		baseURL: baseURL,
		client:  client,
		log:     log,
	}
}

func (c *DogClient) RandomDog(ctx context.Context) *domain.DogSnapshot {
	snap, err := c.fetch(ctx)
	Observe(c.log, SourceDog, err)
	return snap
}

func (c *DogClient) fetch(ctx context.Context) (*domain.DogSnapshot, error) {
	root, err := getJSON(ctx, c.client, joinURL(c.baseURL, "/api/breeds/image/random"), nil)
	if err != nil {
		return nil, err
	}

	if status := root.Get("status").String(); status != "success" {
		return nil, fmt.Errorf("%w: dog status %q", ErrMalformedPayload, status)
	}
	imageURL := stringField(root.Get("message"))
	if imageURL == nil {
		return nil, fmt.Errorf("%w: dog message is not an image url", ErrMalformedPayload)
	}

	return &domain.DogSnapshot{
		ImageURL: *imageURL,
		Breed:    domain.BreedFromImageURL(*imageURL),
	}, nil
}
