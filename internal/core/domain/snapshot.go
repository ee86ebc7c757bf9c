package domain

import "strings"

const (
	// UnknownBreed is used when a dog image URL carries no /breeds/ segment.
	UnknownBreed = "unknown"
	// UnknownText fills required book fields the catalog left empty.
	UnknownText = "알 수 없음"
	// AnonymousAuthor is shown for quotes without an author.
	AnonymousAuthor = "익명"
)

// WeatherSnapshot fields are nil when the provider omitted them.
type WeatherSnapshot struct {
	City         string   `json:"city"`
	TemperatureC *float64 `json:"temp_c"`
	FeelsLikeC   *float64 `json:"feels_like_c"`
	HumidityPct  *int     `json:"humidity"`
	Description  *string  `json:"desc"`
	WindSpeedMps *float64 `json:"wind_mps"`
}

type DogSnapshot struct {
	ImageURL string `json:"image_url"`
	Breed    string `json:"breed"`
}

// BreedFromImageURL derives the breed from the path segment after /breeds/,
// e.g. ".../breeds/hound-afghan/x.jpg" is "hound afghan".
func BreedFromImageURL(imageURL string) string {
	_, rest, found := strings.Cut(imageURL, "/breeds/")
	if !found {
		return UnknownBreed
	}
	segment, _, _ := strings.Cut(rest, "/")
	breed := strings.TrimSpace(strings.ReplaceAll(segment, "-", " "))
	if breed == "" {
		return UnknownBreed
	}
	return breed
}

type InspirationSnapshot struct {
	ImageURL    *string `json:"image_url"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
	Quote       *string `json:"quote"`
	Author      *string `json:"author"`
}

// IsEmpty reports whether every field is absent.
func (s *InspirationSnapshot) IsEmpty() bool {
	return s == nil ||
		(s.ImageURL == nil && s.Title == nil && s.Description == nil && s.Quote == nil && s.Author == nil)
}

type BookSnapshot struct {
	Title        string  `json:"title"`
	Author       string  `json:"author"`
	CoverURL     *string `json:"cover_url"`
	ShortSummary *string `json:"short_summary"`
}
