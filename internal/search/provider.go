package search

import (
	"context"
	"time"
)

const defaultTimeout = 15 * time.Second

// Hit is one normalized web-search result.
type Hit struct {
	Title   string `json:"title"`
	Snippet string `json:"snippet"`
	URL     string `json:"url"`
}

// QueryResult pairs a query with the hits its search produced, in the order
// the query was issued.
type QueryResult struct {
	Query string `json:"query"`
	Hits  []Hit  `json:"hits"`
}

// Provider is a web-search backend. Implementations translate their
// provider-specific response shape into Hits.
type Provider interface {
	Name() string
	Search(ctx context.Context, query string, topK int) ([]Hit, error)
}

// Config selects and credentials the search provider. Selection happens
// once at construction time, not per request.
type Config struct {
	SerpAPIKey   string
	BingAPIKey   string
	BingEndpoint string
	Timeout      time.Duration
}

// NewProvider returns the provider for the configured credential, preferring
// SerpAPI when both keys are set. Returns nil when neither credential is
// present; the aggregator treats that as "no provider", not an error.
func NewProvider(config Config) Provider {
	timeout := config.Timeout
	if timeout == 0 {
		timeout = defaultTimeout
	}
	if config.SerpAPIKey != "" {
		return NewSerpAPIClient(config.SerpAPIKey, timeout)
	}
	if config.BingAPIKey != "" {
		return NewBingClient(config.BingAPIKey, config.BingEndpoint, timeout)
	}
	return nil
}
