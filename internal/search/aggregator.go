package search

import (
	"context"
	"log"
)

const (
	maxSearchQueries = 3
	defaultTopK      = 5
)

// Aggregator fans the synthesized queries out to the configured provider
// and collects the hits, bounding outbound request volume.
type Aggregator struct {
	provider Provider
	topK     int
}

func NewAggregator(provider Provider) *Aggregator {
	return &Aggregator{
		provider: provider,
		topK:     defaultTopK,
	}
}

// Run issues one search per query for the first three queries, in order.
// A failed query degrades to an empty hit list for that query only; the
// remaining queries still run. Without a provider it reports "none" and no
// results, which is not an error.
func (a *Aggregator) Run(ctx context.Context, queries []string) (string, []QueryResult) {
	if a == nil || a.provider == nil {
		return "none", []QueryResult{}
	}

	bounded := queries
	if len(bounded) > maxSearchQueries {
		bounded = bounded[:maxSearchQueries]
	}

	results := make([]QueryResult, 0, len(bounded))
	for _, query := range bounded {
		hits, err := a.provider.Search(ctx, query, a.topK)
		if err != nil {
			log.Printf("[SEARCH] Query %q failed: %v", query, err)
			hits = nil
		}
		if hits == nil {
			hits = []Hit{}
		}
		results = append(results, QueryResult{Query: query, Hits: hits})
	}

	return a.provider.Name(), results
}
