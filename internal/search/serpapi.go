package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const serpAPIURL = "https://serpapi.com/search.json"

type SerpAPIClient struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
}

func NewSerpAPIClient(apiKey string, timeout time.Duration) *SerpAPIClient {
	return &SerpAPIClient{
		apiKey:  apiKey,
		baseURL: serpAPIURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *SerpAPIClient) Name() string {
	return "serpapi"
}

type serpAPIResponse struct {
	OrganicResults []struct {
		Title   string `json:"title"`
		Snippet string `json:"snippet"`
		Link    string `json:"link"`
	} `json:"organic_results"`
}

func (c *SerpAPIClient) Search(ctx context.Context, query string, topK int) ([]Hit, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("api_key", c.apiKey)
	params.Set("num", strconv.Itoa(topK))

	fullURL := fmt.Sprintf("%s?%s", c.baseURL, params.Encode())

	req, err := http.NewRequestWithContext(ctx, "GET", fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search API returned status %d", resp.StatusCode)
	}

	var searchResp serpAPIResponse
	if err := json.NewDecoder(resp.Body).Decode(&searchResp); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	hits := make([]Hit, 0, len(searchResp.OrganicResults))
	for i, item := range searchResp.OrganicResults {
		if i >= topK {
			break
		}
		hits = append(hits, Hit{
			Title:   item.Title,
			Snippet: item.Snippet,
			URL:     item.Link,
		})
	}

	return hits, nil
}
