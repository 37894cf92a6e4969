package search

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

const defaultBingEndpoint = "https://api.bing.microsoft.com"

type BingClient struct {
	apiKey     string
	endpoint   string
	httpClient *http.Client
}

func NewBingClient(apiKey, endpoint string, timeout time.Duration) *BingClient {
	if endpoint == "" {
		endpoint = defaultBingEndpoint
	}
	return &BingClient{
		apiKey:   apiKey,
		endpoint: strings.TrimSuffix(endpoint, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

func (c *BingClient) Name() string {
	return "bing"
}

type bingResponse struct {
	WebPages struct {
		Value []struct {
			Name    string `json:"name"`
			Snippet string `json:"snippet"`
			URL     string `json:"url"`
		} `json:"value"`
	} `json:"webPages"`
}

func (c *BingClient) Search(ctx context.Context, query string, topK int) ([]Hit, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("count", strconv.Itoa(topK))

	fullURL := fmt.Sprintf("%s/v7.0/search?%s", c.endpoint, params.Encode())

	req, err := http.NewRequestWithContext(ctx, "GET", fullURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Ocp-Apim-Subscription-Key", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("search API returned status %d", resp.StatusCode)
	}

	var searchResp bingResponse
	if err := json.NewDecoder(resp.Body).Decode(&searchResp); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	hits := make([]Hit, 0, len(searchResp.WebPages.Value))
	for i, item := range searchResp.WebPages.Value {
		if i >= topK {
			break
		}
		hits = append(hits, Hit{
			Title:   item.Name,
			Snippet: item.Snippet,
			URL:     item.URL,
		})
	}

	return hits, nil
}
