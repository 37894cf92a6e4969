package inference

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

const defaultTimeout = 40 * time.Second

// Config holds the endpoint URLs and credential for the four inference
// models. An empty URL disables that endpoint; calls against it return an
// error result instead of going out on the wire.
type Config struct {
	Token        string
	EmbeddingURL string
	SceneURL     string
	OCRURL       string
	FaceURL      string
	Timeout      time.Duration
}

// Client calls remote inference endpoints with a uniform request and
// result-or-error contract. A failure against one endpoint never aborts
// calls against the others.
type Client struct {
	config     Config
	httpClient *http.Client
}

func NewClient(config Config) *Client {
	if config.Timeout == 0 {
		config.Timeout = defaultTimeout
	}
	return &Client{
		config: config,
		httpClient: &http.Client{
			Timeout: config.Timeout,
		},
	}
}

// Result is the outcome of one endpoint call. Err is set on any failure:
// missing credential or URL, non-2xx status, transport error or timeout.
type Result struct {
	Data json.RawMessage
	Err  string
}

func (r Result) Failed() bool {
	return r.Err != ""
}

// JSON renders the result for storage: the decoded response body on
// success, an {"error": ...} marker otherwise.
func (r Result) JSON() json.RawMessage {
	if r.Failed() {
		marker, _ := json.Marshal(map[string]string{"error": r.Err})
		return marker
	}
	if len(r.Data) == 0 {
		return json.RawMessage("null")
	}
	return r.Data
}

func (c *Client) Embedding(ctx context.Context, image []byte) Result {
	return c.call(ctx, c.config.EmbeddingURL, image)
}

func (c *Client) Scene(ctx context.Context, image []byte) Result {
	return c.call(ctx, c.config.SceneURL, image)
}

func (c *Client) OCR(ctx context.Context, image []byte) Result {
	return c.call(ctx, c.config.OCRURL, image)
}

func (c *Client) Face(ctx context.Context, image []byte) Result {
	return c.call(ctx, c.config.FaceURL, image)
}

func (c *Client) call(ctx context.Context, endpoint string, image []byte) Result {
	if c.config.Token == "" || endpoint == "" {
		return Result{Err: "inference token or model URL not set"}
	}

	payload := struct {
		Inputs string `json:"inputs"`
	}{
		Inputs: base64.StdEncoding.EncodeToString(image),
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return Result{Err: fmt.Sprintf("marshaling request: %v", err)}
	}

	req, err := http.NewRequestWithContext(ctx, "POST", endpoint, bytes.NewBuffer(body))
	if err != nil {
		return Result{Err: fmt.Sprintf("creating request: %v", err)}
	}

	req.Header.Set("Authorization", "Bearer "+c.config.Token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return Result{Err: fmt.Sprintf("executing request: %v", err)}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{Err: fmt.Sprintf("reading response: %v", err)}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Result{Err: fmt.Sprintf("endpoint returned status %d", resp.StatusCode)}
	}

	if !json.Valid(data) {
		return Result{Err: "endpoint returned invalid JSON"}
	}

	return Result{Data: data}
}
