package matcher

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"
)

// The scoring service wraps its result in this top-level field. A 2xx
// response without it counts as "no match", not a gateway failure.
const responseField = "POST Response"

const defaultTimeout = 60 * time.Second

// FilePayload is one uploaded file handed to the gateway.
type FilePayload struct {
	Filename string
	Content  []byte
}

// Client calls the external scoring service. It is stateless and safe
// for concurrent use.
type Client struct {
	endpoint   string
	httpClient *http.Client
}

// NewClient constructs a gateway client for the given endpoint.
func NewClient(endpoint string, timeout time.Duration) (*Client, error) {
	if strings.TrimSpace(endpoint) == "" {
		return nil, fmt.Errorf("MATCH_API_URL is required")
	}
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &Client{
		endpoint: endpoint,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}, nil
}

// Match scores one resume against one job description. It returns the
// decoded payload and ok=true when the response carries a recognizable
// result; ok=false when the service answered without one. Transport
// failures and non-2xx statuses return a *GatewayError. The client
// never retries; retry policy belongs to the caller.
func (c *Client) Match(ctx context.Context, resume, jobDescription FilePayload) (any, bool, error) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	fw, err := writer.CreateFormFile("resumes", resume.Filename)
	if err != nil {
		return nil, false, fmt.Errorf("build multipart: %w", err)
	}
	if _, err := fw.Write(resume.Content); err != nil {
		return nil, false, fmt.Errorf("build multipart: %w", err)
	}
	fw, err = writer.CreateFormFile("job_description", jobDescription.Filename)
	if err != nil {
		return nil, false, fmt.Errorf("build multipart: %w", err)
	}
	if _, err := fw.Write(jobDescription.Content); err != nil {
		return nil, false, fmt.Errorf("build multipart: %w", err)
	}
	if err := writer.Close(); err != nil {
		return nil, false, fmt.Errorf("build multipart: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, body)
	if err != nil {
		return nil, false, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, false, &GatewayError{Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, false, &GatewayError{StatusCode: resp.StatusCode}
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, false, &GatewayError{Err: err}
	}

	var envelope map[string]json.RawMessage
	if err := json.Unmarshal(raw, &envelope); err != nil {
		return nil, false, nil
	}
	payloadRaw, ok := envelope[responseField]
	if !ok || string(payloadRaw) == "null" {
		return nil, false, nil
	}

	var payload any
	if err := json.Unmarshal(payloadRaw, &payload); err != nil {
		return nil, false, nil
	}
	return payload, true, nil
}
