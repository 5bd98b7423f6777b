// api/http_client.go
package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/ioutil"
	"net/http"
	"time"
)

// ErrServiceUnavailable means an external capability was asked for before
// it was initialized (no client, no credential).
var ErrServiceUnavailable = errors.New("external service is not available")

// UpstreamError carries a remote 4xx/5xx plus the upstream message when the
// provider sent one.
type UpstreamError struct {
	StatusCode int
	Status     string
	Message    string
}

func (e *UpstreamError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("upstream error: %s: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("upstream error: unexpected status code: %s", e.Status)
}

// upstreamErrorBody matches the Google API error envelope.
type upstreamErrorBody struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

// HTTPClient struct to hold base URL and HTTP client configuration
type HTTPClient struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewHTTPClient creates a new instance of HTTPClient with default settings
func NewHTTPClient(baseURL string) *HTTPClient {
	return &HTTPClient{
		BaseURL: baseURL,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second, // Set a timeout for requests
		},
	}
}

// Request makes an HTTP request to the API and decodes the response. A
// non-2xx status becomes an *UpstreamError, surfacing the provider's error
// message when the body carries one.
func (c *HTTPClient) Request(method, endpoint string, headers map[string]string, body interface{}, response interface{}) error {
	var requestBody []byte
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return err
		}
		requestBody = jsonBody
	}

	url := c.BaseURL + endpoint
	req, err := http.NewRequest(method, url, bytes.NewBuffer(requestBody))
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	res, err := c.HTTPClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	resBody, err := ioutil.ReadAll(res.Body)
	if err != nil {
		return err
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		upstream := &UpstreamError{StatusCode: res.StatusCode, Status: res.Status}
		var parsed upstreamErrorBody
		if err := json.Unmarshal(resBody, &parsed); err == nil {
			upstream.Message = parsed.Error.Message
		}
		return upstream
	}

	if response != nil {
		return json.Unmarshal(resBody, response)
	}

	return nil
}
