package providers

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/tidwall/gjson"
)

const (
	DefaultTimeout = 10 * time.Second

	maxBodyBytes = 4 << 20
)

func NewHTTPClient(timeout time.Duration) *http.Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &http.Client{Timeout: timeout}
}

// ReadJSON sends req once and returns the body of a 200 response that holds valid JSON.
func ReadJSON(client *http.Client, req *http.Request) ([]byte, error) {
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTransport, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return nil, fmt.Errorf("%w: %s %d", ErrUnexpectedStatus, req.URL.Path, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %v", ErrTransport, err)
	}
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("%w: %s is not json", ErrMalformedPayload, req.URL.Path)
	}
	return body, nil
}

func getJSON(ctx context.Context, client *http.Client, endpoint string, query url.Values) (gjson.Result, error) {
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return gjson.Result{}, fmt.Errorf("%w: %v", ErrTransport, err)
	}

	body, err := ReadJSON(client, req)
	if err != nil {
		return gjson.Result{}, err
	}
	return gjson.ParseBytes(body), nil
}

func joinURL(base, path string) string {
	return strings.TrimRight(base, "/") + path
}

func stringField(r gjson.Result) *string {
	if r.Type != gjson.String {
		return nil
	}
	s := strings.TrimSpace(r.Str)
	if s == "" {
		return nil
	}
	return &s
}

func floatField(r gjson.Result) *float64 {
	if r.Type != gjson.Number {
		return nil
	}
	v := r.Num
	return &v
}

func intField(r gjson.Result) *int {
	if r.Type != gjson.Number {
		return nil
	}
	v := int(r.Int())
	return &v
}
