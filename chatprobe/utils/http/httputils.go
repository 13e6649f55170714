// chatprobe/utils/http/httputils.go
package httputils

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strconv"
	"strings"
)

const ContentTypeJSON = "application/json"

// Doer is the part of *http.Client the helpers need.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Result is a response whose body has already been read and closed.
type Result struct {
	StatusCode int
	Status     string
	Body       []byte
}

// OK reports a 2xx status.
func (r *Result) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// NewJSONRequest builds a request with body marshalled as JSON.
// A nil body produces a request without body or Content-Type.
func NewJSONRequest(ctx context.Context, method, url string, body interface{}) (*http.Request, error) {
	var reader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		reader = bytes.NewReader(jsonBody)
	}
	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return nil, err
	}
	if body != nil {
		req.Header.Set("Content-Type", ContentTypeJSON)
	}
	req.Header.Set("Accept", ContentTypeJSON)
	return req, nil
}

// Send performs req and drains the response body.
func Send(d Doer, req *http.Request) (*Result, error) {
	r, err := d.Do(req)
	if err != nil {
		return nil, err
	}
	defer r.Body.Close()
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, err
	}
	return &Result{
		StatusCode: r.StatusCode,
		Status:     ReasonPhrase(r),
		Body:       body,
	}, nil
}

// ReasonPhrase returns the status text the server sent ("Not Found" out of
// "404 Not Found"), or the standard text when the server sent none.
func ReasonPhrase(r *http.Response) string {
	phrase := strings.TrimSpace(strings.TrimPrefix(r.Status, strconv.Itoa(r.StatusCode)))
	if phrase == "" {
		return http.StatusText(r.StatusCode)
	}
	return phrase
}
