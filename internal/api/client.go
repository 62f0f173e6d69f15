package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"ergg/internal/constants"

	"github.com/valyala/fasthttp"
)

// Error is a non-success answer from an upstream API, either as an HTTP
// status or as the status code inside a 200 envelope.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("API error: %d", e.StatusCode)
	}
	return fmt.Sprintf("API error: %d: %s", e.StatusCode, e.Message)
}

func IsNotFound(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

func newHTTPClient() *fasthttp.Client {
	return &fasthttp.Client{
		MaxConnsPerHost:     constants.UpstreamMaxConnsPerHost,
		ReadTimeout:         constants.ExternalAPITimeout,
		WriteTimeout:        constants.ExternalAPITimeout,
		MaxIdleConnDuration: constants.UpstreamMaxIdleDuration,
	}
}

func fetch(ctx context.Context, client *fasthttp.Client, url string, headers map[string]string) ([]byte, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(url)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("Accept", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	deadline, ok := ctx.Deadline()
	if ok {
		if err := client.DoDeadline(req, resp, deadline); err != nil {
			return nil, err
		}
	} else {
		if err := client.Do(req, resp); err != nil {
			return nil, err
		}
	}

	body, err := resp.BodyUncompressed()
	if err != nil {
		return nil, fmt.Errorf("failed to decode response body: %w", err)
	}

	if resp.StatusCode() != fasthttp.StatusOK {
		apiErr := &Error{StatusCode: resp.StatusCode()}
		var env struct {
			Message string `json:"message"`
		}
		if json.Unmarshal(body, &env) == nil {
			apiErr.Message = env.Message
		}
		return nil, apiErr
	}

	// resp is released on return
	out := make([]byte, len(body))
	copy(out, body)
	return out, nil
}

func decode[T any](body []byte) (*T, error) {
	var result T
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return &result, nil
}
