// Package practicum talks to the homework_statuses API.
package practicum

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
)

var ErrUnexpectedStatus = fmt.Errorf("endpoint is unavailable")
var ErrTrailingData = fmt.Errorf("unexpected data after JSON body")

// Client fetches homework statuses with an OAuth token.
type Client struct {
	httpClient *http.Client
	endpoint   string
	token      string
	logger     *logrus.Entry
}

func NewClient(endpoint, token string, timeout time.Duration, logger *logrus.Entry) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		endpoint:   endpoint,
		token:      token,
		logger:     logger,
	}
}

// HomeworkStatuses requests statuses changed since fromDate (unix seconds)
// and returns the decoded JSON body. Numbers are decoded as json.Number.
func (c *Client) HomeworkStatuses(ctx context.Context, fromDate int64) (any, error) {
	u, err := url.Parse(c.endpoint)
	if err != nil {
		return nil, fmt.Errorf("invalid endpoint %s: %w", c.endpoint, err)
	}
	q := u.Query()
	q.Set("from_date", strconv.FormatInt(fromDate, 10))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Authorization", "OAuth "+c.token)

	logCtx := c.logger.WithFields(logrus.Fields{"endpoint": c.endpoint, "from_date": fromDate})
	logCtx.Debug("Requesting homework statuses")

	startTime := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		logCtx.WithError(err).Error("Request to endpoint failed")
		return nil, fmt.Errorf("request to %s failed: %w", c.endpoint, err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			logCtx.WithError(closeErr).Warn("Failed to close response body")
		}
	}()

	logCtx = logCtx.WithFields(logrus.Fields{
		"status_code": resp.StatusCode,
		"duration_ms": time.Since(startTime).Milliseconds(),
	})

	if resp.StatusCode != http.StatusOK {
		logCtx.Error("Endpoint returned non-OK status")
		return nil, fmt.Errorf("%w: %s returned HTTP %d", ErrUnexpectedStatus, c.endpoint, resp.StatusCode)
	}

	dec := json.NewDecoder(resp.Body)
	dec.UseNumber()
	var body any
	if err := dec.Decode(&body); err != nil {
		logCtx.WithError(err).Error("Response body is not valid JSON")
		return nil, fmt.Errorf("decode response from %s: %w", c.endpoint, err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		logCtx.Error("Response body has data after the JSON value")
		return nil, fmt.Errorf("decode response from %s: %w", c.endpoint, ErrTrailingData)
	}

	logCtx.Debug("Homework statuses received")
	return body, nil
}
