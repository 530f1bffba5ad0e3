package hackerrank

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-resty/resty/v2"
	"go.uber.org/zap"

	"github.com/youruser/hrcerts/internal/apperr"
)

const (
	certificatesPath = "/community/v1/test_results/hacker_certificate"
	profilePath      = "/rest/contests/master/hackers/{username}/profile"
)

// Gateway is the upstream data source for certificates, profiles and images.
type Gateway interface {
	FetchCertificates(ctx context.Context, username string) ([]Certificate, error)
	FetchProfile(ctx context.Context, username string) (*Profile, error)
	FetchRawImage(ctx context.Context, url string) ([]byte, error)
}

type Client struct {
	http   *resty.Client
	logger *zap.Logger
}

func NewClient(baseURL string, timeout time.Duration, userAgent string, logger *zap.Logger) *Client {
	rc := resty.New().
		SetBaseURL(strings.TrimRight(baseURL, "/")).
		SetTimeout(timeout).
		SetHeader("User-Agent", userAgent)

	return &Client{http: rc, logger: logger}
}

func (c *Client) FetchCertificates(ctx context.Context, username string) ([]Certificate, error) {
	if strings.TrimSpace(username) == "" {
		return nil, apperr.InvalidArgument("username cannot be empty")
	}

	var body struct {
		Data []Certificate `json:"data"`
	}
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		ForceContentType("application/json").
		SetResult(&body).
		SetQueryParam("username", username).
		Get(certificatesPath)
	if err := c.check(resp, err, "user %q not found", username); err != nil {
		return nil, fmt.Errorf("fetch certificates for %s: %w", username, err)
	}

	c.logger.Debug("fetched certificates", zap.String("username", username), zap.Int("count", len(body.Data)))
	return body.Data, nil
}

func (c *Client) FetchProfile(ctx context.Context, username string) (*Profile, error) {
	if strings.TrimSpace(username) == "" {
		return nil, apperr.InvalidArgument("username cannot be empty")
	}

	var body struct {
		Model Profile `json:"model"`
	}
	resp, err := c.http.R().
		SetContext(ctx).
		SetHeader("Accept", "application/json").
		ForceContentType("application/json").
		SetResult(&body).
		SetPathParam("username", username).
		Get(profilePath)
	if err := c.check(resp, err, "user %q not found", username); err != nil {
		return nil, fmt.Errorf("fetch profile for %s: %w", username, err)
	}
	return &body.Model, nil
}

// FetchRawImage downloads an absolute image URL and returns the bytes untouched.
func (c *Client) FetchRawImage(ctx context.Context, url string) ([]byte, error) {
	if url == "" {
		return nil, apperr.InvalidArgument("image url cannot be empty")
	}

	resp, err := c.http.R().
		SetContext(ctx).
		Get(url)
	if err != nil {
		return nil, apperr.UpstreamUnavailable(err, "fetch image %s", url)
	}
	if !resp.IsSuccess() {
		return nil, apperr.UpstreamUnavailable(statusError(resp), "fetch image %s", url)
	}
	return resp.Body(), nil
}

// check maps transport and decode failures and non-2xx statuses to apperr
// kinds. A 404 becomes NotFound with the given message.
func (c *Client) check(resp *resty.Response, err error, notFound string, args ...any) error {
	if err != nil {
		c.logger.Warn("upstream request failed", zap.Error(err))
		return apperr.UpstreamUnavailable(err, "upstream request failed")
	}
	if resp.StatusCode() == http.StatusNotFound {
		return apperr.NotFound(notFound, args...)
	}
	if !resp.IsSuccess() {
		c.logger.Warn("upstream returned error status",
			zap.Int("status", resp.StatusCode()),
			zap.String("url", resp.Request.URL))
		return apperr.UpstreamUnavailable(statusError(resp), "upstream request failed")
	}
	return nil
}

func statusError(resp *resty.Response) error {
	msg := truncate(strings.TrimSpace(resp.String()), maxStatusMessage)
	if msg == "" {
		return fmt.Errorf("status %d", resp.StatusCode())
	}
	return fmt.Errorf("status %d: %s", resp.StatusCode(), msg)
}

const maxStatusMessage = 200

// truncate cuts s to at most n runes.
func truncate(s string, n int) string {
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
