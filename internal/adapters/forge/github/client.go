// Package github implements the forge.Client port against the GitHub REST
// v3 API via the official client library. Auth is an optional pass-through
// token; secondary rate limits are absorbed by a waiter transport
package github

import (
	"context"
	stderrs "errors"
	"net/http"
	"net/url"
	"strings"
	"time"

	"gitgauge/internal/adapters/forge"
	perr "gitgauge/internal/platform/errors"
	"gitgauge/internal/platform/logger"

	"github.com/gofri/go-github-ratelimit/github_ratelimit"
	gh "github.com/google/go-github/v62/github"
	"golang.org/x/oauth2"
)

const (
	defaultTimeout = 15 * time.Second

	// Listing caps keep one analysis request to a bounded number of
	// upstream calls; they mirror what the reports can usefully show
	maxRepos   = 20
	maxCommits = 10
	pageSize   = 100
)

// Options configures the Client
type Options struct {
	// Token is an optional personal access token. Empty means the
	// anonymous quota, which is very low so not recommended
	Token string

	// BaseURL overrides the API endpoint for tests and GitHub Enterprise
	BaseURL string

	// Timeout bounds each outbound request including waiter sleeps
	Timeout time.Duration
}

// Client adapts the official GitHub client to the forge port
type Client struct {
	gh  *gh.Client
	log logger.Logger
}

var _ forge.Client = (*Client)(nil)

// New builds a Client. With a token the transport chain is oauth2 auth
// over the secondary-rate-limit waiter; without one the bare waiter is
// used and requests count against the anonymous quota
func New(o Options) (*Client, error) {
	if o.Timeout <= 0 {
		o.Timeout = defaultTimeout
	}

	rateLimitWaiter, err := github_ratelimit.NewRateLimitWaiter(nil, github_ratelimit.WithSingleSleepLimit(1*time.Hour, nil))
	if err != nil {
		return nil, perr.Wrapf(err, perr.ErrorCodeUnknown, "github rate limit waiter")
	}

	httpClient := &http.Client{Transport: rateLimitWaiter, Timeout: o.Timeout}
	if o.Token != "" {
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: o.Token})
		httpClient.Transport = &oauth2.Transport{Base: rateLimitWaiter, Source: ts}
	}

	client := gh.NewClient(httpClient)
	if o.BaseURL != "" {
		// go-github requires the trailing slash
		u, err := url.Parse(strings.TrimSuffix(o.BaseURL, "/") + "/")
		if err != nil {
			return nil, perr.Wrapf(err, perr.ErrorCodeInvalidArgument, "github base url %q", o.BaseURL)
		}
		client.BaseURL = u
	}

	return &Client{gh: client, log: *logger.Named("forge.github")}, nil
}

// mapErr classifies an upstream failure into the platform taxonomy.
// Context errors pass through untouched so callers can tell a local
// cancellation from an upstream fault
func (c *Client) mapErr(err error, msg string) error {
	if err == nil {
		return nil
	}
	if stderrs.Is(err, context.Canceled) || stderrs.Is(err, context.DeadlineExceeded) {
		return err
	}

	var rle *gh.RateLimitError
	var arle *gh.AbuseRateLimitError
	if stderrs.As(err, &rle) || stderrs.As(err, &arle) {
		return perr.Wrap(err, perr.ErrorCodeTooManyRequests,
			"platform API rate limit exceeded, provide an API token or retry later")
	}

	var ghe *gh.ErrorResponse
	if stderrs.As(err, &ghe) && ghe.Response != nil {
		if ghe.Response.StatusCode == http.StatusNotFound {
			return perr.FromUpstream(err, http.StatusNotFound, "user or repository not found")
		}
		return perr.FromUpstream(err, ghe.Response.StatusCode, msg)
	}

	// No structured response at all, so the transport itself failed
	return perr.Wrap(err, perr.ErrorCodeUnavailable, msg)
}

// statusOf extracts the upstream HTTP status from a go-github error, 0 when absent
func statusOf(err error) int {
	var ghe *gh.ErrorResponse
	if stderrs.As(err, &ghe) && ghe.Response != nil {
		return ghe.Response.StatusCode
	}
	return 0
}
