package payscale

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"time"

	"payscales/internal/assert"
	"payscales/internal/components/telemetry"
	"payscales/lib/restyutil"

	cloudflarebp "github.com/DaRealFreak/cloudflare-bp-go"
	"github.com/cenkalti/backoff/v4"
	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/net/html/charset"
)

const (
	report_client_fetch = "client.fetch"
)

const (
	DefaultUserAgent      = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/127.0.0.0 Safari/537.36"
	DefaultAcceptLanguage = "en-US,en;q=0.9"
	DefaultRetries        = 3
	DefaultTimeout        = 20 * time.Second

	acceptHtml = "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8"
)

// Fetcher retrieves the raw text of a page.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (string, error)
}

type ClientOptions struct {
	// Retries is the total number of attempts, DefaultRetries when 0.
	Retries int
	// Timeout bounds each attempt, DefaultTimeout when 0.
	Timeout        time.Duration
	UserAgent      string
	AcceptLanguage string
	// Backoff is the wait after the given failed attempt (starting at 1),
	// DefaultBackoff when nil.
	Backoff func(attempt int) time.Duration
	// HttpDump receives every HTTP exchange when set.
	HttpDump restyutil.InstrumentOutput
	// DisableCloudflareBypass leaves the default transport untouched.
	DisableCloudflareBypass bool
}

func (o ClientOptions) withDefaults() ClientOptions {
	if o.Retries == 0 {
		o.Retries = DefaultRetries
	}
	if o.Timeout == 0 {
		o.Timeout = DefaultTimeout
	}
	if o.UserAgent == "" {
		o.UserAgent = DefaultUserAgent
	}
	if o.AcceptLanguage == "" {
		o.AcceptLanguage = DefaultAcceptLanguage
	}
	return o
}

// Client fetches pages while looking like a desktop browser, retrying
// failed attempts with a growing wait in between.
type Client struct {
	http    *resty.Client
	options ClientOptions
	tel     telemetry.API
}

var _ Fetcher = (*Client)(nil)

func NewClient(options ClientOptions, tel telemetry.API) (*Client, error) {
	assert.NotNil("telemetry", tel)

	options = options.withDefaults()
	if options.Retries < 1 {
		return nil, fmt.Errorf("retries must be at least 1, got %d", options.Retries)
	}
	if options.Timeout < 0 {
		return nil, fmt.Errorf("timeout must not be negative, got %s", options.Timeout)
	}

	tel = telemetry.NewScopedAPI("payscale_scraper", tel)

	httpClient := resty.New()
	if !options.DisableCloudflareBypass {
		httpClient.GetClient().Transport = cloudflarebp.AddCloudFlareByPass(httpClient.GetClient().Transport)
	}
	httpClient.SetHeaders(map[string]string{
		"User-Agent":      options.UserAgent,
		"Accept-Language": options.AcceptLanguage,
		"Accept":          acceptHtml,
		"Connection":      "keep-alive",
	})
	httpClient.SetTimeout(options.Timeout)

	telemetry.InstrumentResty(httpClient, tel)
	restyutil.InstrumentClient(httpClient, tracer, options.HttpDump)

	return &Client{
		http:    httpClient,
		options: options,
		tel:     tel,
	}, nil
}

// Fetch returns the body of url decoded to UTF-8. Transport failures and
// 4xx/5xx responses are retried until the configured number of attempts is
// used up, after which a *FetchExhaustedError is returned.
func (c *Client) Fetch(ctx context.Context, url string) (string, error) {
	ctx, span := tracer.Start(ctx, "Fetch")
	defer span.End()
	span.SetAttributes(attribute.String("url", url))

	attempts := 0
	var body string
	operation := func() error {
		attempts++
		res, err := c.http.R().
			SetContext(ctx).
			Get(url)
		if err != nil {
			return err
		}
		if res.IsError() {
			return &StatusError{Code: res.StatusCode(), Status: res.Status()}
		}
		body, err = decodeBody(res)
		return err
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(
			newAttemptBackOff(c.options.Backoff),
			uint64(c.options.Retries-1),
		),
		ctx,
	)
	err := backoff.RetryNotify(operation, policy, func(err error, wait time.Duration) {
		c.tel.ReportWarning(report_client_fetch, url, attempts, err, wait.String())
	})
	span.SetAttributes(attribute.Int("attempts", attempts))
	if err != nil {
		err = &FetchExhaustedError{URL: url, Attempts: attempts, Err: err}
		c.tel.ReportBroken(report_client_fetch, err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "fetch failed")
		return "", err
	}

	c.tel.ReportDebug("fetched page", url, attempts, len(body))
	return body, nil
}

// decodeBody converts the response body to UTF-8 using the charset of the
// Content-Type header, falling back to sniffing the document.
func decodeBody(res *resty.Response) (string, error) {
	reader, err := charset.NewReader(
		bytes.NewReader(res.Body()),
		res.Header().Get("Content-Type"),
	)
	if err != nil {
		return "", fmt.Errorf("decode body: %w", err)
	}
	decoded, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("decode body: %w", err)
	}
	return string(decoded), nil
}
