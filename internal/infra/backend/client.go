package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/RoyceAzure/lab/santoral/internal/apperr"
	"github.com/RoyceAzure/lab/santoral/internal/constants"
	"github.com/RoyceAzure/lab/santoral/internal/util"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

const maxResponseBody = 4 << 20

// Client talks to the storefront REST backend.
// One Client per browser session: its cookie jar carries the backend session.
type Client struct {
	baseURL     string
	httpClient  *http.Client
	fingerprint string
	logger      *zerolog.Logger
}

type Option func(*Client)

func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithFingerprint sets the fingerprint used when the request context has none.
func WithFingerprint(fp string) Option {
	return func(c *Client) {
		c.fingerprint = fp
	}
}

func WithLogger(logger *zerolog.Logger) Option {
	return func(c *Client) {
		if logger != nil {
			c.logger = logger
		}
	}
}

func NewClient(baseURL string, opts ...Option) (*Client, error) {
	if _, err := url.ParseRequestURI(baseURL); err != nil {
		return nil, err
	}
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, err
	}
	nop := zerolog.Nop()
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Jar:     jar,
			Timeout: 15 * time.Second,
		},
		logger: &nop,
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.httpClient.Jar == nil {
		c.httpClient.Jar = jar
	}
	return c, nil
}

type errorBody struct {
	Message string `json:"message"`
}

func (c *Client) resolve(path string, query url.Values) string {
	u := c.baseURL + path
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// do sends one JSON request. Every failure comes back as *apperr.DomainError.
func (c *Client) do(ctx context.Context, op apperr.Op, method, path string, query url.Values, body any, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return apperr.Validation(op, apperr.CodeValidation, apperr.FallbackMessage(op))
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.resolve(path, query), reader)
	if err != nil {
		return apperr.Network(op, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set(constants.FingerprintHeader, c.fingerprintFor(ctx))
	req.Header.Set(constants.RequestIDHeader, requestIDFor(ctx))

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error().Err(err).
			Str("op", string(op)).
			Str("method", method).
			Str("path", path).
			Msg("backend unreachable")
		return apperr.Network(op, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return apperr.Network(op, err)
	}

	c.logger.Debug().
		Str("op", string(op)).
		Str("method", method).
		Str("path", path).
		Int("status", resp.StatusCode).
		Dur("latency", time.Since(start)).
		Msg("backend call")

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var eb errorBody
		_ = json.Unmarshal(data, &eb)
		de := apperr.FromResponse(op, resp.StatusCode, eb.Message)
		c.logger.Warn().
			Str("op", string(op)).
			Int("status", resp.StatusCode).
			Str("kind", de.Kind.String()).
			Msg(de.Message)
		return de
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return apperr.Server(op, resp.StatusCode, err)
	}
	return nil
}

func (c *Client) fingerprintFor(ctx context.Context) string {
	if fp := util.GetFingerprint(ctx); fp != "" {
		return fp
	}
	return c.fingerprint
}

func requestIDFor(ctx context.Context) string {
	if id := util.GetRequestID(ctx); id != "" {
		return id
	}
	return uuid.New().String()
}

func pageQuery(page, limit int) url.Values {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(limit))
	return q
}
