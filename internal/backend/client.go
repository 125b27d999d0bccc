// Package backend talks to the admin REST backend. Every response is an
// envelope {code, desc, enDesc, data}; only code 200 yields data.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"pehlione.com/catalogadmin/internal/metrics"
	"pehlione.com/catalogadmin/internal/shared/apperr"
	"pehlione.com/catalogadmin/internal/tokenstore"
)

const codeOK = 200

type requestIDKey struct{}

// WithRequestID tags ctx so outgoing backend calls carry the console's
// X-Request-ID.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

func requestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

type envelope struct {
	Code   *int            `json:"code"`
	Desc   string          `json:"desc"`
	EnDesc string          `json:"enDesc"`
	Data   json.RawMessage `json:"data"`
}

type errorBody struct {
	Desc    string `json:"desc"`
	Message string `json:"message"`
}

type Client struct {
	baseURL string
	http    *http.Client
	tokens  tokenstore.Store
	log     *slog.Logger
}

type Options struct {
	BaseURL string
	Timeout time.Duration
	Tokens  tokenstore.Store
	Logger  *slog.Logger
	// HTTPClient overrides the default client (tests).
	HTTPClient *http.Client
}

func NewClient(o Options) *Client {
	hc := o.HTTPClient
	if hc == nil {
		timeout := o.Timeout
		if timeout <= 0 {
			timeout = 15 * time.Second
		}
		hc = &http.Client{Timeout: timeout}
	}
	l := o.Logger
	if l == nil {
		l = slog.Default()
	}
	return &Client{
		baseURL: strings.TrimRight(o.BaseURL, "/"),
		http:    hc,
		tokens:  o.Tokens,
		log:     l,
	}
}

// do sends one request and decodes the envelope's data into out (may be nil).
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any) error {
	start := time.Now()
	outcome := "ok"
	defer func() {
		metrics.RecordBackendCall(method, path, outcome, time.Since(start))
	}()

	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			outcome = "transport"
			return apperr.Wrap(fmt.Errorf("marshal %s: %w", path, err))
		}
		reader = bytes.NewReader(b)
	}

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		outcome = "transport"
		return apperr.Wrap(fmt.Errorf("build request %s: %w", path, err))
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if id := requestID(ctx); id != "" {
		req.Header.Set("X-Request-ID", id)
	}
	if err := c.authorize(ctx, req); err != nil {
		outcome = "transport"
		return err
	}

	resp, err := c.http.Do(req)
	if err != nil {
		outcome = "transport"
		select {
		case <-ctx.Done():
			return apperr.UpstreamErr("Request was cancelled.", ctx.Err())
		default:
			return apperr.UpstreamErr("Backend is unreachable.", err)
		}
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		outcome = "transport"
		return apperr.UpstreamErr("Backend response could not be read.", err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		outcome = "unauthorized"
		c.dropTokens(ctx)
		msg := errorMessage(raw, "Session expired, please log in again.")
		return apperr.UnauthorizedErr(msg)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		outcome = "transport"
		msg := errorMessage(raw, fmt.Sprintf("Request failed with status %d", resp.StatusCode))
		return apperr.UpstreamErr(msg, fmt.Errorf("%s %s: status %d", method, path, resp.StatusCode))
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil || env.Code == nil {
		// not an envelope, hand the body through as is
		if out == nil || len(raw) == 0 {
			return nil
		}
		if err := json.Unmarshal(raw, out); err != nil {
			outcome = "transport"
			return apperr.UpstreamErr("Backend response was malformed.", err)
		}
		return nil
	}

	if *env.Code != codeOK {
		outcome = "rejected"
		msg := env.Desc
		if msg == "" {
			msg = env.EnDesc
		}
		if msg == "" {
			msg = fmt.Sprintf("Request failed: %d", *env.Code)
		}
		c.log.LogAttrs(ctx, slog.LevelWarn, "backend_rejected",
			slog.String("method", method),
			slog.String("path", path),
			slog.Int("code", *env.Code),
			slog.String("desc", msg),
		)
		return apperr.RejectedErr(*env.Code, msg)
	}

	if out == nil || len(env.Data) == 0 || string(env.Data) == "null" {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		outcome = "transport"
		return apperr.UpstreamErr("Backend response was malformed.", err)
	}
	return nil
}

func (c *Client) authorize(ctx context.Context, req *http.Request) error {
	if c.tokens == nil {
		return nil
	}
	t, err := c.tokens.Load(ctx)
	if err != nil {
		return apperr.Wrap(fmt.Errorf("load tokens: %w", err))
	}
	if t.AccessToken != "" {
		req.Header.Set("Authorization", "Bearer "+t.AccessToken)
	}
	return nil
}

func (c *Client) dropTokens(ctx context.Context) {
	if c.tokens == nil {
		return
	}
	if err := c.tokens.Clear(ctx); err != nil {
		c.log.LogAttrs(ctx, slog.LevelError, "token_clear_failed", slog.Any("err", err))
	}
}

func errorMessage(raw []byte, fallback string) string {
	var b errorBody
	if err := json.Unmarshal(raw, &b); err == nil {
		if b.Desc != "" {
			return b.Desc
		}
		if b.Message != "" {
			return b.Message
		}
	}
	return fallback
}

func (c *Client) get(ctx context.Context, path string, q url.Values, out any) error {
	return c.do(ctx, http.MethodGet, path, q, nil, out)
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out)
}

func (c *Client) put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out)
}

// Mutations never read their result; the backend answers with a bare true or
// {success: true} depending on the endpoint.
func (c *Client) delete(ctx context.Context, path string, id int64) error {
	return c.do(ctx, http.MethodDelete, path, idQuery(id), nil, nil)
}

// IsUnauthorized reports whether err means the stored session is gone.
func IsUnauthorized(err error) bool {
	var ae *apperr.AppError
	return errors.As(err, &ae) && ae.Kind == apperr.Unauthorized
}
