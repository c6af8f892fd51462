// apps/duel-client/internal/remote/client.go
//
// HTTP client for the remote authority that owns the duel.
// Endpoints:
//   - POST /new    -> {"state": GameState}
//   - POST /guess  {"guess": "crane"} -> {"state": GameState} | non-200 {"error": "..."}
//
// Notes:
//   - The authority keeps the current game in a cookie session, so cookies
//     from every response are replayed on later requests.
//   - No retries: every failure is reported to the caller for that attempt.
//   - Timeout 0 waits for the response; a context deadline still applies.

package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/valyala/fasthttp"

	"github.com/robalobadob/wordle/apps/duel-client/internal/game"
)

// Client talks to one authority base URL.
type Client struct {
	baseURL string
	http    *fasthttp.Client
	timeout time.Duration

	mu      sync.Mutex
	cookies map[string]string
}

type Option func(*Client)

// WithTimeout bounds each request. Zero disables the bound.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) { c.timeout = d }
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(name string) Option {
	return func(c *Client) { c.http.Name = name }
}

// WithMaxConnsPerHost caps open connections to the authority.
func WithMaxConnsPerHost(n int) Option {
	return func(c *Client) { c.http.MaxConnsPerHost = n }
}

// New builds a Client for baseURL (scheme and host, optional path prefix).
func New(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &fasthttp.Client{Name: "wordle-duel", MaxConnsPerHost: 4},
		cookies: make(map[string]string),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// BaseURL returns the authority URL without a trailing slash.
func (c *Client) BaseURL() string { return c.baseURL }

type guessReq struct {
	Guess string `json:"guess"`
}

type stateRes struct {
	State *game.State `json:"state"`
}

type errorRes struct {
	Error string `json:"error"`
}

// NewGame asks the authority for a fresh snapshot.
func (c *Client) NewGame(ctx context.Context) (*game.State, error) {
	return c.post(ctx, "/new", nil)
}

// Guess submits word for the current game. The word is sent as given;
// normalization is the caller's job.
func (c *Client) Guess(ctx context.Context, word string) (*game.State, error) {
	return c.post(ctx, "/guess", guessReq{Guess: word})
}

func (c *Client) post(ctx context.Context, path string, in any) (*game.State, error) {
	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer func() {
		fasthttp.ReleaseRequest(req)
		fasthttp.ReleaseResponse(resp)
	}()

	reqID := uuid.NewString()
	req.Header.SetMethod(fasthttp.MethodPost)
	req.SetRequestURI(c.baseURL + path)
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", reqID)
	if in != nil {
		payload, err := json.Marshal(in)
		if err != nil {
			return nil, fmt.Errorf("marshal request: %w", err)
		}
		req.Header.SetContentType("application/json")
		req.SetBody(payload)
	}
	c.attachCookies(req)

	logger := log.With().Str("op", path).Str("requestId", reqID).Logger()
	start := time.Now()

	if err := c.do(ctx, req, resp); err != nil {
		logger.Warn().Err(err).Msg("authority unreachable")
		return nil, &TransportError{Op: path, Err: err}
	}
	c.storeCookies(resp)

	status := resp.StatusCode()
	logger.Debug().Int("status", status).Dur("took", time.Since(start)).Msg("authority responded")

	if status != fasthttp.StatusOK {
		var body errorRes
		_ = json.Unmarshal(resp.Body(), &body)
		return nil, &RejectedError{Op: path, Status: status, Message: strings.TrimSpace(body.Error)}
	}

	var out stateRes
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return nil, &TransportError{Op: path, Err: fmt.Errorf("decode response: %w", err)}
	}
	if out.State == nil {
		return nil, &TransportError{Op: path, Err: errors.New("decode response: missing state")}
	}
	if err := out.State.Validate(); err != nil {
		return nil, &TransportError{Op: path, Err: err}
	}
	return out.State, nil
}

func (c *Client) do(ctx context.Context, req *fasthttp.Request, resp *fasthttp.Response) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	deadline, ok := ctx.Deadline()
	if c.timeout > 0 {
		if own := time.Now().Add(c.timeout); !ok || own.Before(deadline) {
			deadline, ok = own, true
		}
	}
	if ok {
		return c.http.DoDeadline(req, resp, deadline)
	}
	return c.http.Do(req, resp)
}

func (c *Client) attachCookies(req *fasthttp.Request) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for k, v := range c.cookies {
		req.Header.SetCookie(k, v)
	}
}

// storeCookies keeps the latest value of each cookie the authority sets.
// Cleared, expired or Max-Age<=0 cookies are forgotten.
func (c *Client) storeCookies(resp *fasthttp.Response) {
	c.mu.Lock()
	defer c.mu.Unlock()
	resp.Header.VisitAllCookie(func(key, value []byte) {
		name := string(key)
		if deletesCookie(value) {
			delete(c.cookies, name)
			return
		}
		ck := fasthttp.AcquireCookie()
		defer fasthttp.ReleaseCookie(ck)
		if err := ck.ParseBytes(value); err != nil {
			return
		}
		expired := !ck.Expire().IsZero() && ck.Expire().Before(time.Now())
		if len(ck.Value()) == 0 || expired {
			delete(c.cookies, name)
			return
		}
		c.cookies[name] = string(ck.Value())
	})
}

// deletesCookie reports whether a raw Set-Cookie value carries a Max-Age
// of zero, a negative one, or one that is not a number. fasthttp reads
// Max-Age as unsigned and treats 0 as unset, so these are checked here.
func deletesCookie(raw []byte) bool {
	attrs := bytes.Split(raw, []byte(";"))
	for _, attr := range attrs[1:] {
		k, v, _ := bytes.Cut(bytes.TrimSpace(attr), []byte("="))
		if !bytes.EqualFold(bytes.TrimSpace(k), []byte("max-age")) {
			continue
		}
		n, err := strconv.Atoi(string(bytes.TrimSpace(v)))
		return err != nil || n <= 0
	}
	return false
}
