// Package storefront is an HTTP client for the storefront backend: products,
// orders, users and the pre-signed image upload flow.
package storefront

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"

	"github.com/imrishuroy/storefront-client/internal/validation"
)

const (
	DefaultBaseURL        = "https://boiling-wildwood-80394.herokuapp.com"
	DefaultStorageBaseURL = "https://final-project-web-dev.s3.amazonaws.com"
)

// Session is the token holder owned by the caller. CurrentToken is read right
// before every authorized dispatch; LogIn is only called by Login.
type Session interface {
	CurrentToken() string
	LogIn(token string, isAdmin bool)
}

// RequestInfo describes one completed (or failed) HTTP exchange.
type RequestInfo struct {
	Op         Operation
	Method     string
	Path       string
	StatusCode int
	Elapsed    time.Duration
	Err        error
}

// Observer is notified after every dispatch. It must not block for long.
type Observer interface {
	ObserveRequest(ctx context.Context, info RequestInfo)
}

// Config configures a Client. Zero values are replaced by defaults in New.
type Config struct {
	BaseURL        string  `validate:"required,url"`
	StorageBaseURL string  `validate:"required,url"`
	Session        Session `validate:"required"`

	HTTPClient *http.Client `validate:"-"`
	Logger     *log.Logger  `validate:"-"`
	Observer   Observer     `validate:"-"`

	// StrictUpload makes CreateProduct fail when the image PUT fails instead of
	// continuing with the derived URL.
	StrictUpload bool
	// CommitSessionOnSuccess defers the session write in Login until the
	// response status is known to be 2xx.
	CommitSessionOnSuccess bool

	Now          func() time.Time
	NewImageName func() string
}

// Client is safe for concurrent use as long as the Session is.
type Client struct {
	baseURL        string
	storageBaseURL string
	session        Session
	http           *http.Client
	logger         *log.Logger
	observer       Observer

	strictUpload           bool
	commitSessionOnSuccess bool

	nowFunc      func() time.Time
	newImageName func() string
}

// New validates cfg and returns a Client.
func New(cfg Config) (*Client, error) {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.StorageBaseURL == "" {
		cfg.StorageBaseURL = DefaultStorageBaseURL
	}
	if err := validation.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	c := &Client{
		baseURL:                strings.TrimRight(cfg.BaseURL, "/"),
		storageBaseURL:         strings.TrimRight(cfg.StorageBaseURL, "/"),
		session:                cfg.Session,
		http:                   cfg.HTTPClient,
		logger:                 cfg.Logger,
		observer:               cfg.Observer,
		strictUpload:           cfg.StrictUpload,
		commitSessionOnSuccess: cfg.CommitSessionOnSuccess,
		nowFunc:                cfg.Now,
		newImageName:           cfg.NewImageName,
	}
	if c.http == nil {
		c.http = &http.Client{}
	}
	if c.logger == nil {
		c.logger = log.Default()
	}
	if c.nowFunc == nil {
		c.nowFunc = time.Now
	}
	if c.newImageName == nil {
		c.newImageName = func() string { return ulid.Make().String() + ".png" }
	}
	return c, nil
}

// request is one logical backend call.
type request struct {
	op         Operation
	method     string
	path       string
	query      url.Values
	body       any
	authorized bool
}

// response holds a fully read backend reply.
type response struct {
	status int
	body   []byte
}

func (r *response) ok() bool { return r.status >= 200 && r.status < 300 }

// send builds and executes req. It does not interpret the status code.
func (c *Client) send(ctx context.Context, req request) (*response, error) {
	u := c.baseURL + req.path
	if len(req.query) > 0 {
		u += "?" + req.query.Encode()
	}

	var body io.Reader
	if req.body != nil {
		b, err := json.Marshal(req.body)
		if err != nil {
			return nil, fmt.Errorf("marshal body: %w", err)
		}
		body = bytes.NewReader(b)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, u, body)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	if req.body != nil || (req.authorized && req.method == http.MethodGet) {
		httpReq.Header.Set("Content-Type", "application/json")
	}
	if req.authorized {
		// read at dispatch time, never cached on the client
		httpReq.Header.Set("Authorization", "Bearer "+c.session.CurrentToken())
	}
	httpReq.Header.Set("X-Request-Id", uuid.NewString())

	return c.exchange(ctx, req.op, httpReq)
}

// exchange executes httpReq, reads the body, and reports to the observer.
func (c *Client) exchange(ctx context.Context, op Operation, httpReq *http.Request) (*response, error) {
	start := c.nowFunc()
	info := RequestInfo{Op: op, Method: httpReq.Method, Path: httpReq.URL.Path}
	defer func() {
		if c.observer != nil {
			info.Elapsed = c.nowFunc().Sub(start)
			c.observer.ObserveRequest(ctx, info)
		}
	}()

	resp, err := c.http.Do(httpReq)
	if err != nil {
		info.Err = err
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()
	info.StatusCode = resp.StatusCode

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		info.Err = err
		return nil, fmt.Errorf("read response: %w", err)
	}
	return &response{status: resp.StatusCode, body: b}, nil
}

// do executes req and decodes a 2xx reply into out when out is non-nil.
// Any failure comes back as a *RequestError for req.op.
func (c *Client) do(ctx context.Context, req request, out any) error {
	resp, err := c.send(ctx, req)
	if err != nil {
		return newRequestError(req.op, 0, err)
	}
	if !resp.ok() {
		return newRequestError(req.op, resp.status, nil)
	}
	if out != nil {
		if err := json.Unmarshal(resp.body, out); err != nil {
			return newRequestError(req.op, resp.status, fmt.Errorf("decode response: %w", err))
		}
	}
	return nil
}
