// Package fakebackend is an in-memory implementation of the storefront backend
// HTTP surface. It records every request and can be told to fail routes.
package fakebackend

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"sync"

	"github.com/gin-gonic/gin"
	validatorv10 "github.com/go-playground/validator/v10"

	"github.com/imrishuroy/storefront-client/internal/validation"
)

const rawBodyKey = "raw_body"

// Signer issues upload URLs for GET /s3-signed-url. Without one the backend
// hands out URLs to its own PUT /uploads/:name route.
type Signer interface {
	SignUpload(ctx context.Context, imageName string) (string, error)
}

// Recorded is one request as the backend saw it.
type Recorded struct {
	Method string
	Path   string
	Route  string
	Query  url.Values
	Header http.Header
	Body   []byte
}

type user struct {
	password string
	isAdmin  bool
	fields   map[string]interface{}
}

// Option configures a Backend.
type Option func(*Backend)

// WithSigner makes the backend issue URLs from s.
func WithSigner(s Signer) Option {
	return func(b *Backend) { b.signer = s }
}

// WithUser seeds an account.
func WithUser(email, password string, isAdmin bool) Option {
	return func(b *Backend) {
		b.users[email] = user{password: password, isAdmin: isAdmin}
	}
}

// WithToken seeds a valid bearer token, as if its owner had logged in.
func WithToken(token, email string, isAdmin bool) Option {
	return func(b *Backend) {
		b.tokens[token] = session{email: email, isAdmin: isAdmin}
	}
}

type session struct {
	email   string
	isAdmin bool
}

// Backend holds all state behind the router.
type Backend struct {
	mu       sync.Mutex
	requests []Recorded
	failures map[string]int
	users    map[string]user
	tokens   map[string]session
	products []map[string]interface{}
	orders   []map[string]interface{}
	uploads  map[string][]byte

	signer   Signer
	validate *validatorv10.Validate
	engine   *gin.Engine
}

// New builds a Backend and its routes.
func New(opts ...Option) *Backend {
	b := &Backend{
		failures: map[string]int{},
		users:    map[string]user{},
		tokens:   map[string]session{},
		uploads:  map[string][]byte{},
		validate: validation.New(),
	}
	for _, opt := range opts {
		opt(b)
	}

	r := gin.New()
	r.Use(gin.Recovery(), b.record, b.forcedFailure)
	b.registerRoutes(r)
	b.engine = r
	return b
}

// Handler returns the router.
func (b *Backend) Handler() http.Handler { return b.engine }

// Engine returns the gin router itself, for adapters that need it.
func (b *Backend) Engine() *gin.Engine { return b.engine }

// Fail makes every request to route (e.g. "POST /products", "DELETE /products/:id")
// answer status until Clear is called.
func (b *Backend) Fail(method, route string, status int) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failures[method+" "+route] = status
}

// Clear removes all forced failures.
func (b *Backend) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.failures = map[string]int{}
}

// Requests returns a copy of everything recorded so far.
func (b *Backend) Requests() []Recorded {
	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]Recorded, len(b.requests))
	copy(out, b.requests)
	return out
}

// Last returns the most recent request matching method and route.
func (b *Backend) Last(method, route string) (Recorded, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := len(b.requests) - 1; i >= 0; i-- {
		r := b.requests[i]
		if r.Method == method && r.Route == route {
			return r, true
		}
	}
	return Recorded{}, false
}

// Upload returns the bytes stored under name by PUT /uploads/:name.
func (b *Backend) Upload(name string) ([]byte, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	data, ok := b.uploads[name]
	return data, ok
}

// Products returns a snapshot of stored products.
func (b *Backend) Products() []map[string]interface{} {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]map[string]interface{}(nil), b.products...)
}

// Orders returns a snapshot of stored orders.
func (b *Backend) Orders() []map[string]interface{} {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]map[string]interface{}(nil), b.orders...)
}

// record captures the request and puts the body back for binding.
func (b *Backend) record(c *gin.Context) {
	var body []byte
	if c.Request.Body != nil {
		body, _ = io.ReadAll(c.Request.Body)
		c.Request.Body = io.NopCloser(bytes.NewReader(body))
	}
	c.Set(rawBodyKey, body)

	b.mu.Lock()
	b.requests = append(b.requests, Recorded{
		Method: c.Request.Method,
		Path:   c.Request.URL.Path,
		Route:  c.FullPath(),
		Query:  c.Request.URL.Query(),
		Header: c.Request.Header.Clone(),
		Body:   body,
	})
	b.mu.Unlock()

	c.Next()
}

func (b *Backend) forcedFailure(c *gin.Context) {
	b.mu.Lock()
	status, ok := b.failures[c.Request.Method+" "+c.FullPath()]
	b.mu.Unlock()
	if ok {
		c.AbortWithStatusJSON(status, gin.H{"error": "forced_failure"})
		return
	}
	c.Next()
}

func rawBody(c *gin.Context) []byte {
	v, _ := c.Get(rawBodyKey)
	body, _ := v.([]byte)
	return body
}
