package fakebackend

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/imrishuroy/storefront-client/internal/validation"
)

const (
	newestLimit = 10
	sessionKey  = "session"
)

func (b *Backend) registerRoutes(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/products", b.listProducts)
	r.POST("/products", b.requireAuth(true), b.createProduct)
	r.DELETE("/products/:id", b.requireAuth(true), b.deleteProduct)

	r.POST("/orders", b.requireAuth(false), b.createOrder)
	r.GET("/orders", b.requireAuth(false), b.listOrders)

	r.POST("/users", b.register)
	r.POST("/login", b.login)

	r.GET("/s3-signed-url", b.signedURL)
	r.PUT("/uploads/:name", b.storeUpload)
	r.GET("/images/:name", b.serveImage)
}

// requireAuth checks the bearer token and optionally the admin flag.
func (b *Backend) requireAuth(admin bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
		b.mu.Lock()
		s, ok := b.tokens[token]
		b.mu.Unlock()
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid_token"})
			return
		}
		if admin && !s.isAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin_required"})
			return
		}
		c.Set(sessionKey, s)
		c.Next()
	}
}

func (b *Backend) listProducts(c *gin.Context) {
	var q validation.SearchQuery
	if err := bindQueryAndValidate(c, &q, b.validate); err != nil {
		return
	}

	b.mu.Lock()
	all := append([]map[string]interface{}(nil), b.products...)
	b.mu.Unlock()

	if q.Newest {
		sort.SliceStable(all, func(i, j int) bool {
			return fmt.Sprint(all[i]["createdAt"]) > fmt.Sprint(all[j]["createdAt"])
		})
		if len(all) > newestLimit {
			all = all[:newestLimit]
		}
		c.JSON(http.StatusOK, all)
		return
	}

	out := make([]map[string]interface{}, 0, len(all))
	for _, p := range all {
		if matches(p, q) {
			out = append(out, p)
		}
	}
	c.JSON(http.StatusOK, out)
}

func matches(p map[string]interface{}, q validation.SearchQuery) bool {
	if q.Name != "" {
		name, _ := p["name"].(string)
		if !strings.Contains(strings.ToLower(name), strings.ToLower(q.Name)) {
			return false
		}
	}
	if q.Category != "" {
		if cat, _ := p["category"].(string); cat != q.Category {
			return false
		}
	}
	price, _ := p["price"].(float64)
	if q.MinRange != nil && price < *q.MinRange {
		return false
	}
	if q.MaxRange != nil && price > *q.MaxRange {
		return false
	}
	return true
}

func (b *Backend) createProduct(c *gin.Context) {
	var product map[string]interface{}
	if err := json.Unmarshal(rawBody(c), &product); err != nil || product == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request_body"})
		return
	}
	product["id"] = uuid.NewString()
	product["createdAt"] = time.Now().UTC().Format(time.RFC3339Nano)

	b.mu.Lock()
	b.products = append(b.products, product)
	b.mu.Unlock()

	c.Header("Location", fmt.Sprintf("/products/%s", product["id"]))
	c.JSON(http.StatusCreated, product)
}

func (b *Backend) deleteProduct(c *gin.Context) {
	id := c.Param("id")

	b.mu.Lock()
	defer b.mu.Unlock()
	for i, p := range b.products {
		if p["id"] == id {
			b.products = append(b.products[:i], b.products[i+1:]...)
			c.Status(http.StatusNoContent)
			return
		}
	}
	c.JSON(http.StatusNotFound, gin.H{"error": "product_not_found"})
}

func (b *Backend) createOrder(c *gin.Context) {
	var order map[string]interface{}
	if err := json.Unmarshal(rawBody(c), &order); err != nil || order == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request_body"})
		return
	}
	if _, ok := order["timestamp"].(float64); !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing_timestamp"})
		return
	}
	s := c.MustGet(sessionKey).(session)
	order["id"] = uuid.NewString()
	order["user"] = s.email

	b.mu.Lock()
	b.orders = append(b.orders, order)
	b.mu.Unlock()

	c.JSON(http.StatusCreated, order)
}

func (b *Backend) listOrders(c *gin.Context) {
	s := c.MustGet(sessionKey).(session)

	b.mu.Lock()
	defer b.mu.Unlock()
	out := make([]map[string]interface{}, 0, len(b.orders))
	for _, o := range b.orders {
		if s.isAdmin || o["user"] == s.email {
			out = append(out, o)
		}
	}
	c.JSON(http.StatusOK, out)
}

func (b *Backend) register(c *gin.Context) {
	var req validation.RegisterRequest
	if err := bindAndValidate(c, &req, b.validate); err != nil {
		return
	}
	var fields map[string]interface{}
	if err := json.Unmarshal(rawBody(c), &fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid_request_body", "msg": err.Error()})
		return
	}
	delete(fields, "password")

	b.mu.Lock()
	defer b.mu.Unlock()
	if _, exists := b.users[req.Email]; exists {
		c.JSON(http.StatusConflict, gin.H{"error": "user_exists"})
		return
	}
	b.users[req.Email] = user{password: req.Password, fields: fields}
	c.JSON(http.StatusCreated, fields)
}

func (b *Backend) login(c *gin.Context) {
	var req validation.LoginRequest
	if err := bindAndValidate(c, &req, b.validate); err != nil {
		return
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	u, ok := b.users[req.Email]
	if !ok || u.password != req.Password {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid_credentials"})
		return
	}
	token := uuid.NewString()
	b.tokens[token] = session{email: req.Email, isAdmin: u.isAdmin}
	c.JSON(http.StatusOK, gin.H{"token": token, "isAdmin": u.isAdmin})
}

func (b *Backend) signedURL(c *gin.Context) {
	var q validation.UploadURLQuery
	if err := bindQueryAndValidate(c, &q, b.validate); err != nil {
		return
	}

	if b.signer != nil {
		u, err := b.signer.SignUpload(c.Request.Context(), q.ImageName)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "sign_failed", "detail": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"url": u})
		return
	}

	scheme := "http"
	if c.Request.TLS != nil {
		scheme = "https"
	}
	c.JSON(http.StatusOK, gin.H{"url": fmt.Sprintf("%s://%s/uploads/%s", scheme, c.Request.Host, q.ImageName)})
}

func (b *Backend) storeUpload(c *gin.Context) {
	if !strings.HasPrefix(c.GetHeader("Content-Type"), "image/") {
		c.JSON(http.StatusUnsupportedMediaType, gin.H{"error": "image_content_type_required"})
		return
	}
	b.mu.Lock()
	b.uploads[c.Param("name")] = rawBody(c)
	b.mu.Unlock()
	c.Status(http.StatusOK)
}

func (b *Backend) serveImage(c *gin.Context) {
	data, ok := b.Upload(c.Param("name"))
	if !ok {
		c.Status(http.StatusNotFound)
		return
	}
	c.Data(http.StatusOK, "image/png", data)
}
