package storefront

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/imrishuroy/storefront-client/internal/fakebackend"
	"github.com/imrishuroy/storefront-client/internal/session"
)

func TestCreateOrder_StampsTimestamp(t *testing.T) {
	now := time.Date(2026, 10, 14, 9, 30, 0, 123_000_000, time.UTC)
	b := fakebackend.New(fakebackend.WithToken("T1", "u@shop.test", false))
	c, _ := newTestClient(t, b, session.NewMemory("T1", false), func(cfg *Config) {
		cfg.Now = func() time.Time { return now }
	})

	values := Fields{"item": "x", "quantity": 2, "timestamp": 1}
	if err := c.CreateOrder(context.Background(), values); err != nil {
		t.Fatalf("create order: %v", err)
	}

	rec, ok := b.Last(http.MethodPost, "/orders")
	if !ok {
		t.Fatalf("order request not recorded")
	}
	var sent map[string]interface{}
	if err := json.Unmarshal(rec.Body, &sent); err != nil {
		t.Fatalf("decode sent body: %v", err)
	}
	if sent["timestamp"] != float64(now.UnixMilli()) {
		t.Fatalf("expected timestamp %d, got %v", now.UnixMilli(), sent["timestamp"])
	}
	if sent["item"] != "x" || sent["quantity"] != float64(2) || len(sent) != 3 {
		t.Fatalf("fields not passed through unchanged: %v", sent)
	}
	if values["timestamp"] != 1 {
		t.Fatalf("caller values were mutated: %v", values)
	}
}

func TestGetOrders_ReturnsOwnOrders(t *testing.T) {
	b := fakebackend.New(
		fakebackend.WithToken("T1", "u1@shop.test", false),
		fakebackend.WithToken("T2", "u2@shop.test", false),
	)
	sess := session.NewMemory("T1", false)
	c, _ := newTestClient(t, b, sess)
	ctx := context.Background()

	if err := c.CreateOrder(ctx, Fields{"item": "a"}); err != nil {
		t.Fatalf("create order: %v", err)
	}
	sess.LogIn("T2", false)
	if err := c.CreateOrder(ctx, Fields{"item": "b"}); err != nil {
		t.Fatalf("create order: %v", err)
	}

	orders, err := c.GetOrders(ctx)
	if err != nil {
		t.Fatalf("get orders: %v", err)
	}
	if len(orders) != 1 || orders[0]["item"] != "b" {
		t.Fatalf("expected only the second user's order, got %v", orders)
	}
}

func TestGetOrders_Unauthorized(t *testing.T) {
	b := fakebackend.New()
	c, _ := newTestClient(t, b, &session.Memory{})

	_, err := c.GetOrders(context.Background())
	if err == nil {
		t.Fatalf("expected failure without a valid token")
	}
	rec, _ := b.Last(http.MethodGet, "/orders")
	// the server trims the trailing space of "Bearer "
	if got := strings.TrimSpace(rec.Header.Get("Authorization")); got != "Bearer" {
		t.Fatalf("expected an empty bearer token, got %q", got)
	}
}
