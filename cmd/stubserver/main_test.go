package main

import (
	"context"
	"encoding/json"
	"net/http"
	"os"
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/gin-gonic/gin"

	"github.com/imrishuroy/storefront-client/internal/config"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func TestLambdaHandler_ProxiesIntoBackend(t *testing.T) {
	backend, err := newBackend(context.Background(), &config.Config{})
	if err != nil {
		t.Fatalf("newBackend: %v", err)
	}
	handle := lambdaHandler(backend)

	resp, err := handle(context.Background(), events.APIGatewayProxyRequest{
		HTTPMethod: http.MethodGet,
		Path:       "/health",
	})
	if err != nil {
		t.Fatalf("proxy health: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", resp.StatusCode, resp.Body)
	}

	resp, err = handle(context.Background(), events.APIGatewayProxyRequest{
		HTTPMethod: http.MethodPost,
		Path:       "/login",
		Headers:    map[string]string{"Content-Type": "application/json"},
		Body:       `{"email":"admin@shop.test","password":"admin"}`,
	})
	if err != nil {
		t.Fatalf("proxy login: %v", err)
	}
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected seeded admin to log in, got %d: %s", resp.StatusCode, resp.Body)
	}
	var body struct {
		Token   string `json:"token"`
		IsAdmin bool   `json:"isAdmin"`
	}
	if err := json.Unmarshal([]byte(resp.Body), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body.Token == "" || !body.IsAdmin {
		t.Fatalf("unexpected login body %+v", body)
	}

	if _, ok := backend.Last(http.MethodPost, "/login"); !ok {
		t.Fatal("expected the proxied login to be recorded")
	}
}
