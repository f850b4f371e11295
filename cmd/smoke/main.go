package main

import (
	"bytes"
	"context"
	"log"
	"os"

	"github.com/imrishuroy/storefront-client/internal/aws"
	"github.com/imrishuroy/storefront-client/internal/config"
	"github.com/imrishuroy/storefront-client/internal/session"
	"github.com/imrishuroy/storefront-client/pkg/storefront"
)

// a 1x1 transparent PNG
var pixel = []byte{
	0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a, 0x00, 0x00, 0x00, 0x0d,
	0x49, 0x48, 0x44, 0x52, 0x00, 0x00, 0x00, 0x01, 0x00, 0x00, 0x00, 0x01,
	0x08, 0x06, 0x00, 0x00, 0x00, 0x1f, 0x15, 0xc4, 0x89, 0x00, 0x00, 0x00,
	0x0a, 0x49, 0x44, 0x41, 0x54, 0x78, 0x9c, 0x63, 0x00, 0x01, 0x00, 0x00,
	0x05, 0x00, 0x01, 0x0d, 0x0a, 0x2d, 0xb4, 0x00, 0x00, 0x00, 0x00, 0x49,
	0x45, 0x4e, 0x44, 0xae, 0x42, 0x60, 0x82,
}

func main() {
	ctx := context.Background()
	cfg := config.Load()
	logger := log.New(os.Stdout, "[smoke] ", log.LstdFlags)

	sess := &session.Memory{}
	clientCfg := storefront.Config{
		BaseURL:        cfg.BaseURL,
		StorageBaseURL: cfg.StorageBaseURL,
		Session:        sess,
		Logger:         logger,
	}
	if cfg.MetricsNamespace != "" {
		clients, err := aws.NewAWSClients(ctx)
		if err != nil {
			log.Fatalf("failed to init aws clients: %v", err)
		}
		clientCfg.Observer = aws.NewMetricsRecorder(clients.CloudWatch, cfg.MetricsNamespace)
	}

	client, err := storefront.New(clientCfg)
	if err != nil {
		log.Fatalf("failed to build client: %v", err)
	}

	top, err := client.GetTopProducts(ctx)
	if err != nil {
		log.Fatalf("top products: %v", err)
	}
	logger.Printf("newest products: %d", len(top))

	if cfg.Email == "" {
		logger.Printf("no STOREFRONT_EMAIL set; skipping authorized calls")
		return
	}
	if err := client.Login(ctx, cfg.Email, cfg.Password); err != nil {
		log.Fatalf("login: %v", err)
	}
	logger.Printf("logged in admin=%v", sess.IsAdmin())

	if sess.IsAdmin() {
		err := client.CreateProduct(ctx, storefront.Fields{
			"name":     "Smoke Test Mug",
			"category": "smoke",
			"price":    500,
		}, bytes.NewReader(pixel))
		if err != nil {
			log.Fatalf("create product: %v", err)
		}
		found, err := client.SearchProducts(ctx, storefront.SearchFilter{Category: "smoke", MaxRange: "10"})
		if err != nil {
			log.Fatalf("search products: %v", err)
		}
		for _, p := range found {
			if id, ok := p["id"].(string); ok {
				if err := client.DeleteProduct(ctx, id); err != nil {
					log.Fatalf("delete product: %v", err)
				}
			}
		}
		logger.Printf("created and cleaned up %d smoke products", len(found))
	}

	if err := client.CreateOrder(ctx, storefront.Fields{"items": []string{"smoke"}}); err != nil {
		log.Fatalf("create order: %v", err)
	}
	orders, err := client.GetOrders(ctx)
	if err != nil {
		log.Fatalf("get orders: %v", err)
	}
	logger.Printf("orders visible: %d", len(orders))
}
