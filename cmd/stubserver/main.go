package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambda"
	ginadapter "github.com/awslabs/aws-lambda-go-api-proxy/gin"

	"github.com/imrishuroy/storefront-client/internal/aws"
	"github.com/imrishuroy/storefront-client/internal/config"
	"github.com/imrishuroy/storefront-client/internal/fakebackend"
)

func newBackend(ctx context.Context, cfg *config.Config) (*fakebackend.Backend, error) {
	opts := []fakebackend.Option{
		fakebackend.WithUser("admin@shop.test", "admin", true),
		fakebackend.WithUser("user@shop.test", "user", false),
	}

	// with a bucket, hand out real S3 upload URLs instead of local ones
	if cfg.StubBucket != "" {
		clients, err := aws.NewAWSClients(ctx)
		if err != nil {
			return nil, err
		}
		presigner := aws.NewPresigner(clients.S3Presign, cfg.StubBucket, 15*time.Minute)
		opts = append(opts, fakebackend.WithSigner(presigner))
		log.Printf("[stub] signing uploads for bucket %s; images resolve under %s", cfg.StubBucket, presigner.PublicURL(""))
	}

	return fakebackend.New(opts...), nil
}

// lambdaHandler proxies API Gateway events into the backend router.
func lambdaHandler(backend *fakebackend.Backend) func(context.Context, events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
	adapter := ginadapter.New(backend.Engine())
	return func(ctx context.Context, req events.APIGatewayProxyRequest) (events.APIGatewayProxyResponse, error) {
		return adapter.ProxyWithContext(ctx, req)
	}
}

func main() {
	cfg := config.Load()

	backend, err := newBackend(context.Background(), cfg)
	if err != nil {
		log.Fatalf("failed to init aws clients: %v", err)
	}

	// RUN_LOCAL=true serves plain HTTP for development
	if cfg.RunLocal {
		srv := &http.Server{
			Addr:              cfg.StubAddr,
			Handler:           backend.Handler(),
			ReadHeaderTimeout: 10 * time.Second,
		}
		log.Printf("[stub] running local backend on %s", cfg.StubAddr)
		if err := srv.ListenAndServe(); err != nil {
			log.Fatalf("failed to run local server: %v", err)
		}
		return
	}

	log.Printf("[stub] starting lambda handler")
	lambda.Start(lambdaHandler(backend))
}
