package aws

import (
	"context"

	sdkaws "github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/cloudwatch"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// AWSClients bundles all service clients for convenience.
type AWSClients struct {
	S3Presign  PresignAPI
	CloudWatch CloudWatchAPI
}

// NewAWSClients loads AWS config and returns concrete service clients that implement our interfaces.
func NewAWSClients(ctx context.Context) (*AWSClients, error) {
	cfg, err := LoadAWSConfig(ctx)
	if err != nil {
		return nil, err
	}
	return NewAWSClientsFromConfig(cfg), nil
}

// NewAWSClientsFromConfig builds the clients from an already loaded config.
func NewAWSClientsFromConfig(cfg sdkaws.Config) *AWSClients {
	s3Client := s3.NewFromConfig(cfg, func(o *s3.Options) {
		// local stacks serve buckets by path, not by virtual host
		o.UsePathStyle = cfg.BaseEndpoint != nil
	})

	return &AWSClients{
		S3Presign:  s3.NewPresignClient(s3Client),
		CloudWatch: cloudwatch.NewFromConfig(cfg),
	}
}
