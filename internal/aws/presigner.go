package aws

import (
	"context"
	"fmt"
	"path"
	"time"

	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ImagePrefix is the key prefix product images are stored under.
const ImagePrefix = "images"

// ImageContentType must match the Content-Type the uploader sends, since it is
// part of the signature.
const ImageContentType = "image/*"

// Presigner issues time-limited PUT URLs for product images.
type Presigner struct {
	client  PresignAPI
	bucket  string
	expires time.Duration
}

// NewPresigner returns a Presigner for bucket. expires <= 0 means 15 minutes.
func NewPresigner(client PresignAPI, bucket string, expires time.Duration) *Presigner {
	if expires <= 0 {
		expires = 15 * time.Minute
	}
	return &Presigner{
		client:  client,
		bucket:  bucket,
		expires: expires,
	}
}

// SignUpload returns a pre-signed PUT URL for images/<imageName>.
func (p *Presigner) SignUpload(ctx context.Context, imageName string) (string, error) {
	key := path.Join(ImagePrefix, imageName)
	out, err := p.client.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      &p.bucket,
		Key:         &key,
		ContentType: awsString(ImageContentType),
	}, s3.WithPresignExpires(p.expires))
	if err != nil {
		return "", fmt.Errorf("presign put object: %w", err)
	}
	return out.URL, nil
}

// PublicURL is the unsigned read URL of an uploaded image.
func (p *Presigner) PublicURL(imageName string) string {
	return fmt.Sprintf("https://%s.s3.amazonaws.com/%s/%s", p.bucket, ImagePrefix, imageName)
}

// awsString helper
func awsString(s string) *string { return &s }
