package storefront

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

const imageContentType = "image/*"

// UploadImage stores image through a pre-signed URL issued by the backend and
// returns the public URL derived from the generated filename.
//
// Failing to obtain the signed URL is returned as an error. A failed PUT is not:
// it is recorded in UploadResult.Err and the derived URL is still returned.
func (c *Client) UploadImage(ctx context.Context, image io.Reader) (UploadResult, error) {
	filename := c.newImageName()

	signedURL, err := c.requestUploadURL(ctx, filename)
	if err != nil {
		return UploadResult{}, err
	}

	res := UploadResult{
		Filename:  filename,
		PublicURL: c.publicImageURL(filename),
	}
	if err := c.putImage(ctx, signedURL, image); err != nil {
		res.Err = fmt.Errorf("%w: %s: %v", ErrUploadFailed, filename, err)
	}
	return res, nil
}

// requestUploadURL asks the backend for a write URL for filename. The status
// code is not checked; a body without a url yields an empty string.
func (c *Client) requestUploadURL(ctx context.Context, filename string) (string, error) {
	resp, err := c.send(ctx, request{
		op:     OpRequestUploadURL,
		method: http.MethodGet,
		path:   "/s3-signed-url",
		query:  url.Values{"imageName": {filename}},
	})
	if err != nil {
		return "", newRequestError(OpRequestUploadURL, 0, err)
	}
	var body signedURLResponse
	if err := json.Unmarshal(resp.body, &body); err != nil {
		return "", newRequestError(OpRequestUploadURL, resp.status, fmt.Errorf("decode response: %w", err))
	}
	return body.URL, nil
}

// putImage sends the raw payload straight to object storage.
func (c *Client) putImage(ctx context.Context, signedURL string, image io.Reader) error {
	if signedURL == "" {
		return fmt.Errorf("no signed url in response")
	}
	// buffered so the request carries a Content-Length; signed PUTs reject chunked bodies
	data, err := io.ReadAll(image)
	if err != nil {
		return fmt.Errorf("read image: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, signedURL, bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", imageContentType)

	resp, err := c.exchange(ctx, OpUploadImage, req)
	if err != nil {
		return err
	}
	if !resp.ok() {
		return fmt.Errorf("status %d", resp.status)
	}
	return nil
}

func (c *Client) publicImageURL(filename string) string {
	return c.storageBaseURL + "/images/" + filename
}
