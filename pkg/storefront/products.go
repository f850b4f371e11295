package storefront

import (
	"context"
	"io"
	"net/http"
	"net/url"
)

// CreateProduct uploads image, merges the resulting imageUrl into fields and
// creates the product. fields itself is left untouched.
func (c *Client) CreateProduct(ctx context.Context, fields Fields, image io.Reader) error {
	up, err := c.UploadImage(ctx, image)
	if err != nil {
		return newRequestError(OpCreateProduct, 0, err)
	}
	if up.Err != nil {
		if c.strictUpload {
			return newRequestError(OpCreateProduct, 0, up.Err)
		}
		c.logger.Printf("[storefront] continuing without uploaded image filename=%s: %v", up.Filename, up.Err)
	}

	payload := fields.clone()
	payload["imageUrl"] = up.PublicURL

	return c.do(ctx, request{
		op:         OpCreateProduct,
		method:     http.MethodPost,
		path:       "/products",
		body:       payload,
		authorized: true,
	}, nil)
}

// GetTopProducts returns the newest products.
func (c *Client) GetTopProducts(ctx context.Context) ([]Product, error) {
	var out []Product
	err := c.do(ctx, request{
		op:     OpGetTopProducts,
		method: http.MethodGet,
		path:   "/products",
		query:  newestQuery(),
	}, &out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// SearchProducts returns the products matching filter.
func (c *Client) SearchProducts(ctx context.Context, filter SearchFilter) ([]Product, error) {
	q, err := filter.Values()
	if err != nil {
		return nil, newRequestError(OpSearchProducts, 0, err)
	}
	var out []Product
	err = c.do(ctx, request{
		op:     OpSearchProducts,
		method: http.MethodGet,
		path:   "/products",
		query:  q,
	}, &out)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// DeleteProduct deletes the product with the given id.
func (c *Client) DeleteProduct(ctx context.Context, productID string) error {
	return c.do(ctx, request{
		op:         OpDeleteProduct,
		method:     http.MethodDelete,
		path:       "/products/" + url.PathEscape(productID),
		authorized: true,
	}, nil)
}
