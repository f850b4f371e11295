package storefront

// Fields is a caller-supplied JSON object passed through to the backend as is.
type Fields map[string]interface{}

// clone returns a shallow copy so the caller's map is never mutated.
func (f Fields) clone() Fields {
	out := make(Fields, len(f)+1)
	for k, v := range f {
		out[k] = v
	}
	return out
}

// Product is a product record as returned by the backend.
type Product = Fields

// Order is an order record as returned by the backend.
type Order = Fields

// Credentials is the login request body.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse is the login reply body.
type LoginResponse struct {
	Token   string `json:"token"`
	IsAdmin bool   `json:"isAdmin"`
}

// UploadResult is the outcome of UploadImage. PublicURL is always set once the
// signed URL was obtained; Err records a failed PUT and wraps ErrUploadFailed.
type UploadResult struct {
	Filename  string
	PublicURL string
	Err       error
}

type signedURLResponse struct {
	URL string `json:"url"`
}
