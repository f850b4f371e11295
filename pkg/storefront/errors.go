package storefront

import (
	"errors"
	"fmt"
)

// Sentinel errors. Every operation failure matches ErrRequestFailed via errors.Is.
var (
	ErrRequestFailed = errors.New("request failed")
	ErrInvalidConfig = errors.New("invalid client config")
	ErrInvalidRange  = errors.New("invalid price range")
	ErrUploadFailed  = errors.New("image upload failed")
)

// Operation identifies a backend call.
type Operation string

const (
	OpCreateProduct    Operation = "createProduct"
	OpCreateOrder      Operation = "createOrder"
	OpGetOrders        Operation = "getOrders"
	OpGetTopProducts   Operation = "getTopProducts"
	OpSearchProducts   Operation = "searchProducts"
	OpDeleteProduct    Operation = "deleteProduct"
	OpRegister         Operation = "register"
	OpLogin            Operation = "login"
	OpRequestUploadURL Operation = "requestUploadUrl"
	OpUploadImage      Operation = "uploadImage"
)

// failureMessages are the fixed per-operation messages surfaced to callers.
var failureMessages = map[Operation]string{
	OpCreateProduct:    "could not create product",
	OpCreateOrder:      "could not create order",
	OpGetOrders:        "could not fetch orders",
	OpGetTopProducts:   "could not fetch products",
	OpSearchProducts:   "could not fetch products",
	OpDeleteProduct:    "could not delete product",
	OpRegister:         "could not register user",
	OpLogin:            "could not log in",
	OpRequestUploadURL: "could not request upload url",
}

// RequestError is returned by every failed operation.
// StatusCode is zero when the request never produced a response.
type RequestError struct {
	Op         Operation
	// Message is the fixed failure text for Op, e.g. "could not create product".
	// Compare against Message (or match Op) rather than Error(), which appends
	// the cause or status.
	Message    string
	StatusCode int
	Err        error
}

func newRequestError(op Operation, status int, cause error) *RequestError {
	return &RequestError{
		Op:         op,
		Message:    failureMessages[op],
		StatusCode: status,
		Err:        cause,
	}
}

func (e *RequestError) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	case e.StatusCode != 0:
		return fmt.Sprintf("%s: status %d", e.Message, e.StatusCode)
	default:
		return e.Message
	}
}

func (e *RequestError) Unwrap() error { return e.Err }

// Is reports ErrRequestFailed for any RequestError so callers can match the kind
// without caring about the operation.
func (e *RequestError) Is(target error) bool {
	return target == ErrRequestFailed
}
