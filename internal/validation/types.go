package validation

// LoginRequest is the payload for POST /login
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest is the subset of POST /users the backend insists on.
// Any other fields are stored as sent.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=4"`
}

// UploadURLQuery is the query of GET /s3-signed-url
type UploadURLQuery struct {
	ImageName string `form:"imageName" validate:"required,max=128"`
}

// SearchQuery is the query of GET /products. Ranges are in minor units.
type SearchQuery struct {
	Name     string   `form:"name"`
	Category string   `form:"category"`
	MinRange *float64 `form:"minRange" validate:"omitempty,gte=0"`
	MaxRange *float64 `form:"maxRange" validate:"omitempty,gte=0"`
	Newest   bool     `form:"newest"`
}
