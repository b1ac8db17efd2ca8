package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type signupRequest struct {
	Name       string `json:"name"        validate:"required"`
	Phone      string `json:"phone"       validate:"required,phone"`
	Email      string `json:"email"       validate:"required,email"`
	Password   string `json:"password"    validate:"required,min=5,max=72"`
	UserType   string `json:"user_type"   validate:"required,oneof=BUYER REALTOR ADMIN"`
	ProductKey string `json:"product_key" validate:"omitempty,min=1"`
}

type signinRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type productKeyRequest struct {
	Email    string `query:"email"     validate:"required,email"`
	UserType string `query:"user_type" validate:"required,oneof=BUYER REALTOR ADMIN"`
}

type tokenResponse struct {
	Token string `json:"token"`
}

type productKeyResponse struct {
	ProductKey string `json:"product_key"`
}

type meResponse struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	UserType string `json:"user_type"`
}
