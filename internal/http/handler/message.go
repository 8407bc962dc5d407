package handler

const oopsErr = "Oops! Something went wrong. Please try again later."

type Response struct {
	Message string            `json:"message,omitempty"` // short message for humans
	Error   string            `json:"error,omitempty"`   // error detail (if any)
	Details map[string]string `json:"details,omitempty"` // per-field validation errors
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
