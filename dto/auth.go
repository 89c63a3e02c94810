package dto

// AuthenticationRequest is the body of both account routes.
type AuthenticationRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type TokenResponse struct {
	Token string `json:"token"`
}
