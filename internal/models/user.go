package models

// User represents the identity payload returned by the backend at login.
// The client stores Role but does not interpret it.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

// Session represents the client-side authentication state
type Session struct {
	User            *User  `json:"user"`
	AccessToken     string `json:"accessToken"`
	RefreshToken    string `json:"refreshToken"`
	IsAuthenticated bool   `json:"isAuthenticated"`
	IsLoading       bool   `json:"isLoading"`
	Error           string `json:"error"`
}

// LoginRequest is the expected structure for login attempts
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// TokenPair is one issued token with its expiry timestamp
type TokenPair struct {
	Token   string `json:"token"`
	Expires string `json:"expires"`
}

// LoginTokens groups the access and refresh tokens of a login response
type LoginTokens struct {
	Access  TokenPair `json:"access"`
	Refresh TokenPair `json:"refresh"`
}

// LoginResponse is returned on successful authentication
type LoginResponse struct {
	User   *User       `json:"user"`
	Tokens LoginTokens `json:"tokens"`
}

// ProfileResponse wraps the authenticated user returned by /auth/profile
type ProfileResponse struct {
	User *User `json:"user"`
}
