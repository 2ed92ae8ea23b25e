package auth

// LoginRequest represents a login request
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse represents a successful login response
type LoginResponse struct {
	Token string `json:"token"`
}

// RegisterRequest represents a registration request
type RegisterRequest struct {
	Pseudo   string `json:"pseudo"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterResponse echoes the created account plus its first token
type RegisterResponse struct {
	ID     string `json:"id"`
	Pseudo string `json:"pseudo"`
	Email  string `json:"email"`
	Token  string `json:"token"`
}
