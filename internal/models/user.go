package models

type Registration struct {
	Name     string `json:"nome"`
	Age      int    `json:"idade"`
	Email    string `json:"email"`
	Password string `json:"senha"`
}

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"senha"`
}

// LoginResult est la réponse de POST /api/login.
type LoginResult struct {
	Token  string `json:"token"`
	UserID string `json:"_id"`
	Name   string `json:"nome,omitempty"`
}
