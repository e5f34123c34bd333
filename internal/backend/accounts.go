package backend

import (
	"context"
	"errors"
	"net/http"

	"shoponline_web/internal/models"
)

// CreateUser : POST /api/users.
func (c *Client) CreateUser(ctx context.Context, r models.Registration) error {
	return c.do(ctx, "CreateUser", http.MethodPost, "/api/users", "", r, nil)
}

// Authenticate : POST /api/login. Une réponse 2xx sans jeton est traitée comme malformée.
func (c *Client) Authenticate(ctx context.Context, creds models.Credentials) (models.LoginResult, error) {
	var res models.LoginResult
	if err := c.do(ctx, "Authenticate", http.MethodPost, "/api/login", "", creds, &res); err != nil {
		return models.LoginResult{}, err
	}
	if res.Token == "" {
		return models.LoginResult{}, &Error{Kind: KindMalformed, Op: "Authenticate", Err: errors.New("jeton absent de la réponse")}
	}
	return res, nil
}
