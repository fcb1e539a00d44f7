package client

import (
	"context"
	"fmt"

	"github.com/pollyhq/polly-go/internal/models"
)

// RegisterResult is the normalized outcome of a registration call.
type RegisterResult struct {
	Outcome
	User *models.UserOut `json:"data,omitempty"`
}

// Register creates a new user account via POST /register.
//
// The returned error covers only local validation failures; remote
// failures are reported through the result.
func (c *Client) Register(ctx context.Context, username, password string) (*RegisterResult, error) {
	if username == "" || password == "" {
		return nil, fmt.Errorf("username and password are required")
	}

	var user models.UserOut
	resp, err := c.rest.R().
		SetContext(ctx).
		SetBody(models.UserCreate{Username: username, Password: password}).
		SetResult(&user).
		Post("/register")

	res := &RegisterResult{Outcome: classify(resp, err, "Username already registered")}
	if res.Success {
		res.User = &user
		res.Message = "User registered successfully"
	}
	return res, nil
}

// LoginResult is the normalized outcome of a login call.
type LoginResult struct {
	Outcome
	Token *models.Token `json:"data,omitempty"`
}

// Login exchanges credentials for a bearer token via POST /login. The
// endpoint expects a form-encoded body. The caller is responsible for
// threading the returned token into subsequent authenticated calls.
func (c *Client) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	if username == "" || password == "" {
		return nil, fmt.Errorf("username and password are required")
	}

	var token models.Token
	resp, err := c.rest.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"username": username,
			"password": password,
		}).
		SetResult(&token).
		Post("/login")

	res := &LoginResult{Outcome: classify(resp, err, "Invalid credentials")}
	if res.Success {
		res.Token = &token
		res.Message = "Login successful"
	}
	return res, nil
}
