package client

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/Awinteck-Solutions/melcom-travels-web-sub000/internal/model"
)

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthClient talks to the upstream auth/profile API.
type AuthClient struct {
	baseURL string
	http    *http.Client
}

func NewAuthClient(baseURL string, timeout time.Duration) *AuthClient {
	return &AuthClient{
		baseURL: baseURL,
		http:    &http.Client{Timeout: timeout},
	}
}

type loginData struct {
	User  model.User `json:"user"`
	Token string     `json:"token"`
}

// Login exchanges credentials for the traveller profile and an opaque token.
func (c *AuthClient) Login(ctx context.Context, creds Credentials) (*model.User, string, error) {
	data, err := doJSON(ctx, c.http, http.MethodPost, c.baseURL+"/auth/login", creds, nil)
	if err != nil {
		return nil, "", err
	}

	var payload loginData
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, "", newApplicationError(GenericErrorMessage)
	}
	return &payload.User, payload.Token, nil
}

type profileData struct {
	User model.User `json:"user"`
}

// UpdateProfile sends a partial profile merge authorized by the token and
// returns the updated record.
func (c *AuthClient) UpdateProfile(ctx context.Context, patch model.UserPatch, token string) (*model.User, error) {
	headers := map[string]string{"Authorization": "Bearer " + token}
	data, err := doJSON(ctx, c.http, http.MethodPut, c.baseURL+"/user/profile", patch, headers)
	if err != nil {
		return nil, err
	}

	var payload profileData
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, newApplicationError(GenericErrorMessage)
	}
	return &payload.User, nil
}
