package backend

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Laminito/ameublement-market/internal/pkg/models"
)

// Login exchanges credentials for a bearer token and the user profile.
func (c *Client) Login(ctx context.Context, email, password string) (*models.AuthSession, error) {
	body := map[string]string{
		"email":    email,
		"password": password,
	}
	env, err := c.do(ctx, http.MethodPost, "/auth/login", "", body)
	if err != nil {
		return nil, err
	}
	return sessionFromEnvelope(env)
}

func (c *Client) Register(ctx context.Context, firstName, lastName, email, phone, password string) (*models.AuthSession, error) {
	body := map[string]string{
		"firstName": firstName,
		"lastName":  lastName,
		"email":     email,
		"phone":     phone,
		"password":  password,
	}
	env, err := c.do(ctx, http.MethodPost, "/auth/register", "", body)
	if err != nil {
		return nil, err
	}
	return sessionFromEnvelope(env)
}

// GetProfile fetches the profile of the token's owner.
func (c *Client) GetProfile(ctx context.Context, token string) (*models.UserProfile, error) {
	env, err := c.do(ctx, http.MethodGet, "/users/profile/me", token, nil)
	if err != nil {
		return nil, err
	}

	var profile models.UserProfile
	if err := decodePayload(env, &profile); err != nil {
		return nil, fmt.Errorf("failed to decode profile: %w", err)
	}
	return &profile, nil
}

func sessionFromEnvelope(env *envelope) (*models.AuthSession, error) {
	var profile models.UserProfile
	if err := decodePayload(env, &profile); err != nil {
		return nil, fmt.Errorf("failed to decode auth payload: %w", err)
	}
	if env.Token == "" {
		return nil, fmt.Errorf("auth response carried no token")
	}
	return &models.AuthSession{Token: env.Token, User: profile}, nil
}
