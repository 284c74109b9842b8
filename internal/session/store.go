// Package session reads the visitor's persisted sign-in state. The web
// frontend stores it under a single key as a JSON blob; the intake flow only
// ever needs the bearer token out of it.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// userInfoKey is the fixed key the frontend persists the signed-in user
// under. Anonymous visitors simply have no value there.
const userInfoKey = "userInfo"

type userInfo struct {
	Token string `json:"token"`
}

// TokenStore resolves the current bearer token from Redis. A nil client
// means session storage is unavailable and every visitor is anonymous.
type TokenStore struct {
	client *redis.Client
}

func NewTokenStore(client *redis.Client) *TokenStore {
	return &TokenStore{client: client}
}

// CurrentToken returns the stored token, or "" when nobody is signed in.
func (s *TokenStore) CurrentToken(ctx context.Context) (string, error) {
	if s.client == nil {
		return "", nil
	}

	raw, err := s.client.Get(ctx, userInfoKey).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("read session: %w", err)
	}

	var info userInfo
	if err := json.Unmarshal([]byte(raw), &info); err != nil {
		return "", fmt.Errorf("decode session: %w", err)
	}

	return info.Token, nil
}
