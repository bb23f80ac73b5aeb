package header

import (
	"os"
	"sync"

	"github.com/joho/godotenv"
)

// TokenManager owns the upstream bearer credential. The token is loaded once
// at startup and may be replaced explicitly at runtime; requests already in
// flight keep whatever token they were built with.
type TokenManager struct {
	mu    sync.RWMutex
	token string
}

// NewFromEnv loads CGV_AUTH_TOKEN from the environment (.env honored when
// present). An empty token is valid: requests simply go out unauthenticated.
func NewFromEnv() *TokenManager {
	_ = godotenv.Load()
	return &TokenManager{token: os.Getenv("CGV_AUTH_TOKEN")}
}

func New(token string) *TokenManager {
	return &TokenManager{token: token}
}

func (t *TokenManager) Set(token string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.token = token
}

func (t *TokenManager) Token() string {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.token
}

func (t *TokenManager) HasToken() bool {
	return t.Token() != ""
}

// Headers builds the outbound header set for one request. The Authorization
// header is omitted entirely when no token is set.
func (t *TokenManager) Headers() map[string]string {
	headers := map[string]string{
		"Accept": "application/json",
	}
	if token := t.Token(); token != "" {
		headers["Authorization"] = "Bearer " + token
	}
	return headers
}
