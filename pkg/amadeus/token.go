package amadeus

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"golang.org/x/oauth2"
)

const tokenPath = "/v1/security/oauth2/token"

// expiry is pulled in 30s so a token never goes stale mid-request
const expirySafetyMargin = 30 * time.Second

// TokenManager owns the client-credentials token for one API account.
// It caches the token and refreshes it only once the expiry has passed.
type TokenManager struct {
	httpClient   *http.Client
	baseURL      string
	clientID     string
	clientSecret string

	now func() time.Time

	mu    sync.Mutex
	token *oauth2.Token
}

func NewTokenManager(httpClient *http.Client, baseURL, clientID, clientSecret string) *TokenManager {
	return &TokenManager{
		httpClient:   httpClient,
		baseURL:      baseURL,
		clientID:     clientID,
		clientSecret: clientSecret,
		now:          time.Now,
	}
}

// Token returns the cached token while it is still valid, otherwise it
// requests a fresh one.
func (m *TokenManager) Token(ctx context.Context) (*oauth2.Token, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.token != nil && m.now().Before(m.token.Expiry) {
		return m.token, nil
	}

	form := url.Values{
		"grant_type":    {"client_credentials"},
		"client_id":     {m.clientID},
		"client_secret": {m.clientSecret},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, m.baseURL+tokenPath, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("amadeus: failed to build token request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := m.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("amadeus: token request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("amadeus: token endpoint returned non-200 status: %d", resp.StatusCode)
	}

	var payload struct {
		AccessToken string `json:"access_token"`
		TokenType   string `json:"token_type"`
		ExpiresIn   int    `json:"expires_in"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("amadeus: failed to decode token response: %w", err)
	}
	if payload.AccessToken == "" {
		return nil, fmt.Errorf("amadeus: token response missing access_token")
	}

	m.token = &oauth2.Token{
		AccessToken: payload.AccessToken,
		TokenType:   payload.TokenType,
		Expiry:      m.now().Add(time.Duration(payload.ExpiresIn)*time.Second - expirySafetyMargin),
	}

	return m.token, nil
}
