package callsync

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/ringledger/ringledger/ent"
)

var (
	// ErrNoConnection is returned when a tenant has no stored CRM credentials
	ErrNoConnection = errors.New("no CRM connection configured for tenant")
	// ErrReauthRequired is returned when the one-shot reactive refresh has
	// already been spent; the tenant must re-authenticate with the upstream
	ErrReauthRequired = errors.New("upstream re-authentication required")
)

// OAuthConfig holds the upstream token-endpoint configuration.
type OAuthConfig struct {
	TokenURL     string
	ClientID     string
	ClientSecret string
}

// TokenManager guarantees a non-expired bearer token for one sync run. It
// refreshes proactively on expiry and reactively at most once per run when
// the upstream rejects a locally-valid token (covers upstream-side
// revocation). Create one per run; the one-shot flag is run-scoped.
type TokenManager struct {
	db        *ent.Client
	client    *http.Client
	cfg       OAuthConfig
	conn      *ent.CRMConnection
	refreshed bool
}

// NewTokenManager creates a token manager bound to one connection for one run.
func NewTokenManager(db *ent.Client, cfg OAuthConfig, conn *ent.CRMConnection) *TokenManager {
	return &TokenManager{
		db:     db,
		client: &http.Client{Timeout: 10 * time.Second},
		cfg:    cfg,
		conn:   conn,
	}
}

// EnsureValidToken returns a bearer token, refreshing first when the stored
// expiry has already elapsed.
func (m *TokenManager) EnsureValidToken(ctx context.Context) (string, error) {
	if m.conn.TokenExpiresAt == nil || m.conn.TokenExpiresAt.After(time.Now()) {
		return m.conn.AccessToken, nil
	}

	return m.refresh(ctx)
}

// RefreshOnAuthFailure performs the single reactive refresh allowed per run.
// A second call means the refreshed token was also rejected; that is fatal.
func (m *TokenManager) RefreshOnAuthFailure(ctx context.Context) (string, error) {
	if m.refreshed {
		return "", ErrReauthRequired
	}
	m.refreshed = true

	token, err := m.refresh(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrReauthRequired, err)
	}

	return token, nil
}

type tokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int    `json:"expires_in"`
}

// refresh exchanges the stored refresh token for a new pair and persists it
// in a single update so concurrent runs converge on the latest token.
func (m *TokenManager) refresh(ctx context.Context) (string, error) {
	data := url.Values{}
	data.Set("grant_type", "refresh_token")
	data.Set("refresh_token", m.conn.RefreshToken)
	data.Set("client_id", m.cfg.ClientID)
	data.Set("client_secret", m.cfg.ClientSecret)

	resp, err := m.client.PostForm(m.cfg.TokenURL, data)
	if err != nil {
		return "", fmt.Errorf("failed to exchange refresh token: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("token endpoint returned status %d", resp.StatusCode)
	}

	var tr tokenResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return "", fmt.Errorf("failed to decode token response: %w", err)
	}

	if tr.AccessToken == "" {
		return "", errors.New("token endpoint returned empty access token")
	}

	expiresAt := time.Now().Add(time.Duration(tr.ExpiresIn) * time.Second)

	update := m.db.CRMConnection.
		UpdateOneID(m.conn.ID).
		SetAccessToken(tr.AccessToken).
		SetTokenExpiresAt(expiresAt)

	if tr.RefreshToken != "" {
		update = update.SetRefreshToken(tr.RefreshToken)
	}

	conn, err := update.Save(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to persist refreshed token: %w", err)
	}

	m.conn = conn
	return tr.AccessToken, nil
}
