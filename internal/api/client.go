package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/salasys/roomctl/internal/models"
	"github.com/salasys/roomctl/internal/session"
)

const (
	// DefaultTimeout bounds every request; the backend has no
	// cancellation semantics of its own.
	DefaultTimeout = 30 * time.Second

	// refreshLeeway is how close to expiry an access token may get
	// before it is refreshed ahead of a request.
	refreshLeeway = 30 * time.Second

	loginPath   = "/auth/token/"
	refreshPath = "/auth/token/refresh/"
)

// Config holds common client configuration
type Config struct {
	BaseURL  string
	Timeout  time.Duration
	CacheDir string
	Debug    bool
}

// Client performs authenticated requests against the reservation
// backend. It owns the session token pair: tokens are attached to
// outgoing requests and replaced transparently when they expire.
type Client struct {
	baseURL    string
	httpClient *http.Client
	store      *session.Store

	// mu guards sess and single-flights refresh attempts so two
	// callers never race to rewrite the stored token pair.
	mu   sync.Mutex
	sess *session.Session
}

// New creates a client, loading any persisted session from the store.
func New(cfg Config, store *session.Store) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("base URL is required")
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	sess, err := store.Load()
	if err != nil {
		if !errors.Is(err, session.ErrNoSession) {
			return nil, err
		}
		sess = &session.Session{}
	}

	return &Client{
		baseURL: cfg.BaseURL,
		httpClient: &http.Client{
			Timeout:   timeout,
			Transport: NewCachingTransport(cfg.CacheDir),
		},
		store: store,
		sess:  sess,
	}, nil
}

// CurrentUser returns the user from the held session, or nil when no
// one is logged in.
func (c *Client) CurrentUser() *models.User {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sess.User
}

// LoggedIn reports whether an access token is held.
func (c *Client) LoggedIn() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sess.HasAccessToken()
}

// Login exchanges credentials for a token pair and persists both
// tokens along with the returned user.
func (c *Client) Login(ctx context.Context, username, password string) (*models.User, error) {
	payload, err := json.Marshal(map[string]string{
		"username": username,
		"password": password,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal credentials: %w", err)
	}

	url := joinURL(c.baseURL, loginPath)
	resp, err := c.send(ctx, http.MethodPost, url, payload, "")
	if err != nil {
		return nil, &NetworkError{URL: url, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, errorFromResponse(resp)
	}

	var result struct {
		Access  string       `json:"access"`
		Refresh string       `json:"refresh"`
		User    *models.User `json:"user"`
	}
	if err := decodeBody(resp, &result); err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.sess = &session.Session{
		AccessToken:  result.Access,
		RefreshToken: result.Refresh,
		User:         result.User,
	}
	saveErr := c.store.Save(c.sess)
	c.mu.Unlock()

	if saveErr != nil {
		return nil, fmt.Errorf("failed to persist session: %w", saveErr)
	}

	log.Info().Str("username", username).Msg("logged in")

	return result.User, nil
}

// Logout clears both tokens from memory and durable storage. It makes
// no network call.
func (c *Client) Logout() error {
	c.mu.Lock()
	c.sess = &session.Session{}
	c.mu.Unlock()

	log.Info().Msg("logged out")

	return c.store.Clear()
}

// Refresh exchanges the stored refresh token for a new access token.
// When no refresh token is held it returns "" immediately with no
// network call.
func (c *Client) Refresh(ctx context.Context) (string, error) {
	c.mu.Lock()
	stale := c.sess.AccessToken
	c.mu.Unlock()
	return c.refreshAccess(ctx, stale)
}

// do performs an authorized JSON request. A 401 response triggers a
// single silent refresh followed by a single retry with the new token;
// if the refresh cannot produce a token the original unauthorized
// failure is returned.
func (c *Client) do(ctx context.Context, method, path string, in, out any) error {
	var payload []byte
	if in != nil {
		var err error
		payload, err = json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
	}

	token := c.freshToken(ctx)
	url := joinURL(c.baseURL, path)

	resp, err := c.send(ctx, method, url, payload, token)
	if err != nil {
		return &NetworkError{URL: url, Err: err}
	}

	if resp.StatusCode == http.StatusUnauthorized {
		origErr := errorFromResponse(resp)

		newToken, refreshErr := c.refreshAccess(ctx, token)
		if refreshErr != nil || newToken == "" {
			return origErr
		}

		resp, err = c.send(ctx, method, url, payload, newToken)
		if err != nil {
			return &NetworkError{URL: url, Err: err}
		}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errorFromResponse(resp)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		resp.Body.Close()
		return nil
	}
	return decodeBody(resp, out)
}

// send issues one HTTP request. It never retries.
func (c *Client) send(ctx context.Context, method, url string, payload []byte, token string) (*http.Response, error) {
	var body io.Reader
	if payload != nil {
		body = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	started := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}

	log.Debug().
		Str("method", method).
		Str("url", url).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(started)).
		Msg("api call")

	return resp, nil
}

// freshToken returns the access token to attach, refreshing first when
// the held token is a JWT already within the expiry leeway. Opaque
// tokens are attached as-is and rely on the 401 path.
func (c *Client) freshToken(ctx context.Context) string {
	c.mu.Lock()
	access := c.sess.AccessToken
	refreshable := c.sess.HasRefreshToken()
	c.mu.Unlock()

	if access == "" || !refreshable || !expiringSoon(access) {
		return access
	}

	newToken, err := c.refreshAccess(ctx, access)
	if err != nil || newToken == "" {
		return access
	}
	return newToken
}

// refreshAccess exchanges the refresh token for a new access token.
// stale is the access token the caller just failed with; when another
// caller already replaced it, the current token is returned without a
// network call. A rejected refresh clears both tokens. This call never
// goes through the retry logic itself, whatever status it gets back.
func (c *Client) refreshAccess(ctx context.Context, stale string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.sess.AccessToken != "" && c.sess.AccessToken != stale {
		return c.sess.AccessToken, nil
	}

	if !c.sess.HasRefreshToken() {
		// Nothing to exchange; the session is over.
		c.clearLocked()
		return "", nil
	}

	payload, err := json.Marshal(map[string]string{"refresh": c.sess.RefreshToken})
	if err != nil {
		return "", fmt.Errorf("failed to marshal refresh request: %w", err)
	}

	url := joinURL(c.baseURL, refreshPath)
	resp, err := c.send(ctx, http.MethodPost, url, payload, "")
	if err != nil {
		return "", &NetworkError{URL: url, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		refreshErr := errorFromResponse(resp)
		log.Debug().Err(refreshErr).Msg("refresh token rejected, ending session")
		c.clearLocked()
		return "", refreshErr
	}

	var result struct {
		Access string `json:"access"`
	}
	if err := decodeBody(resp, &result); err != nil {
		return "", err
	}

	c.sess.AccessToken = result.Access
	if err := c.store.Save(c.sess); err != nil {
		log.Warn().Err(err).Msg("failed to persist refreshed session")
	}

	log.Debug().Msg("access token refreshed")

	return result.Access, nil
}

// clearLocked drops both tokens from memory and storage. Callers must
// hold mu.
func (c *Client) clearLocked() {
	c.sess = &session.Session{}
	if err := c.store.Clear(); err != nil {
		log.Warn().Err(err).Msg("failed to clear stored session")
	}
}

// expiringSoon reports whether token is a JWT whose exp claim falls
// within the refresh leeway. The claim is read without verifying the
// signature; only the server's verdict on the token matters.
func expiringSoon(token string) bool {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return time.Now().Add(refreshLeeway).After(exp.Time)
}

// joinURL joins the configured base URL with a request path without
// duplicating separators. Absolute URLs pass through untouched.
func joinURL(base, path string) string {
	if strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://") {
		return path
	}
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(path, "/")
}

func decodeBody(resp *http.Response, out any) error {
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
