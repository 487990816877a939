package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"

	"github.com/salasys/roomctl/internal/models"
)

// Sentinel errors
var (
	// ErrNoSession is returned when no session has been persisted.
	ErrNoSession = errors.New("no session stored")
)

const sessionFile = "session.json"

// Session is the token pair obtained at login plus the user it belongs
// to. The in-memory copy held by the API client is the source of truth
// during a request; the persisted copy exists so a session survives
// process restarts.
type Session struct {
	AccessToken  string       `json:"access,omitempty"`
	RefreshToken string       `json:"refresh,omitempty"`
	User         *models.User `json:"user,omitempty"`
}

// HasAccessToken reports whether an access token is held.
func (s *Session) HasAccessToken() bool {
	return s != nil && s.AccessToken != ""
}

// HasRefreshToken reports whether a refresh token is held.
func (s *Session) HasRefreshToken() bool {
	return s != nil && s.RefreshToken != ""
}

// Store persists the session on the local filesystem.
type Store struct {
	baseDir string
}

// NewStore creates a session store rooted at baseDir.
// If baseDir is empty, uses ~/.roomctl/
func NewStore(baseDir string) (*Store, error) {
	if baseDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		baseDir = filepath.Join(home, ".roomctl")
	}

	if err := os.MkdirAll(baseDir, 0700); err != nil {
		return nil, fmt.Errorf("failed to create session directory: %w", err)
	}

	log.Debug().Str("baseDir", baseDir).Msg("session store initialized")

	return &Store{baseDir: baseDir}, nil
}

// Load reads the persisted session. Returns ErrNoSession when nothing
// has been stored yet.
func (s *Store) Load() (*Session, error) {
	data, err := os.ReadFile(s.path())
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrNoSession
		}
		return nil, fmt.Errorf("failed to read session: %w", err)
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, fmt.Errorf("failed to parse session: %w", err)
	}

	return &sess, nil
}

// Save writes the session atomically with 0600 permissions.
func (s *Store) Save(sess *Session) error {
	data, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	// Write to temp file first
	path := s.path()
	tempPath := path + ".tmp"

	if err := os.WriteFile(tempPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write session: %w", err)
	}

	// Atomic rename
	if err := os.Rename(tempPath, path); err != nil {
		os.Remove(tempPath)
		return fmt.Errorf("failed to save session: %w", err)
	}

	log.Debug().Str("path", path).Msg("session saved")

	return nil
}

// Clear removes the persisted session. Clearing an absent session is
// not an error.
func (s *Store) Clear() error {
	if err := os.Remove(s.path()); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to clear session: %w", err)
	}

	log.Debug().Msg("session cleared")

	return nil
}

func (s *Store) path() string {
	return filepath.Join(s.baseDir, sessionFile)
}
