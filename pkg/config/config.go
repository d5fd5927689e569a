// Package config persists the timectl document: one JSON file holding user
// settings and the project/issue data.
//
// The store reads the whole file at the start of an operation and rewrites the
// whole file at the end. There is no locking. Two processes that load and save
// concurrently will lose one side's changes, the last writer wins.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/tidwall/jsonc"

	"github.com/harrisonrobin/timectl/pkg/value"
)

const (
	appDir     = ".timectl"
	configFile = "config.json"

	// EnvConfigPath overrides DefaultPath when set.
	EnvConfigPath = "TIMECTL_CONFIG"
)

// ErrMalformedStore means the file exists but does not hold a JSON object.
var ErrMalformedStore = errors.New("config: malformed store")

// DefaultPath returns ~/.timectl/config.json.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, appDir, configFile), nil
}

// ResolvePath picks the document location: explicit flag value, then
// $TIMECTL_CONFIG, then DefaultPath.
func ResolvePath(flagValue string) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if env := os.Getenv(EnvConfigPath); env != "" {
		return env, nil
	}
	return DefaultPath()
}

type Store struct {
	Path   string
	logger *slog.Logger
}

type Option func(*Store)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

func New(path string, opts ...Option) *Store {
	s := &Store{
		Path:   path,
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Load reads the document. A missing file yields an empty document and
// creates the containing directory; it does not create the file.
//
// Comments and trailing commas are accepted in the file but are not kept:
// the next Save writes plain JSON.
func (s *Store) Load() (*Document, error) {
	data, err := os.ReadFile(s.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			if err := s.ensureDir(); err != nil {
				return nil, err
			}
			s.logger.Debug("config file not found, using empty document", "path", s.Path)
			return Empty(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	v, err := value.Parse(jsonc.ToJSON(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMalformedStore, s.Path, err)
	}
	root, ok := v.AsMap()
	if !ok {
		return nil, fmt.Errorf("%w: %s: top level is a %s, not an object", ErrMalformedStore, s.Path, v.Kind())
	}

	s.logger.Debug("loaded config", "path", s.Path, "keys", root.Len())
	return &Document{root: root}, nil
}

// Save replaces the file with doc. The content goes to a temporary file in the
// same directory first and is renamed into place, so an interrupted save leaves
// the previous document intact.
func (s *Store) Save(doc *Document) error {
	data, err := doc.Encode()
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	if err := s.ensureDir(); err != nil {
		return err
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.Path), "."+filepath.Base(s.Path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temporary config file: %w", err)
	}
	tmpPath := tmp.Name()
	success := false
	defer func() {
		if !success {
			os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write config: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to sync config: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temporary config file: %w", err)
	}
	if err := os.Chmod(tmpPath, 0600); err != nil {
		return fmt.Errorf("failed to set config permissions: %w", err)
	}
	if err := os.Rename(tmpPath, s.Path); err != nil {
		return fmt.Errorf("failed to replace config: %w", err)
	}
	success = true

	s.logger.Debug("saved config", "path", s.Path, "bytes", len(data))
	return nil
}

// Exists reports whether a document is already stored.
func (s *Store) Exists() (bool, error) {
	_, err := os.Stat(s.Path)
	if err == nil {
		return true, nil
	}
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	return false, fmt.Errorf("failed to check config: %w", err)
}

// InitializeDefault overwrites whatever is stored with Default(). Callers
// confirm with the user first; the store does not ask.
func (s *Store) InitializeDefault() (*Document, error) {
	doc := Default()
	if err := s.Save(doc); err != nil {
		return nil, err
	}
	s.logger.Debug("initialized default config", "path", s.Path)
	return doc, nil
}

func (s *Store) ensureDir() error {
	dir := filepath.Dir(s.Path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	return nil
}
