// Package store persists registry values to a settings file.
//
// A settings file is a flat mapping from entry key to persisted value in
// JSON, TOML or YAML. Loading is tolerant: a missing file leaves defaults
// in place, and malformed values for individual keys are logged and
// skipped. Only a document that cannot be parsed at all is an error.
package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/dshills/tweakreg/internal/config/registry"
)

// Store reads and writes one settings file.
type Store struct {
	path   string
	format Format
	perm   fs.FileMode
}

// Option configures a Store.
type Option func(*Store)

// WithFormat overrides the format derived from the file extension.
func WithFormat(f Format) Option {
	return func(s *Store) {
		s.format = f
	}
}

// WithFileMode sets the permissions of written files. Default 0o644.
func WithFileMode(perm fs.FileMode) Option {
	return func(s *Store) {
		s.perm = perm
	}
}

// New creates a store for the given path. The format is taken from the
// extension unless WithFormat is given.
func New(path string, opts ...Option) (*Store, error) {
	s := &Store{path: path, format: -1, perm: 0o644}
	for _, opt := range opts {
		opt(s)
	}

	if s.format < 0 {
		f, err := FormatFromPath(path)
		if err != nil {
			return nil, err
		}
		s.format = f
	}
	return s, nil
}

// Path returns the settings file path.
func (s *Store) Path() string {
	return s.path
}

// Format returns the settings file format.
func (s *Store) Format() Format {
	return s.format
}

// Load reads the settings file and applies it to the registry.
// A missing file is not an error.
func (s *Store) Load(reg *registry.Registry, log zerolog.Logger) error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			log.Debug().Str("path", s.path).Msg("settings file not found, using defaults")
			return nil
		}
		return fmt.Errorf("reading settings file %s: %w", s.path, err)
	}

	values, err := Decode(s.format, data)
	if err != nil {
		return s.withPath(err)
	}

	reg.Apply(values, log)
	log.Debug().Str("path", s.path).Int("keys", len(values)).Msg("settings loaded")
	return nil
}

// Save writes the registry's values to the settings file, keeping keys
// of the existing file that the registry does not know.
func (s *Store) Save(reg *registry.Registry) error {
	existing, err := os.ReadFile(s.path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("reading settings file %s: %w", s.path, err)
	}

	data, err := Encode(s.format, existing, reg)
	if err != nil {
		return s.withPath(err)
	}

	return s.write(data)
}

// write replaces the settings file using a temp file and rename.
func (s *Store) write(data []byte) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating settings directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, s.perm); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("setting file mode: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replacing settings file: %w", err)
	}
	return nil
}

func (s *Store) withPath(err error) error {
	var pe *ParseError
	if errors.As(err, &pe) {
		pe.Path = s.path
	}
	return err
}
