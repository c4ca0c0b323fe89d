package memory

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pders01/mnemos/internal/config"
	"github.com/pders01/mnemos/internal/logger"
)

const (
	EmptyLongTerm  = "Long-term memory is empty."
	EmptyShortTerm = "Short-term memory is empty."

	// documentSeparator joins long- and short-term memory when both are read
	documentSeparator = "\n\n---\n\n"
)

// Kind selects which memory document to read
type Kind string

const (
	KindAll   Kind = "all"
	KindLong  Kind = "long"
	KindShort Kind = "short"
)

// ParseKind validates a memory kind; empty means all
func ParseKind(s string) (Kind, error) {
	switch k := Kind(strings.ToLower(s)); k {
	case "":
		return KindAll, nil
	case KindAll, KindLong, KindShort:
		return k, nil
	default:
		return "", fmt.Errorf("%w: %q (must be: all, long, short)", ErrInvalidKind, s)
	}
}

// IncludesLong reports whether the kind covers the long-term document
func (k Kind) IncludesLong() bool { return k == KindAll || k == KindLong }

// IncludesShort reports whether the kind covers the short-term document
func (k Kind) IncludesShort() bool { return k == KindAll || k == KindShort }

// Mode selects how a section update is applied
type Mode string

const (
	ModeReplace Mode = "replace"
	ModeAppend  Mode = "append"
)

// ParseMode validates an update mode; empty means replace
func ParseMode(s string) (Mode, error) {
	switch m := Mode(strings.ToLower(s)); m {
	case "":
		return ModeReplace, nil
	case ModeReplace, ModeAppend:
		return m, nil
	default:
		return "", fmt.Errorf("%w: %q (must be: replace, append)", ErrInvalidMode, s)
	}
}

// Store reads and writes the two memory documents of one project.
// Every operation reads the whole file and writes the whole file back.
type Store struct {
	cfg *config.Config
	log *slog.Logger
	now func() time.Time
}

// Option configures a Store
type Option func(*Store)

// WithLogger sets the logger used for soft failures
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		s.log = l
	}
}

// WithClock overrides the time source used for markers and cutoffs
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// NewStore creates a Store for the project described by cfg
func NewStore(cfg *config.Config, opts ...Option) *Store {
	s := &Store{
		cfg: cfg,
		log: logger.Nop(),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) Config() *config.Config { return s.cfg }
func (s *Store) Logger() *slog.Logger   { return s.log }
func (s *Store) Now() time.Time         { return s.now() }

// LoadLongTerm returns the raw long-term document
func (s *Store) LoadLongTerm() (string, error) {
	return readDocument(s.cfg.LongTermPath())
}

// LoadShortTerm returns the raw short-term document
func (s *Store) LoadShortTerm() (string, error) {
	return readDocument(s.cfg.ShortTermPath())
}

// ReadLongTerm returns the whole long-term document, or the named section when
// section is not empty.
func (s *Store) ReadLongTerm(section string) (string, error) {
	content, err := s.LoadLongTerm()
	if err != nil {
		return "", err
	}
	if section == "" {
		if strings.TrimSpace(content) == "" {
			return EmptyLongTerm, nil
		}
		return content, nil
	}
	return ReadSection(content, section)
}

// ReadShortTerm returns the whole short-term document
func (s *Store) ReadShortTerm() (string, error) {
	content, err := s.LoadShortTerm()
	if err != nil {
		return "", err
	}
	if strings.TrimSpace(content) == "" {
		return EmptyShortTerm, nil
	}
	return content, nil
}

// Read returns one or both documents. section only applies to long-term memory.
func (s *Store) Read(kind Kind, section string) (string, error) {
	switch kind {
	case KindShort:
		return s.ReadShortTerm()
	case KindLong:
		return s.ReadLongTerm(section)
	case KindAll, "":
		long, err := s.ReadLongTerm("")
		if err != nil {
			return "", err
		}
		short, err := s.ReadShortTerm()
		if err != nil {
			return "", err
		}
		return long + documentSeparator + short, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidKind, kind)
	}
}

// ReplaceSection replaces the body of a configured long-term section
func (s *Store) ReplaceSection(name, content string) error {
	return s.editSection(name, func(doc string, now time.Time) (string, error) {
		return ReplaceSection(doc, name, content, now)
	})
}

// AppendSection appends content to a configured long-term section
func (s *Store) AppendSection(name, content string) error {
	return s.editSection(name, func(doc string, now time.Time) (string, error) {
		return AppendSection(doc, name, content, now)
	})
}

// Update applies content to a section with the given mode and returns a
// result message.
func (s *Store) Update(name, content string, mode Mode) (string, error) {
	switch mode {
	case ModeReplace, "":
		if err := s.ReplaceSection(name, content); err != nil {
			return "", err
		}
		return fmt.Sprintf("Long-term memory [%s] updated.", name), nil
	case ModeAppend:
		if err := s.AppendSection(name, content); err != nil {
			return "", err
		}
		return fmt.Sprintf("Long-term memory [%s] appended.", name), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidMode, mode)
	}
}

// WriteShortTerm replaces the short-term document, creating its directory
func (s *Store) WriteShortTerm(content string) error {
	path := s.cfg.ShortTermPath()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create memory directory: %w", err)
	}
	return writeFileAtomic(path, []byte(content))
}

func (s *Store) editSection(name string, edit func(doc string, now time.Time) (string, error)) error {
	if !s.cfg.IsValidSection(name) {
		return fmt.Errorf("%w: %q (valid: %s)", ErrInvalidSection, name, strings.Join(s.cfg.Memory.ValidSections, ", "))
	}

	path := s.cfg.LongTermPath()
	doc, err := readDocument(path)
	if err != nil {
		return err
	}

	updated, err := edit(doc, s.now())
	if err != nil {
		return err
	}

	s.log.Debug("writing long-term memory", "section", name, "path", path)
	return writeFileAtomic(path, []byte(updated))
}

func readDocument(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrDocumentMissing, path)
		}
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}
