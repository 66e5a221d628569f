package preset

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultPollInterval is how often Watch checks the file when fsnotify is unavailable.
const DefaultPollInterval = time.Second

// Store holds the presets of one file.
// It is safe for concurrent use.
type Store struct {
	path         string
	logger       *slog.Logger
	pollInterval time.Duration

	mu      sync.RWMutex
	presets map[string]Preset
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithLogger sets the logger used to report reloads.
func WithLogger(logger *slog.Logger) StoreOption {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithPollInterval sets the polling fallback interval for Watch.
func WithPollInterval(d time.Duration) StoreOption {
	return func(s *Store) {
		if d > 0 {
			s.pollInterval = d
		}
	}
}

// NewStore loads the presets in path.
func NewStore(path string, opts ...StoreOption) (*Store, error) {
	s := &Store{
		path:         path,
		logger:       slog.New(slog.DiscardHandler),
		pollInterval: DefaultPollInterval,
	}
	for _, opt := range opts {
		opt(s)
	}

	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Path returns the preset file path.
func (s *Store) Path() string {
	return s.path
}

// Get returns the preset with the given name.
func (s *Store) Get(name string) (Preset, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.presets[name]
	return p, ok
}

// Names returns the defined preset names in sorted order.
func (s *Store) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, 0, len(s.presets))
	for name := range s.presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Apply truncates markup with the named preset.
func (s *Store) Apply(name, markup string) (string, error) {
	p, ok := s.Get(name)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrUnknownPreset, name)
	}
	return p.Apply(markup)
}

// Reload reads the preset file again. On failure the current presets are kept.
func (s *Store) Reload() error {
	presets, err := LoadFile(s.path)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.presets = presets
	s.mu.Unlock()

	s.logger.Debug("presets loaded",
		slog.String("path", s.path),
		slog.Int("count", len(presets)))
	return nil
}

// Watch reloads the store whenever the preset file changes. It blocks until
// ctx is done and returns ctx.Err(). Uses fsnotify with a polling fallback.
func (s *Store) Watch(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		s.logger.Debug("fsnotify unavailable, polling preset file", slog.Any("error", err))
		return s.watchPolling(ctx)
	}
	defer watcher.Close()

	// Watch the directory so editors that replace the file are noticed.
	if err := watcher.Add(filepath.Dir(s.path)); err != nil {
		s.logger.Debug("cannot watch preset directory, polling", slog.Any("error", err))
		return s.watchPolling(ctx)
	}

	return s.watchEvents(ctx, watcher)
}

func (s *Store) watchEvents(ctx context.Context, watcher *fsnotify.Watcher) error {
	baseName := filepath.Base(s.path)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != baseName {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			s.reloadLogged()

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			s.logger.Warn("preset watcher error", slog.Any("error", err))
		}
	}
}

func (s *Store) watchPolling(ctx context.Context) error {
	ticker := time.NewTicker(s.pollInterval)
	defer ticker.Stop()

	last := s.stamp()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case <-ticker.C:
			current := s.stamp()
			if current.same(last) {
				continue
			}
			last = current
			s.reloadLogged()
		}
	}
}

// fileStamp identifies a version of the preset file for polling.
type fileStamp struct {
	modTime time.Time
	size    int64
}

func (a fileStamp) same(b fileStamp) bool {
	return a.size == b.size && a.modTime.Equal(b.modTime)
}

func (s *Store) stamp() fileStamp {
	info, err := os.Stat(s.path)
	if err != nil {
		return fileStamp{}
	}
	return fileStamp{modTime: info.ModTime(), size: info.Size()}
}

func (s *Store) reloadLogged() {
	if err := s.Reload(); err != nil {
		s.logger.Warn("preset reload failed, keeping previous presets",
			slog.String("path", s.path),
			slog.Any("error", err))
		return
	}
	s.logger.Info("presets reloaded", slog.String("path", s.path))
}
