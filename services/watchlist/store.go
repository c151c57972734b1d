package watchlist

import (
	"encoding/json"
	"errors"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/spf13/afero"
)

const storeFile = "watchlist.json"

var (
	ErrIDRequired         = errors.New("watchlist: item id is required")
	ErrStorageDirRequired = errors.New("watchlist: storage directory is required")
)

// Store is the persisted set of watchlisted item ids. Membership is loaded
// once at construction and the full set is rewritten on every toggle, so the
// file always mirrors in-memory state exactly.
type Store struct {
	fs   afero.Fs
	path string

	mu  sync.Mutex
	ids map[string]struct{}
}

// NewStore loads the watchlist from dir. A missing file is an empty
// watchlist, not an error.
func NewStore(fs afero.Fs, dir string) (*Store, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, ErrStorageDirRequired
	}
	if fs == nil {
		fs = afero.NewOsFs()
	}
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("watchlist: create storage dir: %w", err)
	}

	s := &Store{
		fs:   fs,
		path: filepath.Join(dir, storeFile),
		ids:  make(map[string]struct{}),
	}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) load() error {
	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		if errors.Is(err, afero.ErrFileNotFound) {
			return nil
		}
		return fmt.Errorf("watchlist: read %s: %w", s.path, err)
	}

	var ids []string
	if err := json.Unmarshal(data, &ids); err != nil {
		return fmt.Errorf("watchlist: parse %s: %w", s.path, err)
	}
	for _, id := range ids {
		s.ids[id] = struct{}{}
	}
	return nil
}

// Toggle flips membership for id and flushes the whole set. It returns the
// new membership state.
func (s *Store) Toggle(id string) (bool, error) {
	if strings.TrimSpace(id) == "" {
		return false, ErrIDRequired
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	_, present := s.ids[id]
	if present {
		delete(s.ids, id)
	} else {
		s.ids[id] = struct{}{}
	}
	if err := s.flushLocked(); err != nil {
		// Roll back so memory and disk stay in agreement.
		if present {
			s.ids[id] = struct{}{}
		} else {
			delete(s.ids, id)
		}
		return present, err
	}
	return !present, nil
}

// Contains reports membership for id.
func (s *Store) Contains(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.ids[id]
	return ok
}

// IDs returns the current membership, sorted for stable output.
func (s *Store) IDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.idsLocked()
}

// Members returns membership as a set for row computation.
func (s *Store) Members() map[string]struct{} {
	s.mu.Lock()
	defer s.mu.Unlock()
	members := make(map[string]struct{}, len(s.ids))
	for id := range s.ids {
		members[id] = struct{}{}
	}
	return members
}

func (s *Store) idsLocked() []string {
	ids := make([]string, 0, len(s.ids))
	for id := range s.ids {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// flushLocked overwrites the persisted file with the full membership via a
// temp file rename. Callers hold s.mu.
func (s *Store) flushLocked() error {
	data, err := json.MarshalIndent(s.idsLocked(), "", "  ")
	if err != nil {
		return fmt.Errorf("watchlist: encode: %w", err)
	}
	tmp := s.path + ".tmp"
	if err := afero.WriteFile(s.fs, tmp, data, 0o644); err != nil {
		return fmt.Errorf("watchlist: write %s: %w", tmp, err)
	}
	if err := s.fs.Rename(tmp, s.path); err != nil {
		_ = s.fs.Remove(tmp)
		return fmt.Errorf("watchlist: replace %s: %w", s.path, err)
	}
	return nil
}
