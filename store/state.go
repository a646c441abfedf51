package store

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"gridlearn/model"
)

// FileStore persists the model as an indented JSON document. Update serialises
// load, mutate and save so two rounds never interleave against the same file.
type FileStore struct {
	mu     sync.Mutex
	path   string
	width  int
	height int
}

func NewFileStore(path string, width, height int) *FileStore {
	return &FileStore{
		path:   path,
		width:  width,
		height: height,
	}
}

func (s *FileStore) Path() string {
	return s.path
}

// LoadOrCreate reads the stored model. A missing file yields a fresh model
// which is saved straight away. A file that cannot be decoded, fails
// validation or has different grid dimensions is reported as
// model.ErrMalformedState.
func (s *FileStore) LoadOrCreate() (*model.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadOrCreate()
}

func (s *FileStore) Save(state *model.State) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save(state)
}

// Update applies fn to the stored model and saves the result. Nothing is
// saved when fn fails.
func (s *FileStore) Update(fn func(state *model.State) error) (*model.State, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	state, err := s.loadOrCreate()
	if err != nil {
		return nil, err
	}
	if err := fn(state); err != nil {
		return nil, err
	}
	if err := s.save(state); err != nil {
		return nil, err
	}
	return state, nil
}

func (s *FileStore) loadOrCreate() (*model.State, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		state, err := model.New(s.width, s.height)
		if err != nil {
			return nil, err
		}
		if err := s.save(state); err != nil {
			return nil, err
		}
		return state, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read model state: %w", err)
	}

	decoder := json.NewDecoder(bytes.NewReader(data))
	decoder.DisallowUnknownFields()
	var state model.State
	if err := decoder.Decode(&state); err != nil {
		return nil, fmt.Errorf("failed to decode model state %s: %w: %w", s.path, model.ErrMalformedState, err)
	}
	if err := state.Validate(); err != nil {
		return nil, fmt.Errorf("invalid model state %s: %w", s.path, err)
	}
	if state.Width != s.width || state.Height != s.height {
		return nil, fmt.Errorf("%w: %s holds a %dx%d grid, want %dx%d",
			model.ErrMalformedState, s.path, state.Width, state.Height, s.width, s.height)
	}
	return &state, nil
}

func (s *FileStore) save(state *model.State) error {
	data, err := json.MarshalIndent(state, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode model state: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory: %w", err)
	}
	f, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary state file: %w", err)
	}
	tmp := f.Name()
	defer os.Remove(tmp)

	if _, err := f.Write(append(data, '\n')); err != nil {
		f.Close()
		return fmt.Errorf("failed to write model state: %w", err)
	}
	if err := f.Sync(); err != nil {
		f.Close()
		return fmt.Errorf("failed to sync model state: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close model state: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to replace model state: %w", err)
	}
	return nil
}
