package testutil

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"video-transcriber/internal/app/util/files"
)

// RecordingTempStore wraps a DirStore in t.TempDir() and records every
// allocation and release.
type RecordingTempStore struct {
	inner *files.DirStore

	mu        sync.Mutex
	allocated []string
	releases  [][]string
	allocErr  map[string]error
}

func NewRecordingTempStore(t *testing.T) *RecordingTempStore {
	t.Helper()
	inner, err := files.NewDirStore(t.TempDir(), nil)
	require.NoError(t, err)
	return &RecordingTempStore{inner: inner, allocErr: map[string]error{}}
}

// FailAllocation makes AllocatePath fail for kind
func (s *RecordingTempStore) FailAllocation(kind string, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.allocErr[kind] = err
}

func (s *RecordingTempStore) AllocatePath(kind, ext string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.allocErr[kind]; err != nil {
		return "", err
	}
	path, err := s.inner.AllocatePath(kind, ext)
	if err != nil {
		return "", err
	}
	s.allocated = append(s.allocated, path)
	return path, nil
}

func (s *RecordingTempStore) Release(paths ...string) {
	s.mu.Lock()
	s.releases = append(s.releases, append([]string(nil), paths...))
	s.mu.Unlock()
	s.inner.Release(paths...)
}

// Dir returns the scratch directory
func (s *RecordingTempStore) Dir() string {
	return s.inner.Dir()
}

// Allocated returns every path handed out so far
func (s *RecordingTempStore) Allocated() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.allocated...)
}

// Releases returns the arguments of every Release call
func (s *RecordingTempStore) Releases() [][]string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([][]string, len(s.releases))
	copy(out, s.releases)
	return out
}

// ReleaseCounts returns how many times each path was released
func (s *RecordingTempStore) ReleaseCounts() map[string]int {
	s.mu.Lock()
	defer s.mu.Unlock()
	counts := make(map[string]int)
	for _, call := range s.releases {
		for _, p := range call {
			counts[p]++
		}
	}
	return counts
}
