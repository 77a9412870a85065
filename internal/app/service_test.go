package app

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoffmabc/arch-idl/internal/domain/idl"
	"github.com/hoffmabc/arch-idl/internal/ports"
)

// countingGenerator records how many times Generate ran.
type countingGenerator struct {
	calls int
}

func (g *countingGenerator) Generate(source []byte) (*idl.Document, error) {
	g.calls++
	return &idl.Document{
		Version:      idl.Version,
		Name:         "solana_program",
		Instructions: []idl.Instruction{},
		Accounts:     []idl.AccountDef{},
		Types:        []idl.TypeDef{},
		Errors:       []idl.ErrorDef{},
	}, nil
}

// memStore is an in-memory ports.Store for cache behavior tests.
type memStore struct {
	entries map[string]*ports.CachedIdl
}

func newMemStore() *memStore {
	return &memStore{entries: make(map[string]*ports.CachedIdl)}
}

func (s *memStore) SaveIdl(entry *ports.CachedIdl) error {
	s.entries[entry.Path] = entry
	return nil
}

func (s *memStore) LoadIdl(path string) (*ports.CachedIdl, error) {
	return s.entries[path], nil
}

func (s *memStore) List() ([]*ports.CachedIdl, error) { return nil, nil }
func (s *memStore) Wipe() error                       { return nil }
func (s *memStore) Close() error                      { return nil }

func writeSource(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lib.rs")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestGenerateFile_CachesBySourceHash(t *testing.T) {
	gen := &countingGenerator{}
	store := newMemStore()
	svc := NewService(gen, store, nil)

	path := writeSource(t, "pub struct State { pub a: u8 }")

	first, err := svc.GenerateFile(path)
	require.NoError(t, err)
	assert.False(t, first.FromCache)
	assert.Equal(t, 1, gen.calls)

	// Unchanged source: served from cache, no second extraction.
	second, err := svc.GenerateFile(path)
	require.NoError(t, err)
	assert.True(t, second.FromCache)
	assert.Equal(t, 1, gen.calls)
	assert.Equal(t, first.Document.Name, second.Document.Name)
}

func TestGenerateFile_RegeneratesOnSourceChange(t *testing.T) {
	gen := &countingGenerator{}
	store := newMemStore()
	svc := NewService(gen, store, nil)

	path := writeSource(t, "pub struct State { pub a: u8 }")

	_, err := svc.GenerateFile(path)
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(path, []byte("pub struct State { pub b: u16 }"), 0644))

	res, err := svc.GenerateFile(path)
	require.NoError(t, err)
	assert.False(t, res.FromCache)
	assert.Equal(t, 2, gen.calls)
}

func TestGenerateFile_NoStoreAlwaysGenerates(t *testing.T) {
	gen := &countingGenerator{}
	svc := NewService(gen, nil, nil)

	path := writeSource(t, "pub struct State { pub a: u8 }")

	for i := 0; i < 3; i++ {
		res, err := svc.GenerateFile(path)
		require.NoError(t, err)
		assert.False(t, res.FromCache)
	}
	assert.Equal(t, 3, gen.calls)
}

func TestGenerateFile_MissingFile(t *testing.T) {
	svc := NewService(&countingGenerator{}, nil, nil)
	_, err := svc.GenerateFile("/does/not/exist.rs")
	assert.Error(t, err)
}

func TestWatch_RequiresWatcher(t *testing.T) {
	svc := NewService(&countingGenerator{}, nil, nil)
	assert.Error(t, svc.Watch(t.TempDir(), func(string, *Result, error) {}))
	assert.NoError(t, svc.Stop())
}

func TestIdlOutputPath(t *testing.T) {
	assert.Equal(t, "/src/lib.idl.json", IdlOutputPath("/src/lib.rs"))
	assert.Equal(t, "program.idl.json", IdlOutputPath("program.rs"))
}
