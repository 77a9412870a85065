package bbolt

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hoffmabc/arch-idl/internal/domain/idl"
	"github.com/hoffmabc/arch-idl/internal/ports"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(filepath.Join(t.TempDir(), "cache.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func testEntry(path string) *ports.CachedIdl {
	return &ports.CachedIdl{
		Path:        path,
		SourceHash:  "deadbeef",
		GeneratedAt: 1700000000,
		Document: &idl.Document{
			Version:      idl.Version,
			Name:         "token_program",
			Instructions: []idl.Instruction{},
			Accounts:     []idl.AccountDef{},
			Types:        []idl.TypeDef{},
			Errors:       []idl.ErrorDef{idl.NewError(9001)},
		},
	}
}

func TestStore_SaveLoadRoundTrip(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.SaveIdl(testEntry("/src/lib.rs")))

	got, err := s.LoadIdl("/src/lib.rs")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "deadbeef", got.SourceHash)
	assert.Equal(t, "token_program", got.Document.Name)
	require.Len(t, got.Document.Errors, 1)
	assert.Equal(t, int64(9001), got.Document.Errors[0].Code)
}

func TestStore_LoadMissingReturnsNil(t *testing.T) {
	s := newTestStore(t)

	got, err := s.LoadIdl("/nonexistent.rs")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestStore_SaveOverwrites(t *testing.T) {
	s := newTestStore(t)

	first := testEntry("/src/lib.rs")
	require.NoError(t, s.SaveIdl(first))

	second := testEntry("/src/lib.rs")
	second.SourceHash = "cafebabe"
	require.NoError(t, s.SaveIdl(second))

	got, err := s.LoadIdl("/src/lib.rs")
	require.NoError(t, err)
	assert.Equal(t, "cafebabe", got.SourceHash)
}

func TestStore_ListAndWipe(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.SaveIdl(testEntry("/a.rs")))
	require.NoError(t, s.SaveIdl(testEntry("/b.rs")))

	entries, err := s.List()
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "/a.rs", entries[0].Path)
	assert.Equal(t, "/b.rs", entries[1].Path)

	require.NoError(t, s.Wipe())
	entries, err = s.List()
	require.NoError(t, err)
	assert.Empty(t, entries)

	// Wiping an empty store is not an error.
	require.NoError(t, s.Wipe())
}

func TestStore_RejectsUnkeyedEntry(t *testing.T) {
	s := newTestStore(t)
	assert.Error(t, s.SaveIdl(nil))
	assert.Error(t, s.SaveIdl(&ports.CachedIdl{}))
}
