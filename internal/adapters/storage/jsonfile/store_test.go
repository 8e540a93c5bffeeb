package jsonfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/apperrors"
)

type testRecord struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func TestStoreSaveLoadRoundTrip(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	in := []testRecord{{ID: "A1", Name: "first"}, {ID: "A2", Name: "second"}}
	require.NoError(t, store.Save("things", in))

	var out []testRecord
	require.NoError(t, store.Load("things", &out))
	assert.Equal(t, in, out)

	// The collection lands as a plain JSON file under the data directory.
	_, err = os.Stat(filepath.Join(store.Dir(), "things.json"))
	assert.NoError(t, err)
}

func TestStoreLoadMissingCollection(t *testing.T) {
	store, err := NewStore(t.TempDir())
	require.NoError(t, err)

	out := []testRecord{{ID: "seed"}}
	require.NoError(t, store.Load("nothing-here", &out))

	// An absent file must leave the destination untouched.
	assert.Equal(t, []testRecord{{ID: "seed"}}, out)
}

func TestStoreLoadEmptyFile(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "things.json"), []byte("  \n"), 0o644))

	var out []testRecord
	require.NoError(t, store.Load("things", &out))
	assert.Empty(t, out)
}

func TestStoreLoadCorruptFile(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "things.json"), []byte("{not json"), 0o644))

	var out []testRecord
	err = store.Load("things", &out)
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrStorage)
}

func TestStoreSaveReplacesWithoutLeftovers(t *testing.T) {
	dir := t.TempDir()
	store, err := NewStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.Save("things", []testRecord{{ID: "A1"}}))
	require.NoError(t, store.Save("things", []testRecord{{ID: "B1"}, {ID: "B2"}}))

	var out []testRecord
	require.NoError(t, store.Load("things", &out))
	assert.Equal(t, []testRecord{{ID: "B1"}, {ID: "B2"}}, out)

	// Every save goes through a temp file that must be renamed away.
	leftovers, err := filepath.Glob(filepath.Join(dir, "*.tmp"))
	require.NoError(t, err)
	assert.Empty(t, leftovers)
}

func TestNextSequentialID(t *testing.T) {
	tests := []struct {
		name     string
		prefix   string
		existing []string
		want     string
	}{
		{name: "empty collection", prefix: "PAY", existing: nil, want: "PAY001"},
		{name: "continues sequence", prefix: "PAY", existing: []string{"PAY001", "PAY002"}, want: "PAY003"},
		{name: "skips past gaps", prefix: "PAY", existing: []string{"PAY001", "PAY005"}, want: "PAY006"},
		{name: "ignores other prefixes", prefix: "PAY", existing: []string{"REC009", "PAY002"}, want: "PAY003"},
		{name: "ignores malformed suffixes", prefix: "PAY", existing: []string{"PAYX", "PAY-old", "PAY002"}, want: "PAY003"},
		{name: "grows past three digits", prefix: "REC", existing: []string{"REC999"}, want: "REC1000"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, nextSequentialID(tt.prefix, tt.existing))
		})
	}
}
