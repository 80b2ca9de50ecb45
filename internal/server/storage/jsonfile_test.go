package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

type record struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func collectionPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "records.json")
}

func TestCollection_FirstUseInitializesEmptyFile(t *testing.T) {
	path := collectionPath(t)
	c := NewCollection[record](path)

	items, err := c.Load()
	require.NoError(t, err)
	require.Empty(t, items)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "[]", string(data))
}

func TestCollection_SaveLoadRoundTrip(t *testing.T) {
	c := NewCollection[record](collectionPath(t))

	want := []record{{ID: "1", Name: "a"}, {ID: "2", Name: "b"}}
	require.NoError(t, c.Save(want))

	got, err := c.Load()
	require.NoError(t, err)
	require.Equal(t, want, got)
}

func TestCollection_PreservesInsertionOrder(t *testing.T) {
	c := NewCollection[record](collectionPath(t))

	var items []record
	for _, id := range []string{"3", "1", "2"} {
		items = append(items, record{ID: id})
	}
	require.NoError(t, c.Save(items))

	got, err := c.Load()
	require.NoError(t, err)
	require.Equal(t, []string{"3", "1", "2"}, []string{got[0].ID, got[1].ID, got[2].ID})
}

func TestCollection_CorruptFileIsFatal(t *testing.T) {
	path := collectionPath(t)
	require.NoError(t, os.WriteFile(path, []byte("{definitely not an array"), 0o660))

	c := NewCollection[record](path)
	_, err := c.Load()
	require.Error(t, err)
	require.Contains(t, err.Error(), "decode")
}

func TestCollection_EmptyFileReadsAsEmptyCollection(t *testing.T) {
	path := collectionPath(t)
	require.NoError(t, os.WriteFile(path, nil, 0o660))

	c := NewCollection[record](path)
	items, err := c.Load()
	require.NoError(t, err)
	require.Empty(t, items)
}
