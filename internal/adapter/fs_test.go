package adapter

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	m "cobble.dev/pkg/cobble/internal/model"
)

func TestLocalFileAdapter_WriteThenRead(t *testing.T) {
	adapter := NewLocalFileAdapter()
	path := m.Path(filepath.Join(t.TempDir(), "prog.cbl"))

	require.NoError(t, adapter.WriteFile(path, []byte("DISPLAY X.\n"), 0o644))

	data, err := adapter.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, []byte("DISPLAY X.\n"), data)

	info, err := adapter.FileInfo(path)
	require.NoError(t, err)
	require.Equal(t, int64(11), info.Size())
}

func TestLocalFileAdapter_ReadMissingFile(t *testing.T) {
	adapter := NewLocalFileAdapter()

	_, err := adapter.ReadFile(m.Path(filepath.Join(t.TempDir(), "missing.cbl")))
	require.ErrorIs(t, err, os.ErrNotExist)
}
