package workspace

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pescuma/eotracker/lib/consoles"
	"github.com/pescuma/eotracker/lib/sources"
)

const payload = `[
	{"id": "eo-1", "name": "First", "status": "Active", "signedDate": "2025-02-01", "forecastImpact": 4, "forecastStall": 0.1},
	{"id": "eo-2", "name": "Second", "status": "Pending", "signedDate": "2025-01-20"},
	{"id": "eo-3", "name": "Third", "status": "Rescinded", "signedDate": "2025-01-21", "forecastImpact": 1, "forecastStall": 1}
]`

func newMemoryWorkspace(t *testing.T) *Workspace {
	ws, err := NewWorkspaceWithConsole(":memory:", consoles.NewWriterConsole(io.Discard))
	require.Nil(t, err)
	t.Cleanup(func() { _ = ws.Close() })
	return ws
}

func writePayload(t *testing.T) string {
	file := filepath.Join(t.TempDir(), "eos.json")
	require.Nil(t, os.WriteFile(file, []byte(payload), 0o600))
	return file
}

func TestOpenSourceDefaultsToBundled(t *testing.T) {
	t.Parallel()

	ws := newMemoryWorkspace(t)

	source, err := ws.OpenSource("", nil)
	require.Nil(t, err)
	assert.Equal(t, sources.BundledName, source.Name())
}

func TestOpenSourceUsesConfig(t *testing.T) {
	t.Parallel()

	ws := newMemoryWorkspace(t)
	file := writePayload(t)

	changed, err := ws.SetConfig(ConfigSource, file)
	require.Nil(t, err)
	assert.True(t, changed)

	changed, err = ws.SetConfig(ConfigSource, file)
	require.Nil(t, err)
	assert.False(t, changed)

	v, ok, err := ws.GetConfig(ConfigSource)
	require.Nil(t, err)
	assert.True(t, ok)
	assert.Equal(t, file, v)

	orders, err := ws.LoadOrders(context.Background(), "", nil)
	require.Nil(t, err)
	assert.Equal(t, []string{"eo-1", "eo-3"}, orders.IDs())
}

func TestImportThenLoadFromWorkspace(t *testing.T) {
	t.Parallel()

	ws := newMemoryWorkspace(t)

	_, err := ws.LoadOrders(context.Background(), sources.WorkspaceName, nil)
	assert.NotNil(t, err)

	snapshot, err := ws.Import(context.Background(), writePayload(t), nil)
	require.Nil(t, err)
	assert.Equal(t, 2, snapshot.Orders)
	assert.Equal(t, 1, snapshot.Rejected)

	orders, err := ws.LoadOrders(context.Background(), sources.WorkspaceName, nil)
	require.Nil(t, err)
	assert.Equal(t, []string{"eo-1", "eo-3"}, orders.IDs())

	snapshots, err := ws.ListSnapshots()
	require.Nil(t, err)
	require.Len(t, snapshots, 1)
	assert.Equal(t, snapshot.ID, snapshots[0].ID)
}

func TestImportRefusesWorkspaceSource(t *testing.T) {
	t.Parallel()

	ws := newMemoryWorkspace(t)

	_, err := ws.Import(context.Background(), sources.WorkspaceName, nil)
	assert.NotNil(t, err)
}

func TestUnknownWorkspaceFile(t *testing.T) {
	t.Parallel()

	_, err := NewWorkspaceWithConsole("workspace.txt", consoles.NewWriterConsole(io.Discard))
	assert.NotNil(t, err)
}

func TestImportLogsWithSourcePrefix(t *testing.T) {
	t.Parallel()

	out := &bytes.Buffer{}
	ws, err := NewWorkspaceWithConsole(":memory:", consoles.NewWriterConsole(out))
	require.Nil(t, err)
	defer ws.Close()

	file := writePayload(t)

	_, err = ws.Import(context.Background(), file, nil)
	require.Nil(t, err)

	assert.Contains(t, out.String(), "] "+file+": Ignoring record 1 (eo-2): unknown status")
	assert.Contains(t, out.String(), "] "+file+": Imported 2 orders (1 ignored)")

	out.Reset()
	_, err = ws.LoadOrders(context.Background(), sources.WorkspaceName, nil)
	require.Nil(t, err)
	assert.NotContains(t, out.String(), file+": ")
}
