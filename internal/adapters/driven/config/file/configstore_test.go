package file

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfigStore_Success(t *testing.T) {
	tmpDir := t.TempDir()

	store, err := NewConfigStore(tmpDir)

	require.NoError(t, err)
	require.NotNil(t, store)
	assert.Equal(t, filepath.Join(tmpDir, "config.toml"), store.Path())
}

func TestNewConfigStore_CreatesNestedDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "a", "b")

	_, err := NewConfigStore(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
	assert.Equal(t, os.FileMode(0700), info.Mode().Perm())
}

func TestNewConfigStore_MkdirError(t *testing.T) {
	_, err := NewConfigStore("/dev/null/postador")
	assert.Error(t, err)
}

func TestNewConfigStore_CorruptedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("[api\nbase_url = "), 0600))

	_, err := NewConfigStore(dir)
	assert.Error(t, err)
}

func TestConfigStore_TypedGetters(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	require.NoError(t, store.Set("api.base_url", "http://localhost:5000"))
	require.NoError(t, store.Set("api.rate_limit", 2.5))
	require.NoError(t, store.Set("poll.interval_ms", int64(30000)))
	require.NoError(t, store.Set("poll.while_unauthenticated", true))

	assert.Equal(t, "http://localhost:5000", store.GetString("api.base_url"))
	assert.InDelta(t, 2.5, store.GetFloat("api.rate_limit"), 0.0001)
	assert.Equal(t, 30000, store.GetInt("poll.interval_ms"))
	assert.InDelta(t, 30000.0, store.GetFloat("poll.interval_ms"), 0.0001)
	assert.True(t, store.GetBool("poll.while_unauthenticated"))
}

func TestConfigStore_TypedGetters_MissingOrWrongType(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("key", "text"))

	assert.Equal(t, "", store.GetString("missing"))
	assert.Equal(t, 0, store.GetInt("key"))
	assert.Zero(t, store.GetFloat("key"))
	assert.False(t, store.GetBool("key"))

	_, ok := store.Get("missing")
	assert.False(t, ok)
}

func TestConfigStore_PersistsAsTables(t *testing.T) {
	dir := t.TempDir()
	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	require.NoError(t, store.Set("api.base_url", "http://example.test"))
	require.NoError(t, store.Set("display.time_zone", "UTC"))

	raw, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Contains(t, string(raw), "[api]")
	assert.Contains(t, string(raw), "[display]")

	info, err := os.Stat(store.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0600), info.Mode().Perm())

	reopened, err := NewConfigStore(dir)
	require.NoError(t, err)
	assert.Equal(t, "http://example.test", reopened.GetString("api.base_url"))
	assert.Equal(t, "UTC", reopened.GetString("display.time_zone"))
}

func TestConfigStore_LoadEmptyAndCommentOnly(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName), []byte("# nothing here\n"), 0600))

	store, err := NewConfigStore(dir)
	require.NoError(t, err)

	_, ok := store.Get("api.base_url")
	assert.False(t, ok)
}

func TestFlattenAndNestMap(t *testing.T) {
	nested := map[string]any{
		"api":  map[string]any{"base_url": "u", "timeout": "5s"},
		"flat": int64(1),
	}

	flat := flattenMap(nested, "")
	assert.Equal(t, map[string]any{"api.base_url": "u", "api.timeout": "5s", "flat": int64(1)}, flat)
	assert.Equal(t, nested, nestMap(flat))
}

func TestConfigStore_Watch_ExternalEdit(t *testing.T) {
	dir := t.TempDir()
	store, err := NewConfigStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Set("api.base_url", "http://before.test"))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	require.NoError(t, store.Watch(ctx, func() { calls.Add(1) }))

	edited := "[api]\nbase_url = \"http://after.test\"\n"
	require.NoError(t, os.WriteFile(store.Path(), []byte(edited), 0600))

	require.Eventually(t, func() bool {
		return store.GetString("api.base_url") == "http://after.test"
	}, 3*time.Second, 20*time.Millisecond)
	assert.Equal(t, int32(1), calls.Load())
}

func TestConfigStore_Watch_IgnoresOwnWrites(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var calls atomic.Int32
	require.NoError(t, store.Watch(ctx, func() { calls.Add(1) }))

	require.NoError(t, store.Set("poll.interval", "10s"))

	time.Sleep(3 * DefaultDebounce)
	assert.Equal(t, int32(0), calls.Load())
}

func TestConfigStore_Watch_KeepsValuesOnParseError(t *testing.T) {
	store, err := NewConfigStore(t.TempDir())
	require.NoError(t, err)
	require.NoError(t, store.Set("api.base_url", "http://kept.test"))

	assert.False(t, writeAndReload(t, store, "[api\n"))
	assert.Equal(t, "http://kept.test", store.GetString("api.base_url"))
}

func writeAndReload(t *testing.T, store *ConfigStore, content string) bool {
	t.Helper()
	require.NoError(t, os.WriteFile(store.Path(), []byte(content), 0600))
	return store.reload()
}
