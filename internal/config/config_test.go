package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/philipparndt/arruler/internal/tracking"
)

func TestLoad_WithValidConfigFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	cfg := `
logLevel: debug
window:
  width: 640
tracking:
  hitTest: surface
  selectionFactor: 1.5
  showFeaturePoints: false
watch:
  debounce: 1s
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "arruler.yaml"), []byte(cfg), 0644))

	c, err := Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "debug", c.LogLevel)
	assert.Equal(t, 640, c.WindowWidth)
	assert.Equal(t, 800, c.WindowHeight)
	assert.Equal(t, tracking.ExistingSurface, c.Tracking.HitTest)
	assert.Equal(t, 1.5, c.Tracking.SelectionFactor)
	assert.False(t, c.ShowFeaturePoints)
	assert.Equal(t, time.Second, c.WatchDebounce)
	assert.Equal(t, filepath.Join(dir, "arruler.yaml"), ConfigFileUsed())
}

func TestLoad_DefaultValues(t *testing.T) {
	t.Cleanup(viper.Reset)

	c, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "info", c.LogLevel)
	assert.Equal(t, 1200, c.WindowWidth)
	assert.Equal(t, 800, c.WindowHeight)
	assert.Equal(t, tracking.FeaturePoint, c.Tracking.HitTest)
	assert.Equal(t, 3.0, c.Tracking.SelectionFactor)
	assert.True(t, c.ShowFeaturePoints)
	assert.True(t, c.WatchEnabled)
	assert.Equal(t, 200*time.Millisecond, c.WatchDebounce)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Cleanup(viper.Reset)
	t.Setenv("ARRULER_LOGLEVEL", "warn")
	t.Setenv("ARRULER_TRACKING_HITTEST", "surface")

	c, err := Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "warn", c.LogLevel)
	assert.Equal(t, tracking.ExistingSurface, c.Tracking.HitTest)
}

func TestLoad_InvalidHitTest(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "arruler.yaml"), []byte("tracking:\n  hitTest: plane\n"), 0644))

	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tracking.hitTest")
}

func TestLoad_MalformedFile(t *testing.T) {
	t.Cleanup(viper.Reset)

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "arruler.yaml"), []byte("window: [unclosed"), 0644))

	_, err := Load(dir)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "error reading config file")
}
