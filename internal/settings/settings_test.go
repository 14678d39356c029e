package settings

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newFlags(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	AddFlags(fs)
	fs.Int("port", 3000, "")
	require.NoError(t, fs.Parse(args))
	return fs
}

func TestDefaults(t *testing.T) {
	s, err := Load(newFlags(t))
	require.NoError(t, err)
	assert.Equal(t, &Settings{LogLevel: "info", LogFormat: "text", Port: 3000, Output: "text"}, s)
}

func TestFlagsOverride(t *testing.T) {
	s, err := Load(newFlags(t, "--log-level=DEBUG", "--output=json", "--port=8080"))
	require.NoError(t, err)
	assert.Equal(t, "debug", s.LogLevel)
	assert.Equal(t, "json", s.Output)
	assert.Equal(t, 8080, s.Port)
}

func TestEnvironment(t *testing.T) {
	t.Setenv("MEASURE_LOG_FORMAT", "json")
	s, err := Load(newFlags(t))
	require.NoError(t, err)
	assert.Equal(t, "json", s.LogFormat)
}

func TestSettingsFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "measure.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log-level: warn\nport: 9000\n"), 0o644))

	s, err := Load(newFlags(t, "--config", path))
	require.NoError(t, err)
	assert.Equal(t, "warn", s.LogLevel)
	assert.Equal(t, 9000, s.Port)
}

func TestInvalid(t *testing.T) {
	_, err := Load(newFlags(t, "--log-level=loud"))
	assert.ErrorContains(t, err, "invalid log-level")

	_, err = Load(newFlags(t, "--output=xml"))
	assert.ErrorContains(t, err, "invalid output")
}

func TestLogger(t *testing.T) {
	var buf bytes.Buffer
	s := &Settings{LogLevel: "warn", LogFormat: "json"}
	logger := s.Logger(&buf)

	logger.Info("hidden")
	logger.Warn("shown", "unit", "km")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), `"unit":"km"`)
}
