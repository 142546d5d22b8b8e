package logging

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWithWriter_JSONOutput(t *testing.T) {
	var buf bytes.Buffer

	logger := NewWithWriter(Config{
		Level:   "info",
		Format:  "json",
		Service: "pet-travel-service",
		Version: "test",
	}, &buf)

	logger.Info("computed travel quote", slog.String("region", "europe"))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))

	assert.Equal(t, "computed travel quote", entry["msg"])
	assert.Equal(t, "europe", entry["region"])
	assert.Equal(t, "pet-travel-service", entry["service_name"])
}

func TestNewWithWriter_RedactsSecrets(t *testing.T) {
	var buf bytes.Buffer

	logger := NewWithWriter(Config{Level: "info", Format: "json"}, &buf)

	logger.Info("configured guidance client", slog.String("api_key", "super-secret-key"))

	assert.NotContains(t, buf.String(), "super-secret-key")
}

func TestNewWithWriter_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer

	logger := NewWithWriter(Config{Level: "warn", Format: "json"}, &buf)

	logger.Info("should be filtered")
	assert.Empty(t, buf.String())

	logger.Warn("should appear")
	assert.Contains(t, buf.String(), "should appear")
}

func TestNewWithWriter_FileSink(t *testing.T) {
	var buf bytes.Buffer
	path := filepath.Join(t.TempDir(), "app.log")

	logger := NewWithWriter(Config{
		Level:  "info",
		Format: "json",
		File: FileConfig{
			Enabled:   true,
			Path:      path,
			MaxSizeMB: 1,
		},
	}, &buf)

	logger.Info("written to both sinks")

	assert.Contains(t, buf.String(), "written to both sinks")
	assert.FileExists(t, path)
}
