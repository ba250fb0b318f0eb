package cmd

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConfigConstants(t *testing.T) {
	assert.Equal(t, "cobble", configBaseName)
	assert.Equal(t, "cobble.yaml", configFileName)
	assert.Equal(t, ".", configFolderPath)
	assert.Equal(t, "toolchain", toolchainFlagName)
	assert.Equal(t, "reports", reportsFlagName)
	assert.Equal(t, "output", outputFlagName)
	assert.Equal(t, "compile.toolchain", toolchainConfigKey)
	assert.Equal(t, "compile.reports", reportsConfigKey)
	assert.Equal(t, "highlight.keywords", keywordsConfigKey)
	assert.Equal(t, ".cobble-reports.yaml", defaultReportsFile)
	assert.Equal(t, "COBBLE", envPrefix)
}

func TestConfigVersionConstants(t *testing.T) {
	assert.Equal(t, "version", configVersionKey)
	assert.Equal(t, 1, currentConfigVersion)
}

func TestParseSlogLevel(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  slog.Level
	}{
		{"empty falls back", "", slog.LevelWarn},
		{"debug", "debug", slog.LevelDebug},
		{"info", "info", slog.LevelInfo},
		{"warn", "warn", slog.LevelWarn},
		{"warning alias", "warning", slog.LevelWarn},
		{"error", "error", slog.LevelError},
		{"numeric", "-4", slog.LevelDebug},
		{"garbage falls back", "loud", slog.LevelWarn},
		{"mixed case", "ERROR", slog.LevelError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseSlogLevel(tt.value, slog.LevelWarn))
		})
	}
}
