package cli

import (
	"bytes"
	"log/slog"
	"os"
	"path/filepath"
	"stegno/internal/logging"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryProfilerWritesDumps(t *testing.T) {
	var logOutput bytes.Buffer
	dumpDir := filepath.Join(t.TempDir(), "profiles")

	StartMemoryProfiler(dumpDir, logging.BuildLogger(&logOutput, slog.LevelDebug))
	StopMemoryProfiler()

	_, err := os.Stat(filepath.Join(dumpDir, "mem-0.mprof"))
	require.NoError(t, err)
	assert.Zero(t, logOutput.Len(), logOutput.String())
}

func TestMemoryProfilerReportsUnusableDir(t *testing.T) {
	var logOutput bytes.Buffer
	notADir := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(notADir, []byte("x"), 0664))

	StartMemoryProfiler(filepath.Join(notADir, "profiles"), logging.BuildLogger(&logOutput, slog.LevelDebug))
	StopMemoryProfiler()

	assert.Contains(t, logOutput.String(), "Error creating memory profile directory")
	assert.NotContains(t, logOutput.String(), "Error writing memory profile to disk")
}

func TestMemProfileDirFlag(t *testing.T) {
	dumpDir := filepath.Join(t.TempDir(), "profiles")

	_, err := runCommand(t, "--mem-profile-dir", dumpDir, "capacity", writeTestCarrier(t, 320))
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(dumpDir, "mem-0.mprof"))
	assert.NoError(t, err)
}
