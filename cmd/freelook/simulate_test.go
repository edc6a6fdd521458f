package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/Carmen-Shannon/oxy-freelook/simulate"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestSimulateCommandFrames(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "script.yaml")
	err := os.WriteFile(path, []byte(`
name: strafe
frames:
  - right: true
    dt: 1
`), 0644)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, simulateCommand(&buf, []string{path}, 1, true))

	var results []simulate.Result
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &results))
	require.Len(t, results, 1)
	require.Equal(t, "strafe", results[0].Name)
	final := results[0].Final()
	require.InDeltaSlice(t, []float64{-1, 0, 0}, final.Position[:], 1e-12)
}

func TestSimulateCommandMissingScript(t *testing.T) {
	var buf bytes.Buffer
	err := simulateCommand(&buf, []string{filepath.Join(t.TempDir(), "nope.yaml")}, 0, false)
	require.Error(t, err)
	require.Zero(t, buf.Len())
}
