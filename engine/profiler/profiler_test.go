package profiler

import (
	"bytes"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestProfilerTick(t *testing.T) {
	var buf bytes.Buffer
	p := NewProfiler(zerolog.New(&buf), time.Hour)
	require.False(t, p.Tick())
	require.Zero(t, buf.Len())

	p.updateInterval = time.Nanosecond
	time.Sleep(time.Millisecond)
	require.True(t, p.Tick())
	require.Contains(t, buf.String(), `"fps"`)
	require.Contains(t, buf.String(), `"message":"profiler"`)
	require.Zero(t, p.frameCount)
}

func TestNewProfilerDefaultInterval(t *testing.T) {
	p := NewProfiler(zerolog.Nop(), 0)
	require.Equal(t, time.Second, p.updateInterval)
}
