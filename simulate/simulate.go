// package simulate replays scripted look and movement input through a Camera without a window.
// Scripts are YAML files; several scripts can be replayed concurrently on a worker pool.
package simulate

import (
	"fmt"
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/oxy-freelook/common"
	"github.com/Carmen-Shannon/oxy-freelook/engine/camera"
	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"
)

const defaultDeltaTime = 1.0 / 60

// Script is a sequence of input frames replayed against a fresh Camera.
type Script struct {
	Name string `yaml:"name"`
	// Initial orientation, applied with SetLookDirection before the first frame.
	Yaw   float64 `yaml:"yaw"`
	Pitch float64 `yaml:"pitch"`
	// Speed is the movement speed in world units per second.
	Speed float64 `yaml:"speed"`
	// DeltaTime is the default frame duration in seconds.
	DeltaTime float64 `yaml:"dt"`
	Frames    []Frame `yaml:"frames"`
}

// Frame is one tick of input. Yaw and Pitch are deltas unless Set is true,
// in which case they are absolute angles.
type Frame struct {
	Yaw       float64 `yaml:"yaw"`
	Pitch     float64 `yaml:"pitch"`
	Set       bool    `yaml:"set"`
	Forward   bool    `yaml:"forward"`
	Backward  bool    `yaml:"backward"`
	Right     bool    `yaml:"right"`
	Left      bool    `yaml:"left"`
	DeltaTime float64 `yaml:"dt"`
}

// FrameResult is the camera state after a frame was applied.
type FrameResult struct {
	Yaw      float64    `yaml:"yaw"`
	Pitch    float64    `yaml:"pitch"`
	Look     [3]float64 `yaml:"look,flow"`
	Input    [3]float64 `yaml:"input,flow"`
	Position [3]float64 `yaml:"position,flow"`
}

// Result is the replay of one Script.
type Result struct {
	Name   string        `yaml:"name"`
	Frames []FrameResult `yaml:"frames"`
}

// Final returns the state after the last frame, or the zero state for an empty script.
func (r Result) Final() FrameResult {
	if len(r.Frames) == 0 {
		return FrameResult{Look: [3]float64{0, 0, 1}}
	}
	return r.Frames[len(r.Frames)-1]
}

// LoadScript reads a YAML script from disk.
// The script name defaults to the file path.
//
// Parameters:
//   - path: path to the YAML script
//
// Returns:
//   - Script: the parsed script
//   - error: error if the file cannot be read or parsed
func LoadScript(path string) (Script, error) {
	var s Script
	data, err := os.ReadFile(path)
	if err != nil {
		return s, fmt.Errorf("failed to read script %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &s); err != nil {
		return s, fmt.Errorf("failed to parse script %s: %w", path, err)
	}
	s.Name = common.Coalesce(s.Name, path)
	return s, nil
}

// Replay runs a single script against a new Camera.
//
// Parameters:
//   - s: the script to replay
//
// Returns:
//   - Result: per-frame camera state
func Replay(s Script) Result {
	c := camera.NewCamera()
	c.SetLookDirection(s.Yaw, s.Pitch)

	speed := common.Coalesce(s.Speed, 1)
	var position mgl64.Vec3

	result := Result{Name: s.Name, Frames: make([]FrameResult, 0, len(s.Frames))}
	for _, f := range s.Frames {
		if f.Set {
			c.SetLookDirection(f.Yaw, f.Pitch)
		} else {
			c.UpdateLookDirection(f.Yaw, f.Pitch)
		}

		input := c.InputSnapshotToInputDirection(f.Forward, f.Backward, f.Right, f.Left)
		dt := common.Coalesce(f.DeltaTime, s.DeltaTime, defaultDeltaTime)
		position = position.Add(input.Mul(speed * dt))

		result.Frames = append(result.Frames, FrameResult{
			Yaw:      c.YawAngle(),
			Pitch:    c.PitchAngle(),
			Look:     c.LookDirection(),
			Input:    input,
			Position: position,
		})
	}
	return result
}

// ReplayAll replays every script on a bounded worker pool.
// Results are returned in the same order as scripts.
//
// Parameters:
//   - scripts: the scripts to replay
//   - workers: pool size; values <= 0 use one less than the CPU count
//
// Returns:
//   - []Result: one result per script
func ReplayAll(scripts []Script, workers int) []Result {
	results := make([]Result, len(scripts))
	if len(scripts) == 0 {
		return results
	}
	if workers <= 0 {
		workers = max(runtime.NumCPU()-1, 1)
	}

	pool := worker.NewDynamicWorkerPool(min(workers, len(scripts)), len(scripts), 1*time.Second)

	var wg sync.WaitGroup
	for i, s := range scripts {
		wg.Add(1)
		idx, script := i, s // capture for closure
		pool.SubmitTask(worker.Task{
			ID: idx,
			Do: func() (any, error) {
				defer wg.Done()
				results[idx] = Replay(script)
				return nil, nil
			},
		})
	}
	wg.Wait()
	return results
}
