// package config loads the YAML configuration for the free-look demo: window size, tick rate,
// mouse look tuning, movement speeds and key bindings.
package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/Carmen-Shannon/oxy-freelook/common"
	"github.com/Carmen-Shannon/oxy-freelook/engine/camera"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration values
type Config struct {
	Window   WindowConfig   `yaml:"window"`
	Engine   EngineConfig   `yaml:"engine"`
	Look     LookConfig     `yaml:"look"`
	Movement MovementConfig `yaml:"movement"`
	Keys     KeyConfig      `yaml:"keys"`
}

type WindowConfig struct {
	Title  string `yaml:"title"`
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
}

type EngineConfig struct {
	TickRate  float64 `yaml:"tick_rate"`
	Profiling bool    `yaml:"profiling"`
}

type LookConfig struct {
	MouseSensitivity float64 `yaml:"mouse_sensitivity"` // radians per pixel
	InitialYaw       float64 `yaml:"initial_yaw"`
	InitialPitch     float64 `yaml:"initial_pitch"`
}

type MovementConfig struct {
	MoveSpeed     float64 `yaml:"move_speed"`
	VerticalSpeed float64 `yaml:"vertical_speed"`
}

// KeyConfig holds GLFW key codes for each movement direction.
type KeyConfig struct {
	Forward  uint32 `yaml:"forward"`
	Backward uint32 `yaml:"backward"`
	Right    uint32 `yaml:"right"`
	Left     uint32 `yaml:"left"`
	Up       uint32 `yaml:"up"`
	Down     uint32 `yaml:"down"`
}

// Default returns the configuration used when no file is given.
//
// Returns:
//   - *Config: a fully populated default configuration
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Title:  "oxy freelook",
			Width:  1280,
			Height: 720,
		},
		Engine: EngineConfig{
			TickRate: 60,
		},
		Look: LookConfig{
			MouseSensitivity: 0.0025,
		},
		Movement: MovementConfig{
			MoveSpeed:     5,
			VerticalSpeed: 3,
		},
		Keys: KeyConfig{
			Forward:  common.KeyW,
			Backward: common.KeyS,
			Right:    common.KeyD,
			Left:     common.KeyA,
			Up:       common.KeySpace,
			Down:     common.KeyLeftShift,
		},
	}
}

// Load reads a YAML file over the defaults and validates the result.
// An empty filename returns the defaults.
//
// Parameters:
//   - filename: path to the YAML file, or "" for defaults
//
// Returns:
//   - *Config: the loaded configuration
//   - error: error if the file cannot be read, parsed or validated
func Load(filename string) (*Config, error) {
	cfg := Default()
	if filename == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", filename, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", filename, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", filename, err)
	}
	return cfg, nil
}

// Validate checks that sizes, rates and speeds are usable.
//
// Returns:
//   - error: the first problem found, or nil
func (c *Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Engine.TickRate <= 0 {
		return errors.New("engine.tick_rate must be positive")
	}
	if c.Look.MouseSensitivity <= 0 {
		return errors.New("look.mouse_sensitivity must be positive")
	}
	if c.Movement.MoveSpeed < 0 || c.Movement.VerticalSpeed < 0 {
		return errors.New("movement speeds must not be negative")
	}
	return nil
}

// KeyBindings converts the key section into camera key bindings.
func (c *Config) KeyBindings() camera.KeyBindings {
	return camera.KeyBindings{
		Forward:  c.Keys.Forward,
		Backward: c.Keys.Backward,
		Right:    c.Keys.Right,
		Left:     c.Keys.Left,
		Up:       c.Keys.Up,
		Down:     c.Keys.Down,
	}
}

// ControllerOptions returns the controller options described by the look, movement and key sections.
func (c *Config) ControllerOptions() []camera.CameraControllerOption {
	return []camera.CameraControllerOption{
		camera.WithCamera(camera.NewCamera(camera.WithLookAngles(c.Look.InitialYaw, c.Look.InitialPitch))),
		camera.WithMouseSensitivity(c.Look.MouseSensitivity),
		camera.WithMoveSpeed(c.Movement.MoveSpeed),
		camera.WithVerticalSpeed(c.Movement.VerticalSpeed),
		camera.WithKeyBindings(c.KeyBindings()),
	}
}
