package main

import (
	"time"

	"github.com/Carmen-Shannon/oxy-freelook/common"
	"github.com/Carmen-Shannon/oxy-freelook/config"
	"github.com/Carmen-Shannon/oxy-freelook/engine"
	"github.com/Carmen-Shannon/oxy-freelook/engine/camera"
	"github.com/Carmen-Shannon/oxy-freelook/engine/window"
	"github.com/rs/zerolog/log"
)

func runCommand(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	w := window.NewWindow(
		window.WithTitle(cfg.Window.Title),
		window.WithSize(cfg.Window.Width, cfg.Window.Height),
	)
	defer w.Close()

	cc := camera.NewCameraController(cfg.ControllerOptions()...)
	cam := cc.Camera()

	w.SetKeyDownCallback(func(keyCode uint32) {
		if keyCode == common.KeyTab {
			captured := !w.CursorCaptured()
			w.SetCursorCaptured(captured)
			cc.SetLookEnabled(captured)
			log.Debug().Bool("captured", captured).Msg("mouse look toggled")
			return
		}
		cc.KeyDown(keyCode)
	})
	w.SetKeyUpCallback(cc.KeyUp)
	w.SetMouseMoveCallback(cc.MouseMove)

	w.SetCursorCaptured(true)
	cc.SetLookEnabled(true)

	e := engine.NewEngine(
		engine.WithWindow(w),
		engine.WithTickRate(cfg.Engine.TickRate),
		engine.WithProfiling(cfg.Engine.Profiling),
	)
	e.SetTickCallback(cc.Tick)

	lastReport := time.Now()
	e.SetFrameCallback(func(deltaTime float32) {
		// Hand-off point for a renderer: view matrix and packed orientation uniform.
		position := cc.Position()
		view := cam.ViewMatrix(position)
		uniform := cam.GPUUniform()
		if time.Since(lastReport) < time.Second {
			return
		}
		lastReport = time.Now()
		translation := view.Col(3)
		log.Debug().
			Floats64("position", position[:]).
			Float64("yaw", cam.YawAngle()).
			Float64("pitch", cam.PitchAngle()).
			Floats32("look", uniform.LookDirection[:]).
			Floats32("view_translation", translation[:3]).
			Int("uniform_bytes", len(uniform.Marshal())).
			Msg("camera")
	})

	log.Info().
		Str("title", cfg.Window.Title).
		Float64("tick_rate", cfg.Engine.TickRate).
		Msg("starting freelook; Esc quits, Tab toggles mouse look")
	e.Run()
	return nil
}
