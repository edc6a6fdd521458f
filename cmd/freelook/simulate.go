package main

import (
	"fmt"
	"io"

	"github.com/Carmen-Shannon/oxy-freelook/simulate"
	"github.com/rs/zerolog/log"
	"gopkg.in/yaml.v3"
)

func simulateCommand(out io.Writer, paths []string, workers int, frames bool) error {
	scripts := make([]simulate.Script, 0, len(paths))
	for _, path := range paths {
		s, err := simulate.LoadScript(path)
		if err != nil {
			return err
		}
		scripts = append(scripts, s)
	}

	results := simulate.ReplayAll(scripts, workers)

	if frames {
		enc := yaml.NewEncoder(out)
		defer enc.Close()
		if err := enc.Encode(results); err != nil {
			return fmt.Errorf("failed to write results: %w", err)
		}
		return nil
	}

	for _, r := range results {
		final := r.Final()
		log.Info().
			Str("script", r.Name).
			Int("frames", len(r.Frames)).
			Float64("yaw", final.Yaw).
			Float64("pitch", final.Pitch).
			Floats64("look", final.Look[:]).
			Floats64("position", final.Position[:]).
			Msg("replayed")
	}
	return nil
}
