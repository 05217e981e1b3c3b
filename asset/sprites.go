package asset

import (
	"fmt"
	"os"

	"github.com/lixenwraith/starfield/constants"
	"github.com/lixenwraith/starfield/core"
)

// SpriteFiles lists the rocket animation frames in display order
var SpriteFiles = []string{constants.SpriteFrame1, constants.SpriteFrame2}

// LoadFrames reads the rocket frames; prefix is prepended verbatim, so directories need a trailing separator
func LoadFrames(prefix string) ([]*core.Frame, error) {
	frames := make([]*core.Frame, 0, len(SpriteFiles))
	for _, name := range SpriteFiles {
		frame, err := LoadFrame(prefix + name)
		if err != nil {
			return nil, err
		}
		frames = append(frames, frame)
	}
	return frames, nil
}

// LoadFrame reads a single sprite file
func LoadFrame(path string) (*core.Frame, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("load sprite: %w", err)
	}
	frame := core.NewFrame(string(data))
	if frame.Height() == 0 {
		return nil, fmt.Errorf("load sprite %s: empty frame", path)
	}
	return frame, nil
}
