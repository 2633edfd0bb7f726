package platform

import (
	"context"
	"fmt"
	"os/exec"

	"roundtimer/internal/sound"
)

// commandBackend plays files and speaks text by running OS commands.
type commandBackend struct {
	player  string
	playArg func(path string) []string
	speaker string
	sayArg  func(text string) []string
}

// NewAudioBackend returns the platform-specific sound backend. Missing
// commands make the matching calls fail with sound.ErrBackendUnavailable.
func NewAudioBackend() sound.Backend {
	return newAudioBackend()
}

func (backend *commandBackend) Play(ctx context.Context, path string) error {
	if backend.player == "" {
		return fmt.Errorf("play %s: %w", path, sound.ErrBackendUnavailable)
	}
	if err := exec.CommandContext(ctx, backend.player, backend.playArg(path)...).Run(); err != nil {
		return fmt.Errorf("%s: %w", backend.player, err)
	}
	return nil
}

func (backend *commandBackend) Speak(ctx context.Context, text string) error {
	if backend.speaker == "" {
		return fmt.Errorf("speak: %w", sound.ErrBackendUnavailable)
	}
	if err := exec.CommandContext(ctx, backend.speaker, backend.sayArg(text)...).Run(); err != nil {
		return fmt.Errorf("%s: %w", backend.speaker, err)
	}
	return nil
}

// lookFirst returns the path of the first command found in PATH.
func lookFirst(names ...string) (string, string) {
	for _, name := range names {
		if path, err := exec.LookPath(name); err == nil {
			return name, path
		}
	}
	return "", ""
}
