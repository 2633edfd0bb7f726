package platform

import (
	"fmt"
	"strings"
)

func newAudioBackend() *commandBackend {
	backend := &commandBackend{}
	_, path := lookFirst("powershell.exe", "pwsh.exe")
	if path == "" {
		return backend
	}
	backend.player = path
	backend.playArg = func(file string) []string {
		script := fmt.Sprintf("(New-Object Media.SoundPlayer '%s').PlaySync()", quotePowerShell(file))
		return []string{"-NoProfile", "-NonInteractive", "-Command", script}
	}
	backend.speaker = path
	backend.sayArg = func(text string) []string {
		script := fmt.Sprintf(
			"Add-Type -AssemblyName System.Speech; $s = New-Object System.Speech.Synthesis.SpeechSynthesizer; $s.Rate = -2; $s.Speak('%s')",
			quotePowerShell(text),
		)
		return []string{"-NoProfile", "-NonInteractive", "-Command", script}
	}
	return backend
}

func quotePowerShell(value string) string {
	return strings.ReplaceAll(value, "'", "''")
}
