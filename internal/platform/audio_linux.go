package platform

func newAudioBackend() *commandBackend {
	backend := &commandBackend{}

	switch name, path := lookFirst("paplay", "pw-play", "aplay", "ffplay"); name {
	case "aplay":
		backend.player = path
		backend.playArg = func(file string) []string { return []string{"-q", file} }
	case "ffplay":
		backend.player = path
		backend.playArg = func(file string) []string {
			return []string{"-nodisp", "-autoexit", "-loglevel", "quiet", file}
		}
	case "":
	default:
		backend.player = path
		backend.playArg = func(file string) []string { return []string{file} }
	}

	switch name, path := lookFirst("spd-say", "espeak-ng", "espeak"); name {
	case "spd-say":
		backend.speaker = path
		backend.sayArg = func(text string) []string {
			return []string{"--wait", "--rate", "-30", "--pitch", "30", text}
		}
	case "":
	default:
		backend.speaker = path
		backend.sayArg = func(text string) []string {
			return []string{"-s", "120", "-p", "65", text}
		}
	}

	return backend
}
