package platform

func newAudioBackend() *commandBackend {
	backend := &commandBackend{}
	if _, path := lookFirst("afplay"); path != "" {
		backend.player = path
		backend.playArg = func(file string) []string { return []string{file} }
	}
	if _, path := lookFirst("say"); path != "" {
		backend.speaker = path
		backend.sayArg = func(text string) []string { return []string{"-r", "140", text} }
	}
	return backend
}
