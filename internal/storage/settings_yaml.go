package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"roundtimer/internal/core/model"

	"gopkg.in/yaml.v3"
)

// SettingsFileName is the YAML file inside the app config directory.
const SettingsFileName = "settings.yaml"

type yamlSettings struct {
	RoundSet       *int  `yaml:"round_set"`
	WorkSecondsSet *int  `yaml:"work_seconds_set"`
	RestSecondsSet *int  `yaml:"rest_seconds_set"`
	Muted          bool  `yaml:"muted"`
	AnnounceRounds *bool `yaml:"announce_rounds"`
}

// YAMLStore keeps settings in a YAML file.
type YAMLStore struct {
	path string
}

// NewYAMLStore creates a store for settings.yaml inside dir.
func NewYAMLStore(dir string) *YAMLStore {
	return &YAMLStore{path: filepath.Join(dir, SettingsFileName)}
}

// Path returns the settings file location.
func (store *YAMLStore) Path() string {
	return store.path
}

// Load reads user preferences from YAML.
// If the file does not exist, default settings are returned.
func (store *YAMLStore) Load() (model.Settings, error) {
	settings := model.DefaultSettings()

	rawData, err := os.ReadFile(store.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return settings, nil
		}
		return settings, fmt.Errorf("read settings file: %w", err)
	}

	var fileData yamlSettings
	if err := yaml.Unmarshal(rawData, &fileData); err != nil {
		return settings, fmt.Errorf("parse settings yaml: %w", err)
	}

	if err := applyYamlSettings(&settings, fileData); err != nil {
		return model.DefaultSettings(), fmt.Errorf("load settings yaml: %w", err)
	}
	return settings, nil
}

// Save writes user preferences to YAML.
func (store *YAMLStore) Save(settings model.Settings) error {
	if err := settings.Validate(); err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(store.path), 0o755); err != nil {
		return fmt.Errorf("create config directory: %w", err)
	}

	fileData := yamlSettings{
		RoundSet:       &settings.Rounds,
		WorkSecondsSet: &settings.WorkSeconds,
		RestSecondsSet: &settings.RestSeconds,
		Muted:          settings.Muted,
		AnnounceRounds: &settings.AnnounceRounds,
	}

	serialized, err := yaml.Marshal(fileData)
	if err != nil {
		return fmt.Errorf("marshal settings yaml: %w", err)
	}

	// Write then rename so a watcher never sees a half-written file.
	tmpPath := store.path + ".tmp"
	if err := os.WriteFile(tmpPath, serialized, 0o644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}
	if err := os.Rename(tmpPath, store.path); err != nil {
		return fmt.Errorf("replace settings file: %w", err)
	}

	return nil
}

// Close is a no-op for file storage.
func (store *YAMLStore) Close() error {
	return nil
}

func applyYamlSettings(settings *model.Settings, fileData yamlSettings) error {
	ints := []struct {
		key    string
		value  *int
		target *int
	}{
		{"round_set", fileData.RoundSet, &settings.Rounds},
		{"work_seconds_set", fileData.WorkSecondsSet, &settings.WorkSeconds},
		{"rest_seconds_set", fileData.RestSecondsSet, &settings.RestSeconds},
	}
	for _, entry := range ints {
		if entry.value == nil {
			continue
		}
		if *entry.value < 0 {
			return fmt.Errorf("parse setting %s=%d: must not be negative", entry.key, *entry.value)
		}
		*entry.target = *entry.value
	}
	if fileData.AnnounceRounds != nil {
		settings.AnnounceRounds = *fileData.AnnounceRounds
	}
	settings.Muted = fileData.Muted
	return nil
}
