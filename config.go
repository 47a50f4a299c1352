package main

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
)

// Preset is one saved tempo setup, addressed by its key.
type Preset struct {
	Key           string  `json:"key"`
	Tempo         float64 `json:"tempo"`
	TimeSignature int     `json:"timesig"`
	Subdivision   int     `json:"subdivision"`
}

type PresetManager struct {
	Presets    []Preset
	PresetPath string
	File       *os.File
	FileInfo   os.FileInfo
}

func NewPresetManager() (*PresetManager, error) {
	filePath := UserHomeDir() + ".rjmetronome.json"
	f, err := os.OpenFile(filePath, os.O_RDWR|os.O_CREATE, 0644)
	if err != nil {
		return nil, errors.Wrap(err, "opening preset file")
	}

	fileInfo, err := f.Stat()
	if err != nil {
		return nil, errors.Wrap(err, "stating preset file")
	}

	return &PresetManager{
		File:       f,
		PresetPath: filePath,
		FileInfo:   fileInfo,
		Presets:    []Preset{},
	}, nil
}

func (pm *PresetManager) IsFileNotEmpty() bool {
	return pm.FileInfo.Size() > 0
}

func (pm *PresetManager) LoadPresets() error {
	if pm.IsFileNotEmpty() {
		if err := json.NewDecoder(pm.File).Decode(&pm.Presets); err != nil {
			return errors.Wrap(err, "decoding preset file")
		}
	}
	return nil
}

func (pm *PresetManager) GetPresetByKey(key string) *Preset {
	for _, preset := range pm.Presets {
		if preset.Key == key {
			return &preset
		}
	}
	return nil
}

func (pm *PresetManager) WritePresets() error {
	data, err := json.Marshal(pm.Presets)
	if err != nil {
		return errors.Wrap(err, "encoding presets")
	}

	if err := os.WriteFile(pm.PresetPath, data, 0644); err != nil {
		return errors.Wrap(err, "writing preset file")
	}
	return nil
}

func initPresetManager() (*PresetManager, error) {
	pm, err := NewPresetManager()
	if err != nil {
		return nil, err
	}
	defer pm.File.Close()

	if err := pm.LoadPresets(); err != nil {
		return nil, err
	}
	return pm, nil
}

// SavePreset stores the setup under its key. Keys are unique; saving an
// existing key is refused, not overwritten.
func SavePreset(p Preset) error {
	pm, err := initPresetManager()
	if err != nil {
		return err
	}

	if pm.GetPresetByKey(p.Key) != nil {
		return errors.Errorf("preset %q already exists", p.Key)
	}

	pm.Presets = append(pm.Presets, p)
	return pm.WritePresets()
}

func LoadPreset(key string) (*Preset, error) {
	pm, err := initPresetManager()
	if err != nil {
		return nil, err
	}

	p := pm.GetPresetByKey(key)
	if p == nil {
		return nil, errors.Errorf("preset %q not found", key)
	}
	return p, nil
}

func DeletePreset(key string) error {
	pm, err := initPresetManager()
	if err != nil {
		return err
	}

	p := pm.GetPresetByKey(key)
	if p == nil {
		return errors.Errorf("preset %q not found", key)
	}

	for i, preset := range pm.Presets {
		if preset.Key == p.Key {
			pm.Presets = append(pm.Presets[:i], pm.Presets[i+1:]...)
		}
	}

	return pm.WritePresets()
}

func ListPresets() ([]Preset, error) {
	pm, err := initPresetManager()
	if err != nil {
		return nil, err
	}
	return pm.Presets, nil
}
