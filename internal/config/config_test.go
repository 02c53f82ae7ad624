package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"gopkg.in/yaml.v3"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	var cs CarShootConfig
	if err := yaml.Unmarshal(GetDefaultYAML("carshoot"), &cs); err != nil {
		t.Fatalf("embedded carshoot.yaml does not parse: %v", err)
	}
	if !reflect.DeepEqual(cs, DefaultCarShootConfig()) {
		t.Errorf("carshoot.yaml and DefaultCarShootConfig differ:\n%+v\n%+v", cs, DefaultCarShootConfig())
	}

	var rr RoadRaceConfig
	if err := yaml.Unmarshal(GetDefaultYAML("roadrace"), &rr); err != nil {
		t.Fatalf("embedded roadrace.yaml does not parse: %v", err)
	}
	if !reflect.DeepEqual(rr, DefaultRoadRaceConfig()) {
		t.Errorf("roadrace.yaml and DefaultRoadRaceConfig differ:\n%+v\n%+v", rr, DefaultRoadRaceConfig())
	}

	if GetDefaultYAML("unknown") != nil {
		t.Error("unknown game should have no default YAML")
	}
}

func TestLoadCustomPathPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "carshoot.yaml")
	data := []byte("cars:\n  total: 10\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadCarShoot(path)
	if err != nil {
		t.Fatalf("LoadCarShoot() failed: %v", err)
	}
	if cfg.Cars.Total != 10 {
		t.Errorf("Cars.Total = %d, expected 10", cfg.Cars.Total)
	}
	// Keys missing from the file keep their defaults
	if cfg.Marbles.Count != 3 || cfg.Cars.Speed != 600 {
		t.Errorf("partial config lost defaults: %+v", cfg)
	}
}

func TestLoadCustomPathErrors(t *testing.T) {
	if _, err := LoadRoadRace(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing custom config should be an error")
	}

	path := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(path, []byte("player: [not, a, map"), 0o600); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadRoadRace(path)
	if err == nil {
		t.Error("invalid YAML should be an error")
	}
	if cfg.Player.Health != DefaultRoadRaceConfig().Player.Health {
		t.Error("failed load should still return usable defaults")
	}
}

func TestApplyPresets(t *testing.T) {
	tests := []struct {
		preset  DifficultyPreset
		enabled bool
		level   float64
		marbles int
		health  int
	}{
		{DifficultyEasy, true, 0.0, 4, 7},
		{DifficultyNormal, true, 0.3, 3, 5},
		{DifficultyHard, true, 0.7, 2, 3},
		{DifficultyFixed, false, 0.0, 3, 5},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cs := DefaultCarShootConfig()
			ApplyCarShootPreset(&cs, tc.preset)
			if cs.Difficulty.Enabled != tc.enabled {
				t.Errorf("Enabled = %v, expected %v", cs.Difficulty.Enabled, tc.enabled)
			}
			if cs.Difficulty.InitialLevel != tc.level {
				t.Errorf("InitialLevel = %f, expected %f", cs.Difficulty.InitialLevel, tc.level)
			}
			if cs.Marbles.Count != tc.marbles {
				t.Errorf("Marbles.Count = %d, expected %d", cs.Marbles.Count, tc.marbles)
			}

			rr := DefaultRoadRaceConfig()
			ApplyRoadRacePreset(&rr, tc.preset)
			if rr.Player.Health != tc.health {
				t.Errorf("Player.Health = %d, expected %d", rr.Player.Health, tc.health)
			}
		})
	}
}

func TestRoadRaceProgressionIsOptIn(t *testing.T) {
	rr := DefaultRoadRaceConfig()
	if rr.Difficulty.Enabled {
		t.Fatal("road race should keep a constant speed without a preset")
	}

	ApplyRoadRacePreset(&rr, DifficultyNormal)
	if !rr.Difficulty.Enabled {
		t.Error("a preset should turn progression on")
	}
}

func TestApplyEmptyPresetKeepsConfig(t *testing.T) {
	cs := DefaultCarShootConfig()
	ApplyCarShootPreset(&cs, "")
	if !reflect.DeepEqual(cs, DefaultCarShootConfig()) {
		t.Error("empty preset should not change the config")
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error("ParsePreset(hard) should be DifficultyHard")
	}
	if ParsePreset("nightmare") != "" {
		t.Error("unknown preset should parse to empty")
	}
}
