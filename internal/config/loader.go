package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadCrossy loads the game configuration.
// Search order: customPath -> ~/.lanehop/configs/crossy.yaml -> ./configs/crossy.yaml -> embedded default
func LoadCrossy(customPath string) (CrossyConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return CrossyConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return CrossyConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("crossy.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/crossy.yaml"); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultCrossyYAML)
	if err != nil {
		return DefaultCrossyConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of the built-in defaults, so partial files only
// override the keys they mention, then validates the result.
func Parse(data []byte) (CrossyConfig, error) {
	cfg := DefaultCrossyConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return CrossyConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return CrossyConfig{}, err
	}
	return cfg, nil
}

// Validate rejects configurations the simulation cannot run with.
func (c CrossyConfig) Validate() error {
	var errs []error
	if c.World.Width <= 0 || c.World.Height <= 0 || c.World.Grid <= 0 {
		errs = append(errs, errors.New("world dimensions and grid must be positive"))
	}
	if c.World.TickRate <= 0 {
		errs = append(errs, errors.New("world.tick_rate must be positive"))
	}
	if c.Player.HopTicks < 1 {
		errs = append(errs, errors.New("player.hop_ticks must be at least 1"))
	}
	if c.Placement.MaxAttempts < 1 {
		errs = append(errs, errors.New("placement.max_attempts must be at least 1"))
	}
	if c.Rail.Cooldown.Min < 1 {
		errs = append(errs, errors.New("rail.cooldown.min must be at least 1"))
	}
	if !validProgression(c.Difficulty.Progression.Type) {
		errs = append(errs, fmt.Errorf("difficulty.progression.type: unknown %q", c.Difficulty.Progression.Type))
	}
	if c.Difficulty.Scaling.SpeedMultiplier < 0 {
		errs = append(errs, errors.New("difficulty.scaling.speed_multiplier must not be negative"))
	}
	if c.Stream.SafeEvery < 1 {
		errs = append(errs, errors.New("stream.safe_every must be at least 1"))
	}
	for name, r := range map[string]IntRange{
		"road.count":    c.Road.Count,
		"river.count":   c.River.Count,
		"hazard.count":  c.Hazard.Count,
		"rail.cooldown": c.Rail.Cooldown,
	} {
		if r.Min < 0 || r.Max < r.Min {
			errs = append(errs, fmt.Errorf("%s: invalid range [%d, %d]", name, r.Min, r.Max))
		}
	}
	for name, r := range map[string]FloatRange{
		"road.speed":   c.Road.Speed,
		"river.speed":  c.River.Speed,
		"river.width":  c.River.Width,
		"hazard.speed": c.Hazard.Speed,
	} {
		if r.Min < 0 || r.Max < r.Min {
			errs = append(errs, fmt.Errorf("%s: invalid range [%g, %g]", name, r.Min, r.Max))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("config: %w", errors.Join(errs...))
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".lanehop", "configs", filename)
}

// ApplyPreset modifies the config based on a difficulty preset.
func ApplyPreset(cfg *CrossyConfig, preset DifficultyPreset) {
	if preset == DifficultyFixed {
		cfg.Difficulty.Enabled = false
		return
	}
	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)
}
