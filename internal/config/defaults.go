package config

import (
	_ "embed"
)

//go:embed defaults/crossy.yaml
var defaultCrossyYAML []byte

// DefaultCrossyConfig returns the built-in configuration.
// It mirrors defaults/crossy.yaml and is used when the embedded file cannot be parsed.
func DefaultCrossyConfig() CrossyConfig {
	return CrossyConfig{
		World: WorldConfig{
			Width:    800,
			Height:   600,
			Grid:     40,
			TickRate: 60,
		},
		Player: PlayerConfig{
			Width:       30,
			Height:      30,
			StartOffset: 100,
			HopTicks:    10,
			HopEase:     0.3,
		},
		Camera: CameraConfig{
			Ease: 0.1,
			Bias: 0.65,
			Snap: 1,
		},
		Stream: StreamConfig{
			StartSafeLanes: 5,
			InitialLanes:   30,
			MinLanes:       50,
			SafeEvery:      5,
			Retention:      2,
		},
		Placement: PlacementConfig{
			MaxAttempts: 20,
		},
		Road: RoadConfig{
			Count:          IntRange{Min: 2, Max: 4},
			Speed:          FloatRange{Min: 1.5, Max: 3.5},
			MinGap:         3,
			BusChance:      0.2,
			BusSpeedFactor: 0.7,
			CarWidth:       2,
			BusWidth:       3,
			HeightInset:    10,
		},
		River: RiverConfig{
			Count:       IntRange{Min: 2, Max: 4},
			Speed:       FloatRange{Min: 0.8, Max: 2.0},
			MinGap:      1,
			Width:       FloatRange{Min: 2, Max: 4},
			HeightInset: 10,
		},
		Rail: RailConfig{
			Width:        6,
			Speed:        8,
			HeightInset:  5,
			Cooldown:     IntRange{Min: 180, Max: 360},
			Clearance:    100,
			WarningTicks: 60,
		},
		Hazard: HazardConfig{
			Count:     IntRange{Min: 3, Max: 5},
			Speed:     FloatRange{Min: 1.0, Max: 2.5},
			MinGap:    1.5,
			SizeInset: 5,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 200,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
			},
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultCrossyYAML
}
