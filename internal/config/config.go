// Package config provides YAML-based game configuration loading and
// difficulty management for lanehop.
package config

// CrossyConfig contains all tunable constants for the lane-hopping game.
// World units are pixels of an 800x600 playfield; the renderer
// scales them to terminal cells.
type CrossyConfig struct {
	World      WorldConfig      `yaml:"world"`
	Player     PlayerConfig     `yaml:"player"`
	Camera     CameraConfig     `yaml:"camera"`
	Stream     StreamConfig     `yaml:"stream"`
	Placement  PlacementConfig  `yaml:"placement"`
	Road       RoadConfig       `yaml:"road"`
	River      RiverConfig      `yaml:"river"`
	Rail       RailConfig       `yaml:"rail"`
	Hazard     HazardConfig     `yaml:"hazard"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// WorldConfig defines the playfield dimensions.
type WorldConfig struct {
	Width    float64 `yaml:"width"`
	Height   float64 `yaml:"height"` // One screen height, used for camera and lane retention
	Grid     float64 `yaml:"grid"`   // Size of one tile and one hop
	TickRate int     `yaml:"tick_rate"`
}

// PlayerConfig defines player size, spawn point and hop animation.
type PlayerConfig struct {
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	StartX      float64 `yaml:"start_x"`      // 0 means the horizontal center
	StartOffset float64 `yaml:"start_offset"` // Spawn y is world height minus this
	HopTicks    int     `yaml:"hop_ticks"`
	HopEase     float64 `yaml:"hop_ease"`
}

// CameraConfig defines how the camera follows the player.
type CameraConfig struct {
	Ease float64 `yaml:"ease"`
	Bias float64 `yaml:"bias"` // Fraction of screen height kept above the player
	Snap float64 `yaml:"snap"`
}

// StreamConfig defines lane generation and retention.
type StreamConfig struct {
	StartSafeLanes int     `yaml:"start_safe_lanes"`
	InitialLanes   int     `yaml:"initial_lanes"`
	MinLanes       int     `yaml:"min_lanes"`
	SafeEvery      int     `yaml:"safe_every"`
	Retention      float64 `yaml:"retention"` // Screen heights kept ahead of and behind the camera
}

// PlacementConfig bounds rejection sampling during lane construction.
type PlacementConfig struct {
	MaxAttempts int `yaml:"max_attempts"`
}

// IntRange is an inclusive integer range.
type IntRange struct {
	Min int `yaml:"min"`
	Max int `yaml:"max"`
}

// FloatRange is a half-open float range [Min, Max).
type FloatRange struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

// RoadConfig defines vehicle lanes. Widths and gaps are in grid units.
type RoadConfig struct {
	Count          IntRange   `yaml:"count"`
	Speed          FloatRange `yaml:"speed"`
	MinGap         float64    `yaml:"min_gap"`
	BusChance      float64    `yaml:"bus_chance"`
	BusSpeedFactor float64    `yaml:"bus_speed_factor"`
	CarWidth       float64    `yaml:"car_width"`
	BusWidth       float64    `yaml:"bus_width"`
	HeightInset    float64    `yaml:"height_inset"`
}

// RiverConfig defines floating platform lanes. Widths and gaps are in grid units.
type RiverConfig struct {
	Count       IntRange   `yaml:"count"`
	Speed       FloatRange `yaml:"speed"`
	MinGap      float64    `yaml:"min_gap"`
	Width       FloatRange `yaml:"width"`
	HeightInset float64    `yaml:"height_inset"`
}

// RailConfig defines rail crossings.
type RailConfig struct {
	Width        float64  `yaml:"width"` // Grid units
	Speed        float64  `yaml:"speed"`
	HeightInset  float64  `yaml:"height_inset"`
	Cooldown     IntRange `yaml:"cooldown"` // Ticks between crossings
	Clearance    float64  `yaml:"clearance"`
	WarningTicks int      `yaml:"warning_ticks"`
}

// HazardConfig defines hazard-creature lanes. Gaps are in grid units.
type HazardConfig struct {
	Count     IntRange   `yaml:"count"`
	Speed     FloatRange `yaml:"speed"`
	MinGap    float64    `yaml:"min_gap"`
	SizeInset float64    `yaml:"size_inset"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Added to lane speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// DefaultPreset is the preset pickers start on. It keeps lane speeds
// inside their configured ranges.
const DefaultPreset = DifficultyFixed

// ParsePreset converts a CLI string to a preset. Unknown values yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}
