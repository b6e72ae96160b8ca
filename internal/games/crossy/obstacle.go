package crossy

import (
	"github.com/vovakirdan/lanehop/internal/config"
	"github.com/vovakirdan/lanehop/internal/core"
)

// Kind decides how an obstacle interacts with the player.
type Kind int

const (
	KindVehicle Kind = iota
	KindPlatform
	KindRailVehicle
	KindHazard
)

// Variant is the concrete obstacle. It only affects size and looks.
type Variant int

const (
	VariantCar Variant = iota
	VariantBus
	VariantLog
	VariantTrain
	VariantRobot
	VariantAlien
)

// Kind returns the interaction kind of the variant.
func (v Variant) Kind() Kind {
	switch v {
	case VariantLog:
		return KindPlatform
	case VariantTrain:
		return KindRailVehicle
	case VariantRobot, VariantAlien:
		return KindHazard
	default:
		return KindVehicle
	}
}

// Obstacle is an entity owned by a lane.
type Obstacle struct {
	Entity
	Kind    Kind
	Variant Variant
	Active  bool // Rail vehicles only: whether it is crossing right now
	Tint    int  // Cosmetic palette index picked at spawn
}

func newObstacle(v Variant, x, y, w, h, speed float64, dir int) Obstacle {
	return Obstacle{
		Entity: Entity{
			Box:   core.NewBox(x, y, w, h),
			Speed: speed,
			Dir:   dir,
		},
		Kind:    v.Kind(),
		Variant: v,
	}
}

// Lethal reports whether touching the obstacle ends the round.
// Inactive rail vehicles are waiting off-screen and never collide.
func (o *Obstacle) Lethal() bool {
	switch o.Kind {
	case KindVehicle, KindHazard:
		return true
	case KindRailVehicle:
		return o.Active
	default:
		return false
	}
}

// Supports reports whether the player can ride the obstacle.
func (o *Obstacle) Supports() bool {
	return o.Kind == KindPlatform
}

// variantSize returns the dimensions of fixed-size variants.
// Platform width is drawn per log, so only its height is meaningful here.
func variantSize(v Variant, cfg *config.CrossyConfig) (w, h float64) {
	grid := cfg.World.Grid
	switch v {
	case VariantCar:
		return cfg.Road.CarWidth * grid, grid - cfg.Road.HeightInset
	case VariantBus:
		return cfg.Road.BusWidth * grid, grid - cfg.Road.HeightInset
	case VariantLog:
		return 0, grid - cfg.River.HeightInset
	case VariantTrain:
		return cfg.Rail.Width * grid, grid - cfg.Rail.HeightInset
	case VariantRobot, VariantAlien:
		size := grid - cfg.Hazard.SizeInset
		return size, size
	default:
		return grid, grid
	}
}
