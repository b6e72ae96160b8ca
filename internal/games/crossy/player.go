package crossy

import (
	"github.com/vovakirdan/lanehop/internal/config"
	"github.com/vovakirdan/lanehop/internal/core"
)

// Direction is a movement intent for one tick.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
	DirLeft
	DirRight
)

// delta returns the grid offset of one hop in this direction.
// Up is towards smaller y, i.e. forward.
func (d Direction) delta() (dx, dy float64) {
	switch d {
	case DirUp:
		return 0, -1
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	case DirRight:
		return 1, 0
	default:
		return 0, 0
	}
}

// HopState is the player's movement state.
type HopState int

const (
	HopIdle HopState = iota
	HopHopping
)

// Player is the hopping avatar. Box is the animated position; TargetX and
// TargetY are the logical grid position it is moving to.
type Player struct {
	core.Box
	TargetX float64
	TargetY float64
	StartY  float64
	State   HopState
	Facing  Direction
	Support *Obstacle // Platform carrying the player, if any

	hopLeft int
	cfg     *config.CrossyConfig
}

// NewPlayer creates an idle player at the configured spawn point.
func NewPlayer(cfg *config.CrossyConfig) *Player {
	x := cfg.Player.StartX
	if x == 0 {
		x = cfg.World.Width / 2
	}
	y := cfg.World.Height - cfg.Player.StartOffset

	return &Player{
		Box:     core.NewBox(x, y, cfg.Player.Width, cfg.Player.Height),
		TargetX: x,
		TargetY: y,
		StartY:  y,
		State:   HopIdle,
		Facing:  DirUp,
		cfg:     cfg,
	}
}

// Move starts a hop of one grid unit. It is ignored unless the player is idle.
func (p *Player) Move(d Direction) bool {
	if p.State != HopIdle || d == DirNone {
		return false
	}

	dx, dy := d.delta()
	grid := p.cfg.World.Grid
	p.TargetX = p.X + dx*grid
	p.TargetY = p.Y + dy*grid
	p.State = HopHopping
	p.Facing = d
	p.hopLeft = p.cfg.Player.HopTicks
	return true
}

// Update advances the hop animation, applies platform drift and keeps the
// player inside the world horizontally.
func (p *Player) Update() {
	if p.State == HopHopping {
		ease := p.cfg.Player.HopEase
		p.X += (p.TargetX - p.X) * ease
		p.Y += (p.TargetY - p.Y) * ease
		p.hopLeft--
		if p.hopLeft <= 0 {
			p.X = p.TargetX
			p.Y = p.TargetY
			p.State = HopIdle
		}
	}

	if p.Support != nil {
		v := p.Support.Velocity()
		p.X += v
		if p.State == HopIdle {
			p.TargetX = p.X
		} else {
			p.TargetX += v
		}
	}

	p.clamp()
}

// clamp keeps x in [0, worldW-w] and drags the target along when clamped.
func (p *Player) clamp() {
	maxX := p.cfg.World.Width - p.W
	if p.X < 0 {
		p.X = 0
		p.TargetX = 0
	} else if p.X > maxX {
		p.X = maxX
		p.TargetX = maxX
	}
}

// Hopping reports whether a hop is in progress.
func (p *Player) Hopping() bool {
	return p.State == HopHopping
}

// HopLeft returns the remaining ticks of the current hop.
func (p *Player) HopLeft() int {
	return p.hopLeft
}
