package crossy

import (
	"math/rand"

	"github.com/vovakirdan/lanehop/internal/core"
)

// Bot is a simple look-ahead player used for headless runs. It hops forward
// when the lane ahead stays clear for the whole hop and sidesteps otherwise.
type Bot struct {
	rng      *rand.Rand
	patience int // Ticks waited since the last hop
}

// botMaxWait is how long the bot idles before trying a sidestep.
const botMaxWait = 90

// NewBot creates a bot with its own seeded RNG.
func NewBot(seed int64) *Bot {
	return &Bot{rng: rand.New(rand.NewSource(seed))}
}

// Decide returns the hop to command this tick.
func (b *Bot) Decide(r *Round) Direction {
	p := r.Player()
	if p.Hopping() {
		return DirNone
	}

	grid := r.cfg.World.Grid
	horizon := r.cfg.Player.HopTicks + 2

	if b.clear(r, p.X, p.Y-grid, horizon) {
		b.patience = 0
		return DirUp
	}

	// Standing still is fine unless the current lane is about to hit us.
	// A log carries the player along, so being on one counts as clear.
	here := p.Support != nil || b.clear(r, p.X, p.Y, horizon)
	b.patience++
	if here && b.patience < botMaxWait {
		return DirNone
	}

	sides := []Direction{DirLeft, DirRight}
	b.rng.Shuffle(len(sides), func(i, j int) { sides[i], sides[j] = sides[j], sides[i] })
	for _, d := range sides {
		dx, _ := d.delta()
		x := p.X + dx*grid
		if x < 0 || x > r.cfg.World.Width-p.W {
			continue
		}
		if b.clear(r, x, p.Y, horizon) {
			b.patience = 0
			return d
		}
	}
	if !here && b.clear(r, p.X, p.Y+grid, horizon) {
		return DirDown
	}
	return DirNone
}

// clear reports whether a player box at (x, y) would survive the next ticks
// in the lane at y, given current obstacle motion.
func (b *Bot) clear(r *Round, x, y float64, ticks int) bool {
	lane := r.Stream().LaneAt(y)
	if lane == nil {
		return false
	}
	box := core.NewBox(x, lane.Y, r.player.W, r.player.H)

	switch lane.Type {
	case LaneSafe:
		return true
	case LaneRail:
		// A running cooldown means the train is off-screen, even on the tick
		// after it passed while it still reads as active.
		return lane.Cooldown() > ticks+r.cfg.Player.HopTicks
	}

	worldW := r.cfg.World.Width
	obstacles := make([]Obstacle, len(lane.Obstacles))
	copy(obstacles, lane.Obstacles)
	for k := 0; k <= ticks; k++ {
		for i := range obstacles {
			o := &obstacles[i]
			if k > 0 {
				o.Advance(worldW)
			}
			if o.Lethal() && o.Overlaps(box) {
				return false
			}
		}
	}

	if lane.Type == LaneRiver {
		// Land only where a log will be once the hop completes.
		for i := range obstacles {
			if obstacles[i].Supports() && obstacles[i].Overlaps(box) {
				return true
			}
		}
		return false
	}
	return true
}

// actionFor maps a hop direction back to the platform action.
func actionFor(d Direction) core.Action {
	switch d {
	case DirUp:
		return core.ActionUp
	case DirDown:
		return core.ActionDown
	case DirLeft:
		return core.ActionLeft
	case DirRight:
		return core.ActionRight
	default:
		return core.ActionNone
	}
}

// Play drives g with the bot until the round ends or maxTicks pass.
// g must have been Reset. It returns the final state.
func (b *Bot) Play(g *Game, maxTicks int) core.GameState {
	in := core.NewInputFrame()
	for i := 0; i < maxTicks && g.Round() != nil; i++ {
		in.Clear()
		if a := actionFor(b.Decide(g.Round())); a != core.ActionNone {
			in.Set(a)
		}
		if res := g.Step(in); res.State.GameOver {
			break
		}
	}
	return g.State()
}
