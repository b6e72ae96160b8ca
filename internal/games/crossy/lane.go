package crossy

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/lanehop/internal/config"
	"github.com/vovakirdan/lanehop/internal/core"
)

// vehicleTints is the number of body colors a car or bus can get.
const vehicleTints = 5

// Lane is one horizontal strip of the world. Its y and its obstacle set are
// fixed at creation; obstacles only move.
type Lane struct {
	Y         float64
	Type      LaneType
	Env       Environment
	Obstacles []Obstacle

	cooldown int  // Rail lanes: ticks until the train crosses
	crowded  bool // Some placement ran out of attempts
	cfg      *config.CrossyConfig
	rng      *rand.Rand
}

// NewLane creates a lane at y and populates it according to its type.
func NewLane(y float64, t LaneType, env Environment, cfg *config.CrossyConfig, rng *rand.Rand) *Lane {
	return newLane(y, t, env, cfg, rng, 1.0)
}

func newLane(y float64, t LaneType, env Environment, cfg *config.CrossyConfig, rng *rand.Rand, speedScale float64) *Lane {
	l := &Lane{
		Y:    y,
		Type: t,
		Env:  env,
		cfg:  cfg,
		rng:  rng,
	}

	switch t {
	case LaneRoad:
		l.spawnVehicles(speedScale)
	case LaneRiver:
		l.spawnPlatforms(speedScale)
	case LaneRail:
		l.setupRail()
	case LaneHazard:
		l.spawnHazards(speedScale)
	}
	return l
}

// spawnVehicles places cars and buses sharing one speed and direction.
func (l *Lane) spawnVehicles(speedScale float64) {
	rc := l.cfg.Road
	count := randIntRange(l.rng, rc.Count)
	speed := randFloatRange(l.rng, rc.Speed) * speedScale
	dir := randDir(l.rng)
	gap := rc.MinGap * l.cfg.World.Grid

	l.Obstacles = make([]Obstacle, 0, count)
	p := l.placer()
	for i := 0; i < count; i++ {
		v, vSpeed := VariantCar, speed
		if l.rng.Float64() < rc.BusChance {
			v, vSpeed = VariantBus, speed*rc.BusSpeedFactor
		}
		w, h := variantSize(v, l.cfg)

		x := p.place(w, func(x float64) bool {
			return centerGapFits(l.Obstacles, x, w, gap)
		})
		o := newObstacle(v, x, l.Y, w, h, vSpeed, dir)
		o.Tint = l.rng.Intn(vehicleTints)
		l.Obstacles = append(l.Obstacles, o)
	}
	l.crowded = p.crowded
}

// spawnPlatforms places logs of independent widths sharing one speed and direction.
func (l *Lane) spawnPlatforms(speedScale float64) {
	rc := l.cfg.River
	grid := l.cfg.World.Grid
	count := randIntRange(l.rng, rc.Count)
	speed := randFloatRange(l.rng, rc.Speed) * speedScale
	dir := randDir(l.rng)
	gap := rc.MinGap * grid
	_, h := variantSize(VariantLog, l.cfg)

	l.Obstacles = make([]Obstacle, 0, count)
	p := l.placer()
	for i := 0; i < count; i++ {
		minW := rc.Width.Min * grid
		w := minW + float64(l.rng.Intn(int(rc.Width.Max*grid-minW)+1))

		x := p.place(w, func(x float64) bool {
			return centerGapFits(l.Obstacles, x, w, gap)
		})
		l.Obstacles = append(l.Obstacles, newObstacle(VariantLog, x, l.Y, w, h, speed, dir))
	}
	l.crowded = p.crowded
}

// setupRail creates the single train, parked off-screen and waiting.
func (l *Lane) setupRail() {
	w, h := variantSize(VariantTrain, l.cfg)
	train := newObstacle(VariantTrain, 0, l.Y, w, h, l.cfg.Rail.Speed, randDir(l.rng))
	train.X = l.railStart(&train)
	l.Obstacles = []Obstacle{train}
	l.cooldown = randIntRange(l.rng, l.cfg.Rail.Cooldown)
}

// spawnHazards places environment-specific creatures sharing one speed and direction.
// Spacing compares left edges against a single width plus gap.
func (l *Lane) spawnHazards(speedScale float64) {
	hc := l.cfg.Hazard
	count := randIntRange(l.rng, hc.Count)
	speed := randFloatRange(l.rng, hc.Speed) * speedScale
	dir := randDir(l.rng)
	gap := hc.MinGap * l.cfg.World.Grid

	v := VariantRobot
	if l.Env == EnvTech {
		v = VariantAlien
	}
	w, h := variantSize(v, l.cfg)

	l.Obstacles = make([]Obstacle, 0, count)
	p := l.placer()
	for i := 0; i < count; i++ {
		x := p.place(w, func(x float64) bool {
			return edgeGapFits(l.Obstacles, x, w, gap)
		})
		l.Obstacles = append(l.Obstacles, newObstacle(v, x, l.Y, w, h, speed, dir))
	}
	l.crowded = p.crowded
}

// Update advances every obstacle by one tick and runs the rail crossing cycle.
func (l *Lane) Update() {
	worldW := l.cfg.World.Width
	for i := range l.Obstacles {
		o := &l.Obstacles[i]
		if o.Kind == KindRailVehicle {
			l.updateRail(o)
			continue
		}
		o.Advance(worldW)
	}
}

// updateRail runs the cooldown -> cross -> cooldown cycle. While waiting the
// train is pinned to its start; once it has fully left the world a new
// cooldown is drawn and the next tick parks it again.
func (l *Lane) updateRail(o *Obstacle) {
	if l.cooldown > 0 {
		l.cooldown--
		o.Active = false
		o.X = l.railStart(o)
		return
	}

	o.Active = true
	o.Step()
	if l.railPassed(o) {
		l.cooldown = randIntRange(l.rng, l.cfg.Rail.Cooldown)
	}
}

// railStart is the fully off-screen x on the side the train enters from.
func (l *Lane) railStart(o *Obstacle) float64 {
	if o.Dir > 0 {
		return -o.W
	}
	return l.cfg.World.Width
}

func (l *Lane) railPassed(o *Obstacle) bool {
	clearance := l.cfg.Rail.Clearance
	if o.Dir > 0 {
		return o.X > l.cfg.World.Width+clearance
	}
	return o.X < -o.W-clearance
}

// SupportFor returns the first platform overlapping b, or nil.
func (l *Lane) SupportFor(b core.Box) *Obstacle {
	for i := range l.Obstacles {
		o := &l.Obstacles[i]
		if o.Supports() && o.Overlaps(b) {
			return o
		}
	}
	return nil
}

// HitBy returns the first lethal obstacle overlapping b, or nil.
func (l *Lane) HitBy(b core.Box) *Obstacle {
	for i := range l.Obstacles {
		o := &l.Obstacles[i]
		if o.Lethal() && o.Overlaps(b) {
			return o
		}
	}
	return nil
}

// Cooldown returns the ticks left before the next train. Zero while crossing.
func (l *Lane) Cooldown() int {
	return l.cooldown
}

// Warning reports whether a train is about to cross.
func (l *Lane) Warning() bool {
	return l.Type == LaneRail && l.cooldown > 0 && l.cooldown < l.cfg.Rail.WarningTicks
}

// Crowded reports whether any obstacle was placed after exhausting its attempts,
// in which case spacing is not guaranteed.
func (l *Lane) Crowded() bool {
	return l.crowded
}

func (l *Lane) placer() *placer {
	return &placer{
		rng:         l.rng,
		worldW:      l.cfg.World.Width,
		maxAttempts: l.cfg.Placement.MaxAttempts,
	}
}

// placer runs bounded rejection sampling for the obstacles of one lane.
type placer struct {
	rng         *rand.Rand
	worldW      float64
	maxAttempts int
	crowded     bool
}

// place draws up to maxAttempts left edges in [0, worldW-w] and returns the
// first one accepted by fits. When every draw is rejected the first draw is
// used anyway and the placer is marked crowded.
func (p *placer) place(w float64, fits func(x float64) bool) float64 {
	var first float64
	for attempt := 0; attempt < p.maxAttempts; attempt++ {
		x := p.draw(w)
		if attempt == 0 {
			first = x
		}
		if fits(x) {
			return x
		}
	}
	p.crowded = true
	return first
}

func (p *placer) draw(w float64) float64 {
	span := int(p.worldW - w)
	if span < 0 {
		span = 0
	}
	return float64(p.rng.Intn(span + 1))
}

// centerGapFits requires center-to-center distance of at least the two half
// widths plus gap to every placed obstacle.
func centerGapFits(placed []Obstacle, x, w, gap float64) bool {
	center := x + w/2
	for i := range placed {
		o := &placed[i]
		if math.Abs(center-o.CenterX()) < (w+o.W)/2+gap {
			return false
		}
	}
	return true
}

// edgeGapFits requires left-edge distance of at least w plus gap.
func edgeGapFits(placed []Obstacle, x, w, gap float64) bool {
	for i := range placed {
		if math.Abs(x-placed[i].X) < w+gap {
			return false
		}
	}
	return true
}

func randIntRange(rng *rand.Rand, r config.IntRange) int {
	if r.Max <= r.Min {
		return r.Min
	}
	return r.Min + rng.Intn(r.Max-r.Min+1)
}

func randFloatRange(rng *rand.Rand, r config.FloatRange) float64 {
	return r.Min + rng.Float64()*(r.Max-r.Min)
}

func randDir(rng *rand.Rand) int {
	if rng.Intn(2) == 0 {
		return -1
	}
	return 1
}
