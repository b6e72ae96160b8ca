package crossy

import (
	"io"
	"math"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/lanehop/internal/config"
)

// Outcome is how a tick resolved for the player.
type Outcome int

const (
	OutcomeNone Outcome = iota
	OutcomeDrowned
	OutcomeVehicle
	OutcomeTrain
	OutcomeHazard
)

// String returns a short description used in logs and the score table.
func (o Outcome) String() string {
	switch o {
	case OutcomeDrowned:
		return "drowned"
	case OutcomeVehicle:
		return "hit by vehicle"
	case OutcomeTrain:
		return "hit by train"
	case OutcomeHazard:
		return "caught by hazard"
	default:
		return ""
	}
}

func outcomeFor(o *Obstacle) Outcome {
	switch o.Kind {
	case KindRailVehicle:
		return OutcomeTrain
	case KindHazard:
		return OutcomeHazard
	default:
		return OutcomeVehicle
	}
}

// Result is the per-tick summary surfaced to the UI layer.
type Result struct {
	Score       int
	HighScore   int
	IsHighScore bool // Score beats the best carried into this round
	Terminal    bool
	Outcome     Outcome
}

// Round owns all simulation state of one run: player, lanes, camera and score.
// A restart discards the round and builds a new one.
type Round struct {
	cfg        *config.CrossyConfig
	env        Environment
	player     *Player
	stream     *Stream
	difficulty *config.Ramp
	logger     *log.Logger

	cameraY     float64
	score       int
	highScore   int
	bestAtStart int
	terminal    bool
	outcome     Outcome
	ticks       int
}

// NewRound builds a fresh round. highScore is the best score carried over
// from earlier rounds. A nil logger discards output.
func NewRound(cfg *config.CrossyConfig, env Environment, seed int64, highScore int, logger *log.Logger) *Round {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	rng := rand.New(rand.NewSource(seed))
	player := NewPlayer(cfg)

	r := &Round{
		cfg:         cfg,
		env:         env,
		player:      player,
		stream:      NewStream(env, player.Y, cfg, rng),
		difficulty:  config.NewRamp(cfg.Difficulty),
		logger:      logger,
		highScore:   highScore,
		bestAtStart: highScore,
	}

	r.stream.Prime()
	r.cameraY = r.cameraTarget()
	r.stream.Maintain(r.cameraY)

	r.logger.Info("round started", "env", env, "seed", seed, "lanes", len(r.stream.Lanes()))
	return r
}

// Tick advances the round by one fixed step:
// intent -> player -> lanes -> collisions -> camera/score -> lane stream.
// A finished round ignores further ticks.
func (r *Round) Tick(intent Direction) Result {
	if r.terminal {
		return r.Result()
	}
	r.ticks++

	if intent != DirNone {
		r.player.Move(intent)
	}
	r.player.Update()
	r.stream.Update()

	outcome := r.Resolve()

	r.updateCamera()
	r.updateScore()

	if outcome != OutcomeNone {
		r.finish(outcome)
	}

	r.stream.SetSpeedScale(r.difficulty.SpeedScale(r.score, r.ticks))
	if added, evicted := r.stream.Maintain(r.cameraY); added > 0 || evicted > 0 {
		r.logger.Debug("lane stream maintained", "added", added, "evicted", evicted, "live", len(r.stream.Lanes()))
	}

	return r.Result()
}

// Resolve binds river support and checks lethal overlaps for the lane the
// player stands on. Support is resolved before obstacles.
func (r *Round) Resolve() Outcome {
	p := r.player
	lane := r.stream.LaneAt(p.Y)
	if lane == nil {
		p.Support = nil
		return OutcomeNone
	}

	if lane.Type == LaneRiver {
		p.Support = lane.SupportFor(p.Box)
		if p.Support == nil {
			return OutcomeDrowned
		}
	} else {
		p.Support = nil
	}

	if hit := lane.HitBy(p.Box); hit != nil {
		return outcomeFor(hit)
	}
	return OutcomeNone
}

func (r *Round) cameraTarget() float64 {
	return r.player.Y - r.cfg.Camera.Bias*r.cfg.World.Height
}

// updateCamera eases the camera towards its target and snaps when close.
func (r *Round) updateCamera() {
	target := r.cameraTarget()
	if math.Abs(target-r.cameraY) > r.cfg.Camera.Snap {
		r.cameraY += (target - r.cameraY) * r.cfg.Camera.Ease
	} else {
		r.cameraY = target
	}
}

// updateScore keeps the running maximum of forward progress in grid units.
func (r *Round) updateScore() {
	progress := int(math.Floor((r.player.StartY - r.player.Y) / r.cfg.World.Grid))
	if progress > r.score {
		r.score = progress
	}
}

func (r *Round) finish(o Outcome) {
	r.terminal = true
	r.outcome = o
	if r.score > r.highScore {
		r.highScore = r.score
	}
	r.logger.Info("round over",
		"env", r.env,
		"score", r.score,
		"cause", o,
		"ticks", r.ticks,
		"best", r.highScore,
	)
}

// raiseHighScore lifts the carried-over best, e.g. once storage is read.
func (r *Round) raiseHighScore(best int) {
	if best > r.bestAtStart {
		r.bestAtStart = best
	}
	if best > r.highScore {
		r.highScore = best
	}
}

// Result returns the current round summary.
func (r *Round) Result() Result {
	return Result{
		Score:       r.score,
		HighScore:   r.highScore,
		IsHighScore: r.score > r.bestAtStart,
		Terminal:    r.terminal,
		Outcome:     r.outcome,
	}
}

// Player returns the round's player.
func (r *Round) Player() *Player { return r.player }

// Stream returns the round's lane stream.
func (r *Round) Stream() *Stream { return r.stream }

// CameraY returns the camera's vertical offset in world units.
func (r *Round) CameraY() float64 { return r.cameraY }

// Ticks returns the number of simulated ticks.
func (r *Round) Ticks() int { return r.ticks }

// Env returns the round's environment.
func (r *Round) Env() Environment { return r.env }
