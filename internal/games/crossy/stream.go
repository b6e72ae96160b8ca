package crossy

import (
	"math"
	"math/rand"

	"github.com/vovakirdan/lanehop/internal/config"
)

// Stream is the endless sequence of lanes ahead of the camera.
// Lanes are ordered by decreasing y: index 0 is the oldest, nearest the
// bottom of the world; the last lane is furthest ahead.
type Stream struct {
	lanes      []*Lane
	generated  int     // Lanes generated since the stream started
	origin     float64 // Y of the first lane
	speedScale float64
	env        Environment
	cfg        *config.CrossyConfig
	rng        *rand.Rand
}

// NewStream creates an empty stream whose first lane will sit at origin.
func NewStream(env Environment, origin float64, cfg *config.CrossyConfig, rng *rand.Rand) *Stream {
	return &Stream{
		lanes:      make([]*Lane, 0, cfg.Stream.MinLanes+cfg.Stream.InitialLanes),
		origin:     origin,
		speedScale: 1.0,
		env:        env,
		cfg:        cfg,
		rng:        rng,
	}
}

// Prime generates the starting safe zone followed by the initial look-ahead.
func (s *Stream) Prime() {
	total := s.cfg.Stream.StartSafeLanes + s.cfg.Stream.InitialLanes
	for i := 0; i < total; i++ {
		s.GenerateNext()
	}
}

// GenerateNext appends one lane a grid unit ahead of the furthest lane.
func (s *Stream) GenerateNext() *Lane {
	y := s.origin
	if last := s.Furthest(); last != nil {
		y = last.Y - s.cfg.World.Grid
	}

	s.generated++
	lane := newLane(y, s.nextType(), s.env, s.cfg, s.rng, s.speedScale)
	s.lanes = append(s.lanes, lane)
	return lane
}

// nextType picks the type of the lane with the current generation index.
// The starting zone and every safe_every-th lane are rest stops.
func (s *Stream) nextType() LaneType {
	n := s.generated
	if n <= s.cfg.Stream.StartSafeLanes || n%s.cfg.Stream.SafeEvery == 0 {
		return LaneSafe
	}
	return pickLaneType(s.env, s.rng)
}

// Maintain keeps lanes generated at least the retention window ahead of the
// camera and drops lanes that fell more than the window behind it.
// It returns how many lanes were added and evicted.
func (s *Stream) Maintain(cameraY float64) (added, evicted int) {
	window := s.cfg.Stream.Retention * s.cfg.World.Height

	for s.needsLane(cameraY - window) {
		s.GenerateNext()
		added++
	}

	kept := s.lanes[:0]
	for _, l := range s.lanes {
		if l.Y > cameraY+window {
			evicted++
			continue
		}
		kept = append(kept, l)
	}
	for i := len(kept); i < len(s.lanes); i++ {
		s.lanes[i] = nil
	}
	s.lanes = kept
	return added, evicted
}

func (s *Stream) needsLane(horizon float64) bool {
	if len(s.lanes) < s.cfg.Stream.MinLanes {
		return true
	}
	last := s.Furthest()
	return last == nil || last.Y > horizon
}

// Update advances every live lane by one tick.
func (s *Stream) Update() {
	for _, l := range s.lanes {
		l.Update()
	}
}

// LaneAt returns the lane whose y is within half a grid unit of y, or nil.
func (s *Stream) LaneAt(y float64) *Lane {
	half := s.cfg.World.Grid / 2
	for _, l := range s.lanes {
		if math.Abs(l.Y-y) < half {
			return l
		}
	}
	return nil
}

// Furthest returns the lane furthest ahead, or nil for an empty stream.
func (s *Stream) Furthest() *Lane {
	if len(s.lanes) == 0 {
		return nil
	}
	return s.lanes[len(s.lanes)-1]
}

// Lanes returns the live lanes in generation order.
func (s *Stream) Lanes() []*Lane {
	return s.lanes
}

// Generated returns the number of lanes generated so far.
func (s *Stream) Generated() int {
	return s.generated
}

// SetSpeedScale sets the speed multiplier for lanes generated from now on.
func (s *Stream) SetSpeedScale(scale float64) {
	s.speedScale = scale
}
