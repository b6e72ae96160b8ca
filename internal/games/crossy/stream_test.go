package crossy

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStream(env Environment, origin float64, seed int64) *Stream {
	return NewStream(env, origin, testConfig(), rand.New(rand.NewSource(seed)))
}

func TestStreamPrime(t *testing.T) {
	s := newTestStream(EnvCity, 500, 1)
	s.Prime()

	cfg := testConfig()
	lanes := s.Lanes()
	require.Len(t, lanes, cfg.Stream.StartSafeLanes+cfg.Stream.InitialLanes)
	assert.Equal(t, 500.0, lanes[0].Y)

	for i := 1; i < len(lanes); i++ {
		assert.Equal(t, lanes[i-1].Y-cfg.World.Grid, lanes[i].Y, "lane %d", i)
	}
	for i := 0; i < cfg.Stream.StartSafeLanes; i++ {
		assert.Equal(t, LaneSafe, lanes[i].Type, "starting lane %d", i)
	}
}

func TestStreamForcesSafeEveryFifth(t *testing.T) {
	for _, env := range []Environment{EnvCity, EnvVillage, EnvSnow, EnvTech} {
		s := newTestStream(env, 0, 42)
		for i := 0; i < 500; i++ {
			s.GenerateNext()
		}

		for i, lane := range s.Lanes() {
			n := i + 1
			if n%5 == 0 {
				assert.Equal(t, LaneSafe, lane.Type, "%s lane %d", env, n)
			}
		}
	}
}

func TestStreamRespectsEnvironmentMix(t *testing.T) {
	allowed := map[Environment][]LaneType{
		EnvCity:    {LaneSafe, LaneRoad, LaneRail},
		EnvVillage: {LaneSafe, LaneRoad, LaneRiver},
		EnvSnow:    {LaneSafe, LaneRiver, LaneHazard},
		EnvTech:    {LaneSafe, LaneRoad, LaneHazard},
	}

	for env, types := range allowed {
		s := newTestStream(env, 0, 3)
		seen := make(map[LaneType]int)
		for i := 0; i < 1000; i++ {
			seen[s.GenerateNext().Type]++
		}

		for lt := range seen {
			assert.Contains(t, types, lt, "%s produced %s", env, lt)
		}
		for _, lt := range types {
			assert.Positive(t, seen[lt], "%s never produced %s", env, lt)
		}
	}
}

func TestStreamMaintainEvictsBehindCamera(t *testing.T) {
	cfg := testConfig()
	s := newTestStream(EnvVillage, 3000, 9)
	s.Prime()

	cameraY := 1000.0
	window := cfg.Stream.Retention * cfg.World.Height
	require.Equal(t, 1200.0, window)

	added, evicted := s.Maintain(cameraY)

	// Lanes 3000, 2960, ..., 2240 are more than the window behind.
	assert.Equal(t, 20, evicted)
	assert.Positive(t, added)
	for _, lane := range s.Lanes() {
		assert.LessOrEqual(t, lane.Y, cameraY+window)
	}
	assert.Equal(t, 2200.0, s.Lanes()[0].Y)
	assert.LessOrEqual(t, s.Furthest().Y, cameraY-window)
	assert.GreaterOrEqual(t, len(s.Lanes()), cfg.Stream.MinLanes)
}

func TestStreamMaintainIsIdempotent(t *testing.T) {
	s := newTestStream(EnvCity, 500, 5)
	s.Prime()
	s.Maintain(110)

	generated := s.Generated()
	added, evicted := s.Maintain(110)
	assert.Zero(t, added)
	assert.Zero(t, evicted)
	assert.Equal(t, generated, s.Generated())
}

func TestStreamLaneAt(t *testing.T) {
	s := newTestStream(EnvCity, 500, 1)
	s.Prime()

	assert.Equal(t, 500.0, s.LaneAt(500).Y)
	assert.Equal(t, 500.0, s.LaneAt(481).Y)
	assert.Equal(t, 460.0, s.LaneAt(479).Y)
	assert.Nil(t, s.LaneAt(600))
}

func TestStreamDeterministic(t *testing.T) {
	a := newTestStream(EnvTech, 500, 1234)
	b := newTestStream(EnvTech, 500, 1234)
	a.Prime()
	b.Prime()
	a.Maintain(110)
	b.Maintain(110)

	require.Equal(t, len(a.Lanes()), len(b.Lanes()))
	for i := range a.Lanes() {
		la, lb := a.Lanes()[i], b.Lanes()[i]
		assert.Equal(t, la.Type, lb.Type)
		assert.Equal(t, la.Y, lb.Y)
		require.Equal(t, len(la.Obstacles), len(lb.Obstacles))
		for j := range la.Obstacles {
			assert.Equal(t, la.Obstacles[j].Box, lb.Obstacles[j].Box)
		}
	}
}
