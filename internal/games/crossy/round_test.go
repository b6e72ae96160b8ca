package crossy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/lanehop/internal/config"
)

func newTestRound(cfg *config.CrossyConfig, highScore int) *Round {
	return NewRound(cfg, EnvCity, 1, highScore, nil)
}

// hop commands one move and ticks until it lands.
func hop(t *testing.T, r *Round, d Direction) Result {
	t.Helper()
	res := r.Tick(d)
	require.True(t, r.Player().Hopping() || res.Terminal)
	for r.Player().Hopping() && !res.Terminal {
		res = r.Tick(DirNone)
	}
	return res
}

// laneUnderPlayer rewrites the player's current lane for a scenario.
func laneUnderPlayer(t *testing.T, r *Round, lt LaneType, obstacles ...Obstacle) *Lane {
	t.Helper()
	lane := r.Stream().LaneAt(r.Player().Y)
	require.NotNil(t, lane)
	lane.Type = lt
	lane.Obstacles = obstacles
	return lane
}

func TestRoundStartsInSafeZone(t *testing.T) {
	cfg := testConfig()
	r := newTestRound(cfg, 0)

	res := r.Result()
	assert.Zero(t, res.Score)
	assert.False(t, res.Terminal)
	assert.Equal(t, r.Player().Y-cfg.Camera.Bias*cfg.World.Height, r.CameraY())
	assert.Equal(t, LaneSafe, r.Stream().LaneAt(r.Player().Y).Type)
	assert.GreaterOrEqual(t, len(r.Stream().Lanes()), cfg.Stream.MinLanes)
}

func TestRoundScoreIsRunningMax(t *testing.T) {
	cfg := testConfig()
	cfg.World.Height = 660
	r := newTestRound(cfg, 0)
	require.Equal(t, 560.0, r.Player().StartY)

	hop(t, r, DirUp)
	res := hop(t, r, DirUp)
	require.Equal(t, 480.0, r.Player().Y)
	assert.Equal(t, 2, res.Score)

	res = hop(t, r, DirDown)
	require.Equal(t, 520.0, r.Player().Y)
	assert.Equal(t, 2, res.Score)
	assert.False(t, res.Terminal)
}

func TestRoundDrownsWithoutPlatform(t *testing.T) {
	r := newTestRound(testConfig(), 0)
	laneUnderPlayer(t, r, LaneRiver)

	res := r.Tick(DirNone)
	assert.True(t, res.Terminal)
	assert.Equal(t, OutcomeDrowned, res.Outcome)
	assert.Nil(t, r.Player().Support)
}

func TestRoundPlatformCarriesPlayer(t *testing.T) {
	r := newTestRound(testConfig(), 0)
	y := r.Player().Y
	lane := laneUnderPlayer(t, r, LaneRiver, newObstacle(VariantLog, 350, y, 120, 30, 2, 1))

	res := r.Tick(DirNone)
	require.False(t, res.Terminal)
	require.Same(t, &lane.Obstacles[0], r.Player().Support)
	assert.Equal(t, 400.0, r.Player().X, "support applies from the next tick")

	res = r.Tick(DirNone)
	require.False(t, res.Terminal)
	assert.Equal(t, 402.0, r.Player().X)
	assert.Equal(t, 354.0, lane.Obstacles[0].X)

	// Leaving the river clears the support.
	hop(t, r, DirUp)
	assert.Nil(t, r.Player().Support)
}

func TestRoundLethalObstacles(t *testing.T) {
	tests := []struct {
		name     string
		lane     LaneType
		obstacle Obstacle
		active   bool
		want     Outcome
	}{
		{"car", LaneRoad, newObstacle(VariantCar, 390, 0, 80, 30, 1, 1), false, OutcomeVehicle},
		{"bus", LaneRoad, newObstacle(VariantBus, 380, 0, 120, 30, 1, -1), false, OutcomeVehicle},
		{"robot", LaneHazard, newObstacle(VariantRobot, 395, 0, 35, 35, 1, 1), false, OutcomeHazard},
		{"active train", LaneRail, newObstacle(VariantTrain, 380, 0, 240, 35, 8, 1), true, OutcomeTrain},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRound(testConfig(), 0)
			o := tt.obstacle
			o.Y = r.Player().Y
			o.Active = tt.active
			laneUnderPlayer(t, r, tt.lane, o)

			res := r.Tick(DirNone)
			assert.True(t, res.Terminal)
			assert.Equal(t, tt.want, res.Outcome)
		})
	}
}

func TestRoundWaitingTrainIsHarmless(t *testing.T) {
	r := newTestRound(testConfig(), 0)
	train := newObstacle(VariantTrain, 380, r.Player().Y, 240, 35, 8, 1)
	lane := laneUnderPlayer(t, r, LaneRail, train)
	lane.cooldown = 100

	for i := 0; i < 50; i++ {
		res := r.Tick(DirNone)
		require.False(t, res.Terminal)
	}
	assert.False(t, lane.Obstacles[0].Active)
}

func TestRoundTerminalLatches(t *testing.T) {
	r := newTestRound(testConfig(), 0)
	laneUnderPlayer(t, r, LaneRiver)

	first := r.Tick(DirNone)
	require.True(t, first.Terminal)
	ticks := r.Ticks()

	again := r.Tick(DirUp)
	assert.Equal(t, first, again)
	assert.Equal(t, ticks, r.Ticks())
	assert.False(t, r.Player().Hopping())
}

func TestRoundHighScore(t *testing.T) {
	tests := []struct {
		name     string
		carried  int
		wantHigh int
		wantNew  bool
	}{
		{"beats carried best", 1, 2, true},
		{"below carried best", 5, 5, false},
		{"ties carried best", 2, 2, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := newTestRound(testConfig(), tt.carried)
			hop(t, r, DirUp)
			hop(t, r, DirUp)

			res := r.Result()
			require.Equal(t, 2, res.Score)
			assert.Equal(t, tt.carried, res.HighScore, "best only moves at game over")

			laneUnderPlayer(t, r, LaneRiver)
			res = r.Tick(DirNone)
			require.True(t, res.Terminal)
			assert.Equal(t, tt.wantHigh, res.HighScore)
			assert.Equal(t, tt.wantNew, res.IsHighScore)
		})
	}
}

func TestRoundCameraEasesAndSnaps(t *testing.T) {
	cfg := testConfig()
	r := newTestRound(cfg, 0)

	hop(t, r, DirUp)
	target := r.Player().Y - cfg.Camera.Bias*cfg.World.Height
	assert.Greater(t, r.CameraY(), target, "camera lags behind the hop")

	for i := 0; i < 200; i++ {
		r.Tick(DirNone)
	}
	assert.Equal(t, target, r.CameraY())
}

func TestRoundDeterministic(t *testing.T) {
	run := func() (Result, float64, float64, int) {
		r := NewRound(testConfig(), EnvVillage, 99, 0, nil)
		bot := NewBot(5)
		for i := 0; i < 3000 && !r.Result().Terminal; i++ {
			r.Tick(bot.Decide(r))
		}
		return r.Result(), r.Player().X, r.Player().Y, r.Ticks()
	}

	res1, x1, y1, t1 := run()
	res2, x2, y2, t2 := run()
	assert.Equal(t, res1, res2)
	assert.Equal(t, x1, x2)
	assert.Equal(t, y1, y2)
	assert.Equal(t, t1, t2)
}

func TestOutcomeString(t *testing.T) {
	assert.Empty(t, OutcomeNone.String())
	assert.Equal(t, "drowned", OutcomeDrowned.String())
	assert.Equal(t, "hit by train", OutcomeTrain.String())
}
