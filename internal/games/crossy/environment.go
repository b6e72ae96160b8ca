package crossy

import "math/rand"

// Environment selects the lane mix and the look of a run.
type Environment int

const (
	EnvCity Environment = iota
	EnvVillage
	EnvSnow
	EnvTech
)

// String returns the display name of the environment.
func (e Environment) String() string {
	switch e {
	case EnvCity:
		return "City"
	case EnvVillage:
		return "Village"
	case EnvSnow:
		return "Snow"
	case EnvTech:
		return "Tech"
	default:
		return "Unknown"
	}
}

// Blurb is a one-line summary of the lanes found in the environment.
func (e Environment) Blurb() string {
	switch e {
	case EnvVillage:
		return "Village: roads and rivers with drifting logs"
	case EnvSnow:
		return "Snow: icy rivers and patrolling robots"
	case EnvTech:
		return "Tech: roads and alien-infested zones"
	default:
		return "City: busy roads and rail crossings"
	}
}

// LaneType is the terrain of a lane.
type LaneType int

const (
	LaneSafe LaneType = iota
	LaneRoad
	LaneRiver
	LaneRail
	LaneHazard
)

// String returns a short name for the lane type.
func (t LaneType) String() string {
	switch t {
	case LaneSafe:
		return "safe"
	case LaneRoad:
		return "road"
	case LaneRiver:
		return "river"
	case LaneRail:
		return "rail"
	case LaneHazard:
		return "hazard"
	default:
		return "unknown"
	}
}

type laneWeight struct {
	lane   LaneType
	weight int
}

// laneWeights is the per-environment distribution for lanes that are not
// forced Safe by the stream.
var laneWeights = map[Environment][3]laneWeight{
	EnvCity:    {{LaneRoad, 60}, {LaneRail, 10}, {LaneSafe, 30}},
	EnvVillage: {{LaneRoad, 40}, {LaneRiver, 40}, {LaneSafe, 20}},
	EnvSnow:    {{LaneRiver, 50}, {LaneSafe, 30}, {LaneHazard, 20}},
	EnvTech:    {{LaneRoad, 40}, {LaneHazard, 40}, {LaneSafe, 20}},
}

// pickLaneType draws a lane type from the environment's weight table.
// Unknown environments use the City table.
func pickLaneType(env Environment, rng *rand.Rand) LaneType {
	table, ok := laneWeights[env]
	if !ok {
		table = laneWeights[EnvCity]
	}

	total := 0
	for _, w := range table {
		total += w.weight
	}

	r := rng.Intn(total)
	for _, w := range table {
		if r < w.weight {
			return w.lane
		}
		r -= w.weight
	}
	return table[len(table)-1].lane
}

// Character is the playable avatar. Each one runs in its own environment.
type Character int

const (
	CharChicken Character = iota
	CharGuard
	CharSnowman
	CharAndroid
)

// Characters lists every playable character in menu order.
var Characters = []Character{CharChicken, CharAndroid, CharGuard, CharSnowman}

// ID returns the registry identifier of the character's game.
func (c Character) ID() string {
	switch c {
	case CharGuard:
		return "guard"
	case CharSnowman:
		return "snowman"
	case CharAndroid:
		return "android"
	default:
		return "chicken"
	}
}

// Name returns the display name of the character.
func (c Character) Name() string {
	switch c {
	case CharGuard:
		return "British Guard"
	case CharSnowman:
		return "Snowman"
	case CharAndroid:
		return "Android Robot"
	default:
		return "Chicken"
	}
}

// Environment returns the world the character plays in.
func (c Character) Environment() Environment {
	switch c {
	case CharGuard:
		return EnvVillage
	case CharSnowman:
		return EnvSnow
	case CharAndroid:
		return EnvTech
	default:
		return EnvCity
	}
}
