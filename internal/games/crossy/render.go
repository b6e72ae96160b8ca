package crossy

import (
	"fmt"
	"math"

	"github.com/vovakirdan/lanehop/internal/core"
)

// Terrain and obstacle glyphs
const (
	GrassChar   = '·'
	SnowChar    = '*'
	FloorChar   = '.'
	RoadChar    = ' '
	MarkingChar = '-'
	WaterChar   = '~'
	RailChar    = '='
	WarningChar = '!'
	CarChar     = '█'
	BusChar     = '▓'
	LogChar     = '▬'
	TrainChar   = '█'
	RobotChar   = 'R'
	AlienChar   = 'Ö'
)

// hudRows is the number of screen rows reserved above the playfield.
const hudRows = 1

var vehicleColors = [vehicleTints]core.Color{
	core.ColorRed, core.ColorYellow, core.ColorCyan, core.ColorMagenta, core.ColorOrange,
}

// viewport maps world coordinates to screen cells: one lane per row,
// x scaled from world width to the screen width.
type viewport struct {
	top    float64 // World y of the first playfield row
	grid   float64
	scaleX float64
	rows   int
}

func newViewport(r *Round, dst *core.Screen) viewport {
	cfg := r.cfg
	rows := dst.Height() - hudRows
	if rows < 1 {
		rows = 1
	}
	// The camera keeps the player bias*height below the top of the world view;
	// keep the same fraction of the terminal view above the player.
	top := r.CameraY() + cfg.Camera.Bias*(cfg.World.Height-float64(rows)*cfg.World.Grid)
	return viewport{
		top:    top,
		grid:   cfg.World.Grid,
		scaleX: float64(dst.Width()) / cfg.World.Width,
		rows:   rows,
	}
}

func (v viewport) row(y float64) int {
	return hudRows + int(math.Floor((y-v.top)/v.grid+0.5))
}

func (v viewport) col(x float64) int {
	return int(math.Floor(x * v.scaleX))
}

func (v viewport) cols(w float64) int {
	return max(1, int(math.Round(w*v.scaleX)))
}

func (v viewport) visible(row int) bool {
	return row >= hudRows && row < hudRows+v.rows
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	if g.round == nil {
		return
	}
	r := g.round
	vp := newViewport(r, dst)

	for _, lane := range r.Stream().Lanes() {
		row := vp.row(lane.Y)
		if !vp.visible(row) {
			continue
		}
		drawLane(dst, lane, row, r.Ticks())
		for i := range lane.Obstacles {
			drawObstacle(dst, vp, &lane.Obstacles[i], row)
		}
	}

	g.drawPlayer(dst, vp)
	g.drawHUD(dst)

	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	res := r.Result()
	if res.Terminal {
		title := "GAME OVER"
		if res.IsHighScore {
			title = "GAME OVER - NEW BEST!"
		}
		subtitle := fmt.Sprintf("%s  |  Score: %d  |  R to restart", capitalize(res.Outcome.String()), res.Score)
		drawCenteredMessage(dst, title, subtitle)
	}
}

// drawLane fills a row with the lane's terrain.
func drawLane(dst *core.Screen, lane *Lane, row, ticks int) {
	w := dst.Width()
	switch lane.Type {
	case LaneRoad:
		dst.FillRow(row, RoadChar, core.ColorDefault, core.ColorDarkGray)
		for x := 2; x < w; x += 6 {
			dst.SetColored(x, row, MarkingChar, core.ColorGray)
			dst.SetColored(x+1, row, MarkingChar, core.ColorGray)
		}
	case LaneRiver:
		fg, bg := core.ColorCyan, core.ColorBlue
		if lane.Env == EnvSnow {
			fg, bg = core.ColorWhite, core.ColorIceBlue
		}
		dst.FillRow(row, WaterChar, fg, bg)
	case LaneRail:
		dst.DrawHLine(0, row, w, RailChar, core.ColorBrown)
		if lane.Warning() && (ticks/10)%2 == 0 {
			dst.SetColored(0, row, WarningChar, core.ColorRed)
			dst.SetColored(w-1, row, WarningChar, core.ColorRed)
		}
	case LaneHazard:
		dst.DrawHLine(0, row, w, FloorChar, hazardFloorColor(lane.Env))
	default:
		ch, c := safeTerrain(lane.Env)
		dst.DrawHLine(0, row, w, ch, c)
	}
}

func safeTerrain(env Environment) (rune, core.Color) {
	switch env {
	case EnvSnow:
		return SnowChar, core.ColorWhite
	case EnvTech:
		return FloorChar, core.ColorGray
	case EnvVillage:
		return GrassChar, core.ColorBrightGreen
	default:
		return GrassChar, core.ColorGreen
	}
}

func hazardFloorColor(env Environment) core.Color {
	if env == EnvTech {
		return core.ColorPurple
	}
	return core.ColorDarkGray
}

// drawObstacle draws the visible part of an obstacle on its lane row.
func drawObstacle(dst *core.Screen, vp viewport, o *Obstacle, row int) {
	if o.Kind == KindRailVehicle && !o.Active {
		return
	}
	ch, c := obstacleGlyph(o)
	x0 := vp.col(o.X)
	for x := x0; x < x0+vp.cols(o.W); x++ {
		dst.SetColored(x, row, ch, c)
	}
}

func obstacleGlyph(o *Obstacle) (rune, core.Color) {
	switch o.Variant {
	case VariantBus:
		return BusChar, vehicleColors[o.Tint%vehicleTints]
	case VariantLog:
		return LogChar, core.ColorBrown
	case VariantTrain:
		return TrainChar, core.ColorRed
	case VariantRobot:
		return RobotChar, core.ColorGray
	case VariantAlien:
		return AlienChar, core.ColorBrightGreen
	default:
		return CarChar, vehicleColors[o.Tint%vehicleTints]
	}
}

// playerGlyph returns the sprite of the character, facing-independent.
func playerGlyph(c Character) (rune, core.Color) {
	switch c {
	case CharGuard:
		return 'G', core.ColorRed
	case CharSnowman:
		return '☃', core.ColorWhite
	case CharAndroid:
		return 'Å', core.ColorBrightGreen
	default:
		return '@', core.ColorYellow
	}
}

func (g *Game) drawPlayer(dst *core.Screen, vp viewport) {
	p := g.round.Player()
	row := vp.row(p.Y)
	if !vp.visible(row) {
		return
	}
	ch, c := playerGlyph(g.character)
	x0 := vp.col(p.X)
	for x := x0; x < x0+vp.cols(p.W); x++ {
		dst.SetColored(x, row, ch, c)
	}
}

func (g *Game) drawHUD(dst *core.Screen) {
	res := g.round.Result()
	dst.DrawHLine(0, 0, dst.Width(), ' ', core.ColorDefault)
	dst.DrawText(2, 0, fmt.Sprintf(" Score: %d ", res.Score))

	best := fmt.Sprintf(" Best: %d ", res.HighScore)
	if res.IsHighScore {
		best = " NEW BEST! "
	}
	dst.DrawTextColored(dst.Width()-len(best)-2, 0, best, core.ColorYellow)

	env := " " + g.round.Env().String() + " "
	dst.DrawTextCentered(0, env)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len([]rune(title)), len([]rune(subtitle))) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.ClearRect(core.NewRect(boxX, boxY, boxW, boxH))
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	dst.DrawText(boxX+(boxW-len([]rune(title)))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len([]rune(subtitle)))/2, boxY+3, subtitle)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	if r[0] >= 'a' && r[0] <= 'z' {
		r[0] -= 'a' - 'A'
	}
	return string(r)
}
