package systems

import (
	"image/color"
	"math"

	"github.com/automoto/cavefall/components"
	cfg "github.com/automoto/cavefall/config"
	"github.com/automoto/cavefall/shared/physics"
	"github.com/automoto/cavefall/shared/rooms"
	"github.com/automoto/cavefall/tags"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/yohamta/donburi/ecs"
)

// The room and the miner are drawn into roomCanvas in room space, then the
// canvas is turned by the rotation tween and shaken onto the screen.
var roomCanvas *ebiten.Image
var roomDrawOp = &ebiten.DrawImageOptions{}

func DrawRoom(ecs *ecs.ECS, screen *ebiten.Image) {
	_, level, ok := GetLevel(ecs)
	if !ok {
		return
	}
	if roomCanvas == nil {
		roomCanvas = ebiten.NewImage(rooms.Extent, rooms.Extent)
	}
	roomCanvas.Clear()

	room := level.Sim.Room
	drawBackdrop(roomCanvas, room)
	drawTiles(roomCanvas, room)
	drawMiner(ecs, roomCanvas)

	const c = rooms.Extent / 2.0
	roomDrawOp.GeoM.Reset()
	roomDrawOp.GeoM.Translate(-c, -c)
	roomDrawOp.GeoM.Rotate(viewAngle(ecs) * math.Pi / 180)
	sx, sy := shakeOffset(ecs)
	roomDrawOp.GeoM.Translate(float64(screen.Bounds().Dx())/2+sx, float64(screen.Bounds().Dy())/2+sy)
	screen.DrawImage(roomCanvas, roomDrawOp)
}

// drawBackdrop paints the decorative backdrop, one shade per index.
func drawBackdrop(dst *ebiten.Image, room *rooms.Room) {
	base := cfg.Room.BackgroundColor
	const size = float32(rooms.BackgroundTileSize)
	for row := 0; row < rooms.BackgroundSize; row++ {
		for col := 0; col < rooms.BackgroundSize; col++ {
			idx := room.Background(col, row)
			shade := uint8(idx * 2)
			clr := color.RGBA{R: base.R + shade, G: base.G + shade, B: base.B + shade, A: 255}
			vector.FillRect(dst, float32(col)*size, float32(row)*size, size, size, clr, false)
			// Speckle on the brighter backdrop tiles.
			if idx > 7 {
				vector.FillRect(dst, float32(col)*size+float32(idx*5%48)+6, float32(row)*size+float32(idx*7%48)+6, 2, 2, cfg.Stone, false)
			}
		}
	}
}

func drawTiles(dst *ebiten.Image, room *rooms.Room) {
	const ts = float32(rooms.TileSize)
	for row := 0; row < rooms.Size; row++ {
		for col := 0; col < rooms.Size; col++ {
			x, y := float32(col)*ts, float32(row)*ts
			switch room.Tile(col, row) {
			case rooms.Ground:
				vector.FillRect(dst, x, y, ts, ts, cfg.Room.GroundColor, false)
				vector.StrokeRect(dst, x+1, y+1, ts-2, ts-2, 1, darken(cfg.Room.GroundColor), false)
			case rooms.Exit:
				vector.FillRect(dst, x, y, ts, ts, cfg.Room.ExitColor, false)
			case rooms.Start:
				vector.StrokeRect(dst, x+2, y+2, ts-4, ts-4, 2, cfg.Room.StartColor, false)
			case rooms.Stalagmite:
				drawSpike(dst, x, y, true)
			case rooms.Stalactite:
				drawSpike(dst, x, y, false)
			case rooms.Rail:
				vector.FillRect(dst, x, y+ts/2-2, ts, 4, cfg.Room.RailColor, false)
			}
		}
	}
}

// drawSpike draws a stepped spike filling one tile, pointing up or down.
func drawSpike(dst *ebiten.Image, x, y float32, up bool) {
	const steps = 4
	const ts = float32(rooms.TileSize)
	stepH := ts / steps
	for i := 0; i < steps; i++ {
		// i == 0 is the wide base.
		inset := float32(i) * ts / (2 * steps)
		sy := y + ts - float32(i+1)*stepH
		if !up {
			sy = y + float32(i)*stepH
		}
		vector.FillRect(dst, x+inset, sy, ts-2*inset, stepH, cfg.Room.HazardColor, false)
	}
}

// drawMiner draws the player procedurally from its animation frame.
func drawMiner(ecs *ecs.ECS, dst *ebiten.Image) {
	entry, ok := tags.Player.First(ecs.World)
	if !ok {
		return
	}
	miner := components.Player.Get(entry).Miner
	anim := components.Animation.Get(entry)
	flash := components.Flash.Get(entry)

	frame := 0
	if anim.CurrentAnimation != nil {
		frame = anim.CurrentAnimation.Frame()
	}

	body := cfg.Player.Color
	if flash.Duration > 0 && flash.Duration%4 < 2 {
		body = tint(body, flash.R, flash.G, flash.B)
	}

	x := float32(miner.Position.X)
	y := float32(miner.Position.Y)
	w := float32(miner.Width)
	h := float32(miner.Height)

	// Crouch while getting up, bob while idle.
	squat := float32(0)
	switch miner.State {
	case physics.Grounded:
		squat = float32(3-frame) * 3
	case physics.Idle:
		squat = float32(frame % 2)
	}

	legW := w / 6
	legH := h / 4
	left, right := float32(0), float32(0)
	if miner.State == physics.Walking {
		stride := float32(frame%4) - 1.5
		left, right = stride, -stride
	}
	vector.FillRect(dst, x+w/3-legW/2+left, y+h-legH, legW, legH, darken(body), false)
	vector.FillRect(dst, x+2*w/3-legW/2+right, y+h-legH, legW, legH, darken(body), false)

	torsoTop := y + h/3 + squat
	vector.FillRect(dst, x+w/4, torsoTop, w/2, y+h-legH-torsoTop, body, false)

	// Arms up while falling or turning.
	if miner.State == physics.Falling || miner.State == physics.Rotating {
		wave := float32(frame%2) * 2
		vector.FillRect(dst, x+w/4-legW, torsoTop-h/6-wave, legW, h/4, body, false)
		vector.FillRect(dst, x+3*w/4, torsoTop-h/6+wave, legW, h/4, body, false)
	}

	helmetTop := torsoTop - h/4
	vector.FillRect(dst, x+w/4-1, helmetTop, w/2+2, h/4, cfg.Yellow, false)
	lampX := x + 3*w/4
	if miner.Facing == physics.FacingLeft {
		lampX = x + w/4 - 4
	}
	vector.FillRect(dst, lampX, helmetTop+2, 4, 4, cfg.White, false)
}

func darken(c color.RGBA) color.RGBA {
	return color.RGBA{R: c.R / 2, G: c.G / 2, B: c.B / 2, A: c.A}
}

// tint blends c halfway toward the flash color.
func tint(c color.RGBA, r, g, b float32) color.RGBA {
	mix := func(v uint8, f float32) uint8 {
		return uint8((float32(v) + 255*f) / 2)
	}
	return color.RGBA{R: mix(c.R, r), G: mix(c.G, g), B: mix(c.B, b), A: c.A}
}
