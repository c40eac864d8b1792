package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/milk9111/rollrunner/session"
	"golang.org/x/image/colornames"
	"golang.org/x/image/font/basicfont"
)

const hudMargin = 16

// HUD draws the session's elapsed-time readout in the top-right corner.
type HUD struct {
	face text.Face
}

func NewHUD() *HUD {
	return &HUD{face: text.NewGoXFace(basicfont.Face7x13)}
}

func (h *HUD) Draw(screen *ebiten.Image, s *session.Session) {
	if h == nil || screen == nil {
		return
	}
	op := &text.DrawOptions{}
	op.PrimaryAlign = text.AlignEnd
	op.GeoM.Scale(2, 2)
	op.GeoM.Translate(float64(screen.Bounds().Dx()-hudMargin), hudMargin)
	op.ColorScale.ScaleWithColor(colornames.White)
	text.Draw(screen, s.TimerText(), h.face, op)
}
