package gleam3d

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Present blits a rendered frame onto an ebiten screen. When the sizes match
// the pixels are written directly; otherwise the frame is drawn scaled to
// fit, which covers window resizes between Layout calls.
func Present(screen *ebiten.Image, frame *image.RGBA) {
	if frame == nil {
		return
	}
	bounds := frame.Bounds()
	sw, sh := screen.Bounds().Dx(), screen.Bounds().Dy()

	if bounds.Dx() == sw && bounds.Dy() == sh {
		screen.WritePixels(frame.Pix)
		return
	}

	img := ebiten.NewImageFromImage(frame)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(sw)/float64(bounds.Dx()), float64(sh)/float64(bounds.Dy()))
	screen.DrawImage(img, op)
}

// PresentMessage overlays a short status line, used for texture-load
// fallback notices.
func PresentMessage(screen *ebiten.Image, msg string) {
	if msg == "" {
		return
	}
	ebitenutil.DebugPrint(screen, msg)
}
