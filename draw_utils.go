package main

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/marisvali/counters/gamedata"
	"github.com/marisvali/counters/world"
	"golang.org/x/image/font"
)

var colorUnknown = color.NRGBA{R: 120, G: 120, B: 120, A: 255}
var colorLabel = color.NRGBA{R: 255, G: 255, B: 255, A: 255}

// whiteSubImage is the source of shapes drawn with triangles, it must not
// touch the border of its parent.
var whiteImage = ebiten.NewImage(3, 3)
var whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)

func init() {
	whiteImage.Fill(color.White)
}

// DrawSprite draws img on screen, stretched to the target size.
// x and y are in the following coordinate system:
// - The top-left pixel of screen has coordinates (0, 0).
// - The bottom-right pixel of screen has coordinates
// (screenWidth - 1, screenHeight - 1).
func DrawSprite(screen *ebiten.Image, img *ebiten.Image,
	x float64, y float64, targetWidth float64, targetHeight float64) {
	op := &ebiten.DrawImageOptions{}
	imgSize := img.Bounds().Size()
	newDx := targetWidth / float64(imgSize.X)
	newDy := targetHeight / float64(imgSize.Y)
	op.GeoM.Scale(newDx, newDy)
	op.GeoM.Translate(float64(screen.Bounds().Min.X)+x,
		float64(screen.Bounds().Min.Y)+y)
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, op)
}

// GeoM converts a transform of the world into the matrix ebitengine uses.
// Both map (x, y) to (A*x + C*y + E, B*x + D*y + F).
func GeoM(t world.Affine) (m ebiten.GeoM) {
	m.SetElement(0, 0, t.A)
	m.SetElement(0, 1, t.C)
	m.SetElement(0, 2, t.E)
	m.SetElement(1, 0, t.B)
	m.SetElement(1, 1, t.D)
	m.SetElement(1, 2, t.F)
	return
}

// DrawAffine draws img with its center at the origin of t and its width
// equal to diameter when t doesn't scale.
func DrawAffine(screen *ebiten.Image, img *ebiten.Image, t world.Affine,
	diameter float64) {
	op := &ebiten.DrawImageOptions{}
	size := img.Bounds().Size()
	op.GeoM.Translate(-float64(size.X)/2, -float64(size.Y)/2)
	op.GeoM.Scale(diameter/float64(size.X), diameter/float64(size.Y))
	op.GeoM.Concat(GeoM(t))
	op.GeoM.Translate(float64(screen.Bounds().Min.X),
		float64(screen.Bounds().Min.Y))
	op.Filter = ebiten.FilterLinear
	screen.DrawImage(img, op)
}

// NewVisualImage renders a counter: a disc in the color of its group with the
// texture or the label on top.
func NewVisualImage(v gamedata.Visual, texture *ebiten.Image,
	face font.Face) *ebiten.Image {
	img := ebiten.NewImage(VisualSize, VisualSize)
	r := float32(VisualSize) / 2
	vector.DrawFilledCircle(img, r, r, r, v.Color, true)
	if texture != nil {
		DrawSprite(img, texture, 0, 0, VisualSize, VisualSize)
	} else if v.Label != "" {
		DrawText(img, face, v.Label, true, true, colorLabel)
	}
	return img
}

// DrawText draws message in screen, at the bottom-left or centered.
func DrawText(screen *ebiten.Image, face font.Face, message string,
	centerX bool, centerY bool, color color.Color) {
	// The origin of the text is kind of the lower-left corner of the bounds
	// of the text. If text.Draw happens at (x, y), most of the text will
	// appear above y and a little bit under y. To have all the pixels above
	// y, draw at (x, y - text.BoundString().Max.Y).
	textSize := text.BoundString(face, message)
	var offsetX int
	if centerX {
		offsetX = (screen.Bounds().Dx() - textSize.Dx()) / 2
	}

	var offsetY int
	if centerY {
		offsetY = (screen.Bounds().Dy() - textSize.Dy()) / 2
	}

	textX := screen.Bounds().Min.X + offsetX - textSize.Min.X
	textY := screen.Bounds().Max.Y - offsetY - textSize.Max.Y
	text.Draw(screen, message, face, textX, textY, color)
}

// SubImage returns a sub-region of screen.
// r indicates a rectangle inside of screen, in the following coordinate system:
// - The top-left pixel of screen has coordinates (0, 0).
// - The bottom-right pixel of screen has coordinates
// (screenWidth - 1, screenHeight - 1).
func SubImage(screen *ebiten.Image, r image.Rectangle) *ebiten.Image {
	// For img2 = img1.SubImage(pt1, pt2), img2.At(0, 0) should be the same
	// pixel as img1.At(pt1). Ebitengine keeps the coordinates of img1, so
	// shift r by the origin of screen.
	minPt := screen.Bounds().Min
	r.Min = r.Min.Add(minPt)
	r.Max = r.Max.Add(minPt)
	return screen.SubImage(r).(*ebiten.Image)
}

func FillRect(screen *ebiten.Image, r image.Rectangle, c color.Color) {
	vector.DrawFilledRect(screen,
		float32(screen.Bounds().Min.X+r.Min.X),
		float32(screen.Bounds().Min.Y+r.Min.Y),
		float32(r.Dx()), float32(r.Dy()), c, false)
}
