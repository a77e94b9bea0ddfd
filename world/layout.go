package world

import (
	"fmt"
	"math"
)

// Layout is the geometry of the grid in pixels. It is computed once, from the
// area available for drawing and the size we would like the pieces to have.
type Layout struct {
	Margin float64
	Radius float64
	NRows  int64
	NCols  int64
}

// NewLayout fits as many columns of pieces of about targetDiameter pixels as
// possible in width, then grows the pieces so that the columns fill the whole
// width. The number of rows is rounded up, so the last row may be partially
// outside of height.
func NewLayout(width, height, targetDiameter, margin float64) (l Layout, err error) {
	l.Margin = margin
	l.NCols = int64(math.Floor((width - margin) / (targetDiameter + margin)))
	if l.NCols < 1 {
		return l, fmt.Errorf("width %v cannot hold a single piece of "+
			"diameter %v", width, targetDiameter)
	}

	remainingSpace := width - (float64(l.NCols)*margin + margin)
	l.Radius = remainingSpace / float64(l.NCols) / 2

	l.NRows = int64(math.Ceil((height - margin) / (l.Radius*2 + margin)))
	if l.NRows < 1 {
		return l, fmt.Errorf("height %v cannot hold a single piece of "+
			"diameter %v", height, l.Radius*2)
	}
	return l, nil
}

// Spacing is the distance between the centers of two neighboring pieces.
func (l Layout) Spacing() float64 {
	return 2*l.Radius + l.Margin
}

func (l Layout) CellCenter(pos Pt) Vec {
	return Vec{
		X: l.Margin + l.Radius + float64(pos.X)*l.Spacing(),
		Y: l.Margin + l.Radius + float64(pos.Y)*l.Spacing(),
	}
}

// RestTransform is the transform of a piece sitting still in pos.
func (l Layout) RestTransform(pos Pt) Affine {
	m := Identity()
	c := l.CellCenter(pos)
	m.Translate(c.X, c.Y)
	return m
}

// PixelToCell returns the cell that contains the pixel. The result may be
// outside the grid.
func (l Layout) PixelToCell(p Vec) Pt {
	return Pt{
		X: int64(math.Floor((p.X - l.Margin) / l.Spacing())),
		Y: int64(math.Floor((p.Y - l.Margin) / l.Spacing())),
	}
}

func (l Layout) PixelSize() Vec {
	return Vec{
		X: float64(l.NCols)*l.Spacing() + l.Margin,
		Y: float64(l.NRows)*l.Spacing() + l.Margin,
	}
}
