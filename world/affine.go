package world

// Affine is a 2D transformation matrix in column major orientation:
//
//	A  B  0
//	C  D  0
//	E  F  1
//
// It maps (x, y) to (A*x + C*y + E, B*x + D*y + F). The shape of a piece is
// defined around (0, 0), so E and F are the center of the piece on screen and
// A..D only scale it.
type Affine struct {
	A float64
	B float64
	C float64
	D float64
	E float64
	F float64
}

func Identity() Affine {
	return Affine{A: 1, D: 1}
}

func (m *Affine) Translate(dx, dy float64) {
	m.E += dx
	m.F += dy
}

// Scale scales around the center of the piece, the translation is not
// affected.
func (m *Affine) Scale(factor float64) {
	m.A *= factor
	m.B *= factor
	m.C *= factor
	m.D *= factor
}

func (m Affine) ScaleFactor() float64 {
	return m.A
}

func (m Affine) Center() Vec {
	return Vec{m.E, m.F}
}
