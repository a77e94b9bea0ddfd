package world

// Pt is a position in the grid. X is the column, Y is the row. Row 0 is the
// top row.
type Pt struct {
	X int64
	Y int64
}

func (p Pt) Plus(other Pt) Pt {
	return Pt{p.X + other.X, p.Y + other.Y}
}

func (p Pt) Minus(other Pt) Pt {
	return Pt{p.X - other.X, p.Y - other.Y}
}

func (p Pt) Times(multiply int64) Pt {
	return Pt{p.X * multiply, p.Y * multiply}
}

func (p Pt) SquaredDistTo(other Pt) int64 {
	d := other.Minus(p)
	return d.X*d.X + d.Y*d.Y
}

// Vec is a position or displacement in pixels.
type Vec struct {
	X float64
	Y float64
}

func (v Vec) Plus(other Vec) Vec {
	return Vec{v.X + other.X, v.Y + other.Y}
}

func (v Vec) Minus(other Vec) Vec {
	return Vec{v.X - other.X, v.Y - other.Y}
}

func (v Vec) Times(multiply float64) Vec {
	return Vec{v.X * multiply, v.Y * multiply}
}
