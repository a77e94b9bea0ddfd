package world

// Grid holds exactly one piece per cell, in row-major order.
type Grid struct {
	cells []*Piece
	size  Pt
}

func NewGrid(nRows, nCols int64) Grid {
	g := Grid{}
	g.size = Pt{nCols, nRows}
	g.cells = make([]*Piece, nRows*nCols)
	return g
}

func (g *Grid) Dimensions() (nRows int64, nCols int64) {
	return g.size.Y, g.size.X
}

func (g *Grid) InBounds(pos Pt) bool {
	return pos.X >= 0 &&
		pos.Y >= 0 &&
		pos.Y < g.size.Y &&
		pos.X < g.size.X
}

// Adjacent is true if a and b are different cells that share a side.
func (g *Grid) Adjacent(a, b Pt) bool {
	return a.SquaredDistTo(b) == 1
}

func (g *Grid) Get(pos Pt) *Piece {
	g.mustBeInBounds(pos)
	return g.cells[pos.Y*g.size.X+pos.X]
}

func (g *Grid) Set(pos Pt, p *Piece) {
	g.mustBeInBounds(pos)
	g.cells[pos.Y*g.size.X+pos.X] = p
}

func (g *Grid) mustBeInBounds(pos Pt) {
	checkf(g.InBounds(pos), "cell (row %d, col %d) is outside of a %dx%d grid",
		pos.Y, pos.X, g.size.Y, g.size.X)
}
