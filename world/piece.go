package world

// Piece is a counter on the grid. Kind decides what it matches with, Visual
// decides what it looks like. Several visuals can share a kind.
type Piece struct {
	Id        int64
	Kind      int64
	Visual    int64
	Transform Affine
	// Erased is set once the piece has shrunk away after being matched. An
	// erased piece is never drawn and never put back on the grid.
	Erased bool
}

// Asset is an entry of the catalog a World picks new pieces from.
type Asset struct {
	Kind   int64
	Visual int64
}

// Sprite is what the render collaborator gets for each cell, every frame.
type Sprite struct {
	// Id is the Id of the piece, it lets a renderer follow a piece across
	// frames.
	Id        int64
	Transform Affine
	Kind      int64
	Visual    int64
	Erased    bool
}
