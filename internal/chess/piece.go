package chess

// Piece is a single chessman. Its square is maintained by the Board it sits
// on; a removed or captured piece has no square.
type Piece struct {
	kind   Kind
	colour Colour

	square Square
	placed bool

	// moveCount is the only record of whether the piece has moved.
	// Castling and the pawn double step are derived from it.
	moveCount int
}

// NewPiece creates an unplaced piece that has never moved.
func NewPiece(kind Kind, colour Colour) *Piece {
	return &Piece{kind: kind, colour: colour}
}

// Kind returns the piece variant.
func (p *Piece) Kind() Kind {
	return p.kind
}

// Colour returns the owning side.
func (p *Piece) Colour() Colour {
	return p.colour
}

// Square returns the piece's square and whether it is on a board.
func (p *Piece) Square() (Square, bool) {
	return p.square, p.placed
}

// MoveCount returns the number of confirmed moves this piece has made.
func (p *Piece) MoveCount() int {
	return p.moveCount
}

// HasMoved reports whether the piece has made at least one move.
func (p *Piece) HasMoved() bool {
	return p.moveCount > 0
}

// RecordMove increments the move counter after a confirmed move.
func (p *Piece) RecordMove() {
	p.moveCount++
}

// Letter returns the FEN letter: uppercase for White, lowercase for Black.
func (p *Piece) Letter() byte {
	letter := p.kind.Letter()
	if p.colour == Black {
		letter += 'a' - 'A'
	}
	return letter
}

// String returns the FEN letter as a string.
func (p *Piece) String() string {
	return string(p.Letter())
}

// Occupant returns the kind and colour of the piece.
func (p *Piece) Occupant() Occupant {
	return Occupant{Kind: p.kind, Colour: p.colour}
}

// Promote returns a new piece of the given kind that inherits the colour and
// move count of p. The caller is responsible for swapping it onto the board.
func (p *Piece) Promote(kind Kind) *Piece {
	return &Piece{kind: kind, colour: p.colour, moveCount: p.moveCount}
}

// clone copies the piece including its square.
func (p *Piece) clone() *Piece {
	c := *p
	return &c
}

// Occupant is the immutable view of a square's contents used for snapshots.
// The zero value is an empty square.
type Occupant struct {
	Kind   Kind
	Colour Colour
}

// Empty reports whether the occupant describes an empty square.
func (o Occupant) Empty() bool {
	return o.Kind == NoKind
}

// Letter returns the FEN letter for the occupant, or '.' for an empty square.
func (o Occupant) Letter() byte {
	if o.Empty() {
		return '.'
	}
	letter := o.Kind.Letter()
	if o.Colour == Black {
		letter += 'a' - 'A'
	}
	return letter
}
