package chess

// A MoveTag marks a notable consequence of a move. Tags combine as a
// bitmask: a promoting capture carries both Capture and Promotion.
type MoveTag uint8

const (
	// Capture indicates that the move captures a piece.
	Capture MoveTag = 1 << iota
	// EnPassant indicates that the move captures a pawn en passant.
	EnPassant
	// DoublePawnPush indicates a two-square pawn advance.
	DoublePawnPush
	// KingSideCastle indicates that the move is a king side castle.
	KingSideCastle
	// QueenSideCastle indicates that the move is a queen side castle.
	QueenSideCastle
	// Promotion indicates that the move promotes a pawn.
	Promotion
)

// A Move is an executed or generated movement of a piece, with the
// derived notations and surrounding positions materialized.
type Move struct {
	// SAN is the move in Standard Algebraic Notation.
	SAN string
	// LAN is the move in long coordinate notation (e.g. "e2e4", "e7e8q").
	LAN string
	// Before is the FEN of the position the move was played in.
	Before string
	// After is the FEN of the position the move produced.
	After string
	// Color is the moving side.
	Color Color
	// From is the origin square.
	From Square
	// To is the destination square.
	To Square
	// Piece is the moving piece type.
	Piece PieceType
	// Captured is the captured piece type, or NoPieceType.
	Captured PieceType
	// Promotion is the promotion piece type, or NoPieceType.
	Promotion PieceType
	// Tags is the set of MoveTag flags for the move.
	Tags MoveTag
}

// HasTag returns true if the move carries the given MoveTag.
func (m Move) HasTag(tag MoveTag) bool {
	return m.Tags&tag > 0
}

// Flags returns the move's tags as the conventional flag letters:
// "n" none, "b" double pawn push, "e" en passant, "c" capture,
// "k" king side castle, "q" queen side castle, "p" promotion.
func (m Move) Flags() string {
	var s []byte
	if m.Tags&DoublePawnPush > 0 {
		s = append(s, 'b')
	}
	if m.Tags&EnPassant > 0 {
		s = append(s, 'e')
	}
	if m.Tags&Capture > 0 {
		s = append(s, 'c')
	}
	if m.Tags&KingSideCastle > 0 {
		s = append(s, 'k')
	}
	if m.Tags&QueenSideCastle > 0 {
		s = append(s, 'q')
	}
	if m.Tags&Promotion > 0 {
		s = append(s, 'p')
	}
	if len(s) == 0 {
		return "n"
	}
	return string(s)
}

// String returns a string useful for debugging. String doesn't return
// algebraic notation.
func (m Move) String() string {
	return m.From.String() + m.To.String() + m.Promotion.String()
}

// A MoveArg is the argument to Game.Move: either a SANMove or a
// MoveDescriptor.
type MoveArg interface {
	moveArg()
}

// SANMove is a move given in Standard Algebraic Notation, e.g. "Nxf3+".
type SANMove string

func (SANMove) moveArg() {}

// MoveDescriptor is a move given as explicit coordinates.
type MoveDescriptor struct {
	// From is the origin square.
	From Square
	// To is the destination square.
	To Square
	// Promotion is the promotion piece type for promoting pawn moves,
	// NoPieceType otherwise.
	Promotion PieceType
}

func (MoveDescriptor) moveArg() {}

// moveCandidate is the internal move representation used by the
// generator and the apply/undo machinery. Squares are 0x88 indexes.
type moveCandidate struct {
	from      int
	to        int
	piece     PieceType
	captured  PieceType
	promotion PieceType
	tags      MoveTag
}

func (c moveCandidate) lan() string {
	s := squareFrom0x88(c.from).String() + squareFrom0x88(c.to).String()
	if c.promotion != NoPieceType {
		s += c.promotion.String()
	}
	return s
}
