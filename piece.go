package chess

// Color is the side a piece or player belongs to.
type Color int8

const (
	// NoColor represents the absence of a color.
	NoColor Color = iota
	// White represents the white side.
	White
	// Black represents the black side.
	Black
)

// Other returns the opposing color.
func (c Color) Other() Color {
	switch c {
	case White:
		return Black
	case Black:
		return White
	}
	return NoColor
}

// String implements the fmt.Stringer interface and returns
// the FEN side-to-move letter ("w" or "b").
func (c Color) String() string {
	switch c {
	case White:
		return "w"
	case Black:
		return "b"
	}
	return "-"
}

// Name returns a display friendly name.
func (c Color) Name() string {
	switch c {
	case White:
		return "White"
	case Black:
		return "Black"
	}
	return "No Color"
}

// colorIdx maps a color to an array index for the internal caches.
func colorIdx(c Color) int {
	if c == Black {
		return 1
	}
	return 0
}

// PieceType is the type of a piece.
type PieceType int8

const (
	// NoPieceType represents a lack of piece type.
	NoPieceType PieceType = iota
	// King represents a king.
	King
	// Queen represents a queen.
	Queen
	// Rook represents a rook.
	Rook
	// Bishop represents a bishop.
	Bishop
	// Knight represents a knight.
	Knight
	// Pawn represents a pawn.
	Pawn
)

// String implements the fmt.Stringer interface and returns the
// lowercase piece letter ("p", "n", "b", "r", "q", "k").
func (p PieceType) String() string {
	switch p {
	case King:
		return "k"
	case Queen:
		return "q"
	case Rook:
		return "r"
	case Bishop:
		return "b"
	case Knight:
		return "n"
	case Pawn:
		return "p"
	}
	return ""
}

// sanChar returns the uppercase SAN letter for the piece type, or an
// empty string for pawns.
func (p PieceType) sanChar() string {
	switch p {
	case King:
		return "K"
	case Queen:
		return "Q"
	case Rook:
		return "R"
	case Bishop:
		return "B"
	case Knight:
		return "N"
	}
	return ""
}

// PieceTypeFromChar converts a piece letter in either case into a
// PieceType. NoPieceType is returned for unknown letters.
func PieceTypeFromChar(c byte) PieceType {
	switch c {
	case 'k', 'K':
		return King
	case 'q', 'Q':
		return Queen
	case 'r', 'R':
		return Rook
	case 'b', 'B':
		return Bishop
	case 'n', 'N':
		return Knight
	case 'p', 'P':
		return Pawn
	}
	return NoPieceType
}

// Piece is a piece type with a color.
type Piece int8

const (
	// NoPiece represents an empty square.
	NoPiece Piece = iota
	// WhiteKing is a white king.
	WhiteKing
	// WhiteQueen is a white queen.
	WhiteQueen
	// WhiteRook is a white rook.
	WhiteRook
	// WhiteBishop is a white bishop.
	WhiteBishop
	// WhiteKnight is a white knight.
	WhiteKnight
	// WhitePawn is a white pawn.
	WhitePawn
	// BlackKing is a black king.
	BlackKing
	// BlackQueen is a black queen.
	BlackQueen
	// BlackRook is a black rook.
	BlackRook
	// BlackBishop is a black bishop.
	BlackBishop
	// BlackKnight is a black knight.
	BlackKnight
	// BlackPawn is a black pawn.
	BlackPawn
)

// NewPiece returns the piece for the given type and color.
func NewPiece(t PieceType, c Color) Piece {
	if t == NoPieceType || c == NoColor {
		return NoPiece
	}
	if c == White {
		return Piece(t)
	}
	return Piece(int8(t) + 6)
}

// Type returns the piece's type.
func (p Piece) Type() PieceType {
	switch {
	case p == NoPiece:
		return NoPieceType
	case p <= WhitePawn:
		return PieceType(p)
	default:
		return PieceType(p - 6)
	}
}

// Color returns the piece's color.
func (p Piece) Color() Color {
	switch {
	case p == NoPiece:
		return NoColor
	case p <= WhitePawn:
		return White
	default:
		return Black
	}
}

// String implements the fmt.Stringer interface and returns the FEN
// character for the piece (uppercase for white, lowercase for black).
func (p Piece) String() string {
	if p == NoPiece {
		return ""
	}
	return string(pieceToFENChar[p])
}

// Direct lookup arrays between pieces and FEN characters.
// NoPiece is used for invalid characters.
//
//nolint:gochecknoglobals // lookup tables.
var (
	pieceToFENChar = [13]byte{
		0,
		'K', 'Q', 'R', 'B', 'N', 'P',
		'k', 'q', 'r', 'b', 'n', 'p',
	}

	fenCharToPiece = [256]Piece{
		'K': WhiteKing,
		'Q': WhiteQueen,
		'R': WhiteRook,
		'B': WhiteBishop,
		'N': WhiteKnight,
		'P': WhitePawn,
		'k': BlackKing,
		'q': BlackQueen,
		'r': BlackRook,
		'b': BlackBishop,
		'n': BlackKnight,
		'p': BlackPawn,
	}
)
