package chess

// A Square is one of the 64 board coordinates, numbered rank-major from
// A1 (0) to H8 (63).
type Square int8

// NoSquare represents the absence of a square.
const NoSquare Square = -1

//nolint:revive // compact square constant grid.
const (
	A1, B1, C1, D1, E1, F1, G1, H1 Square = 8*iota + 0, 8*iota + 1, 8*iota + 2,
		8*iota + 3, 8*iota + 4, 8*iota + 5, 8*iota + 6, 8*iota + 7
	A2, B2, C2, D2, E2, F2, G2, H2
	A3, B3, C3, D3, E3, F3, G3, H3
	A4, B4, C4, D4, E4, F4, G4, H4
	A5, B5, C5, D5, E5, F5, G5, H5
	A6, B6, C6, D6, E6, F6, G6, H6
	A7, B7, C7, D7, E7, F7, G7, H7
	A8, B8, C8, D8, E8, F8, G8, H8
)

// NewSquare returns the square at the given file and rank.
func NewSquare(f File, r Rank) Square {
	return Square(int8(r)*8 + int8(f))
}

// ParseSquare converts algebraic notation ("e4") into a Square.
// NoSquare is returned if the string is not a valid square.
func ParseSquare(s string) Square {
	const squareLen = 2
	if len(s) != squareLen {
		return NoSquare
	}
	file := int8(s[0] - 'a')
	rank := int8(s[1] - '1')
	if file < 0 || file > 7 || rank < 0 || rank > 7 {
		return NoSquare
	}
	return Square(rank*8 + file)
}

// File returns the square's file.
func (sq Square) File() File {
	return File(int8(sq) % 8)
}

// Rank returns the square's rank.
func (sq Square) Rank() Rank {
	return Rank(int8(sq) / 8)
}

// String implements the fmt.Stringer interface and returns the
// algebraic notation of the square ("a1" through "h8").
func (sq Square) String() string {
	if sq < A1 || sq > H8 {
		return "-"
	}
	return squareNames[sq]
}

//nolint:gochecknoglobals // lookup table.
var squareNames = []string{
	"a1", "b1", "c1", "d1", "e1", "f1", "g1", "h1",
	"a2", "b2", "c2", "d2", "e2", "f2", "g2", "h2",
	"a3", "b3", "c3", "d3", "e3", "f3", "g3", "h3",
	"a4", "b4", "c4", "d4", "e4", "f4", "g4", "h4",
	"a5", "b5", "c5", "d5", "e5", "f5", "g5", "h5",
	"a6", "b6", "c6", "d6", "e6", "f6", "g6", "h6",
	"a7", "b7", "c7", "d7", "e7", "f7", "g7", "h7",
	"a8", "b8", "c8", "d8", "e8", "f8", "g8", "h8",
}

// A File is the file of a square.
type File int8

const (
	// FileA is the file A.
	FileA File = iota
	// FileB is the file B.
	FileB
	// FileC is the file C.
	FileC
	// FileD is the file D.
	FileD
	// FileE is the file E.
	FileE
	// FileF is the file F.
	FileF
	// FileG is the file G.
	FileG
	// FileH is the file H.
	FileH
)

// String implements the fmt.Stringer interface and returns the file's
// letter ("a" through "h").
func (f File) String() string {
	return string(rune('a' + f))
}

// A Rank is the rank of a square.
type Rank int8

const (
	// Rank1 is the rank 1.
	Rank1 Rank = iota
	// Rank2 is the rank 2.
	Rank2
	// Rank3 is the rank 3.
	Rank3
	// Rank4 is the rank 4.
	Rank4
	// Rank5 is the rank 5.
	Rank5
	// Rank6 is the rank 6.
	Rank6
	// Rank7 is the rank 7.
	Rank7
	// Rank8 is the rank 8.
	Rank8
)

// String implements the fmt.Stringer interface and returns the rank's
// digit ("1" through "8").
func (r Rank) String() string {
	return string(rune('1' + r))
}

// The board is stored in the 0x88 layout: sixteen columns per row with
// rank 8 in row zero, so a square is off the board exactly when
// sq&0x88 != 0.

// index0x88 converts an exported square into its 0x88 board index.
func (sq Square) index0x88() int {
	return (7-int(sq.Rank()))*16 + int(sq.File())
}

// squareFrom0x88 converts a 0x88 board index back into a Square.
func squareFrom0x88(i int) Square {
	if i&0x88 != 0 {
		return NoSquare
	}
	return NewSquare(File(i&0xF), Rank(7-(i>>4)))
}

// 0x88 indexes of the squares involved in castling bookkeeping.
const (
	sqA8 = 0x00
	sqE8 = 0x04
	sqH8 = 0x07
	sqA1 = 0x70
	sqE1 = 0x74
	sqH1 = 0x77
)
