/*
Package chess provides a complete chess rules engine with support for
legal move generation, move validation and undo, and standard chess
formats (PGN, FEN, SAN).

The package manages a single mutable game including the full rule set
(castling, en passant, promotion) and automatic draw detection. It is
not safe for concurrent use; clone the game per goroutine for parallel
analysis.

Example usage:

	// Create new game
	game := NewGame()

	// Make moves
	game.Move(SANMove("e4"))
	game.Move(SANMove("e5"))

	// Check game status
	if game.IsGameOver() {
		fmt.Printf("Game ended: %s\n", game.FEN())
	}
*/
package chess

import (
	"strconv"
	"strings"
)

// DefaultPosition is the FEN of the standard starting position.
const DefaultPosition = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

// castleRights is the per-color castling availability bitmask.
type castleRights uint8

const (
	castleKingSide castleRights = 1 << iota
	castleQueenSide
)

// A Game owns one mutable position together with its move history,
// PGN tag pairs and position-anchored comments. All state behind the
// handle is reached only through the exported operations.
type Game struct {
	headers        *tagStore
	comments       map[string]string
	positionCounts map[string]int
	history        []historyEntry
	board          [128]Piece // 0x88 layout, rank 8 in row zero
	kings          [2]int     // 0x88 king squares, -1 if absent
	castling       [2]castleRights
	epSquare       int // 0x88 en passant target, -1 if none
	halfMoves      int
	moveNumber     int
	turn           Color
}

// historyEntry captures an applied move plus the prior position fields
// needed to invert the mutation exactly.
type historyEntry struct {
	move       moveCandidate
	kings      [2]int
	castling   [2]castleRights
	epSquare   int
	halfMoves  int
	moveNumber int
	turn       Color
}

// NewGame returns a new game in the standard starting position.
// Optional functions can be provided to configure the initial game state.
//
// Example:
//
//	// Standard game
//	game := NewGame()
//
//	// Game from FEN
//	fen, _ := FEN("rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1")
//	game := NewGame(fen)
func NewGame(options ...func(*Game)) *Game {
	g := &Game{
		headers:        newTagStore(),
		comments:       make(map[string]string),
		positionCounts: make(map[string]int),
	}
	if err := g.Load(DefaultPosition, nil); err != nil {
		panic(err)
	}
	for _, f := range options {
		if f != nil {
			f(g)
		}
	}
	return g
}

// FEN takes a string and returns a function that loads the position
// into the game. The returned function is designed to be used in the
// NewGame constructor. An error is returned if the FEN is invalid.
func FEN(fen string) (func(*Game), error) {
	if err := ValidateFEN(fen); err != nil {
		return nil, err
	}
	return func(g *Game) {
		// validated above, Load cannot fail
		_ = g.Load(fen, nil)
	}, nil
}

// LoadOptions configures Game.Load.
type LoadOptions struct {
	// SkipValidation loads the FEN without validating it first.
	// Not recommended.
	SkipValidation bool
	// PreserveHeaders keeps the current PGN tag pairs and comments.
	PreserveHeaders bool
}

// Load replaces the position wholesale with the one described by the
// given FEN. Unless opts.PreserveHeaders is set, the header and
// comment stores are reset. Move history is always reset. A FENError
// describing the first violation is returned for invalid input.
func (g *Game) Load(fen string, opts *LoadOptions) error {
	if opts == nil {
		opts = &LoadOptions{}
	}

	fen = padFEN(fen)
	if !opts.SkipValidation {
		if err := ValidateFEN(fen); err != nil {
			return err
		}
	}

	tokens := strings.Fields(fen)
	if len(tokens) != numFENFields {
		return fenErrorf("must contain six space-delimited fields")
	}

	g.clearPosition(opts.PreserveHeaders)

	// piece placement
	sq := 0
	for _, c := range []byte(tokens[0]) {
		switch {
		case c == '/':
			sq += 8
		case c >= '1' && c <= '8':
			sq += int(c - '0')
		default:
			p := fenCharToPiece[c]
			if p == NoPiece {
				return fenErrorf("invalid piece %q", string(c))
			}
			if !g.putInternal(p, sq) {
				return fenErrorf("contains more than one %s king", p.Color().Name())
			}
			sq++
		}
	}

	if tokens[1] == "w" {
		g.turn = White
	} else {
		g.turn = Black
	}

	if strings.Contains(tokens[2], "K") {
		g.castling[colorIdx(White)] |= castleKingSide
	}
	if strings.Contains(tokens[2], "Q") {
		g.castling[colorIdx(White)] |= castleQueenSide
	}
	if strings.Contains(tokens[2], "k") {
		g.castling[colorIdx(Black)] |= castleKingSide
	}
	if strings.Contains(tokens[2], "q") {
		g.castling[colorIdx(Black)] |= castleQueenSide
	}

	if tokens[3] != "-" {
		g.epSquare = ParseSquare(tokens[3]).index0x88()
	}
	// validation already vetted the clock fields
	g.halfMoves, _ = strconv.Atoi(tokens[4])
	if n, _ := strconv.Atoi(tokens[5]); n > 0 {
		g.moveNumber = n
	}

	g.recordSetup(fen)
	g.positionCounts[g.positionKey()]++
	return nil
}

// Reset restores the standard starting position and clears headers,
// comments and history.
func (g *Game) Reset() {
	_ = g.Load(DefaultPosition, nil)
}

// Clear empties the board. White is to move, no castling rights exist
// and the clocks restart. Headers survive only if preserveHeaders is
// true; comments and history never do.
func (g *Game) Clear(preserveHeaders bool) {
	g.clearPosition(preserveHeaders)
}

func (g *Game) clearPosition(preserveHeaders bool) {
	g.board = [128]Piece{}
	g.kings = [2]int{-1, -1}
	g.turn = White
	g.castling = [2]castleRights{}
	g.epSquare = -1
	g.halfMoves = 0
	g.moveNumber = 1
	g.history = nil
	g.positionCounts = make(map[string]int)
	if !preserveHeaders {
		g.headers = newTagStore()
		g.comments = make(map[string]string)
	}
}

// recordSetup maintains the SetUp/FEN tag pairs so that PGN output of
// a game loaded from a non-standard position round-trips.
func (g *Game) recordSetup(fen string) {
	if fen == DefaultPosition {
		g.headers.remove("SetUp")
		g.headers.remove("FEN")
		return
	}
	g.headers.set("SetUp", "1")
	g.headers.set("FEN", fen)
}

// FEN returns the canonical FEN of the current position.
func (g *Game) FEN() string {
	var sb strings.Builder

	empty := 0
	for i := 0; i <= sqH1; i++ {
		if i&0x88 != 0 {
			i += 7
			continue
		}
		if p := g.board[i]; p != NoPiece {
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			sb.WriteByte(pieceToFENChar[p])
		} else {
			empty++
		}
		if i&0xF == 7 {
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			if i != sqH1 {
				sb.WriteByte('/')
			}
		}
	}

	sb.WriteByte(' ')
	sb.WriteString(g.turn.String())
	sb.WriteByte(' ')
	sb.WriteString(g.castlingString())
	sb.WriteByte(' ')
	if g.epSquare == -1 {
		sb.WriteByte('-')
	} else {
		sb.WriteString(squareFrom0x88(g.epSquare).String())
	}
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(g.halfMoves))
	sb.WriteByte(' ')
	sb.WriteString(strconv.Itoa(g.moveNumber))
	return sb.String()
}

func (g *Game) castlingString() string {
	var sb strings.Builder
	if g.castling[colorIdx(White)]&castleKingSide > 0 {
		sb.WriteByte('K')
	}
	if g.castling[colorIdx(White)]&castleQueenSide > 0 {
		sb.WriteByte('Q')
	}
	if g.castling[colorIdx(Black)]&castleKingSide > 0 {
		sb.WriteByte('k')
	}
	if g.castling[colorIdx(Black)]&castleQueenSide > 0 {
		sb.WriteByte('q')
	}
	if sb.Len() == 0 {
		return "-"
	}
	return sb.String()
}

// positionKey is the repetition-detection key: the first four FEN
// fields (placement, side to move, castling rights, en passant target).
func (g *Game) positionKey() string {
	fields := strings.Fields(g.FEN())
	return strings.Join(fields[:4], " ")
}

// Get returns the piece on the given square, or NoPiece.
func (g *Game) Get(sq Square) Piece {
	if sq < A1 || sq > H8 {
		return NoPiece
	}
	return g.board[sq.index0x88()]
}

// Put places a piece on the given square, replacing any occupant.
// It returns false without modifying the board when the square is
// invalid, when the piece is a pawn on the first or last rank, or when
// the piece is a second king for a color that already has one
// elsewhere.
func (g *Game) Put(p Piece, sq Square) bool {
	if p == NoPiece || sq < A1 || sq > H8 {
		return false
	}
	if p.Type() == Pawn && (sq.Rank() == Rank1 || sq.Rank() == Rank8) {
		return false
	}
	if !g.putInternal(p, sq.index0x88()) {
		return false
	}
	g.updateCastlingRights()
	g.updateEnPassantSquare()
	return true
}

func (g *Game) putInternal(p Piece, sq int) bool {
	idx := colorIdx(p.Color())
	if p.Type() == King && g.kings[idx] != -1 && g.kings[idx] != sq {
		return false
	}
	if prior := g.board[sq]; prior.Type() == King {
		g.kings[colorIdx(prior.Color())] = -1
	}
	g.board[sq] = p
	if p.Type() == King {
		g.kings[idx] = sq
	}
	return true
}

// Remove deletes the piece on the given square and returns it, or
// NoPiece if the square was empty.
func (g *Game) Remove(sq Square) Piece {
	if sq < A1 || sq > H8 {
		return NoPiece
	}
	i := sq.index0x88()
	p := g.board[i]
	if p == NoPiece {
		return NoPiece
	}
	g.board[i] = NoPiece
	if p.Type() == King {
		g.kings[colorIdx(p.Color())] = -1
	}
	g.updateCastlingRights()
	g.updateEnPassantSquare()
	return p
}

// updateCastlingRights drops any right whose king or rook is no longer
// on its home square.
func (g *Game) updateCastlingRights() {
	whiteKingHome := g.board[sqE1] == WhiteKing
	blackKingHome := g.board[sqE8] == BlackKing
	if !whiteKingHome || g.board[sqH1] != WhiteRook {
		g.castling[colorIdx(White)] &^= castleKingSide
	}
	if !whiteKingHome || g.board[sqA1] != WhiteRook {
		g.castling[colorIdx(White)] &^= castleQueenSide
	}
	if !blackKingHome || g.board[sqH8] != BlackRook {
		g.castling[colorIdx(Black)] &^= castleKingSide
	}
	if !blackKingHome || g.board[sqA8] != BlackRook {
		g.castling[colorIdx(Black)] &^= castleQueenSide
	}
}

// updateEnPassantSquare drops the en passant target when no capture
// geometry supports it anymore.
func (g *Game) updateEnPassantSquare() {
	if g.epSquare == -1 {
		return
	}
	startSquare := g.epSquare - 16
	currentSquare := g.epSquare + 16
	if g.turn == Black {
		startSquare, currentSquare = g.epSquare+16, g.epSquare-16
	}
	bigPawn := NewPiece(Pawn, g.turn.Other())
	if g.board[startSquare] != NoPiece ||
		g.board[g.epSquare] != NoPiece ||
		g.board[currentSquare] != bigPawn {
		g.epSquare = -1
		return
	}
	ourPawn := NewPiece(Pawn, g.turn)
	for _, attacker := range []int{currentSquare + 1, currentSquare - 1} {
		if attacker&0x88 == 0 && g.board[attacker] == ourPawn {
			return
		}
	}
	g.epSquare = -1
}

// Turn returns the side to move.
func (g *Game) Turn() Color {
	return g.turn
}

// MoveNumber returns the current full-move number. It increments after
// each black move.
func (g *Game) MoveNumber() int {
	return g.moveNumber
}

// HalfMoves returns the half-move clock: the number of plies since the
// last capture or pawn advance.
func (g *Game) HalfMoves() int {
	return g.halfMoves
}

// Board returns a snapshot of the board as piece values, with row 0
// holding rank 8 and column 0 holding the a-file. Empty squares hold
// NoPiece. This, together with IsAttacked, AttackingPieces, Moves and
// Turn, is the surface meant for external evaluators.
func (g *Game) Board() [8][8]Piece {
	var b [8][8]Piece
	for r := 0; r < 8; r++ {
		for f := 0; f < 8; f++ {
			b[r][f] = g.board[r*16+f]
		}
	}
	return b
}

// SquareColor returns "light" or "dark" for the given square, or an
// empty string for an invalid one.
func (g *Game) SquareColor(sq Square) string {
	if sq < A1 || sq > H8 {
		return ""
	}
	if (int8(sq.File())+int8(sq.Rank()))%2 == 1 {
		return "light"
	}
	return "dark"
}

// CastlingRights reports the king side and queen side castling rights
// of the given color.
func (g *Game) CastlingRights(c Color) (kingSide, queenSide bool) {
	if c != White && c != Black {
		return false, false
	}
	r := g.castling[colorIdx(c)]
	return r&castleKingSide > 0, r&castleQueenSide > 0
}

// SetCastlingRights requests castling rights for the given color. A
// right is only granted while the king and the corresponding rook sit
// on their home squares; the return value reports whether the position
// now carries exactly the requested rights.
func (g *Game) SetCastlingRights(c Color, kingSide, queenSide bool) bool {
	if c != White && c != Black {
		return false
	}
	var r castleRights
	if kingSide {
		r |= castleKingSide
	}
	if queenSide {
		r |= castleQueenSide
	}
	g.castling[colorIdx(c)] = r
	g.updateCastlingRights()
	return g.castling[colorIdx(c)] == r
}

// Clone returns a deep copy of the game. The engine holds no internal
// synchronization, so parallel analysis must work on clones.
func (g *Game) Clone() *Game {
	clone := *g
	clone.headers = g.headers.clone()
	clone.comments = make(map[string]string, len(g.comments))
	for k, v := range g.comments {
		clone.comments[k] = v
	}
	clone.positionCounts = make(map[string]int, len(g.positionCounts))
	for k, v := range g.positionCounts {
		clone.positionCounts[k] = v
	}
	clone.history = append([]historyEntry(nil), g.history...)
	return &clone
}

// copyFrom replaces the receiver's state with the other game's.
func (g *Game) copyFrom(other *Game) {
	*g = *other.Clone()
}
