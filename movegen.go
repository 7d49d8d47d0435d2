package chess

// Piece movement geometry in 0x88 offsets. Rank 8 sits in row zero, so
// white pawns advance toward smaller indexes.
//
//nolint:gochecknoglobals // offset tables.
var (
	pawnOffsets = [2][4]int{
		{-16, -32, -17, -15}, // white: push, double push, captures
		{16, 32, 17, 15},     // black
	}
	knightOffsets = [8]int{-18, -33, -31, -14, 18, 33, 31, 14}
	bishopOffsets = [4]int{-17, -15, 17, 15}
	rookOffsets   = [4]int{-16, 1, 16, -1}
	royalOffsets  = [8]int{-17, -16, -15, 1, 17, 16, 15, -1} // queen and king
)

// rows (0x88 rank index) relevant to pawn moves, by colorIdx.
//
//nolint:gochecknoglobals // offset tables.
var (
	secondRow    = [2]int{6, 1} // double pushes start here
	promotionRow = [2]int{0, 7}
)

// rook home squares and the right a rook move or capture forfeits,
// by colorIdx.
//
//nolint:gochecknoglobals // offset tables.
var rookHomes = [2][2]struct {
	sq    int
	right castleRights
}{
	{{sqA1, castleQueenSide}, {sqH1, castleKingSide}},
	{{sqA8, castleQueenSide}, {sqH8, castleKingSide}},
}

// IsAttacked returns true if any piece of the given side has a
// pseudo-legal capture path to the square.
func (g *Game) IsAttacked(sq Square, by Color) bool {
	if sq < A1 || sq > H8 || (by != White && by != Black) {
		return false
	}
	return g.attacked(by, sq.index0x88())
}

// AttackingPieces enumerates the piece types of the given side that
// attack the square, in board scan order (a8 toward h1).
func (g *Game) AttackingPieces(by Color, sq Square) []PieceType {
	if sq < A1 || sq > H8 || (by != White && by != Black) {
		return nil
	}
	return g.squareAttackers(by, sq.index0x88(), false)
}

// InCheck returns true if the side to move's king is attacked.
func (g *Game) InCheck() bool {
	return g.kingAttacked(g.turn)
}

// IsCheck is an alias of InCheck.
func (g *Game) IsCheck() bool {
	return g.InCheck()
}

func (g *Game) kingAttacked(c Color) bool {
	king := g.kings[colorIdx(c)]
	if king == -1 {
		return false
	}
	return g.attacked(c.Other(), king)
}

func (g *Game) attacked(by Color, target int) bool {
	return len(g.squareAttackers(by, target, true)) > 0
}

// squareAttackers scans the board for pieces of the given color with a
// capture path to target. With firstOnly set it stops at the first hit.
func (g *Game) squareAttackers(by Color, target int, firstOnly bool) []PieceType {
	var out []PieceType
	for s := 0; s <= sqH1; s++ {
		if s&0x88 != 0 {
			s += 7
			continue
		}
		p := g.board[s]
		if p == NoPiece || p.Color() != by || s == target {
			continue
		}
		if g.pieceAttacks(s, target, p) {
			out = append(out, p.Type())
			if firstOnly {
				return out
			}
		}
	}
	return out
}

// pieceAttacks reports whether the piece on from has a capture path to
// to: pawns by their color's diagonal geometry, knights and kings by
// fixed offsets, sliders along an unblocked ray.
func (g *Game) pieceAttacks(from, to int, p Piece) bool {
	diff := to - from
	switch p.Type() {
	case Pawn:
		if p.Color() == White {
			return diff == -17 || diff == -15
		}
		return diff == 17 || diff == 15
	case Knight:
		for _, off := range knightOffsets {
			if diff == off {
				return true
			}
		}
		return false
	case King:
		for _, off := range royalOffsets {
			if diff == off {
				return true
			}
		}
		return false
	case Bishop, Rook, Queen:
		return g.rayAttacks(from, to, p.Type())
	}
	return false
}

func (g *Game) rayAttacks(from, to int, t PieceType) bool {
	dr := (to >> 4) - (from >> 4)
	df := (to & 0xF) - (from & 0xF)
	diagonal := dr == df || dr == -df
	straight := dr == 0 || df == 0
	switch t {
	case Bishop:
		if !diagonal || dr == 0 {
			return false
		}
	case Rook:
		if !straight {
			return false
		}
	case Queen:
		if !diagonal && !straight {
			return false
		}
	}
	step := sign(dr)*16 + sign(df)
	for s := from + step; s != to; s += step {
		if g.board[s] != NoPiece {
			return false
		}
	}
	return true
}

func sign(n int) int {
	switch {
	case n > 0:
		return 1
	case n < 0:
		return -1
	}
	return 0
}

// movesConfig restricts move enumeration.
type movesConfig struct {
	square Square
	piece  PieceType
	legal  bool
}

// A MovesOption restricts the squares or piece kinds Moves enumerates.
type MovesOption func(*movesConfig)

// FromSquare restricts enumeration to moves originating on the square.
func FromSquare(sq Square) MovesOption {
	return func(cfg *movesConfig) {
		cfg.square = sq
	}
}

// OfPiece restricts enumeration to moves of the given piece type.
func OfPiece(pt PieceType) MovesOption {
	return func(cfg *movesConfig) {
		cfg.piece = pt
	}
}

// Moves returns the legal moves in the current position as SAN
// strings. Enumeration order is fixed: board scan from a8 toward h1,
// then per-piece offset order, so output is reproducible.
func (g *Game) Moves(opts ...MovesOption) []string {
	cfg := g.movesConfig(opts)
	candidates := g.generateMoves(cfg)
	out := make([]string, 0, len(candidates))
	legal := g.legalMoves()
	for _, c := range candidates {
		out = append(out, g.sanForMove(c, legal))
	}
	return out
}

// VerboseMoves returns the legal moves in the current position as full
// Move records with SAN, LAN and surrounding FENs materialized.
func (g *Game) VerboseMoves(opts ...MovesOption) []Move {
	cfg := g.movesConfig(opts)
	candidates := g.generateMoves(cfg)
	out := make([]Move, 0, len(candidates))
	legal := g.legalMoves()
	for _, c := range candidates {
		out = append(out, g.prettyMove(c, legal))
	}
	return out
}

func (g *Game) movesConfig(opts []MovesOption) movesConfig {
	cfg := movesConfig{square: NoSquare, piece: NoPieceType, legal: true}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

func (g *Game) legalMoves() []moveCandidate {
	return g.generateMoves(movesConfig{square: NoSquare, piece: NoPieceType, legal: true})
}

// generateMoves enumerates candidate moves for the side to move. With
// cfg.legal set, candidates that would leave the mover's own king
// attacked are filtered out by applying and reverting each one.
func (g *Game) generateMoves(cfg movesConfig) []moveCandidate {
	us := g.turn
	them := us.Other()
	usIdx := colorIdx(us)

	first, last := 0, sqH1
	singleSquare := false
	if cfg.square != NoSquare {
		if cfg.square < A1 || cfg.square > H8 {
			return nil
		}
		first = cfg.square.index0x88()
		last = first
		singleSquare = true
	}

	var moves []moveCandidate
	for from := first; from <= last; from++ {
		if from&0x88 != 0 {
			from += 7
			continue
		}
		p := g.board[from]
		if p == NoPiece || p.Color() != us {
			continue
		}
		t := p.Type()
		if cfg.piece != NoPieceType && cfg.piece != t {
			continue
		}

		if t == Pawn {
			g.generatePawnMoves(&moves, from, usIdx, them)
			continue
		}
		g.generatePieceMoves(&moves, from, t, them)
	}

	// Castling candidates are gated on rights, empty transit squares
	// and the king path being unattacked.
	if (cfg.piece == NoPieceType || cfg.piece == King) &&
		(!singleSquare || first == g.kings[usIdx]) {
		g.generateCastlingMoves(&moves, usIdx, them)
	}

	if !cfg.legal {
		return moves
	}

	// No king on the board: every pseudo-legal move stands.
	if g.kings[usIdx] == -1 {
		return moves
	}

	legal := moves[:0]
	for _, c := range moves {
		g.makeMove(c)
		if !g.kingAttacked(us) {
			legal = append(legal, c)
		}
		g.undoMove()
	}
	return legal
}

func (g *Game) generatePawnMoves(moves *[]moveCandidate, from, usIdx int, them Color) {
	offsets := pawnOffsets[usIdx]

	// single and double pushes; the off-board guard covers positions
	// loaded with SkipValidation that hold a pawn on its last rank
	to := from + offsets[0]
	if to&0x88 == 0 && g.board[to] == NoPiece {
		g.addPawnMove(moves, from, to, NoPieceType, 0, usIdx)
		to = from + offsets[1]
		if from>>4 == secondRow[usIdx] && g.board[to] == NoPiece {
			*moves = append(*moves, moveCandidate{
				from: from, to: to, piece: Pawn, tags: DoublePawnPush,
			})
		}
	}

	// diagonal captures and en passant
	for j := 2; j < 4; j++ {
		to = from + offsets[j]
		if to&0x88 != 0 {
			continue
		}
		if target := g.board[to]; target != NoPiece && target.Color() == them {
			g.addPawnMove(moves, from, to, target.Type(), Capture, usIdx)
		} else if to == g.epSquare {
			*moves = append(*moves, moveCandidate{
				from: from, to: to, piece: Pawn, captured: Pawn, tags: EnPassant,
			})
		}
	}
}

// addPawnMove expands moves reaching the last rank into one candidate
// per promotion piece.
func (g *Game) addPawnMove(moves *[]moveCandidate, from, to int, captured PieceType, tags MoveTag, usIdx int) {
	if to>>4 == promotionRow[usIdx] {
		for _, promo := range []PieceType{Queen, Rook, Bishop, Knight} {
			*moves = append(*moves, moveCandidate{
				from: from, to: to, piece: Pawn,
				captured: captured, promotion: promo, tags: tags | Promotion,
			})
		}
		return
	}
	*moves = append(*moves, moveCandidate{
		from: from, to: to, piece: Pawn, captured: captured, tags: tags,
	})
}

func (g *Game) generatePieceMoves(moves *[]moveCandidate, from int, t PieceType, them Color) {
	var offsets []int
	switch t {
	case Knight:
		offsets = knightOffsets[:]
	case Bishop:
		offsets = bishopOffsets[:]
	case Rook:
		offsets = rookOffsets[:]
	case Queen, King:
		offsets = royalOffsets[:]
	}
	sliding := t == Bishop || t == Rook || t == Queen

	for _, off := range offsets {
		for to := from + off; to&0x88 == 0; to += off {
			target := g.board[to]
			if target == NoPiece {
				*moves = append(*moves, moveCandidate{from: from, to: to, piece: t})
			} else {
				if target.Color() == them {
					*moves = append(*moves, moveCandidate{
						from: from, to: to, piece: t,
						captured: target.Type(), tags: Capture,
					})
				}
				break
			}
			if !sliding {
				break
			}
		}
	}
}

func (g *Game) generateCastlingMoves(moves *[]moveCandidate, usIdx int, them Color) {
	king := g.kings[usIdx]
	if king == -1 {
		return
	}
	if g.castling[usIdx]&castleKingSide > 0 {
		to := king + 2
		if g.board[king+1] == NoPiece && g.board[to] == NoPiece &&
			!g.attacked(them, king) &&
			!g.attacked(them, king+1) &&
			!g.attacked(them, to) {
			*moves = append(*moves, moveCandidate{
				from: king, to: to, piece: King, tags: KingSideCastle,
			})
		}
	}
	if g.castling[usIdx]&castleQueenSide > 0 {
		to := king - 2
		if g.board[king-1] == NoPiece && g.board[king-2] == NoPiece &&
			g.board[king-3] == NoPiece &&
			!g.attacked(them, king) &&
			!g.attacked(them, king-1) &&
			!g.attacked(them, to) {
			*moves = append(*moves, moveCandidate{
				from: king, to: to, piece: King, tags: QueenSideCastle,
			})
		}
	}
}
