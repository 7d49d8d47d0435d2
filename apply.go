package chess

// A MoveOption configures Game.Move.
type MoveOption func(*moveConfig)

type moveConfig struct {
	strict bool
}

// Strict disables the lenient SAN matcher: the move string must be the
// exact SAN the engine would produce (check and mate suffixes aside).
func Strict() MoveOption {
	return func(cfg *moveConfig) {
		cfg.strict = true
	}
}

// Move resolves the argument against the current legal move set and
// applies it. The argument is either a SANMove or a MoveDescriptor.
// On success the executed move is returned with SAN, LAN and the
// before/after FENs filled in. An IllegalMoveError is returned, and
// the game left unchanged, when nothing in the legal set matches.
//
// Example:
//
//	game.Move(SANMove("Nf3"))
//	game.Move(MoveDescriptor{From: E2, To: E4})
func (g *Game) Move(arg MoveArg, opts ...MoveOption) (*Move, error) {
	var cfg moveConfig
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}

	var cand *moveCandidate
	var described string
	switch v := arg.(type) {
	case SANMove:
		described = string(v)
		cand = g.moveFromSAN(described, cfg.strict)
	case MoveDescriptor:
		described = v.From.String() + v.To.String() + v.Promotion.String()
		cand = g.moveFromDescriptor(v)
	default:
		return nil, &IllegalMoveError{Move: "<nil>"}
	}
	if cand == nil {
		return nil, &IllegalMoveError{Move: described}
	}

	pretty := g.prettyMove(*cand, g.legalMoves())
	g.makeMove(*cand)
	return &pretty, nil
}

// Undo reverts the most recent move and returns it, or nil when the
// history is empty.
func (g *Game) Undo() *Move {
	cand := g.undoMove()
	if cand == nil {
		return nil
	}
	pretty := g.prettyMove(*cand, g.legalMoves())
	return &pretty
}

// History returns the applied moves in order as SAN strings.
func (g *Game) History() []string {
	moves := g.VerboseHistory()
	out := make([]string, len(moves))
	for i, m := range moves {
		out[i] = m.SAN
	}
	return out
}

// VerboseHistory returns the applied moves in order as full Move
// records. The game state is unchanged on return.
func (g *Game) VerboseHistory() []Move {
	var stack []moveCandidate
	for {
		cand := g.undoMove()
		if cand == nil {
			break
		}
		stack = append(stack, *cand)
	}

	out := make([]Move, 0, len(stack))
	for i := len(stack) - 1; i >= 0; i-- {
		cand := stack[i]
		out = append(out, g.prettyMove(cand, g.legalMoves()))
		g.makeMove(cand)
	}
	return out
}

// moveFromDescriptor resolves explicit coordinates against the legal
// move set.
func (g *Game) moveFromDescriptor(d MoveDescriptor) *moveCandidate {
	if d.From < A1 || d.From > H8 || d.To < A1 || d.To > H8 {
		return nil
	}
	from := d.From.index0x88()
	to := d.To.index0x88()
	for _, c := range g.legalMoves() {
		if c.from == from && c.to == to && c.promotion == d.Promotion {
			c := c
			return &c
		}
	}
	return nil
}

// prettyMove materializes the exported Move record for a candidate.
// The legal move list of the current position drives SAN
// disambiguation.
func (g *Game) prettyMove(c moveCandidate, legal []moveCandidate) Move {
	m := Move{
		Color:     g.turn,
		From:      squareFrom0x88(c.from),
		To:        squareFrom0x88(c.to),
		Piece:     c.piece,
		Captured:  c.captured,
		Promotion: c.promotion,
		Tags:      c.tags,
		LAN:       c.lan(),
		Before:    g.FEN(),
	}
	m.SAN = g.sanForMove(c, legal)
	g.makeMove(c)
	m.After = g.FEN()
	g.undoMove()
	return m
}

// makeMove applies a resolved candidate. It cannot fail: resolution
// against the legal set happens before any mutation, which keeps a
// rejected Move call free of side effects.
func (g *Game) makeMove(c moveCandidate) {
	us := g.turn
	them := us.Other()
	usIdx := colorIdx(us)
	themIdx := colorIdx(them)

	g.history = append(g.history, historyEntry{
		move:       c,
		kings:      g.kings,
		castling:   g.castling,
		epSquare:   g.epSquare,
		halfMoves:  g.halfMoves,
		moveNumber: g.moveNumber,
		turn:       us,
	})

	g.board[c.to] = g.board[c.from]
	g.board[c.from] = NoPiece

	if c.tags&EnPassant > 0 {
		if us == White {
			g.board[c.to+16] = NoPiece
		} else {
			g.board[c.to-16] = NoPiece
		}
	}
	if c.promotion != NoPieceType {
		g.board[c.to] = NewPiece(c.promotion, us)
	}

	if c.piece == King {
		g.kings[usIdx] = c.to
		if c.tags&KingSideCastle > 0 {
			g.board[c.to-1] = g.board[c.to+1]
			g.board[c.to+1] = NoPiece
		} else if c.tags&QueenSideCastle > 0 {
			g.board[c.to+1] = g.board[c.to-2]
			g.board[c.to-2] = NoPiece
		}
		g.castling[usIdx] = 0
	}

	// moving a rook off its home square forfeits that right
	if g.castling[usIdx] != 0 {
		for _, home := range rookHomes[usIdx] {
			if c.from == home.sq && c.piece == Rook {
				g.castling[usIdx] &^= home.right
				break
			}
		}
	}
	// capturing a rook on its home square forfeits the opponent's
	if g.castling[themIdx] != 0 {
		for _, home := range rookHomes[themIdx] {
			if c.to == home.sq && c.captured == Rook {
				g.castling[themIdx] &^= home.right
				break
			}
		}
	}

	if c.tags&DoublePawnPush > 0 {
		g.epSquare = (c.from + c.to) / 2
	} else {
		g.epSquare = -1
	}

	if c.piece == Pawn || c.tags&(Capture|EnPassant) > 0 {
		g.halfMoves = 0
	} else {
		g.halfMoves++
	}
	if us == Black {
		g.moveNumber++
	}
	g.turn = them

	g.positionCounts[g.positionKey()]++
}

// undoMove pops the last history entry and inverts it bit for bit.
// It returns the undone candidate, or nil when the history is empty.
func (g *Game) undoMove() *moveCandidate {
	n := len(g.history)
	if n == 0 {
		return nil
	}

	key := g.positionKey()
	if g.positionCounts[key] <= 1 {
		delete(g.positionCounts, key)
	} else {
		g.positionCounts[key]--
	}

	entry := g.history[n-1]
	g.history = g.history[:n-1]

	c := entry.move
	us := entry.turn
	them := us.Other()

	g.kings = entry.kings
	g.castling = entry.castling
	g.epSquare = entry.epSquare
	g.halfMoves = entry.halfMoves
	g.moveNumber = entry.moveNumber
	g.turn = us

	g.board[c.from] = NewPiece(c.piece, us)
	g.board[c.to] = NoPiece

	switch {
	case c.tags&EnPassant > 0:
		if us == White {
			g.board[c.to+16] = NewPiece(Pawn, them)
		} else {
			g.board[c.to-16] = NewPiece(Pawn, them)
		}
	case c.tags&Capture > 0:
		g.board[c.to] = NewPiece(c.captured, them)
	}

	if c.tags&KingSideCastle > 0 {
		g.board[c.to+1] = g.board[c.to-1]
		g.board[c.to-1] = NoPiece
	} else if c.tags&QueenSideCastle > 0 {
		g.board[c.to-2] = g.board[c.to+1]
		g.board[c.to+1] = NoPiece
	}

	return &c
}
