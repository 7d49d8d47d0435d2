package chess

// IsCheckmate returns true if the side to move is in check with no
// legal moves.
func (g *Game) IsCheckmate() bool {
	return g.InCheck() && len(g.legalMoves()) == 0
}

// IsStalemate returns true if the side to move has no legal moves but
// is not in check.
func (g *Game) IsStalemate() bool {
	return !g.InCheck() && len(g.legalMoves()) == 0
}

// IsInsufficientMaterial returns true if neither side can deliver
// checkmate: bare kings, a single minor piece beside the kings, or
// any number of bishops all standing on squares of one color.
func (g *Game) IsInsufficientMaterial() bool {
	var counts [7]int
	bishopColors := [2]int{}
	total := 0
	for s := 0; s <= sqH1; s++ {
		if s&0x88 != 0 {
			s += 7
			continue
		}
		p := g.board[s]
		if p == NoPiece {
			continue
		}
		total++
		counts[p.Type()]++
		if p.Type() == Bishop {
			bishopColors[((s>>4)+(s&0xF))%2]++
		}
	}
	switch {
	case total == 2:
		return true
	case total == 3 && (counts[Bishop] == 1 || counts[Knight] == 1):
		return true
	case total == counts[Bishop]+2:
		return bishopColors[0] == 0 || bishopColors[1] == 0
	}
	return false
}

// IsThreefoldRepetition returns true if the current position, keyed on
// placement, side to move, castling rights and en passant target, has
// occurred at least three times in the game.
func (g *Game) IsThreefoldRepetition() bool {
	return g.positionCounts[g.positionKey()] >= 3
}

// IsDraw returns true on the fifty-move rule, stalemate, insufficient
// material or threefold repetition.
func (g *Game) IsDraw() bool {
	const fiftyMovePlies = 100
	return g.halfMoves >= fiftyMovePlies ||
		g.IsStalemate() ||
		g.IsInsufficientMaterial() ||
		g.IsThreefoldRepetition()
}

// IsGameOver returns true if the position is checkmate or any draw.
func (g *Game) IsGameOver() bool {
	return g.IsCheckmate() || g.IsDraw()
}
