package chess

// Perft counts the leaf nodes of the legal move tree to the given
// depth. It is the standard cross-check for move generator
// correctness; the position is unchanged on return.
func (g *Game) Perft(depth int) uint64 {
	if depth <= 0 {
		return 1
	}
	us := g.turn
	moves := g.generateMoves(movesConfig{square: NoSquare, piece: NoPieceType, legal: false})
	var nodes uint64
	for _, c := range moves {
		g.makeMove(c)
		if !g.kingAttacked(us) {
			if depth > 1 {
				nodes += g.Perft(depth - 1)
			} else {
				nodes++
			}
		}
		g.undoMove()
	}
	return nodes
}
