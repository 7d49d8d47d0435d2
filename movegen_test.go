package chess

import "testing"

func TestPerftStartingPosition(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping perft in short mode")
	}
	expected := []uint64{20, 400, 8902, 197281}
	g := NewGame()
	for depth, want := range expected {
		if got := g.Perft(depth + 1); got != want {
			t.Fatalf("perft(%d) = %d, want %d", depth+1, got, want)
		}
	}
	if g.FEN() != DefaultPosition {
		t.Fatalf("perft must not disturb the position, got %s", g.FEN())
	}
}

func TestPerftKiwipete(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping perft in short mode")
	}
	fenStr := "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	fen, err := FEN(fenStr)
	if err != nil {
		t.Fatal(err)
	}
	g := NewGame(fen)
	expected := []uint64{48, 2039, 97862}
	for depth, want := range expected {
		if got := g.Perft(depth + 1); got != want {
			t.Fatalf("perft(%d) = %d, want %d", depth+1, got, want)
		}
	}
}

func TestPerftEnPassantDiscoveredCheck(t *testing.T) {
	// en passant capture here would expose the white king on the fifth rank
	fen, err := FEN("8/8/8/K2Pp2q/8/8/8/4k3 w - e6 0 1")
	if err != nil {
		t.Fatal(err)
	}
	g := NewGame(fen)
	for _, san := range g.Moves() {
		if san == "dxe6" {
			t.Fatal("en passant capture must be illegal when it exposes the king")
		}
	}
}

func TestMovesCount(t *testing.T) {
	g := NewGame()
	if n := len(g.Moves()); n != 20 {
		t.Fatalf("expected 20 opening moves but got %d", n)
	}
}

func TestMovesFromSquare(t *testing.T) {
	g := NewGame()
	moves := g.Moves(FromSquare(E2))
	if len(moves) != 2 {
		t.Fatalf("expected 2 moves from e2 but got %v", moves)
	}
	if moves[0] != "e3" || moves[1] != "e4" {
		t.Fatalf("expected [e3 e4] but got %v", moves)
	}
	if moves := g.Moves(FromSquare(E5)); len(moves) != 0 {
		t.Fatalf("expected no moves from an empty square but got %v", moves)
	}
}

func TestMovesOfPiece(t *testing.T) {
	g := NewGame()
	moves := g.Moves(OfPiece(Knight))
	if len(moves) != 4 {
		t.Fatalf("expected 4 knight moves but got %v", moves)
	}
}

func TestVerboseMoves(t *testing.T) {
	g := NewGame()
	moves := g.VerboseMoves(FromSquare(G1))
	if len(moves) != 2 {
		t.Fatalf("expected 2 moves from g1 but got %d", len(moves))
	}
	for _, m := range moves {
		if m.From != G1 || m.Piece != Knight {
			t.Fatalf("unexpected verbose move %+v", m)
		}
		if m.Before != DefaultPosition {
			t.Fatalf("expected before FEN to be the starting position, got %s", m.Before)
		}
	}
}

func TestCastlingBlockedThroughCheck(t *testing.T) {
	// black rook on f8 covers f1, the square the king passes through
	fen, err := FEN("4kr2/8/8/8/8/8/8/4K2R w K - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	g := NewGame(fen)
	for _, san := range g.Moves() {
		if san == "O-O" {
			t.Fatal("castling through an attacked square must be illegal")
		}
	}
}

func TestCastlingRequiresEmptyTransit(t *testing.T) {
	fen, err := FEN("4k3/8/8/8/8/8/8/4KB1R w K - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	g := NewGame(fen)
	for _, san := range g.Moves() {
		if san == "O-O" {
			t.Fatal("castling across an occupied square must be illegal")
		}
	}
}

func TestCastlingGenerated(t *testing.T) {
	fen, err := FEN("r3k2r/8/8/8/8/8/8/R3K2R w KQkq - 0 1")
	if err != nil {
		t.Fatal(err)
	}
	g := NewGame(fen)
	var kingSide, queenSide bool
	for _, san := range g.Moves() {
		switch san {
		case "O-O":
			kingSide = true
		case "O-O-O":
			queenSide = true
		}
	}
	if !kingSide || !queenSide {
		t.Fatalf("expected both castling moves, got %v", g.Moves())
	}
}

func TestMovesWhileInCheck(t *testing.T) {
	fen, err := FEN("rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	if err != nil {
		t.Fatal(err)
	}
	g := NewGame(fen)
	for _, m := range g.VerboseMoves() {
		g2 := g.Clone()
		if _, err := g2.Move(MoveDescriptor{From: m.From, To: m.To, Promotion: m.Promotion}); err != nil {
			t.Fatalf("generated move %s not applicable: %v", m.SAN, err)
		}
		if g2.IsAttacked(squareFrom0x88(g2.kings[colorIdx(White)]), Black) {
			t.Fatalf("move %s leaves the king in check", m.SAN)
		}
	}
}
