package image

import (
	"bytes"
	"image/color"
	"strings"
	"testing"

	"github.com/chesskit/chess"
)

func TestSVG(t *testing.T) {
	g := chess.NewGame()
	var buf bytes.Buffer
	if err := SVG(&buf, g.Board()); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "<svg") {
		t.Fatal("expected svg root element")
	}
	if got := strings.Count(out, "<rect"); got != 64 {
		t.Fatalf("expected 64 squares but got %d", got)
	}
	if got := strings.Count(out, "<text"); got != 32 {
		t.Fatalf("expected 32 pieces but got %d", got)
	}
	if !strings.Contains(out, "♔") {
		t.Fatal("expected white king glyph")
	}
}

func TestSVGMarkSquares(t *testing.T) {
	g := chess.NewGame()
	var buf bytes.Buffer
	yellow := color.RGBA{R: 255, G: 255, B: 0, A: 255}
	err := SVG(&buf, g.Board(), MarkSquares(yellow, chess.E2, chess.E4))
	if err != nil {
		t.Fatal(err)
	}
	if got := strings.Count(buf.String(), "#ffff00"); got != 2 {
		t.Fatalf("expected 2 marked squares but got %d", got)
	}
}

func TestSVGPerspective(t *testing.T) {
	g := chess.NewGame()
	var white, black bytes.Buffer
	if err := SVG(&white, g.Board()); err != nil {
		t.Fatal(err)
	}
	if err := SVG(&black, g.Board(), Perspective(chess.Black)); err != nil {
		t.Fatal(err)
	}
	if white.String() == black.String() {
		t.Fatal("expected flipped rendering from black's perspective")
	}
}
