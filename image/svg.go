// Package image renders chess positions as SVG boards.
package image

import (
	"fmt"
	"image/color"
	"io"

	svg "github.com/ajstarks/svgo"

	"github.com/chesskit/chess"
)

const (
	squareSize = 45
	boardSize  = 8 * squareSize
)

// An Option configures the rendered board.
type Option func(*config)

type config struct {
	light       color.Color
	dark        color.Color
	marks       map[chess.Square]color.Color
	perspective chess.Color
}

// SquareColors sets the light and dark square colors.
func SquareColors(light, dark color.Color) Option {
	return func(cfg *config) {
		cfg.light = light
		cfg.dark = dark
	}
}

// MarkSquares highlights the given squares with the color, typically
// to show the last move.
func MarkSquares(c color.Color, squares ...chess.Square) Option {
	return func(cfg *config) {
		for _, sq := range squares {
			cfg.marks[sq] = c
		}
	}
}

// Perspective renders the board from the given side's point of view.
// The default is White.
func Perspective(c chess.Color) Option {
	return func(cfg *config) {
		cfg.perspective = c
	}
}

// Unicode figurine glyphs indexed by Piece.
//
//nolint:gochecknoglobals // lookup table.
var pieceGlyphs = map[chess.Piece]string{
	chess.WhiteKing:   "♔",
	chess.WhiteQueen:  "♕",
	chess.WhiteRook:   "♖",
	chess.WhiteBishop: "♗",
	chess.WhiteKnight: "♘",
	chess.WhitePawn:   "♙",
	chess.BlackKing:   "♚",
	chess.BlackQueen:  "♛",
	chess.BlackRook:   "♜",
	chess.BlackBishop: "♝",
	chess.BlackKnight: "♞",
	chess.BlackPawn:   "♟",
}

// SVG writes an SVG rendering of the board to w. The board layout is
// the one Game.Board returns: row zero holds rank 8.
func SVG(w io.Writer, board [8][8]chess.Piece, opts ...Option) error {
	cfg := &config{
		light:       color.RGBA{R: 235, G: 209, B: 166, A: 255},
		dark:        color.RGBA{R: 165, G: 117, B: 81, A: 255},
		marks:       map[chess.Square]color.Color{},
		perspective: chess.White,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}

	canvas := svg.New(w)
	canvas.Start(boardSize, boardSize)

	for row := 0; row < 8; row++ {
		for col := 0; col < 8; col++ {
			rank := chess.Rank(7 - row)
			file := chess.File(col)
			sq := chess.NewSquare(file, rank)

			x, y := col*squareSize, row*squareSize
			if cfg.perspective == chess.Black {
				x = boardSize - squareSize - x
				y = boardSize - squareSize - y
			}

			fill := cfg.light
			if (int(file)+int(rank))%2 == 0 {
				fill = cfg.dark
			}
			if mark, ok := cfg.marks[sq]; ok {
				fill = mark
			}
			canvas.Rect(x, y, squareSize, squareSize, "fill: "+colorToHex(fill))

			if glyph, ok := pieceGlyphs[board[row][col]]; ok {
				canvas.Text(x+squareSize/2, y+squareSize*3/4, glyph,
					"font-size:36px;text-anchor:middle")
			}
		}
	}

	canvas.End()
	return nil
}

func colorToHex(c color.Color) string {
	r, g, b, _ := c.RGBA()
	const shift = 8
	return fmt.Sprintf("#%02x%02x%02x", uint8(r>>shift), uint8(g>>shift), uint8(b>>shift))
}
