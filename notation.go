package chess

import (
	"regexp"
	"strings"
)

// sanForMove produces the standard algebraic notation for a candidate,
// disambiguated against the legal move set and suffixed with "+" or
// "#" as the resulting position requires.
func (g *Game) sanForMove(c moveCandidate, legal []moveCandidate) string {
	var sb strings.Builder

	switch {
	case c.tags&KingSideCastle > 0:
		sb.WriteString("O-O")
	case c.tags&QueenSideCastle > 0:
		sb.WriteString("O-O-O")
	default:
		if c.piece != Pawn {
			sb.WriteString(c.piece.sanChar())
			sb.WriteString(disambiguator(c, legal))
		}
		if c.tags&(Capture|EnPassant) > 0 {
			if c.piece == Pawn {
				sb.WriteString(File(c.from & 0xF).String())
			}
			sb.WriteByte('x')
		}
		sb.WriteString(squareFrom0x88(c.to).String())
		if c.promotion != NoPieceType {
			sb.WriteByte('=')
			sb.WriteString(c.promotion.sanChar())
		}
	}

	g.makeMove(c)
	if g.InCheck() {
		if len(g.legalMoves()) == 0 {
			sb.WriteByte('#')
		} else {
			sb.WriteByte('+')
		}
	}
	g.undoMove()

	return sb.String()
}

// disambiguator returns the origin fragment SAN needs when several
// pieces of the same kind reach the destination: the file when files
// differ, the rank when only ranks do, the full square otherwise.
func disambiguator(c moveCandidate, legal []moveCandidate) string {
	ambiguities, sameRank, sameFile := 0, 0, 0
	for _, other := range legal {
		if other.piece != c.piece || other.to != c.to || other.from == c.from {
			continue
		}
		ambiguities++
		if other.from>>4 == c.from>>4 {
			sameRank++
		}
		if other.from&0xF == c.from&0xF {
			sameFile++
		}
	}
	if ambiguities == 0 {
		return ""
	}
	from := squareFrom0x88(c.from)
	switch {
	case sameRank > 0 && sameFile > 0:
		return from.String()
	case sameFile > 0:
		return from.Rank().String()
	default:
		return from.File().String()
	}
}

//nolint:gochecknoglobals // compiled once.
var (
	sanDecorationRegex = regexp.MustCompile(`[+#]?[?!]*$`)
	lenientSANRegex    = regexp.MustCompile(`^([pnbrqkPNBRQK])?([a-h][1-8])x?-?([a-h][1-8])([qrbnQRBN])?$`)
)

// strippedSAN removes decorations that carry no move information:
// promotion '=', check and mate marks, annotation glyphs.
func strippedSAN(san string) string {
	return sanDecorationRegex.ReplaceAllString(strings.ReplaceAll(san, "=", ""), "")
}

// moveFromSAN resolves a SAN string against the legal move set. The
// strict pass requires the input to be the SAN this engine itself
// produces, decorations aside. Unless strict is requested, a second
// lenient pass accepts coordinate-style input such as "e2e4", "e2-e4"
// or "Ng1f3".
func (g *Game) moveFromSAN(san string, strict bool) *moveCandidate {
	clean := strippedSAN(san)
	legal := g.legalMoves()

	for _, c := range legal {
		if clean == strippedSAN(g.sanForMove(c, legal)) {
			c := c
			return &c
		}
	}
	if strict {
		return nil
	}

	matches := lenientSANRegex.FindStringSubmatch(clean)
	if matches == nil {
		return nil
	}
	pieceType := NoPieceType
	if matches[1] != "" {
		pieceType = PieceTypeFromChar(matches[1][0])
	}
	from := ParseSquare(matches[2]).index0x88()
	to := ParseSquare(matches[3]).index0x88()
	promotion := NoPieceType
	if matches[4] != "" {
		promotion = PieceTypeFromChar(matches[4][0])
	}

	for _, c := range legal {
		if c.from != from || c.to != to || c.promotion != promotion {
			continue
		}
		if pieceType != NoPieceType && pieceType != c.piece {
			continue
		}
		c := c
		return &c
	}
	return nil
}
