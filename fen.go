package chess

import (
	"regexp"
	"strconv"
	"strings"
)

const numFENFields = 6

// padFEN fills in omitted trailing FEN fields with their defaults, so
// truncated strings such as "8/8/8/8/8/8/8/8 w" load as if the missing
// castling, en passant and clock fields were given explicitly.
func padFEN(fen string) string {
	tokens := strings.Fields(fen)
	if len(tokens) < 2 || len(tokens) >= numFENFields {
		return fen
	}
	defaults := []string{"-", "-", "0", "1"}
	tokens = append(tokens, defaults[len(tokens)-2:]...)
	return strings.Join(tokens, " ")
}

//nolint:gochecknoglobals // compiled once.
var (
	epFieldRegex   = regexp.MustCompile(`^(-|[abcdefgh][36])$`)
	fenDigitsRegex = regexp.MustCompile(`^\d+$`)
)

// ValidateFEN checks a FEN string field by field and returns a distinct
// diagnostic for the first violation found. Omitted trailing fields are
// not padded here; callers that accept truncated FENs pad first.
//
//nolint:cyclop,funlen,gocognit // one check per FEN violation class.
func ValidateFEN(fen string) error {
	tokens := strings.Fields(fen)
	if len(tokens) != numFENFields {
		return fenErrorf("must contain six space-delimited fields")
	}

	if n, err := strconv.Atoi(tokens[5]); err != nil || n <= 0 ||
		!fenDigitsRegex.MatchString(tokens[5]) {
		return fenErrorf("move number must be a positive integer")
	}
	if !fenDigitsRegex.MatchString(tokens[4]) {
		return fenErrorf("half move counter number must be a non-negative integer")
	}
	if !epFieldRegex.MatchString(tokens[3]) {
		return fenErrorf("en-passant square is invalid")
	}
	if err := validateCastlingField(tokens[2]); err != nil {
		return err
	}
	if tokens[1] != "w" && tokens[1] != "b" {
		return fenErrorf("side-to-move is invalid")
	}

	ranks := strings.Split(tokens[0], "/")
	const numRanks = 8
	if len(ranks) != numRanks {
		return fenErrorf("piece data does not contain 8 '/'-delimited rows")
	}

	kings := [2]int{}
	for _, rank := range ranks {
		sum := 0
		prevDigit := false
		for i := 0; i < len(rank); i++ {
			c := rank[i]
			if c >= '1' && c <= '8' {
				if prevDigit {
					return fenErrorf("piece data is invalid (consecutive numbers)")
				}
				sum += int(c - '0')
				prevDigit = true
				continue
			}
			p := fenCharToPiece[c]
			if p == NoPiece {
				return fenErrorf("piece data is invalid (invalid piece)")
			}
			if p.Type() == King {
				kings[colorIdx(p.Color())]++
			}
			sum++
			prevDigit = false
		}
		if sum != numRanks {
			return fenErrorf("piece data is invalid (too many squares in rank)")
		}
	}

	if kings[0] != 1 {
		return fenErrorf("missing white king")
	}
	if kings[1] != 1 {
		return fenErrorf("missing black king")
	}

	if strings.ContainsAny(ranks[0], "Pp") || strings.ContainsAny(ranks[7], "Pp") {
		return fenErrorf("some pawns are on the edge rows")
	}

	if tokens[3] != "-" {
		epRank := tokens[3][1]
		if (epRank == '3' && tokens[1] == "w") || (epRank == '6' && tokens[1] == "b") {
			return fenErrorf("illegal en-passant square")
		}
	}
	return nil
}

func validateCastlingField(field string) error {
	if field == "-" {
		return nil
	}
	seen := map[byte]bool{}
	for i := 0; i < len(field); i++ {
		c := field[i]
		if !strings.ContainsRune("KQkq", rune(c)) || seen[c] {
			return fenErrorf("castling availability is invalid")
		}
		seen[c] = true
	}
	return nil
}
