package chess

import (
	"regexp"
	"strconv"
	"strings"

	"golang.org/x/exp/maps"
)

// A TagPair is one PGN header tag, e.g. [Event "F/S Return Match"].
type TagPair struct {
	Key   string
	Value string
}

// tagStore keeps tag pairs in insertion order with constant-time
// lookup. PGN output must reproduce the order tags were set in.
type tagStore struct {
	index map[string]int
	pairs []TagPair
}

func newTagStore() *tagStore {
	return &tagStore{index: make(map[string]int)}
}

func (t *tagStore) get(key string) (string, bool) {
	i, ok := t.index[key]
	if !ok {
		return "", false
	}
	return t.pairs[i].Value, true
}

func (t *tagStore) set(key, value string) {
	if i, ok := t.index[key]; ok {
		t.pairs[i].Value = value
		return
	}
	t.index[key] = len(t.pairs)
	t.pairs = append(t.pairs, TagPair{Key: key, Value: value})
}

func (t *tagStore) remove(key string) bool {
	i, ok := t.index[key]
	if !ok {
		return false
	}
	t.pairs = append(t.pairs[:i], t.pairs[i+1:]...)
	delete(t.index, key)
	for j := i; j < len(t.pairs); j++ {
		t.index[t.pairs[j].Key] = j
	}
	return true
}

func (t *tagStore) all() []TagPair {
	return append([]TagPair(nil), t.pairs...)
}

func (t *tagStore) clone() *tagStore {
	c := &tagStore{
		index: make(map[string]int, len(t.index)),
		pairs: append([]TagPair(nil), t.pairs...),
	}
	maps.Copy(c.index, t.index)
	return c
}

// Header returns the value of the tag pair with the given key, or an
// empty string if it is not set.
func (g *Game) Header(key string) string {
	v, _ := g.headers.get(key)
	return v
}

// Headers returns all tag pairs in the order they were set.
func (g *Game) Headers() []TagPair {
	return g.headers.all()
}

// SetHeader sets a tag pair, preserving the position of an existing
// key.
func (g *Game) SetHeader(key, value string) {
	g.headers.set(key, value)
}

// RemoveHeader deletes the tag pair with the given key and reports
// whether it existed.
func (g *Game) RemoveHeader(key string) bool {
	return g.headers.remove(key)
}

// A CommentEntry pairs a comment with the FEN of the position it
// annotates.
type CommentEntry struct {
	FEN     string
	Comment string
}

// Comment returns the comment attached to the current position, or an
// empty string.
func (g *Game) Comment() string {
	return g.comments[g.FEN()]
}

//nolint:gochecknoglobals // replacer is stateless.
var commentBraceReplacer = strings.NewReplacer("{", "[", "}", "]")

// SetComment attaches a comment to the current position. Braces are
// replaced with brackets so the comment survives PGN round-trips.
func (g *Game) SetComment(comment string) {
	g.comments[g.FEN()] = commentBraceReplacer.Replace(comment)
}

// DeleteComment removes and returns the comment attached to the
// current position.
func (g *Game) DeleteComment() string {
	fen := g.FEN()
	comment := g.comments[fen]
	delete(g.comments, fen)
	return comment
}

// Comments returns the comments on the positions of the current game
// line, in play order starting from the initial position. Comments on
// positions no longer reachable through the history are dropped.
func (g *Game) Comments() []CommentEntry {
	line := g.lineFENs()
	onLine := make(map[string]bool, len(line))
	var out []CommentEntry
	for _, fen := range line {
		onLine[fen] = true
		if comment, ok := g.comments[fen]; ok {
			out = append(out, CommentEntry{FEN: fen, Comment: comment})
		}
	}
	for fen := range g.comments {
		if !onLine[fen] {
			delete(g.comments, fen)
		}
	}
	return out
}

// DeleteComments removes and returns every comment on the current game
// line.
func (g *Game) DeleteComments() []CommentEntry {
	out := g.Comments()
	for _, entry := range out {
		delete(g.comments, entry.FEN)
	}
	return out
}

// lineFENs returns the FEN of every position on the game line, initial
// position first. The game state is unchanged on return.
func (g *Game) lineFENs() []string {
	var stack []moveCandidate
	for {
		cand := g.undoMove()
		if cand == nil {
			break
		}
		stack = append(stack, *cand)
	}
	fens := make([]string, 0, len(stack)+1)
	fens = append(fens, g.FEN())
	for i := len(stack) - 1; i >= 0; i-- {
		g.makeMove(stack[i])
		fens = append(fens, g.FEN())
	}
	return fens
}

// pgnConfig collects the PGN reader and writer knobs.
type pgnConfig struct {
	newlineChar    string
	newlinePattern string
	maxWidth       int
	strict         bool
}

// A PGNOption configures PGN output or LoadPGN parsing.
type PGNOption func(*pgnConfig)

// WithNewlineChar sets the line separator PGN output uses. The default
// is "\n".
func WithNewlineChar(s string) PGNOption {
	return func(cfg *pgnConfig) {
		cfg.newlineChar = s
	}
}

// WithMaxWidth wraps PGN movetext at the given column. Zero, the
// default, writes the movetext on a single line.
func WithMaxWidth(width int) PGNOption {
	return func(cfg *pgnConfig) {
		cfg.maxWidth = width
	}
}

// StrictPGN makes LoadPGN reject sloppy input: moves must be exact
// SAN and move numbers must match the game score.
func StrictPGN() PGNOption {
	return func(cfg *pgnConfig) {
		cfg.strict = true
	}
}

// WithNewlinePattern sets the regular expression LoadPGN splits header
// lines on. The default is `\r?\n`.
func WithNewlinePattern(pattern string) PGNOption {
	return func(cfg *pgnConfig) {
		cfg.newlinePattern = pattern
	}
}

func applyPGNOptions(opts []PGNOption) pgnConfig {
	cfg := pgnConfig{newlineChar: "\n", newlinePattern: `\r?\n`}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// PGN renders the game: tag pairs in insertion order, a blank line,
// then the movetext with comments inline. No result token is written;
// the Result tag, when set, already carries the outcome.
func (g *Game) PGN(opts ...PGNOption) string {
	cfg := applyPGNOptions(opts)
	var sb strings.Builder

	for _, pair := range g.headers.all() {
		sb.WriteByte('[')
		sb.WriteString(pair.Key)
		sb.WriteString(" \"")
		sb.WriteString(pair.Value)
		sb.WriteString("\"]")
		sb.WriteString(cfg.newlineChar)
	}
	if len(g.headers.pairs) > 0 {
		sb.WriteString(cfg.newlineChar)
	}

	tokens := g.movetextTokens()
	if len(tokens) == 0 {
		return sb.String()
	}
	if cfg.maxWidth <= 0 {
		sb.WriteString(strings.Join(tokens, " "))
		sb.WriteString(cfg.newlineChar)
		return sb.String()
	}

	width := 0
	for i, token := range tokens {
		if i > 0 {
			if width+1+len(token) > cfg.maxWidth {
				sb.WriteString(cfg.newlineChar)
				width = 0
			} else {
				sb.WriteByte(' ')
				width++
			}
		}
		sb.WriteString(token)
		width += len(token)
	}
	sb.WriteString(cfg.newlineChar)
	return sb.String()
}

// movetextTokens replays the history and emits move numbers, SAN and
// inline comments as separate tokens. The game state is unchanged on
// return.
func (g *Game) movetextTokens() []string {
	var stack []moveCandidate
	for {
		cand := g.undoMove()
		if cand == nil {
			break
		}
		stack = append(stack, *cand)
	}

	var tokens []string
	appendComment := func() {
		if comment, ok := g.comments[g.FEN()]; ok {
			tokens = append(tokens, "{"+comment+"}")
		}
	}

	appendComment()
	for i := len(stack) - 1; i >= 0; i-- {
		cand := stack[i]
		switch {
		case g.turn == White:
			tokens = append(tokens, strconv.Itoa(g.moveNumber)+".")
		case i == len(stack)-1:
			// score starting with a black move
			tokens = append(tokens, strconv.Itoa(g.moveNumber)+"...")
		}
		tokens = append(tokens, g.sanForMove(cand, g.legalMoves()))
		g.makeMove(cand)
		appendComment()
	}
	return tokens
}

//nolint:gochecknoglobals // compiled once.
var (
	tagPairRegex    = regexp.MustCompile(`^\s*\[\s*([A-Za-z0-9_]+)\s+"(.*)"\s*\]\s*$`)
	moveNumberRegex = regexp.MustCompile(`^(\d+)\.(\.\.)?$`)
	gluedMoveRegex  = regexp.MustCompile(`^\d+\.(\.\.)?`)
)

// LoadPGN parses a PGN game and replaces the receiver's state with it.
// Comments attach to the position they follow; variations, numeric
// annotation glyphs and rest-of-line comments are skipped. Parsing
// happens on a scratch game, so a failed load leaves the receiver
// unchanged.
func (g *Game) LoadPGN(pgn string, opts ...PGNOption) error {
	cfg := applyPGNOptions(opts)

	newlineRegex, err := regexp.Compile(cfg.newlinePattern)
	if err != nil {
		return &PGNParseError{Message: "invalid newline pattern"}
	}

	scratch := NewGame()
	var movetext strings.Builder
	inHeaders := true
	for _, line := range newlineRegex.Split(pgn, -1) {
		if inHeaders {
			if m := tagPairRegex.FindStringSubmatch(line); m != nil {
				scratch.headers.set(m[1], m[2])
				continue
			}
			if strings.TrimSpace(line) == "" {
				continue
			}
			inHeaders = false
		}
		movetext.WriteString(line)
		movetext.WriteByte('\n')
	}

	if setup, _ := scratch.headers.get("SetUp"); setup == "1" {
		fen, ok := scratch.headers.get("FEN")
		if !ok {
			return &PGNParseError{Message: "SetUp tag without FEN tag"}
		}
		if err := scratch.Load(fen, &LoadOptions{PreserveHeaders: true}); err != nil {
			return &PGNParseError{Message: "invalid FEN tag: " + err.Error()}
		}
	}

	if err := scratch.parseMovetext(movetext.String(), cfg.strict); err != nil {
		return err
	}

	g.copyFrom(scratch)
	return nil
}

//nolint:cyclop,gocognit // one branch per movetext token class.
func (g *Game) parseMovetext(movetext string, strict bool) error {
	i := 0
	n := len(movetext)
	for i < n {
		c := movetext[i]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			i++
		case c == '{':
			end := strings.IndexByte(movetext[i:], '}')
			if end < 0 {
				return &PGNParseError{Message: "unterminated comment"}
			}
			g.SetComment(strings.TrimSpace(movetext[i+1 : i+end]))
			i += end + 1
		case c == ';':
			// rest-of-line comment
			if end := strings.IndexByte(movetext[i:], '\n'); end < 0 {
				i = n
			} else {
				i += end + 1
			}
		case c == '(':
			depth := 1
			j := i + 1
			for ; j < n && depth > 0; j++ {
				switch movetext[j] {
				case '(':
					depth++
				case ')':
					depth--
				}
			}
			if depth != 0 {
				return &PGNParseError{Message: "unterminated variation"}
			}
			i = j
		case c == ')':
			return &PGNParseError{Message: "unexpected variation close"}
		default:
			j := i
			for j < n && !strings.ContainsRune(" \t\n\r{();", rune(movetext[j])) {
				j++
			}
			token := movetext[i:j]
			i = j
			if err := g.applyMovetextToken(token, strict); err != nil {
				return err
			}
		}
	}
	return nil
}

func (g *Game) applyMovetextToken(token string, strict bool) error {
	original := token
	switch token {
	case "1-0", "0-1", "1/2-1/2", "*":
		if _, ok := g.headers.get("Result"); !ok {
			g.headers.set("Result", token)
		}
		return nil
	}
	if token[0] == '$' {
		// numeric annotation glyph
		return nil
	}
	if m := moveNumberRegex.FindStringSubmatch(token); m != nil {
		if strict {
			if n, _ := strconv.Atoi(m[1]); n != g.moveNumber {
				return &PGNParseError{Message: "move number out of sequence", Token: token}
			}
		}
		return nil
	}
	if !strict {
		// accept movetext without a space after the number ("1.e4")
		token = gluedMoveRegex.ReplaceAllString(token, "")
		if token == "" {
			return nil
		}
	}
	if cand := g.moveFromSAN(token, strict); cand != nil {
		g.makeMove(*cand)
		return nil
	}
	return &PGNParseError{Message: "illegal or unknown move", Token: original}
}
