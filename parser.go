// Package jtok implements a zero-allocation JSON tokenizer for embedded
// and other memory-constrained targets. A caller supplies a UTF-8 JSON
// byte slice and a fixed-capacity []Token; Parse fills the slice with a
// flat, indexable forest of tokens that describe the document's
// structure. Tokens never copy input bytes and never allocate beyond the
// caller-supplied pool: they reference the input by byte offset and link
// to one another by index (Parent, Sibling).
//
// The package is a direct port of the jtok/jsmn family of C tokenizers
// (see jtok.c / jtok_object.c in the project history) to idiomatic Go:
// the recursive-descent grammar, the token pool allocator, and the
// stable Status error taxonomy are kept; pointer arithmetic becomes slice
// indexing and NUL-terminated strings become ordinary Go []byte slices.
package jtok

// DefaultMaxNestDepth bounds recursion depth when a Parser is built
// without WithMaxDepth. It mirrors the conservative default nesting
// limits used by jsmn-family forks on stack-constrained targets.
const DefaultMaxNestDepth = 32

// Parser holds the mutable state threaded through one recursive-descent
// parse: the input being scanned, the current byte offset, the next free
// slot in the token pool, and which token currently "owns" newly parsed
// children (toksuper) together with the most recently completed child of
// that owner (lastChild), used to stitch sibling links as each container
// is populated.
//
// A Parser may be reused across independent calls to Parse; each call
// resets all scanning state. It must not be used from more than one
// goroutine at a time.
type Parser struct {
	json      []byte
	pos       int
	toknext   int
	toksuper  int
	lastChild int

	tokens   []Token
	maxDepth int
}

// Option configures a Parser at construction time.
type Option func(*Parser)

// WithMaxDepth overrides the maximum container nesting depth a Parser
// will descend into before failing with StatusNestDepthExceeded. It is
// the Go equivalent of the original sources' compile-time
// JTOK_MAX_RECURSE_DEPTH constant, generalized into a per-Parser knob so
// it doesn't require a rebuild to change.
func WithMaxDepth(depth int) Option {
	return func(p *Parser) {
		p.maxDepth = depth
	}
}

// NewParser builds a Parser over a caller-owned, fixed-capacity token
// pool. The pool is never grown or reallocated; Parse fails with
// StatusNoMem once it is exhausted.
func NewParser(tokens []Token, opts ...Option) *Parser {
	p := &Parser{
		tokens:   tokens,
		maxDepth: DefaultMaxNestDepth,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Tokens returns the populated prefix of the pool from the most recent
// call to Parse: tokens[0:n] where n is the count Parse returned. Calling
// it before the first Parse returns an empty slice; after a failed Parse
// it holds the tokens written before the failure.
func (p *Parser) Tokens() []Token {
	return p.tokens[:p.toknext]
}

// Parse tokenizes json against the Parser's token pool. It returns the
// number of tokens written (tokens[0:n] forms a complete tree rooted at
// index 0) and a nil error on success, or a *ParseError on failure.
//
// The outermost JSON value must be an object; this is the one structural
// requirement the original firmware callers relied on (PDU payloads are
// always object-rooted) and it is preserved here rather than generalized
// to accept any JSON value at the root.
func (p *Parser) Parse(json []byte) (int, error) {
	if json == nil {
		return 0, &ParseError{Status: StatusNullParam}
	}
	if p.tokens == nil {
		return 0, &ParseError{Status: StatusNullParam}
	}
	if len(p.tokens) < 1 {
		return 0, &ParseError{Status: StatusNoMem}
	}

	p.json = json
	p.pos = 0
	p.toknext = 0
	p.toksuper = NoParent
	p.lastChild = NoChild

	for p.pos < len(json) && isASCIISpace(json[p.pos]) {
		p.pos++
	}

	if p.pos >= len(json) || json[p.pos] != '{' {
		return 0, &ParseError{Status: StatusNonObject, Pos: p.pos}
	}

	status := p.parseObject(0)
	if status != StatusOK {
		return p.toknext, &ParseError{
			Status:     status,
			TokenIndex: p.toknext - 1,
			Pos:        p.pos,
		}
	}
	return p.toknext, nil
}

// Parse is the package-level convenience entry point: build a Parser
// over tokens, run it over json, and return the token count. It is
// equivalent to NewParser(tokens, opts...).Parse(json) and exists so
// simple callers don't need to hold onto a *Parser at all.
func Parse(json []byte, tokens []Token, opts ...Option) (int, error) {
	if json == nil || tokens == nil {
		return 0, &ParseError{Status: StatusNullParam}
	}
	if len(tokens) < 1 {
		return 0, &ParseError{Status: StatusNoMem}
	}
	p := NewParser(tokens, opts...)
	return p.Parse(json)
}

// IsValidJSON is a sanity predicate for callers that hold a token array
// and count from a successful Parse: it reports whether the array could
// plausibly be a parsed, object-rooted JSON document.
func IsValidJSON(tokens []Token, count int) bool {
	if tokens == nil || count <= 1 {
		return false
	}
	if tokens[0].Type != Object {
		return false
	}
	if count == 2 {
		// { [ ] } - an object whose sole content is an array value
		// with no owning key. Parse itself never produces this shape
		// (an object's direct children are always key strings), but
		// the predicate tolerates externally constructed pools.
		return tokens[1].Type == Array
	}
	return tokens[1].Type == String
}

func (p *Parser) allocToken() (int, Status) {
	if p.toknext >= len(p.tokens) {
		return InvalidIndex, StatusNoMem
	}
	idx := p.toknext
	p.tokens[idx] = Token{
		Type:    Unassigned,
		Start:   0,
		End:     invalidEnd,
		Size:    0,
		Parent:  NoParent,
		Sibling: NoSibling,
		json:    p.json,
		pool:    p.tokens,
		self:    idx,
	}
	p.toknext++
	return idx, StatusOK
}

func isASCIISpace(b byte) bool {
	switch b {
	case ' ', '\t', '\r', '\n':
		return true
	default:
		return false
	}
}
