package jtok

// MaxTokenLen bounds the value TokLen will report, mirroring the
// original sources' use of a 16-bit length field for constrained
// targets.
const MaxTokenLen = 1<<16 - 1

// TokLen returns the payload length of tok (End-Start), clamped to
// MaxTokenLen.
func TokLen(tok Token) int {
	n := tok.End - tok.Start
	if n < 0 {
		return 0
	}
	if n > MaxTokenLen {
		return MaxTokenLen
	}
	return n
}

// TokEqual reports whether tok's raw payload is byte-for-byte equal to
// literal. This is strict equality: unlike the original C tokcmp (which
// compared using the longer of the two lengths and so reported equal for
// strict prefixes), a prefix never compares equal here.
func TokEqual(literal string, tok Token) bool {
	raw := tok.Raw()
	if raw == nil {
		return false
	}
	return string(raw) == literal
}

// TokNEqual is the bounded form of TokEqual: it compares only the first
// n bytes of each side, requiring both to be at least n bytes long.
func TokNEqual(literal string, tok Token, n int) bool {
	if n < 0 {
		return false
	}
	raw := tok.Raw()
	if raw == nil || len(raw) < n || len(literal) < n {
		return false
	}
	return string(raw[:n]) == literal[:n]
}

// TokCopy copies at most len(dst) bytes of tok's raw payload into dst and
// returns the number of bytes copied. It never writes a trailing NUL -
// the caller owns dst's framing.
func TokCopy(dst []byte, tok Token) int {
	raw := tok.Raw()
	if raw == nil || len(dst) == 0 {
		return 0
	}
	n := len(raw)
	if n > len(dst) {
		n = len(dst)
	}
	copy(dst[:n], raw[:n])
	return n
}

// TokNCopy is TokCopy bounded additionally by n bytes.
func TokNCopy(dst []byte, tok Token, n int) int {
	if n < len(dst) {
		return TokCopy(dst[:n], tok)
	}
	return TokCopy(dst, tok)
}

// TokTokEqual reports structural equality between two tokens drawn from
// (possibly different) pools: primitives and strings compare their raw
// payload bytes; arrays compare Size and then their elements pairwise in
// order; objects compare Size and then match keys up to reordering,
// requiring every key/value pair in a to have an equal counterpart in b.
//
// Two tokens of different Type are never equal. Object keys and string
// values share the Type String, so a key and a string value with the
// same bytes compare equal.
func TokTokEqual(a, b Token) bool {
	if a.Type != b.Type {
		return false
	}
	switch a.Type {
	case Primitive, String:
		return tokTokEqualLeaf(a, b)
	case Array:
		return tokTokEqualArray(a, b)
	case Object:
		return tokTokEqualObject(a, b)
	default:
		return false
	}
}

func tokTokEqualLeaf(a, b Token) bool {
	ra, rb := a.Raw(), b.Raw()
	if ra == nil || rb == nil {
		return false
	}
	return string(ra) == string(rb)
}

func tokTokEqualArray(a, b Token) bool {
	if a.Size != b.Size {
		return false
	}
	if a.Size == 0 {
		return true
	}
	ca, ok := firstChild(a)
	if !ok {
		return false
	}
	cb, ok := firstChild(b)
	if !ok {
		return false
	}
	for i := 0; i < a.Size; i++ {
		if !TokTokEqual(ca, cb) {
			return false
		}
		if i == a.Size-1 {
			break
		}
		var ok bool
		ca, ok = nextSibling(ca)
		if !ok {
			return false
		}
		cb, ok = nextSibling(cb)
		if !ok {
			return false
		}
	}
	return true
}

func tokTokEqualObject(a, b Token) bool {
	if a.Size != b.Size {
		return false
	}
	if a.Size == 0 {
		return true
	}
	keyA, ok := firstChild(a)
	if !ok {
		return false
	}
	for i := 0; i < a.Size; i++ {
		valA, ok := valueOf(keyA)
		if !ok {
			return false
		}
		if !findMatchingKey(keyA, valA, b) {
			return false
		}
		if i < a.Size-1 {
			keyA, ok = nextSibling(keyA)
			if !ok {
				return false
			}
		}
	}
	return true
}

// findMatchingKey walks obj's key chain to the first key with the same
// raw bytes as keyA and reports whether its bound value is structurally
// equal to valA. Later keys with the same bytes are not examined.
func findMatchingKey(keyA, valA, obj Token) bool {
	if obj.Size == 0 {
		return false
	}
	keyB, ok := firstChild(obj)
	if !ok {
		return false
	}
	for i := 0; i < obj.Size; i++ {
		if tokTokEqualLeaf(keyA, keyB) {
			valB, ok := valueOf(keyB)
			if !ok {
				return false
			}
			return TokTokEqual(valA, valB)
		}
		if i == obj.Size-1 {
			break
		}
		keyB, ok = nextSibling(keyB)
		if !ok {
			return false
		}
	}
	return false
}

// firstChild returns the first direct child of an OBJECT/ARRAY token: the
// token at index+1 within its own pool.
func firstChild(container Token) (Token, bool) {
	if container.pool == nil {
		return Token{}, false
	}
	idx := container.self + 1
	if idx >= len(container.pool) {
		return Token{}, false
	}
	return container.pool[idx], true
}

// nextSibling follows t.Sibling within t's own pool.
func nextSibling(t Token) (Token, bool) {
	if t.Sibling == NoSibling || t.pool == nil {
		return Token{}, false
	}
	if t.Sibling < 0 || t.Sibling >= len(t.pool) {
		return Token{}, false
	}
	return t.pool[t.Sibling], true
}

// valueOf returns the value bound to an object key token: the token
// immediately after it in its own pool.
func valueOf(key Token) (Token, bool) {
	if key.pool == nil {
		return Token{}, false
	}
	idx := key.self + 1
	if idx >= len(key.pool) {
		return Token{}, false
	}
	return key.pool[idx], true
}
