package jtok

// ObjHasKey looks up needle among obj's direct keys (obj must be an
// OBJECT token). It returns the index of the matching key token, or
// InvalidIndex if obj has no keys or none match. Comparison is
// byte-exact against the raw input slice (escape-preserving); unescaping
// is the caller's responsibility.
func ObjHasKey(obj Token, needle string) int {
	if obj.Type != Object || obj.Size == 0 || obj.pool == nil {
		return InvalidIndex
	}

	key, ok := firstChild(obj)
	if !ok {
		return InvalidIndex
	}
	for i := 0; i < obj.Size; i++ {
		if TokEqual(needle, key) {
			return key.self
		}
		if i == obj.Size-1 {
			break
		}
		key, ok = nextSibling(key)
		if !ok {
			return InvalidIndex
		}
	}
	return InvalidIndex
}
