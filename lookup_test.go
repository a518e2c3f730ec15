package jtok

import "testing"

func TestObjHasKeyFindsMember(t *testing.T) {
	tokens := make([]Token, 7)
	_, err := Parse([]byte(`{"a":1,"b":2,"c":3}`), tokens)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	idx := ObjHasKey(tokens[0], "c")
	if idx == InvalidIndex {
		t.Fatalf("expected to find key c")
	}
	if !TokEqual("c", tokens[idx]) {
		t.Fatalf("expected index to point at key c, got %+v", tokens[idx])
	}
}

func TestObjHasKeyMissing(t *testing.T) {
	tokens := make([]Token, 3)
	_, err := Parse([]byte(`{"a":1}`), tokens)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if idx := ObjHasKey(tokens[0], "z"); idx != InvalidIndex {
		t.Fatalf("expected InvalidIndex, got %d", idx)
	}
}

func TestObjHasKeyEmptyObject(t *testing.T) {
	tokens := make([]Token, 1)
	_, err := Parse([]byte(`{}`), tokens)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if idx := ObjHasKey(tokens[0], "anything"); idx != InvalidIndex {
		t.Fatalf("expected InvalidIndex on empty object, got %d", idx)
	}
}

func TestIsValidJSONRejectsNonObjectRoot(t *testing.T) {
	tokens := []Token{{Type: String}, {Type: Primitive}}
	if IsValidJSON(tokens, 2) {
		t.Fatalf("expected false for non-object root")
	}
}

func TestIsValidJSONSingleTokenInsufficient(t *testing.T) {
	tokens := []Token{{Type: Object}}
	if IsValidJSON(tokens, 1) {
		t.Fatalf("expected false: need at least 2 tokens")
	}
}
