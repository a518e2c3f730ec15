package jtok

import "fmt"

// Status is the stable error taxonomy callers branch on, mirroring
// JTOK_PARSE_STATUS_t from the original firmware sources. Status itself
// implements error so it can be returned and compared directly, or
// unwrapped from a *ParseError via errors.As/errors.Is.
type Status int

const (
	StatusOK Status = iota
	StatusUnknownError
	StatusNoMem
	StatusInval
	StatusNullParam
	StatusPartialToken
	StatusKeyNoVal
	StatusCommaNoKey
	StatusObjectInvalidParent
	StatusInvalidPrimitive
	StatusNonObject
	StatusInvalidStart
	StatusInvalidEnd
	StatusObjNoKey
	StatusMixedArray
	StatusArraySeparator
	StatusStrayComma
	StatusValNoColon
	StatusKeyMultipleVal
	StatusInvalidParent
	StatusValNoComma
	StatusNonArray
	StatusEmptyKey
	StatusNestDepthExceeded
)

var statusNames = [...]string{
	StatusOK:                  "OK",
	StatusUnknownError:        "UNKNOWN_ERROR",
	StatusNoMem:                "NOMEM",
	StatusInval:                "INVAL",
	StatusNullParam:            "NULL_PARAM",
	StatusPartialToken:         "PARTIAL_TOKEN",
	StatusKeyNoVal:             "KEY_NO_VAL",
	StatusCommaNoKey:           "COMMA_NO_KEY",
	StatusObjectInvalidParent:  "OBJECT_INVALID_PARENT",
	StatusInvalidPrimitive:     "INVALID_PRIMITIVE",
	StatusNonObject:            "NON_OBJECT",
	StatusInvalidStart:         "INVALID_START",
	StatusInvalidEnd:           "INVALID_END",
	StatusObjNoKey:             "OBJ_NOKEY",
	StatusMixedArray:           "MIXED_ARRAY",
	StatusArraySeparator:       "ARRAY_SEPARATOR",
	StatusStrayComma:           "STRAY_COMMA",
	StatusValNoColon:           "VAL_NO_COLON",
	StatusKeyMultipleVal:       "KEY_MULTIPLE_VAL",
	StatusInvalidParent:        "INVALID_PARENT",
	StatusValNoComma:           "VAL_NO_COMMA",
	StatusNonArray:             "NON_ARRAY",
	StatusEmptyKey:             "EMPTY_KEY",
	StatusNestDepthExceeded:    "NEST_DEPTH_EXCEEDED",
}

// String renders the status the way ErrName does, so Status satisfies
// both fmt.Stringer and error with one table.
func (s Status) String() string {
	if int(s) < 0 || int(s) >= len(statusNames) || statusNames[s] == "" {
		return "UNKNOWN_ERROR"
	}
	return statusNames[s]
}

// Error implements the error interface so a Status can be returned and
// compared directly with errors.Is, without forcing every caller to wrap
// it in a ParseError.
func (s Status) Error() string {
	return s.String()
}

// ErrName returns the human-readable name of a Status. Kept alongside
// Status.String for callers translating the original C API's
// jtok_jtokerr_messages one-to-one.
func ErrName(s Status) string {
	return s.String()
}

// ParseError carries diagnostic context alongside a failing Status: the
// index of the token that was in flight when parsing stopped, and the
// byte offset of the offending input. Both are best-effort - on most
// errors they point exactly at the problem; on a handful of early
// caller-error paths (NULL_PARAM, NOMEM before any token exists) they
// stay at their zero values.
type ParseError struct {
	Status     Status
	TokenIndex int
	Pos        int
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("jtok: %s at byte %d (token %d)", e.Status, e.Pos, e.TokenIndex)
}

// Unwrap lets errors.Is(err, jtok.StatusMixedArray) and friends work
// against a *ParseError returned from Parse.
func (e *ParseError) Unwrap() error {
	return e.Status
}
