package errors

import "sort"

// ErrorCode represents a unique identifier for error types.
// Codes are organized by category:
//   - E1xxx: Lexical errors
//   - E2xxx: Structural errors
//   - E3xxx: Semantic (runtime) errors
type ErrorCode string

const (
	// Lexical errors (E1xxx)
	E1001 ErrorCode = "E1001" // Unexpected character
	E1002 ErrorCode = "E1002" // Unexpected end of input

	// Structural errors (E2xxx)
	E2001 ErrorCode = "E2001" // Unexpected token
	E2002 ErrorCode = "E2002" // Unmatched closing delimiter
	E2003 ErrorCode = "E2003" // Mismatched delimiter
	E2004 ErrorCode = "E2004" // Unclosed delimiter
	E2005 ErrorCode = "E2005" // Malformed function declaration
	E2006 ErrorCode = "E2006" // Invalid parameter
	E2007 ErrorCode = "E2007" // Maximum nesting depth exceeded
	E2008 ErrorCode = "E2008" // Invalid statement

	// Semantic errors (E3xxx)
	E3001 ErrorCode = "E3001" // Undefined variable
	E3002 ErrorCode = "E3002" // Unknown capability
	E3003 ErrorCode = "E3003" // Unknown keyword
	E3004 ErrorCode = "E3004" // Arity mismatch
	E3005 ErrorCode = "E3005" // Type mismatch
	E3006 ErrorCode = "E3006" // Missing entry point
	E3007 ErrorCode = "E3007" // Index out of bounds
	E3008 ErrorCode = "E3008" // Recursion too deep
	E3009 ErrorCode = "E3009" // Invalid argument
	E3010 ErrorCode = "E3010" // Division by zero
	E3011 ErrorCode = "E3011" // Native function failed
)

// Readable aliases used throughout the interpreter.
const (
	UnexpectedChar      = E1001
	UnexpectedEOF       = E1002
	UnexpectedToken     = E2001
	UnmatchedDelimiter  = E2002
	MismatchedDelimiter = E2003
	UnclosedDelimiter   = E2004
	MalformedFunction   = E2005
	InvalidParameter    = E2006
	MaxDepthExceeded    = E2007
	InvalidStatement    = E2008
	UndefinedVariable   = E3001
	UnknownCapability   = E3002
	UnknownKeyword      = E3003
	ArityMismatch       = E3004
	TypeMismatch        = E3005
	NoEntryPoint        = E3006
	IndexOutOfBounds    = E3007
	RecursionTooDeep    = E3008
	InvalidArgument     = E3009
	DivisionByZero      = E3010
	NativeFailure       = E3011
)

// codeDescriptions maps error codes to their short descriptions.
var codeDescriptions = map[ErrorCode]string{
	E1001: "unexpected character",
	E1002: "unexpected end of input",

	E2001: "unexpected token",
	E2002: "unmatched delimiter",
	E2003: "mismatched delimiter",
	E2004: "unclosed delimiter",
	E2005: "malformed function declaration",
	E2006: "invalid parameter",
	E2007: "maximum nesting depth exceeded",
	E2008: "invalid statement",

	E3001: "undefined variable",
	E3002: "unknown capability",
	E3003: "unknown keyword",
	E3004: "arity mismatch",
	E3005: "type mismatch",
	E3006: "missing entry point",
	E3007: "index out of bounds",
	E3008: "recursion too deep",
	E3009: "invalid argument",
	E3010: "division by zero",
	E3011: "native function failed",
}

// Description returns the short description for an error code.
func (c ErrorCode) Description() string {
	if desc, ok := codeDescriptions[c]; ok {
		return desc
	}
	return "unknown error"
}

// Codes returns every known error code in order.
func Codes() []ErrorCode {
	codes := make([]ErrorCode, 0, len(codeDescriptions))
	for code := range codeDescriptions {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	return codes
}

// String returns the error code as a string.
func (c ErrorCode) String() string {
	return string(c)
}

// Kind returns the error kind based on the code prefix.
func (c ErrorCode) Kind() Kind {
	if len(c) < 2 {
		return KindUnknown
	}
	switch c[1] {
	case '1':
		return KindLexical
	case '2':
		return KindStructural
	case '3':
		return KindSemantic
	default:
		return KindUnknown
	}
}
