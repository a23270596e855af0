// Package errors defines the error taxonomy shared by the lexer, parser and
// evaluator. Every error carries a code whose prefix determines its Kind.
package errors

import (
	goerrors "errors"
	"fmt"
	"strings"

	"github.com/cloudcmds/imp/internal/token"
	"github.com/hashicorp/go-multierror"
)

// Kind is the broad category of an error.
type Kind int

const (
	KindUnknown Kind = iota
	KindLexical
	KindStructural
	KindSemantic
)

func (k Kind) String() string {
	switch k {
	case KindLexical:
		return "lexical error"
	case KindStructural:
		return "structural error"
	case KindSemantic:
		return "semantic error"
	default:
		return "error"
	}
}

// SourceLocation represents a position in source code.
type SourceLocation struct {
	Filename string
	Line     int    // 1-based line number
	Column   int    // 1-based column number
	Source   string // The line of source code
}

// String returns a formatted string representation of the source location.
func (s SourceLocation) String() string {
	if s.Filename != "" {
		return fmt.Sprintf("%s:%d:%d", s.Filename, s.Line, s.Column)
	}
	return fmt.Sprintf("%d:%d", s.Line, s.Column)
}

// IsZero returns true if the location has not been set.
func (s SourceLocation) IsZero() bool {
	return s.Line == 0 && s.Column == 0
}

// StackFrame represents a single imp function activation.
type StackFrame struct {
	Function string
}

// String returns a formatted string representation of the stack frame.
func (f StackFrame) String() string {
	return fmt.Sprintf("at @%s", f.Function)
}

// FormatStackTrace formats a slice of stack frames as a human-readable string.
func FormatStackTrace(frames []StackFrame) string {
	if len(frames) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("Stack trace:\n")
	for _, frame := range frames {
		b.WriteString("  ")
		b.WriteString(frame.String())
		b.WriteString("\n")
	}
	return b.String()
}

// FormattableError is an interface for errors that can be formatted with
// the enhanced error formatter (with colors, source context, etc).
type FormattableError interface {
	Error() string
	ToFormatted() *FormattedError
}

// Error is the single error type returned by every stage of the pipeline.
type Error struct {
	Code     ErrorCode
	Message  string
	Location SourceLocation
	Hint     string
	Stack    []StackFrame
	Cause    error
}

// New returns an Error with the given code and message.
func New(code ErrorCode, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...)}
}

// Wrap returns an Error with the given code that wraps cause.
func Wrap(code ErrorCode, cause error, format string, args ...any) *Error {
	return &Error{Code: code, Message: fmt.Sprintf(format, args...), Cause: cause}
}

// At attaches a source position to the error.
func (e *Error) At(pos token.Position, source string) *Error {
	e.Location = SourceLocation{
		Filename: pos.File,
		Line:     pos.LineNumber(),
		Column:   pos.ColumnNumber(),
		Source:   source,
	}
	return e
}

// WithHint attaches a hint, such as a "did you mean" suggestion.
func (e *Error) WithHint(hint string) *Error {
	e.Hint = hint
	return e
}

// PushFrame records that the error propagated out of the named function.
func (e *Error) PushFrame(function string) *Error {
	e.Stack = append(e.Stack, StackFrame{Function: function})
	return e
}

// Kind returns the category of this error.
func (e *Error) Kind() Kind {
	return e.Code.Kind()
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Kind(), e.Message)
	if e.Location.IsZero() {
		return msg
	}
	return fmt.Sprintf("%s (%s)", msg, e.Location)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// ToFormatted converts the error to a FormattedError for display.
func (e *Error) ToFormatted() *FormattedError {
	fe := &FormattedError{
		Code:     e.Code,
		Kind:     e.Kind().String(),
		Message:  e.Message,
		Filename: e.Location.Filename,
		Line:     e.Location.Line,
		Column:   e.Location.Column,
		Hint:     e.Hint,
		Stack:    e.Stack,
	}
	if e.Location.Source != "" {
		fe.SourceLines = []SourceLineEntry{
			{Number: e.Location.Line, Text: e.Location.Source, IsMain: true},
		}
	}
	return fe
}

// FriendlyErrorMessage returns the uncolored, formatted form of the error.
func (e *Error) FriendlyErrorMessage() string {
	return NewFormatter(false).Format(e.ToFormatted())
}

// As returns the first *Error found in err's chain.
func As(err error) (*Error, bool) {
	var e *Error
	if goerrors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// HasCode reports whether any error in err's chain has the given code.
func HasCode(err error, code ErrorCode) bool {
	for _, e := range Flatten(err) {
		if e.Code == code {
			return true
		}
	}
	return false
}

// KindOf returns the kind of the first *Error in err's chain.
func KindOf(err error) Kind {
	if e, ok := As(err); ok {
		return e.Kind()
	}
	return KindUnknown
}

// Flatten returns every *Error contained in err, expanding multi-errors.
func Flatten(err error) []*Error {
	if err == nil {
		return nil
	}
	var merr *multierror.Error
	if goerrors.As(err, &merr) {
		var out []*Error
		for _, inner := range merr.Errors {
			out = append(out, Flatten(inner)...)
		}
		return out
	}
	if e, ok := As(err); ok {
		return []*Error{e}
	}
	return nil
}

// ListFormat is a multierror.ErrorFormatFunc that lists one error per line.
func ListFormat(errs []error) string {
	if len(errs) == 1 {
		return errs[0].Error()
	}
	msgs := make([]string, len(errs))
	for i, err := range errs {
		msgs[i] = err.Error()
	}
	return fmt.Sprintf("%d errors occurred:\n\t%s", len(errs), strings.Join(msgs, "\n\t"))
}
