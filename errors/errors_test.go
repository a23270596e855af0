package errors

import (
	"fmt"
	"strings"
	"testing"

	"github.com/cloudcmds/imp/internal/token"
	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/require"
)

func TestSourceLocation_String(t *testing.T) {
	tests := []struct {
		name     string
		loc      SourceLocation
		expected string
	}{
		{
			name:     "with filename",
			loc:      SourceLocation{Filename: "main.imp", Line: 10, Column: 5},
			expected: "main.imp:10:5",
		},
		{
			name:     "without filename",
			loc:      SourceLocation{Line: 10, Column: 5},
			expected: "10:5",
		},
		{
			name:     "zero location",
			loc:      SourceLocation{},
			expected: "0:0",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.loc.String())
		})
	}
	require.True(t, SourceLocation{}.IsZero())
}

func TestCodeKinds(t *testing.T) {
	tests := []struct {
		code ErrorCode
		kind Kind
	}{
		{UnexpectedChar, KindLexical},
		{UnexpectedEOF, KindLexical},
		{MismatchedDelimiter, KindStructural},
		{MalformedFunction, KindStructural},
		{ArityMismatch, KindSemantic},
		{NoEntryPoint, KindSemantic},
		{ErrorCode("X"), KindUnknown},
	}
	for _, tt := range tests {
		require.Equal(t, tt.kind, tt.code.Kind(), tt.code)
	}
	require.Equal(t, "arity mismatch", ArityMismatch.Description())
	require.Equal(t, "unknown error", ErrorCode("E9999").Description())
}

func TestErrorMessage(t *testing.T) {
	err := New(UnexpectedEOF, "unexpected end of input")
	require.Equal(t, "lexical error: unexpected end of input", err.Error())

	err.At(token.Position{Line: 0, Column: 13, File: "main.imp"}, `@main(){ "abc`)
	require.Equal(t, "lexical error: unexpected end of input (main.imp:1:14)", err.Error())
	require.Equal(t, KindLexical, err.Kind())
}

func TestHasCodeAndKindOf(t *testing.T) {
	base := New(TypeMismatch, "expected bool")
	wrapped := fmt.Errorf("running: %w", base)
	require.True(t, HasCode(wrapped, TypeMismatch))
	require.False(t, HasCode(wrapped, ArityMismatch))
	require.Equal(t, KindSemantic, KindOf(wrapped))
	require.Equal(t, KindUnknown, KindOf(fmt.Errorf("plain")))

	var merr *multierror.Error
	merr = multierror.Append(merr, New(MalformedFunction, "missing body"))
	merr = multierror.Append(merr, New(InvalidParameter, "bad param"))
	require.True(t, HasCode(merr, InvalidParameter))
	require.Len(t, Flatten(merr), 2)
}

func TestFormatter(t *testing.T) {
	err := New(UndefinedVariable, "undefined variable %q", "pritnln").
		At(token.Position{Line: 1, Column: 4}, "    pritnln(x);").
		WithHint("did you mean println?").
		PushFrame("main")

	out := NewFormatter(false).Format(err.ToFormatted())
	require.True(t, strings.HasPrefix(out, "semantic error[E3001]: undefined variable \"pritnln\"\n"))
	require.Contains(t, out, "--> 2:5")
	require.Contains(t, out, " 2 |     pritnln(x);")
	require.Contains(t, out, "    ^\n")
	require.Contains(t, out, "hint: did you mean println?")
	require.Contains(t, out, "at @main")
}

func TestFormatErrorMultiple(t *testing.T) {
	var merr *multierror.Error
	merr = multierror.Append(merr, New(MalformedFunction, "one"))
	merr = multierror.Append(merr, New(MalformedFunction, "two"))
	out := NewFormatter(false).FormatError(merr)
	require.Contains(t, out, "[1/2]")
	require.Contains(t, out, "found 2 errors")

	plain := NewFormatter(false).FormatError(fmt.Errorf("boom"))
	require.Equal(t, "error: boom\n", plain)
}

func TestSuggest(t *testing.T) {
	names := []string{"println", "print", "push", "pow", "eq", "or", "write_file", "len"}

	require.Equal(t, []string{"println", "print"}, Suggest("pritnln", names))
	require.Equal(t, []string{"len"}, Suggest("lne", names))
	require.Equal(t, []string{"eq", "or"}, Suggest("er", names))
	require.Equal(t, []string{"write_file"}, Suggest("wfile", names))
	require.Equal(t, []string{"print", "println"}, Suggest("prnt", names))

	require.Nil(t, Suggest("", names))
	require.Empty(t, Suggest("println", []string{"println"}))
	require.Empty(t, Suggest("zzzzzzzz", names))
	require.Empty(t, Suggest("Println", []string{"x"}))
	require.Len(t, Suggest("pw", []string{"pow", "pow", "pow"}), 1)
}

func TestFormatSuggestions(t *testing.T) {
	require.Equal(t, "", FormatSuggestions(nil))
	require.Equal(t, "did you mean println?", FormatSuggestions([]string{"println"}))
	require.Equal(t, "did you mean a, b or c?", FormatSuggestions([]string{"a", "b", "c"}))
}
