package evaluator

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/cloudcmds/imp/builtins"
	"github.com/cloudcmds/imp/errors"
	"github.com/cloudcmds/imp/importer"
	"github.com/cloudcmds/imp/modules/math"
	"github.com/cloudcmds/imp/object"
	"github.com/cloudcmds/imp/parser"
)

type result struct {
	stdout string
	value  object.Object
	scope  *object.Scope
}

func runCtx(ctx context.Context, t *testing.T, source string, argv []string, opts ...Option) (result, error) {
	t.Helper()
	program, err := parser.Parse(context.Background(), source, parser.WithFilename("test.imp"))
	require.NoError(t, err)

	var stdout bytes.Buffer
	ctx = object.WithStdout(ctx, &stdout)
	scope := object.NewScope(builtins.Builtins())
	opts = append([]Option{WithSource(source)}, opts...)
	value, err := New(opts...).Run(ctx, program, scope, argv)
	return result{stdout: stdout.String(), value: value, scope: scope}, err
}

func run(t *testing.T, source string, opts ...Option) (result, error) {
	t.Helper()
	return runCtx(context.Background(), t, source, nil, opts...)
}

func TestHelloWorld(t *testing.T) {
	res, err := run(t, `@main(){ println("hi"); }`)
	require.NoError(t, err)
	require.Equal(t, "hi\n", res.stdout)
	require.Equal(t, object.Void, res.value)
}

func TestCountedLoop(t *testing.T) {
	res, err := run(t, `
@main() {
    decl x 0;
    while (cmp(x, 5)) {
        println(x);
        add(x, 1) -> x;
    }
}`)
	require.NoError(t, err)
	require.Equal(t, "0\n1\n2\n3\n4\n", res.stdout)
	x, ok := res.scope.Get("x")
	require.True(t, ok)
	require.Equal(t, "5", x.String())
}

func TestArityMismatch(t *testing.T) {
	_, err := run(t, `
@pair(a, b) { }
@main() { pair(1, 2, 3); }`)
	require.Error(t, err)
	require.True(t, errors.HasCode(err, errors.ArityMismatch))
	require.Contains(t, err.Error(), "expected 2, found 3")

	ierr, ok := errors.As(err)
	require.True(t, ok)
	require.Equal(t, 3, ierr.Location.Line)
	require.Equal(t, "test.imp", ierr.Location.Filename)
}

func TestArityProperty(t *testing.T) {
	for params := 0; params <= 3; params++ {
		for args := 0; args <= 3; args++ {
			t.Run(fmt.Sprintf("%d_params_%d_args", params, args), func(t *testing.T) {
				names := []string{"a", "b", "c"}[:params]
				values := []string{"1", "2", "3"}[:args]
				source := fmt.Sprintf("@f(%s) { } @main() { f(%s); }",
					strings.Join(names, ", "), strings.Join(values, ", "))
				_, err := run(t, source)
				if params == args {
					require.NoError(t, err)
				} else {
					require.True(t, errors.HasCode(err, errors.ArityMismatch))
				}
			})
		}
	}
}

func TestReturn(t *testing.T) {
	res, err := run(t, `
@pick(items) {
    for items => x { println(x); }
    return x;
    println("unreachable");
}
@main() {
    pick([1 2 3 4]) -> r;
    println(r);
    println("done");
}`)
	require.NoError(t, err)
	require.Equal(t, "1\n2\n3\n4\n4\ndone\n", res.stdout)
}

func TestReturnInBlockEndsOnlyTheBlock(t *testing.T) {
	res, err := run(t, `
@f() {
    if true { return 1; println("skipped"); }
    println("after");
}
@main() { f() -> r; println(r); }`)
	require.NoError(t, err)
	require.Equal(t, "after\n()\n", res.stdout)
	r, ok := res.scope.Get("r")
	require.True(t, ok)
	require.Equal(t, object.Void, r)

	res, err = run(t, `
@main() {
    for [1 2 3] => i { println(i); return i; println("skipped"); }
}`)
	require.NoError(t, err)
	require.Equal(t, "1\n2\n3\n", res.stdout)
	require.Equal(t, object.Void, res.value)
}

func TestReturnFromWhile(t *testing.T) {
	res, err := run(t, `
@first_over(limit) {
    decl i 0;
    decl going true;
    while going {
        add(i, 1) -> i;
        if gt(i, limit) { decl going false; return i; }
    }
    return i;
}
@main() { return first_over(3); }`)
	require.NoError(t, err)
	require.Equal(t, "4", res.value.String())
}

func TestSharedScope(t *testing.T) {
	res, err := run(t, `
@setup(a) { decl y 5; }
@main() { setup(7); println(y); println(a); }`)
	require.NoError(t, err)
	require.Equal(t, "5\n7\n", res.stdout)
}

func TestCallIsolation(t *testing.T) {
	_, err := run(t, `
@setup() { decl y 5; }
@main() { setup(); println(y); }`, WithCallIsolation(true))
	require.True(t, errors.HasCode(err, errors.UndefinedVariable))

	source := `
@fact(n) {
    decl r 1;
    if gt(n, 1) {
        sub(n, 1) -> m;
        fact(m) -> r;
        mult(n, r) -> r;
    }
    return r;
}
@main() { fact(5) -> x; println(x); }`
	res, err := run(t, source, WithCallIsolation(true))
	require.NoError(t, err)
	require.Equal(t, "120\n", res.stdout)

	// Without isolation the recursive call rebinds n in the shared scope.
	res, err = run(t, source)
	require.NoError(t, err)
	require.Equal(t, "1\n", res.stdout)
}

func TestRecursionLimit(t *testing.T) {
	_, err := run(t, `
@loop(n) { loop(n); }
@main() { loop(1); }`, WithMaxDepth(50))
	require.True(t, errors.HasCode(err, errors.RecursionTooDeep))

	ierr, ok := errors.As(err)
	require.True(t, ok)
	require.Len(t, ierr.Stack, 50)
	require.Equal(t, "@main", ierr.Stack[len(ierr.Stack)-1].Function)
	require.Contains(t, ierr.Hint, "@loop")
}

func TestTypeErrors(t *testing.T) {
	tests := []struct {
		name   string
		source string
		code   errors.ErrorCode
	}{
		{"if_not_bool", `@main() { if 1 { } }`, errors.TypeMismatch},
		{"while_not_bool", `@main() { while "x" { } }`, errors.TypeMismatch},
		{"call_number", `@main() { decl x 1; x(2); }`, errors.TypeMismatch},
		{"for_not_array", `@main() { for 3 => x { } }`, errors.TypeMismatch},
		{"builtin_types", `@main() { add(1, "a"); }`, errors.TypeMismatch},
		{"division", `@main() { div(1, 0); }`, errors.DivisionByZero},
		{"deleted", `@main() { decl x 1; del x; println(x); }`, errors.UndefinedVariable},
		{"incomplete_decl", `@main() { decl x }`, errors.InvalidStatement},
		{"if_without_block", `@main() { if false; }`, errors.InvalidStatement},
		{"for_missing_arrow", `@main() { for [1] x { } }`, errors.UnexpectedToken},
		{"if_non_block", `@main() { if false 1; }`, errors.UnexpectedToken},
		{"literal_statement", `@main() { "hello"; }`, errors.InvalidStatement},
		{"group_with_two", `@main() { decl x [(1 2)]; }`, errors.UnexpectedToken},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := run(t, tt.source)
			require.Error(t, err)
			require.True(t, errors.HasCode(err, tt.code), err.Error())
		})
	}
}

func TestErrorStack(t *testing.T) {
	_, err := run(t, `
@inner() { div(1, 0); }
@outer() { inner(); }
@main() { outer(); }`)
	ierr, ok := errors.As(err)
	require.True(t, ok)
	var frames []string
	for _, frame := range ierr.Stack {
		frames = append(frames, frame.Function)
	}
	require.Equal(t, []string{"@inner", "@outer", "@main"}, frames)
	require.Equal(t, 2, ierr.Location.Line)
	require.Contains(t, ierr.Location.Source, "div(1, 0)")
}

func TestHints(t *testing.T) {
	_, err := run(t, `@main() { pritnln("x"); }`)
	require.True(t, errors.HasCode(err, errors.UndefinedVariable))
	ierr, _ := errors.As(err)
	require.Contains(t, ierr.Hint, "println")

	_, err = run(t, `@main() { println; }`)
	require.True(t, errors.HasCode(err, errors.UnknownKeyword))
	ierr, _ = errors.As(err)
	require.Contains(t, ierr.Hint, "add parentheses")

	_, err = run(t, `@main() { whiel true { } }`)
	require.True(t, errors.HasCode(err, errors.UnknownKeyword))
	ierr, _ = errors.As(err)
	require.Contains(t, ierr.Hint, "while")
}

func TestEntryPoint(t *testing.T) {
	_, err := run(t, `@helper() { }`)
	require.True(t, errors.HasCode(err, errors.NoEntryPoint))

	_, err = run(t, `@main(a, b) { }`)
	require.True(t, errors.HasCode(err, errors.ArityMismatch))

	res, err := runCtx(context.Background(), t, `@main(args) { for args => a { println(a); } }`, []string{"x", "y"})
	require.NoError(t, err)
	require.Equal(t, "x\ny\n", res.stdout)
}

func TestUse(t *testing.T) {
	imp := importer.NewMapImporter(importer.WithModule(math.Module()))

	res, err := run(t, `@main() { use math; sqrt(16) -> r; println(r); }`, WithImporter(imp))
	require.NoError(t, err)
	require.Equal(t, "4\n", res.stdout)

	res, err = run(t, `use math; @main() { println(pi); }`, WithImporter(imp))
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(res.stdout, "3.14159"))

	_, err = run(t, `@main() { use maths; }`, WithImporter(imp))
	require.True(t, errors.HasCode(err, errors.UnknownCapability))

	_, err = run(t, `@main() { use math; }`)
	require.True(t, errors.HasCode(err, errors.UnknownCapability))
}

func TestInvokeBuiltin(t *testing.T) {
	var called bool
	fn := object.NewBuiltin("count_args", func(ctx context.Context, scope *object.Scope, args ...object.Object) (object.Object, error) {
		called = true
		scope.Set("seen", object.NewNumber(float64(len(args))))
		return nil, nil
	})
	scope := object.NewScope(nil)
	value, err := New().Invoke(context.Background(), fn, []object.Object{object.True, object.False}, scope)
	require.NoError(t, err)
	require.True(t, called)
	require.Equal(t, object.Void, value)
	seen, _ := scope.Get("seen")
	require.Equal(t, "2", seen.String())

	failing := object.NewBuiltin("boom", func(ctx context.Context, scope *object.Scope, args ...object.Object) (object.Object, error) {
		return nil, fmt.Errorf("kaboom")
	})
	_, err = New().Invoke(context.Background(), failing, nil, scope)
	require.True(t, errors.HasCode(err, errors.NativeFailure))
	require.Contains(t, err.Error(), "kaboom")

	_, err = New().Invoke(context.Background(), object.NewNumber(1), nil, scope)
	require.True(t, errors.HasCode(err, errors.TypeMismatch))
}

func TestCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := runCtx(ctx, t, `@main() { println("x"); }`, nil)
	require.ErrorIs(t, err, context.Canceled)

	ctx, cancel = context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	program, err := parser.Parse(context.Background(), `@main() { while true { } }`)
	require.NoError(t, err)
	_, err = New().Run(ctx, program, object.NewScope(builtins.Builtins()), nil)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}
