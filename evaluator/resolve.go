package evaluator

import (
	"context"
	"strconv"

	"github.com/cloudcmds/imp/ast"
	"github.com/cloudcmds/imp/errors"
	"github.com/cloudcmds/imp/internal/token"
	"github.com/cloudcmds/imp/object"
)

// resolve evaluates a node used as a value: an identifier is looked up,
// literals convert directly, arrays resolve each item, calls are evaluated
// and a group holding one expression resolves to that expression.
func (e *Evaluator) resolve(ctx context.Context, node ast.Node, scope *object.Scope) (object.Object, error) {
	switch n := node.(type) {
	case *ast.Term:
		return e.resolveTerm(n, scope)
	case *ast.CallExpr:
		return e.evalCall(ctx, n, scope)
	case *ast.Array:
		items := make([]object.Object, 0, len(n.Nodes))
		for _, child := range n.Nodes {
			item, err := e.resolve(ctx, child, scope)
			if err != nil {
				return nil, err
			}
			items = append(items, item)
		}
		return object.NewArray(items), nil
	case *ast.Group:
		if len(n.Nodes) != 1 {
			return nil, e.errorAt(errors.UnexpectedToken, n,
				"a parenthesized value must hold exactly one expression, found %d", len(n.Nodes))
		}
		return e.resolve(ctx, n.Nodes[0], scope)
	}
	return nil, e.errorAt(errors.UnexpectedToken, node, "%s cannot be used as a value", ast.Describe(node))
}

func (e *Evaluator) resolveTerm(term *ast.Term, scope *object.Scope) (object.Object, error) {
	switch term.Token.Type {
	case token.IDENT:
		return e.lookup(term, scope)
	case token.STRING:
		return object.NewString(term.Literal()), nil
	case token.NUMBER:
		value, err := strconv.ParseFloat(term.Literal(), 64)
		if err != nil {
			return nil, e.errorAt(errors.InvalidArgument, term, "invalid number %q", term.Literal())
		}
		return object.NewNumber(value), nil
	}
	return nil, e.errorAt(errors.UnexpectedToken, term, "%s cannot be used as a value", ast.Describe(term))
}

func (e *Evaluator) lookup(name *ast.Term, scope *object.Scope) (object.Object, error) {
	if obj, ok := scope.Get(name.Literal()); ok {
		return obj, nil
	}
	err := e.errorAt(errors.UndefinedVariable, name, "undefined variable %q", name.Literal())
	if hint := errors.FormatSuggestions(errors.Suggest(name.Literal(), scope.Names())); hint != "" {
		err.WithHint(hint)
	}
	return nil, err
}

// evalCall evaluates a call expression and stores the result when the call
// has an "-> name" target.
func (e *Evaluator) evalCall(ctx context.Context, call *ast.CallExpr, scope *object.Scope) (object.Object, error) {
	callee, err := e.lookup(call.Name, scope)
	if err != nil {
		return nil, err
	}
	if !object.Callable(callee) {
		return nil, e.errorAt(errors.TypeMismatch, call.Name,
			"%q is a %s, not a function", call.Name.Literal(), callee.Type())
	}
	args := make([]object.Object, 0, len(call.Args.Nodes))
	for _, node := range call.Args.Nodes {
		arg, err := e.resolve(ctx, node, scope)
		if err != nil {
			return nil, err
		}
		args = append(args, arg)
	}
	result, err := e.Invoke(ctx, callee, args, scope)
	if err != nil {
		return nil, e.locate(err, call)
	}
	if target := call.Target(); target != "" {
		scope.Set(target, result)
	}
	return result, nil
}
