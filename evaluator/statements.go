package evaluator

import (
	"context"
	"strings"

	"github.com/cloudcmds/imp/ast"
	"github.com/cloudcmds/imp/errors"
	"github.com/cloudcmds/imp/internal/token"
	"github.com/cloudcmds/imp/object"
)

var statementKeywords = []string{
	token.DECL, token.DEL, token.RETURN, token.USE, token.IF, token.FOR, token.WHILE,
}

// statement reads the operands of a keyword statement from a block.
type statement struct {
	keyword *ast.Term
	nodes   []ast.Node
	pos     int
}

// take returns the next operand, failing if the block ends first.
func (e *Evaluator) take(s *statement, what string) (ast.Node, error) {
	if s.pos >= len(s.nodes) {
		return nil, e.errorAt(errors.InvalidStatement, s.keyword,
			"incomplete %s statement: expected %s", s.keyword.Literal(), what)
	}
	node := s.nodes[s.pos]
	s.pos++
	return node, nil
}

func (e *Evaluator) takeIdent(s *statement, what string) (*ast.Term, error) {
	node, err := e.take(s, what)
	if err != nil {
		return nil, err
	}
	term, ok := node.(*ast.Term)
	if !ok || !term.Is(token.IDENT) {
		return nil, e.errorAt(errors.UnexpectedToken, node,
			"%s statement expects %s, found %s", s.keyword.Literal(), what, ast.Describe(node))
	}
	return term, nil
}

func (e *Evaluator) takeBlock(s *statement) (*ast.Block, error) {
	node, err := e.take(s, "a code block")
	if err != nil {
		return nil, err
	}
	block, ok := node.(*ast.Block)
	if !ok {
		return nil, e.errorAt(errors.UnexpectedToken, node,
			"%s statement expects a code block, found %s", s.keyword.Literal(), ast.Describe(node))
	}
	return block, nil
}

// execBlock runs statements in order against scope. The returned bool is
// true when a return statement ended the block early.
func (e *Evaluator) execBlock(ctx context.Context, nodes []ast.Node, scope *object.Scope) (object.Object, bool, error) {
	for i := 0; i < len(nodes); {
		if err := ctx.Err(); err != nil {
			return nil, false, err
		}
		switch node := nodes[i].(type) {
		case *ast.CallExpr:
			if _, err := e.evalCall(ctx, node, scope); err != nil {
				return nil, false, err
			}
			i++
		case *ast.Term:
			if !node.Is(token.IDENT) {
				return nil, false, e.errorAt(errors.InvalidStatement, node,
					"unexpected %s: expected a statement", ast.Describe(node))
			}
			s := &statement{keyword: node, nodes: nodes, pos: i + 1}
			result, returned, err := e.execKeyword(ctx, s, scope)
			if err != nil || returned {
				return result, returned, err
			}
			i = s.pos
		default:
			return nil, false, e.errorAt(errors.InvalidStatement, node,
				"unexpected %s: expected a statement", ast.Describe(node))
		}
	}
	return object.Void, false, nil
}

func (e *Evaluator) execKeyword(ctx context.Context, s *statement, scope *object.Scope) (object.Object, bool, error) {
	switch s.keyword.Literal() {
	case token.DECL:
		return nil, false, e.execDecl(ctx, s, scope)
	case token.DEL:
		return nil, false, e.execDel(s, scope)
	case token.RETURN:
		node, err := e.take(s, "a value")
		if err != nil {
			return nil, false, err
		}
		value, err := e.resolve(ctx, node, scope)
		if err != nil {
			return nil, false, err
		}
		return value, true, nil
	case token.USE:
		name, err := e.takeIdent(s, "a capability name")
		if err != nil {
			return nil, false, err
		}
		return nil, false, e.use(ctx, name, scope)
	case token.IF:
		return e.execIf(ctx, s, scope)
	case token.FOR:
		return e.execFor(ctx, s, scope)
	case token.WHILE:
		return e.execWhile(ctx, s, scope)
	}
	return nil, false, e.unknownKeyword(s.keyword, scope)
}

func (e *Evaluator) unknownKeyword(keyword *ast.Term, scope *object.Scope) error {
	name := keyword.Literal()
	err := e.errorAt(errors.UnknownKeyword, keyword, "unknown keyword %q", name)
	if obj, ok := scope.Get(name); ok && object.Callable(obj) {
		return err.WithHint("to call " + name + ", add parentheses: " + name + "(...)")
	}
	if hint := errors.FormatSuggestions(errors.Suggest(name, statementKeywords)); hint != "" {
		return err.WithHint(hint)
	}
	return err.WithHint("statements start with one of: " + strings.Join(statementKeywords, ", "))
}

// decl <ident> <value>
func (e *Evaluator) execDecl(ctx context.Context, s *statement, scope *object.Scope) error {
	name, err := e.takeIdent(s, "a variable name")
	if err != nil {
		return err
	}
	node, err := e.take(s, "a value")
	if err != nil {
		return err
	}
	value, err := e.resolve(ctx, node, scope)
	if err != nil {
		return err
	}
	scope.Set(name.Literal(), value)
	return nil
}

// del <ident>
func (e *Evaluator) execDel(s *statement, scope *object.Scope) error {
	name, err := e.takeIdent(s, "a variable name")
	if err != nil {
		return err
	}
	scope.Delete(name.Literal())
	return nil
}

// use <capability>
func (e *Evaluator) use(ctx context.Context, name *ast.Term, scope *object.Scope) error {
	if e.importer == nil {
		return e.errorAt(errors.UnknownCapability, name,
			"unknown capability %q: no capabilities are available", name.Literal())
	}
	module, err := e.importer.Import(ctx, name.Literal())
	if err != nil {
		return e.locate(err, name)
	}
	scope.Import(module)
	e.logger.Debug().Str("capability", module.Name()).Strs("names", module.Names()).Msg("use")
	return nil
}

// if <cond> <block>
//
// The block is required even when the condition is false.
func (e *Evaluator) execIf(ctx context.Context, s *statement, scope *object.Scope) (object.Object, bool, error) {
	condNode, err := e.take(s, "a condition")
	if err != nil {
		return nil, false, err
	}
	cond, err := e.condition(ctx, s.keyword, condNode, scope)
	if err != nil {
		return nil, false, err
	}
	block, err := e.takeBlock(s)
	if err != nil {
		return nil, false, err
	}
	if !cond {
		return nil, false, nil
	}
	return nil, false, e.execNested(ctx, block, scope)
}

// execNested runs an if/for/while body as a nested call with no
// parameters: a return inside it ends the body, not the enclosing
// function, and its value is discarded.
func (e *Evaluator) execNested(ctx context.Context, block *ast.Block, scope *object.Scope) error {
	_, returned, err := e.execBlock(ctx, block.Nodes, scope)
	if returned {
		e.logger.Trace().Int("line", block.Pos().LineNumber()).Msg("return ended block")
	}
	return err
}

// for <array> => <ident> <block>
func (e *Evaluator) execFor(ctx context.Context, s *statement, scope *object.Scope) (object.Object, bool, error) {
	arrNode, err := e.take(s, "an array")
	if err != nil {
		return nil, false, err
	}
	value, err := e.resolve(ctx, arrNode, scope)
	if err != nil {
		return nil, false, err
	}
	arr, ok := value.(*object.Array)
	if !ok {
		return nil, false, e.errorAt(errors.TypeMismatch, arrNode,
			"for loop expects an array, found %s", object.TypeName(value))
	}
	arrow, err := e.take(s, "'=>'")
	if err != nil {
		return nil, false, err
	}
	if !ast.IsTerm(arrow, token.FOR_ASSIGN) {
		return nil, false, e.errorAt(errors.UnexpectedToken, arrow,
			"for loop expects '=>' after the array, found %s", ast.Describe(arrow))
	}
	name, err := e.takeIdent(s, "a loop variable")
	if err != nil {
		return nil, false, err
	}
	block, err := e.takeBlock(s)
	if err != nil {
		return nil, false, err
	}
	for i, item := range arr.Value() {
		scope.Set(name.Literal(), item)
		e.logger.Trace().Str("var", name.Literal()).Int("iteration", i).Msg("for")
		if err := e.execNested(ctx, block, scope); err != nil {
			return nil, false, err
		}
	}
	return nil, false, nil
}

// while <cond> <block>
//
// The condition is evaluated before every iteration.
func (e *Evaluator) execWhile(ctx context.Context, s *statement, scope *object.Scope) (object.Object, bool, error) {
	condNode, err := e.take(s, "a condition")
	if err != nil {
		return nil, false, err
	}
	block, err := e.takeBlock(s)
	if err != nil {
		return nil, false, err
	}
	for i := 0; ; i++ {
		if err := ctx.Err(); err != nil {
			return nil, false, err
		}
		cond, err := e.condition(ctx, s.keyword, condNode, scope)
		if err != nil {
			return nil, false, err
		}
		if !cond {
			return nil, false, nil
		}
		e.logger.Trace().Int("iteration", i).Msg("while")
		if err := e.execNested(ctx, block, scope); err != nil {
			return nil, false, err
		}
	}
}

func (e *Evaluator) condition(ctx context.Context, keyword *ast.Term, node ast.Node, scope *object.Scope) (bool, error) {
	value, err := e.resolve(ctx, node, scope)
	if err != nil {
		return false, err
	}
	b, ok := value.(*object.Bool)
	if !ok {
		return false, e.errorAt(errors.TypeMismatch, node,
			"%s condition must be a bool, found %s", keyword.Literal(), object.TypeName(value))
	}
	return b.Value(), nil
}
