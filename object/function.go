package object

import (
	"strings"

	"github.com/cloudcmds/imp/ast"
)

// Function is a user-defined function value wrapping its declaration.
type Function struct {
	decl *ast.FunctionDecl
}

func (f *Function) Type() Type {
	return FUNCTION
}

func (f *Function) Name() string {
	return f.decl.Name.Literal()
}

func (f *Function) Decl() *ast.FunctionDecl {
	return f.decl
}

func (f *Function) Params() []string {
	return f.decl.ParamNames()
}

// Body returns the rewritten statements of the function.
func (f *Function) Body() []ast.Node {
	return f.decl.Body.Nodes
}

func (f *Function) String() string {
	return "@" + f.Name() + "(" + strings.Join(f.Params(), " ") + ") {…}"
}

func (f *Function) Inspect() string {
	return f.String()
}

func (f *Function) Interface() any {
	return nil
}

func NewFunction(decl *ast.FunctionDecl) *Function {
	return &Function{decl: decl}
}
