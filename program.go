package imp

import (
	"github.com/cloudcmds/imp/ast"
)

// Program is the parsed representation of imp source code.
// It is immutable after creation and safe for concurrent use.
type Program struct {
	tree *ast.Program

	// Metadata
	source   string
	filename string
}

// Source returns the original source code that was parsed.
func (p *Program) Source() string {
	return p.source
}

// Filename returns the filename associated with this program, if any.
func (p *Program) Filename() string {
	return p.filename
}

// FunctionNames returns the names of the functions the program declares.
func (p *Program) FunctionNames() []string {
	names := make([]string, 0, len(p.tree.Funcs))
	for _, fn := range p.tree.Funcs {
		names = append(names, fn.Name.Literal())
	}
	return names
}

// AST returns the syntax tree.
func (p *Program) AST() *ast.Program {
	return p.tree
}
