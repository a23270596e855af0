package ast

// Dump converts a node into nested maps and slices that serialize cleanly
// to JSON or YAML. It is used by the "imp ast" command.
func Dump(node Node) any {
	switch n := node.(type) {
	case nil:
		return nil
	case *Program:
		uses := make([]any, 0, len(n.Uses))
		for _, u := range n.Uses {
			uses = append(uses, Dump(u))
		}
		funcs := make([]any, 0, len(n.Funcs))
		for _, fn := range n.Funcs {
			funcs = append(funcs, Dump(fn))
		}
		return map[string]any{"type": "program", "uses": uses, "funcs": funcs}
	case *Term:
		return map[string]any{
			"type":  "term",
			"token": string(n.Token.Type),
			"value": n.Token.Literal,
			"pos":   n.Pos().String(),
		}
	case *Array:
		return dumpComposite("array", n, n.Nodes)
	case *Group:
		return dumpComposite("group", n, n.Nodes)
	case *Block:
		return dumpComposite("block", n, n.Nodes)
	case *CallExpr:
		m := map[string]any{
			"type": "call",
			"name": n.Name.Literal(),
			"args": dumpNodes(n.Args.Nodes),
			"pos":  n.Pos().String(),
		}
		if n.AssignTo != nil {
			m["assign_to"] = n.AssignTo.Literal()
		}
		return m
	case *FunctionDecl:
		return map[string]any{
			"type":   "function",
			"name":   n.Name.Literal(),
			"params": n.ParamNames(),
			"body":   dumpNodes(n.Body.Nodes),
			"pos":    n.Pos().String(),
		}
	case *Use:
		return map[string]any{"type": "use", "name": n.Name.Literal(), "pos": n.Pos().String()}
	}
	return node.String()
}

func dumpComposite(kind string, n Node, children []Node) map[string]any {
	return map[string]any{
		"type":  kind,
		"items": dumpNodes(children),
		"pos":   n.Pos().String(),
	}
}

func dumpNodes(nodes []Node) []any {
	out := make([]any, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, Dump(n))
	}
	return out
}
