package segtree

import (
	"fmt"
	"io"
)

// Tree2Dot outputs the internal structure of a Tree in Graphviz DOT format
// (for debugging purposes).
func Tree2Dot[T Value](t *Tree[T], w io.Writer) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	io.WriteString(w, "strict digraph {\n")
	io.WriteString(w, "\tnode [fontname=Arial,fontsize=12];\n")
	nodelist, edgelist := "", ""
	var walk func(pos int)
	walk = func(pos int) {
		nd := t.nodes[pos]
		if nd.left == noChild {
			label := fmt.Sprintf("%v\\n@%d", nd.sum, nd.from)
			nodelist += fmt.Sprintf("\"%d\" [label=\"%s\" %s];\n", pos, label, nodeDotStyles(true))
			return
		}
		label := fmt.Sprintf("%v\\n[%d,%d]", nd.sum, nd.from, nd.to)
		nodelist += fmt.Sprintf("\"%d\" [label=\"%s\" %s];\n", pos, label, nodeDotStyles(false))
		edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", pos, nd.left)
		edgelist += fmt.Sprintf("\"%d\" -> \"%d\";\n", pos, nd.right)
		walk(nd.left)
		walk(nd.right)
	}
	walk(0)
	io.WriteString(w, nodelist)
	io.WriteString(w, edgelist)
	io.WriteString(w, "}\n")
}

func nodeDotStyles(isleaf bool) string {
	s := ",style=filled"
	if isleaf {
		s += ",shape=box"
	} else {
		s += ",color=black,fillcolor=\"#a3d7e4\""
		s += ",shape=circle"
	}
	return s
}
