package rbtree

import (
	"fmt"
	"io"
	"strings"
)

// Tree2Dot outputs the internal structure of a tree in Graphviz DOT format
// (for debugging purposes). Absent children are drawn as small black boxes.
//
// Node IDs are arena slots and may be reused after deletions, so IDs are
// only meaningful within a single rendering.
func Tree2Dot[K any](tree *Tree[K], w io.Writer) error {
	var nodelist, edgelist strings.Builder
	nodelist.WriteString("strict digraph {\n")
	nodelist.WriteString("\tnode [fontname=Arial,fontsize=12];\n")
	var walk func(x ref)
	walk = func(x ref) {
		n := tree.nodes[x]
		fmt.Fprintf(&nodelist, "\t\"%d\" [label=\"%s\" %s];\n", x, dotEscape(label(n.key)), nodeDotStyles(n.color))
		for s, ch := range n.child {
			if ch == none {
				nilid := fmt.Sprintf("nil%d%s", x, side(s))
				fmt.Fprintf(&nodelist, "\t\"%s\" %s;\n", nilid, emptyNode())
				fmt.Fprintf(&edgelist, "\t\"%d\" -> \"%s\";\n", x, nilid)
				continue
			}
			fmt.Fprintf(&edgelist, "\t\"%d\" -> \"%d\";\n", x, ch)
			walk(ch)
		}
	}
	if tree.root != none {
		walk(tree.root)
	}
	if _, err := io.WriteString(w, nodelist.String()); err != nil {
		T().Errorf("rbtree DOT: %s", err.Error())
		return err
	}
	_, err := io.WriteString(w, edgelist.String()+"}\n")
	return err
}

func emptyNode() string {
	return "[label=\"\",color=black,style=filled,fillcolor=black,shape=box,fixedsize=true,width=.2,height=.2]"
}

func nodeDotStyles(c Color) string {
	s := ",style=filled,shape=circle,fontcolor=white"
	if c == Red {
		s += ",color=\"#b02020\",fillcolor=\"#e03030\""
	} else {
		s += ",color=black,fillcolor=black"
	}
	return s
}

func dotEscape(s string) string {
	return strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(s)
}
