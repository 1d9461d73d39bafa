package rbtree

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Print outputs the structure of t to stdout (for debugging purposes).
// See Fprint.
func (t *Tree[K]) Print() error {
	return t.Fprint(os.Stdout)
}

// Fprint writes an indented rendering of the tree to w, one node per line.
// The tree is laid out sideways: the root is at the left margin, right
// subtrees are printed above and left subtrees below their parent.
//
//	  ┌- 3
//	- 2
//	  └- 1
//
// If w is a terminal, red nodes are printed on a red background. Otherwise
// red nodes are annotated with "(red)". The format is not stable.
func (t *Tree[K]) Fprint(w io.Writer) error {
	p := treePrinter[K]{t: t}
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		p.red = color.New(color.BgRed, color.FgWhite)
		p.red.EnableColor()
	}
	p.node(t.root, 0, rootPos, "")
	_, err := io.WriteString(w, p.out.String())
	return err
}

// String returns an uncolored rendering of the tree, as produced by Fprint.
func (t *Tree[K]) String() string {
	p := treePrinter[K]{t: t}
	p.node(t.root, 0, rootPos, "")
	return p.out.String()
}

type nodePos int

const (
	rootPos nodePos = iota
	leftPos
	rightPos
)

type treePrinter[K any] struct {
	t   *Tree[K]
	red *color.Color // nil if output is not colored
	out strings.Builder
}

func (p *treePrinter[K]) node(x ref, depth int, pos nodePos, indent string) {
	if x == none {
		return
	}
	n := p.t.nodes[x]
	lindent, rindent := indent+"  ", indent+"  "
	switch pos {
	case leftPos:
		rindent = indent + "│ "
	case rightPos:
		lindent = indent + "│ "
	}
	p.node(n.child[right], depth+1, rightPos, rindent)
	p.out.WriteString(indent)
	if depth > 0 {
		if pos == leftPos {
			p.out.WriteString("└")
		} else {
			p.out.WriteString("┌")
		}
	}
	p.out.WriteString("- ")
	key := fmt.Sprintf("%v", n.key)
	switch {
	case n.color == Black:
		p.out.WriteString(key)
	case p.red != nil:
		p.out.WriteString(p.red.Sprint(key))
	default:
		p.out.WriteString(key + " (red)")
	}
	p.out.WriteString("\n")
	p.node(n.child[left], depth+1, leftPos, lindent)
}
