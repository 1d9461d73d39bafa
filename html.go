package rbtree

import (
	"io"

	"golang.org/x/net/html"
)

// RenderHTML writes the structure of t as nested HTML lists (for debugging
// purposes). Every node becomes a list item of class "red" or "black" holding
// the node's label; absent children of inner nodes show up as items of class
// "nil". Clients may style the output with CSS, e.g.
//
//	.rbtree li.red > span { background: #e03030; color: white }
func (t *Tree[K]) RenderHTML(w io.Writer) error {
	div := element("div", "rbtree")
	if t.root != none {
		ul := element("ul", "")
		ul.AppendChild(t.htmlNode(t.root))
		div.AppendChild(ul)
	}
	return html.Render(w, div)
}

func (t *Tree[K]) htmlNode(x ref) *html.Node {
	if x == none {
		return element("li", "nil")
	}
	n := t.nodes[x]
	li := element("li", n.color.String())
	span := element("span", "")
	span.AppendChild(&html.Node{Type: html.TextNode, Data: label(n.key)})
	li.AppendChild(span)
	if n.child[left] != none || n.child[right] != none {
		ul := element("ul", "")
		ul.AppendChild(t.htmlNode(n.child[left]))
		ul.AppendChild(t.htmlNode(n.child[right]))
		li.AppendChild(ul)
	}
	return li
}

func element(tag string, class string) *html.Node {
	n := &html.Node{Type: html.ElementNode, Data: tag}
	if class != "" {
		n.Attr = []html.Attribute{{Key: "class", Val: class}}
	}
	return n
}
