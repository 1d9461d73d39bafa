package rbtree

import (
	"fmt"
	"unicode/utf8"

	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
)

// MaxLabelWidth is the display width (in fixed-width ‘en’s) of node labels
// in DOT and HTML output. Longer keys are shortened.
var MaxLabelWidth = 24

func label[K any](key K) string {
	return shorten(fmt.Sprintf("%v", key), MaxLabelWidth)
}

// shorten cuts s to at most width display positions, marking the cut with an
// ellipsis. East Asian wide characters count as two positions.
func shorten(s string, width int) string {
	if len(s) <= width { // no rune is wider than its UTF-8 encoding
		return s
	}
	// grapheme strings are limited in size; a label needs just a prefix
	truncated := false
	if limit := min(16*(width+1), grapheme.MaxByteLen-1); len(s) > limit {
		for limit > 0 && !utf8.RuneStart(s[limit]) {
			limit--
		}
		s, truncated = s[:limit], true
	}
	gstr := grapheme.StringFromString(s)
	total, keep := 0, 0
	for i := 0; i < gstr.Len() && total <= width; i++ {
		g := gstr.Nth(i)
		total += uax11.Width([]byte(g), uax11.LatinContext)
		if total < width {
			keep += len(g)
		}
	}
	if total <= width && !truncated {
		return s
	}
	return s[:keep] + "…"
}
