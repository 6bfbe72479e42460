package segtree

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Dump writes a level-by-level rendering of the tree to w, one line per
// level, each node as "[from,to]=sum".
//
// When w is an interactive terminal, interior nodes and leaves are
// colorized and lines are clipped to the terminal width. Output to files
// and buffers stays plain and unclipped.
func Dump[T Value](t *Tree[T], w io.Writer) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	paintInner := func(s string) string { return s }
	paintLeaf := paintInner
	width := 0
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		if cols, _, err := term.GetSize(int(f.Fd())); err == nil {
			width = cols
		}
		blue := color.New(color.FgBlue).SprintFunc()
		green := color.New(color.FgGreen).SprintFunc()
		paintInner = func(s string) string { return blue(s) }
		paintLeaf = func(s string) string { return green(s) }
	}
	level := []int{0}
	for len(level) > 0 {
		var next []int
		var line strings.Builder
		printed := 0 // printable rune count, excluding color escapes
		for i, pos := range level {
			nd := t.nodes[pos]
			if nd.left != noChild {
				next = append(next, nd.left, nd.right)
			}
			if printed < 0 {
				continue // line already clipped, only collecting children
			}
			var cell, painted string
			if nd.left == noChild {
				cell = fmt.Sprintf("[%d]=%v", nd.from, nd.sum)
				painted = paintLeaf(cell)
			} else {
				cell = fmt.Sprintf("[%d,%d]=%v", nd.from, nd.to, nd.sum)
				painted = paintInner(cell)
			}
			sep := ""
			if i > 0 {
				sep = "  "
			}
			if width > 0 && printed+len(sep)+len(cell) > width-1 {
				line.WriteString(" …")
				printed = -1
				continue
			}
			line.WriteString(sep)
			line.WriteString(painted)
			printed += len(sep) + len(cell)
		}
		fmt.Fprintln(w, line.String())
		level = next
	}
}
