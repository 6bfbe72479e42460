package segtree

import (
	"bytes"
	"strings"
	"testing"
)

func TestTree2Dot(t *testing.T) {
	tree := mustTree(t, []int{1, 2, 3, 4})
	var buf bytes.Buffer
	Tree2Dot(tree, &buf)
	out := buf.String()
	if !strings.HasPrefix(out, "strict digraph {") {
		t.Errorf("DOT output missing digraph header:\n%s", out)
	}
	// 7 nodes for 4 leaves, hence 6 edges
	if got := strings.Count(out, "->"); got != 6 {
		t.Errorf("DOT output has %d edges, want 6:\n%s", got, out)
	}
	if !strings.Contains(out, "10") {
		t.Errorf("DOT output missing root sum 10:\n%s", out)
	}
}

func TestDumpPlain(t *testing.T) {
	tree := mustTree(t, []int{1, 2, 3, 4})
	var buf bytes.Buffer
	Dump(tree, &buf)
	out := strings.TrimRight(buf.String(), "\n")
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("Dump produced %d levels, want 3:\n%s", len(lines), out)
	}
	if lines[0] != "[0,3]=10" {
		t.Errorf("root line = %q, want \"[0,3]=10\"", lines[0])
	}
	if !strings.Contains(lines[2], "[0]=1") || !strings.Contains(lines[2], "[3]=4") {
		t.Errorf("leaf line incomplete: %q", lines[2])
	}
	if strings.Contains(out, "\x1b") {
		t.Errorf("buffer output must stay uncolored")
	}
}
