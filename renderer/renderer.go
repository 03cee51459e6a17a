// Package renderer turns derived views into markdown. The cmd layer is
// responsible for printing the markdown, usually through a terminal
// renderer, so everything here is plain text.
package renderer

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// ConditionalBlock lets you fully write a block and decide at the end to
// print it or not. If the block function returns true, the content is
// written to w, otherwise it is discarded.
func ConditionalBlock(w io.Writer, block func(io.Writer) bool) {
	bw := &bytes.Buffer{}
	if block(bw) {
		io.Copy(w, bw)
	}
}

// table accumulates markdown table rows with a fixed column count.
type table struct {
	b strings.Builder
}

func (t *table) header(cols ...string) {
	t.row(cols...)
	seps := make([]string, len(cols))
	for i := range seps {
		seps[i] = "---"
	}
	t.row(seps...)
}

func (t *table) row(cols ...string) {
	t.b.WriteString("| ")
	t.b.WriteString(strings.Join(cols, " | "))
	t.b.WriteString(" |\n")
}

func (t *table) String() string { return t.b.String() }

func title(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "# "+format+"\n\n", args...)
}

func section(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "## "+format+"\n\n", args...)
}
