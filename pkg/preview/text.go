package preview

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/goliatone/go-uidom/pkg/toolkit/headless"
)

// Text writes an indented outline of roots, one widget per line.
func Text(w io.Writer, roots []*headless.Widget) error {
	out := bufio.NewWriter(w)
	for _, row := range Snapshot(roots) {
		if _, err := out.WriteString(formatRow(row) + "\n"); err != nil {
			return err
		}
	}
	return out.Flush()
}

func formatRow(row Row) string {
	var b strings.Builder
	b.WriteString(strings.Repeat("  ", row.Depth))
	b.WriteString(row.Kind)
	if row.Text != "" {
		b.WriteString(" " + strconv.Quote(row.Text))
	}
	for _, kw := range row.Keywords {
		b.WriteString(" " + kw.Key + "=" + kw.Value)
	}
	if row.HasValue {
		b.WriteString(" value=" + row.Value)
	}
	if len(row.Items) > 0 {
		b.WriteString(" items=[" + strings.Join(row.Items, ", ") + "]")
	}
	if len(row.Callbacks) > 0 {
		b.WriteString(" callbacks=[" + strings.Join(row.Callbacks, ", ") + "]")
	}
	if len(row.Listeners) > 0 {
		b.WriteString(" listeners=[" + strings.Join(row.Listeners, ", ") + "]")
	}
	return b.String()
}
