package preview

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/goliatone/go-uidom/pkg/toolkit"
	"github.com/goliatone/go-uidom/pkg/toolkit/headless"
)

// Keyword is a constructor keyword rendered for display.
type Keyword struct {
	Key   string
	Value string
}

// Row is a single widget in a flattened, depth-first outline.
type Row struct {
	Depth     int
	Kind      string
	Text      string
	Keywords  []Keyword
	HasValue  bool
	Value     string
	Items     []string
	Callbacks []string
	Listeners []string
}

var listenerNames = []string{
	headless.ListenValueChanged,
	headless.ListenBeginEdit,
	headless.ListenEndEdit,
	headless.ListenSetValueChanged,
	headless.ListenItemChanged,
}

// Snapshot flattens roots into depth-first rows.
func Snapshot(roots []*headless.Widget) []Row {
	var rows []Row
	for _, root := range roots {
		rows = appendRows(rows, root, 0)
	}
	return rows
}

func appendRows(rows []Row, w *headless.Widget, depth int) []Row {
	if w == nil {
		return rows
	}
	row := Row{
		Depth:     depth,
		Kind:      w.Kind(),
		Text:      w.Text(),
		Callbacks: w.CallbackNames(),
	}

	keys := make([]string, 0, len(w.Kwargs))
	for key := range w.Kwargs {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		row.Keywords = append(row.Keywords, Keyword{Key: key, Value: formatValue(w.Kwargs[key])})
	}

	if model := w.ValueModel(); model != nil {
		row.HasValue = true
		row.Value = formatValue(model.Value())
		row.Items = model.Items()
		for _, name := range listenerNames {
			if model.ListenerCount(name) > 0 {
				row.Listeners = append(row.Listeners, name)
			}
		}
	}

	rows = append(rows, row)
	for _, child := range w.Children {
		rows = appendRows(rows, child, depth+1)
	}
	return rows
}

func formatValue(value any) string {
	switch typed := value.(type) {
	case nil:
		return "None"
	case string:
		return strconv.Quote(typed)
	case map[string]any:
		keys := make([]string, 0, len(typed))
		for key := range typed {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		parts := make([]string, 0, len(keys))
		for _, key := range keys {
			parts = append(parts, key+": "+formatValue(typed[key]))
		}
		return "{" + strings.Join(parts, ", ") + "}"
	case []any:
		parts := make([]string, 0, len(typed))
		for _, item := range typed {
			parts = append(parts, formatValue(item))
		}
		return "[" + strings.Join(parts, ", ") + "]"
	case toolkit.Widget:
		return "<" + typed.Kind() + ">"
	default:
		return fmt.Sprint(typed)
	}
}
