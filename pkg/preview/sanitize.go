package preview

import (
	"strings"
	"sync"

	"github.com/microcosm-cc/bluemonday"
)

var (
	textPolicyOnce sync.Once
	textPolicy     *bluemonday.Policy
)

// sanitizeText strips markup from widget text so user-authored labels cannot
// inject elements into the preview page. The result is already escaped.
func sanitizeText(raw string) string {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return ""
	}
	return strings.TrimSpace(textSanitizer().Sanitize(trimmed))
}

func textSanitizer() *bluemonday.Policy {
	textPolicyOnce.Do(func() {
		textPolicy = bluemonday.StrictPolicy()
	})
	return textPolicy
}

func sanitizeRows(rows []Row) []Row {
	out := make([]Row, len(rows))
	for idx, row := range rows {
		row.Text = sanitizeText(row.Text)
		row.Value = sanitizeText(row.Value)
		keywords := make([]Keyword, len(row.Keywords))
		for kwIdx, kw := range row.Keywords {
			keywords[kwIdx] = Keyword{Key: kw.Key, Value: sanitizeText(kw.Value)}
		}
		row.Keywords = keywords
		items := make([]string, len(row.Items))
		for itemIdx, item := range row.Items {
			items[itemIdx] = sanitizeText(item)
		}
		row.Items = items
		out[idx] = row
	}
	return out
}
