package preview

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/goliatone/go-uidom/pkg/markup"
)

// JSON writes the canonical node tree as indented JSON.
func JSON(w io.Writer, root *markup.Node) error {
	payload, err := json.MarshalIndent(root, "", "  ")
	if err != nil {
		return fmt.Errorf("preview: encode json: %w", err)
	}
	payload = append(payload, '\n')
	_, err = w.Write(payload)
	return err
}
