package preview_test

import (
	"io"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-uidom/pkg/dom"
	"github.com/goliatone/go-uidom/pkg/markup"
	"github.com/goliatone/go-uidom/pkg/preview"
	"github.com/goliatone/go-uidom/pkg/testsupport"
	"github.com/goliatone/go-uidom/pkg/toolkit/headless"
)

func buildPanel(t *testing.T) (*markup.Node, []*headless.Widget) {
	t.Helper()

	node := testsupport.MustLoadNode(t, filepath.Join("testdata", "panel.xml"))
	tk := headless.New()
	ctrl := dom.New(
		dom.WithFactory(tk),
		dom.WithReporter(nil),
		dom.WithHandler("on_go", func(...any) {}),
		dom.WithHandler("on_name", func(...any) {}),
	)
	if _, err := ctrl.LoadNode(node); err != nil {
		t.Fatalf("build panel: %v", err)
	}
	return node, tk.Roots()
}

func TestText_Golden(t *testing.T) {
	_, roots := buildPanel(t)

	got := testsupport.CaptureOutput(t, func(w io.Writer) error {
		return preview.Text(w, roots)
	})

	golden := filepath.Join("testdata", "panel.golden")
	if testsupport.WriteMaybeGolden(t, golden, []byte(got)) {
		return
	}
	want := testsupport.MustReadGoldenString(t, golden)
	if diff := testsupport.CompareGolden(want, got); diff != "" {
		t.Fatalf("outline mismatch (-want +got):\n%s", diff)
	}
}

func TestSnapshot_Depths(t *testing.T) {
	_, roots := buildPanel(t)

	rows := preview.Snapshot(roots)
	if len(rows) != 6 {
		t.Fatalf("expected 6 rows, got %d", len(rows))
	}
	depths := make([]int, 0, len(rows))
	for _, row := range rows {
		depths = append(depths, row.Depth)
	}
	if diff := testsupport.CompareGolden([]int{0, 1, 2, 2, 2, 2}, depths); diff != "" {
		t.Fatalf("depth mismatch (-want +got):\n%s", diff)
	}
	if rows[4].Kind != "ComboBox" || !rows[4].HasValue {
		t.Fatalf("combo row should carry its model: %#v", rows[4])
	}
}

func TestHTML_SanitizesText(t *testing.T) {
	_, roots := buildPanel(t)

	got := testsupport.CaptureOutput(t, func(w io.Writer) error {
		return preview.HTML(w, roots, preview.WithTitle("Panel preview"), preview.WithSource("panel.xml"))
	})

	for _, want := range []string{
		"<title>Panel preview</title>",
		`<p class="uidom-meta">panel.xml</p>`,
		`data-count="6"`,
		`class="uidom-node uidom-window" data-depth="0"`,
		`<span class="uidom-text">Hello world</span>`,
		"items=[Dark, Light]",
		"callbacks=[clicked_fn]",
		"listeners=[add_value_changed_fn]",
	} {
		if !strings.Contains(got, want) {
			t.Fatalf("html output missing %q:\n%s", want, got)
		}
	}
	if strings.Contains(got, "<b>") {
		t.Fatalf("html output must not carry label markup:\n%s", got)
	}
}

func TestHTML_Empty(t *testing.T) {
	got := testsupport.CaptureOutput(t, func(w io.Writer) error {
		return preview.NewHTMLRenderer().Render(w, nil)
	})
	if !strings.Contains(got, "<title>UI preview</title>") || !strings.Contains(got, "No widgets were built.") {
		t.Fatalf("unexpected empty page:\n%s", got)
	}
}

func TestJSON_MatchesCanonicalTree(t *testing.T) {
	node, _ := buildPanel(t)

	got := testsupport.CaptureOutput(t, func(w io.Writer) error {
		return preview.JSON(w, node)
	})

	decoded, err := markup.ParseJSON([]byte(got))
	if err != nil {
		t.Fatalf("decode json preview: %v", err)
	}
	if diff := testsupport.CompareGolden(node, decoded); diff != "" {
		t.Fatalf("json preview should round-trip the node (-want +got):\n%s", diff)
	}
}
