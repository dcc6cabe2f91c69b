package markup_test

import (
	"encoding/json"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-uidom/pkg/markup"
)

func TestLoadFile_XMLMatchesJSON(t *testing.T) {
	fromXML, err := markup.LoadFile(filepath.Join("testdata", "window.xml"))
	if err != nil {
		t.Fatalf("load xml: %v", err)
	}
	fromJSON, err := markup.LoadFile(filepath.Join("testdata", "window.json"))
	if err != nil {
		t.Fatalf("load json: %v", err)
	}

	if diff := cmp.Diff(canonical(t, fromJSON), canonical(t, fromXML)); diff != "" {
		t.Fatalf("xml and json trees differ (-json +xml):\n%s", diff)
	}
}

func TestParseXML_NameHoistingAndCoercion(t *testing.T) {
	root, err := markup.LoadFile(filepath.Join("testdata", "window.xml"))
	if err != nil {
		t.Fatalf("load xml: %v", err)
	}

	if root.Type != "Window" || root.Name != "self.window" {
		t.Fatalf("unexpected root: type=%q name=%q", root.Type, root.Name)
	}
	if _, ok := root.Attr("{http://schemas.ui/name}Name"); ok {
		t.Fatalf("name attribute should be hoisted out of attributes")
	}
	wantKeys := []string{"title", "width", "height"}
	if diff := cmp.Diff(wantKeys, root.Attributes.Keys()); diff != "" {
		t.Fatalf("attribute order mismatch (-want +got):\n%s", diff)
	}
	if width, _ := root.Attr("width"); width != 300 {
		t.Fatalf("width should coerce to int, got %#v", width)
	}
	if height, _ := root.Attr("height"); height != 200.5 {
		t.Fatalf("height should coerce to float, got %#v", height)
	}

	if len(root.Children) != 1 {
		t.Fatalf("comments must not appear as children, got %d children", len(root.Children))
	}
	stack := root.Children[0]
	if len(stack.Children) != 3 {
		t.Fatalf("expected 3 stack children, got %d", len(stack.Children))
	}
	label := stack.Children[0]
	if wrap, _ := label.Attr("word_wrap"); wrap != true {
		t.Fatalf("word_wrap should coerce to bool, got %#v", wrap)
	}
}

func TestParseXML_OmitsEmptyAttributesAndChildren(t *testing.T) {
	root, err := markup.ParseXML(strings.NewReader(`<VStack><Spacer/></VStack>`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if root.HasAttributes() {
		t.Fatalf("element without attributes must omit the attribute set")
	}
	spacer := root.Children[0]
	if spacer.Children != nil {
		t.Fatalf("element without children must omit children, got %#v", spacer.Children)
	}

	raw, err := json.Marshal(root)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if got, want := string(raw), `{"type":"VStack","children":[{"type":"Spacer"}]}`; got != want {
		t.Fatalf("canonical json mismatch:\n got %s\nwant %s", got, want)
	}
}

func TestParseXML_CustomNameAttribute(t *testing.T) {
	doc := `<Label xmlns:ui="urn:designer" ui:id="title" text="Hi"/>`
	root, err := markup.ParseXML(strings.NewReader(doc), markup.WithNameAttribute("urn:designer", "id"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if root.Name != "title" {
		t.Fatalf("expected hoisted name, got %q", root.Name)
	}
	if diff := cmp.Diff([]string{"text"}, root.Attributes.Keys()); diff != "" {
		t.Fatalf("attribute keys mismatch (-want +got):\n%s", diff)
	}
}

func TestParseJSON_KeepsTypes(t *testing.T) {
	root, err := markup.ParseJSON([]byte(`{"type":"IntField","attributes":{"model.value":"42","step":1.0,"min":0,"enabled":true}}`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	want := []markup.Attribute{
		{Key: "model.value", Value: "42"},
		{Key: "step", Value: 1.0},
		{Key: "min", Value: 0},
		{Key: "enabled", Value: true},
	}
	if diff := cmp.Diff(want, root.Attributes.Pairs()); diff != "" {
		t.Fatalf("attributes mismatch (-want +got):\n%s", diff)
	}
}

func TestParseJSON_LargeIntegersBecomeFloats(t *testing.T) {
	root, err := markup.ParseJSON([]byte(`{"type":"IntField","attributes":{"max":9223372036854775807,"huge":99999999999999999999,"range":[1,99999999999999999999]}}`))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}

	want := []markup.Attribute{
		{Key: "max", Value: 9223372036854775807},
		{Key: "huge", Value: 1e20},
		{Key: "range", Value: []any{1, 1e20}},
	}
	if diff := cmp.Diff(want, root.Attributes.Pairs()); diff != "" {
		t.Fatalf("attributes mismatch (-want +got):\n%s", diff)
	}
}

func TestParseJSON_MalformedAttributesKept(t *testing.T) {
	root, err := markup.LoadFile(filepath.Join("testdata", "malformed_attributes.json"))
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if root.HasAttributes() {
		t.Fatalf("non-object attributes must not populate Attributes")
	}
	if diff := cmp.Diff([]any{"not", "a", "map"}, root.RawAttributes); diff != "" {
		t.Fatalf("raw attributes mismatch (-want +got):\n%s", diff)
	}
	if len(root.Children) != 1 {
		t.Fatalf("children should still decode, got %d", len(root.Children))
	}
}

func TestLoadFile_UnsupportedFormat(t *testing.T) {
	_, err := markup.LoadFile(filepath.Join("testdata", "layout.yaml"))
	if !errors.Is(err, markup.ErrUnsupportedFormat) {
		t.Fatalf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestLoadFile_MalformedXML(t *testing.T) {
	_, err := markup.LoadFile(filepath.Join("testdata", "broken.xml"))
	if err == nil {
		t.Fatalf("expected parse error")
	}
	if errors.Is(err, markup.ErrUnsupportedFormat) {
		t.Fatalf("parse errors must not be reported as unsupported format: %v", err)
	}
}

func TestParseXML_TrailingContent(t *testing.T) {
	rejected := map[string]string{
		"second root": `<VStack/><Label/>`,
		"garbage":     `<VStack/><<<garbage`,
		"text":        `<VStack></VStack> trailing`,
	}
	for name, doc := range rejected {
		if _, err := markup.ParseXML(strings.NewReader(doc)); err == nil {
			t.Fatalf("%s: expected error for %q", name, doc)
		}
	}

	root, err := markup.ParseXML(strings.NewReader("<VStack/>\n<!-- done -->\n<?pi ok?>\n"))
	if err != nil {
		t.Fatalf("comments and whitespace after the root are allowed: %v", err)
	}
	if root.Type != "VStack" {
		t.Fatalf("unexpected root %q", root.Type)
	}
}

func canonical(t *testing.T, node *markup.Node) any {
	t.Helper()
	raw, err := json.Marshal(node)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	var out any
	if err := json.Unmarshal(raw, &out); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	return out
}
