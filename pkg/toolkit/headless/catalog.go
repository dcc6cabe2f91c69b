package headless

type modelKind int

const (
	modelNone modelKind = iota
	modelValue
	modelList
)

type region int

const (
	regionNone region = iota
	regionSelf
	regionFrame
)

type kindSpec struct {
	positional int
	region     region
	model      modelKind
	initial    any
	keywords   []string
}

var commonKeywords = []string{
	"width", "height", "name", "style", "style_type_name_override",
	"identifier", "visible", "enabled", "tooltip", "checked", "selected",
}

var stackKeywords = []string{"spacing", "direction", "content_clipping"}

var fieldKeywords = []string{"read_only", "password_mode", "multiline", "precision", "format"}

var sliderKeywords = []string{"min", "max", "step", "precision", "format"}

var catalog = map[string]kindSpec{
	"Window": {positional: 1, region: regionFrame, keywords: []string{
		"title", "flags", "dockPreference", "padding_x", "padding_y", "raster_policy", "position_x", "position_y", "auto_resize",
	}},
	"Frame":            {region: regionSelf, keywords: []string{"horizontal_clipping", "vertical_clipping", "separate_window"}},
	"VStack":           {region: regionSelf, keywords: stackKeywords},
	"HStack":           {region: regionSelf, keywords: stackKeywords},
	"ZStack":           {region: regionSelf, keywords: stackKeywords},
	"ScrollingFrame":   {region: regionSelf, keywords: []string{"horizontal_scrollbar_policy", "vertical_scrollbar_policy", "scroll_x", "scroll_y"}},
	"CollapsableFrame": {region: regionSelf, positional: 1, keywords: []string{"title", "collapsed", "alignment"}},
	"Label":            {positional: 1, keywords: []string{"alignment", "word_wrap", "elided_text"}},
	"Button":           {positional: 1, keywords: []string{"clicked_fn", "image_url", "image_width", "image_height", "spacing"}},
	"ComboBox":         {model: modelList, keywords: []string{"arrow_only"}},
	"ComboItem":        {positional: 1},
	"RadioCollection":  {model: modelValue, initial: 0},
	"RadioButton":      {positional: 1, keywords: []string{"text", "radio_collection", "clicked_fn"}},
	"StringField":      {model: modelValue, initial: "", keywords: fieldKeywords},
	"IntField":         {model: modelValue, initial: 0, keywords: fieldKeywords},
	"FloatField":       {model: modelValue, initial: 0.0, keywords: fieldKeywords},
	"CheckBox":         {model: modelValue, initial: false},
	"IntSlider":        {model: modelValue, initial: 0, keywords: sliderKeywords},
	"FloatSlider":      {model: modelValue, initial: 0.0, keywords: sliderKeywords},
	"IntDrag":          {model: modelValue, initial: 0, keywords: sliderKeywords},
	"FloatDrag":        {model: modelValue, initial: 0.0, keywords: sliderKeywords},
	"ColorWidget":      {model: modelValue, initial: 0, keywords: []string{"alpha"}},
	"Spacer":           {},
	"Line":             {keywords: []string{"alignment"}},
	"Rectangle":        {},
	"Image":            {positional: 1, keywords: []string{"fill_policy", "alignment"}},
}

// Kinds lists the widget kinds of the headless catalog.
func Kinds() []string {
	out := make([]string, 0, len(catalog))
	for kind := range catalog {
		out = append(out, kind)
	}
	return out
}

func (s kindSpec) accepts(key string) bool {
	for _, candidate := range commonKeywords {
		if candidate == key {
			return true
		}
	}
	for _, candidate := range s.keywords {
		if candidate == key {
			return true
		}
	}
	return false
}
