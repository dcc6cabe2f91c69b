package dom

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-uidom/pkg/markup"
)

// Config holds the kind tables and reserved keys used by the builder. Kind
// matching is always exact.
type Config struct {
	WindowKind      string   `yaml:"window_kind" json:"window_kind"`
	ComboKind       string   `yaml:"combo_kind" json:"combo_kind"`
	ComboItemKind   string   `yaml:"combo_item_kind" json:"combo_item_kind"`
	RadioGroupKind  string   `yaml:"radio_group_kind" json:"radio_group_kind"`
	RadioOptionKind string   `yaml:"radio_option_kind" json:"radio_option_kind"`
	RadioGroupKey   string   `yaml:"radio_group_key" json:"radio_group_key"`
	ContainerKinds  []string `yaml:"container_kinds" json:"container_kinds"`
	TextKinds       []string `yaml:"text_kinds" json:"text_kinds"`

	CallbackSuffix   string `yaml:"callback_suffix" json:"callback_suffix"`
	ModelValueKey    string `yaml:"model_value_key" json:"model_value_key"`
	ControllerPrefix string `yaml:"controller_prefix" json:"controller_prefix"`
	StyleKey         string `yaml:"style_key" json:"style_key"`
	TextKey          string `yaml:"text_key" json:"text_key"`
	TitleKey         string `yaml:"title_key" json:"title_key"`

	NameNamespace string `yaml:"name_namespace" json:"name_namespace"`
	NameLocal     string `yaml:"name_local" json:"name_local"`
}

// DefaultConfig returns the tables matching the headless widget catalog.
func DefaultConfig() Config {
	return Config{
		WindowKind:       "Window",
		ComboKind:        "ComboBox",
		ComboItemKind:    "ComboItem",
		RadioGroupKind:   "RadioCollection",
		RadioOptionKind:  "RadioButton",
		RadioGroupKey:    "radio_collection",
		ContainerKinds:   []string{"VStack", "HStack", "ZStack", "ScrollingFrame", "CollapsableFrame"},
		TextKinds:        []string{"Label", "Button", "ComboItem"},
		CallbackSuffix:   "_fn",
		ModelValueKey:    "model.value",
		ControllerPrefix: "self.",
		StyleKey:         "style",
		TextKey:          "text",
		TitleKey:         "title",
		NameNamespace:    markup.DefaultNameNamespace,
		NameLocal:        markup.DefaultNameLocal,
	}
}

// LoadConfig reads a YAML or JSON configuration file overlaying the defaults.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("dom: read config %s: %w", path, err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, fmt.Errorf("dom: config %s: %w", path, err)
	}
	return cfg, nil
}

// ParseConfig decodes YAML (or JSON, a YAML subset) over DefaultConfig. Lists
// present in the document replace the default lists.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if len(strings.TrimSpace(string(data))) == 0 {
		return cfg, nil
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("decode: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate reports missing reserved keys and kinds. Errors match
// ErrInvalidConfig.
func (c Config) Validate() error {
	required := []struct {
		key   string
		value string
	}{
		{"window_kind", c.WindowKind},
		{"combo_kind", c.ComboKind},
		{"combo_item_kind", c.ComboItemKind},
		{"radio_group_kind", c.RadioGroupKind},
		{"radio_option_kind", c.RadioOptionKind},
		{"radio_group_key", c.RadioGroupKey},
		{"callback_suffix", c.CallbackSuffix},
		{"model_value_key", c.ModelValueKey},
		{"style_key", c.StyleKey},
		{"text_key", c.TextKey},
		{"title_key", c.TitleKey},
		{"name_local", c.NameLocal},
	}
	for _, entry := range required {
		if strings.TrimSpace(entry.value) == "" {
			return fmt.Errorf("%w: %s is required", ErrInvalidConfig, entry.key)
		}
	}

	special := []string{c.WindowKind, c.ComboKind, c.RadioGroupKind}
	for _, kind := range c.ContainerKinds {
		for _, reserved := range special {
			if kind == reserved {
				return fmt.Errorf("%w: container_kinds must not include %q", ErrInvalidConfig, kind)
			}
		}
	}
	return nil
}

func (c Config) markupOptions() []markup.Option {
	return []markup.Option{markup.WithNameAttribute(c.NameNamespace, c.NameLocal)}
}

type kindSet map[string]struct{}

func newKindSet(kinds []string) kindSet {
	set := make(kindSet, len(kinds))
	for _, kind := range kinds {
		set[kind] = struct{}{}
	}
	return set
}

func (s kindSet) has(kind string) bool {
	_, ok := s[kind]
	return ok
}
