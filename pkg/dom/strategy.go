package dom

// Strategy selects how a node is constructed.
type Strategy int

const (
	// StrategyDefault constructs generic widgets and containers.
	StrategyDefault Strategy = iota
	// StrategyWindow constructs windows and builds children inside the frame.
	StrategyWindow
	// StrategyCombo constructs combo boxes and appends item children to the
	// combo's list model.
	StrategyCombo
	// StrategyRadioGroup constructs radio collections and links option
	// children back to the collection.
	StrategyRadioGroup
)

// Strategies lists every strategy in dispatch order.
var Strategies = []Strategy{StrategyDefault, StrategyWindow, StrategyCombo, StrategyRadioGroup}

func (s Strategy) String() string {
	switch s {
	case StrategyWindow:
		return "window"
	case StrategyCombo:
		return "combo"
	case StrategyRadioGroup:
		return "radio-group"
	default:
		return "default"
	}
}

// StrategyFor returns the strategy for an exact kind match.
func (c Config) StrategyFor(kind string) Strategy {
	switch kind {
	case c.WindowKind:
		return StrategyWindow
	case c.ComboKind:
		return StrategyCombo
	case c.RadioGroupKind:
		return StrategyRadioGroup
	default:
		return StrategyDefault
	}
}

// PositionalKey returns the keyword promoted to the sole positional argument
// for kind, if any.
func (c Config) PositionalKey(kind string) (string, bool) {
	if kind == c.WindowKind {
		return c.TitleKey, true
	}
	for _, candidate := range c.TextKinds {
		if candidate == kind {
			return c.TextKey, true
		}
	}
	return "", false
}
