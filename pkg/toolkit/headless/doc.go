// Package headless implements the toolkit contract without a display. Widgets
// record their constructor arguments, parent/child structure, models and
// registered listeners so markup builds can be inspected and previewed. The
// catalog covers the usual immediate-mode kinds: Window, VStack, Label,
// ComboBox, RadioCollection and friends.
package headless
