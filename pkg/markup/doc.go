// Package markup normalises declarative UI descriptions (XML or JSON) into a
// single canonical node tree. Each node carries a widget kind, an optional
// declared name, an ordered attribute set, and ordered children. XML attribute
// strings are coerced into typed scalars; JSON values keep the types the
// decoder produced.
package markup
