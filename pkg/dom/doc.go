// Package dom builds live toolkit widget trees from canonical markup nodes.
//
// A Controller owns the build: it normalises a markup file, walks the node
// tree depth first, resolves a constructor per widget kind, derives positional
// and keyword arguments, applies one of four construction strategies (window,
// combo, radio group, default/container), binds "_fn" callbacks to handlers,
// and records named widgets in an Elements registry. Per-node failures are
// reported through a Reporter and leave the rest of the tree intact; only
// unsupported formats, parse errors and unresolvable handler names fail a
// load.
package dom
