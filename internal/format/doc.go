// Package format re-renders a parsed GDScript file in canonical layout.
//
// Statements are formatted one by one into lines tagged with the source line
// they came from. Blank lines between statements are preserved up to a limit
// that depends on the block kind, comments are carried over from the
// lexer's side list, and expressions that do not fit the line length are
// exploded one element per line.
package format
