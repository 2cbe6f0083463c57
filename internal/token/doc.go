// Package token defines the lexical token kinds of GDScript.
// Invariants:
//   - Token.Text is the exact source text of the token, except for synthetic
//     Indent/Dedent markers (empty) and filler newlines produced by the
//     indentation normalizer.
//   - Newline tokens carry the line break plus every following space, tab,
//     blank line and comment line up to the next significant character.
//   - "self" is a Name, not a keyword.
package token
