// Package indent turns the flat GDScript token stream into a block
// structured one by inserting Indent and Dedent markers (the offside rule).
//
// Inside (), [] and {} indentation is insignificant, except for lambda
// bodies: a newline right after a `func [name]():` header opens a block even
// inside a group. Such a block is closed by a dedenting newline, by a comma
// at the same group depth, or by the close token of the enclosing group.
//
// Every Dedent produced at the top level is followed by a copy of the
// newline that triggered it, so the grammar can treat Newline as the only
// statement terminator. Dedents closing a lambda from a comma or a close
// token are preceded by a filler newline instead.
//
// A Normalizer is single-use and owns all of its state; processing several
// files concurrently needs one Normalizer per file and nothing else.
package indent
