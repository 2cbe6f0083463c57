// Package syntax holds the concrete syntax tree produced by the parser.
//
// A tree is made of rule nodes (*Tree) whose children are either further
// rule nodes or token leaves (Leaf). Rule names follow the statement and
// expression categories that the formatter and linter dispatch on, such as
// "func_def", "class_var_stmt" or "arith_expr". Binary operator chains of the
// same precedence are kept flat with the operator tokens as leaves between
// their operands.
package syntax
