package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF
	// Newline is a line break together with the indentation that follows it.
	Newline
	// Indent is a synthetic block-start marker.
	Indent
	// Dedent is a synthetic block-end marker.
	Dedent

	// Name represents an identifier.
	Name
	// Number represents an integer or float literal.
	Number
	// String represents a quoted string literal.
	String

	KwFunc      // func
	KwVar       // var
	KwConst     // const
	KwClass     // class
	KwClassName // class_name
	KwExtends   // extends
	KwSignal    // signal
	KwEnum      // enum
	KwExport    // export
	KwOnready   // onready
	KwTool      // tool
	KwStatic    // static
	KwIf        // if
	KwElif      // elif
	KwElse      // else
	KwWhile     // while
	KwFor       // for
	KwIn        // in
	KwReturn    // return
	KwPass      // pass
	KwBreak     // break
	KwContinue  // continue
	KwAnd       // and
	KwOr        // or
	KwNot       // not
	KwTrue      // true
	KwFalse     // false
	KwNull      // null

	Plus          // +
	Minus         // -
	Star          // *
	Slash         // /
	Percent       // %
	Assign        // =
	PlusAssign    // +=
	MinusAssign   // -=
	StarAssign    // *=
	SlashAssign   // /=
	PercentAssign // %=
	EqEq          // ==
	BangEq        // !=
	Lt            // <
	LtEq          // <=
	Gt            // >
	GtEq          // >=
	Amp           // &
	Pipe          // |
	Caret         // ^
	Tilde         // ~
	Shl           // <<
	Shr           // >>
	AndAnd        // &&
	OrOr          // ||
	Bang          // !
	Dot           // .
	Comma         // ,
	Colon         // :
	ColonAssign   // :=
	Arrow         // ->
	LParen        // (
	RParen        // )
	LBracket      // [
	RBracket      // ]
	LBrace        // {
	RBrace        // }
	Dollar        // $

	kindCount
)

var kindNames = [kindCount]string{
	Invalid: "Invalid", EOF: "EOF", Newline: "Newline", Indent: "Indent", Dedent: "Dedent",
	Name: "Name", Number: "Number", String: "String",
	KwFunc: "func", KwVar: "var", KwConst: "const", KwClass: "class", KwClassName: "class_name",
	KwExtends: "extends", KwSignal: "signal", KwEnum: "enum", KwExport: "export",
	KwOnready: "onready", KwTool: "tool", KwStatic: "static", KwIf: "if", KwElif: "elif",
	KwElse: "else", KwWhile: "while", KwFor: "for", KwIn: "in", KwReturn: "return",
	KwPass: "pass", KwBreak: "break", KwContinue: "continue", KwAnd: "and", KwOr: "or",
	KwNot: "not", KwTrue: "true", KwFalse: "false", KwNull: "null",
	Plus: "+", Minus: "-", Star: "*", Slash: "/", Percent: "%", Assign: "=",
	PlusAssign: "+=", MinusAssign: "-=", StarAssign: "*=", SlashAssign: "/=", PercentAssign: "%=",
	EqEq: "==", BangEq: "!=", Lt: "<", LtEq: "<=", Gt: ">", GtEq: ">=",
	Amp: "&", Pipe: "|", Caret: "^", Tilde: "~", Shl: "<<", Shr: ">>", AndAnd: "&&", OrOr: "||",
	Bang: "!", Dot: ".", Comma: ",", Colon: ":", ColonAssign: ":=", Arrow: "->",
	LParen: "(", RParen: ")", LBracket: "[", RBracket: "]", LBrace: "{", RBrace: "}", Dollar: "$",
}

func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return "Kind(?)"
}

// IsOpenGroup reports whether k opens a paren, bracket or brace group.
func (k Kind) IsOpenGroup() bool {
	return k == LParen || k == LBracket || k == LBrace
}

// IsCloseGroup reports whether k closes a paren, bracket or brace group.
func (k Kind) IsCloseGroup() bool {
	return k == RParen || k == RBracket || k == RBrace
}

// IsKeyword reports whether k is a reserved word.
func (k Kind) IsKeyword() bool {
	return k >= KwFunc && k <= KwNull
}
