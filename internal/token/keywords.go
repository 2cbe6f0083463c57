package token

var keywords = map[string]Kind{
	"func":       KwFunc,
	"var":        KwVar,
	"const":      KwConst,
	"class":      KwClass,
	"class_name": KwClassName,
	"extends":    KwExtends,
	"signal":     KwSignal,
	"enum":       KwEnum,
	"export":     KwExport,
	"onready":    KwOnready,
	"tool":       KwTool,
	"static":     KwStatic,
	"if":         KwIf,
	"elif":       KwElif,
	"else":       KwElse,
	"while":      KwWhile,
	"for":        KwFor,
	"in":         KwIn,
	"return":     KwReturn,
	"pass":       KwPass,
	"break":      KwBreak,
	"continue":   KwContinue,
	"and":        KwAnd,
	"or":         KwOr,
	"not":        KwNot,
	"true":       KwTrue,
	"false":      KwFalse,
	"null":       KwNull,
}

// LookupKeyword reports the keyword kind for ident. Keywords are case sensitive.
func LookupKeyword(ident string) (Kind, bool) {
	k, ok := keywords[ident]
	return k, ok
}
