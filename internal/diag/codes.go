package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// tokenizer
	LexInfo               Code = 1000
	LexUnknownChar        Code = 1001
	LexUnterminatedString Code = 1002
	LexUnexpectedIndent   Code = 1003
	LexBadNumber          Code = 1004

	// grammar
	SynInfo               Code = 2000
	SynUnexpectedToken    Code = 2001
	SynExpectIdentifier   Code = 2002
	SynExpectColon        Code = 2003
	SynExpectExpression   Code = 2004
	SynExpectNewline      Code = 2005
	SynExpectBlock        Code = 2006
	SynUnclosedGroup      Code = 2007
	SynUnexpectedTopLevel Code = 2008

	// indentation normalizer
	IndInfo             Code = 3000
	IndUnexpectedDedent Code = 3001
	IndInternal         Code = 3002

	// io and tooling
	IOInfo           Code = 4000
	IOLoadFileError  Code = 4001
	IOFormatUnstable Code = 4002
)

var codeDescription = map[Code]string{
	UnknownCode:           "Unknown error",
	LexInfo:               "Lexical information",
	LexUnknownChar:        "Unknown character",
	LexUnterminatedString: "Unterminated string",
	LexUnexpectedIndent:   "Unexpected indentation",
	LexBadNumber:          "Bad number literal",
	SynInfo:               "Syntax information",
	SynUnexpectedToken:    "Unexpected token",
	SynExpectIdentifier:   "Expected identifier",
	SynExpectColon:        "Expected ':'",
	SynExpectExpression:   "Expected expression",
	SynExpectNewline:      "Expected end of statement",
	SynExpectBlock:        "Expected indented block",
	SynUnclosedGroup:      "Unclosed group",
	SynUnexpectedTopLevel: "Unexpected class-level statement",
	IndInfo:               "Indentation information",
	IndUnexpectedDedent:   "Unexpected dedent",
	IndInternal:           "Indentation invariant violated",
	IOInfo:                "I/O information",
	IOLoadFileError:       "I/O load file error",
	IOFormatUnstable:      "Formatter produced unstable output",
}

func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("IND%04d", ic)
	case ic >= 4000 && ic < 5000:
		return fmt.Sprintf("IO%04d", ic)
	}
	return "E0000"
}

func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
