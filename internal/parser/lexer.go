package parser

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// Lexer splits command-line input into tokens. Input is lower-cased before
// lexing, so keyword rules only need the lower-case spelling.
var Lexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Keyword", Pattern: `\b(?:roll|all|clear|history|count|size|speed|reset|settings|quit|exit)\b`},
	{Name: "DieSize", Pattern: `d\d+`},
	{Name: "Float", Pattern: `\d*\.\d+`},
	{Name: "Int", Pattern: `\d+`},
	{Name: "Ident", Pattern: `[a-z_]\w*`},
	{Name: "Whitespace", Pattern: `[ \t]+`},
})

// Build creates the parser from the struct tags in ast.go.
func Build() *participle.Parser[Command] {
	return participle.MustBuild[Command](
		participle.Lexer(Lexer),
		participle.Elide("Whitespace"),
	)
}
