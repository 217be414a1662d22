package arch

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// ArchLexer defines the lexical structure of the textual architecture
// description format.
var ArchLexer = lexer.MustSimple([]lexer.SimpleRule{
	// Comments - C++ style (// to end of line)
	{Name: "Comment", Pattern: `//[^\n]*`},

	// Whitespace
	{Name: "Whitespace", Pattern: `[\s\t\n\r]+`},

	// Keywords
	{Name: "KwBlock", Pattern: `\bblock\b`},
	{Name: "KwPrimitive", Pattern: `\bprimitive\b`},
	{Name: "KwTile", Pattern: `\btile\b`},
	{Name: "KwSubTile", Pattern: `\bsub_tile\b`},
	{Name: "KwCapacity", Pattern: `\bcapacity\b`},
	{Name: "KwSite", Pattern: `\bsite\b`},
	{Name: "KwInput", Pattern: `\binput\b`},
	{Name: "KwOutput", Pattern: `\boutput\b`},
	{Name: "KwClock", Pattern: `\bclock\b`},
	{Name: "KwEquivalent", Pattern: `\bequivalent\b`},

	// Punctuation
	{Name: "LBrace", Pattern: `\{`},
	{Name: "RBrace", Pattern: `\}`},
	{Name: "LBracket", Pattern: `\[`},
	{Name: "RBracket", Pattern: `\]`},
	{Name: "Colon", Pattern: `:`},

	// Literals
	{Name: "Integer", Pattern: `[0-9]+`},

	// Identifiers (must come after keywords)
	{Name: "Ident", Pattern: `[a-zA-Z][a-zA-Z0-9_]*`},
})
