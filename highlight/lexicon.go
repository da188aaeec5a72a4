package highlight

// Lexicon is the rule set of a SyntaxHighlighter.
type Lexicon struct {
	Keywords    []string
	Types       []string
	KnownValues []string

	LineComment  string
	BlockOpen    string
	BlockClose   string
	NestedBlocks bool

	// StringQuotes lists the bytes that open a string literal. String
	// contents are skipped, not annotated.
	StringQuotes string
	// Lifetimes enables 'name annotations when a quote does not start a
	// char literal.
	Lifetimes bool
}

var RustLexicon = Lexicon{
	Keywords: []string{
		"as", "async", "await", "break", "const", "continue", "crate", "dyn",
		"else", "enum", "extern", "fn", "for", "if", "impl", "in", "let",
		"loop", "match", "mod", "move", "mut", "pub", "ref", "return", "self",
		"Self", "static", "struct", "super", "trait", "type", "union",
		"unsafe", "use", "where", "while",
	},
	Types: []string{
		"i8", "i16", "i32", "i64", "i128", "isize",
		"u8", "u16", "u32", "u64", "u128", "usize",
		"f32", "f64", "bool", "char", "str",
		"String", "Vec", "Option", "Result", "Box", "HashMap", "HashSet",
	},
	KnownValues:  []string{"true", "false", "None", "Some", "Ok", "Err"},
	LineComment:  "//",
	BlockOpen:    "/*",
	BlockClose:   "*/",
	NestedBlocks: true,
	StringQuotes: `"`,
	Lifetimes:    true,
}

var GoLexicon = Lexicon{
	Keywords: []string{
		"break", "case", "chan", "const", "continue", "default", "defer",
		"else", "fallthrough", "for", "func", "go", "goto", "if", "import",
		"interface", "map", "package", "range", "return", "select", "struct",
		"switch", "type", "var",
	},
	Types: []string{
		"any", "bool", "byte", "comparable", "complex64", "complex128",
		"error", "float32", "float64", "int", "int8", "int16", "int32",
		"int64", "rune", "string", "uint", "uint8", "uint16", "uint32",
		"uint64", "uintptr",
	},
	KnownValues:  []string{"true", "false", "nil", "iota"},
	LineComment:  "//",
	BlockOpen:    "/*",
	BlockClose:   "*/",
	StringQuotes: "\"`",
}
