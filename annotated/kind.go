package annotated

// Kind classifies an annotation. The set is closed; renderers map each kind
// to their own foreground/background attributes.
type Kind uint8

const (
	// Match marks an occurrence of the active search query.
	Match Kind = iota
	// SelectedMatch marks the occurrence the search cursor is on.
	SelectedMatch
	Number
	Keyword
	Type
	KnownValue
	Char
	LifetimeSpecifier
	Comment
)

var kindNames = [...]string{
	Match:             "match",
	SelectedMatch:     "selected_match",
	Number:            "number",
	Keyword:           "keyword",
	Type:              "type",
	KnownValue:        "known_value",
	Char:              "char",
	LifetimeSpecifier: "lifetime_specifier",
	Comment:           "comment",
}

// Kinds returns every Kind in declaration order.
func Kinds() []Kind {
	out := make([]Kind, len(kindNames))
	for i := range kindNames {
		out[i] = Kind(i)
	}
	return out
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "unknown"
}

// ParseKind returns the Kind named by its snake_case String form.
func ParseKind(name string) (Kind, bool) {
	for i, n := range kindNames {
		if n == name {
			return Kind(i), true
		}
	}
	return 0, false
}
