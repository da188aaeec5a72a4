package annotated

import "iter"

// Part is a styled run: a contiguous slice of the text with at most one
// active annotation kind.
type Part struct {
	Text string
	// Kind is meaningful only when Annotated is true.
	Kind      Kind
	Annotated bool
}

// Iterator walks a snapshot of a String and yields Parts that cover the
// text exactly once, left to right. It is not restartable.
type Iterator struct {
	text string
	anns []Annotation
	cur  int
}

// Iter returns an Iterator over the current text and annotations. Later
// mutations of s do not affect it.
func (s *String) Iter() *Iterator {
	return &Iterator{text: s.text, anns: s.anns.Clone()}
}

// All returns the styled runs of s as a sequence.
func (s *String) All() iter.Seq[Part] {
	return func(yield func(Part) bool) {
		it := s.Iter()
		for {
			p, ok := it.Next()
			if !ok || !yield(p) {
				return
			}
		}
	}
}

// Parts collects every styled run of s.
func (s *String) Parts() []Part {
	var out []Part
	for p := range s.All() {
		out = append(out, p)
	}
	return out
}

// Next returns the next run, or false once the text is exhausted.
//
// When several annotations cover the cursor, the last added one wins and
// the run extends to its end. Otherwise the run is unannotated and extends
// to the nearest following annotation start.
func (it *Iterator) Next() (Part, bool) {
	n := len(it.text)
	if it.cur >= n {
		return Part{}, false
	}
	start := it.cur

	for i := len(it.anns) - 1; i >= 0; i-- {
		a := it.anns[i]
		if a.Start <= start && start < a.End {
			end := min(a.End, n)
			it.cur = end
			return Part{Text: it.text[start:end], Kind: a.Kind, Annotated: true}, true
		}
	}

	end := n
	for _, a := range it.anns {
		if a.Start > start && a.Start < end {
			end = a.Start
		}
	}
	it.cur = end
	return Part{Text: it.text[start:end]}, true
}
