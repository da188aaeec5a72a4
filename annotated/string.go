package annotated

import "fmt"

// String is a mutable string plus the annotations over it. Every public
// operation leaves all annotation ends within the string length.
type String struct {
	text string
	anns Set
}

// New returns an unannotated String holding text.
func New(text string) *String {
	return &String{text: text}
}

// AddAnnotation tags [start, end) with kind. The caller guarantees
// start <= end; an inverted range panics in annotextdebug builds and is
// dropped otherwise. Empty ranges are never active and are dropped.
func (s *String) AddAnnotation(kind Kind, start, end int) {
	if start > end || start < 0 {
		if debugChecks {
			panic(fmt.Sprintf("annotated: invalid annotation %s[%d,%d)", kind, start, end))
		}
		return
	}
	end = min(end, len(s.text))
	if start >= end {
		return
	}
	s.anns.Add(Annotation{Kind: kind, Start: start, End: end})
}

// AddAnnotations adds each annotation in order, as AddAnnotation does.
func (s *String) AddAnnotations(anns ...Annotation) {
	for _, a := range anns {
		s.AddAnnotation(a.Kind, a.Start, a.End)
	}
}

// Replace substitutes the bytes [start, end) with text and re-indexes the
// annotations. end is clamped to the string length; if start is then past
// end the call does nothing.
func (s *String) Replace(start, end int, text string) {
	end = min(end, len(s.text))
	if start < 0 || start > end {
		return
	}

	s.text = s.text[:start] + text + s.text[end:]
	s.anns.Reindex(start, end, len(text))
	s.anns.Prune(len(s.text))
}

// TruncateLeftUntil removes the bytes before until.
func (s *String) TruncateLeftUntil(until int) {
	s.Replace(0, until, "")
}

// TruncateRightFrom removes the bytes from from to the end.
func (s *String) TruncateRightFrom(from int) {
	s.Replace(from, len(s.text), "")
}

// Len returns the byte length of the text.
func (s *String) Len() int { return len(s.text) }

// Annotations returns a copy of the annotations in insertion order.
func (s *String) Annotations() []Annotation {
	return s.anns.Clone()
}

func (s *String) String() string { return s.text }
