package annotated

import "fmt"

// Annotation tags the byte range [Start, End) with a Kind.
type Annotation struct {
	Kind  Kind
	Start int
	End   int
}

// Shift moves both bounds right by offset.
func (a *Annotation) Shift(offset int) {
	a.Start = saturatingAdd(a.Start, offset)
	a.End = saturatingAdd(a.End, offset)
}

func (a Annotation) String() string {
	return fmt.Sprintf("%s[%d,%d)", a.Kind, a.Start, a.End)
}

// Set is an unordered collection of annotations over one string. Insertion
// order is preserved because iteration uses it to break ties.
type Set []Annotation

// Add appends an annotation. Overlaps are not validated here.
func (s *Set) Add(a Annotation) {
	*s = append(*s, a)
}

// Clone returns an independent copy of s.
func (s Set) Clone() Set {
	if s == nil {
		return nil
	}
	return append(Set(nil), s...)
}

// Reindex remaps every bound after the byte range [start, end) was replaced
// by inserted bytes. Start and end bounds are remapped independently with
// the same rules:
//
//   - a bound at or after end rides along with the edit;
//   - a bound strictly inside (start, end) moves by the delta but stays
//     within [start, end];
//   - a bound at or before start is unchanged.
//
// Equal-length replacements leave every bound untouched.
func (s Set) Reindex(start, end, inserted int) {
	replaced := end - start
	if inserted == replaced {
		return
	}
	shortened := inserted < replaced
	delta := absDiff(inserted, replaced)

	remap := func(bound int) int {
		switch {
		case bound >= end:
			if shortened {
				return saturatingSub(bound, delta)
			}
			return saturatingAdd(bound, delta)
		case bound > start:
			if shortened {
				return max(start, saturatingSub(bound, delta))
			}
			return min(end, saturatingAdd(bound, delta))
		default:
			return bound
		}
	}

	for i := range s {
		s[i].Start = remap(s[i].Start)
		s[i].End = remap(s[i].End)
	}
}

// Prune drops annotations that are empty, inverted, or start at or past
// textLen, and clamps the remaining ends to textLen.
func (s *Set) Prune(textLen int) {
	out := (*s)[:0]
	for _, a := range *s {
		if a.Start >= a.End || a.Start >= textLen {
			continue
		}
		a.End = min(a.End, textLen)
		out = append(out, a)
	}
	*s = out
}

func absDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}

const maxInt = int(^uint(0) >> 1)

func saturatingAdd(a, b int) int {
	if b > 0 && a > maxInt-b {
		return maxInt
	}
	return a + b
}

func saturatingSub(a, b int) int {
	if a < b {
		return 0
	}
	return a - b
}
