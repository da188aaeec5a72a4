package highlight

// isNumber reports whether word is a numeric literal: decimal digits with
// '_' separators, an optional fraction and an optional exponent, or a
// 0b/0o/0x prefixed integer.
func isNumber(word string) bool {
	if word == "" {
		return false
	}
	if isPrefixedInteger(word) {
		return true
	}
	if word[0] < '0' || word[0] > '9' {
		return false
	}

	seenDot, seenExp := false, false
	prevDigit := true
	for i := 1; i < len(word); i++ {
		switch c := word[i]; {
		case c >= '0' && c <= '9':
			prevDigit = true
		case c == '_':
			// separators sit between digits
			if !prevDigit {
				return false
			}
			prevDigit = false
		case c == '.':
			if seenDot || seenExp || !prevDigit {
				return false
			}
			seenDot = true
			prevDigit = false
		case c == 'e' || c == 'E':
			if seenExp || !prevDigit {
				return false
			}
			seenExp = true
			prevDigit = false
		default:
			return false
		}
	}
	return prevDigit
}

// isPrefixedInteger needs a leading '0', a base letter and at least one
// digit of that base.
func isPrefixedInteger(word string) bool {
	if len(word) < 3 || word[0] != '0' {
		return false
	}
	var base int
	switch word[1] {
	case 'b', 'B':
		base = 2
	case 'o', 'O':
		base = 8
	case 'x', 'X':
		base = 16
	default:
		return false
	}
	for i := 2; i < len(word); i++ {
		if digitValue(word[i]) >= base {
			return false
		}
	}
	return true
}

func digitValue(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	default:
		return 99
	}
}
