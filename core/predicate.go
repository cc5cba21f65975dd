package core

// DiffersByExactlyOneLetter reports whether a and b have the same length and
// differ at exactly one position. Comparison is rune by rune and case-sensitive.
//
// Words of different lengths, identical words, and words differing at two or
// more positions all yield false. The relation is symmetric.
//
// Complexity: O(L) time where L is the word length; no allocations for ASCII input.
func DiffersByExactlyOneLetter(a, b string) bool {
	if len(a) == len(b) && isASCII(a) && isASCII(b) {
		diff := 0
		for i := 0; i < len(a); i++ {
			if a[i] != b[i] {
				diff++
				if diff > 1 {
					return false
				}
			}
		}
		return diff == 1
	}

	ra, rb := []rune(a), []rune(b)
	if len(ra) != len(rb) {
		return false
	}
	diff := 0
	for i := range ra {
		if ra[i] != rb[i] {
			diff++
			if diff > 1 {
				return false
			}
		}
	}

	return diff == 1
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= 0x80 {
			return false
		}
	}
	return true
}
