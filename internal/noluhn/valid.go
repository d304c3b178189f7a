package noluhn

import "strings"

// Valid reports whether s has the exact shape Encode produces: a whole number
// of blocks, only characters of AlphabetA or AlphabetB and no digit leading an
// even block. It does not check filler placement.
func Valid(s string) bool {
	if len(s)%CharsInBlock != 0 {
		return false
	}

	for i := 0; i < len(s); i++ {
		c := s[i]
		if strings.IndexByte(AlphabetA, c) < 0 && strings.IndexByte(AlphabetB, c) < 0 {
			return false
		}

		block := i / CharsInBlock
		if i%CharsInBlock == 0 && block%2 == 1 && isDigit(c) {
			return false
		}
	}

	return true
}

// MaxDigitRun returns the length of the longest run of consecutive ASCII digits in s.
func MaxDigitRun(s string) int {
	var longest, run int

	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			run = 0
			continue
		}

		run++
		if run > longest {
			longest = run
		}
	}

	return longest
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
