package session

// SanitizeDigit reduces raw cell input to a grid value: every non-digit
// character is discarded, at most the first remaining digit is kept, and an
// empty result means an empty cell. A stray '0' also maps to empty, so a
// zero can never enter the grid through this path.
func SanitizeDigit(raw string) uint8 {
	for _, r := range raw {
		if r >= '1' && r <= '9' {
			return uint8(r - '0')
		}
		if r == '0' {
			return 0
		}
	}
	return 0
}
