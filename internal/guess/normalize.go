package guess

import "strings"

// Normalize trims, case-folds and collapses inner whitespace so " Ice  CREAM " matches "ice cream".
func Normalize(raw string) string {
	return strings.Join(strings.Fields(strings.ToLower(raw)), " ")
}
