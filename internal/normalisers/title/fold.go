package title

import (
	"strings"

	"golang.org/x/text/width"
)

// Fold maps s to its comparison form: full-width ASCII becomes ASCII,
// half-width katakana becomes full-width, and letters are lower-cased.
// Queries and stored text must both be folded before comparing.
func Fold(s string) string {
	return strings.ToLower(width.Fold.String(s))
}

// FoldAll folds every string and drops the ones that fold to empty.
func FoldAll(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	out := make([]string, 0, len(values))
	for _, v := range values {
		if f := Fold(strings.TrimSpace(v)); f != "" {
			out = append(out, f)
		}
	}
	return out
}
