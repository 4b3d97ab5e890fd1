package textutil

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
)

// Tokenize case-folds text and splits it on anything that is not a letter or
// a digit.
func Tokenize(text string) []string {
	folded := cases.Fold().String(text)
	return strings.FieldsFunc(folded, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}
