package roster

import "strings"

// Pluralize derives the plural form of an attribute name. Rules, applied
// in order:
//
//   - A name already ending in "s" is returned unchanged.
//   - A trailing "y" preceded by a consonant becomes "ies".
//   - Names ending in "sh", "ch", "x", or "z" get "es" appended.
//   - Everything else gets "s" appended.
func Pluralize(word string) string {
	switch {
	case strings.HasSuffix(word, "s"):
		return word
	case len(word) > 1 && strings.HasSuffix(word, "y") && !isVowel(word[len(word)-2]):
		return word[:len(word)-1] + "ies"
	case strings.HasSuffix(word, "sh"), strings.HasSuffix(word, "ch"),
		strings.HasSuffix(word, "x"), strings.HasSuffix(word, "z"):
		return word + "es"
	default:
		return word + "s"
	}
}

func isVowel(c byte) bool {
	return strings.IndexByte("aeiouAEIOU", c) >= 0
}
