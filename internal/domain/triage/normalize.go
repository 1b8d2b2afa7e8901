package triage

import "strings"

// Los joiners invisibles (ZWNJ y compañía) se tratan como espacio.
var joinerReplacer = strings.NewReplacer(
	"\u200c", " ",
	"\u200d", " ",
	"\u2060", " ",
	"\ufeff", " ",
)

// Normalize es la forma canónica sobre la que se buscan keywords y tokens.
func Normalize(text string) string {
	return strings.ToLower(joinerReplacer.Replace(text))
}
