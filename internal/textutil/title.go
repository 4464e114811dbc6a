package textutil

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Title renders an upper-case identifier such as "BIRCH" as "Birch".
func Title(value string) string {
	return cases.Title(language.Und).String(strings.ToLower(strings.TrimSpace(value)))
}
