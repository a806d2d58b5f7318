package utils

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/pogoutil/internal/domain"
)

// EnumKeyByValue finds the name of the first symbol in mapping whose value is value
// and returns it humanized (see HumanizeEnumName).
// Returns "", false if no symbol matches.
func EnumKeyByValue(mapping domain.EnumMapping, value int32) (string, bool) {
	for _, ev := range mapping {
		if ev.Value == value {
			return HumanizeEnumName(ev.Name), true
		}
	}
	return "", false
}

// HumanizeEnumName turns an enum symbol like "CHARGE_MOVE" into "Charge Move".
// Words are split on underscores only, so empty words between repeated
// underscores are kept as extra spaces. Each word is lower-cased and only its
// first rune is upper-cased: "10X_BOOST" gives "10x Boost", "POKE-BALL" gives "Poke-ball".
func HumanizeEnumName(name string) string {
	// Casers keep state and are not safe for concurrent use
	lower := cases.Lower(language.Und)

	words := strings.Split(name, "_")
	for i, word := range words {
		w := lower.String(word)
		r, size := utf8.DecodeRuneInString(w)
		if size == 0 {
			words[i] = w
			continue
		}
		words[i] = string(unicode.ToUpper(r)) + w[size:]
	}
	return strings.Join(words, " ")
}
