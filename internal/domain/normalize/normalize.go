// Package normalize folds player names into a canonical comparison form.
package normalize

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes to NFD, drops combining marks, and recomposes.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// foldASCII handles letters that carry no combining mark and survive NFD
// untouched, e.g. "Ødegaard" must compare equal to "odegaard".
var foldASCII = strings.NewReplacer(
	"ø", "o",
	"æ", "ae",
	"œ", "oe",
	"ß", "ss",
	"đ", "d",
	"ð", "d",
	"þ", "th",
	"ł", "l",
	"ħ", "h",
	"ı", "i",
)

// Key returns the canonical comparison form of text: lowercase, accents
// stripped, surrounding whitespace removed and internal runs collapsed to a
// single space. Key is pure and idempotent; empty input yields "".
func Key(text string) string {
	s := strings.ToLower(text)
	s, _, _ = transform.String(stripMarks, s)
	s = foldASCII.Replace(s)
	return strings.Join(strings.Fields(s), " ")
}
