package record

import (
	"fmt"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Symbol is a field label.
type Symbol string

// String returns the label text.
func (s Symbol) String() string {
	return string(s)
}

// labelOf turns any factory argument or access key into a label. Nothing is
// rejected: odd inputs simply produce odd-looking labels.
func labelOf(v any) Symbol {
	switch l := v.(type) {
	case Symbol:
		return l
	case string:
		return Symbol(l)
	case fmt.Stringer:
		return Symbol(l.String())
	default:
		return Symbol(fmt.Sprint(v))
	}
}

// NormalizeName capitalizes a display name: the first rune is title-cased and
// the remainder lower-cased, so "point" and "POINT" both become "Point".
func NormalizeName(name string) string {
	if name == "" {
		return name
	}
	_, size := utf8.DecodeRuneInString(name)
	head := cases.Title(language.Und).String(name[:size])
	tail := cases.Lower(language.Und).String(name[size:])
	return head + tail
}
