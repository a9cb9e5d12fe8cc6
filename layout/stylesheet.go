package layout

import (
	"strings"
)

// Utility binds a utility class token to the CSS declarations it stands for.
type Utility struct {
	Class        string
	Declarations []string
}

// Utilities lists the bindings for the tokens in ContainerClass, in order.
// Spacing units are 0.25rem.
var Utilities = []Utility{
	{Class: "max-w-[1200px]", Declarations: []string{"max-width: 1200px"}},
	{Class: "mx-auto", Declarations: []string{"margin-left: auto", "margin-right: auto"}},
	{Class: "px-8", Declarations: []string{"padding-left: 2rem", "padding-right: 2rem"}},
}

// Stylesheet renders Utilities as CSS rules, for hosts without a utility
// class framework.
func Stylesheet() string {
	var b strings.Builder
	for _, u := range Utilities {
		b.WriteString(".")
		b.WriteString(EscapeSelector(u.Class))
		b.WriteString(" {\n")
		for _, d := range u.Declarations {
			b.WriteString("  ")
			b.WriteString(d)
			b.WriteString(";\n")
		}
		b.WriteString("}\n")
	}
	return b.String()
}

// EscapeSelector escapes a class token for use in a CSS class selector.
func EscapeSelector(class string) string {
	var b strings.Builder
	for i, r := range class {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r == '_', r >= 0x80:
			b.WriteRune(r)
		case r == '-' && (i > 0 || len(class) > 1):
			b.WriteRune(r)
		case r >= '0' && r <= '9' && i > 0 && !(i == 1 && class[0] == '-'):
			b.WriteRune(r)
		case r >= '0' && r <= '9':
			// a digit may not start an identifier, even after a leading hyphen
			b.WriteString(`\3`)
			b.WriteRune(r)
			b.WriteByte(' ')
		default:
			b.WriteByte('\\')
			b.WriteRune(r)
		}
	}
	return b.String()
}
