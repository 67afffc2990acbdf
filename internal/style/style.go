// Package style turns motion state into inline style values. Nothing here
// touches a document; callers decide where the declarations go.
package style

import (
	"html/template"
	"math"
	"strconv"
	"strings"

	"github.com/Zachkp/portfolio/internal/reveal"
)

// Decl is one CSS declaration.
type Decl struct {
	Prop  string
	Value string
}

// Style is an ordered list of declarations.
type Style []Decl

// Set replaces prop in place or appends it.
func (s Style) Set(prop, value string) Style {
	for i := range s {
		if s[i].Prop == prop {
			s[i].Value = value
			return s
		}
	}
	return append(s, Decl{Prop: prop, Value: value})
}

// String renders the attribute value.
func (s Style) String() string {
	var b strings.Builder
	for i, d := range s {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(d.Prop)
		b.WriteString(": ")
		b.WriteString(d.Value)
	}
	return b.String()
}

// CSS marks the rendered value as safe for a style attribute.
func (s Style) CSS() template.CSS {
	return template.CSS(s.String())
}

// Reveal returns the style for an element in state st. Hidden and leaving
// elements sit at offset; shown elements sit at rest.
func Reveal(st reveal.State, offset reveal.Offset) Style {
	if st.Shown() {
		return Style{
			{Prop: "opacity", Value: "1"},
			{Prop: "transform", Value: "none"},
		}
	}
	return Style{
		{Prop: "opacity", Value: "0"},
		{Prop: "transform", Value: "translate3d(" + Px(offset.X) + ", " + Px(offset.Y) + ", 0)"},
	}
}

// Number formats v with at most three decimals.
func Number(v float64) string {
	r := math.Round(v*1000) / 1000
	if r == 0 {
		r = 0 // drop negative zero
	}
	return strconv.FormatFloat(r, 'f', -1, 64)
}

// Px formats v as a pixel length.
func Px(v float64) string {
	return Number(v) + "px"
}
