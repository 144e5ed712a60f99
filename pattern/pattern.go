package pattern

import (
	"strconv"
	"strings"
)

// Fragments produced by the leaf constructors.
const (
	digitExpr        = `\d`
	alphanumericExpr = `\w`
	alphabeticExpr   = `([a-zA-Z])`
	startExpr        = `^`
	endExpr          = `$`
	anyCharExpr      = `.`
)

// Pattern is an immutable regular-expression fragment.
//
// The zero value is the empty fragment. Patterns are values: copying one is
// cheap and every method returns a new Pattern, leaving the receiver as it
// was.
type Pattern struct {
	expr string
}

// New wraps expr verbatim. No escaping or validation is applied.
func New(expr string) Pattern { return Pattern{expr: expr} }

// Literal returns a Pattern matching text verbatim, with every regex
// metacharacter escaped by [Escape]. Any text is accepted, including "".
func Literal(text string) Pattern { return Pattern{expr: Escape(text)} }

// Digit returns a Pattern matching exactly one decimal digit (\d).
func Digit() Pattern { return Pattern{expr: digitExpr} }

// Alphanumeric returns a Pattern matching exactly one word character (\w).
func Alphanumeric() Pattern { return Pattern{expr: alphanumericExpr} }

// Alphabetic returns a Pattern matching exactly one ASCII letter.
//
// Unlike the other leaf constructors the class comes wrapped in a capturing
// group, ([a-zA-Z]), so it occupies a submatch slot when compiled.
func Alphabetic() Pattern { return Pattern{expr: alphabeticExpr} }

// Start returns a Pattern matching the start of input (^).
func Start() Pattern { return Pattern{expr: startExpr} }

// End returns a Pattern matching the end of input ($).
func End() Pattern { return Pattern{expr: endExpr} }

// AnyOf returns a capturing alternation over parts, (a|b|...).
//
// See [Pattern.AnyOf] for the non-capturing form. With no parts the result is
// "()", which is passed through unchanged.
func AnyOf(parts ...Pattern) Pattern {
	return Pattern{expr: "(" + join(parts, "|") + ")"}
}

// Concat returns the fragments of parts joined with no separator.
func Concat(parts ...Pattern) Pattern { return Pattern{expr: join(parts, "")} }

// Times wraps the receiver in a capturing group repeated exactly count times:
// (p){count}. No upper bound is enforced.
func (p Pattern) Times(count uint) Pattern {
	var b strings.Builder
	b.Grow(len(p.expr) + 24)
	b.WriteByte('(')
	b.WriteString(p.expr)
	b.WriteString("){")
	b.WriteString(strconv.FormatUint(uint64(count), 10))
	b.WriteByte('}')

	return Pattern{expr: b.String()}
}

// GroupedAs wraps the receiver in a capturing group named name:
// (?P<name>p). The name is used verbatim; an invalid identifier is only
// reported by the engine that compiles the result.
func (p Pattern) GroupedAs(name string) Pattern {
	return Pattern{expr: "(?P<" + name + ">" + p.expr + ")"}
}

// And returns the receiver followed by other, with no separator.
func (p Pattern) And(other Pattern) Pattern { return Pattern{expr: p.expr + other.expr} }

// Digit returns the receiver followed by a single digit class (\d).
//
// It appends to the receiver; use the package-level [Digit] for a standalone
// digit matcher.
func (p Pattern) Digit() Pattern { return Pattern{expr: p.expr + digitExpr} }

// AnyOf returns a non-capturing alternation over parts, (?:a|b|...). The
// receiver's fragment is discarded.
//
// See the package-level [AnyOf] for the capturing form; the two are not
// interchangeable. With no parts the result is "(?:)".
func (p Pattern) AnyOf(parts ...Pattern) Pattern {
	return Pattern{expr: "(?:" + join(parts, "|") + ")"}
}

// Exactly returns the receiver followed by the raw fragments of parts. Parts
// are already-built Patterns and are not escaped again; use [Literal] to match
// plain text.
func (p Pattern) Exactly(parts ...Pattern) Pattern {
	if len(parts) == 0 {
		return p
	}

	return Pattern{expr: p.expr + join(parts, "")}
}

// AnyCharacter returns a Pattern matching any single character (.). The
// receiver's fragment is discarded.
func (p Pattern) AnyCharacter() Pattern { return Pattern{expr: anyCharExpr} }

// OneOrMore wraps the receiver in a non-capturing group matched one or more
// times: (?:p)+.
func (p Pattern) OneOrMore() Pattern { return Pattern{expr: "(?:" + p.expr + ")+"} }

// String returns the fragment, ready to hand to a regex engine.
func (p Pattern) String() string { return p.expr }

// GoString returns the fragment labelled for diagnostics, Pattern(<fragment>).
// It backs the %#v verb.
func (p Pattern) GoString() string { return "Pattern(" + p.expr + ")" }

// IsZero reports whether the fragment is empty.
func (p Pattern) IsZero() bool { return p.expr == "" }

// MarshalText implements [encoding.TextMarshaler]; the fragment is emitted as
// is.
func (p Pattern) MarshalText() ([]byte, error) { return []byte(p.expr), nil }

// UnmarshalText implements [encoding.TextUnmarshaler]; text is taken verbatim,
// as with [New].
func (p *Pattern) UnmarshalText(text []byte) error {
	p.expr = string(text)
	return nil
}

func join(parts []Pattern, sep string) string {
	switch len(parts) {
	case 0:
		return ""
	case 1:
		return parts[0].expr
	}

	n := len(sep) * (len(parts) - 1)
	for _, part := range parts {
		n += len(part.expr)
	}

	var b strings.Builder
	b.Grow(n)
	for i, part := range parts {
		if i > 0 {
			b.WriteString(sep)
		}
		b.WriteString(part.expr)
	}

	return b.String()
}
