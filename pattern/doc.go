// Package pattern composes regular-expression pattern strings from small named
// primitives instead of hand-written regex syntax.
//
// A [Pattern] wraps a regex fragment. Leaf constructors such as [Digit],
// [Literal] and [Start] create fragments, and methods such as
// [Pattern.Times], [Pattern.GroupedAs] and [Pattern.And] combine them into new
// Patterns. Nothing is ever modified in place, so a Pattern may be shared
// freely between goroutines.
//
//	date := pattern.Digit().Times(4).GroupedAs("year").
//		And(pattern.Literal("-")).
//		And(pattern.Digit().Times(2).GroupedAs("month"))
//
//	date.String() // (?P<year>(\d){4})-(?P<month>(\d){2})
//
// The package only composes text. It does not parse, validate or execute the
// fragments it produces: an illegal group name or a malformed alternation is
// carried into the final string and only reported by whichever regex engine
// compiles it (see the sibling regexp package). The emitted syntax assumes a
// PCRE-like dialect with (?P<name>...) groups, (?:...) groups, | alternation,
// {n} and + quantifiers.
//
// Some combinators keep the receiver's fragment and some discard it; each
// method documents which.
package pattern
