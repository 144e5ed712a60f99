// Package regexp compiles the strings emitted by the pattern package with the
// fastest regex engine able to run them.
//
// Expressions are compiled with coregex (an accelerated RE2-compatible
// engine) by default. When an expression needs PCRE/Perl features that RE2
// cannot execute, such as lookaround or backreferences, the package falls back
// to [regexp2].
//
// [CompilePattern] keeps compiled expressions in a process-wide cache keyed by
// the fragment text, so building the same [pattern.Pattern] in several places
// compiles it once.
package regexp
