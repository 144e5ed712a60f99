package regexp

import "strings"

// pcreGroups lists group constructs that RE2 (and therefore coregex) rejects
// but regexp2 executes, based on pcre2syntax.
//
// Ref: https://pcre2project.github.io/pcre2/doc/pcre2syntax/
var pcreGroups = []string{
	// Lookaround
	"(?=", "(?!", "(?<=", "(?<!",
	"(*pla:", "(*positive_lookahead:", "(*nla:", "(*negative_lookahead:",
	"(*plb:", "(*positive_lookbehind:", "(*nlb:", "(*negative_lookbehind:",
	// Atomic, branch reset, conditional and comment groups
	"(?>", "(*atomic:", "(?|", "(?(", "(?#",
	// Recursion and subroutine calls
	"(?R)", "(?P>", "(?&",
	// Backtracking control verbs
	"(*ACCEPT)", "(*FAIL)", "(*F)", "(*COMMIT)", "(*PRUNE)", "(*SKIP)", "(*THEN)",
	// Named backreference
	"(?P=",
	// Go supports (?P<name>...) but not (?<name>...) or (?'name'...)
	"(?<", "(?'",
}

// pcreEscapes lists escape sequences RE2 rejects. They only count when the
// leading backslash is not itself escaped.
var pcreEscapes = []string{
	`\k<`, `\k'`, `\k{`, `\g`,
	`\h`, `\H`, `\v`, `\V`, `\R`, `\X`, `\K`, `\e`, `\G`, `\Z`,
}

// pcreFeature returns the first PCRE-only construct found in expr, or "" when
// RE2 can run it. Escaped text such as `\\H` (a literal backslash followed by
// H) is not a feature.
func pcreFeature(expr string) string {
	for i := 0; i < len(expr); i++ {
		rest := expr[i:]

		if expr[i] == '\\' {
			if i+1 < len(expr) && expr[i+1] >= '1' && expr[i+1] <= '9' {
				return expr[i : i+2]
			}
			if token := prefixIn(rest, pcreEscapes); token != "" {
				return token
			}
			i++ // skip the escaped byte
			continue
		}

		if expr[i] == '(' {
			if token := prefixIn(rest, pcreGroups); token != "" {
				return token
			}
		}
	}

	return ""
}

func needsPCRE(expr string) bool {
	return pcreFeature(expr) != ""
}

func prefixIn(s string, tokens []string) string {
	for _, token := range tokens {
		if strings.HasPrefix(s, token) {
			return token
		}
	}
	return ""
}

// toPCRE rewrites unescaped (?P<name> groups, the form emitted by
// pattern.Pattern.GroupedAs, into the (?<name> form regexp2 accepts.
func toPCRE(expr string) string {
	if !strings.Contains(expr, "(?P<") {
		return expr
	}

	var b strings.Builder
	b.Grow(len(expr))
	for i := 0; i < len(expr); i++ {
		c := expr[i]
		switch {
		case c == '\\' && i+1 < len(expr):
			b.WriteByte(c)
			b.WriteByte(expr[i+1])
			i++
		case c == '(' && strings.HasPrefix(expr[i:], "(?P<"):
			b.WriteString("(?<")
			i += len("(?P<") - 1
		default:
			b.WriteByte(c)
		}
	}

	return b.String()
}
