package regexp

import (
	"errors"
	"fmt"

	"github.com/coregx/coregex"
	"github.com/dlclark/regexp2"
)

// ErrCompile wraps every error returned by the underlying engines.
var ErrCompile = errors.New("regexp: compile")

// Engine names the backend a [Regexp] was compiled with.
type Engine string

const (
	EngineCore Engine = "coregex"
	EnginePCRE Engine = "regexp2"
)

// Regexp is a compiled regular expression that delegates to either coregex
// (fast, RE2-compatible) or regexp2 (PCRE-compatible) depending on the
// features detected at compile time. A Regexp is safe for concurrent use.
type Regexp struct {
	expr string
	core *coregex.Regex
	pcre *regexp2.Regexp
}

// Compile parses a regular expression and returns a compiled Regexp.
// Expressions that need PCRE/Perl-only features (detected by needsPCRE) are
// compiled with regexp2, with (?P<name>...) groups accepted there too;
// everything else uses coregex.
func Compile(expr string) (*Regexp, error) {
	if needsPCRE(expr) {
		re, err := regexp2.Compile(toPCRE(expr), regexp2.None)
		if err != nil {
			return nil, fmt.Errorf("%w %q: %w", ErrCompile, expr, err)
		}
		return &Regexp{expr: expr, pcre: re}, nil
	}

	re, err := coregex.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("%w %q: %w", ErrCompile, expr, err)
	}

	return &Regexp{expr: expr, core: re}, nil
}

// MustCompile is like Compile but panics if the expression cannot be parsed.
func MustCompile(expr string) *Regexp {
	re, err := Compile(expr)
	if err != nil {
		panic(err)
	}
	return re
}

// MatchString reports whether the string s matches the regular expression
// expr. This mirrors regexp.MatchString.
func MatchString(expr, s string) (bool, error) {
	re, err := Compile(expr)
	if err != nil {
		return false, err
	}
	return re.MatchString(s), nil
}

// QuoteMeta escapes all regular expression metacharacters in s.
func QuoteMeta(s string) string {
	return coregex.QuoteMeta(s)
}

// String returns the source expression used to compile the Regexp.
func (r *Regexp) String() string {
	return r.expr
}

// Engine reports which backend executes the Regexp.
func (r *Regexp) Engine() Engine {
	if r.core != nil {
		return EngineCore
	}
	return EnginePCRE
}

// MatchString reports whether the string s contains any match of the Regexp.
func (r *Regexp) MatchString(s string) bool {
	if r.core != nil {
		return r.core.MatchString(s)
	}

	matched, err := r.pcre.MatchString(s)
	return err == nil && matched
}

// FindString returns the leftmost match of the Regexp in s.
func (r *Regexp) FindString(s string) string {
	if r.core != nil {
		return r.core.FindString(s)
	}

	m, err := r.pcre.FindStringMatch(s)
	if err != nil || m == nil {
		return ""
	}

	return m.String()
}

// FindAllString returns a slice of all successive matches of the Regexp in s.
// A negative n returns every match.
func (r *Regexp) FindAllString(s string, n int) []string {
	if r.core != nil {
		return r.core.FindAllString(s, n)
	}

	var matches []string
	m, err := r.pcre.FindStringMatch(s)
	for err == nil && m != nil {
		if n >= 0 && len(matches) >= n {
			break
		}
		matches = append(matches, m.String())
		m, err = r.pcre.FindNextMatch(m)
	}
	return matches
}

// FindStringSubmatch returns the leftmost match of the Regexp in s and its
// submatches as strings.
func (r *Regexp) FindStringSubmatch(s string) []string {
	if r.core != nil {
		return r.core.FindStringSubmatch(s)
	}

	m, err := r.pcre.FindStringMatch(s)
	if err != nil || m == nil {
		return nil
	}

	out := make([]string, r.NumSubexp()+1)
	for i := range out {
		if g := m.GroupByNumber(i); g != nil && len(g.Captures) > 0 {
			out[i] = g.String()
		}
	}
	return out
}

// NamedSubmatch returns the text captured by each named group in the leftmost
// match of s, or nil when s does not match. Groups that did not participate in
// the match map to "".
func (r *Regexp) NamedSubmatch(s string) map[string]string {
	sub := r.FindStringSubmatch(s)
	if sub == nil {
		return nil
	}

	out := make(map[string]string)
	for i, name := range r.SubexpNames() {
		if name == "" || i >= len(sub) || isNumber(name) {
			continue
		}
		out[name] = sub[i]
	}
	return out
}

// NumSubexp returns the number of parenthesized subexpressions in this Regexp.
func (r *Regexp) NumSubexp() int {
	if r.core != nil {
		return r.core.NumSubexp()
	}

	return maxGroupNumber(r.pcre)
}

// SubexpNames returns the names of the parenthesized subexpressions in this
// Regexp. The name for the first sub-expression is names[1]; unnamed groups
// have an empty name.
func (r *Regexp) SubexpNames() []string {
	if r.core != nil {
		return r.core.SubexpNames()
	}

	max := maxGroupNumber(r.pcre)
	names := make([]string, max+1)
	for i := 1; i <= max; i++ {
		if name := r.pcre.GroupNameFromNumber(i); !isNumber(name) {
			names[i] = name
		}
	}

	return names
}

func maxGroupNumber(re *regexp2.Regexp) int {
	max := 0
	for _, v := range re.GetGroupNumbers() {
		if v > max {
			max = v
		}
	}
	return max
}

// isNumber reports whether name is regexp2's placeholder for an unnamed group.
func isNumber(name string) bool {
	if name == "" {
		return false
	}
	for i := 0; i < len(name); i++ {
		if name[i] < '0' || name[i] > '9' {
			return false
		}
	}
	return true
}
