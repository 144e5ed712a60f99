package regexp

import (
	"errors"
	"testing"

	"go.dw1.io/rex/pattern"
)

func TestCompileEngineSelection(t *testing.T) {
	tests := []struct {
		name string
		expr string
		want Engine
	}{
		{name: "plain", expr: "a+", want: EngineCore},
		{name: "namedGroup", expr: `(?P<year>\d{4})`, want: EngineCore},
		{name: "nonCapturing", expr: `(?:a|b)+`, want: EngineCore},
		{name: "lookbehind", expr: "(?<=a)b", want: EnginePCRE},
		{name: "lookahead", expr: "a(?=b)", want: EnginePCRE},
		{name: "backreference", expr: `(\w+)\s+\1`, want: EnginePCRE},
		{name: "dotNetNamedGroup", expr: `(?<year>\d{4})`, want: EnginePCRE},
		{name: "escapedBackslashDigit", expr: `\\1`, want: EngineCore},
		{name: "escapedBackslashLetter", expr: `C:\\Users\\Home`, want: EngineCore},
		{name: "escapedBackslashVerbs", expr: `a\\vb x\\ey \\Z`, want: EngineCore},
		{name: "escapedParen", expr: `\(?=x`, want: EngineCore},
		{name: "backslashBeforeEscape", expr: `\\\Z`, want: EnginePCRE},
		{name: "lookaheadWithGroupedAs", expr: `(?=\d)(?P<d>\d)`, want: EnginePCRE},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			re, err := Compile(tt.expr)
			if err != nil {
				t.Fatalf("compile %q: %v", tt.expr, err)
			}
			if got := re.Engine(); got != tt.want {
				t.Fatalf("engine for %q: got %s want %s", tt.expr, got, tt.want)
			}
			if re.String() != tt.expr {
				t.Fatalf("String: got %q want %q", re.String(), tt.expr)
			}
		})
	}
}

func TestCompileErrorIsWrapped(t *testing.T) {
	_, err := Compile(`(?P<bad name>x)`)
	if err == nil {
		t.Fatalf("expected error for invalid group name")
	}
	if !errors.Is(err, ErrCompile) {
		t.Fatalf("expected ErrCompile, got %v", err)
	}
}

func TestCoreMatchAndFind(t *testing.T) {
	re := MustCompile("a+")

	if !re.MatchString("caaab") {
		t.Fatalf("MatchString core: expected true")
	}

	if got := re.FindString("caaab"); got != "aaa" {
		t.Fatalf("FindString core: got %q", got)
	}

	all := re.FindAllString("a ba caa", -1)
	expect := []string{"a", "a", "aa"}
	if len(all) != len(expect) {
		t.Fatalf("FindAllString core: got %v want %v", all, expect)
	}
	for i := range expect {
		if all[i] != expect[i] {
			t.Fatalf("FindAllString core[%d]: got %q want %q", i, all[i], expect[i])
		}
	}
}

func TestPCREBackreference(t *testing.T) {
	re := MustCompile(`(\w+)\s+\1`)

	if !re.MatchString("go go") {
		t.Fatalf("MatchString pcre backref: expected true")
	}

	sm := re.FindStringSubmatch("go go")
	if len(sm) != 2 || sm[0] != "go go" || sm[1] != "go" {
		t.Fatalf("FindStringSubmatch pcre backref: got %v", sm)
	}

	if got := re.FindAllString("go go, no no, yes", -1); len(got) != 2 {
		t.Fatalf("FindAllString pcre backref: got %v", got)
	}
	if got := re.FindAllString("go go, no no", 1); len(got) != 1 {
		t.Fatalf("FindAllString pcre backref limit: got %v", got)
	}
}

func TestPCRENamedSubmatch(t *testing.T) {
	re := MustCompile(`(?<=@)(?<user>\w+)`)
	if re.Engine() != EnginePCRE {
		t.Fatalf("expected PCRE backend")
	}

	got := re.NamedSubmatch("mail @gopher now")
	if got["user"] != "gopher" {
		t.Fatalf("NamedSubmatch pcre: got %v", got)
	}
}

func TestCompilePatternDate(t *testing.T) {
	date := pattern.Start().
		And(pattern.Digit().Times(4).GroupedAs("year")).
		And(pattern.Literal("-")).
		And(pattern.Digit().Times(2).GroupedAs("month")).
		And(pattern.End())

	re, err := CompilePattern(date)
	if err != nil {
		t.Fatalf("compile: %v", err)
	}

	if !re.MatchString("2024-06") {
		t.Fatalf("expected 2024-06 to match %s", re)
	}
	if re.MatchString("2024-6") {
		t.Fatalf("expected 2024-6 not to match %s", re)
	}

	names := re.NamedSubmatch("2024-06")
	if names["year"] != "2024" || names["month"] != "06" {
		t.Fatalf("NamedSubmatch: got %v", names)
	}

	if got := re.NamedSubmatch("nope"); got != nil {
		t.Fatalf("NamedSubmatch without match: got %v", got)
	}
}

func TestCompilePatternLiteralMatchesVerbatim(t *testing.T) {
	text := `1+1=2? (a|b) [x] {y} ^$ \ .*`
	re := MustCompilePattern(pattern.Start().And(pattern.Literal(text)).And(pattern.End()))

	if !re.MatchString(text) {
		t.Fatalf("expected %q to match its own literal %s", text, re)
	}
	if re.MatchString("11=2") {
		t.Fatalf("metacharacters were not escaped in %s", re)
	}
}

func TestCompilePatternAlternation(t *testing.T) {
	parts := []pattern.Pattern{pattern.Literal("cat"), pattern.Literal("dog")}

	capturing := MustCompilePattern(pattern.AnyOf(parts...))
	if capturing.NumSubexp() != 1 {
		t.Fatalf("capturing alternation: got %d groups want 1", capturing.NumSubexp())
	}

	nonCapturing := MustCompilePattern(pattern.Pattern{}.AnyOf(parts...))
	if nonCapturing.NumSubexp() != 0 {
		t.Fatalf("non-capturing alternation: got %d groups want 0", nonCapturing.NumSubexp())
	}

	if !nonCapturing.MatchString("hotdog") {
		t.Fatalf("expected hotdog to match %s", nonCapturing)
	}
}

func TestCompilePatternCaches(t *testing.T) {
	p := pattern.Alphanumeric().OneOrMore().GroupedAs("cached_word")

	first := MustCompilePattern(p)
	second := MustCompilePattern(pattern.New(p.String()))
	if first != second {
		t.Fatalf("expected cached *Regexp to be reused")
	}
}

func TestCompilePatternDeferredFailure(t *testing.T) {
	bad := pattern.Digit().GroupedAs("not valid")

	if _, err := CompilePattern(bad); !errors.Is(err, ErrCompile) {
		t.Fatalf("expected ErrCompile for %s, got %v", bad, err)
	}

	defer func() {
		if recover() == nil {
			t.Fatalf("expected MustCompilePattern to panic")
		}
	}()
	MustCompilePattern(bad)
}

func TestMatchString(t *testing.T) {
	ok, err := MatchString(`^\d+$`, "123")
	if err != nil || !ok {
		t.Fatalf("MatchString: got %v, %v", ok, err)
	}

	if _, err := MatchString(`(`, "x"); err == nil {
		t.Fatalf("MatchString: expected error for unbalanced group")
	}
}

func TestQuoteMetaAgreesWithLiteral(t *testing.T) {
	text := "a.b*c"
	re := MustCompile(QuoteMeta(text))
	if !re.MatchString(text) || re.MatchString("aXbbc") {
		t.Fatalf("QuoteMeta(%q) = %q does not match verbatim", text, QuoteMeta(text))
	}
}

func TestCompilePatternEscapedBackslashes(t *testing.T) {
	for _, text := range []string{`C:\Users\Home`, `a\vb`, `x\ey`, `\Z\G\k<n>`} {
		t.Run(text, func(t *testing.T) {
			re, err := CompilePattern(pattern.Literal(text).GroupedAs("path"))
			if err != nil {
				t.Fatalf("compile: %v", err)
			}
			if re.Engine() != EngineCore {
				t.Fatalf("expected core backend for %s, got %s", re, re.Engine())
			}
			if got := re.NamedSubmatch("in " + text + " out")["path"]; got != text {
				t.Fatalf("NamedSubmatch: got %q want %q", got, text)
			}
		})
	}
}

func TestCompilePatternGroupedAsOnPCRE(t *testing.T) {
	p := pattern.New(`(?=\d)`).And(pattern.Digit().GroupedAs("d"))

	re, err := CompilePattern(p)
	if err != nil {
		t.Fatalf("compile %s: %v", p, err)
	}
	if re.Engine() != EnginePCRE {
		t.Fatalf("expected PCRE backend for %s", re)
	}
	if re.String() != p.String() {
		t.Fatalf("String: got %q want %q", re.String(), p.String())
	}

	if got := re.NamedSubmatch("ab7")["d"]; got != "7" {
		t.Fatalf("NamedSubmatch: got %q want %q", got, "7")
	}
	if names := re.SubexpNames(); len(names) != 2 || names[1] != "d" {
		t.Fatalf("SubexpNames: got %q", names)
	}
}

func TestToPCRE(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: `(?P<year>\d)`, want: `(?<year>\d)`},
		{in: `(?P<a>x)(?P<b>y)`, want: `(?<a>x)(?<b>y)`},
		{in: `\(?P<a>x\)`, want: `\(?P<a>x\)`},
		{in: `\\(?P<a>x)`, want: `\\(?<a>x)`},
		{in: `(?<=a)b`, want: `(?<=a)b`},
	}

	for _, tt := range tests {
		if got := toPCRE(tt.in); got != tt.want {
			t.Fatalf("toPCRE(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
