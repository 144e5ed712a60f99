package regexp

import (
	"sync"

	"go.dw1.io/fastcache"

	"go.dw1.io/rex/pattern"
)

// cacheSize bounds the number of compiled expressions kept by CompilePattern.
const cacheSize = 4_096

var (
	compiledOnce sync.Once
	compiled     *fastcache.Cache[string, *Regexp]
)

func getCompiled() *fastcache.Cache[string, *Regexp] {
	compiledOnce.Do(func() {
		compiled = fastcache.New[string, *Regexp](cacheSize)
	})

	return compiled
}

// CompilePattern compiles the fragment of p. Compiled expressions are cached,
// so compiling an equal Pattern again returns the same *Regexp. Failed
// compiles are not cached.
func CompilePattern(p pattern.Pattern) (*Regexp, error) {
	expr := p.String()

	cache := getCompiled()
	if re, found := cache.Get(expr); found {
		return re, nil
	}

	re, err := Compile(expr)
	if err != nil {
		return nil, err
	}

	cache.Set(expr, re)

	return re, nil
}

// MustCompilePattern is like CompilePattern but panics if the fragment cannot
// be compiled.
func MustCompilePattern(p pattern.Pattern) *Regexp {
	re, err := CompilePattern(p)
	if err != nil {
		panic(err)
	}
	return re
}
