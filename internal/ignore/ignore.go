// Package ignore decides which paths are excluded from comparison.
//
// Matching is exact, case-sensitive name matching against individual path
// segments, deliberately not glob or regex. A rule "build" excludes any
// file or directory named exactly "build" anywhere in either tree; it does
// not exclude "builds" or "build.log". This is a documented limitation.
package ignore

// defaultRules are always excluded: version-control metadata and editor
// artifacts that drift without meaning.
var defaultRules = []string{
	".git",
	".svn",
	".hg",
	".gitignore",
	"lazy-lock.json",
	"node_modules",
	"__pycache__",
	".DS_Store",
}

// Matcher reports whether a path or path component is excluded from
// comparison. It is immutable after construction and safe for concurrent
// use.
type Matcher struct {
	rules map[string]struct{}
}

// NewMatcher builds a Matcher from the built-in default rules plus any
// extra names supplied by the caller.
func NewMatcher(extra []string) *Matcher {
	rules := make(map[string]struct{}, len(defaultRules)+len(extra))
	for _, name := range defaultRules {
		rules[name] = struct{}{}
	}
	for _, name := range extra {
		if name == "" {
			continue
		}
		rules[name] = struct{}{}
	}
	return &Matcher{rules: rules}
}

// Match reports whether a single file or directory name is ignored.
func (m *Matcher) Match(name string) bool {
	_, ok := m.rules[name]
	return ok
}

// MatchPath reports whether any forward-slash segment of the relative
// path is ignored, or the full path itself is an ignore rule.
func (m *Matcher) MatchPath(relPath string) bool {
	if m.Match(relPath) {
		return true
	}
	start := 0
	for i := 0; i <= len(relPath); i++ {
		if i == len(relPath) || relPath[i] == '/' {
			if m.Match(relPath[start:i]) {
				return true
			}
			start = i + 1
		}
	}
	return false
}
