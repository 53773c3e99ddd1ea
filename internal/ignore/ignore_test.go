package ignore

import "testing"

func TestMatcher_Match(t *testing.T) {
	m := NewMatcher([]string{"vendor", "dist"})

	tests := []struct {
		name string
		want bool
	}{
		{".git", true},
		{".gitignore", true},
		{"lazy-lock.json", true},
		{"node_modules", true},
		{"vendor", true},
		{"dist", true},
		{"src", false},
		{"main.go", false},
		// Exact match only: no prefix or substring semantics.
		{"vendored", false},
		{"dist.tar", false},
		{".gits", false},
		// Case-sensitive.
		{"Vendor", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := m.Match(tt.name); got != tt.want {
				t.Errorf("Match(%q) = %v, want %v", tt.name, got, tt.want)
			}
		})
	}
}

func TestMatcher_MatchPath(t *testing.T) {
	m := NewMatcher([]string{"build"})

	tests := []struct {
		path string
		want bool
	}{
		{".git/config", true},
		{"src/.git/hooks/pre-commit", true},
		{"build/out.bin", true},
		{"src/build/obj/a.o", true},
		{"src/main.go", false},
		{"buildscripts/run.sh", false},
		{"a/rebuild/b", false},
		{".gitignore", true},
		{"docs/.gitignore", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := m.MatchPath(tt.path); got != tt.want {
				t.Errorf("MatchPath(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestNewMatcher_SkipsEmptyRules(t *testing.T) {
	m := NewMatcher([]string{""})
	if m.Match("") {
		t.Error("empty rule should not be registered")
	}
	if m.MatchPath("a/b") {
		t.Error("MatchPath matched with only default rules and an empty extra")
	}
}
