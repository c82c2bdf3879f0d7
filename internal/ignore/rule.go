package ignore

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/gobwas/glob"
)

// Rule is one ignore-matching strategy over canonical absolute paths. The
// four kinds form a closed set:
//
//   - whole: the candidate equals one exact canonical path
//   - prefix: the candidate is the rule's path or one of its descendants
//   - glob: the candidate's string form satisfies a wildcard pattern;
//     wildcards are not separator-aware, so `*` crosses `/`
//   - regex: an unanchored search of the candidate's string form succeeds
//
// Whole and prefix rules are only built from paths that exist at
// construction time; glob and regex rules are built from bare pattern text
// and never touch the filesystem.
type Rule struct {
	kind ruleKind
	text string
	wild glob.Glob
	re   *regexp.Regexp
}

type ruleKind int

const (
	kindWhole ruleKind = iota
	kindPrefix
	kindGlob
	kindRegex
)

// Canonicalize resolves path to its absolute, symlink-resolved form. The
// path must exist; failures are returned as a *CanonicalizeError carrying
// the original path and the I/O cause.
func Canonicalize(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", &CanonicalizeError{Path: path, Err: err}
	}
	canon, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", &CanonicalizeError{Path: path, Err: err}
	}
	return canon, nil
}

// ParsePath classifies path on the filesystem and returns the matching
// rule: a regular file becomes a whole rule, a directory becomes a prefix
// rule. Anything else is an *UnknownPathTypeError, and a path that cannot
// be canonicalized is a *CanonicalizeError. Glob and regex rules are never
// produced here; construct those explicitly with NewGlob or NewRegex.
func ParsePath(path string) (Rule, error) {
	canon, err := Canonicalize(path)
	if err != nil {
		return Rule{}, err
	}
	info, err := os.Stat(canon)
	if err != nil {
		return Rule{}, &CanonicalizeError{Path: path, Err: err}
	}
	switch {
	case info.Mode().IsRegular():
		return Rule{kind: kindWhole, text: canon}, nil
	case info.IsDir():
		return Rule{kind: kindPrefix, text: canon}, nil
	default:
		return Rule{}, &UnknownPathTypeError{Path: canon}
	}
}

// NewWhole builds a whole rule matching exactly the canonical path of an
// existing regular file.
func NewWhole(path string) (Rule, error) {
	rule, err := ParsePath(path)
	if err != nil {
		return Rule{}, err
	}
	if rule.kind != kindWhole {
		return Rule{}, fmt.Errorf("whole rule: %q is not a regular file", rule.text)
	}
	return rule, nil
}

// NewPrefix builds a prefix rule matching an existing directory and every
// path below it.
func NewPrefix(path string) (Rule, error) {
	rule, err := ParsePath(path)
	if err != nil {
		return Rule{}, err
	}
	if rule.kind != kindPrefix {
		return Rule{}, fmt.Errorf("prefix rule: %q is not a directory", rule.text)
	}
	return rule, nil
}

// NewGlob builds a glob rule from pattern. Wildcards are not separator
// aware (`*` and `?` match `/` too); invalid pattern syntax is an error.
func NewGlob(pattern string) (Rule, error) {
	g, err := glob.Compile(pattern)
	if err != nil {
		return Rule{}, fmt.Errorf("glob rule %q: %w", pattern, err)
	}
	return Rule{kind: kindGlob, text: pattern, wild: g}, nil
}

// NewRegex builds a regex rule from pattern. Matching is an unanchored
// substring search; see Matches.
func NewRegex(pattern string) (Rule, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return Rule{}, fmt.Errorf("regex rule %q: %w", pattern, err)
	}
	return Rule{kind: kindRegex, text: pattern, re: re}, nil
}

// Matches reports whether candidate, a canonical absolute path, is matched
// by the rule. It is pure: no filesystem access, no failure. Canonicalizing
// the candidate is the caller's job (NewFilter does it per candidate).
//
// Regex rules search, they do not anchor: a rule built from "foo" matches
// any path containing "foo" anywhere in its string form. Callers wanting a
// full-path match must anchor the pattern themselves with ^ and $.
func (r Rule) Matches(candidate string) bool {
	switch r.kind {
	case kindWhole:
		return candidate == r.text
	case kindPrefix:
		if candidate == r.text {
			return true
		}
		prefix := r.text
		if !strings.HasSuffix(prefix, string(filepath.Separator)) {
			prefix += string(filepath.Separator)
		}
		return strings.HasPrefix(candidate, prefix)
	case kindGlob:
		return r.wild.Match(candidate)
	case kindRegex:
		return r.re.MatchString(candidate)
	}
	return false
}

// String returns the rule's canonical path (whole, prefix) or its pattern
// source (glob, regex).
func (r Rule) String() string { return r.text }
